package routes

import (
	"jiwoo-back/controllers"
	"jiwoo-back/middleware"
	"jiwoo-back/types"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App, controller *controllers.CategoryController, auth fiber.Handler) {
	api := app.Group("/category")
	api.Get("/names", controller.GetCategoryNames)
	api.Post("/", auth, middleware.RequireRole(types.RoleAdmin), controller.CreateCategory)
}
