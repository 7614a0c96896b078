package routes

import (
	"jiwoo-back/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupBusinessRoutes(app *fiber.App, controller *controllers.BusinessController, auth, optionalAuth fiber.Handler) {
	api := app.Group("/business")
	api.Post("/regist", optionalAuth, controller.RegistBusiness)
	api.Get("/user", auth, controller.GetUserBusinesses)
	api.Get("/:id", auth, controller.GetBusiness)
	api.Put("/:id", auth, controller.UpdateBusiness)
	api.Delete("/:id", auth, controller.DeleteBusiness)
}
