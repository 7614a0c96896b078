package routes

import (
	"jiwoo-back/controllers"
	"jiwoo-back/middleware"
	"jiwoo-back/types"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportProgramRoutes(app *fiber.App, controller *controllers.SupportProgramController, auth fiber.Handler) {
	admin := middleware.RequireRole(types.RoleAdmin)

	api := app.Group("/support_program")
	api.Post("/insert", controller.InsertSupportProgram)
	api.Post("/upload", auth, admin, controller.UploadSupportPrograms)
	api.Get("/recommend", auth, controller.Recommend)
	api.Get("/", controller.GetSupportPrograms)
	api.Get("/:id", controller.GetSupportProgram)
	api.Delete("/:id", auth, admin, controller.DeleteSupportProgram)
}
