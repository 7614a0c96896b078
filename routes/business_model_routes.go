package routes

import (
	"jiwoo-back/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupBusinessModelRoutes(app *fiber.App, controller *controllers.BusinessModelController, auth fiber.Handler) {
	api := app.Group("/business-model", auth)
	api.Post("/similar-services", controller.SimilarServices)
	api.Post("/analyze", controller.Analyze)
	api.Post("/propose", controller.Propose)
}
