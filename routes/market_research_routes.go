package routes

import (
	"jiwoo-back/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupMarketResearchRoutes(app *fiber.App, controller *controllers.MarketResearchController, auth fiber.Handler) {
	api := app.Group("/market-research", auth)
	api.Post("/market-size-growth", controller.MarketSizeGrowth)
	api.Post("/similar-services", controller.SimilarServices)
	api.Get("/history", controller.History)
	api.Get("/history/export", controller.ExportHistory)
	api.Post("/history/:id/mail", controller.MailHistory)
}
