package routes

import (
	"jiwoo-back/controllers"
	"jiwoo-back/metrics"

	"github.com/gofiber/fiber/v2"
)

type Controllers struct {
	Auth           *controllers.AuthController
	Business       *controllers.BusinessController
	Category       *controllers.CategoryController
	SupportProgram *controllers.SupportProgramController
	MarketResearch *controllers.MarketResearchController
	BusinessModel  *controllers.BusinessModelController
}

// Setup registers every route. auth must reject anonymous requests; optionalAuth only
// fills the user locals when a token is present.
func Setup(app *fiber.App, c Controllers, auth, optionalAuth fiber.Handler) {
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler())

	SetupAuthRoutes(app, c.Auth, auth)
	SetupBusinessRoutes(app, c.Business, auth, optionalAuth)
	SetupCategoryRoutes(app, c.Category, auth)
	SetupSupportProgramRoutes(app, c.SupportProgram, auth)
	SetupMarketResearchRoutes(app, c.MarketResearch, auth)
	SetupBusinessModelRoutes(app, c.BusinessModel, auth)
}
