package routes

import (
	"jiwoo-back/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, controller *controllers.AuthController, auth fiber.Handler) {
	api := app.Group("/auth")
	api.Post("/signup", controller.Signup)
	api.Post("/exist/email", controller.ExistEmail)
	api.Post("/login", controller.Login)
	api.Post("/refresh", controller.Refresh)

	api.Post("/logout", auth, controller.Logout)
	api.Get("/profile", auth, controller.Profile)
	api.Post("/edit/password", auth, controller.EditPassword)
	api.Post("/edit/info", auth, controller.EditInfo)
	api.Delete("/withdraw", auth, controller.Withdraw)
}
