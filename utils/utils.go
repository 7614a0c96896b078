package utils

import (
	"jiwoo-back/dto"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CurrentUserID reads the user set by the auth middleware.
func CurrentUserID(ctx *fiber.Ctx) (int, bool) {
	userID, ok := ctx.Locals("userID").(int)
	return userID, ok && userID > 0
}

func CurrentEmail(ctx *fiber.Ctx) string {
	email, _ := ctx.Locals("email").(string)
	return email
}

func CurrentSessionID(ctx *fiber.Ctx) string {
	sessionID, _ := ctx.Locals("sessionID").(string)
	return sessionID
}

func GetClientInfo(ctx *fiber.Ctx) dto.ClientInfo {
	ip := ctx.Get("X-Forwarded-For")
	if ip == "" {
		ip = ctx.IP()
	}
	return dto.ClientInfo{IPAddress: ip, UserAgent: ctx.Get("User-Agent")}
}

// ParamID parses a positive integer route parameter.
func ParamID(ctx *fiber.Ctx, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Params(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
