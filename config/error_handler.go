package config

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler turns any error escaping a handler into the {"message": ...} envelope
// the frontend reads.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "[ERROR] 서버 오류가 발생했습니다"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	return ctx.Status(code).JSON(fiber.Map{
		"message": message,
	})
}
