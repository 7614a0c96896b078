package controllers

import (
	"errors"
	"jiwoo-back/logger"
	"jiwoo-back/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fail logs err and answers with a Korean message. Missing and foreign records map to
// 404 and 403, everything else to 400.
func fail(ctx *fiber.Ctx, component string, err error, message string) error {
	logger.WithComponent(component).
		WithError(err).
		WithField("path", ctx.Path()).
		Warn(message)

	switch {
	case errors.Is(err, services.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "[ERROR] 대상을 찾을 수 없습니다"})
	case errors.Is(err, services.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "[ERROR] 권한이 없습니다"})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": message})
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": message})
}

func unauthorized(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "[ERROR] 로그인이 필요합니다"})
}
