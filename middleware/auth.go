package middleware

import (
	"context"
	"jiwoo-back/logger"
	"jiwoo-back/services"
	"jiwoo-back/types"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/slices"
)

type TokenValidator interface {
	ParseAccessToken(token string) (*services.AccessClaims, error)
	ValidateSession(ctx context.Context, sessionID string) error
}

// AuthMiddleware checks the bearer token and its session, then stores
// userID, email, role and sessionID in ctx.Locals.
func AuthMiddleware(validator TokenValidator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "[ERROR] 인증 정보가 없습니다",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "[ERROR] 잘못된 인증 헤더 형식입니다",
			})
		}

		claims, err := validator.ParseAccessToken(tokenParts[1])
		if err != nil {
			logger.WithComponent("auth").WithError(err).Debug("access token rejected")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "[ERROR] 유효하지 않은 토큰입니다",
			})
		}

		if err := validator.ValidateSession(ctx.UserContext(), claims.SessionID); err != nil {
			logger.WithComponent("auth").WithError(err).WithField("session_id", claims.SessionID).Debug("session rejected")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "[ERROR] 만료되었거나 로그아웃된 세션입니다",
			})
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("email", claims.Email)
		ctx.Locals("role", claims.Role)
		ctx.Locals("sessionID", claims.SessionID)

		return ctx.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...types.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("role").(types.UserRole)
		if !slices.Contains(roles, role) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "[ERROR] 권한이 없습니다",
			})
		}
		return ctx.Next()
	}
}

// OptionalAuth fills the same locals as AuthMiddleware when a valid token is sent and
// lets anonymous requests through otherwise.
func OptionalAuth(validator TokenValidator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenParts := strings.Split(ctx.Get("Authorization"), " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			return ctx.Next()
		}
		claims, err := validator.ParseAccessToken(tokenParts[1])
		if err != nil {
			return ctx.Next()
		}
		if err := validator.ValidateSession(ctx.UserContext(), claims.SessionID); err != nil {
			return ctx.Next()
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("email", claims.Email)
		ctx.Locals("role", claims.Role)
		ctx.Locals("sessionID", claims.SessionID)
		return ctx.Next()
	}
}
