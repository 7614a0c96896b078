package controllers

import (
	"context"
	"errors"
	"jiwoo-back/config"
	"jiwoo-back/dto"
	"jiwoo-back/services"
	"jiwoo-back/types"
	"jiwoo-back/utils"
	"jiwoo-back/vo"

	"github.com/gofiber/fiber/v2"
)

type AuthService interface {
	Signup(ctx context.Context, req dto.SignupDTO) (*dto.UserDTO, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	Login(ctx context.Context, email, password string, client dto.ClientInfo) (*dto.TokenDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenDTO, error)
	Logout(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, userID int) (*dto.UserDTO, error)
	EditPassword(ctx context.Context, userID int, oldPassword, newPassword string) error
	EditInfo(ctx context.Context, userID int, gender, phoneNo string) error
	Withdraw(ctx context.Context, userID int) error
}

type AuthController struct {
	Service AuthService
}

func NewAuthController(service AuthService) *AuthController {
	return &AuthController{Service: service}
}

func (c *AuthController) Signup(ctx *fiber.Ctx) error {
	var req vo.SignupRequestVO
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 요청입니다")
	}
	if err := validate.Struct(req); err != nil {
		return fail(ctx, "auth", err, "[ERROR] 회원가입 실패")
	}

	var birth types.Date
	if req.BirthDate != "" {
		parsed, err := types.ParseDate(req.BirthDate)
		if err != nil {
			return fail(ctx, "auth", err, "[ERROR] 회원가입 실패")
		}
		birth = parsed
	}

	_, err := c.Service.Signup(ctx.UserContext(), dto.SignupDTO{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		BirthDate: birth,
		Gender:    req.Gender,
		PhoneNo:   req.PhoneNo,
	})
	if err != nil {
		return fail(ctx, "auth", err, "[ERROR] 회원가입 실패")
	}

	return ctx.Status(fiber.StatusOK).JSON(vo.Message("회원가입 성공"))
}

func (c *AuthController) ExistEmail(ctx *fiber.Ctx) error {
	var req vo.EmailRequestVO
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 요청입니다")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(ctx, "[ERROR] 올바른 이메일 형식이 아닙니다")
	}

	exists, err := c.Service.ExistsEmail(ctx.UserContext(), req.Email)
	if err != nil {
		return fail(ctx, "auth", err, "[ERROR] 이메일 확인 실패")
	}
	if exists {
		return badRequest(ctx, "[ERROR] 중복된 이메일입니다")
	}
	return ctx.Status(fiber.StatusOK).JSON(vo.Message("사용 가능한 이메일입니다"))
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var req vo.LoginRequestVO
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 요청입니다")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(ctx, "[ERROR] 이메일과 비밀번호를 입력해주세요")
	}

	tokens, err := c.Service.Login(ctx.UserContext(), req.Email, req.Password, utils.GetClientInfo(ctx))
	if errors.Is(err, services.ErrInvalidCredentials) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(vo.Message("[ERROR] 이메일 또는 비밀번호가 일치하지 않습니다"))
	}
	if err != nil {
		return fail(ctx, "auth", err, "[ERROR] 로그인 실패")
	}

	ctx.Cookie(config.GetRefreshTokenCookie(tokens.RefreshToken))
	return ctx.Status(fiber.StatusOK).JSON(tokens)
}

// Refresh accepts the refresh token from the body or from the refresh_token cookie.
func (c *AuthController) Refresh(ctx *fiber.Ctx) error {
	var req vo.RefreshRequestVO
	_ = ctx.BodyParser(&req)
	if req.RefreshToken == "" {
		req.RefreshToken = ctx.Cookies("refresh_token")
	}
	if req.RefreshToken == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(vo.Message("[ERROR] 리프레시 토큰이 없습니다"))
	}

	tokens, err := c.Service.Refresh(ctx.UserContext(), req.RefreshToken)
	if errors.Is(err, services.ErrInvalidRefreshToken) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(vo.Message("[ERROR] 유효하지 않은 리프레시 토큰입니다"))
	}
	if err != nil {
		return fail(ctx, "auth", err, "[ERROR] 토큰 재발급 실패")
	}

	if tokens.RefreshToken != "" {
		ctx.Cookie(config.GetRefreshTokenCookie(tokens.RefreshToken))
	}
	return ctx.Status(fiber.StatusOK).JSON(tokens)
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID := utils.CurrentSessionID(ctx)
	if sessionID == "" {
		return unauthorized(ctx)
	}
	if err := c.Service.Logout(ctx.UserContext(), sessionID); err != nil {
		return fail(ctx, "auth", err, "[ERROR] 로그아웃 실패")
	}

	ctx.Cookie(config.GetRefreshTokenCookie(""))
	return ctx.Status(fiber.StatusOK).JSON(vo.Message("로그아웃 성공"))
}

func (c *AuthController) Profile(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	user, err := c.Service.GetProfile(ctx.UserContext(), userID)
	if err != nil {
		return fail(ctx, "auth", err, "[ERROR] 회원 정보 조회 실패")
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"name":      user.Name,
		"email":     user.Email,
		"phoneNo":   user.PhoneNo,
		"birthDate": user.BirthDate,
		"gender":    user.Gender,
	})
}

func (c *AuthController) EditPassword(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req vo.EditPasswordRequestVO
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 요청입니다")
	}
	if err := validate.Struct(req); err != nil {
		return fail(ctx, "auth", err, "[ERROR] 비밀번호 변경 실패")
	}

	err := c.Service.EditPassword(ctx.UserContext(), userID, req.OldPassword, req.NewPassword)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return badRequest(ctx, "[ERROR] 현재 비밀번호가 일치하지 않습니다")
	case errors.Is(err, services.ErrSamePassword):
		return badRequest(ctx, "[ERROR] 기존 비밀번호와 동일합니다")
	case err != nil:
		return fail(ctx, "auth", err, "[ERROR] 비밀번호 변경 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(vo.Message("비밀번호 변경 성공"))
}

func (c *AuthController) EditInfo(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req vo.EditInfoRequestVO
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 요청입니다")
	}
	if err := c.Service.EditInfo(ctx.UserContext(), userID, req.Gender, req.PhoneNo); err != nil {
		return fail(ctx, "auth", err, "[ERROR] 회원 정보 수정 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(vo.Message("회원 정보 수정 성공"))
}

func (c *AuthController) Withdraw(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if err := c.Service.Withdraw(ctx.UserContext(), userID); err != nil {
		return fail(ctx, "auth", err, "[ERROR] 회원 탈퇴 실패")
	}

	ctx.Cookie(config.GetRefreshTokenCookie(""))
	return ctx.Status(fiber.StatusOK).JSON(vo.Message("회원 탈퇴 성공"))
}
