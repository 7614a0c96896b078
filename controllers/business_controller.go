package controllers

import (
	"context"
	"jiwoo-back/dto"
	"jiwoo-back/types"
	"jiwoo-back/utils"
	"jiwoo-back/vo"

	"github.com/gofiber/fiber/v2"
)

type BusinessManager interface {
	FindOwnedBusiness(ctx context.Context, userID, id int) (*dto.BusinessDTO, error)
	FindBusinessesByUser(ctx context.Context, userID int) ([]dto.BusinessDTO, error)
	RegistBusiness(ctx context.Context, userID int, req dto.BusinessDTO) (*dto.BusinessDTO, error)
	UpdateBusiness(ctx context.Context, userID int, req dto.BusinessDTO) error
	DeleteBusiness(ctx context.Context, userID, id int) error
}

type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*dto.UserDTO, error)
}

type BusinessController struct {
	Service BusinessManager
	Users   UserFinder
}

func NewBusinessController(service BusinessManager, users UserFinder) *BusinessController {
	return &BusinessController{Service: service, Users: users}
}

// RegistBusiness stores a business for the logged-in user, or for the account named by
// email right after signup.
func (c *BusinessController) RegistBusiness(ctx *fiber.Ctx) error {
	var req vo.BusinessRequestVO
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 요청입니다")
	}
	if err := validate.Struct(req); err != nil {
		return fail(ctx, "business", err, "[ERROR] 사업 정보 등록 실패")
	}

	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		if req.Email == "" {
			return unauthorized(ctx)
		}
		user, err := c.Users.FindUserByEmail(ctx.UserContext(), req.Email)
		if err != nil {
			return fail(ctx, "business", err, "[ERROR] 사업 정보 등록 실패")
		}
		if user == nil {
			return badRequest(ctx, "[ERROR] 존재하지 않는 회원입니다")
		}
		userID = user.ID
	}

	business, err := c.Service.RegistBusiness(ctx.UserContext(), userID, businessFromRequest(req))
	if err != nil {
		return fail(ctx, "business", err, "[ERROR] 사업 정보 등록 실패")
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "사업 정보 등록 성공",
		"business": business,
	})
}

func (c *BusinessController) GetUserBusinesses(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	businesses, err := c.Service.FindBusinessesByUser(ctx.UserContext(), userID)
	if err != nil {
		return fail(ctx, "business", err, "[ERROR] 사업 정보 조회 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"business": businesses})
}

func (c *BusinessController) GetBusiness(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	id, ok := utils.ParamID(ctx, "id")
	if !ok {
		return badRequest(ctx, "[ERROR] 잘못된 사업 ID입니다")
	}

	business, err := c.Service.FindOwnedBusiness(ctx.UserContext(), userID, id)
	if err != nil {
		return fail(ctx, "business", err, "[ERROR] 사업 정보 조회 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(business)
}

func (c *BusinessController) UpdateBusiness(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	id, ok := utils.ParamID(ctx, "id")
	if !ok {
		return badRequest(ctx, "[ERROR] 잘못된 사업 ID입니다")
	}

	var req vo.BusinessRequestVO
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 요청입니다")
	}
	if err := validate.Struct(req); err != nil {
		return fail(ctx, "business", err, "[ERROR] 사업 정보 수정 실패")
	}

	business := businessFromRequest(req)
	business.ID = id
	if err := c.Service.UpdateBusiness(ctx.UserContext(), userID, business); err != nil {
		return fail(ctx, "business", err, "[ERROR] 사업 정보 수정 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(vo.Message("사업 정보 수정 성공"))
}

func (c *BusinessController) DeleteBusiness(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	id, ok := utils.ParamID(ctx, "id")
	if !ok {
		return badRequest(ctx, "[ERROR] 잘못된 사업 ID입니다")
	}

	if err := c.Service.DeleteBusiness(ctx.UserContext(), userID, id); err != nil {
		return fail(ctx, "business", err, "[ERROR] 사업 정보 삭제 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(vo.Message("사업 정보 삭제 성공"))
}

func businessFromRequest(req vo.BusinessRequestVO) dto.BusinessDTO {
	return dto.BusinessDTO{
		BusinessName:      req.BusinessName,
		BusinessNumber:    req.BusinessNumber,
		BusinessScale:     req.BusinessScale,
		BusinessBudget:    req.BusinessBudget.Float64(),
		BusinessContent:   req.BusinessContent,
		BusinessPlatform:  req.BusinessPlatform,
		BusinessLocation:  req.BusinessLocation,
		BusinessStartDate: req.BusinessStartDate,
		Nation:            req.Nation,
		InvestmentStatus:  req.InvestmentStatus,
		CustomerType:      req.CustomerType,
		StartupStageID:    req.StartupStageID.Int(),
		CategoryIDs:       categoryIDs(req.CategoryIDs),
	}
}

func categoryIDs(ids []types.FlexInt) []int {
	if ids == nil {
		return nil
	}
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Int())
	}
	return out
}
