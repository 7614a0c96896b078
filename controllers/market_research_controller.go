package controllers

import (
	"context"
	"jiwoo-back/dto"
	"jiwoo-back/types"
	"jiwoo-back/utils"
	"jiwoo-back/vo"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type MarketResearcher interface {
	RunMarketSizeGrowth(ctx context.Context, userID, businessID int) (*dto.MarketSizeGrowthDTO, error)
	RunSimilarServices(ctx context.Context, userID, businessID int) (*dto.SimilarServicesAnalysisDTO, error)
	GetHistory(ctx context.Context, userID int) ([]dto.MarketResearchHistoryDTO, error)
	ExportHistory(ctx context.Context, userID int) ([]byte, error)
	MailHistory(ctx context.Context, userID int, email string, id types.SnowflakeID) error
}

type MarketResearchController struct {
	Service MarketResearcher
}

func NewMarketResearchController(service MarketResearcher) *MarketResearchController {
	return &MarketResearchController{Service: service}
}

func (c *MarketResearchController) MarketSizeGrowth(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	var req vo.MarketResearchRequestVO
	if err := ctx.BodyParser(&req); err != nil || validate.Struct(req) != nil {
		return badRequest(ctx, "[ERROR] 사업 ID가 필요합니다")
	}

	result, err := c.Service.RunMarketSizeGrowth(ctx.UserContext(), userID, req.BusinessID)
	if err != nil {
		return fail(ctx, "market-research", err, "[ERROR] 시장 규모 및 성장률 조회 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(result)
}

func (c *MarketResearchController) SimilarServices(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	var req vo.MarketResearchRequestVO
	if err := ctx.BodyParser(&req); err != nil || validate.Struct(req) != nil {
		return badRequest(ctx, "[ERROR] 사업 ID가 필요합니다")
	}

	result, err := c.Service.RunSimilarServices(ctx.UserContext(), userID, req.BusinessID)
	if err != nil {
		return fail(ctx, "market-research", err, "[ERROR] 유사 서비스 분석 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(result)
}

func (c *MarketResearchController) History(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	history, err := c.Service.GetHistory(ctx.UserContext(), userID)
	if err != nil {
		return fail(ctx, "market-research", err, "[ERROR] 시장 조사 이력 조회 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(history)
}

func (c *MarketResearchController) ExportHistory(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	data, err := c.Service.ExportHistory(ctx.UserContext(), userID)
	if err != nil {
		return fail(ctx, "market-research", err, "[ERROR] 시장 조사 이력 내보내기 실패")
	}

	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="market-research-history.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(data)
}

func (c *MarketResearchController) MailHistory(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	id, err := types.ParseSnowflakeID(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 이력 ID입니다")
	}
	email := utils.CurrentEmail(ctx)
	if email == "" {
		return badRequest(ctx, "[ERROR] 메일 주소를 확인할 수 없습니다")
	}

	if err := c.Service.MailHistory(ctx.UserContext(), userID, email, id); err != nil {
		return fail(ctx, "market-research", err, "[ERROR] 시장 조사 결과 메일 발송 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(vo.Message("시장 조사 결과 메일 발송 성공"))
}
