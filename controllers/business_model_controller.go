package controllers

import (
	"context"
	"jiwoo-back/dto"
	"jiwoo-back/utils"
	"jiwoo-back/vo"

	"github.com/gofiber/fiber/v2"
)

type BusinessModeler interface {
	GetSimilarServices(ctx context.Context, userID int, business dto.BusinessDTO) ([]vo.ResponsePythonServerVO, error)
	AnalyzeBusinessModels(ctx context.Context, services []vo.ResponsePythonServerVO) (string, error)
	ProposeBusinessModel(ctx context.Context, analysis string) (string, error)
}

type BusinessModelController struct {
	Service BusinessModeler
}

func NewBusinessModelController(service BusinessModeler) *BusinessModelController {
	return &BusinessModelController{Service: service}
}

// SimilarServices takes either a stored business (with id) or a free-form field passed
// as businessName.
func (c *BusinessModelController) SimilarServices(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	var req vo.BusinessModelRequestVO
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 요청입니다")
	}

	business := businessFromRequest(req.BusinessRequestVO)
	business.ID = req.ID
	services, err := c.Service.GetSimilarServices(ctx.UserContext(), userID, business)
	if err != nil {
		return fail(ctx, "business-model", err, "[ERROR] 유사 서비스 조회 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(services)
}

func (c *BusinessModelController) Analyze(ctx *fiber.Ctx) error {
	var services []vo.ResponsePythonServerVO
	if err := ctx.BodyParser(&services); err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 요청입니다")
	}

	analysis, err := c.Service.AnalyzeBusinessModels(ctx.UserContext(), services)
	if err != nil {
		return fail(ctx, "business-model", err, "[ERROR] 비즈니스 모델 분석 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(vo.AnalysisResponseVO{Analysis: analysis})
}

func (c *BusinessModelController) Propose(ctx *fiber.Ctx) error {
	var req vo.ProposalRequestVO
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 요청입니다")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(ctx, "[ERROR] 분석 결과가 필요합니다")
	}

	proposal, err := c.Service.ProposeBusinessModel(ctx.UserContext(), req.Analysis)
	if err != nil {
		return fail(ctx, "business-model", err, "[ERROR] 비즈니스 모델 제안 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(vo.ProposalResponseVO{Proposal: proposal})
}
