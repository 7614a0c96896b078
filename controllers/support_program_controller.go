package controllers

import (
	"context"
	"io"
	"jiwoo-back/dto"
	"jiwoo-back/utils"
	"jiwoo-back/vo"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/slices"
)

var allowedUploadExtensions = []string{".xlsx"}

type SupportProgramManager interface {
	InsertSupportProgram(ctx context.Context, req vo.SupportProgramRequestVO) error
	ImportExcel(ctx context.Context, r io.Reader) (*dto.SupportProgramUploadResult, error)
	GetSupportPrograms(ctx context.Context) ([]dto.SupportProgramDTO, error)
	GetSupportProgram(ctx context.Context, id int) (*dto.SupportProgramDTO, error)
	DeleteSupportProgram(ctx context.Context, id int) error
	RecommendForUser(ctx context.Context, userID int) ([]dto.SupportProgramDTO, error)
}

type SupportProgramController struct {
	Service SupportProgramManager
}

func NewSupportProgramController(service SupportProgramManager) *SupportProgramController {
	return &SupportProgramController{Service: service}
}

func (c *SupportProgramController) InsertSupportProgram(ctx *fiber.Ctx) error {
	var req vo.SupportProgramRequestVO
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "[ERROR] 지원 사업 추가 실패")
	}
	if err := c.Service.InsertSupportProgram(ctx.UserContext(), req); err != nil {
		return fail(ctx, "support-program", err, "[ERROR] 지원 사업 추가 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(vo.Message("지원 사업 추가 성공"))
}

func (c *SupportProgramController) UploadSupportPrograms(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "[ERROR] 업로드할 파일이 없습니다")
	}
	if !slices.Contains(allowedUploadExtensions, strings.ToLower(filepath.Ext(file.Filename))) {
		return badRequest(ctx, "[ERROR] xlsx 파일만 업로드할 수 있습니다")
	}

	f, err := file.Open()
	if err != nil {
		return fail(ctx, "support-program", err, "[ERROR] 파일을 열 수 없습니다")
	}
	defer f.Close()

	result, err := c.Service.ImportExcel(ctx.UserContext(), f)
	if err != nil {
		return fail(ctx, "support-program", err, "[ERROR] 지원 사업 업로드 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "지원 사업 업로드 완료",
		"result":  result,
	})
}

func (c *SupportProgramController) GetSupportPrograms(ctx *fiber.Ctx) error {
	programs, err := c.Service.GetSupportPrograms(ctx.UserContext())
	if err != nil {
		return fail(ctx, "support-program", err, "[ERROR] 지원 사업 조회 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(programs)
}

func (c *SupportProgramController) GetSupportProgram(ctx *fiber.Ctx) error {
	id, ok := utils.ParamID(ctx, "id")
	if !ok {
		return badRequest(ctx, "[ERROR] 잘못된 지원 사업 ID입니다")
	}

	program, err := c.Service.GetSupportProgram(ctx.UserContext(), id)
	if err != nil {
		return fail(ctx, "support-program", err, "[ERROR] 지원 사업 조회 실패")
	}
	if program == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(vo.Message("[ERROR] 지원 사업을 찾을 수 없습니다"))
	}
	return ctx.Status(fiber.StatusOK).JSON(program)
}

func (c *SupportProgramController) DeleteSupportProgram(ctx *fiber.Ctx) error {
	id, ok := utils.ParamID(ctx, "id")
	if !ok {
		return badRequest(ctx, "[ERROR] 잘못된 지원 사업 ID입니다")
	}
	if err := c.Service.DeleteSupportProgram(ctx.UserContext(), id); err != nil {
		return fail(ctx, "support-program", err, "[ERROR] 지원 사업 삭제 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(vo.Message("지원 사업 삭제 성공"))
}

func (c *SupportProgramController) Recommend(ctx *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	programs, err := c.Service.RecommendForUser(ctx.UserContext(), userID)
	if err != nil {
		return fail(ctx, "support-program", err, "[ERROR] 지원 사업 추천 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(programs)
}
