package controllers

import (
	"context"
	"jiwoo-back/dto"
	"jiwoo-back/vo"

	"github.com/gofiber/fiber/v2"
)

type CategoryManager interface {
	GetCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	CreateCategory(ctx context.Context, name string) (*dto.CategoryDTO, error)
}

type CategoryController struct {
	Service CategoryManager
}

func NewCategoryController(service CategoryManager) *CategoryController {
	return &CategoryController{Service: service}
}

func (c *CategoryController) GetCategoryNames(ctx *fiber.Ctx) error {
	categories, err := c.Service.GetCategories(ctx.UserContext())
	if err != nil {
		return fail(ctx, "category", err, "[ERROR] 카테고리 조회 실패")
	}
	return ctx.Status(fiber.StatusOK).JSON(categories)
}

func (c *CategoryController) CreateCategory(ctx *fiber.Ctx) error {
	var req vo.CategoryRequestVO
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "[ERROR] 잘못된 요청입니다")
	}
	if err := validate.Struct(req); err != nil {
		return fail(ctx, "category", err, "[ERROR] 카테고리 추가 실패")
	}

	category, err := c.Service.CreateCategory(ctx.UserContext(), req.Name)
	if err != nil {
		return fail(ctx, "category", err, "[ERROR] 카테고리 추가 실패")
	}
	return ctx.Status(fiber.StatusCreated).JSON(category)
}
