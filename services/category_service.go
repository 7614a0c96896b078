package services

import (
	"context"
	"jiwoo-back/dto"
	"jiwoo-back/models"
	"strings"
)

type CategoryStore interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	FindNamesByBusinessID(ctx context.Context, businessID int) ([]string, error)
}

type CategoryService struct {
	repo CategoryStore
}

func NewCategoryService(repo CategoryStore) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetCategoryNameByBusinessID joins the business's category names with ", ".
func (s *CategoryService) GetCategoryNameByBusinessID(ctx context.Context, businessID int) (string, error) {
	names, err := s.repo.FindNamesByBusinessID(ctx, businessID)
	if err != nil {
		return "", err
	}
	return strings.Join(names, ", "), nil
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryDTO{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	category := &models.Category{Name: strings.TrimSpace(name)}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return &dto.CategoryDTO{ID: category.ID, Name: category.Name}, nil
}
