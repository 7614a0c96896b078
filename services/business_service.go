package services

import (
	"context"
	"jiwoo-back/dto"
	"jiwoo-back/models"
	"jiwoo-back/types"
)

type BusinessStore interface {
	Create(ctx context.Context, business *models.Business, categoryIDs []int) error
	FindByID(ctx context.Context, id int) (*models.Business, error)
	FindByUserID(ctx context.Context, userID int) ([]models.Business, error)
	FindCategoryIDs(ctx context.Context, businessID int) ([]int, error)
	Update(ctx context.Context, business *models.Business, categoryIDs []int) error
	Delete(ctx context.Context, id int) error
}

type BusinessService struct {
	repo BusinessStore
}

func NewBusinessService(repo BusinessStore) *BusinessService {
	return &BusinessService{repo: repo}
}

// FindBusinessByID returns nil, nil when the business does not exist.
func (s *BusinessService) FindBusinessByID(ctx context.Context, id int) (*dto.BusinessDTO, error) {
	business, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, nil
	}
	return ToBusinessDTO(business), nil
}

// FindOwnedBusiness loads a business and its category links, checking the owner.
func (s *BusinessService) FindOwnedBusiness(ctx context.Context, userID, id int) (*dto.BusinessDTO, error) {
	business, err := s.FindBusinessByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrNotFound
	}
	if business.UserID != userID {
		return nil, ErrForbidden
	}

	categoryIDs, err := s.repo.FindCategoryIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	business.CategoryIDs = categoryIDs
	return business, nil
}

func (s *BusinessService) FindBusinessesByUser(ctx context.Context, userID int) ([]dto.BusinessDTO, error) {
	businesses, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BusinessDTO, 0, len(businesses))
	for i := range businesses {
		out = append(out, *ToBusinessDTO(&businesses[i]))
	}
	return out, nil
}

func (s *BusinessService) RegistBusiness(ctx context.Context, userID int, req dto.BusinessDTO) (*dto.BusinessDTO, error) {
	business := toBusinessEntity(req)
	business.ID = 0
	business.UserID = userID

	if err := s.repo.Create(ctx, business, req.CategoryIDs); err != nil {
		return nil, err
	}

	out := ToBusinessDTO(business)
	out.CategoryIDs = req.CategoryIDs
	return out, nil
}

// UpdateBusiness overwrites every field of an owned business.
func (s *BusinessService) UpdateBusiness(ctx context.Context, userID int, req dto.BusinessDTO) error {
	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.UserID != userID {
		return ErrForbidden
	}

	business := toBusinessEntity(req)
	business.UserID = existing.UserID
	return s.repo.Update(ctx, business, req.CategoryIDs)
}

func (s *BusinessService) DeleteBusiness(ctx context.Context, userID, id int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.UserID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func ToBusinessDTO(b *models.Business) *dto.BusinessDTO {
	return &dto.BusinessDTO{
		ID:                b.ID,
		BusinessName:      b.BusinessName,
		BusinessNumber:    b.BusinessNumber,
		BusinessScale:     b.BusinessScale,
		BusinessBudget:    b.BusinessBudget,
		BusinessContent:   b.BusinessContent,
		BusinessPlatform:  b.BusinessPlatform,
		BusinessLocation:  b.BusinessLocation,
		BusinessStartDate: types.NewDate(b.BusinessStartDate),
		Nation:            b.Nation,
		InvestmentStatus:  b.InvestmentStatus,
		CustomerType:      b.CustomerType,
		UserID:            b.UserID,
		StartupStageID:    b.StartupStageID,
	}
}

func toBusinessEntity(d dto.BusinessDTO) *models.Business {
	return &models.Business{
		ID:                d.ID,
		BusinessName:      d.BusinessName,
		BusinessNumber:    d.BusinessNumber,
		BusinessScale:     d.BusinessScale,
		BusinessBudget:    d.BusinessBudget,
		BusinessContent:   d.BusinessContent,
		BusinessPlatform:  d.BusinessPlatform,
		BusinessLocation:  d.BusinessLocation,
		BusinessStartDate: d.BusinessStartDate.Time,
		Nation:            d.Nation,
		InvestmentStatus:  d.InvestmentStatus,
		CustomerType:      d.CustomerType,
		UserID:            d.UserID,
		StartupStageID:    d.StartupStageID,
	}
}
