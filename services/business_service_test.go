package services

import (
	"context"
	"errors"
	"jiwoo-back/dto"
	"jiwoo-back/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBusinessEntity() *models.Business {
	return &models.Business{
		ID:                1,
		BusinessName:      "지우",
		BusinessNumber:    "123-45-67890",
		BusinessScale:     "중소기업",
		BusinessBudget:    50000000,
		BusinessContent:   "AI 기반 데이터 분석",
		BusinessPlatform:  "SaaS",
		BusinessLocation:  "서울",
		BusinessStartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Nation:            "대한민국",
		InvestmentStatus:  "시드",
		CustomerType:      "B2B",
		UserID:            7,
		StartupStageID:    2,
	}
}

func TestFindBusinessByID(t *testing.T) {
	entity := testBusinessEntity()
	repo := &mockBusinessStore{
		findByIDFn: func(_ context.Context, id int) (*models.Business, error) {
			assert.Equal(t, 1, id)
			return entity, nil
		},
	}
	service := NewBusinessService(repo)

	result, err := service.FindBusinessByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, entity.ID, result.ID)
	assert.Equal(t, entity.BusinessName, result.BusinessName)
	assert.Equal(t, entity.BusinessNumber, result.BusinessNumber)
	assert.Equal(t, entity.BusinessScale, result.BusinessScale)
	assert.Equal(t, entity.BusinessBudget, result.BusinessBudget)
	assert.Equal(t, entity.BusinessContent, result.BusinessContent)
	assert.Equal(t, entity.BusinessPlatform, result.BusinessPlatform)
	assert.Equal(t, entity.BusinessLocation, result.BusinessLocation)
	assert.Equal(t, entity.BusinessStartDate, result.BusinessStartDate.Time)
	assert.Equal(t, entity.Nation, result.Nation)
	assert.Equal(t, entity.InvestmentStatus, result.InvestmentStatus)
	assert.Equal(t, entity.CustomerType, result.CustomerType)
	assert.Equal(t, entity.UserID, result.UserID)
	assert.Equal(t, entity.StartupStageID, result.StartupStageID)
}

func TestFindBusinessByID_NotFound(t *testing.T) {
	repo := &mockBusinessStore{
		findByIDFn: func(context.Context, int) (*models.Business, error) { return nil, nil },
	}

	result, err := NewBusinessService(repo).FindBusinessByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestFindBusinessByID_RepositoryError(t *testing.T) {
	repo := &mockBusinessStore{
		findByIDFn: func(context.Context, int) (*models.Business, error) {
			return nil, errors.New("Database error")
		},
	}

	result, err := NewBusinessService(repo).FindBusinessByID(context.Background(), 1)
	assert.Nil(t, result)
	assert.EqualError(t, err, "Database error")
}

func TestFindOwnedBusiness(t *testing.T) {
	repo := &mockBusinessStore{
		findByIDFn: func(context.Context, int) (*models.Business, error) { return testBusinessEntity(), nil },
		findCategoryIDsFn: func(_ context.Context, businessID int) ([]int, error) {
			return []int{1, 2}, nil
		},
	}
	service := NewBusinessService(repo)

	result, err := service.FindOwnedBusiness(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, result.CategoryIDs)

	_, err = service.FindOwnedBusiness(context.Background(), 8, 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestFindOwnedBusiness_Missing(t *testing.T) {
	repo := &mockBusinessStore{
		findByIDFn: func(context.Context, int) (*models.Business, error) { return nil, nil },
	}

	_, err := NewBusinessService(repo).FindOwnedBusiness(context.Background(), 7, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistBusiness_SetsOwner(t *testing.T) {
	var saved *models.Business
	var savedCategories []int
	repo := &mockBusinessStore{
		createFn: func(_ context.Context, b *models.Business, categoryIDs []int) error {
			saved = b
			savedCategories = categoryIDs
			b.ID = 11
			return nil
		},
	}

	req := dto.BusinessDTO{ID: 500, UserID: 999, BusinessName: "지우", CategoryIDs: []int{3}}
	result, err := NewBusinessService(repo).RegistBusiness(context.Background(), 7, req)
	require.NoError(t, err)

	assert.Equal(t, 7, saved.UserID)
	assert.Equal(t, []int{3}, savedCategories)
	assert.Equal(t, 11, result.ID)
	assert.Equal(t, []int{3}, result.CategoryIDs)
}

func TestUpdateBusiness(t *testing.T) {
	var updated *models.Business
	repo := &mockBusinessStore{
		findByIDFn: func(context.Context, int) (*models.Business, error) { return testBusinessEntity(), nil },
		updateFn: func(_ context.Context, b *models.Business, _ []int) error {
			updated = b
			return nil
		},
	}
	service := NewBusinessService(repo)

	err := service.UpdateBusiness(context.Background(), 7, dto.BusinessDTO{ID: 1, BusinessName: "새 이름", UserID: 123})
	require.NoError(t, err)
	assert.Equal(t, "새 이름", updated.BusinessName)
	assert.Equal(t, 7, updated.UserID)

	err = service.UpdateBusiness(context.Background(), 8, dto.BusinessDTO{ID: 1})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteBusiness(t *testing.T) {
	deleted := 0
	repo := &mockBusinessStore{
		findByIDFn: func(_ context.Context, id int) (*models.Business, error) {
			if id == 1 {
				return testBusinessEntity(), nil
			}
			return nil, nil
		},
		deleteFn: func(_ context.Context, id int) error {
			deleted = id
			return nil
		},
	}
	service := NewBusinessService(repo)

	assert.ErrorIs(t, service.DeleteBusiness(context.Background(), 7, 2), ErrNotFound)
	assert.ErrorIs(t, service.DeleteBusiness(context.Background(), 8, 1), ErrForbidden)
	assert.Equal(t, 0, deleted)

	require.NoError(t, service.DeleteBusiness(context.Background(), 7, 1))
	assert.Equal(t, 1, deleted)
}
