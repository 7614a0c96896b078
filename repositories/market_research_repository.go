package repositories

import (
	"context"
	"errors"
	"jiwoo-back/models"
	"jiwoo-back/types"

	"gorm.io/gorm"
)

type MarketResearchRepository struct {
	DB *gorm.DB
}

func NewMarketResearchRepository(DB *gorm.DB) *MarketResearchRepository {
	return &MarketResearchRepository{DB: DB}
}

func (r *MarketResearchRepository) Create(ctx context.Context, history *models.MarketResearchHistory) error {
	return r.DB.WithContext(ctx).Create(history).Error
}

func (r *MarketResearchRepository) FindByUserID(ctx context.Context, userID int) ([]models.MarketResearchHistory, error) {
	var histories []models.MarketResearchHistory
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&histories).Error
	return histories, err
}

func (r *MarketResearchRepository) FindByID(ctx context.Context, id types.SnowflakeID) (*models.MarketResearchHistory, error) {
	var history models.MarketResearchHistory
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&history).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &history, nil
}
