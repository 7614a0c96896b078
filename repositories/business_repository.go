package repositories

import (
	"context"
	"errors"
	"jiwoo-back/models"

	"gorm.io/gorm"
)

type BusinessRepository struct {
	DB *gorm.DB
}

func NewBusinessRepository(DB *gorm.DB) *BusinessRepository {
	return &BusinessRepository{DB: DB}
}

// Create inserts the business and links it to the given categories in one transaction.
func (r *BusinessRepository) Create(ctx context.Context, business *models.Business, categoryIDs []int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(business).Error; err != nil {
			return err
		}
		return linkCategories(tx, business.ID, categoryIDs)
	})
}

// FindByID returns nil without an error when the business does not exist.
func (r *BusinessRepository) FindByID(ctx context.Context, id int) (*models.Business, error) {
	var business models.Business
	err := r.DB.WithContext(ctx).First(&business, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepository) FindByUserID(ctx context.Context, userID int) ([]models.Business, error) {
	var businesses []models.Business
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepository) FindCategoryIDs(ctx context.Context, businessID int) ([]int, error) {
	var ids []int
	err := r.DB.WithContext(ctx).Model(&models.BusinessCategory{}).
		Where("business_id = ?", businessID).
		Order("category_id").
		Pluck("category_id", &ids).Error
	return ids, err
}

// Update saves every column and, when categoryIDs is non-nil, replaces the category links.
func (r *BusinessRepository) Update(ctx context.Context, business *models.Business, categoryIDs []int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("created_at").Save(business).Error; err != nil {
			return err
		}
		if categoryIDs == nil {
			return nil
		}
		if err := tx.Where("business_id = ?", business.ID).Delete(&models.BusinessCategory{}).Error; err != nil {
			return err
		}
		return linkCategories(tx, business.ID, categoryIDs)
	})
}

func (r *BusinessRepository) Delete(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_id = ?", id).Delete(&models.BusinessCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("business_id = ?", id).Delete(&models.MarketResearchHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Business{}, id).Error
	})
}

func linkCategories(tx *gorm.DB, businessID int, categoryIDs []int) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	links := make([]models.BusinessCategory, 0, len(categoryIDs))
	seen := make(map[int]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		links = append(links, models.BusinessCategory{BusinessID: businessID, CategoryID: id})
	}
	return tx.Create(&links).Error
}
