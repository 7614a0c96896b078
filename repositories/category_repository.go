package repositories

import (
	"context"
	"jiwoo-back/models"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(DB *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: DB}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.DB.WithContext(ctx).Order("id").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Create(category).Error
}

// FindNamesByBusinessID returns the category names linked to a business, ordered by category id.
func (r *CategoryRepository) FindNamesByBusinessID(ctx context.Context, businessID int) ([]string, error) {
	var names []string
	err := r.DB.WithContext(ctx).
		Table("tbl_category AS c").
		Joins("JOIN tbl_business_category AS bc ON bc.category_id = c.id").
		Where("bc.business_id = ?", businessID).
		Order("c.id").
		Pluck("c.name", &names).Error
	return names, err
}
