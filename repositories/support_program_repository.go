package repositories

import (
	"context"
	"errors"
	"jiwoo-back/models"
	"strings"

	"gorm.io/gorm"
)

type SupportProgramRepository struct {
	DB *gorm.DB
}

func NewSupportProgramRepository(DB *gorm.DB) *SupportProgramRepository {
	return &SupportProgramRepository{DB: DB}
}

func (r *SupportProgramRepository) CreateBatch(ctx context.Context, programs []models.SupportProgram) error {
	if len(programs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).CreateInBatches(&programs, 100).Error
}

func (r *SupportProgramRepository) FindAll(ctx context.Context) ([]models.SupportProgram, error) {
	var programs []models.SupportProgram
	err := r.DB.WithContext(ctx).Order("support_year DESC, id DESC").Find(&programs).Error
	return programs, err
}

func (r *SupportProgramRepository) FindByID(ctx context.Context, id int) (*models.SupportProgram, error) {
	var program models.SupportProgram
	err := r.DB.WithContext(ctx).First(&program, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *SupportProgramRepository) ExistsByNameAndYear(ctx context.Context, name string, year int) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.SupportProgram{}).
		Where("name = ? AND support_year = ?", name, year).
		Count(&count).Error
	return count > 0, err
}

func (r *SupportProgramRepository) Delete(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Delete(&models.SupportProgram{}, id).Error
}

// likeEscaper makes keywords match literally. '!' works as ESCAPE character on every
// supported driver, unlike a backslash.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// FindByKeywords matches programs whose target or content mentions any keyword.
func (r *SupportProgramRepository) FindByKeywords(ctx context.Context, keywords []string, limit int) ([]models.SupportProgram, error) {
	var programs []models.SupportProgram
	query := r.DB.WithContext(ctx).Model(&models.SupportProgram{})

	var clauses []string
	var args []interface{}
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		like := "%" + likeEscaper.Replace(kw) + "%"
		clauses = append(clauses, "target LIKE ? ESCAPE '!' OR support_content LIKE ? ESCAPE '!'")
		args = append(args, like, like)
	}
	if len(clauses) > 0 {
		query = query.Where("("+strings.Join(clauses, ") OR (")+")", args...)
	}

	err := query.Order("support_year DESC, id DESC").Limit(limit).Find(&programs).Error
	return programs, err
}
