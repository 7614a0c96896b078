package migration

import (
	"jiwoo-back/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.StartupStage{},
		&models.Category{},
		&models.Business{},
		&models.BusinessCategory{},
		&models.SupportProgram{},
		&models.MarketResearchHistory{},
	)
}
