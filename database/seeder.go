package database

import (
	"errors"
	"jiwoo-back/logger"
	"jiwoo-back/models"
	"jiwoo-back/types"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var defaultCategories = []string{
	"IT", "인공지능", "핀테크", "헬스케어", "교육", "커머스", "콘텐츠", "제조", "푸드", "모빌리티", "환경", "기타",
}

var defaultStartupStages = []string{
	"예비창업", "초기창업", "성장기", "도약기",
}

func RunSeeders(db *gorm.DB) {
	SeedCategory(db)
	SeedStartupStage(db)
	SeedAdmin(db)
}

func SeedCategory(db *gorm.DB) {
	for _, name := range defaultCategories {
		c := models.Category{Name: name}
		var existing models.Category
		if err := db.Where("name = ?", c.Name).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			db.Create(&c)
		}
	}
}

func SeedStartupStage(db *gorm.DB) {
	for _, name := range defaultStartupStages {
		s := models.StartupStage{Name: name}
		var existing models.StartupStage
		if err := db.Where("name = ?", s.Name).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			db.Create(&s)
		}
	}
}

// SeedAdmin creates the admin account from ADMIN_EMAIL / ADMIN_PASSWORD when both are set.
func SeedAdmin(db *gorm.DB) {
	log := logger.WithComponent("seeder")
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("failed to hash admin password")
		return
	}
	admin := models.User{
		Name:     "관리자",
		Email:    email,
		Password: string(hashed),
		Provider: models.ProviderLocal,
		UserRole: types.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.WithError(err).Error("failed to insert admin user")
		return
	}
	log.WithField("email", email).Info("admin user created")
}
