package models

import "time"

type Business struct {
	ID                int       `gorm:"primaryKey;column:id"`
	BusinessName      string    `gorm:"column:business_name;size:100"`
	BusinessNumber    string    `gorm:"column:business_number;size:20"`
	BusinessScale     string    `gorm:"column:business_scale;size:50"`
	BusinessBudget    float64   `gorm:"column:business_budget"`
	BusinessContent   string    `gorm:"column:business_content;type:text"`
	BusinessPlatform  string    `gorm:"column:business_platform;size:100"`
	BusinessLocation  string    `gorm:"column:business_location;size:100"`
	BusinessStartDate time.Time `gorm:"column:business_start_date;type:date"`
	Nation            string    `gorm:"column:nation;size:50"`
	InvestmentStatus  string    `gorm:"column:investment_status;size:50"`
	CustomerType      string    `gorm:"column:customer_type;size:20"`
	UserID            int       `gorm:"column:user_id;index"`
	StartupStageID    int       `gorm:"column:startup_stage_id"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (Business) TableName() string {
	return "tbl_business"
}

type StartupStage struct {
	ID   int    `json:"id" gorm:"primaryKey;column:id"`
	Name string `json:"name" gorm:"column:name;size:50;uniqueIndex"`
}

func (StartupStage) TableName() string {
	return "tbl_startup_stage"
}
