package models

import (
	"jiwoo-back/controllers/idgen"
	"jiwoo-back/types"
	"time"

	"gorm.io/gorm"
)

const (
	ResearchTypeMarketSizeGrowth = "MARKET_SIZE_GROWTH"
	ResearchTypeSimilarServices  = "SIMILAR_SERVICES"
)

type MarketResearchHistory struct {
	ID              types.SnowflakeID `gorm:"primaryKey;column:id;autoIncrement:false"`
	UserID          int               `gorm:"column:user_id;index"`
	BusinessID      int               `gorm:"column:business_id"`
	Type            string            `gorm:"column:type;size:30"`
	MarketSize      string            `gorm:"column:market_size;type:text"`
	GrowthRate      string            `gorm:"column:growth_rate;type:text"`
	SimilarServices string            `gorm:"column:similar_services;type:text"`
	Analysis        string            `gorm:"column:analysis;type:text"`
	CreatedAt       time.Time         `gorm:"column:created_at"`
}

func (MarketResearchHistory) TableName() string {
	return "tbl_market_research_history"
}

func (h *MarketResearchHistory) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == 0 {
		h.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}
