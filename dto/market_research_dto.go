package dto

import (
	"jiwoo-back/types"
	"time"
)

type MarketSizeGrowthDTO struct {
	MarketSize string `json:"marketSize"`
	GrowthRate string `json:"growthRate"`
}

type SimilarServicesAnalysisDTO struct {
	SimilarServices []string `json:"similarServices"`
	Analysis        string   `json:"analysis"`
}

// BusinessInfoDTO is the company description the analysis server embeds and searches by.
type BusinessInfoDTO struct {
	BusinessPlatform  string `json:"businessPlatform"`
	BusinessScale     string `json:"businessScale"`
	BusinessField     string `json:"business_field"`
	BusinessStartDate string `json:"businessStartDate"`
	InvestmentStatus  string `json:"investmentStatus"`
	CustomerType      string `json:"customerType"`
}

type MarketResearchHistoryDTO struct {
	ID              types.SnowflakeID `json:"id"`
	BusinessID      int               `json:"businessId"`
	Type            string            `json:"type"`
	MarketSize      string            `json:"marketSize,omitempty"`
	GrowthRate      string            `json:"growthRate,omitempty"`
	SimilarServices []string          `json:"similarServices,omitempty"`
	Analysis        string            `json:"analysis,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}
