package dto

import "jiwoo-back/types"

type BusinessDTO struct {
	ID                int        `json:"id"`
	BusinessName      string     `json:"businessName"`
	BusinessNumber    string     `json:"businessNumber"`
	BusinessScale     string     `json:"businessScale"`
	BusinessBudget    float64    `json:"businessBudget"`
	BusinessContent   string     `json:"businessContent"`
	BusinessPlatform  string     `json:"businessPlatform"`
	BusinessLocation  string     `json:"businessLocation"`
	BusinessStartDate types.Date `json:"businessStartDate"`
	Nation            string     `json:"nation"`
	InvestmentStatus  string     `json:"investmentStatus"`
	CustomerType      string     `json:"customerType"`
	UserID            int        `json:"userId"`
	StartupStageID    int        `json:"startupStageId"`
	CategoryIDs       []int      `json:"categoryIds,omitempty"`
}
