package vo

import "jiwoo-back/types"

type BusinessRequestVO struct {
	BusinessName      string          `json:"businessName" validate:"required"`
	BusinessNumber    string          `json:"businessNumber" validate:"required"`
	BusinessScale     string          `json:"businessScale"`
	BusinessBudget    types.FlexFloat `json:"businessBudget"`
	BusinessContent   string          `json:"businessContent"`
	BusinessPlatform  string          `json:"businessPlatform"`
	BusinessLocation  string          `json:"businessLocation"`
	BusinessStartDate types.Date      `json:"businessStartDate"`
	Nation            string          `json:"nation"`
	InvestmentStatus  string          `json:"investmentStatus"`
	CustomerType      string          `json:"customerType"`
	StartupStageID    types.FlexInt   `json:"startupStageId"`
	CategoryIDs       []types.FlexInt `json:"categoryIds"`
	Email             string          `json:"email"`
}

type CategoryRequestVO struct {
	Name string `json:"name" validate:"required"`
}

// BusinessModelRequestVO carries a stored business (id set) or a custom field in businessName.
type BusinessModelRequestVO struct {
	ID int `json:"id"`
	BusinessRequestVO
}
