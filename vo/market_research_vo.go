package vo

import "jiwoo-back/dto"

type MarketResearchRequestVO struct {
	BusinessID int `json:"businessId" validate:"required"`
}

// ResponsePythonServerVO is one ranked hit from the analysis server.
type ResponsePythonServerVO struct {
	BusinessName    string              `json:"businessName"`
	Info            dto.BusinessInfoDTO `json:"info"`
	SimilarityScore float64             `json:"similarityScore"`
}

type AnalysisResponseVO struct {
	Analysis string `json:"analysis"`
}

type ProposalRequestVO struct {
	Analysis string `json:"analysis" validate:"required"`
}

type ProposalResponseVO struct {
	Proposal string `json:"proposal"`
}
