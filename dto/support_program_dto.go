package dto

type SupportProgramDTO struct {
	ID                     int    `json:"id"`
	Name                   string `json:"name"`
	Target                 string `json:"target"`
	ScaleOfSupport         string `json:"scaleOfSupport"`
	SupportContent         string `json:"supportContent"`
	SupportCharacteristics string `json:"supportCharacteristics"`
	SupportInfo            string `json:"supportInfo"`
	SupportYear            int    `json:"supportYear"`
	OriginURL              string `json:"originUrl"`
}

type SupportProgramUploadResult struct {
	TotalRows     int      `json:"totalRows"`
	SuccessCount  int      `json:"successCount"`
	SkippedCount  int      `json:"skippedCount"`
	ErrorCount    int      `json:"errorCount"`
	SkippedItems  []string `json:"skippedItems"`
	ErrorMessages []string `json:"errorMessages"`
}
