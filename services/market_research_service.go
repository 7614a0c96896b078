package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html"
	"jiwoo-back/cache"
	"jiwoo-back/dto"
	"jiwoo-back/logger"
	"jiwoo-back/mailer"
	"jiwoo-back/models"
	"jiwoo-back/types"
	"jiwoo-back/vo"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	NoInfo = "정보 없음"

	marketSizeMarker = "시장 규모:"
	growthRateMarker = "성장률:"
)

type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

type SimilarCompanySearcher interface {
	SearchSimilarCompanies(ctx context.Context, info dto.BusinessInfoDTO) ([]vo.ResponsePythonServerVO, error)
}

type CategoryNameFinder interface {
	GetCategoryNameByBusinessID(ctx context.Context, businessID int) (string, error)
}

type BusinessFinder interface {
	FindOwnedBusiness(ctx context.Context, userID, id int) (*dto.BusinessDTO, error)
}

type HistoryStore interface {
	Create(ctx context.Context, history *models.MarketResearchHistory) error
	FindByUserID(ctx context.Context, userID int) ([]models.MarketResearchHistory, error)
	FindByID(ctx context.Context, id types.SnowflakeID) (*models.MarketResearchHistory, error)
}

type MarketResearchService struct {
	llm        AnswerGenerator
	searcher   SimilarCompanySearcher
	categories CategoryNameFinder
	businesses BusinessFinder
	history    HistoryStore
	cache      cache.Cache
	cacheTTL   time.Duration
	mailer     mailer.Mailer
}

type MarketResearchDeps struct {
	LLM        AnswerGenerator
	Searcher   SimilarCompanySearcher
	Categories CategoryNameFinder
	Businesses BusinessFinder
	History    HistoryStore
	Cache      cache.Cache
	CacheTTL   time.Duration
	Mailer     mailer.Mailer
}

func NewMarketResearchService(deps MarketResearchDeps) *MarketResearchService {
	c := deps.Cache
	if c == nil {
		c = cache.Nop{}
	}
	return &MarketResearchService{
		llm:        deps.LLM,
		searcher:   deps.Searcher,
		categories: deps.Categories,
		businesses: deps.Businesses,
		history:    deps.History,
		cache:      c,
		cacheTTL:   deps.CacheTTL,
		mailer:     deps.Mailer,
	}
}

// GetMarketSizeAndGrowth asks the LLM for the market size and growth rate of the
// business's field.
func (s *MarketResearchService) GetMarketSizeAndGrowth(ctx context.Context, business dto.BusinessDTO) (*dto.MarketSizeGrowthDTO, error) {
	categoryNames, err := s.categories.GetCategoryNameByBusinessID(ctx, business.ID)
	if err != nil {
		return nil, err
	}

	prompt := BuildMarketSizePrompt(business, categoryNames)
	answer, err := s.cachedAnswer(ctx, fmt.Sprintf("market-size:%d:", business.ID), prompt)
	if err != nil {
		return nil, err
	}

	marketSize, growthRate := ParseMarketSizeAndGrowth(answer)
	return &dto.MarketSizeGrowthDTO{MarketSize: marketSize, GrowthRate: growthRate}, nil
}

// AnalyzeSimilarServices ranks similar companies through the analysis server and
// summarizes them with the LLM. Analysis server failures are returned as is.
func (s *MarketResearchService) AnalyzeSimilarServices(ctx context.Context, business dto.BusinessDTO) (*dto.SimilarServicesAnalysisDTO, error) {
	categoryNames, err := s.categories.GetCategoryNameByBusinessID(ctx, business.ID)
	if err != nil {
		return nil, err
	}

	hits, err := s.searcher.SearchSimilarCompanies(ctx, BuildBusinessInfo(business, categoryNames))
	if err != nil {
		return nil, err
	}

	services := FormatSimilarServices(hits)
	analysis, err := s.llm.GenerateAnswer(ctx, BuildSimilarServicesPrompt(categoryNames, services))
	if err != nil {
		return nil, err
	}

	return &dto.SimilarServicesAnalysisDTO{SimilarServices: services, Analysis: analysis}, nil
}

// RunMarketSizeGrowth resolves an owned business, runs the analysis and records it.
func (s *MarketResearchService) RunMarketSizeGrowth(ctx context.Context, userID, businessID int) (*dto.MarketSizeGrowthDTO, error) {
	business, err := s.businesses.FindOwnedBusiness(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}

	result, err := s.GetMarketSizeAndGrowth(ctx, *business)
	if err != nil {
		return nil, err
	}

	s.record(ctx, &models.MarketResearchHistory{
		UserID:     userID,
		BusinessID: businessID,
		Type:       models.ResearchTypeMarketSizeGrowth,
		MarketSize: result.MarketSize,
		GrowthRate: result.GrowthRate,
	})
	return result, nil
}

func (s *MarketResearchService) RunSimilarServices(ctx context.Context, userID, businessID int) (*dto.SimilarServicesAnalysisDTO, error) {
	business, err := s.businesses.FindOwnedBusiness(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}

	result, err := s.AnalyzeSimilarServices(ctx, *business)
	if err != nil {
		return nil, err
	}

	s.record(ctx, &models.MarketResearchHistory{
		UserID:          userID,
		BusinessID:      businessID,
		Type:            models.ResearchTypeSimilarServices,
		SimilarServices: strings.Join(result.SimilarServices, "\n"),
		Analysis:        result.Analysis,
	})
	return result, nil
}

func (s *MarketResearchService) GetHistory(ctx context.Context, userID int) ([]dto.MarketResearchHistoryDTO, error) {
	rows, err := s.history.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarketResearchHistoryDTO, 0, len(rows))
	for _, h := range rows {
		out = append(out, toHistoryDTO(h))
	}
	return out, nil
}

// ExportHistory renders the user's history as an xlsx workbook.
func (s *MarketResearchService) ExportHistory(ctx context.Context, userID int) ([]byte, error) {
	rows, err := s.history.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "시장조사 이력"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := []interface{}{"ID", "사업 ID", "유형", "시장 규모", "성장률", "유사 서비스", "분석", "조회일"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, h := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			h.ID.String(), h.BusinessID, h.Type, h.MarketSize, h.GrowthRate,
			h.SimilarServices, h.Analysis, h.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheet, "D", "G", 40); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MailHistory sends one history entry to the given address. Only the owner may mail it.
func (s *MarketResearchService) MailHistory(ctx context.Context, userID int, email string, id types.SnowflakeID) error {
	h, err := s.history.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return ErrNotFound
	}
	if h.UserID != userID {
		return ErrForbidden
	}
	if s.mailer == nil {
		return mailer.ErrNotConfigured
	}

	subject := fmt.Sprintf("[지우] 시장 조사 결과 (%s)", h.CreatedAt.Format(types.DateLayout))
	return s.mailer.Send([]string{email}, subject, renderHistoryMail(h))
}

func (s *MarketResearchService) cachedAnswer(ctx context.Context, prefix, prompt string) (string, error) {
	log := logger.WithComponent("market-research")
	sum := sha256.Sum256([]byte(prompt))
	key := prefix + hex.EncodeToString(sum[:])

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		log.WithError(err).Warn("cache lookup failed")
	} else if ok {
		return cached, nil
	}

	answer, err := s.llm.GenerateAnswer(ctx, prompt)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, key, answer, s.cacheTTL); err != nil {
		log.WithError(err).Warn("cache store failed")
	}
	return answer, nil
}

func (s *MarketResearchService) record(ctx context.Context, h *models.MarketResearchHistory) {
	if s.history == nil {
		return
	}
	if err := s.history.Create(ctx, h); err != nil {
		logger.WithComponent("market-research").
			WithError(err).
			WithField("business_id", h.BusinessID).
			Error("failed to save market research history")
	}
}

// ParseMarketSizeAndGrowth extracts the two labelled sections of an LLM answer.
// Each section runs until the other marker or the end of the text. A missing or
// empty section yields NoInfo.
func ParseMarketSizeAndGrowth(text string) (marketSize, growthRate string) {
	sizeAt := strings.Index(text, marketSizeMarker)
	growthAt := strings.Index(text, growthRateMarker)
	return section(text, sizeAt, len(marketSizeMarker), growthAt),
		section(text, growthAt, len(growthRateMarker), sizeAt)
}

func section(text string, at, markerLen, otherAt int) string {
	if at < 0 {
		return NoInfo
	}
	start := at + markerLen
	end := len(text)
	if otherAt > at {
		end = otherAt
	}
	value := strings.TrimSpace(text[start:end])
	if value == "" {
		return NoInfo
	}
	return value
}

// FormatDate renders t as yyyy-MM-dd, or nil when t is nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(types.DateLayout)
	return &s
}

func FormatSimilarServices(hits []vo.ResponsePythonServerVO) []string {
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, fmt.Sprintf("%s (유사도: %.2f)", h.BusinessName, h.SimilarityScore))
	}
	return out
}

func BuildBusinessInfo(business dto.BusinessDTO, categoryNames string) dto.BusinessInfoDTO {
	var start string
	if !business.BusinessStartDate.IsZero() {
		start = *FormatDate(&business.BusinessStartDate.Time)
	}
	return dto.BusinessInfoDTO{
		BusinessPlatform:  business.BusinessPlatform,
		BusinessScale:     business.BusinessScale,
		BusinessField:     categoryNames,
		BusinessStartDate: start,
		InvestmentStatus:  business.InvestmentStatus,
		CustomerType:      business.CustomerType,
	}
}

func BuildMarketSizePrompt(business dto.BusinessDTO, categoryNames string) string {
	return fmt.Sprintf(`다음 사업 정보를 바탕으로 해당 분야의 시장 규모와 성장률을 알려주세요.
사업 분야: %s
사업 규모: %s
국가: %s
고객 유형: %s
사업 플랫폼: %s
사업 내용: %s

반드시 아래 형식으로만 답변하세요.
시장 규모: (금액과 근거)
성장률: (연평균 성장률과 전망)`,
		categoryNames,
		business.BusinessScale,
		business.Nation,
		business.CustomerType,
		business.BusinessPlatform,
		business.BusinessContent,
	)
}

func BuildSimilarServicesPrompt(categoryNames string, services []string) string {
	return fmt.Sprintf(`다음은 '%s' 분야 사업과 유사한 서비스 목록입니다.
%s

각 서비스의 특징과 강점을 분석하고, 우리 사업이 참고할 점을 정리해 주세요.`,
		categoryNames,
		strings.Join(services, "\n"),
	)
}

func toHistoryDTO(h models.MarketResearchHistory) dto.MarketResearchHistoryDTO {
	out := dto.MarketResearchHistoryDTO{
		ID:         h.ID,
		BusinessID: h.BusinessID,
		Type:       h.Type,
		MarketSize: h.MarketSize,
		GrowthRate: h.GrowthRate,
		Analysis:   h.Analysis,
		CreatedAt:  h.CreatedAt,
	}
	if h.SimilarServices != "" {
		out.SimilarServices = strings.Split(h.SimilarServices, "\n")
	}
	return out
}

func renderHistoryMail(h *models.MarketResearchHistory) string {
	var b strings.Builder
	b.WriteString("<h2>시장 조사 결과</h2>")
	fmt.Fprintf(&b, "<p>조회일: %s</p>", h.CreatedAt.Format("2006-01-02 15:04"))

	switch h.Type {
	case models.ResearchTypeMarketSizeGrowth:
		fmt.Fprintf(&b, "<h3>시장 규모</h3><p>%s</p>", html.EscapeString(h.MarketSize))
		fmt.Fprintf(&b, "<h3>성장률</h3><p>%s</p>", html.EscapeString(h.GrowthRate))
	case models.ResearchTypeSimilarServices:
		b.WriteString("<h3>유사 서비스</h3><ul>")
		for _, s := range strings.Split(h.SimilarServices, "\n") {
			if s != "" {
				fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(s))
			}
		}
		b.WriteString("</ul>")
		fmt.Fprintf(&b, "<h3>분석</h3><p>%s</p>",
			strings.ReplaceAll(html.EscapeString(h.Analysis), "\n", "<br>"))
	}
	return b.String()
}
