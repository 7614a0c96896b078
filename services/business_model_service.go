package services

import (
	"context"
	"fmt"
	"jiwoo-back/dto"
	"jiwoo-back/vo"
	"strings"
)

type BusinessModelService struct {
	llm        AnswerGenerator
	searcher   SimilarCompanySearcher
	businesses BusinessFinder
	categories CategoryNameFinder
}

func NewBusinessModelService(llm AnswerGenerator, searcher SimilarCompanySearcher, businesses BusinessFinder, categories CategoryNameFinder) *BusinessModelService {
	return &BusinessModelService{llm: llm, searcher: searcher, businesses: businesses, categories: categories}
}

// GetSimilarServices searches companies similar to one of the user's stored businesses,
// or to a custom field typed in as the business name when no id is given.
func (s *BusinessModelService) GetSimilarServices(ctx context.Context, userID int, business dto.BusinessDTO) ([]vo.ResponsePythonServerVO, error) {
	field := strings.TrimSpace(business.BusinessName)
	if business.ID > 0 {
		owned, err := s.businesses.FindOwnedBusiness(ctx, userID, business.ID)
		if err != nil {
			return nil, err
		}
		business = *owned
		field = business.BusinessName

		names, err := s.categories.GetCategoryNameByBusinessID(ctx, business.ID)
		if err != nil {
			return nil, err
		}
		if names != "" {
			field = names
		}
	}
	return s.searcher.SearchSimilarCompanies(ctx, BuildBusinessInfo(business, field))
}

func (s *BusinessModelService) AnalyzeBusinessModels(ctx context.Context, services []vo.ResponsePythonServerVO) (string, error) {
	if len(services) == 0 {
		return "", fmt.Errorf("no similar services to analyze")
	}

	var b strings.Builder
	b.WriteString("다음 유사 기업들의 비즈니스 모델을 분석해 주세요. 각 기업의 수익 구조, 핵심 고객, 가치 제안을 정리하세요.\n\n")
	for i, svc := range services {
		fmt.Fprintf(&b, "%d. %s (유사도: %.2f)\n", i+1, svc.BusinessName, svc.SimilarityScore)
		fmt.Fprintf(&b, "   분야: %s, 플랫폼: %s, 규모: %s, 고객 유형: %s, 투자 현황: %s\n",
			svc.Info.BusinessField,
			svc.Info.BusinessPlatform,
			svc.Info.BusinessScale,
			svc.Info.CustomerType,
			svc.Info.InvestmentStatus,
		)
	}
	return s.llm.GenerateAnswer(ctx, b.String())
}

func (s *BusinessModelService) ProposeBusinessModel(ctx context.Context, analysis string) (string, error) {
	prompt := fmt.Sprintf(`다음은 유사 기업들의 비즈니스 모델 분석 결과입니다.
%s

이 분석을 바탕으로 우리 사업에 적합한 비즈니스 모델을 제안해 주세요. 수익 모델, 목표 고객, 차별화 전략을 포함하세요.`,
		strings.TrimSpace(analysis))
	return s.llm.GenerateAnswer(ctx, prompt)
}
