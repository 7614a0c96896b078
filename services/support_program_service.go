package services

import (
	"context"
	"fmt"
	"io"
	"jiwoo-back/dto"
	"jiwoo-back/models"
	"jiwoo-back/vo"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const RecommendLimit = 10

// Column order of the support program upload sheet. The first row is a header.
var SupportProgramSheetHeader = []string{
	"지원사업명", "지원대상", "지원규모", "지원내용", "지원특징", "사업소개", "사업연도", "상세페이지URL",
}

type SupportProgramStore interface {
	CreateBatch(ctx context.Context, programs []models.SupportProgram) error
	FindAll(ctx context.Context) ([]models.SupportProgram, error)
	FindByID(ctx context.Context, id int) (*models.SupportProgram, error)
	ExistsByNameAndYear(ctx context.Context, name string, year int) (bool, error)
	Delete(ctx context.Context, id int) error
	FindByKeywords(ctx context.Context, keywords []string, limit int) ([]models.SupportProgram, error)
}

type SupportProgramService struct {
	repo       SupportProgramStore
	businesses BusinessStore
	categories CategoryStore
}

func NewSupportProgramService(repo SupportProgramStore, businesses BusinessStore, categories CategoryStore) *SupportProgramService {
	return &SupportProgramService{repo: repo, businesses: businesses, categories: categories}
}

// InsertSupportProgram stores every feed entry. A non-numeric year is rejected.
func (s *SupportProgramService) InsertSupportProgram(ctx context.Context, req vo.SupportProgramRequestVO) error {
	programs := make([]models.SupportProgram, 0, len(req.Data))
	for _, d := range req.Data {
		year, err := parseYear(d.BizYr)
		if err != nil {
			return err
		}
		programs = append(programs, models.SupportProgram{
			Name:                   strings.TrimSpace(d.SuptBizTitlNm),
			Target:                 d.BizSuptTrgtInfo,
			ScaleOfSupport:         d.BizSuptBdgtInfo,
			SupportContent:         d.BizSuptCtnt,
			SupportCharacteristics: d.SuptBizChrct,
			SupportInfo:            d.SuptBizIntrdInfo,
			SupportYear:            year,
			OriginURL:              d.DetlPgURL,
		})
	}
	return s.repo.CreateBatch(ctx, programs)
}

func (s *SupportProgramService) GetSupportPrograms(ctx context.Context) ([]dto.SupportProgramDTO, error) {
	programs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toSupportProgramDTOs(programs), nil
}

// GetSupportProgram returns nil, nil when the program does not exist.
func (s *SupportProgramService) GetSupportProgram(ctx context.Context, id int) (*dto.SupportProgramDTO, error) {
	program, err := s.repo.FindByID(ctx, id)
	if err != nil || program == nil {
		return nil, err
	}
	out := toSupportProgramDTO(*program)
	return &out, nil
}

func (s *SupportProgramService) DeleteSupportProgram(ctx context.Context, id int) error {
	program, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if program == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// ImportExcel reads the first sheet of an xlsx upload. Rows already stored for the same
// name and year are skipped; malformed rows are reported and do not abort the import.
func (s *SupportProgramService) ImportExcel(ctx context.Context, r io.Reader) (*dto.SupportProgramUploadResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	result := &dto.SupportProgramUploadResult{SkippedItems: []string{}, ErrorMessages: []string{}}
	var programs []models.SupportProgram
	seen := make(map[string]bool)

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if isBlankRow(row) {
			continue
		}
		result.TotalRows++
		rowNo := i + 1

		program, err := programFromRow(row)
		if err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("%d행: %v", rowNo, err))
			continue
		}

		key := fmt.Sprintf("%s|%d", program.Name, program.SupportYear)
		exists := seen[key]
		if !exists {
			exists, err = s.repo.ExistsByNameAndYear(ctx, program.Name, program.SupportYear)
			if err != nil {
				return nil, err
			}
		}
		if exists {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, fmt.Sprintf("%s (%d)", program.Name, program.SupportYear))
			continue
		}

		seen[key] = true
		programs = append(programs, program)
	}

	if len(programs) > 0 {
		if err := s.repo.CreateBatch(ctx, programs); err != nil {
			return nil, err
		}
	}
	result.SuccessCount = len(programs)
	return result, nil
}

// RecommendForUser matches programs against the scale, platform and categories of the
// user's businesses.
func (s *SupportProgramService) RecommendForUser(ctx context.Context, userID int) ([]dto.SupportProgramDTO, error) {
	businesses, err := s.businesses.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var keywords []string
	seen := make(map[string]bool)
	add := func(kw string) {
		kw = strings.TrimSpace(kw)
		if kw == "" || seen[kw] {
			return
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}

	for _, b := range businesses {
		add(b.BusinessScale)
		add(b.BusinessPlatform)
		names, err := s.categories.FindNamesByBusinessID(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			add(n)
		}
	}
	if len(keywords) == 0 {
		return []dto.SupportProgramDTO{}, nil
	}

	programs, err := s.repo.FindByKeywords(ctx, keywords, RecommendLimit)
	if err != nil {
		return nil, err
	}
	return toSupportProgramDTOs(programs), nil
}

func programFromRow(row []string) (models.SupportProgram, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	name := cell(0)
	if name == "" {
		return models.SupportProgram{}, fmt.Errorf("지원사업명이 비어 있습니다")
	}
	year, err := parseYear(cell(6))
	if err != nil {
		return models.SupportProgram{}, err
	}

	return models.SupportProgram{
		Name:                   name,
		Target:                 cell(1),
		ScaleOfSupport:         cell(2),
		SupportContent:         cell(3),
		SupportCharacteristics: cell(4),
		SupportInfo:            cell(5),
		SupportYear:            year,
		OriginURL:              cell(7),
	}, nil
}

func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("사업연도 %q 는 숫자가 아닙니다", s)
	}
	return year, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toSupportProgramDTOs(programs []models.SupportProgram) []dto.SupportProgramDTO {
	out := make([]dto.SupportProgramDTO, 0, len(programs))
	for _, p := range programs {
		out = append(out, toSupportProgramDTO(p))
	}
	return out
}

func toSupportProgramDTO(p models.SupportProgram) dto.SupportProgramDTO {
	return dto.SupportProgramDTO{
		ID:                     p.ID,
		Name:                   p.Name,
		Target:                 p.Target,
		ScaleOfSupport:         p.ScaleOfSupport,
		SupportContent:         p.SupportContent,
		SupportCharacteristics: p.SupportCharacteristics,
		SupportInfo:            p.SupportInfo,
		SupportYear:            p.SupportYear,
		OriginURL:              p.OriginURL,
	}
}
