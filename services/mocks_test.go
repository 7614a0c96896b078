package services

import (
	"context"
	"errors"
	"jiwoo-back/dto"
	"jiwoo-back/models"
	"jiwoo-back/types"
	"jiwoo-back/vo"
	"time"
)

var errNotMocked = errors.New("not mocked")

type mockUserStore struct {
	createFn        func(ctx context.Context, user *models.User) error
	findByIDFn      func(ctx context.Context, id int) (*models.User, error)
	findByEmailFn   func(ctx context.Context, email string) (*models.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
	updateFn        func(ctx context.Context, user *models.User) error
	deleteFn        func(ctx context.Context, id int) error
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return errNotMocked
}

func (m *mockUserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, errNotMocked
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, errNotMocked
}

func (m *mockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, errNotMocked
}

func (m *mockUserStore) Update(ctx context.Context, user *models.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return errNotMocked
}

func (m *mockUserStore) Delete(ctx context.Context, id int) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errNotMocked
}

// memorySessions keeps sessions in a map so login/refresh/logout can be chained.
type memorySessions struct {
	sessions map[string]*models.UserSession
	now      func() time.Time
}

func newMemorySessions(now func() time.Time) *memorySessions {
	return &memorySessions{sessions: map[string]*models.UserSession{}, now: now}
}

func (m *memorySessions) Create(_ context.Context, session *models.UserSession) error {
	cp := *session
	m.sessions[session.SessionID] = &cp
	return nil
}

func (m *memorySessions) FindActive(_ context.Context, sessionID string) (*models.UserSession, error) {
	s, ok := m.sessions[sessionID]
	if !ok || !s.IsActive || !s.ExpiresAt.After(m.now()) {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memorySessions) Rotate(_ context.Context, sessionID string, refreshTokenID int64, expiresAt time.Time) error {
	if s, ok := m.sessions[sessionID]; ok {
		s.RefreshTokenID = refreshTokenID
		s.ExpiresAt = expiresAt
	}
	return nil
}

func (m *memorySessions) Touch(_ context.Context, sessionID string) error {
	if s, ok := m.sessions[sessionID]; ok {
		s.LastActivityAt = m.now()
	}
	return nil
}

func (m *memorySessions) Deactivate(_ context.Context, sessionID string) error {
	if s, ok := m.sessions[sessionID]; ok {
		s.IsActive = false
	}
	return nil
}

type mockBusinessStore struct {
	createFn          func(ctx context.Context, business *models.Business, categoryIDs []int) error
	findByIDFn        func(ctx context.Context, id int) (*models.Business, error)
	findByUserIDFn    func(ctx context.Context, userID int) ([]models.Business, error)
	findCategoryIDsFn func(ctx context.Context, businessID int) ([]int, error)
	updateFn          func(ctx context.Context, business *models.Business, categoryIDs []int) error
	deleteFn          func(ctx context.Context, id int) error
}

func (m *mockBusinessStore) Create(ctx context.Context, business *models.Business, categoryIDs []int) error {
	if m.createFn != nil {
		return m.createFn(ctx, business, categoryIDs)
	}
	return errNotMocked
}

func (m *mockBusinessStore) FindByID(ctx context.Context, id int) (*models.Business, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, errNotMocked
}

func (m *mockBusinessStore) FindByUserID(ctx context.Context, userID int) ([]models.Business, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, errNotMocked
}

func (m *mockBusinessStore) FindCategoryIDs(ctx context.Context, businessID int) ([]int, error) {
	if m.findCategoryIDsFn != nil {
		return m.findCategoryIDsFn(ctx, businessID)
	}
	return nil, errNotMocked
}

func (m *mockBusinessStore) Update(ctx context.Context, business *models.Business, categoryIDs []int) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, business, categoryIDs)
	}
	return errNotMocked
}

func (m *mockBusinessStore) Delete(ctx context.Context, id int) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errNotMocked
}

type mockCategoryStore struct {
	findAllFn   func(ctx context.Context) ([]models.Category, error)
	createFn    func(ctx context.Context, category *models.Category) error
	findNamesFn func(ctx context.Context, businessID int) ([]string, error)
}

func (m *mockCategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, errNotMocked
}

func (m *mockCategoryStore) Create(ctx context.Context, category *models.Category) error {
	if m.createFn != nil {
		return m.createFn(ctx, category)
	}
	return errNotMocked
}

func (m *mockCategoryStore) FindNamesByBusinessID(ctx context.Context, businessID int) ([]string, error) {
	if m.findNamesFn != nil {
		return m.findNamesFn(ctx, businessID)
	}
	return nil, errNotMocked
}

type mockSupportProgramStore struct {
	createBatchFn    func(ctx context.Context, programs []models.SupportProgram) error
	findAllFn        func(ctx context.Context) ([]models.SupportProgram, error)
	findByIDFn       func(ctx context.Context, id int) (*models.SupportProgram, error)
	existsFn         func(ctx context.Context, name string, year int) (bool, error)
	deleteFn         func(ctx context.Context, id int) error
	findByKeywordsFn func(ctx context.Context, keywords []string, limit int) ([]models.SupportProgram, error)
}

func (m *mockSupportProgramStore) CreateBatch(ctx context.Context, programs []models.SupportProgram) error {
	if m.createBatchFn != nil {
		return m.createBatchFn(ctx, programs)
	}
	return errNotMocked
}

func (m *mockSupportProgramStore) FindAll(ctx context.Context) ([]models.SupportProgram, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, errNotMocked
}

func (m *mockSupportProgramStore) FindByID(ctx context.Context, id int) (*models.SupportProgram, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, errNotMocked
}

func (m *mockSupportProgramStore) ExistsByNameAndYear(ctx context.Context, name string, year int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, name, year)
	}
	return false, errNotMocked
}

func (m *mockSupportProgramStore) Delete(ctx context.Context, id int) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errNotMocked
}

func (m *mockSupportProgramStore) FindByKeywords(ctx context.Context, keywords []string, limit int) ([]models.SupportProgram, error) {
	if m.findByKeywordsFn != nil {
		return m.findByKeywordsFn(ctx, keywords, limit)
	}
	return nil, errNotMocked
}

type mockAnswerGenerator struct {
	prompts []string
	answer  string
	err     error
}

func (m *mockAnswerGenerator) GenerateAnswer(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.answer, m.err
}

type mockSearcher struct {
	calls []dto.BusinessInfoDTO
	hits  []vo.ResponsePythonServerVO
	err   error
}

func (m *mockSearcher) SearchSimilarCompanies(_ context.Context, info dto.BusinessInfoDTO) ([]vo.ResponsePythonServerVO, error) {
	m.calls = append(m.calls, info)
	return m.hits, m.err
}

type mockCategoryNames struct {
	calls []int
	names string
	err   error
}

func (m *mockCategoryNames) GetCategoryNameByBusinessID(_ context.Context, businessID int) (string, error) {
	m.calls = append(m.calls, businessID)
	return m.names, m.err
}

type mockBusinessFinder struct {
	business *dto.BusinessDTO
	err      error
}

func (m *mockBusinessFinder) FindOwnedBusiness(_ context.Context, _, _ int) (*dto.BusinessDTO, error) {
	return m.business, m.err
}

type mockHistoryStore struct {
	created   []*models.MarketResearchHistory
	createErr error
	rows      []models.MarketResearchHistory
	byID      *models.MarketResearchHistory
}

func (m *mockHistoryStore) Create(_ context.Context, history *models.MarketResearchHistory) error {
	m.created = append(m.created, history)
	return m.createErr
}

func (m *mockHistoryStore) FindByUserID(_ context.Context, _ int) ([]models.MarketResearchHistory, error) {
	return m.rows, nil
}

func (m *mockHistoryStore) FindByID(_ context.Context, _ types.SnowflakeID) (*models.MarketResearchHistory, error) {
	return m.byID, nil
}

type memoryCache struct {
	values map[string]string
}

func (m *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.values[key] = value
	return nil
}

type mockMailer struct {
	to      []string
	subject string
	body    string
	err     error
}

func (m *mockMailer) Send(to []string, subject, htmlBody string) error {
	m.to, m.subject, m.body = to, subject, htmlBody
	return m.err
}
