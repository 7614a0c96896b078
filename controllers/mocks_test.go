package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"jiwoo-back/dto"
	"jiwoo-back/types"
	"jiwoo-back/vo"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

var errNotMocked = errors.New("not mocked")

// asUser stands in for the auth middleware.
func asUser(userID int, email string, role types.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", userID)
		ctx.Locals("email", email)
		ctx.Locals("role", role)
		ctx.Locals("sessionID", "session-1")
		return ctx.Next()
	}
}

func jsonBody(t *testing.T, body interface{}) io.Reader {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return strings.NewReader(string(raw))
}

func postJSON(t *testing.T, path string, body interface{}) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, jsonBody(t, body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = jsonBody(t, body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	out := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

type mockAuthService struct {
	SignupFn       func(ctx context.Context, req dto.SignupDTO) (*dto.UserDTO, error)
	ExistsEmailFn  func(ctx context.Context, email string) (bool, error)
	LoginFn        func(ctx context.Context, email, password string, client dto.ClientInfo) (*dto.TokenDTO, error)
	RefreshFn      func(ctx context.Context, refreshToken string) (*dto.TokenDTO, error)
	LogoutFn       func(ctx context.Context, sessionID string) error
	GetProfileFn   func(ctx context.Context, userID int) (*dto.UserDTO, error)
	EditPasswordFn func(ctx context.Context, userID int, oldPassword, newPassword string) error
	EditInfoFn     func(ctx context.Context, userID int, gender, phoneNo string) error
	WithdrawFn     func(ctx context.Context, userID int) error
}

func (m *mockAuthService) Signup(ctx context.Context, req dto.SignupDTO) (*dto.UserDTO, error) {
	if m.SignupFn == nil {
		return nil, errNotMocked
	}
	return m.SignupFn(ctx, req)
}

func (m *mockAuthService) ExistsEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsEmailFn == nil {
		return false, errNotMocked
	}
	return m.ExistsEmailFn(ctx, email)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string, client dto.ClientInfo) (*dto.TokenDTO, error) {
	if m.LoginFn == nil {
		return nil, errNotMocked
	}
	return m.LoginFn(ctx, email, password, client)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenDTO, error) {
	if m.RefreshFn == nil {
		return nil, errNotMocked
	}
	return m.RefreshFn(ctx, refreshToken)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFn == nil {
		return errNotMocked
	}
	return m.LogoutFn(ctx, sessionID)
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID int) (*dto.UserDTO, error) {
	if m.GetProfileFn == nil {
		return nil, errNotMocked
	}
	return m.GetProfileFn(ctx, userID)
}

func (m *mockAuthService) EditPassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	if m.EditPasswordFn == nil {
		return errNotMocked
	}
	return m.EditPasswordFn(ctx, userID, oldPassword, newPassword)
}

func (m *mockAuthService) EditInfo(ctx context.Context, userID int, gender, phoneNo string) error {
	if m.EditInfoFn == nil {
		return errNotMocked
	}
	return m.EditInfoFn(ctx, userID, gender, phoneNo)
}

func (m *mockAuthService) Withdraw(ctx context.Context, userID int) error {
	if m.WithdrawFn == nil {
		return errNotMocked
	}
	return m.WithdrawFn(ctx, userID)
}

type mockBusinessManager struct {
	FindOwnedFn  func(ctx context.Context, userID, id int) (*dto.BusinessDTO, error)
	FindByUserFn func(ctx context.Context, userID int) ([]dto.BusinessDTO, error)
	RegistFn     func(ctx context.Context, userID int, req dto.BusinessDTO) (*dto.BusinessDTO, error)
	UpdateFn     func(ctx context.Context, userID int, req dto.BusinessDTO) error
	DeleteFn     func(ctx context.Context, userID, id int) error
}

func (m *mockBusinessManager) FindOwnedBusiness(ctx context.Context, userID, id int) (*dto.BusinessDTO, error) {
	if m.FindOwnedFn == nil {
		return nil, errNotMocked
	}
	return m.FindOwnedFn(ctx, userID, id)
}

func (m *mockBusinessManager) FindBusinessesByUser(ctx context.Context, userID int) ([]dto.BusinessDTO, error) {
	if m.FindByUserFn == nil {
		return nil, errNotMocked
	}
	return m.FindByUserFn(ctx, userID)
}

func (m *mockBusinessManager) RegistBusiness(ctx context.Context, userID int, req dto.BusinessDTO) (*dto.BusinessDTO, error) {
	if m.RegistFn == nil {
		return nil, errNotMocked
	}
	return m.RegistFn(ctx, userID, req)
}

func (m *mockBusinessManager) UpdateBusiness(ctx context.Context, userID int, req dto.BusinessDTO) error {
	if m.UpdateFn == nil {
		return errNotMocked
	}
	return m.UpdateFn(ctx, userID, req)
}

func (m *mockBusinessManager) DeleteBusiness(ctx context.Context, userID, id int) error {
	if m.DeleteFn == nil {
		return errNotMocked
	}
	return m.DeleteFn(ctx, userID, id)
}

type mockUserFinder struct {
	users map[string]*dto.UserDTO
}

func (m *mockUserFinder) FindUserByEmail(_ context.Context, email string) (*dto.UserDTO, error) {
	return m.users[email], nil
}

type mockSupportProgramManager struct {
	InsertFn    func(ctx context.Context, req vo.SupportProgramRequestVO) error
	ImportFn    func(ctx context.Context, r io.Reader) (*dto.SupportProgramUploadResult, error)
	ListFn      func(ctx context.Context) ([]dto.SupportProgramDTO, error)
	GetFn       func(ctx context.Context, id int) (*dto.SupportProgramDTO, error)
	DeleteFn    func(ctx context.Context, id int) error
	RecommendFn func(ctx context.Context, userID int) ([]dto.SupportProgramDTO, error)
}

func (m *mockSupportProgramManager) InsertSupportProgram(ctx context.Context, req vo.SupportProgramRequestVO) error {
	if m.InsertFn == nil {
		return errNotMocked
	}
	return m.InsertFn(ctx, req)
}

func (m *mockSupportProgramManager) ImportExcel(ctx context.Context, r io.Reader) (*dto.SupportProgramUploadResult, error) {
	if m.ImportFn == nil {
		return nil, errNotMocked
	}
	return m.ImportFn(ctx, r)
}

func (m *mockSupportProgramManager) GetSupportPrograms(ctx context.Context) ([]dto.SupportProgramDTO, error) {
	if m.ListFn == nil {
		return nil, errNotMocked
	}
	return m.ListFn(ctx)
}

func (m *mockSupportProgramManager) GetSupportProgram(ctx context.Context, id int) (*dto.SupportProgramDTO, error) {
	if m.GetFn == nil {
		return nil, errNotMocked
	}
	return m.GetFn(ctx, id)
}

func (m *mockSupportProgramManager) DeleteSupportProgram(ctx context.Context, id int) error {
	if m.DeleteFn == nil {
		return errNotMocked
	}
	return m.DeleteFn(ctx, id)
}

func (m *mockSupportProgramManager) RecommendForUser(ctx context.Context, userID int) ([]dto.SupportProgramDTO, error) {
	if m.RecommendFn == nil {
		return nil, errNotMocked
	}
	return m.RecommendFn(ctx, userID)
}

type mockMarketResearcher struct {
	SizeFn    func(ctx context.Context, userID, businessID int) (*dto.MarketSizeGrowthDTO, error)
	SimilarFn func(ctx context.Context, userID, businessID int) (*dto.SimilarServicesAnalysisDTO, error)
	HistoryFn func(ctx context.Context, userID int) ([]dto.MarketResearchHistoryDTO, error)
	ExportFn  func(ctx context.Context, userID int) ([]byte, error)
	MailFn    func(ctx context.Context, userID int, email string, id types.SnowflakeID) error
}

func (m *mockMarketResearcher) RunMarketSizeGrowth(ctx context.Context, userID, businessID int) (*dto.MarketSizeGrowthDTO, error) {
	if m.SizeFn == nil {
		return nil, errNotMocked
	}
	return m.SizeFn(ctx, userID, businessID)
}

func (m *mockMarketResearcher) RunSimilarServices(ctx context.Context, userID, businessID int) (*dto.SimilarServicesAnalysisDTO, error) {
	if m.SimilarFn == nil {
		return nil, errNotMocked
	}
	return m.SimilarFn(ctx, userID, businessID)
}

func (m *mockMarketResearcher) GetHistory(ctx context.Context, userID int) ([]dto.MarketResearchHistoryDTO, error) {
	if m.HistoryFn == nil {
		return nil, errNotMocked
	}
	return m.HistoryFn(ctx, userID)
}

func (m *mockMarketResearcher) ExportHistory(ctx context.Context, userID int) ([]byte, error) {
	if m.ExportFn == nil {
		return nil, errNotMocked
	}
	return m.ExportFn(ctx, userID)
}

func (m *mockMarketResearcher) MailHistory(ctx context.Context, userID int, email string, id types.SnowflakeID) error {
	if m.MailFn == nil {
		return errNotMocked
	}
	return m.MailFn(ctx, userID, email, id)
}

type mockBusinessModeler struct {
	SimilarFn func(ctx context.Context, userID int, business dto.BusinessDTO) ([]vo.ResponsePythonServerVO, error)
	AnalyzeFn func(ctx context.Context, services []vo.ResponsePythonServerVO) (string, error)
	ProposeFn func(ctx context.Context, analysis string) (string, error)
}

func (m *mockBusinessModeler) GetSimilarServices(ctx context.Context, userID int, business dto.BusinessDTO) ([]vo.ResponsePythonServerVO, error) {
	if m.SimilarFn == nil {
		return nil, errNotMocked
	}
	return m.SimilarFn(ctx, userID, business)
}

func (m *mockBusinessModeler) AnalyzeBusinessModels(ctx context.Context, services []vo.ResponsePythonServerVO) (string, error) {
	if m.AnalyzeFn == nil {
		return "", errNotMocked
	}
	return m.AnalyzeFn(ctx, services)
}

func (m *mockBusinessModeler) ProposeBusinessModel(ctx context.Context, analysis string) (string, error) {
	if m.ProposeFn == nil {
		return "", errNotMocked
	}
	return m.ProposeFn(ctx, analysis)
}
