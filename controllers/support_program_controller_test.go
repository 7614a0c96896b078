package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"jiwoo-back/dto"
	"jiwoo-back/types"
	"jiwoo-back/vo"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupportProgramApp(service SupportProgramManager, locals fiber.Handler) *fiber.App {
	app := fiber.New()
	if locals != nil {
		app.Use(locals)
	}
	c := NewSupportProgramController(service)
	app.Post("/support-program/insert", c.InsertSupportProgram)
	app.Post("/support-program/upload", c.UploadSupportPrograms)
	app.Get("/support-program/recommend", c.Recommend)
	app.Get("/support-program", c.GetSupportPrograms)
	app.Get("/support-program/:id", c.GetSupportProgram)
	app.Delete("/support-program/:id", c.DeleteSupportProgram)
	return app
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/support-program/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestSupportProgramController_Insert(t *testing.T) {
	var got vo.SupportProgramRequestVO
	service := &mockSupportProgramManager{
		InsertFn: func(_ context.Context, req vo.SupportProgramRequestVO) error {
			got = req
			return nil
		},
	}
	app := newSupportProgramApp(service, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/support-program/insert", map[string]interface{}{
		"data": []map[string]string{{
			"supt_biz_titl_nm": "청년창업사관학교",
			"biz_yr":           "2024",
		}},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "지원 사업 추가 성공", body["message"])
	require.Len(t, got.Data, 1)
	assert.Equal(t, "청년창업사관학교", got.Data[0].SuptBizTitlNm)

	service.InsertFn = func(context.Context, vo.SupportProgramRequestVO) error { return assert.AnError }
	resp, body = doJSON(t, app, http.MethodPost, "/support-program/insert", map[string]interface{}{"data": []interface{}{}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "[ERROR] 지원 사업 추가 실패", body["message"])
}

func TestSupportProgramController_Upload(t *testing.T) {
	var received []byte
	service := &mockSupportProgramManager{
		ImportFn: func(_ context.Context, r io.Reader) (*dto.SupportProgramUploadResult, error) {
			var err error
			received, err = io.ReadAll(r)
			require.NoError(t, err)
			return &dto.SupportProgramUploadResult{TotalRows: 2, SuccessCount: 2}, nil
		},
	}
	app := newSupportProgramApp(service, asUser(1, "admin@example.com", types.RoleAdmin))

	resp, err := app.Test(uploadRequest(t, "programs.xlsx", []byte("fake workbook")), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "fake workbook", string(received))

	var body struct {
		Message string                         `json:"message"`
		Result  dto.SupportProgramUploadResult `json:"result"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "지원 사업 업로드 완료", body.Message)
	assert.Equal(t, 2, body.Result.SuccessCount)

	resp, err = app.Test(uploadRequest(t, "programs.csv", []byte("a,b")), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSupportProgramController_Get(t *testing.T) {
	service := &mockSupportProgramManager{
		GetFn: func(_ context.Context, id int) (*dto.SupportProgramDTO, error) {
			if id == 1 {
				return &dto.SupportProgramDTO{ID: 1, Name: "청년창업사관학교"}, nil
			}
			return nil, nil
		},
	}
	app := newSupportProgramApp(service, nil)

	resp, body := doJSON(t, app, http.MethodGet, "/support-program/1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "청년창업사관학교", body["name"])

	resp, body = doJSON(t, app, http.MethodGet, "/support-program/2", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "[ERROR] 지원 사업을 찾을 수 없습니다", body["message"])
}

func TestSupportProgramController_Recommend(t *testing.T) {
	service := &mockSupportProgramManager{
		RecommendFn: func(_ context.Context, userID int) ([]dto.SupportProgramDTO, error) {
			assert.Equal(t, 5, userID)
			return []dto.SupportProgramDTO{{ID: 1}, {ID: 2}}, nil
		},
	}

	resp, _ := doJSON(t, newSupportProgramApp(service, nil), http.MethodGet, "/support-program/recommend", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err := newSupportProgramApp(service, asUser(5, "kim@example.com", types.RoleUser)).
		Test(newRequest(http.MethodGet, "/support-program/recommend"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var programs []dto.SupportProgramDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&programs))
	assert.Len(t, programs, 2)
}
