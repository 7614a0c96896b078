package controllers

import (
	"context"
	"encoding/json"
	"jiwoo-back/dto"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCategoryManager struct {
	categories []dto.CategoryDTO
}

func (m *mockCategoryManager) GetCategories(context.Context) ([]dto.CategoryDTO, error) {
	return m.categories, nil
}

func (m *mockCategoryManager) CreateCategory(_ context.Context, name string) (*dto.CategoryDTO, error) {
	category := dto.CategoryDTO{ID: len(m.categories) + 1, Name: name}
	m.categories = append(m.categories, category)
	return &category, nil
}

func TestCategoryController(t *testing.T) {
	service := &mockCategoryManager{categories: []dto.CategoryDTO{{ID: 1, Name: "IT"}}}
	app := fiber.New()
	c := NewCategoryController(service)
	app.Get("/category/names", c.GetCategoryNames)
	app.Post("/category", c.CreateCategory)

	resp, body := doJSON(t, app, http.MethodPost, "/category", map[string]string{"name": "농업"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "농업", body["name"])

	resp, _ = doJSON(t, app, http.MethodPost, "/category", map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err := app.Test(newRequest(http.MethodGet, "/category/names"), -1)
	require.NoError(t, err)
	var categories []dto.CategoryDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	assert.Len(t, categories, 2)
}
