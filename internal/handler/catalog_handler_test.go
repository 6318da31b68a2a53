package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gift-fulfillment/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogRouter(svc *MockCatalogService) http.Handler {
	h := NewCatalogHandler(svc, zerolog.Nop())
	r := chi.NewRouter()
	r.Get("/api/products", h.ListProducts)
	r.Get("/api/products/{id}", h.GetProduct)
	r.Get("/api/reps", h.ListReps)
	r.Get("/api/reps/{id}", h.GetRep)
	return r
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newCatalogRouter(mockService)

	products := []model.Product{
		{ID: "prod_001", Name: "Welcome Gift Box", SKU: "GIFT-WELCOME-001", PriceCents: 4500},
		{ID: "prod_002", Name: "Premium Thank You Package", SKU: "GIFT-THANKYOU-001", PriceCents: 7500},
	}

	mockService.On("ListProducts", mock.Anything).Return(products, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "GIFT-WELCOME-001", resp[0].SKU)
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newCatalogRouter(mockService)

	product := &model.Product{ID: "prod_003", Name: "Celebration Bundle", SKU: "GIFT-CELEBRATE-001", PriceCents: 12000}

	mockService.On("GetProduct", mock.Anything, "prod_003").Return(product, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products/prod_003", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(12000), resp.PriceCents)
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newCatalogRouter(mockService)

	mockService.On("GetProduct", mock.Anything, "prod_missing").
		Return(nil, model.NewNotFoundError("Product", "prod_missing"))

	req := httptest.NewRequest(http.MethodGet, "/api/products/prod_missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.ErrCodeNotFound, resp.Error)
	assert.Equal(t, "Product with id 'prod_missing' not found", resp.Message)
}

func TestCatalogHandler_ListReps(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newCatalogRouter(mockService)

	reps := []model.Rep{
		{ID: "rep_001", FirstName: "Sarah", LastName: "Johnson", Email: "sarah.johnson@example.com"},
	}

	mockService.On("ListReps", mock.Anything).Return(reps, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reps", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []model.Rep
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "rep_001", resp[0].ID)
}

func TestCatalogHandler_GetRep_NotFound(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newCatalogRouter(mockService)

	mockService.On("GetRep", mock.Anything, "rep_missing").
		Return(nil, model.NewNotFoundError("Rep", "rep_missing"))

	req := httptest.NewRequest(http.MethodGet, "/api/reps/rep_missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
