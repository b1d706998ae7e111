package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bugstore/internal/domain"
	"bugstore/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCustomerService struct {
	customers []domain.Customer
	page      int
	perPage   int
	calls     int
}

func (s *stubCustomerService) Create(context.Context, service.CreateCustomerInput) (*domain.Customer, error) {
	return nil, nil
}

func (s *stubCustomerService) Get(context.Context, uuid.UUID) (*domain.Customer, error) {
	return nil, nil
}

func (s *stubCustomerService) List(_ context.Context, page, perPage int) ([]domain.Customer, int, error) {
	s.calls++
	s.page, s.perPage = page, perPage
	return s.customers, len(s.customers), nil
}

func (s *stubCustomerService) Update(context.Context, uuid.UUID, domain.CustomerPatch) (*domain.Customer, error) {
	return nil, nil
}

func (s *stubCustomerService) Delete(context.Context, uuid.UUID) error {
	return nil
}

func customerRoutes(t *testing.T, stub *stubCustomerService) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	h := NewCustomerHandler(stub)
	mux.HandleFunc("GET /customers", h.List)
	return mux
}

func TestListCustomers_DefaultPagination(t *testing.T) {
	stub := &stubCustomerService{}
	mux := customerRoutes(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stub.page)
	assert.Equal(t, 25, stub.perPage)
}

func TestListCustomers_ExplicitPagination(t *testing.T) {
	stub := &stubCustomerService{}
	mux := customerRoutes(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/customers?page=3&per_page=10", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, stub.page)
	assert.Equal(t, 10, stub.perPage)
}

func TestListCustomers_RejectsUnparsablePagination(t *testing.T) {
	for _, query := range []string{"?page=abc", "?per_page=abc", "?page=1.5"} {
		stub := &stubCustomerService{}
		mux := customerRoutes(t, stub)

		req := httptest.NewRequest(http.MethodGet, "/customers"+query, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %s", query)
		assert.Equal(t, 0, stub.calls, "the service is not reached for query %s", query)

		var resp struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_failed", resp.Error.Code)
		assert.NotEmpty(t, resp.Error.Message)
	}
}
