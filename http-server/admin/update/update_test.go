package update

import (
	"context"
	"errors"
	"fmt"
	"frameshop/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type MockAdminStorage struct {
	mock.Mock
}

func (m *MockAdminStorage) UpdateCostConfigAdmin(ctx context.Context, cfg storage.ProductionCostConfig) (int64, error) {
	args := m.Called(ctx, cfg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminStorage) UpdateStretcherStockAdmin(ctx context.Context, items []storage.StretcherBarStock) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockAdminStorage) UpdateCrossbarStockAdmin(ctx context.Context, items []storage.CrossbarStock) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func TestUpdateCostConfigAdmin(t *testing.T) {
	mockStorage := new(MockAdminStorage)
	mockStorage.On("UpdateCostConfigAdmin", mock.Anything, mock.MatchedBy(func(cfg storage.ProductionCostConfig) bool {
		return cfg.MarginPercent == 25 && cfg.PrinterLifespanMonths == 24
	})).Return(int64(7), nil)

	body := `{"margin_percent": 25, "printer_lifespan_months": 24}`
	rr := httptest.NewRecorder()
	UpdateCostConfigAdmin(slog.Default(), mockStorage).
		ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/cost-config", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":7}`, rr.Body.String())
	mockStorage.AssertExpectations(t)
}

func TestUpdateCostConfigAdmin_Invalid(t *testing.T) {
	mockStorage := new(MockAdminStorage)
	mockStorage.On("UpdateCostConfigAdmin", mock.Anything, mock.Anything).
		Return(int64(0), fmt.Errorf("storage: %w", storage.ErrInvalidCostConfig))

	rr := httptest.NewRecorder()
	UpdateCostConfigAdmin(slog.Default(), mockStorage).
		ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/cost-config", strings.NewReader(`{"margin_percent": -1}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateCostConfigAdmin_WrongMethod(t *testing.T) {
	mockStorage := new(MockAdminStorage)

	rr := httptest.NewRecorder()
	UpdateCostConfigAdmin(slog.Default(), mockStorage).
		ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/cost-config", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	mockStorage.AssertNotCalled(t, "UpdateCostConfigAdmin", mock.Anything, mock.Anything)
}

func TestUpdateStretcherStockAdmin_NormalizesType(t *testing.T) {
	mockStorage := new(MockAdminStorage)
	mockStorage.On("UpdateStretcherStockAdmin", mock.Anything, []storage.StretcherBarStock{
		{Length: 100, Type: "thick", Stock: 5},
		{Length: 60, Type: "thin", Stock: 8},
	}).Return(nil)

	body := `[{"length": 100, "type": "Gruba", "stock": 5}, {"length": 60, "type": "thin", "stock": 8}]`
	rr := httptest.NewRecorder()
	UpdateStretcherStockAdmin(slog.Default(), mockStorage).
		ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/stock/stretchers", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}

func TestUpdateStretcherStockAdmin_UnknownType(t *testing.T) {
	mockStorage := new(MockAdminStorage)

	for _, typ := range []string{"", "auto", "oak"} {
		body := `[{"length": 100, "type": "` + typ + `", "stock": 5}]`
		rr := httptest.NewRecorder()
		UpdateStretcherStockAdmin(slog.Default(), mockStorage).
			ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/stock/stretchers", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rr.Code, typ)
	}

	mockStorage.AssertNotCalled(t, "UpdateStretcherStockAdmin", mock.Anything, mock.Anything)
}

func TestUpdateCrossbarStockAdmin(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"ok", nil, http.StatusOK},
		{"negative", fmt.Errorf("storage: %w", storage.ErrInvalidStockItem), http.StatusBadRequest},
		{"db", errors.New("deadlock"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mockStorage := new(MockAdminStorage)
			mockStorage.On("UpdateCrossbarStockAdmin", mock.Anything, []storage.CrossbarStock{{Length: 100, Stock: 2}}).Return(c.err)

			rr := httptest.NewRecorder()
			UpdateCrossbarStockAdmin(slog.Default(), mockStorage).
				ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/stock/crossbars", strings.NewReader(`[{"length": 100, "stock": 2}]`)))

			assert.Equal(t, c.code, rr.Code)
		})
	}
}
