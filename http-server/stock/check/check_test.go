package check

import (
	"context"
	"errors"
	"frameshop/internal/service/frame"
	"frameshop/internal/storage"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type MockStockChecker struct {
	mock.Mock
}

func (m *MockStockChecker) CheckStock(ctx context.Context, dimensions string, frameType frame.FrameType, quantity int) (*frame.StockCheck, error) {
	args := m.Called(ctx, dimensions, frameType, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*frame.StockCheck), args.Error(1)
}

func TestCheckStock_Shortage(t *testing.T) {
	mockChecker := new(MockStockChecker)

	req := frame.CalculateStretcherRequirement(frame.CanvasDimensions{Width: 150, Height: 100}, frame.FrameThick)
	result := &frame.StockCheck{
		Requirement: req,
		Report: frame.CheckStockAvailability(req, 3,
			[]storage.StretcherBarStock{{Length: 150, Type: "thick", Stock: 4}, {Length: 100, Type: "thick", Stock: 2}},
			[]storage.CrossbarStock{{Length: 100, Stock: 1}}),
	}

	mockChecker.On("CheckStock", mock.Anything, "150x100", frame.FrameThick, 3).Return(result, nil)

	handler := CheckStock(slog.Default(), mockChecker)

	body := `{"dimensions": "150x100", "frame_type": "thick", "quantity": 3}`
	httpReq := httptest.NewRequest(http.MethodPost, "/api/stock/check", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httpReq)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp frame.StockCheck
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	assert.False(t, resp.Report.Available)
	require.Len(t, resp.Report.Missing, 3)
	assert.Equal(t, 2, resp.Report.Missing[0].Missing)
	assert.Equal(t, 4, resp.Report.Missing[1].Missing)
	assert.Equal(t, frame.ComponentCrossbar, resp.Report.Missing[2].Component)

	mockChecker.AssertExpectations(t)
}

func TestCheckStock_DefaultQuantity(t *testing.T) {
	mockChecker := new(MockStockChecker)

	mockChecker.On("CheckStock", mock.Anything, "60x40", frame.FrameType(""), 1).
		Return(&frame.StockCheck{Report: frame.StockReport{Available: true, Quantity: 1}}, nil)

	handler := CheckStock(slog.Default(), mockChecker)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/stock/check", strings.NewReader(`{"dimensions": "60x40"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httpReq)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockChecker.AssertExpectations(t)
}

func TestCheckStock_Errors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid dimensions", frame.ErrInvalidDimensions, http.StatusUnprocessableEntity},
		{"invalid quantity", frame.ErrInvalidQuantity, http.StatusBadRequest},
		{"storage", errors.New("база недоступна"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mockChecker := new(MockStockChecker)
			mockChecker.On("CheckStock", mock.Anything, "x", frame.FrameType(""), -1).Return(nil, c.err)

			handler := CheckStock(slog.Default(), mockChecker)

			httpReq := httptest.NewRequest(http.MethodPost, "/api/stock/check", strings.NewReader(`{"dimensions": "x", "quantity": -1}`))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, httpReq)

			assert.Equal(t, c.code, rr.Code)
		})
	}
}

func TestCheckStock_InvalidJSON(t *testing.T) {
	mockChecker := new(MockStockChecker)
	handler := CheckStock(slog.Default(), mockChecker)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/stock/check", strings.NewReader(`{`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httpReq)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockChecker.AssertNotCalled(t, "CheckStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
