package check

import (
	"context"
	"encoding/json"
	"errors"
	"frameshop/internal/service/frame"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

type StockChecker interface {
	CheckStock(ctx context.Context, dimensions string, frameType frame.FrameType, quantity int) (*frame.StockCheck, error)
}

type Request struct {
	Dimensions string `json:"dimensions"`
	FrameType  string `json:"frame_type"`
	Quantity   int    `json:"quantity"`
}

// CheckStock отдаёт отчёт о нехватке реек и поперечин под заказ. Склад не резервируется.
func CheckStock(log *slog.Logger, checker StockChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.stock.CheckStock"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		frameType, err := frame.ParseFrameType(req.FrameType)
		if err != nil {
			http.Error(w, "Неизвестный тип рамы", http.StatusBadRequest)
			return
		}

		if req.Quantity == 0 {
			req.Quantity = 1
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := checker.CheckStock(ctx, req.Dimensions, frameType, req.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, frame.ErrInvalidDimensions):
				http.Error(w, "Не удалось распознать размер", http.StatusUnprocessableEntity)
			case errors.Is(err, frame.ErrInvalidQuantity):
				http.Error(w, "Количество должно быть больше нуля", http.StatusBadRequest)
			default:
				log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка проверки склада")
				http.Error(w, "Internal error", http.StatusInternalServerError)
			}
			return
		}

		render.JSON(w, r, result)
	}
}
