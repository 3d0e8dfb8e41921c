package calculate

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

type CostCalculator interface {
	CalculateCost(ctx context.Context, dimensions string, opts frame.CostOptions) (*frame.ProductionCostResult, error)
}

// Request - незаданные флаги берутся из DefaultCostOptions, маржа и печать из конфига.
type Request struct {
	Dimensions          string   `json:"dimensions"`
	FrameType           string   `json:"frame_type"`
	IncludeCardboard    *bool    `json:"include_cardboard"`
	IncludeHook         *bool    `json:"include_hook"`
	IncludeFraming      *bool    `json:"include_framing"`
	MarginPercentage    *float64 `json:"margin_percentage"`
	UseExternalPrinting *bool    `json:"use_external_printing"`
	CardboardPaddingCm  int      `json:"cardboard_padding_cm"`
}

func (req Request) Options() (frame.CostOptions, error) {
	opts := frame.DefaultCostOptions()

	ft, err := frame.ParseFrameType(req.FrameType)
	if err != nil {
		return opts, err
	}
	opts.FrameType = ft

	if req.IncludeCardboard != nil {
		opts.IncludeCardboard = *req.IncludeCardboard
	}
	if req.IncludeHook != nil {
		opts.IncludeHook = *req.IncludeHook
	}
	if req.IncludeFraming != nil {
		opts.IncludeFraming = *req.IncludeFraming
	}
	opts.MarginOverride = req.MarginPercentage
	opts.UseExternalPrinting = req.UseExternalPrinting
	opts.CardboardPaddingCm = req.CardboardPaddingCm

	return opts, nil
}

func CalculateCost(log *slog.Logger, calculator CostCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.production-cost.CalculateCost"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		opts, err := req.Options()
		if err != nil {
			http.Error(w, "Неизвестный тип рамы", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := calculator.CalculateCost(ctx, req.Dimensions, opts)
		if err != nil {
			if errors.Is(err, frame.ErrInvalidDimensions) {
				http.Error(w, "Не удалось распознать размер", http.StatusUnprocessableEntity)
				return
			}
			if errors.Is(err, frame.ErrNoActiveCostConfig) {
				log.With(slog.String("op", op)).Error("нет активной конфигурации себестоимости")
				http.Error(w, "Конфигурация себестоимости не задана", http.StatusInternalServerError)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка расчёта себестоимости")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, result)
	}
}
