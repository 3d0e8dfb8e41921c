package get

import (
	"context"
	"errors"
	"frameshop/internal/storage"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

type CostConfigProvider interface {
	GetActiveCostConfig(ctx context.Context) (*storage.ProductionCostConfig, error)
}

type StockProvider interface {
	ListStretcherStock(ctx context.Context) ([]storage.StretcherBarStock, error)
	ListCrossbarStock(ctx context.Context) ([]storage.CrossbarStock, error)
}

type CardboardProvider interface {
	ListCardboardStock(ctx context.Context) ([]storage.CardboardStock, error)
}

type StockResp struct {
	Stretchers []storage.StretcherBarStock `json:"stretchers"`
	Crossbars  []storage.CrossbarStock     `json:"crossbars"`
}

func GetCostConfigAdmin(log *slog.Logger, provider CostConfigProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetCostConfigAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		cfg, err := provider.GetActiveCostConfig(ctx)
		if err != nil {
			if errors.Is(err, storage.ErrCostConfigNotFound) {
				http.Error(w, "Активная конфигурация не найдена", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения конфигурации себестоимости")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, cfg)
	}
}

func GetStockAdmin(log *slog.Logger, provider StockProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetStockAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		stretchers, err := provider.ListStretcherStock(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения остатков реек")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		crossbars, err := provider.ListCrossbarStock(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения остатков поперечин")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if stretchers == nil {
			stretchers = []storage.StretcherBarStock{}
		}
		if crossbars == nil {
			crossbars = []storage.CrossbarStock{}
		}

		render.JSON(w, r, StockResp{Stretchers: stretchers, Crossbars: crossbars})
	}
}

func GetCardboardAdmin(log *slog.Logger, provider CardboardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetCardboardAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		cardboard, err := provider.ListCardboardStock(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения остатков картона")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if cardboard == nil {
			cardboard = []storage.CardboardStock{}
		}

		render.JSON(w, r, cardboard)
	}
}
