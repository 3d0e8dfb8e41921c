package update

import (
	"context"
	"encoding/json"
	"errors"
	"frameshop/internal/service/frame"
	"frameshop/internal/storage"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

type CostConfigUpdater interface {
	UpdateCostConfigAdmin(ctx context.Context, cfg storage.ProductionCostConfig) (int64, error)
}

type StockUpdater interface {
	UpdateStretcherStockAdmin(ctx context.Context, items []storage.StretcherBarStock) error
	UpdateCrossbarStockAdmin(ctx context.Context, items []storage.CrossbarStock) error
}

type ConfigResp struct {
	ID int64 `json:"id"`
}

// UpdateCostConfigAdmin сохраняет новый набор ставок, прежний активный конфиг выключается.
func UpdateCostConfigAdmin(log *slog.Logger, update CostConfigUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateCostConfigAdmin"

		if r.Method != http.MethodPut {
			http.Error(w, "Метод не разрешён", http.StatusMethodNotAllowed)
			return
		}

		var cfg storage.ProductionCostConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		id, err := update.UpdateCostConfigAdmin(ctx, cfg)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidCostConfig) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("Ошибка обновления конфигурации себестоимости", "op", op, "error", err)
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		log.Info("конфигурация себестоимости обновлена", slog.Int64("id", id))

		render.JSON(w, r, ConfigResp{ID: id})
	}
}

func UpdateStretcherStockAdmin(log *slog.Logger, update StockUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateStretcherStockAdmin"

		if r.Method != http.MethodPut {
			http.Error(w, "Метод не разрешён", http.StatusMethodNotAllowed)
			return
		}

		var items []storage.StretcherBarStock
		if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		// тип рейки в базе только каноничный
		for i := range items {
			ft, err := frame.ParseFrameType(items[i].Type)
			if err != nil || ft == "" {
				http.Error(w, "Неизвестный тип рейки: "+items[i].Type, http.StatusBadRequest)
				return
			}
			items[i].Type = string(ft)
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := update.UpdateStretcherStockAdmin(ctx, items); err != nil {
			writeStockError(w, log, op, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func UpdateCrossbarStockAdmin(log *slog.Logger, update StockUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateCrossbarStockAdmin"

		if r.Method != http.MethodPut {
			http.Error(w, "Метод не разрешён", http.StatusMethodNotAllowed)
			return
		}

		var items []storage.CrossbarStock
		if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := update.UpdateCrossbarStockAdmin(ctx, items); err != nil {
			writeStockError(w, log, op, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func writeStockError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	if errors.Is(err, storage.ErrInvalidStockItem) {
		http.Error(w, "Остаток не может быть отрицательным", http.StatusBadRequest)
		return
	}
	log.Error("Ошибка обновления остатков", "op", op, "error", err)
	http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
}
