package save

import (
	"context"
	"encoding/json"
	"errors"
	"frameshop/internal/storage"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

type CardboardCreator interface {
	CreateCardboardStockAdmin(ctx context.Context, item storage.CardboardStock) (int64, error)
}

type Resp struct {
	ID int64 `json:"id"`
}

func SaveCardboardAdmin(log *slog.Logger, creator CardboardCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SaveCardboardAdmin"

		if r.Method != http.MethodPost {
			http.Error(w, "Метод запрещен", http.StatusMethodNotAllowed)
			return
		}

		var item storage.CardboardStock
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		id, err := creator.CreateCardboardStockAdmin(ctx, item)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrCardboardExists):
				http.Error(w, "Такой формат картона уже есть", http.StatusConflict)
			case errors.Is(err, storage.ErrInvalidStockItem):
				http.Error(w, "Некорректный размер, остаток или цена", http.StatusBadRequest)
			default:
				log.Error("Ошибка добавления картона", "op", op, "error", err)
				http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			}
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Resp{ID: id})
	}
}
