package health

import (
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Resp struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func Health(log *slog.Logger, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.health.Health"

		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Warn("база недоступна")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, Resp{Status: "unhealthy", Message: err.Error()})
			return
		}

		render.JSON(w, r, Resp{Status: "ok"})
	}
}
