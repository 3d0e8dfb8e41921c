package stretcher_requirement

import (
	"encoding/json"
	"frameshop/internal/service/frame"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type Request struct {
	Dimensions string `json:"dimensions"`
	FrameType  string `json:"frame_type"`
}

type Resp struct {
	Dimensions    frame.CanvasDimensions     `json:"dimensions"`
	Requirement   frame.StretcherRequirement `json:"requirement"`
	CatalogIssues []frame.CatalogIssue       `json:"catalog_issues"`
}

// CalculateRequirement считает комплект реек и предупреждает о длинах вне каталога.
func CalculateRequirement(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.stretcher_requirement.CalculateRequirement"

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

		dims, ok := frame.ParseDimensions(req.Dimensions)
		if !ok {
			log.With(slog.String("op", op), slog.String("dimensions", req.Dimensions)).Debug("размер не распознан")
			http.Error(w, "Не удалось распознать размер", http.StatusUnprocessableEntity)
			return
		}

		requirement := frame.CalculateStretcherRequirement(dims, frameType)

		issues := frame.ValidateRequirement(requirement)
		if issues == nil {
			issues = []frame.CatalogIssue{}
		}

		render.JSON(w, r, Resp{
			Dimensions:    dims,
			Requirement:   requirement,
			CatalogIssues: issues,
		})
	}
}
