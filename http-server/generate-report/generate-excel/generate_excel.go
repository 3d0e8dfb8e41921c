package generate_excel

import (
	"context"
	"errors"
	"fmt"
	"frameshop/internal/service/frame"
	generateexcel "frameshop/internal/service/generate-excel"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type CostSheetGenerator interface {
	GenerateCostSheet(ctx context.Context, req generateexcel.CostSheetRequest) ([]byte, error)
}

// GenerateCostSheet отдаёт калькуляцию с проверкой склада файлом xlsx.
// Параметры: dimensions (обязателен), quantity (по умолчанию 1), frame_type, margin.
func GenerateCostSheet(log *slog.Logger, gen CostSheetGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateCostSheet"

		q := r.URL.Query()

		dimensions := q.Get("dimensions")
		if dimensions == "" {
			http.Error(w, "Не указан размер", http.StatusBadRequest)
			return
		}

		quantity := 1
		if s := q.Get("quantity"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				http.Error(w, "invalid quantity", http.StatusBadRequest)
				return
			}
			quantity = n
		}

		opts := frame.DefaultCostOptions()

		ft, err := frame.ParseFrameType(q.Get("frame_type"))
		if err != nil {
			http.Error(w, "Неизвестный тип рамы", http.StatusBadRequest)
			return
		}
		opts.FrameType = ft

		if s := q.Get("margin"); s != "" {
			m, err := strconv.ParseFloat(s, 64)
			if err != nil {
				http.Error(w, "invalid margin", http.StatusBadRequest)
				return
			}
			opts.MarginOverride = &m
		}

		// на Excel времени побольше
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateCostSheet(ctx, generateexcel.CostSheetRequest{
			Dimensions: dimensions,
			Quantity:   quantity,
			Options:    opts,
		})
		if err != nil {
			if errors.Is(err, frame.ErrInvalidDimensions) {
				http.Error(w, "Не удалось распознать размер", http.StatusUnprocessableEntity)
				return
			}
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Cost_Sheet_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
