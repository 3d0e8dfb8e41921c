package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"frameshop/internal/storage"
)

const costConfigColumns = `id,
		stretcher_thin_price_per_meter, stretcher_thick_price_per_meter, crossbar_price_per_meter,
		canvas_price_per_m2, internal_printing_price_per_m2, external_printing_price_per_m2, use_external_printing,
		framing_price, hook_price, cardboard_price,
		wholesale_markup_percent, margin_percent,
		printer_purchase_cost, printer_monthly_maintenance, printer_lifespan_months,
		is_active, updated_at`

func (s *Storage) GetActiveCostConfig(ctx context.Context) (*storage.ProductionCostConfig, error) {
	const op = "storage.mysql.GetActiveCostConfig"

	query := `SELECT ` + costConfigColumns + `
		FROM production_cost_config
		WHERE is_active = TRUE
		ORDER BY updated_at DESC
		LIMIT 1`

	cfg := &storage.ProductionCostConfig{}

	err := s.db.QueryRowContext(ctx, query).Scan(
		&cfg.ID,
		&cfg.StretcherThinPricePerMeter,
		&cfg.StretcherThickPricePerMeter,
		&cfg.CrossbarPricePerMeter,
		&cfg.CanvasPricePerM2,
		&cfg.InternalPrintingPricePerM2,
		&cfg.ExternalPrintingPricePerM2,
		&cfg.UseExternalPrinting,
		&cfg.FramingPrice,
		&cfg.HookPrice,
		&cfg.CardboardPrice,
		&cfg.WholesaleMarkupPercent,
		&cfg.MarginPercent,
		&cfg.PrinterPurchaseCost,
		&cfg.PrinterMonthlyUpkeep,
		&cfg.PrinterLifespanMonths,
		&cfg.IsActive,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrCostConfigNotFound)
		}
		return nil, fmt.Errorf("%s: выполнение запроса завершилось ошибкой: %w", op, err)
	}

	return cfg, nil
}

// UpdateCostConfigAdmin сохраняет новый набор ставок и делает его единственным активным.
func (s *Storage) UpdateCostConfigAdmin(ctx context.Context, cfg storage.ProductionCostConfig) (int64, error) {
	const op = "storage.mysql.UpdateCostConfigAdmin"

	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: не удалось начать транзакцию: %w", op, err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE production_cost_config SET is_active = FALSE WHERE is_active = TRUE`); err != nil {
		return 0, fmt.Errorf("%s: ошибка деактивации старого конфига: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO production_cost_config (
			stretcher_thin_price_per_meter, stretcher_thick_price_per_meter, crossbar_price_per_meter,
			canvas_price_per_m2, internal_printing_price_per_m2, external_printing_price_per_m2, use_external_printing,
			framing_price, hook_price, cardboard_price,
			wholesale_markup_percent, margin_percent,
			printer_purchase_cost, printer_monthly_maintenance, printer_lifespan_months,
			is_active
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, TRUE)`,
		cfg.StretcherThinPricePerMeter,
		cfg.StretcherThickPricePerMeter,
		cfg.CrossbarPricePerMeter,
		cfg.CanvasPricePerM2,
		cfg.InternalPrintingPricePerM2,
		cfg.ExternalPrintingPricePerM2,
		cfg.UseExternalPrinting,
		cfg.FramingPrice,
		cfg.HookPrice,
		cfg.CardboardPrice,
		cfg.WholesaleMarkupPercent,
		cfg.MarginPercent,
		cfg.PrinterPurchaseCost,
		cfg.PrinterMonthlyUpkeep,
		cfg.PrinterLifespanMonths,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка сохранения конфига: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: не удалось получить id: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: ошибка коммита транзакции: %w", op, err)
	}

	return id, nil
}
