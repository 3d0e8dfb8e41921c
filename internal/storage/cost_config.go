package storage

import (
	"fmt"
	"time"
)

// ProductionCostConfig - таблица ставок для расчёта себестоимости.
// Цены за метр погонный, за м² и за штуку; проценты хранятся как 30 = 30%.
type ProductionCostConfig struct {
	ID int64 `json:"id"`

	StretcherThinPricePerMeter  float64 `json:"stretcher_thin_price_per_meter"`
	StretcherThickPricePerMeter float64 `json:"stretcher_thick_price_per_meter"`
	CrossbarPricePerMeter       float64 `json:"crossbar_price_per_meter"`

	CanvasPricePerM2           float64 `json:"canvas_price_per_m2"`
	InternalPrintingPricePerM2 float64 `json:"internal_printing_price_per_m2"`
	ExternalPrintingPricePerM2 float64 `json:"external_printing_price_per_m2"`
	UseExternalPrinting        bool    `json:"use_external_printing"`

	FramingPrice   float64 `json:"framing_price"`
	HookPrice      float64 `json:"hook_price"`
	CardboardPrice float64 `json:"cardboard_price"`

	WholesaleMarkupPercent float64 `json:"wholesale_markup_percent"`
	MarginPercent          float64 `json:"margin_percent"`

	PrinterPurchaseCost   float64 `json:"printer_purchase_cost"`
	PrinterMonthlyUpkeep  float64 `json:"printer_monthly_maintenance"`
	PrinterLifespanMonths int     `json:"printer_lifespan_months"`

	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate проверяет конфиг перед сохранением из админки.
func (c ProductionCostConfig) Validate() error {
	prices := map[string]float64{
		"stretcher_thin_price_per_meter":  c.StretcherThinPricePerMeter,
		"stretcher_thick_price_per_meter": c.StretcherThickPricePerMeter,
		"crossbar_price_per_meter":        c.CrossbarPricePerMeter,
		"canvas_price_per_m2":             c.CanvasPricePerM2,
		"internal_printing_price_per_m2":  c.InternalPrintingPricePerM2,
		"external_printing_price_per_m2":  c.ExternalPrintingPricePerM2,
		"framing_price":                   c.FramingPrice,
		"hook_price":                      c.HookPrice,
		"cardboard_price":                 c.CardboardPrice,
		"wholesale_markup_percent":        c.WholesaleMarkupPercent,
		"margin_percent":                  c.MarginPercent,
		"printer_purchase_cost":           c.PrinterPurchaseCost,
		"printer_monthly_maintenance":     c.PrinterMonthlyUpkeep,
	}

	for name, v := range prices {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidCostConfig, name, v)
		}
	}

	if c.PrinterLifespanMonths <= 0 {
		return fmt.Errorf("%w: printer_lifespan_months must be positive, got %d", ErrInvalidCostConfig, c.PrinterLifespanMonths)
	}

	return nil
}
