package frame

import (
	"encoding/json"
	"frameshop/internal/storage"
	"math"
)

const (
	PrintingInternal = "internal"
	PrintingExternal = "external"
)

// CostOptions - все опции расчёта. Нулевое значение структуры не равно умолчаниям,
// берите DefaultCostOptions и меняйте нужное.
type CostOptions struct {
	FrameType        FrameType
	IncludeCardboard bool
	IncludeHook      bool
	IncludeFraming   bool
	// nil - маржа из конфига
	MarginOverride *float64
	// nil - способ печати из конфига
	UseExternalPrinting *bool
	CardboardPaddingCm  int
}

func DefaultCostOptions() CostOptions {
	return CostOptions{
		IncludeCardboard: true,
		IncludeHook:      true,
		IncludeFraming:   true,
	}
}

type CostLine struct {
	Component     string    `json:"component"`
	FrameType     FrameType `json:"frame_type,omitempty"`
	Length        int       `json:"length"`
	Quantity      int       `json:"quantity"`
	PricePerMeter float64   `json:"price_per_meter"`
	Cost          float64   `json:"cost"`
}

type PrintingAnalysis struct {
	Method                 string  `json:"method"`
	InternalPricePerM2     float64 `json:"internal_price_per_m2"`
	ExternalPricePerM2     float64 `json:"external_price_per_m2"`
	InternalCost           float64 `json:"internal_cost"`
	ExternalCost           float64 `json:"external_cost"`
	SavingsPerM2           float64 `json:"savings_per_m2"`
	MonthlyCostOfOwnership float64 `json:"monthly_cost_of_ownership"`
	// +Inf если свой принтер никогда не окупается
	BreakEvenVolumeM2 float64 `json:"break_even_volume_m2"`
}

// BreakEvenReachable - false когда внешняя печать не дороже своей.
func (p PrintingAnalysis) BreakEvenReachable() bool {
	return !math.IsInf(p.BreakEvenVolumeM2, 1)
}

// MarshalJSON пишет бесконечный объём как null, encoding/json не умеет Inf.
func (p PrintingAnalysis) MarshalJSON() ([]byte, error) {
	type plain PrintingAnalysis
	out := struct {
		plain
		BreakEvenVolumeM2  *float64 `json:"break_even_volume_m2"`
		BreakEvenReachable bool     `json:"break_even_reachable"`
	}{plain: plain(p)}

	if p.BreakEvenReachable() {
		v := p.BreakEvenVolumeM2
		out.BreakEvenVolumeM2 = &v
		out.BreakEvenReachable = true
	}

	return json.Marshal(out)
}

// UnmarshalJSON - обратная сторона MarshalJSON, null превращается в +Inf.
func (p *PrintingAnalysis) UnmarshalJSON(data []byte) error {
	type plain PrintingAnalysis
	in := struct {
		*plain
		BreakEvenVolumeM2 *float64 `json:"break_even_volume_m2"`
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	if in.BreakEvenVolumeM2 == nil {
		p.BreakEvenVolumeM2 = math.Inf(1)
	} else {
		p.BreakEvenVolumeM2 = *in.BreakEvenVolumeM2
	}

	return nil
}

type CostBreakdown struct {
	Dimensions     CanvasDimensions `json:"dimensions"`
	AreaM2         float64          `json:"area_m2"`
	FrameType      FrameType        `json:"frame_type"`
	Bars           []CostLine       `json:"bars"`
	Crossbars      []CostLine       `json:"crossbars"`
	PrintingMethod string           `json:"printing_method"`
	Cardboard      *CardboardSize   `json:"cardboard,omitempty"`
	// false - картон не нашли на складе и взяли цену из конфига
	CardboardFromStock bool `json:"cardboard_from_stock"`
}

type ProductionCostResult struct {
	StretcherCost float64 `json:"stretcher_cost"`
	CrossbarCost  float64 `json:"crossbar_cost"`
	CanvasCost    float64 `json:"canvas_cost"`
	PrintingCost  float64 `json:"printing_cost"`
	FramingCost   float64 `json:"framing_cost"`
	HookCost      float64 `json:"hook_cost"`
	CardboardCost float64 `json:"cardboard_cost"`

	TotalMaterialCost float64 `json:"total_material_cost"`
	WholesaleMarkup   float64 `json:"wholesale_markup_percentage"`
	WholesalePrice    float64 `json:"wholesale_price"`
	MarginPercentage  float64 `json:"margin_percentage"`
	FinalPrice        float64 `json:"final_price"`
	Profit            float64 `json:"profit"`

	Requirement      StretcherRequirement `json:"requirement"`
	PrintingAnalysis *PrintingAnalysis    `json:"printing_analysis,omitempty"`
	Breakdown        CostBreakdown        `json:"breakdown"`
}

// ComputeCostFromText разбирает размер и считает себестоимость.
// Нераспознанный размер - ErrInvalidDimensions, это не авария.
func ComputeCostFromText(text string, cfg storage.ProductionCostConfig, cardboard []storage.CardboardStock, opts CostOptions) (ProductionCostResult, error) {
	d, ok := ParseDimensions(text)
	if !ok {
		return ProductionCostResult{}, ErrInvalidDimensions
	}
	return ComputeCost(d, cfg, cardboard, opts), nil
}

// ComputeCost - чистый расчёт по уже загруженному конфигу и складу картона.
func ComputeCost(d CanvasDimensions, cfg storage.ProductionCostConfig, cardboard []storage.CardboardStock, opts CostOptions) ProductionCostResult {
	req := CalculateStretcherRequirement(d, opts.FrameType)
	area := d.AreaM2()

	res := ProductionCostResult{
		Requirement: req,
		Breakdown: CostBreakdown{
			Dimensions: d,
			AreaM2:     area,
			FrameType:  req.StretcherType,
			Bars:       []CostLine{},
			Crossbars:  []CostLine{},
		},
	}

	barPrice := cfg.StretcherThinPricePerMeter
	if req.StretcherType == FrameThick {
		barPrice = cfg.StretcherThickPricePerMeter
	}

	for _, line := range req.BarLines() {
		cl := costLine(ComponentStretcher, req.StretcherType, line, barPrice)
		res.Breakdown.Bars = append(res.Breakdown.Bars, cl)
		res.StretcherCost += cl.Cost
	}

	for _, line := range req.CrossbarLines() {
		cl := costLine(ComponentCrossbar, "", line, cfg.CrossbarPricePerMeter)
		res.Breakdown.Crossbars = append(res.Breakdown.Crossbars, cl)
		res.CrossbarCost += cl.Cost
	}

	res.CanvasCost = area * cfg.CanvasPricePerM2

	analysis := analysePrinting(area, cfg, opts)
	res.PrintingAnalysis = &analysis
	res.Breakdown.PrintingMethod = analysis.Method
	if analysis.Method == PrintingExternal {
		res.PrintingCost = analysis.ExternalCost
	} else {
		res.PrintingCost = analysis.InternalCost
	}

	if opts.IncludeFraming {
		res.FramingCost = cfg.FramingPrice
	}
	if opts.IncludeHook {
		res.HookCost = cfg.HookPrice
	}

	if opts.IncludeCardboard {
		pad := max(opts.CardboardPaddingCm, 0)
		if c, ok := SelectCardboard(d.Width+pad, d.Height+pad, cardboard); ok {
			res.CardboardCost = c.Price
			res.Breakdown.Cardboard = &CardboardSize{Width: c.Width, Height: c.Height}
			res.Breakdown.CardboardFromStock = true
		} else {
			res.CardboardCost = cfg.CardboardPrice
		}
	}

	res.TotalMaterialCost = res.StretcherCost + res.CrossbarCost + res.CanvasCost + res.PrintingCost +
		res.FramingCost + res.HookCost + res.CardboardCost

	res.WholesaleMarkup = cfg.WholesaleMarkupPercent
	res.WholesalePrice = res.TotalMaterialCost * (1 + cfg.WholesaleMarkupPercent/100)

	res.MarginPercentage = cfg.MarginPercent
	if opts.MarginOverride != nil {
		res.MarginPercentage = *opts.MarginOverride
	}
	res.FinalPrice = res.WholesalePrice * (1 + res.MarginPercentage/100)
	res.Profit = res.FinalPrice - res.TotalMaterialCost

	return res
}

func costLine(component string, ft FrameType, line BarLine, pricePerMeter float64) CostLine {
	return CostLine{
		Component:     component,
		FrameType:     ft,
		Length:        line.Length,
		Quantity:      line.Quantity,
		PricePerMeter: pricePerMeter,
		Cost:          float64(line.Length) / 100 * pricePerMeter * float64(line.Quantity),
	}
}

// analysePrinting считает обе стоимости печати и точку безубыточности своего принтера.
// Считается всегда, даже если печать заказана снаружи.
func analysePrinting(area float64, cfg storage.ProductionCostConfig, opts CostOptions) PrintingAnalysis {
	external := cfg.UseExternalPrinting
	if opts.UseExternalPrinting != nil {
		external = *opts.UseExternalPrinting
	}

	method := PrintingInternal
	if external {
		method = PrintingExternal
	}

	monthly := MonthlyCostOfOwnership(cfg)
	savings := cfg.ExternalPrintingPricePerM2 - cfg.InternalPrintingPricePerM2

	return PrintingAnalysis{
		Method:                 method,
		InternalPricePerM2:     cfg.InternalPrintingPricePerM2,
		ExternalPricePerM2:     cfg.ExternalPrintingPricePerM2,
		InternalCost:           area * cfg.InternalPrintingPricePerM2,
		ExternalCost:           area * cfg.ExternalPrintingPricePerM2,
		SavingsPerM2:           savings,
		MonthlyCostOfOwnership: monthly,
		BreakEvenVolumeM2:      BreakEvenVolume(monthly, savings),
	}
}

// MonthlyCostOfOwnership - амортизация принтера плюс обслуживание в месяц.
// Срок службы меньше месяца считаем за один месяц.
func MonthlyCostOfOwnership(cfg storage.ProductionCostConfig) float64 {
	lifespan := max(cfg.PrinterLifespanMonths, 1)
	return cfg.PrinterPurchaseCost/float64(lifespan) + cfg.PrinterMonthlyUpkeep
}

// BreakEvenVolume - сколько м² в месяц надо печатать, чтобы свой принтер окупился.
func BreakEvenVolume(monthlyCost, savingsPerM2 float64) float64 {
	if savingsPerM2 <= 0 {
		return math.Inf(1)
	}
	return monthlyCost / savingsPerM2
}
