package frame

import "frameshop/internal/storage"

const (
	ComponentStretcher = "stretcher"
	ComponentCrossbar  = "crossbar"
)

// ShortageLine - нехватка по одной позиции склада.
type ShortageLine struct {
	Component string    `json:"component"`
	FrameType FrameType `json:"frame_type,omitempty"`
	Length    int       `json:"length"`
	Required  int       `json:"required"`
	Available int       `json:"available"`
	Missing   int       `json:"missing"`
}

type StockReport struct {
	Available bool           `json:"available"`
	Quantity  int            `json:"quantity"`
	Missing   []ShortageLine `json:"missing"`
}

// CheckStockAvailability сравнивает потребность на quantity подрамников со снимком склада.
// Ничего не резервирует: два параллельных заказа могут оба увидеть достаточный остаток.
func CheckStockAvailability(req StretcherRequirement, quantity int, stretchers []storage.StretcherBarStock, crossbars []storage.CrossbarStock) StockReport {
	report := StockReport{Quantity: quantity, Missing: []ShortageLine{}}

	for _, line := range req.BarLines() {
		required := line.Quantity * quantity
		available := stretcherStockFor(stretchers, line.Length, req.StretcherType)
		if required > available {
			report.Missing = append(report.Missing, ShortageLine{
				Component: ComponentStretcher,
				FrameType: req.StretcherType,
				Length:    line.Length,
				Required:  required,
				Available: available,
				Missing:   required - available,
			})
		}
	}

	for _, line := range req.CrossbarLines() {
		required := line.Quantity * quantity
		available := crossbarStockFor(crossbars, line.Length)
		if required > available {
			report.Missing = append(report.Missing, ShortageLine{
				Component: ComponentCrossbar,
				Length:    line.Length,
				Required:  required,
				Available: available,
				Missing:   required - available,
			})
		}
	}

	report.Available = len(report.Missing) == 0

	return report
}

func stretcherStockFor(stock []storage.StretcherBarStock, length int, ft FrameType) int {
	total := 0
	for _, s := range stock {
		if s.Length == length && FrameType(s.Type) == ft {
			total += s.Stock
		}
	}
	return total
}

func crossbarStockFor(stock []storage.CrossbarStock, length int) int {
	total := 0
	for _, s := range stock {
		if s.Length == length {
			total += s.Stock
		}
	}
	return total
}
