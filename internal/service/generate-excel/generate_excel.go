package generate_excel

import (
	"context"
	"fmt"
	"frameshop/internal/service/frame"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

const (
	costSheet  = "Калькуляция"
	stockSheet = "Склад"
)

type CostCalculator interface {
	CalculateCost(ctx context.Context, dimensions string, opts frame.CostOptions) (*frame.ProductionCostResult, error)
}

type StockChecker interface {
	CheckStock(ctx context.Context, dimensions string, frameType frame.FrameType, quantity int) (*frame.StockCheck, error)
}

type GenerateExcelService struct {
	cost  CostCalculator
	stock StockChecker
}

func NewGenerateService(cost CostCalculator, stock StockChecker) *GenerateExcelService {
	return &GenerateExcelService{cost: cost, stock: stock}
}

type CostSheetRequest struct {
	Dimensions string
	Quantity   int
	Options    frame.CostOptions
}

// GenerateCostSheet строит xlsx с калькуляцией одного изделия и проверкой склада на весь заказ.
func (g *GenerateExcelService) GenerateCostSheet(ctx context.Context, req CostSheetRequest) ([]byte, error) {
	const op = "service.generate_excel.GenerateCostSheet"

	var (
		cost  *frame.ProductionCostResult
		check *frame.StockCheck
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		cost, err = g.cost.CalculateCost(egCtx, req.Dimensions, req.Options)
		return err
	})
	eg.Go(func() error {
		var err error
		check, err = g.stock.CheckStock(egCtx, req.Dimensions, req.Options.FrameType, req.Quantity)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", costSheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := f.NewSheet(stockSheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	writeCostSheet(f, cost, req.Quantity, headerStyle)
	writeStockSheet(f, check, headerStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func writeCostSheet(f *excelize.File, cost *frame.ProductionCostResult, quantity int, headerStyle int) {
	b := cost.Breakdown

	f.SetCellValue(costSheet, "A1", "Позиция")
	f.SetCellValue(costSheet, "B1", "Кол-во")
	f.SetCellValue(costSheet, "C1", "Длина, см")
	f.SetCellValue(costSheet, "D1", "Цена")
	f.SetCellValue(costSheet, "E1", "Сумма")
	f.SetCellStyle(costSheet, "A1", "E1", headerStyle)

	row := 2
	for _, line := range b.Bars {
		setRow(f, costSheet, row, fmt.Sprintf("Рейка %s", line.FrameType), line.Quantity, line.Length, money(line.PricePerMeter), money(line.Cost))
		row++
	}
	for _, line := range b.Crossbars {
		setRow(f, costSheet, row, "Поперечина", line.Quantity, line.Length, money(line.PricePerMeter), money(line.Cost))
		row++
	}

	simple := []struct {
		name  string
		value float64
	}{
		{"Холст", cost.CanvasCost},
		{fmt.Sprintf("Печать (%s)", b.PrintingMethod), cost.PrintingCost},
		{"Натяжка", cost.FramingCost},
		{"Подвес", cost.HookCost},
		{"Картон", cost.CardboardCost},
	}
	for _, s := range simple {
		setRow(f, costSheet, row, s.name, 1, nil, nil, money(s.value))
		row++
	}

	row++
	totals := []struct {
		name  string
		value float64
	}{
		{"Себестоимость", cost.TotalMaterialCost},
		{fmt.Sprintf("Опт (+%v%%)", cost.WholesaleMarkup), cost.WholesalePrice},
		{fmt.Sprintf("Цена (+%v%%)", cost.MarginPercentage), cost.FinalPrice},
		{"Прибыль", cost.Profit},
		{fmt.Sprintf("Цена x %d", quantity), cost.FinalPrice * float64(quantity)},
	}
	for _, s := range totals {
		f.SetCellValue(costSheet, cellName(1, row), s.name)
		f.SetCellValue(costSheet, cellName(5, row), money(s.value))
		row++
	}

	if pa := cost.PrintingAnalysis; pa != nil {
		row++
		f.SetCellValue(costSheet, cellName(1, row), "Окупаемость принтера, м²/мес")
		if pa.BreakEvenReachable() {
			f.SetCellValue(costSheet, cellName(5, row), decimal.NewFromFloat(pa.BreakEvenVolumeM2).Round(2).InexactFloat64())
		} else {
			f.SetCellValue(costSheet, cellName(5, row), "никогда")
		}
	}

	f.SetColWidth(costSheet, "A", "A", 32)
	f.SetColWidth(costSheet, "B", "E", 14)
}

func writeStockSheet(f *excelize.File, check *frame.StockCheck, headerStyle int) {
	headers := []string{"Компонент", "Профиль", "Длина, см", "Нужно", "На складе", "Не хватает"}
	for i, name := range headers {
		f.SetCellValue(stockSheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(stockSheet, "A1", cellName(len(headers), 1), headerStyle)

	if check.Report.Available {
		f.SetCellValue(stockSheet, "A2", "Всё в наличии")
		return
	}

	for i, line := range check.Report.Missing {
		row := i + 2
		f.SetCellValue(stockSheet, cellName(1, row), line.Component)
		f.SetCellValue(stockSheet, cellName(2, row), string(line.FrameType))
		f.SetCellValue(stockSheet, cellName(3, row), line.Length)
		f.SetCellValue(stockSheet, cellName(4, row), line.Required)
		f.SetCellValue(stockSheet, cellName(5, row), line.Available)
		f.SetCellValue(stockSheet, cellName(6, row), line.Missing)
	}

	f.SetPanes(stockSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})
}

func setRow(f *excelize.File, sheet string, row int, name string, qty int, length, price, sum any) {
	f.SetCellValue(sheet, cellName(1, row), name)
	f.SetCellValue(sheet, cellName(2, row), qty)
	if length != nil {
		f.SetCellValue(sheet, cellName(3, row), length)
	}
	if price != nil {
		f.SetCellValue(sheet, cellName(4, row), price)
	}
	f.SetCellValue(sheet, cellName(5, row), sum)
}

// money округляет до копеек для отчёта, в расчётах остаётся float64.
func money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
