package frame

import (
	"context"
	"fmt"
	"frameshop/internal/storage"
	"golang.org/x/sync/errgroup"
)

type StockStorage interface {
	ListStretcherStock(ctx context.Context) ([]storage.StretcherBarStock, error)
	ListCrossbarStock(ctx context.Context) ([]storage.CrossbarStock, error)
}

type StockService struct {
	storage StockStorage
}

func NewStockService(storage StockStorage) *StockService {
	return &StockService{storage: storage}
}

type StockCheck struct {
	Requirement StretcherRequirement `json:"requirement"`
	Report      StockReport          `json:"report"`
}

// CheckStock считает потребность на заказ и сверяет её со складом.
// Остатки только читаются, резерва нет.
func (s *StockService) CheckStock(ctx context.Context, dimensions string, frameType FrameType, quantity int) (*StockCheck, error) {
	const op = "service.frame.CheckStock"

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	d, ok := ParseDimensions(dimensions)
	if !ok {
		return nil, ErrInvalidDimensions
	}

	var (
		stretchers []storage.StretcherBarStock
		crossbars  []storage.CrossbarStock
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stretchers, err = s.storage.ListStretcherStock(gCtx)
		if err != nil {
			return fmt.Errorf("%s: stretcher stock: %w", op, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		crossbars, err = s.storage.ListCrossbarStock(gCtx)
		if err != nil {
			return fmt.Errorf("%s: crossbar stock: %w", op, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	req := CalculateStretcherRequirement(d, frameType)

	return &StockCheck{
		Requirement: req,
		Report:      CheckStockAvailability(req, quantity, stretchers, crossbars),
	}, nil
}
