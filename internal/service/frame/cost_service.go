package frame

import (
	"context"
	"errors"
	"fmt"
	"frameshop/internal/storage"
	"golang.org/x/sync/errgroup"
)

type CostStorage interface {
	GetActiveCostConfig(ctx context.Context) (*storage.ProductionCostConfig, error)
	ListCardboardStock(ctx context.Context) ([]storage.CardboardStock, error)
}

type CostService struct {
	storage CostStorage
}

func NewCostService(storage CostStorage) *CostService {
	return &CostService{storage: storage}
}

// CalculateCost загружает активный конфиг и склад картона параллельно и считает себестоимость.
// Без активного конфига считать нечем - ErrNoActiveCostConfig.
func (s *CostService) CalculateCost(ctx context.Context, dimensions string, opts CostOptions) (*ProductionCostResult, error) {
	const op = "service.frame.CalculateCost"

	d, ok := ParseDimensions(dimensions)
	if !ok {
		return nil, ErrInvalidDimensions
	}

	var (
		cfg       *storage.ProductionCostConfig
		cardboard []storage.CardboardStock
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cfg, err = s.storage.GetActiveCostConfig(gCtx)
		if err != nil {
			if errors.Is(err, storage.ErrCostConfigNotFound) {
				return fmt.Errorf("%s: %w", op, ErrNoActiveCostConfig)
			}
			return fmt.Errorf("%s: cost config: %w", op, err)
		}
		return nil
	})
	g.Go(func() error {
		if !opts.IncludeCardboard {
			return nil
		}
		var err error
		cardboard, err = s.storage.ListCardboardStock(gCtx)
		if err != nil {
			return fmt.Errorf("%s: cardboard stock: %w", op, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNoActiveCostConfig)
	}

	result := ComputeCost(d, *cfg, cardboard, opts)

	return &result, nil
}
