package storage

import "errors"

var (
	ErrCostConfigNotFound = errors.New("active production cost config not found")
	ErrInvalidCostConfig  = errors.New("invalid production cost config")
	ErrInvalidStockItem   = errors.New("invalid stock item")
	ErrCardboardExists    = errors.New("cardboard size already exists")
)
