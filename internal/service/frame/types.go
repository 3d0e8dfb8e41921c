package frame

import (
	"errors"
	"frameshop/internal/constants"
	"strings"
)

type FrameType string

const (
	FrameThin  FrameType = "thin"
	FrameThick FrameType = "thick"
)

var (
	// ErrInvalidDimensions - размер не распознан; мягкая ошибка, вызывающий решает что делать.
	ErrInvalidDimensions  = errors.New("cannot parse canvas dimensions")
	ErrNoActiveCostConfig = errors.New("no active production cost config")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrUnknownFrameType   = errors.New("unknown frame type")
)

// CanvasDimensions - размер холста в сантиметрах.
type CanvasDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AreaM2 площадь в квадратных метрах.
func (d CanvasDimensions) AreaM2() float64 {
	return float64(d.Width) * float64(d.Height) / 10000
}

type StretcherRequirement struct {
	StretcherType  FrameType `json:"stretcher_type"`
	WidthBars      int       `json:"width_bars"`
	HeightBars     int       `json:"height_bars"`
	Crossbars      int       `json:"crossbars"`
	CrossbarLength int       `json:"crossbar_length,omitempty"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
}

// BarLine - одна строка спецификации: длина и количество на одно изделие.
type BarLine struct {
	Length   int `json:"length"`
	Quantity int `json:"quantity"`
}

// BarLines возвращает рейки подрамника, одинаковые длины склеены в одну строку.
func (r StretcherRequirement) BarLines() []BarLine {
	var lines []BarLine
	lines = addBarLine(lines, r.Width, r.WidthBars)
	lines = addBarLine(lines, r.Height, r.HeightBars)
	return lines
}

func (r StretcherRequirement) CrossbarLines() []BarLine {
	return addBarLine(nil, r.CrossbarLength, r.Crossbars)
}

func addBarLine(lines []BarLine, length, qty int) []BarLine {
	if qty <= 0 || length <= 0 {
		return lines
	}
	for i := range lines {
		if lines[i].Length == length {
			lines[i].Quantity += qty
			return lines
		}
	}
	return append(lines, BarLine{Length: length, Quantity: qty})
}

// ParseFrameType разбирает подсказку типа рамы. Пустая строка и "auto" означают авто-режим.
func ParseFrameType(hint string) (FrameType, error) {
	key := strings.ToLower(strings.TrimSpace(hint))
	if key == "" {
		return "", nil
	}

	alias, ok := constants.FrameTypeAliases[key]
	if !ok {
		return "", ErrUnknownFrameType
	}

	return FrameType(alias), nil
}
