package frame

import "frameshop/internal/constants"

// SelectFrameType выбирает профиль: явная подсказка или авто по большей стороне.
func SelectFrameType(d CanvasDimensions, hint FrameType) FrameType {
	switch hint {
	case FrameThin, FrameThick:
		return hint
	}

	if max(d.Width, d.Height) > constants.ThickFrameThresholdCm {
		return FrameThick
	}
	return FrameThin
}

// CalculateStretcherRequirement считает комплект реек и поперечин на один подрамник.
//
// Базово 2 рейки по ширине и 2 по высоте. Если любая сторона больше 120 см,
// добавляется одна поперечина длиной по меньшей стороне. Большой квадрат
// собирается крестом: 4 рейки одной длины и 2 поперечины той же длины.
func CalculateStretcherRequirement(d CanvasDimensions, hint FrameType) StretcherRequirement {
	req := StretcherRequirement{
		StretcherType: SelectFrameType(d, hint),
		WidthBars:     2,
		HeightBars:    2,
		Width:         d.Width,
		Height:        d.Height,
	}

	if d.Width > constants.OversizeThresholdCm || d.Height > constants.OversizeThresholdCm {
		req.Crossbars = 1
		req.CrossbarLength = min(d.Width, d.Height)
	}

	// 120x120 сюда не попадает, сравнение строгое как и для поперечины
	if d.Width == d.Height && d.Width > constants.OversizeThresholdCm {
		req.WidthBars = 4
		req.HeightBars = 0
		req.Crossbars = 2
		req.CrossbarLength = d.Width
	}

	return req
}
