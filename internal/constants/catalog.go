package constants

const (
	// ThickFrameThresholdCm - если большая сторона больше порога, в авто-режиме берём толстый профиль.
	ThickFrameThresholdCm = 90
	// OversizeThresholdCm - больше порога по любой стороне нужна поперечина.
	OversizeThresholdCm = 120

	CatalogMinLengthCm = 30
	CatalogStepCm      = 5
	ThinMaxLengthCm    = 90
	ThickMaxLengthCm   = 160
	CrossbarMaxLength  = ThickMaxLengthCm
)

var (
	// подсказки типа рамы из названий вариантов магазина, "" = авто
	FrameTypeAliases = map[string]string{
		"thin":     "thin",
		"cienka":   "thin",
		"cienki":   "thin",
		"slim":     "thin",
		"2cm":      "thin",
		"thick":    "thick",
		"gruba":    "thick",
		"gruby":    "thick",
		"3d":       "thick",
		"4cm":      "thick",
		"standard": "",
		"auto":     "",
	}
)
