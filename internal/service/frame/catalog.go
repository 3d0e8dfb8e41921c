package frame

import (
	"fmt"
	"frameshop/internal/constants"
)

type CatalogKind string

const (
	CatalogThin     CatalogKind = "thin"
	CatalogThick    CatalogKind = "thick"
	CatalogCrossbar CatalogKind = "crossbar"
)

// CatalogIssue - предупреждение о длине, которой нет в каталоге производителя.
// Nearest == 0 значит подходящей длины нет совсем.
type CatalogIssue struct {
	Component string `json:"component"`
	Length    int    `json:"length"`
	Nearest   int    `json:"nearest,omitempty"`
	Message   string `json:"message"`
}

// AvailableLengths возвращает отсортированный список длин каталога.
func AvailableLengths(kind CatalogKind) []int {
	maxLen := constants.ThickMaxLengthCm
	switch kind {
	case CatalogThin:
		maxLen = constants.ThinMaxLengthCm
	case CatalogCrossbar:
		maxLen = constants.CrossbarMaxLength
	}

	lengths := make([]int, 0, (maxLen-constants.CatalogMinLengthCm)/constants.CatalogStepCm+1)
	for l := constants.CatalogMinLengthCm; l <= maxLen; l += constants.CatalogStepCm {
		lengths = append(lengths, l)
	}
	return lengths
}

// FindNearestAvailable - наименьшая длина каталога >= required. catalog должен быть отсортирован.
func FindNearestAvailable(required int, catalog []int) (int, bool) {
	for _, l := range catalog {
		if l >= required {
			return l, true
		}
	}
	return 0, false
}

// ValidateRequirement только сообщает о проблемах, требование не меняется.
func ValidateRequirement(req StretcherRequirement) []CatalogIssue {
	barCatalog := AvailableLengths(CatalogKind(req.StretcherType))
	barComponent := fmt.Sprintf("stretcher_%s", req.StretcherType)

	var issues []CatalogIssue

	for _, line := range req.BarLines() {
		if issue, bad := checkLength(barComponent, line.Length, barCatalog); bad {
			issues = append(issues, issue)
		}
	}

	crossbarCatalog := AvailableLengths(CatalogCrossbar)
	for _, line := range req.CrossbarLines() {
		if issue, bad := checkLength(string(CatalogCrossbar), line.Length, crossbarCatalog); bad {
			issues = append(issues, issue)
		}
	}

	return issues
}

func checkLength(component string, length int, catalog []int) (CatalogIssue, bool) {
	for _, l := range catalog {
		if l == length {
			return CatalogIssue{}, false
		}
	}

	nearest, ok := FindNearestAvailable(length, catalog)
	if !ok {
		return CatalogIssue{
			Component: component,
			Length:    length,
			Message:   fmt.Sprintf("%s %d cm exceeds maximum catalog length %d cm", component, length, catalog[len(catalog)-1]),
		}, true
	}

	return CatalogIssue{
		Component: component,
		Length:    length,
		Nearest:   nearest,
		Message:   fmt.Sprintf("%s %d cm is not available, nearest is %d cm", component, length, nearest),
	}, true
}
