package frame

import (
	"regexp"
	"strconv"
)

var (
	unitSuffix   = regexp.MustCompile(`(?i)\s*(cm|px)`)
	dimensionsRe = regexp.MustCompile(`(?i)(\d+)\s*[x×]\s*(\d+)`)
)

// ParseDimensions достаёт ширину и высоту из строки вида "120x80", "120 x 80 cm", "120×80".
// ok=false если пары чисел нет.
func ParseDimensions(text string) (CanvasDimensions, bool) {
	cleaned := unitSuffix.ReplaceAllString(text, "")

	m := dimensionsRe.FindStringSubmatch(cleaned)
	if m == nil {
		return CanvasDimensions{}, false
	}

	width, err := strconv.Atoi(m[1])
	if err != nil {
		return CanvasDimensions{}, false
	}
	height, err := strconv.Atoi(m[2])
	if err != nil {
		return CanvasDimensions{}, false
	}

	if width <= 0 || height <= 0 {
		return CanvasDimensions{}, false
	}

	return CanvasDimensions{Width: width, Height: height}, true
}
