package frame

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestAvailableLengths(t *testing.T) {
	thin := AvailableLengths(CatalogThin)
	require.Len(t, thin, 13)
	assert.Equal(t, 30, thin[0])
	assert.Equal(t, 90, thin[len(thin)-1])

	thick := AvailableLengths(CatalogThick)
	require.Len(t, thick, 27)
	assert.Equal(t, 30, thick[0])
	assert.Equal(t, 160, thick[len(thick)-1])

	assert.Equal(t, thick, AvailableLengths(CatalogCrossbar))

	for i := 1; i < len(thick); i++ {
		assert.Equal(t, 5, thick[i]-thick[i-1])
	}
}

func TestFindNearestAvailable(t *testing.T) {
	thin := AvailableLengths(CatalogThin)

	got, ok := FindNearestAvailable(72, thin)
	assert.True(t, ok)
	assert.Equal(t, 75, got)

	got, ok = FindNearestAvailable(30, thin)
	assert.True(t, ok)
	assert.Equal(t, 30, got)

	got, ok = FindNearestAvailable(10, thin)
	assert.True(t, ok)
	assert.Equal(t, 30, got)

	_, ok = FindNearestAvailable(95, thin)
	assert.False(t, ok)
}

func TestValidateRequirement_AllInCatalog(t *testing.T) {
	req := CalculateStretcherRequirement(CanvasDimensions{Width: 150, Height: 100}, "")
	assert.Empty(t, ValidateRequirement(req))
}

func TestValidateRequirement_NotAvailable(t *testing.T) {
	req := CalculateStretcherRequirement(CanvasDimensions{Width: 72, Height: 50}, "")

	issues := ValidateRequirement(req)
	require.Len(t, issues, 1)
	assert.Equal(t, "stretcher_thin", issues[0].Component)
	assert.Equal(t, 72, issues[0].Length)
	assert.Equal(t, 75, issues[0].Nearest)
	assert.Contains(t, issues[0].Message, "nearest is 75")
}

func TestValidateRequirement_ExceedsMaximum(t *testing.T) {
	req := CalculateStretcherRequirement(CanvasDimensions{Width: 170, Height: 100}, "")

	issues := ValidateRequirement(req)
	require.Len(t, issues, 1)
	assert.Equal(t, 170, issues[0].Length)
	assert.Zero(t, issues[0].Nearest)
	assert.Contains(t, issues[0].Message, "exceeds maximum")
}

func TestValidateRequirement_ThinHintTooLong(t *testing.T) {
	req := CalculateStretcherRequirement(CanvasDimensions{Width: 100, Height: 80}, FrameThin)

	issues := ValidateRequirement(req)
	require.Len(t, issues, 1)
	assert.Equal(t, "stretcher_thin", issues[0].Component)
	assert.Equal(t, 100, issues[0].Length)
}

func TestValidateRequirement_Crossbar(t *testing.T) {
	req := CalculateStretcherRequirement(CanvasDimensions{Width: 158, Height: 158}, "")

	issues := ValidateRequirement(req)
	require.Len(t, issues, 2)
	assert.Equal(t, "stretcher_thick", issues[0].Component)
	assert.Equal(t, "crossbar", issues[1].Component)
	assert.Equal(t, 160, issues[1].Nearest)
	assert.Equal(t, 158, req.Width, "validation must not round the requirement")
}
