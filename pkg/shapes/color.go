package shapes

import (
	"fmt"
	"math/rand"
)

// RandomSource supplies uniform samples in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float32() float32
}

type globalSource struct{}

func (globalSource) Float32() float32 { return rand.Float32() }

func source(rng RandomSource) RandomSource {
	if rng == nil {
		return globalSource{}
	}
	return rng
}

func randomIn(rng RandomSource, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// RandomColor returns a color with random r, g and b and alpha 1.
// A nil rng uses the math/rand global source.
func RandomColor(rng RandomSource) Color {
	rng = source(rng)
	return Color{rng.Float32(), rng.Float32(), rng.Float32(), 1}
}

// RandomColorInRange returns a color whose components are drawn uniformly between
// the matching components of minColor and maxColor. The range is not checked.
func RandomColorInRange(rng RandomSource, minColor, maxColor Color) Color {
	rng = source(rng)
	var c Color
	for i := range c {
		c[i] = randomIn(rng, minColor[i], maxColor[i])
	}
	return c
}

// ValidateColorRange reports whether every component satisfies 0 <= min <= max <= 1.
func ValidateColorRange(minColor, maxColor Color) error {
	for i := range minColor {
		if minColor[i] < 0 || minColor[i] > maxColor[i] || maxColor[i] > 1 {
			return fmt.Errorf("%w: component %d is [%g, %g]", ErrInvalidColorRange, i, minColor[i], maxColor[i])
		}
	}
	return nil
}

// RandomColors writes k colors with all four components random, starting at start.
func RandomColors(rng RandomSource, k int, colors []Color, start int) int {
	rng = source(rng)
	for j := range k {
		for i := range 4 {
			colors[start+j][i] = rng.Float32()
		}
	}
	return start + k
}

// RandomColorsInRange writes k colors constrained between minColor and maxColor.
// It returns -1 and ErrInvalidColorRange without writing if the range is invalid.
func RandomColorsInRange(rng RandomSource, k int, colors []Color, start int, minColor, maxColor Color) (int, error) {
	if err := ValidateColorRange(minColor, maxColor); err != nil {
		return -1, err
	}
	for j := range k {
		colors[start+j] = RandomColorInRange(rng, minColor, maxColor)
	}
	return start + k, nil
}

// RandomTriangleColors writes k random colors three times each, one per triangle
// vertex, for 3k entries.
func RandomTriangleColors(rng RandomSource, k int, colors []Color, start int) int {
	rng = source(rng)
	for range k {
		c := Color{rng.Float32(), rng.Float32(), rng.Float32(), rng.Float32()}
		colors[start] = c
		colors[start+1] = c
		colors[start+2] = c
		start += 3
	}
	return start
}

// RandomTriangleColorsInRange is RandomTriangleColors constrained between minColor
// and maxColor, failing like RandomColorsInRange.
func RandomTriangleColorsInRange(rng RandomSource, k int, colors []Color, start int, minColor, maxColor Color) (int, error) {
	if err := ValidateColorRange(minColor, maxColor); err != nil {
		return -1, err
	}
	for range k {
		c := RandomColorInRange(rng, minColor, maxColor)
		colors[start] = c
		colors[start+1] = c
		colors[start+2] = c
		start += 3
	}
	return start, nil
}
