// Package gen implements the texture generators behind the art prints. Every
// generator is a pure function of (seed, width, height): the same inputs
// always reproduce the same field, which is what makes a print job replayable
// from its logged seed.
package gen

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/kioskworks/artprint/imgutil"
)

// Variant tags one texture algorithm.
type Variant string

const (
	Noise    Variant = "noise"
	Lines    Variant = "lines"
	Shapes   Variant = "shapes"
	Strokes  Variant = "strokes"
	Plasma   Variant = "plasma"
	Life     Variant = "life"
	Halftone Variant = "halftone"
	Burst    Variant = "burst"
	Maze     Variant = "maze"
)

// Variants lists every registered generator.
var Variants = []Variant{Noise, Lines, Shapes, Strokes, Plasma, Life, Halftone, Burst, Maze}

// Generate renders one grayscale layer. oversample is only consulted by the
// plasma generator; unknown variants fall back to noise.
func Generate(v Variant, seed int64, w, h int, oversample float64) *image.Gray {
	switch v {
	case Noise:
		return genNoise(seed, w, h)
	case Lines:
		return genLines(seed, w, h)
	case Shapes:
		return genShapes(seed, w, h)
	case Strokes:
		return genStrokes(seed, w, h)
	case Plasma:
		return genPlasma(seed, w, h, oversample)
	case Life:
		return genLife(seed, w, h)
	case Halftone:
		return genHalftone(seed, w, h)
	case Burst:
		return genBurst(seed, w, h)
	case Maze:
		return genMaze(seed, w, h)
	}
	return genNoise(seed, w, h)
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randBetween draws an int from [lo, hi] inclusive.
func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func blur(img image.Image, sigma float64) *image.Gray {
	return imgutil.ToGray(imaging.Blur(img, sigma))
}

// newCanvas returns a drawing context cleared to the given gray level.
func newCanvas(w, h int, bg uint8) *gg.Context {
	dc := gg.NewContext(w, h)
	dc.SetRGB255(int(bg), int(bg), int(bg))
	dc.Clear()
	return dc
}

func setGray(dc *gg.Context, v int) {
	dc.SetRGB255(v, v, v)
}

func toGrayImage(dc *gg.Context) *image.Gray {
	return imgutil.ToGray(dc.Image())
}
