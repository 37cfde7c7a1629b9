package gen

import (
	"image"
	"math"
)

// genLines sweeps a few sine bands across the width, each with its own
// amplitude, frequency, phase, thickness and gray level.
func genLines(seed int64, w, h int) *image.Gray {
	rng := newRand(seed)
	dc := newCanvas(w, h, 255)

	bands := randBetween(rng, 3, 7)
	for i := 0; i < bands; i++ {
		amp := uniform(rng, float64(h)*0.04, float64(h)*0.28)
		freq := uniform(rng, 0.002, 0.028)
		phase := uniform(rng, 0, 2*math.Pi)
		thickness := randBetween(rng, 1, 3)
		setGray(dc, randBetween(rng, 35, 150))
		dc.SetLineWidth(1)
		for x := 0; x < w; x++ {
			y := float64(h)/2 + amp*math.Sin(float64(x)*freq+phase)
			dc.DrawLine(float64(x), y-float64(thickness), float64(x), y+float64(thickness))
		}
		dc.Stroke()
	}

	return blur(dc.Image(), uniform(rng, 0.4, 0.9))
}
