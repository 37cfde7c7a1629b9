package gen

import (
	"image"
	"math"
)

// genStrokes lays down hundreds of short ink strokes at random angles, like a
// dense charcoal hatch.
func genStrokes(seed int64, w, h int) *image.Gray {
	rng := newRand(seed)
	dc := newCanvas(w, h, 255)

	n := randBetween(rng, 800, 1600)
	for i := 0; i < n; i++ {
		x := float64(rng.Intn(w))
		y := float64(rng.Intn(h))
		length := float64(randBetween(rng, 4, 22))
		angle := uniform(rng, 0, 2*math.Pi)
		setGray(dc, randBetween(rng, 10, 160))
		dc.SetLineWidth(float64(randBetween(rng, 1, 2)))
		dc.DrawLine(x, y, x+length*math.Cos(angle), y+length*math.Sin(angle))
		dc.Stroke()
	}

	return blur(dc.Image(), uniform(rng, 0.3, 0.8))
}
