package gen

import (
	"image"
	"math"
)

// genBurst draws a fan of thin rays from a random center at near-uniform
// angular spacing, with jittered length, width and gray per ray.
func genBurst(seed int64, w, h int) *image.Gray {
	rng := newRand(seed)
	dc := newCanvas(w, h, 245)

	cx := float64(randBetween(rng, int(float64(w)*0.2), int(float64(w)*0.8)))
	cy := float64(randBetween(rng, int(float64(h)*0.2), int(float64(h)*0.8)))
	rays := randBetween(rng, 50, 160)
	maxLen := float64(maxInt(w, h)) * 1.1
	baseGray := randBetween(rng, 40, 120)

	for i := 0; i < rays; i++ {
		angle := 2*math.Pi*float64(i)/float64(rays) + uniform(rng, -0.03, 0.03)
		length := maxLen * uniform(rng, 0.6, 1.0)
		x2 := cx + length*math.Cos(angle)
		y2 := cy + length*math.Sin(angle)
		g := int(float64(baseGray) + uniform(rng, -30, 30))
		if g < 30 {
			g = 30
		}
		if g > 200 {
			g = 200
		}
		setGray(dc, g)
		dc.SetLineWidth(float64(randBetween(rng, 1, 3)))
		dc.DrawLine(cx, cy, x2, y2)
		dc.Stroke()
	}

	return blur(dc.Image(), uniform(rng, 0.8, 1.8))
}
