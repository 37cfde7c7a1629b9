package gen

import "image"

// genShapes scatters a handful of filled rectangles and ellipses at random
// positions, sizes and gray values.
func genShapes(seed int64, w, h int) *image.Gray {
	rng := newRand(seed)
	dc := newCanvas(w, h, 255)

	maxW := w / 4
	if maxW < 10 {
		maxW = 10
	}
	maxH := h / 4
	if maxH < 10 {
		maxH = 10
	}

	count := randBetween(rng, 8, 24)
	for i := 0; i < count; i++ {
		x1 := rng.Intn(w)
		y1 := rng.Intn(h)
		x2 := x1 + randBetween(rng, 8, maxW-1)
		y2 := y1 + randBetween(rng, 8, maxH-1)
		if x2 > w-1 {
			x2 = w - 1
		}
		if y2 > h-1 {
			y2 = h - 1
		}
		setGray(dc, randBetween(rng, 50, 200))
		if rng.Float64() < 0.5 {
			dc.DrawRectangle(float64(x1), float64(y1), float64(x2-x1), float64(y2-y1))
		} else {
			cx := float64(x1+x2) / 2
			cy := float64(y1+y2) / 2
			dc.DrawEllipse(cx, cy, float64(x2-x1)/2, float64(y2-y1)/2)
		}
		dc.Fill()
	}

	return blur(dc.Image(), uniform(rng, 0.5, 1.0))
}
