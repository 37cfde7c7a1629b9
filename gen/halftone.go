package gen

import "image"

// genHalftone samples a continuous-tone base field on a fixed grid and draws
// one dot per cell, radius proportional to local darkness, with a little
// positional jitter so the grid never reads as mechanical.
func genHalftone(seed int64, w, h int) *image.Gray {
	rng := newRand(seed)

	var base *image.Gray
	if rng.Float64() < 0.6 {
		base = genPlasma(seed, w, h, 2.6)
	} else {
		base = genNoise(seed, w, h)
	}

	cell := randBetween(rng, 6, 11)
	dc := newCanvas(w, h, 255)
	jitter := uniform(rng, 0.0, 0.25)

	for y := 0; y < h; y += cell {
		for x := 0; x < w; x += cell {
			x2 := minInt(x+cell, w)
			y2 := minInt(y+cell, h)
			var sum, n int
			for yy := y; yy < y2; yy++ {
				for xx := x; xx < x2; xx++ {
					sum += int(base.Pix[yy*base.Stride+xx])
					n++
				}
			}
			darkness := 1.0 - float64(sum)/float64(n)/255.0
			r := darkness * float64(cell) * 0.5
			if r <= 0.2 {
				continue
			}
			jx := (rng.Float64() - 0.5) * jitter * float64(cell)
			jy := (rng.Float64() - 0.5) * jitter * float64(cell)
			cx := float64(x) + float64(cell)/2 + jx
			cy := float64(y) + float64(cell)/2 + jy
			setGray(dc, int(40+160*darkness))
			dc.DrawCircle(cx, cy, r)
			dc.Fill()
		}
	}

	return toGrayImage(dc)
}
