package gen

import (
	"image"
	"math"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"

	"github.com/kioskworks/artprint/imgutil"
)

// Tonal shaping applied after the octave sum: a mild power curve plus an
// S-curve keeps the clouds from collapsing into mud on thermal paper.
const (
	plasmaGamma  = 0.85
	plasmaLinear = 0.6
	plasmaSMix   = 0.4
)

// genPlasma synthesizes fractional Brownian motion: several octaves of
// bicubically upsampled random grids, each octave denser and fainter than the
// last, summed and renormalized. The field is built oversampled and brought
// down to target size with Lanczos so the cloud edges stay smooth at receipt
// resolution.
func genPlasma(seed int64, w, h int, oversample float64) *image.Gray {
	if oversample <= 0 {
		oversample = 3.0
	}
	rng := newRand(seed)

	bigW := int(float64(w) * oversample)
	bigH := int(float64(h) * oversample)

	cellsX := maxInt(6, int(float64(bigW)/uniform(rng, 220, 300)))
	cellsY := maxInt(6, int(float64(bigH)/uniform(rng, 220, 300)))
	octaves := randBetween(rng, 5, 6)
	lacunarity := uniform(rng, 1.8, 2.1)
	persistence := uniform(rng, 0.50, 0.62)

	acc := make([]float32, bigW*bigH)
	amp := 1.0
	for o := 0; o < octaves; o++ {
		grid := image.NewGray(image.Rect(0, 0, cellsX, cellsY))
		for i := range grid.Pix {
			grid.Pix[i] = uint8(rng.Intn(256))
		}
		layer := image.NewGray(image.Rect(0, 0, bigW, bigH))
		xdraw.CatmullRom.Scale(layer, layer.Bounds(), grid, grid.Bounds(), xdraw.Src, nil)

		for i := range acc {
			acc[i] += float32(layer.Pix[i]) / 255.0 * float32(amp)
		}
		amp *= persistence
		cellsX = minInt(maxInt(6, int(float64(cellsX)*lacunarity)), maxInt(36, bigW/22))
		cellsY = minInt(maxInt(6, int(float64(cellsY)*lacunarity)), maxInt(36, bigH/22))
	}

	mn, mx := acc[0], acc[0]
	for _, v := range acc {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	span := mx - mn
	if span < 1e-9 {
		span = 1e-9
	}

	cloud := image.NewGray(image.Rect(0, 0, bigW, bigH))
	for i, v := range acc {
		f := float64((v - mn) / span)
		f = powClamped(f, plasmaGamma)
		f = plasmaLinear*f + plasmaSMix*(f*(1.0-f)*4.0)
		cloud.Pix[i] = imgutil.Clamp8(f * 255.0)
	}

	blurred := blur(cloud, uniform(rng, 0.25, 0.55))
	down := resize.Resize(uint(w), uint(h), blurred, resize.Lanczos3)
	return imgutil.ToGray(down)
}

func powClamped(f, gamma float64) float64 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 1
	}
	return math.Pow(f, gamma)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
