// Package compose turns a seed and a style recipe into the finished art
// layer, and stacks the header text above it on the print canvas.
package compose

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/kioskworks/artprint/gen"
	"github.com/kioskworks/artprint/imgutil"
	"github.com/kioskworks/artprint/style"
)

const (
	baseHeightLo = 1.7
	baseHeightHi = 2.0

	vignetteProb       = 0.65
	vignetteStrengthLo = 0.35
	vignetteStrengthHi = 0.60
)

// Art generates the merged art layer for one run. The sequence of rng draws
// is fixed, so a given (seed, recipe, width) is fully reproducible.
func Art(seed int64, recipe style.Recipe, width, minBaseHeight int) *image.Gray {
	rng := rand.New(rand.NewSource(seed))

	baseH := int(float64(width) * uniform(rng, baseHeightLo, baseHeightHi))
	if baseH < minBaseHeight {
		baseH = minBaseHeight
	}

	baseVariant := style.Pick(rng, recipe.Base)
	img := gen.Generate(baseVariant, seed, width, baseH, recipe.PlasmaOversample)
	img = flipRotate(img, rng)

	if rng.Float64() < recipe.LayerProb {
		layerCount := recipe.LayersMin + rng.Intn(recipe.LayersMax-recipe.LayersMin+1)
		used := map[gen.Variant]int{baseVariant: 1}
		for i := 0; i < layerCount; i++ {
			alt := style.Pick(rng, recipe.Alt)
			for tries := 0; tries < 5 && (used[alt] >= 1 || (alt == gen.Plasma && baseVariant == gen.Plasma)); tries++ {
				alt = style.Pick(rng, recipe.Alt)
			}
			used[alt]++

			layerSeed := (seed + int64(1000+rng.Intn(8999))) & 0xFFFFFFFF
			layer := gen.Generate(alt, layerSeed, width, baseH, recipe.PlasmaOversample)
			layer = flipRotate(layer, rng)

			mode := style.Pick(rng, recipe.Modes)
			opacity := uniform(rng, recipe.OpacityLo, recipe.OpacityHi)
			img = blendLayers(img, layer, mode, opacity)
		}
	}

	if rng.Float64() < vignetteProb {
		applyVignette(img, uniform(rng, vignetteStrengthLo, vignetteStrengthHi))
	}
	return img
}

// blendLayers normalizes the incoming layer, merges it with the chosen mode,
// and lerps between base and merged by opacity.
func blendLayers(a, b *image.Gray, mode style.BlendMode, opacity float64) *image.Gray {
	bn := imgutil.Autocontrast(b, 0.02, 0.02)
	imgutil.AdjustContrast(bn, 1.05)

	out := image.NewGray(a.Bounds())
	for i := range a.Pix {
		av := int(a.Pix[i])
		bv := int(bn.Pix[i])
		var m int
		switch mode {
		case style.Multiply:
			m = av * bv / 255
		case style.Add:
			m = av + bv
			if m > 255 {
				m = 255
			}
		default: // screen
			m = 255 - (255-av)*(255-bv)/255
		}
		out.Pix[i] = imgutil.Clamp8(float64(av) + float64(m-av)*opacity)
	}
	return out
}

// flipRotate applies a random combination of horizontal flip, vertical flip
// and quarter-turn rotation. Rotations keep the original canvas size, filling
// uncovered corners with black, so layer dimensions stay lined up.
func flipRotate(img *image.Gray, rng *rand.Rand) *image.Gray {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if rng.Float64() < 0.5 {
		img = imgutil.ToGray(imaging.FlipH(img))
	}
	if rng.Float64() < 0.5 {
		img = imgutil.ToGray(imaging.FlipV(img))
	}
	switch rng.Intn(4) {
	case 1:
		img = fitTo(imgutil.ToGray(imaging.Rotate90(img)), w, h)
	case 2:
		img = imgutil.ToGray(imaging.Rotate180(img))
	case 3:
		img = fitTo(imgutil.ToGray(imaging.Rotate270(img)), w, h)
	}
	return img
}

// fitTo centers src on a black w×h canvas, cropping whatever overflows.
func fitTo(src *image.Gray, w, h int) *image.Gray {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if sw == w && sh == h {
		return src
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	offX := (w - sw) / 2
	offY := (h - sh) / 2
	for y := 0; y < sh; y++ {
		dy := y + offY
		if dy < 0 || dy >= h {
			continue
		}
		for x := 0; x < sw; x++ {
			dx := x + offX
			if dx < 0 || dx >= w {
				continue
			}
			dst.Pix[dy*dst.Stride+dx] = src.Pix[y*src.Stride+x]
		}
	}
	return dst
}

// applyVignette composites the image toward white by squared radial distance
// from center. The falloff is monotonic, so narrow prints get soft edges
// without a visible ring.
func applyVignette(img *image.Gray, strength float64) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	cx, cy := float64(w)/2, float64(h)/2
	maxR2 := cx*cx + cy*cy
	for y := 0; y < h; y++ {
		dy := float64(y) - cy
		for x := 0; x < w; x++ {
			dx := float64(x) - cx
			rr := (dx*dx + dy*dy) / maxR2
			if rr > 1 {
				rr = 1
			}
			m := rr * strength
			i := y*img.Stride + x
			p := float64(img.Pix[i])
			img.Pix[i] = imgutil.Clamp8(p + (255-p)*m)
		}
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
