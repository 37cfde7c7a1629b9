// Package prep converts the composed grayscale canvas into the 1-bit bitmap
// the printer receives: level, dither, trim, margin, byte-align. The output
// uses 0 for black and 255 for white, one byte per pixel; bit packing happens
// at transmission time.
package prep

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/makeworld-the-better-one/dither/v2"

	"github.com/kioskworks/artprint/imgutil"
)

const (
	targetMean     = 140.0
	targetMeanBand = 12.0

	trimBlackFrac = 0.97
	trimWhiteFrac = 0.997
	trimMaxRatio  = 0.25

	marginLR = 8
	marginTB = 6

	// fraction of one tone beyond which the result counts as near-uniform
	uniformFrac = 0.98
)

type levelParams struct {
	blackCut, whiteCut float64
	contrast           float64
	gamma              float64
}

var (
	levelDefault    = levelParams{0.05, 0.05, 1.15, 0.95}
	levelDarker     = levelParams{0.04, 0.06, 1.10, 0.90}
	levelLighter    = levelParams{0.06, 0.04, 1.10, 1.10}
	levelCorrective = levelParams{0.10, 0.10, 1.40, 0.90}
)

// ForPrinter runs the whole pipeline. The result always has width divisible
// by 8 and height at least minFinalRows.
func ForPrinter(img *image.Gray, maxWidth, minFinalRows int) *image.Gray {
	leveled := resizeAndLevel(img, maxWidth)
	out := ditherTrimPad(leveled, minFinalRows)

	// A print that dithered to almost one solid tone means the leveling
	// guessed badly; one corrective pass with stronger parameters instead of
	// failing the job.
	if frac := dominantToneFraction(out); frac > uniformFrac {
		releveled := autoLevels(leveled, levelCorrective)
		out = ditherTrimPad(releveled, minFinalRows)
	}
	return out
}

func resizeAndLevel(img *image.Gray, maxWidth int) *image.Gray {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w != maxWidth {
		img = imgutil.ToGray(imaging.Resize(img, maxWidth, h*maxWidth/w, imaging.Linear))
	}

	img = autoLevels(img, levelDefault)
	m := imgutil.Mean(img)
	if m < targetMean-targetMeanBand {
		img = autoLevels(img, levelDarker)
	} else if m > targetMean+targetMeanBand {
		img = autoLevels(img, levelLighter)
	}
	return img
}

func ditherTrimPad(img *image.Gray, minFinalRows int) *image.Gray {
	bin := floydSteinberg(img)
	bin = trimBandsTB(bin)
	bin = cropWhitespaceLR(bin)
	bin = addMargins(bin, marginLR, marginTB)
	bin = padToByteWidth(bin)
	bin = padToMinHeight(bin, minFinalRows)
	return bin
}

// autoLevels is the leveling stage: histogram cutoff stretch, a contrast
// multiplier, then a gamma curve.
func autoLevels(img *image.Gray, p levelParams) *image.Gray {
	out := imgutil.Autocontrast(img, p.blackCut, p.whiteCut)
	imgutil.AdjustContrast(out, p.contrast)
	imgutil.AdjustGamma(out, p.gamma)
	return out
}

// floydSteinberg converts to 1-bit via error diffusion, preserving midtones
// as dot patterns rather than crushing them at a threshold.
func floydSteinberg(img *image.Gray) *image.Gray {
	// The dither library stores its palette as color.RGBA64 and compares the
	// destination's palette entries by concrete type, so color.Black/White
	// (color.Gray16) would never match and Draw would panic.
	palette := []color.Color{
		color.RGBA64{0, 0, 0, 0xffff},
		color.RGBA64{0xffff, 0xffff, 0xffff, 0xffff},
	}
	dithered := image.NewPaletted(img.Bounds(), palette)
	d := dither.NewDitherer(palette)
	d.Matrix = dither.FloydSteinberg
	d.Draw(dithered, dithered.Bounds(), img, image.Point{})

	out := image.NewGray(img.Bounds())
	for i, idx := range dithered.Pix {
		if idx == 1 {
			out.Pix[i] = 255
		}
	}
	return out
}

// rowBlackFraction measures how much of one row is black.
func rowBlackFraction(img *image.Gray, y int) float64 {
	w := img.Bounds().Dx()
	var sum int
	row := img.Pix[y*img.Stride : y*img.Stride+w]
	for _, p := range row {
		sum += int(p)
	}
	return 1.0 - float64(sum)/float64(w)/255.0
}

// trimBandsTB removes near-solid rows from the top and bottom independently.
// Trimming stops at the first row that keeps real content, and each side
// never loses more than trimMaxRatio of the height.
func trimBandsTB(img *image.Gray) *image.Gray {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	maxTrim := int(float64(h) * trimMaxRatio)

	top, bottom := 0, h
	for y := 0; y < h; y++ {
		if y >= maxTrim {
			break
		}
		bf := rowBlackFraction(img, y)
		if bf >= trimBlackFrac || 1.0-bf >= trimWhiteFrac {
			top = y + 1
		} else {
			break
		}
	}
	for y := h - 1; y >= 0; y-- {
		if h-1-y >= maxTrim {
			break
		}
		bf := rowBlackFraction(img, y)
		if bf >= trimBlackFrac || 1.0-bf >= trimWhiteFrac {
			bottom = y
		} else {
			break
		}
	}
	if bottom <= top {
		return img
	}
	return crop(img, 0, top, w, bottom)
}

// cropWhitespaceLR drops fully white columns from both sides. Unlike the
// vertical trim there is no cap; side whitespace never carries content.
func cropWhitespaceLR(img *image.Gray) *image.Gray {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	colHasInk := func(x int) bool {
		for y := 0; y < h; y++ {
			if img.Pix[y*img.Stride+x] < 250 {
				return true
			}
		}
		return false
	}

	left := 0
	for left < w && !colHasInk(left) {
		left++
	}
	if left == w {
		return img
	}
	right := w - 1
	for right > left && !colHasInk(right) {
		right--
	}
	if right <= left {
		return img
	}
	return crop(img, left, 0, right+1, h)
}

func addMargins(img *image.Gray, lr, tb int) *image.Gray {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	out := imgutil.NewGray(w+lr*2, h+tb*2, 255)
	paste(out, img, lr, tb)
	return out
}

// padToByteWidth pads the right edge with white so the width packs into whole
// bytes; the padding bits never print.
func padToByteWidth(img *image.Gray) *image.Gray {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	pad := (8 - w%8) % 8
	if pad == 0 {
		return img
	}
	out := imgutil.NewGray(w+pad, h, 255)
	paste(out, img, 0, 0)
	return out
}

func padToMinHeight(img *image.Gray, minRows int) *image.Gray {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if h >= minRows {
		return img
	}
	out := imgutil.NewGray(w, minRows, 255)
	paste(out, img, 0, 0)
	return out
}

// dominantToneFraction returns the larger of the white and black pixel
// fractions.
func dominantToneFraction(img *image.Gray) float64 {
	var black, white int
	for _, p := range img.Pix {
		if p < 128 {
			black++
		} else {
			white++
		}
	}
	total := float64(len(img.Pix))
	if total == 0 {
		return 1
	}
	bf := float64(black) / total
	if bf > 0.5 {
		return bf
	}
	return float64(white) / total
}

func crop(img *image.Gray, x0, y0, x1, y1 int) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, x1-x0, y1-y0))
	for y := y0; y < y1; y++ {
		copy(out.Pix[(y-y0)*out.Stride:(y-y0)*out.Stride+(x1-x0)],
			img.Pix[y*img.Stride+x0:y*img.Stride+x1])
	}
	return out
}

func paste(dst, src *image.Gray, x, y int) {
	w := src.Bounds().Dx()
	for sy := 0; sy < src.Bounds().Dy(); sy++ {
		copy(dst.Pix[(y+sy)*dst.Stride+x:(y+sy)*dst.Stride+x+w],
			src.Pix[sy*src.Stride:sy*src.Stride+w])
	}
}
