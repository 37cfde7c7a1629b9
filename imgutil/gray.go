// Package imgutil provides the 8-bit grayscale buffer operations shared by
// the generators, the compositor and the print-prep pipeline.
package imgutil

import (
	"image"
	"image/color"
	"math"
)

// ToGray converts any image to 8-bit grayscale. *image.Gray inputs are
// returned as-is.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetGray(x-b.Min.X, y-b.Min.Y, color.GrayModel.Convert(img.At(x, y)).(color.Gray))
		}
	}
	return out
}

// NewGray returns a w×h grayscale image filled with the given value.
func NewGray(w, h int, fill uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	if fill != 0 {
		for i := range img.Pix {
			img.Pix[i] = fill
		}
	}
	return img
}

// Mean returns the average pixel value of a grayscale image.
func Mean(img *image.Gray) float64 {
	if len(img.Pix) == 0 {
		return 0
	}
	var sum uint64
	for _, p := range img.Pix {
		sum += uint64(p)
	}
	return float64(sum) / float64(len(img.Pix))
}

// Clamp8 clamps v to the 0..255 range.
func Clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ApplyLUT maps every pixel through a 256-entry lookup table in place.
func ApplyLUT(img *image.Gray, lut *[256]uint8) {
	for i, p := range img.Pix {
		img.Pix[i] = lut[p]
	}
}

// Autocontrast stretches the histogram so that the loCut fraction of darkest
// pixels maps to 0 and the hiCut fraction of lightest pixels maps to 255.
func Autocontrast(img *image.Gray, loCut, hiCut float64) *image.Gray {
	var hist [256]int
	for _, p := range img.Pix {
		hist[p]++
	}
	total := len(img.Pix)
	if total == 0 {
		return CloneGray(img)
	}

	loDrop := int(loCut * float64(total))
	hiDrop := int(hiCut * float64(total))

	lo := 0
	for n := 0; lo < 255; lo++ {
		n += hist[lo]
		if n > loDrop {
			break
		}
	}
	hi := 255
	for n := 0; hi > 0; hi-- {
		n += hist[hi]
		if n > hiDrop {
			break
		}
	}
	if hi <= lo {
		return CloneGray(img)
	}

	scale := 255.0 / float64(hi-lo)
	var lut [256]uint8
	for i := 0; i < 256; i++ {
		lut[i] = Clamp8(float64(i-lo) * scale)
	}
	out := CloneGray(img)
	ApplyLUT(out, &lut)
	return out
}

// AdjustGamma applies the power curve (p/255)^gamma in place.
func AdjustGamma(img *image.Gray, gamma float64) {
	var lut [256]uint8
	for i := 0; i < 256; i++ {
		lut[i] = Clamp8(255.0 * math.Pow(float64(i)/255.0, gamma))
	}
	ApplyLUT(img, &lut)
}

// AdjustContrast scales pixel distance from mid-gray by factor, in place.
// factor 1.0 is a no-op; 1.15 boosts contrast by 15%.
func AdjustContrast(img *image.Gray, factor float64) {
	mean := Mean(img)
	var lut [256]uint8
	for i := 0; i < 256; i++ {
		lut[i] = Clamp8(mean + (float64(i)-mean)*factor)
	}
	ApplyLUT(img, &lut)
}

// CloneGray returns a copy of img.
func CloneGray(img *image.Gray) *image.Gray {
	out := image.NewGray(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}
