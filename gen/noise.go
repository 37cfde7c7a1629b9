package gen

import (
	"image"

	"github.com/kioskworks/artprint/imgutil"
)

// genNoise fills the field with uniform random values, blurs it, then pushes
// the midtones apart with a random shift/gain so the result spans a printable
// tonal range instead of flat gray.
func genNoise(seed int64, w, h int) *image.Gray {
	rng := newRand(seed)

	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}

	out := blur(img, uniform(rng, 0.8, 1.6))

	shift := float64(randBetween(rng, 80, 119))
	gain := uniform(rng, 1.4, 1.8)
	for i, p := range out.Pix {
		out.Pix[i] = imgutil.Clamp8((float64(p) - shift) * gain)
	}
	return out
}
