package prep

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kioskworks/artprint/imgutil"
)

func noisy(seed int64, w, h int) *image.Gray {
	rng := rand.New(rand.NewSource(seed))
	img := imgutil.NewGray(w, h, 0)
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	return img
}

func TestForPrinterInvariants(t *testing.T) {
	cases := []struct {
		name     string
		img      *image.Gray
		maxWidth int
		minRows  int
	}{
		{"noise at width", noisy(1, 512, 700), 512, 900},
		{"needs resize", noisy(2, 300, 450), 512, 900},
		{"odd width", noisy(3, 511, 1000), 384, 600},
		{"tiny", noisy(4, 40, 40), 512, 900},
		{"all white", imgutil.NewGray(512, 1000, 255), 512, 900},
		{"all black", imgutil.NewGray(512, 1000, 0), 512, 900},
		{"mid gray", imgutil.NewGray(512, 1000, 128), 512, 900},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			out := ForPrinter(tc.img, tc.maxWidth, tc.minRows)
			assert.Zero(t, out.Bounds().Dx()%8, "width must pack into whole bytes")
			assert.GreaterOrEqual(t, out.Bounds().Dy(), tc.minRows)
			for _, p := range out.Pix {
				require.True(t, p == 0 || p == 255, "output must be 1-bit")
			}
		})
	}
}

func TestForPrinterDeterministic(t *testing.T) {
	a := ForPrinter(noisy(9, 512, 800), 512, 900)
	b := ForPrinter(noisy(9, 512, 800), 512, 900)
	require.Equal(t, a.Bounds(), b.Bounds())
	assert.Equal(t, a.Pix, b.Pix)
}

func TestFloydSteinbergPreservesTone(t *testing.T) {
	img := imgutil.NewGray(256, 256, 128)
	bin := floydSteinberg(img)
	var black int
	for _, p := range bin.Pix {
		if p == 0 {
			black++
		}
	}
	frac := float64(black) / float64(len(bin.Pix))
	// mid gray should dither to roughly half-and-half, not a solid tone
	assert.InDelta(t, 0.5, frac, 0.08)
}

func TestTrimBandsCapped(t *testing.T) {
	// adversarial: entirely black, every row trimmable
	img := imgutil.NewGray(64, 400, 0)
	out := trimBandsTB(img)
	assert.GreaterOrEqual(t, out.Bounds().Dy(), 400-2*int(400*trimMaxRatio))
}

func TestTrimBandsStopsAtContent(t *testing.T) {
	img := imgutil.NewGray(64, 100, 255)
	// content row pattern at y=10..89: half black
	for y := 10; y < 90; y++ {
		for x := 0; x < 32; x++ {
			img.Pix[y*img.Stride+x] = 0
		}
	}
	out := trimBandsTB(img)
	assert.Equal(t, 80, out.Bounds().Dy())
}

func TestCropWhitespaceLR(t *testing.T) {
	img := imgutil.NewGray(100, 40, 255)
	for y := 0; y < 40; y++ {
		img.Pix[y*img.Stride+30] = 0
		img.Pix[y*img.Stride+69] = 0
	}
	out := cropWhitespaceLR(img)
	assert.Equal(t, 40, out.Bounds().Dx())
	assert.Equal(t, uint8(0), out.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), out.GrayAt(39, 0).Y)
}

func TestCropWhitespaceAllWhiteUntouched(t *testing.T) {
	img := imgutil.NewGray(64, 20, 255)
	out := cropWhitespaceLR(img)
	assert.Equal(t, 64, out.Bounds().Dx())
}

func TestPadToByteWidth(t *testing.T) {
	for _, w := range []int{1, 7, 8, 9, 511, 512} {
		img := imgutil.NewGray(w, 10, 0)
		out := padToByteWidth(img)
		assert.Zero(t, out.Bounds().Dx()%8, "w=%d", w)
		assert.GreaterOrEqual(t, out.Bounds().Dx(), w)
		// padding is white so it never prints
		if out.Bounds().Dx() > w {
			assert.Equal(t, uint8(255), out.GrayAt(out.Bounds().Dx()-1, 5).Y)
		}
	}
}

func TestNearUniformInputStillValid(t *testing.T) {
	// a flat bright field dithers to near-solid white; whether or not the
	// corrective releveling pass engages, the result must stay well-formed
	img := imgutil.NewGray(512, 950, 250)
	out := ForPrinter(img, 512, 900)
	assert.Zero(t, out.Bounds().Dx()%8)
	assert.GreaterOrEqual(t, out.Bounds().Dy(), 900)

	solid := imgutil.NewGray(512, 950, 255)
	out = ForPrinter(solid, 512, 900)
	assert.Zero(t, out.Bounds().Dx()%8)
	assert.GreaterOrEqual(t, out.Bounds().Dy(), 900)
}
