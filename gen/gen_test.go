package gen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	for _, v := range Variants {
		v := v
		t.Run(string(v), func(t *testing.T) {
			a := Generate(v, 12345, 128, 192, 3.0)
			b := Generate(v, 12345, 128, 192, 3.0)
			require.Equal(t, a.Bounds(), b.Bounds())
			assert.True(t, bytes.Equal(a.Pix, b.Pix), "same seed must reproduce the same field")
		})
	}
}

func TestGenerateDimensions(t *testing.T) {
	for _, v := range Variants {
		img := Generate(v, 7, 96, 160, 2.4)
		assert.Equal(t, 96, img.Bounds().Dx(), string(v))
		assert.Equal(t, 160, img.Bounds().Dy(), string(v))
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := Generate(Plasma, 1, 128, 128, 3.0)
	b := Generate(Plasma, 2, 128, 128, 3.0)
	assert.False(t, bytes.Equal(a.Pix, b.Pix), "different seeds should not collide")
}

func TestGenerateUnknownVariantFallsBack(t *testing.T) {
	a := Generate(Variant("bogus"), 99, 64, 64, 0)
	b := Generate(Noise, 99, 64, 64, 0)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestGenerateTonalRange(t *testing.T) {
	// every generator must produce more than one tone at art scale
	for _, v := range Variants {
		img := Generate(v, 4242, 256, 256, 3.0)
		lo, hi := img.Pix[0], img.Pix[0]
		for _, p := range img.Pix {
			if p < lo {
				lo = p
			}
			if p > hi {
				hi = p
			}
		}
		assert.Greater(t, int(hi)-int(lo), 30, string(v))
	}
}
