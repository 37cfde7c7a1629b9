package printer

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBitmap(seed int64, w, h int) *image.Gray {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		if rng.Float64() < 0.5 {
			img.Pix[i] = 255
		}
	}
	return img
}

func TestPackBandRoundTrip(t *testing.T) {
	// widths deliberately include non-multiples of 8
	for _, dim := range [][2]int{{8, 4}, {512, 96}, {7, 3}, {13, 5}, {511, 10}, {1, 1}} {
		w, h := dim[0], dim[1]
		src := randomBitmap(int64(w*h), w, h)

		data, bytesWidth := PackBand(src, 0, h)
		assert.Equal(t, (w+7)/8, bytesWidth)
		assert.Len(t, data, bytesWidth*h)

		back := UnpackBand(data, w, h)
		require.Equal(t, src.Pix, back.Pix, "w=%d h=%d", w, h)
	}
}

func TestPackBandPartialByteZeroPadded(t *testing.T) {
	// all-black 9-wide image: second byte must only carry the top bit
	img := image.NewGray(image.Rect(0, 0, 9, 1))
	data, bytesWidth := PackBand(img, 0, 1)
	assert.Equal(t, 2, bytesWidth)
	assert.Equal(t, byte(0xff), data[0])
	assert.Equal(t, byte(0x80), data[1])
}

func TestPackBandOffset(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 4))
	// only row 2 black, everything else white
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	for x := 0; x < 8; x++ {
		img.Pix[2*img.Stride+x] = 0
	}
	data, _ := PackBand(img, 2, 2)
	assert.Equal(t, []byte{0xff, 0x00}, data)
}

func TestBandHeader(t *testing.T) {
	assert.Equal(t, []byte{0x1d, 0x76, 0x30, 0x00, 0x40, 0x00, 0x60, 0x00}, BandHeader(64, 96))
	// 16-bit little-endian fields
	assert.Equal(t, []byte{0x1d, 0x76, 0x30, 0x00, 0x00, 0x02, 0x2c, 0x01}, BandHeader(512, 300))
}

func TestBandDarkness(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 2))
	assert.InDelta(t, 1.0, BandDarkness(img, 0, 2), 0.001, "all black")

	for i := range img.Pix {
		img.Pix[i] = 255
	}
	assert.InDelta(t, 0.0, BandDarkness(img, 0, 2), 0.001, "all white")

	for x := 0; x < 8; x++ {
		img.Pix[x] = 0
	}
	assert.InDelta(t, 0.5, BandDarkness(img, 0, 2), 0.001, "half black")
}
