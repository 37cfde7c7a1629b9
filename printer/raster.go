package printer

import (
	"image"

	"github.com/kioskworks/artprint/util"
)

// darkThreshold splits the 1-bit image's gray values into printed and blank
// dots. Prepared images only carry 0 and 255, but anything under the midpoint
// counts as ink.
const darkThreshold = 128

// PackBand packs rows [y0, y0+rows) into the printer's raster layout:
// row-major, MSB-first, one bit per dot, trailing partial bytes zero-padded.
// It returns the packed payload and the byte width of one row.
func PackBand(img *image.Gray, y0, rows int) ([]byte, int) {
	w := img.Bounds().Dx()
	bytesWidth := (w + 7) / 8

	data := make([]byte, bytesWidth*rows)
	for y := 0; y < rows; y++ {
		rowOff := y * bytesWidth
		src := img.Pix[(y0+y)*img.Stride : (y0+y)*img.Stride+w]
		for x, p := range src {
			if p < darkThreshold {
				data[rowOff+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return data, bytesWidth
}

// BandHeader builds the GS v 0 raster-transfer header for one band:
// 1D 76 30 00, then byte-width and row count as little-endian 16-bit fields.
func BandHeader(bytesWidth, rows int) []byte {
	header := []byte{0x1d, 0x76, 0x30, 0x00}
	header = append(header, util.IntLowHigh(bytesWidth, 2)...)
	header = append(header, util.IntLowHigh(rows, 2)...)
	return header
}

// BandDarkness measures the fraction of dark pixels in rows [y0, y0+rows),
// used to pace transmission: darker bands heat the head more and need longer
// recovery.
func BandDarkness(img *image.Gray, y0, rows int) float64 {
	w := img.Bounds().Dx()
	if w == 0 || rows == 0 {
		return 0
	}
	var sum uint64
	for y := y0; y < y0+rows; y++ {
		for _, p := range img.Pix[y*img.Stride : y*img.Stride+w] {
			sum += uint64(p)
		}
	}
	mean := float64(sum) / float64(w*rows)
	return 1.0 - mean/255.0
}

// UnpackBand reverses PackBand into a w-wide gray image, 0 for printed dots
// and 255 for blanks. Used to verify the wire payload round-trips.
func UnpackBand(data []byte, w, rows int) *image.Gray {
	bytesWidth := (w + 7) / 8
	img := image.NewGray(image.Rect(0, 0, w, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			b := data[y*bytesWidth+x/8]
			if b&(0x80>>uint(x%8)) != 0 {
				img.Pix[y*img.Stride+x] = 0
			} else {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img
}
