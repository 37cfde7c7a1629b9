package compose

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/kioskworks/artprint/imgutil"
)

const (
	headerFontSize  = 32
	headerLeft      = 12
	headerTop       = 12
	headerLineGap   = 6
	headerBottomGap = 22
)

var loadFace = sync.OnceValues(func() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse header font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    headerFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create header face: %w", err)
	}
	return face, nil
})

// WithHeader draws up to three text lines above the art on a fresh canvas.
// Empty lines are skipped. The canvas height is the header block plus the art,
// floored at minHeight; the art is pasted directly below the header block.
func WithHeader(art *image.Gray, lines []string, width, minHeight int) (*image.Gray, error) {
	face, err := loadFace()
	if err != nil {
		return nil, err
	}

	var drawn []string
	for _, ln := range lines {
		if ln != "" {
			drawn = append(drawn, ln)
		}
	}

	// Measure each line with the real glyph bounds, like the layout the
	// printer ends up showing; ascent offsets convert to top-anchored drawing.
	type measured struct {
		text   string
		height int
		ascent int
	}
	ms := make([]measured, 0, len(drawn))
	headerH := 0
	for _, ln := range drawn {
		b, _ := font.BoundString(face, ln)
		lh := (b.Max.Y - b.Min.Y).Ceil()
		ms = append(ms, measured{text: ln, height: lh, ascent: (-b.Min.Y).Ceil()})
		headerH += lh
	}
	if len(ms) > 1 {
		headerH += headerLineGap * (len(ms) - 1)
	}
	headerTotal := headerTop + headerH + headerBottomGap

	artH := art.Bounds().Dy()
	canvasH := artH + headerTotal
	if canvasH < minHeight {
		canvasH = minHeight
	}

	dc := gg.NewContext(width, canvasH)
	dc.SetRGB255(255, 255, 255)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetRGB255(0, 0, 0)

	y := headerTop
	for i, m := range ms {
		dc.DrawString(m.text, headerLeft, float64(y+m.ascent))
		y += m.height
		if i < len(ms)-1 {
			y += headerLineGap
		}
	}

	canvas := imgutil.ToGray(dc.Image())

	// paste art under the header block
	artW := art.Bounds().Dx()
	for ay := 0; ay < artH; ay++ {
		cy := headerTotal + ay
		if cy >= canvasH {
			break
		}
		copy(canvas.Pix[cy*canvas.Stride:cy*canvas.Stride+minInt(artW, width)],
			art.Pix[ay*art.Stride:ay*art.Stride+minInt(artW, width)])
	}
	return canvas, nil
}

// HeaderOffset reports the vertical offset at which the art would be pasted
// for the given lines. Exposed so callers can reason about what part of the
// canvas is header versus art.
func HeaderOffset(lines []string) (int, error) {
	face, err := loadFace()
	if err != nil {
		return 0, err
	}
	headerH := 0
	n := 0
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		b, _ := font.BoundString(face, ln)
		headerH += (b.Max.Y - b.Min.Y).Ceil()
		n++
	}
	if n > 1 {
		headerH += headerLineGap * (n - 1)
	}
	return headerTop + headerH + headerBottomGap, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
