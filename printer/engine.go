package printer

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"
)

// Engine streams a prepared 1-bit image as GS v 0 bands with adaptive pacing
// between them. It performs no retries; a failed write surfaces to the caller,
// who owns retry policy.
type Engine struct {
	// BandRows is the row count per raster band.
	BandRows int

	// BaseDelay is slept after every band; DarknessDelay is added scaled by
	// the band's dark-pixel fraction.
	BaseDelay     time.Duration
	DarknessDelay time.Duration

	log *zap.Logger

	// sleep is swapped out in tests
	sleep func(time.Duration)
}

// NewEngine returns an engine with the given pacing. A nil logger disables
// logging.
func NewEngine(bandRows int, baseDelay, darknessDelay time.Duration, log *zap.Logger) *Engine {
	if bandRows <= 0 {
		bandRows = 96
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		BandRows:      bandRows,
		BaseDelay:     baseDelay,
		DarknessDelay: darknessDelay,
		log:           log,
		sleep:         time.Sleep,
	}
}

// Send runs one print session: init sequence, all raster bands, feed and cut.
// The image must already be prepared (1-bit values, byte-aligned width).
func (e *Engine) Send(p *Printer, img *image.Gray) error {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w%8 != 0 {
		return fmt.Errorf("image width %d is not byte aligned", w)
	}

	if err := p.Init(); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if err := p.DefaultLineSpacing(); err != nil {
		return fmt.Errorf("line spacing: %w", err)
	}
	if err := p.InvertOff(); err != nil {
		return fmt.Errorf("invert off: %w", err)
	}

	for y := 0; y < h; y += e.BandRows {
		rows := e.BandRows
		if rows > h-y {
			rows = h - y
		}
		data, bytesWidth := PackBand(img, y, rows)

		if _, err := p.Write(append(BandHeader(bytesWidth, rows), data...)); err != nil {
			return fmt.Errorf("band at row %d: %w", y, err)
		}

		darkness := BandDarkness(img, y, rows)
		e.log.Debug("band sent",
			zap.Int("row", y),
			zap.Int("rows", rows),
			zap.Float64("darkness", darkness),
		)
		e.sleep(e.BaseDelay + time.Duration(darkness*float64(e.DarknessDelay)))
	}

	if err := p.writeAll([]byte{0x0a, 0x0a, 0x0a}); err != nil {
		return fmt.Errorf("trailing feed: %w", err)
	}
	if err := p.FullCut(); err != nil {
		return fmt.Errorf("cut: %w", err)
	}
	return nil
}
