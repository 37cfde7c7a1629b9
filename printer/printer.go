// Package printer speaks ESC/POS to a receipt printer over an exchangeable
// transport and streams prepared raster images in paced bands.
package printer

import "io"

// Printer wraps sending ESC/POS commands to a Transport.
type Printer struct {
	t Transport
}

// NewPrinter creates a printer on the given transport.
func NewPrinter(t Transport) *Printer {
	return &Printer{t: t}
}

// Init resets the printer to its power-on state (ESC @).
func (p *Printer) Init() error {
	return p.writeAll([]byte{0x1b, 0x40})
}

// DefaultLineSpacing selects the default line spacing (ESC 2).
func (p *Printer) DefaultLineSpacing() error {
	return p.writeAll([]byte{0x1b, 0x32})
}

// InvertOff disables white/black reverse printing (GS B 0).
func (p *Printer) InvertOff() error {
	return p.writeAll([]byte{0x1d, 0x42, 0x00})
}

// Linefeed advances the paper one line.
func (p *Printer) Linefeed() error {
	return p.writeAll([]byte{0x0a})
}

// FullCut feeds and cuts the paper (GS V 0).
func (p *Printer) FullCut() error {
	return p.writeAll([]byte{0x1d, 0x56, 0x00})
}

// Write sends raw bytes, retrying short writes until the buffer is flushed.
func (p *Printer) Write(buf []byte) (int, error) {
	if err := p.writeAll(buf); err != nil {
		return 0, err
	}
	return len(buf), nil
}

// Close closes the underlying transport.
func (p *Printer) Close() error {
	return p.t.Close()
}

func (p *Printer) writeAll(b []byte) error {
	sent := 0
	for sent < len(b) {
		n, err := p.t.Write(b[sent:])
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		sent += n
	}
	return nil
}
