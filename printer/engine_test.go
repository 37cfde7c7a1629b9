package printer

import (
	"bytes"
	"image"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *Engine {
	e := NewEngine(96, 0, 0, nil)
	e.sleep = func(time.Duration) {}
	return e
}

// checkerboard returns a byte-aligned 1-bit image with alternating dots.
func checkerboard(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img
}

func TestSendByteStream(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(NewRawTransport(&buf))

	img := checkerboard(16, 200) // 2 bytes per row, 3 bands at 96 rows
	require.NoError(t, testEngine().Send(p, img))

	out := buf.Bytes()

	// session prefix: init, default line spacing, inversion off
	prefix := []byte{0x1b, 0x40, 0x1b, 0x32, 0x1d, 0x42, 0x00}
	require.True(t, bytes.HasPrefix(out, prefix))
	out = out[len(prefix):]

	// three bands: 96 + 96 + 8 rows
	for _, rows := range []int{96, 96, 8} {
		header := BandHeader(2, rows)
		require.True(t, bytes.HasPrefix(out, header), "band of %d rows", rows)
		out = out[len(header)+2*rows:]
	}

	// session suffix: three feeds and a full cut
	assert.Equal(t, []byte{0x0a, 0x0a, 0x0a, 0x1d, 0x56, 0x00}, out)
}

func TestSendPayloadRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(NewRawTransport(&buf))

	img := randomBitmap(77, 48, 130)
	require.NoError(t, testEngine().Send(p, img))

	out := buf.Bytes()[7:] // skip session prefix
	var got []byte
	for _, rows := range []int{96, 34} {
		header := BandHeader(6, rows)
		require.Equal(t, header, out[:len(header)])
		out = out[len(header):]
		got = append(got, out[:6*rows]...)
		out = out[6*rows:]
	}

	back := UnpackBand(got, 48, 130)
	assert.Equal(t, img.Pix, back.Pix, "wire payload must reconstruct the bitmap")
}

func TestSendRejectsUnalignedWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(NewRawTransport(&buf))
	err := testEngine().Send(p, image.NewGray(image.Rect(0, 0, 12, 8)))
	assert.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing may reach the printer")
}

func TestSendOverTCP(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			received <- nil
			return
		}
		data, _ := io.ReadAll(conn)
		conn.Close()
		received <- data
	}()

	addr := ln.Addr().(*net.TCPAddr)
	tr, err := NewTCPTransport("127.0.0.1", addr.Port, 5*time.Second)
	require.NoError(t, err)

	p := NewPrinter(tr)
	img := checkerboard(8, 10)
	require.NoError(t, testEngine().Send(p, img))
	require.NoError(t, p.Close())

	data := <-received
	require.NotNil(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte{0x1b, 0x40}))
	assert.True(t, bytes.HasSuffix(data, []byte{0x1d, 0x56, 0x00}))
}

func TestTCPConnectionRefused(t *testing.T) {
	// grab a port that nothing listens on
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	start := time.Now()
	_, err = NewTCPTransport("127.0.0.1", port, 2*time.Second)
	assert.Error(t, err, "refused connection must surface, not hang")
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestSendPropagatesWriteError(t *testing.T) {
	p := NewPrinter(&failingTransport{failAfter: 2})
	err := testEngine().Send(p, checkerboard(8, 10))
	assert.Error(t, err)
}

type failingTransport struct {
	writes    int
	failAfter int
}

func (f *failingTransport) Write(b []byte) (int, error) {
	f.writes++
	if f.writes > f.failAfter {
		return 0, io.ErrClosedPipe
	}
	return len(b), nil
}

func (f *failingTransport) Read([]byte) (int, error) { return 0, io.EOF }
func (f *failingTransport) Close() error             { return nil }
