package printer

import (
	"fmt"
	"io"
	"net"
	"time"
)

// Transport is the byte link to the physical printer.
type Transport interface {
	Write([]byte) (int, error)
	Read([]byte) (int, error)
	Close() error
}

// -------------------- RAW --------------------

// RawTransport passes bytes straight through to the underlying connection.
type RawTransport struct {
	conn io.ReadWriteCloser
}

func (r *RawTransport) Write(b []byte) (int, error) { return r.conn.Write(b) }
func (r *RawTransport) Read(b []byte) (int, error)  { return r.conn.Read(b) }
func (r *RawTransport) Close() error                { return r.conn.Close() }

// NewRawTransport wraps any read-writer as a Transport. Writers that cannot
// close get a no-op closer.
func NewRawTransport(rw io.ReadWriter) Transport {
	if rc, ok := rw.(io.ReadWriteCloser); ok {
		return &RawTransport{conn: rc}
	}
	return &RawTransport{conn: nopCloser{rw}}
}

// -------------------- TCP --------------------

// tcpTransport holds a raw-9100 socket. Thermal printers can stall for
// seconds while the head recovers, so the deadline is refreshed before each
// write rather than set once for the whole session.
type tcpTransport struct {
	conn    net.Conn
	timeout time.Duration
}

// NewTCPTransport dials the printer's raw print port. The timeout bounds the
// dial and every subsequent write; it is the only cancellation mechanism a
// job has.
func NewTCPTransport(host string, port int, timeout time.Duration) (Transport, error) {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("dial printer %s: %w", addr, err)
	}
	return &tcpTransport{conn: conn, timeout: timeout}, nil
}

func (t *tcpTransport) Write(b []byte) (int, error) {
	if err := t.conn.SetWriteDeadline(time.Now().Add(t.timeout)); err != nil {
		return 0, err
	}
	return t.conn.Write(b)
}

func (t *tcpTransport) Read(b []byte) (int, error) {
	if err := t.conn.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
		return 0, err
	}
	return t.conn.Read(b)
}

func (t *tcpTransport) Close() error { return t.conn.Close() }

// -------------------- helpers --------------------

type nopCloser struct {
	io.ReadWriter
}

func (n nopCloser) Close() error { return nil }
