package util

// IntLowHigh encodes n into b little-endian bytes, the layout ESC/POS uses
// for xL/xH style length fields.
func IntLowHigh(n int, b int) []byte {
	out := make([]byte, b)
	for i := 0; i < b; i++ {
		out[i] = byte(n % 256)
		n = n / 256
	}
	return out
}
