package common

// WipeByteArray zeroes the buffer in place. Used for password buffers so
// credentials do not linger in memory after a request is built.
// Safe to call with nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
