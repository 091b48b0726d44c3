// Package wipe zeroes buffers holding key material.
package wipe

// Bytes overwrites b with zeros. Best-effort: the garbage collector may have
// already copied the backing array, but scratch buffers inside a derivation
// never escape, so wiping them is meaningful there.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
