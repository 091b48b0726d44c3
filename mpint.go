package kdfvec

import "encoding/binary"

// MpintEncode returns the SSH mpint wire encoding of a non-negative integer
// given as big-endian bytes: leading zeros stripped, a single zero byte
// prepended when the high bit would otherwise read as a sign, and a four-byte
// big-endian length prefix. The zero value encodes as just the prefix.
func MpintEncode(raw []byte) []byte {
	i := 0
	for i < len(raw) && raw[i] == 0 {
		i++
	}

	mag := raw[i:]

	pad := 0
	if len(mag) > 0 && mag[0]&0x80 != 0 {
		pad = 1
	}

	out := make([]byte, 4+pad+len(mag))
	binary.BigEndian.PutUint32(out, uint32(pad+len(mag)))
	copy(out[4+pad:], mag)

	return out
}
