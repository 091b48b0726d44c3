// Package hexcode converts between the hex strings found in CAVS/ACVP vector
// files and raw bytes.
//
// Two decoders are provided. Decode rejects anything that is not well-formed
// hex; it is the default. DecodeLenient reproduces the behavior of the legacy
// C harness, which mapped every non-hex byte to the nibble value zero and
// accepted odd-length input. Some historical vector files only parse under
// the lenient rules, so both survive.
package hexcode

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when the input contains no hex digits at all.
	ErrEmpty = errors.New("hexcode: empty input")

	// ErrInvalid is returned when strict decoding encounters a byte which is
	// not a hex digit, or an odd number of digits.
	ErrInvalid = errors.New("hexcode: invalid hex input")
)

// Decode converts a well-formed hex string to bytes. It fails on empty input,
// odd-length input, and any byte outside [0-9a-fA-F].
func Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}

	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalid, len(s))
	}

	out := make([]byte, len(s)/2)

	for i := 0; i < len(s); i += 2 {
		hi, ok := nibble(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: byte %q at offset %d", ErrInvalid, s[i], i)
		}

		lo, ok := nibble(s[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: byte %q at offset %d", ErrInvalid, s[i+1], i+1)
		}

		out[i/2] = hi<<4 | lo
	}

	return out, nil
}

// DecodeLenient converts a hex string to bytes the way the legacy CAVS tool
// did: any byte which is not a hex digit contributes the nibble zero, and an
// odd-length string contributes its final digit as the high nibble of a
// trailing byte. The output is always ceil(len(s)/2) bytes. Only empty input
// fails.
func DecodeLenient(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}

	out := make([]byte, (len(s)+1)/2)

	for i := 0; i < len(s); i++ {
		n, _ := nibble(s[i])
		if i%2 == 0 {
			out[i/2] = n << 4
		} else {
			out[i/2] |= n
		}
	}

	return out, nil
}

// Encode renders bytes as hex, two digits per byte, in the requested case.
// The result is sized to the input; there is no capacity contract to violate.
func Encode(b []byte, upper bool) string {
	digits := lowerDigits
	if upper {
		digits = upperDigits
	}

	out := make([]byte, len(b)*2)

	for i, v := range b {
		out[i*2] = digits[v>>4]
		out[i*2+1] = digits[v&0x0f]
	}

	return string(out)
}

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}
