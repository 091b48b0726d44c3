// Package kdfvec implements the key derivation functions exercised by
// CAVS/ACVP KDF validation vectors: the SSH transport key expansion of RFC
// 4253, Section 7.2, and the HKDF extract-and-expand construction of RFC
// 5869.
//
// Every derivation is a pure function of its request. The package produces
// ephemeral key material for comparison against test vectors and retains
// nothing; callers own the outputs and can scrub them with the Wipe methods
// once compared.
package kdfvec

import (
	"errors"

	"github.com/kdfvec/kdfvec/internal/digest"
)

var (
	// ErrUnsupportedDigest is returned when the exchange hash length matches
	// no supported digest, or an HKDF request names an unavailable one.
	ErrUnsupportedDigest = digest.ErrUnsupportedDigest

	// ErrInvalidRequest is returned when a request fails validation. All
	// failing fields are reported at once.
	ErrInvalidRequest = errors.New("kdfvec: invalid request")

	// ErrLengthTooLarge is returned when an HKDF request asks for more output
	// than 255 blocks of the chosen digest can produce.
	ErrLengthTooLarge = errors.New("kdfvec: derived keying material too long")
)
