// Package digest selects the hash algorithm a test vector implies.
//
// CAVS SSH vectors never name their digest; it is inferred from the length of
// the exchange hash. ACVP HKDF vectors name theirs, so a by-name lookup is
// provided for the driver.
package digest

import (
	"crypto"
	"errors"

	// Force registration of the SHA1 and SHA2 families so callers can use the
	// returned crypto.Hash directly.
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// ErrUnsupportedDigest is returned when no supported digest matches.
var ErrUnsupportedDigest = errors.New("digest: unsupported digest")

// ForExchangeHash returns the digest whose output size equals n, the length
// of an SSH exchange hash in bytes.
func ForExchangeHash(n int) (crypto.Hash, error) {
	switch n {
	case 20:
		return crypto.SHA1, nil
	case 32:
		return crypto.SHA256, nil
	case 48:
		return crypto.SHA384, nil
	case 64:
		return crypto.SHA512, nil
	}

	return 0, ErrUnsupportedDigest
}

// ByName returns the digest for a lowercase algorithm name as it appears in
// vector files: sha1, sha256, sha384, or sha512.
func ByName(name string) (crypto.Hash, error) {
	switch name {
	case "sha1", "sha-1":
		return crypto.SHA1, nil
	case "sha256", "sha2-256":
		return crypto.SHA256, nil
	case "sha384", "sha2-384":
		return crypto.SHA384, nil
	case "sha512", "sha2-512":
		return crypto.SHA512, nil
	}

	return 0, ErrUnsupportedDigest
}

// Name returns the vector-file name of a supported digest.
func Name(h crypto.Hash) string {
	switch h {
	case crypto.SHA1:
		return "sha1"
	case crypto.SHA256:
		return "sha256"
	case crypto.SHA384:
		return "sha384"
	case crypto.SHA512:
		return "sha512"
	}

	return "unknown"
}
