package kdfvec

import (
	"crypto"
	"crypto/hmac"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"golang.org/x/crypto/hkdf"

	"github.com/kdfvec/kdfvec/internal/digest"
	"github.com/kdfvec/kdfvec/internal/wipe"
)

// HKDFRequest describes one HKDF vector, mirroring the fields ACVP supplies.
type HKDFRequest struct {
	// Hash keys the HMAC in both the extract and expand steps.
	Hash crypto.Hash

	// Z is the input keying material (the shared secret).
	Z []byte

	// Salt for the extract step. Empty means a string of zeros the size of
	// one digest output, per RFC 5869.
	Salt []byte

	// Info is the context string for the expand step.
	Info []byte

	// DKMLen is the requested output length in bits.
	DKMLen int

	// DKM, when non-empty, switches the engine to verify mode: the output is
	// recomputed and compared against it rather than returned. A nil or
	// empty buffer means generate mode.
	DKM []byte
}

// Validate reports every invalid field at once.
func (req *HKDFRequest) Validate() error {
	var err error

	if req.Hash == 0 || !req.Hash.Available() {
		err = multierr.Append(err, fmt.Errorf("%w: hash %v", ErrUnsupportedDigest, req.Hash))
	}

	if len(req.Z) == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: empty input keying material", ErrInvalidRequest))
	}

	if req.DKMLen <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: output length %d bits", ErrInvalidRequest, req.DKMLen))
	}

	return err
}

// HKDFResult is the outcome of one request: the derived keying material in
// generate mode, or the comparison verdict in verify mode.
type HKDFResult struct {
	DKM   []byte
	Valid bool
}

// Wipe zeroes the derived keying material, if any.
func (r *HKDFResult) Wipe() {
	wipe.Bytes(r.DKM)
}

// Expander is the pluggable derivation backend: it produces n bytes of output
// keying material from the extract-and-expand inputs. Implementations must be
// deterministic and stateless.
type Expander interface {
	Expand(h crypto.Hash, z, salt, info []byte, n int) ([]byte, error)
}

// HMACExpander implements RFC 5869 directly on crypto/hmac.
type HMACExpander struct{}

func (HMACExpander) Expand(h crypto.Hash, z, salt, info []byte, n int) ([]byte, error) {
	if n > 255*h.Size() {
		return nil, fmt.Errorf("%w: %d bytes from %s", ErrLengthTooLarge, n, digest.Name(h))
	}

	if len(salt) == 0 {
		salt = make([]byte, h.Size())
	}

	// Extract: PRK = HMAC(salt, Z).
	ext := hmac.New(h.New, salt)
	_, _ = ext.Write(z)
	prk := ext.Sum(nil)

	defer wipe.Bytes(prk)

	// Expand: T(i) = HMAC(PRK, T(i-1) || info || i), T(0) empty.
	out := make([]byte, 0, n+h.Size())

	var block []byte

	for i := byte(1); len(out) < n; i++ {
		mac := hmac.New(h.New, prk)
		_, _ = mac.Write(block)
		_, _ = mac.Write(info)
		_, _ = mac.Write([]byte{i})

		block = mac.Sum(nil)
		out = append(out, block...)
	}

	dkm := make([]byte, n)
	copy(dkm, out)
	wipe.Bytes(out)

	return dkm, nil
}

// StreamExpander implements the backend on golang.org/x/crypto/hkdf.
type StreamExpander struct{}

func (StreamExpander) Expand(h crypto.Hash, z, salt, info []byte, n int) ([]byte, error) {
	if n > 255*h.Size() {
		return nil, fmt.Errorf("%w: %d bytes from %s", ErrLengthTooLarge, n, digest.Name(h))
	}

	out := make([]byte, n)

	if _, err := io.ReadFull(hkdf.New(h.New, z, salt, info), out); err != nil {
		return nil, fmt.Errorf("kdfvec: expand %d bytes from %s: %w", n, digest.Name(h), err)
	}

	return out, nil
}

// HKDF derives or verifies output keying material with an injected backend.
type HKDF struct {
	backend Expander
}

// NewHKDF returns an engine using the given backend. A nil backend selects
// HMACExpander.
func NewHKDF(backend Expander) *HKDF {
	if backend == nil {
		backend = HMACExpander{}
	}

	return &HKDF{backend: backend}
}

// Derive processes one request. In generate mode the result carries the
// derived keying material; in verify mode it carries only the verdict of a
// constant-time comparison. A mismatch is a result, never an error.
func (k *HKDF) Derive(req *HKDFRequest) (*HKDFResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	n := (req.DKMLen + 7) / 8
	if n > 255*req.Hash.Size() {
		return nil, fmt.Errorf("%w: %d bits exceeds 255 blocks of %s",
			ErrLengthTooLarge, req.DKMLen, digest.Name(req.Hash))
	}

	dkm, err := k.backend.Expand(req.Hash, req.Z, req.Salt, req.Info, n)
	if err != nil {
		return nil, err
	}

	if len(req.DKM) > 0 {
		valid := hmac.Equal(dkm, req.DKM)
		wipe.Bytes(dkm)

		return &HKDFResult{Valid: valid}, nil
	}

	return &HKDFResult{DKM: dkm}, nil
}

var (
	_ Expander = HMACExpander{}
	_ Expander = StreamExpander{}
)
