package kdfvec

import (
	"crypto"
	"fmt"

	"go.uber.org/multierr"

	"github.com/kdfvec/kdfvec/internal/digest"
	"github.com/kdfvec/kdfvec/internal/wipe"
)

// KeyExpansionRequest describes one SSH key-expansion vector.
type KeyExpansionRequest struct {
	// K is the shared secret exactly as the vector file supplies it: the SSH
	// mpint wire encoding, length prefix included. It is hashed verbatim;
	// callers holding raw big-endian bytes can apply MpintEncode first.
	K []byte

	// H is the exchange hash. Its length selects the digest: 20, 32, 48, or
	// 64 bytes for SHA-1, SHA-256, SHA-384, or SHA-512.
	H []byte

	// SessionID is the identifier established at the first key exchange. It
	// equals H on the first exchange and stays fixed across rekeys.
	SessionID []byte

	// Requested output sizes in bytes. IVLen applies to both IVs, EncKeyLen
	// to both encryption keys, MACKeyLen to both integrity keys.
	IVLen, EncKeyLen, MACKeyLen int
}

// Validate reports every invalid field at once.
func (req *KeyExpansionRequest) Validate() error {
	var err error

	if len(req.K) == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: empty shared secret", ErrInvalidRequest))
	}

	if len(req.H) == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: empty exchange hash", ErrInvalidRequest))
	}

	if len(req.SessionID) == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: empty session id", ErrInvalidRequest))
	}

	if req.IVLen < 0 || req.EncKeyLen < 0 || req.MACKeyLen < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: negative output length", ErrInvalidRequest))
	}

	return err
}

// DerivedKeySet holds the six outputs of one key expansion, in the order the
// vector files list them. The caller owns all six slices.
type DerivedKeySet struct {
	ClientIV, ServerIV         []byte
	ClientEncKey, ServerEncKey []byte
	ClientMACKey, ServerMACKey []byte
}

// Wipe zeroes all six outputs.
func (ks *DerivedKeySet) Wipe() {
	wipe.Bytes(ks.ClientIV)
	wipe.Bytes(ks.ServerIV)
	wipe.Bytes(ks.ClientEncKey)
	wipe.Bytes(ks.ServerEncKey)
	wipe.Bytes(ks.ClientMACKey)
	wipe.Bytes(ks.ServerMACKey)
}

// Slot letters from RFC 4253, Section 7.2, one per output.
const (
	tagClientIV     = 'A'
	tagServerIV     = 'B'
	tagClientEncKey = 'C'
	tagServerEncKey = 'D'
	tagClientMACKey = 'E'
	tagServerMACKey = 'F'
)

// ExpandKeys derives the six directional session quantities from a shared
// secret, an exchange hash, and a session identifier. The digest is selected
// by the exchange hash length. Identical requests always produce identical
// key sets.
func ExpandKeys(req *KeyExpansionRequest) (*DerivedKeySet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	h, err := digest.ForExchangeHash(len(req.H))
	if err != nil {
		return nil, err
	}

	// One scratch buffer per slot, sized for the largest request; the cipher
	// block size is implied by the IV length. Outputs are still cut to the
	// exact requested length.
	blockSize := 16
	if req.IVLen == 8 {
		blockSize = 8
	}

	hint := req.EncKeyLen
	if blockSize > hint {
		hint = blockSize
	}

	if req.MACKeyLen > hint {
		hint = req.MACKeyLen
	}

	return &DerivedKeySet{
		ClientIV:     expandSlot(h, req, tagClientIV, req.IVLen, hint),
		ServerIV:     expandSlot(h, req, tagServerIV, req.IVLen, hint),
		ClientEncKey: expandSlot(h, req, tagClientEncKey, req.EncKeyLen, hint),
		ServerEncKey: expandSlot(h, req, tagServerEncKey, req.EncKeyLen, hint),
		ClientMACKey: expandSlot(h, req, tagClientMACKey, req.MACKeyLen, hint),
		ServerMACKey: expandSlot(h, req, tagServerMACKey, req.MACKeyLen, hint),
	}, nil
}

func expandSlot(h crypto.Hash, req *KeyExpansionRequest, tag byte, n, hint int) []byte {
	if n == 0 {
		return []byte{}
	}

	if hint < n {
		hint = n
	}

	// K1 = HASH(K || H || X || session_id).
	d := h.New()
	_, _ = d.Write(req.K)
	_, _ = d.Write(req.H)
	_, _ = d.Write([]byte{tag})
	_, _ = d.Write(req.SessionID)

	out := d.Sum(make([]byte, 0, hint+h.Size()))

	// Kn+1 = HASH(K || H || K1 || ... || Kn) until enough.
	for len(out) < n {
		d.Reset()
		_, _ = d.Write(req.K)
		_, _ = d.Write(req.H)
		_, _ = d.Write(out)

		out = d.Sum(out)
	}

	key := make([]byte, n)
	copy(key, out)
	wipe.Bytes(out)

	return key
}
