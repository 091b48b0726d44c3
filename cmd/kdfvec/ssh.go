package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kdfvec/kdfvec"
	"github.com/kdfvec/kdfvec/internal/hexcode"
)

type sshCmd struct {
	SharedSecret string `short:"K" required:"" help:"Hex shared secret in SSH mpint form, or - for stdin."`
	ExchangeHash string `short:"H" required:"" help:"Hex exchange hash; its length selects the digest. - for stdin."`
	SessionID    string `short:"s" required:"" help:"Hex session identifier, or - for stdin."`
	IVLen        int    `short:"i" required:"" help:"IV length in bytes."`
	EncKeyLen    int    `short:"e" required:"" help:"Encryption key length in bytes."`
	MACKeyLen    int    `short:"m" required:"" help:"MAC key length in bytes."`

	RawSecret bool `help:"Treat the shared secret as raw big-endian bytes and apply the mpint transform."`
	Upper     bool `help:"Render output in uppercase hex."`
}

func (cmd *sshCmd) Run(g *globals) error {
	log := g.logger()
	defer func() { _ = log.Sync() }()

	k, err := g.decodeHex("shared secret", cmd.SharedSecret)
	if err != nil {
		return err
	}

	h, err := g.decodeHex("exchange hash", cmd.ExchangeHash)
	if err != nil {
		return err
	}

	sid, err := g.decodeHex("session id", cmd.SessionID)
	if err != nil {
		return err
	}

	if cmd.RawSecret {
		k = kdfvec.MpintEncode(k)
	}

	log.Debug("expanding session keys",
		zap.Int("exchange_hash_bytes", len(h)),
		zap.Int("iv_len", cmd.IVLen),
		zap.Int("enc_key_len", cmd.EncKeyLen),
		zap.Int("mac_key_len", cmd.MACKeyLen))

	ks, err := kdfvec.ExpandKeys(&kdfvec.KeyExpansionRequest{
		K:         k,
		H:         h,
		SessionID: sid,
		IVLen:     cmd.IVLen,
		EncKeyLen: cmd.EncKeyLen,
		MACKeyLen: cmd.MACKeyLen,
	})
	if err != nil {
		return err
	}

	defer ks.Wipe()

	// Fixed order, matching the vector files.
	for _, slot := range []struct {
		label string
		key   []byte
	}{
		{"client iv", ks.ClientIV},
		{"server iv", ks.ServerIV},
		{"client enc key", ks.ClientEncKey},
		{"server enc key", ks.ServerEncKey},
		{"client mac key", ks.ClientMACKey},
		{"server mac key", ks.ServerMACKey},
	} {
		fmt.Printf("%s: %s\n", slot.label, hexcode.Encode(slot.key, cmd.Upper))
	}

	return nil
}
