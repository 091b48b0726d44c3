package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kdfvec/kdfvec"
	"github.com/kdfvec/kdfvec/internal/digest"
	"github.com/kdfvec/kdfvec/internal/hexcode"
)

type hkdfCmd struct {
	Hash     string `short:"a" default:"sha256" help:"Digest: sha1, sha256, sha384, or sha512."`
	IKM      string `short:"z" required:"" help:"Hex input keying material, or - for stdin."`
	Salt     string `help:"Hex salt for the extract step."`
	Info     string `help:"Hex context info for the expand step."`
	Bits     int    `short:"l" required:"" help:"Output length in bits."`
	Expected string `help:"Hex expected keying material; enables verify mode."`
	Backend  string `default:"hmac" enum:"hmac,stream" help:"Expansion backend."`
	Upper    bool   `help:"Render output in uppercase hex."`
}

func (cmd *hkdfCmd) Run(g *globals) error {
	log := g.logger()
	defer func() { _ = log.Sync() }()

	hash, err := digest.ByName(cmd.Hash)
	if err != nil {
		return fmt.Errorf("%w: %q", err, cmd.Hash)
	}

	z, err := g.decodeHex("input keying material", cmd.IKM)
	if err != nil {
		return err
	}

	var salt, info, expected []byte

	if cmd.Salt != "" {
		if salt, err = g.decodeHex("salt", cmd.Salt); err != nil {
			return err
		}
	}

	if cmd.Info != "" {
		if info, err = g.decodeHex("info", cmd.Info); err != nil {
			return err
		}
	}

	if cmd.Expected != "" {
		if expected, err = g.decodeHex("expected keying material", cmd.Expected); err != nil {
			return err
		}
	}

	var backend kdfvec.Expander = kdfvec.HMACExpander{}
	if cmd.Backend == "stream" {
		backend = kdfvec.StreamExpander{}
	}

	log.Debug("deriving keying material",
		zap.String("hash", cmd.Hash),
		zap.Int("bits", cmd.Bits),
		zap.String("backend", cmd.Backend),
		zap.Bool("verify", len(expected) > 0))

	res, err := kdfvec.NewHKDF(backend).Derive(&kdfvec.HKDFRequest{
		Hash:   hash,
		Z:      z,
		Salt:   salt,
		Info:   info,
		DKMLen: cmd.Bits,
		DKM:    expected,
	})
	if err != nil {
		return err
	}

	defer res.Wipe()

	// A verify-mode mismatch is a reported result, not a failure.
	if len(expected) > 0 {
		fmt.Printf("valid: %v\n", res.Valid)

		return nil
	}

	fmt.Printf("dkm: %s\n", hexcode.Encode(res.DKM, cmd.Upper))

	return nil
}
