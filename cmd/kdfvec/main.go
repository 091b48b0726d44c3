package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/kdfvec/kdfvec/internal/hexcode"
)

type globals struct {
	Lenient bool `help:"Decode hex the way the legacy CAVS tool did: invalid digits become zero."`
	Verbose bool `short:"v" help:"Trace derivation steps on stderr."`

	// One buffered reader shared by every argument read from stdin, so the
	// bytes one read buffers ahead stay available to the next.
	stdin *bufio.Reader
}

type cli struct {
	globals

	SSH  sshCmd  `cmd:"" help:"Expand SSH transport session keys from a key exchange result."`
	HKDF hkdfCmd `cmd:"" help:"Derive or verify HKDF output keying material."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli,
		kong.Name("kdfvec"),
		kong.Description("Check KDF implementations against CAVS/ACVP test vectors."))

	err := ctx.Run(&cli.globals)
	ctx.FatalIfErrorf(err)
}

func (g *globals) logger() *zap.Logger {
	if !g.Verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return log
}

// decodeHex decodes a hex argument, reading a single line from stdin when the
// argument is "-".
func (g *globals) decodeHex(name, v string) ([]byte, error) {
	if v == "-" {
		s, err := g.readLine(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		v = s
	}

	decode := hexcode.Decode
	if g.Lenient {
		decode = hexcode.DecodeLenient
	}

	b, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return b, nil
}

func (g *globals) readLine(name string) (string, error) {
	if g.stdin == nil {
		g.stdin = bufio.NewReader(os.Stdin)
	}

	// Prompt only when a human is typing.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

		_, _ = fmt.Fprintf(os.Stderr, "Enter %s (hex): ", name)
	}

	s, err := g.stdin.ReadString('\n')
	if err != nil && s == "" {
		return "", err
	}

	return strings.TrimSpace(s), nil
}
