package main

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDecodeHexStdinConsecutive(t *testing.T) {
	t.Parallel()

	// Two arguments read from the same piped stdin must each get their own
	// line, even though the first read buffers ahead.
	g := &globals{stdin: bufio.NewReader(strings.NewReader("aabb\nccdd\n"))}

	first, err := g.decodeHex("first", "-")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "first line", []byte{0xaa, 0xbb}, first)

	second, err := g.decodeHex("second", "-")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "second line", []byte{0xcc, 0xdd}, second)
}

func TestDecodeHexStdinNoTrailingNewline(t *testing.T) {
	t.Parallel()

	g := &globals{stdin: bufio.NewReader(strings.NewReader("aabb"))}

	b, err := g.decodeHex("secret", "-")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "line", []byte{0xaa, 0xbb}, b)
}

func TestDecodeHexStdinExhausted(t *testing.T) {
	t.Parallel()

	g := &globals{stdin: bufio.NewReader(strings.NewReader("aabb\n"))}

	if _, err := g.decodeHex("first", "-"); err != nil {
		t.Fatal(err)
	}

	_, err := g.decodeHex("second", "-")

	assert.Equal(t, "error", io.EOF, err, cmpopts.EquateErrors())
}

func TestDecodeHexLenient(t *testing.T) {
	t.Parallel()

	g := &globals{Lenient: true}

	b, err := g.decodeHex("hash", "0gff")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "decoded", []byte{0x00, 0xff}, b)
}
