package types

import (
	"fmt"
	"strings"
)

// Magic is the six-byte signature that starts every o65 image: the
// non-C64 load address marker 01 00, the string "o65", and version 0.
var Magic = [6]byte{0x01, 0x00, 'o', '6', '5', 0x00}

const (
	// HeaderFixedSize covers the magic and the mode word; the rest of
	// the header is sized by the mode's address width.
	HeaderFixedSize = 8
	HeaderSize16    = HeaderFixedSize + 9*2
	HeaderSize32    = HeaderFixedSize + 9*4
)

// A FileHeader is a decoded o65 image header. The base, length, and
// stack fields are 16 or 32 bits on disk depending on Mode; they are
// held widened to uint32.
type FileHeader struct {
	Mode  Mode
	TBase uint32 // original address of the .text segment
	TLen  uint32
	DBase uint32 // original address of the .data segment
	DLen  uint32
	BBase uint32 // original address of the .bss segment
	BLen  uint32
	ZBase uint32 // original address of the .zeropage segment
	ZLen  uint32
	Stack uint32 // bytes of stack space required
}

// String renders the header fields one per line, addresses printed at
// the image's width.
func (h FileHeader) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "    mode  = 0x%04x (%s)\n", uint16(h.Mode), h.Mode)
	digits := h.Mode.HexDigits()
	for _, f := range []struct {
		name string
		v    uint32
	}{
		{"tbase", h.TBase},
		{"tlen", h.TLen},
		{"dbase", h.DBase},
		{"dlen", h.DLen},
		{"bbase", h.BBase},
		{"blen", h.BLen},
		{"zbase", h.ZBase},
		{"zlen", h.ZLen},
		{"stack", h.Stack},
	} {
		fmt.Fprintf(&b, "    %-5s = 0x%0*x\n", f.name, digits, f.v)
	}
	return b.String()
}
