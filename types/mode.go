package types

import "strings"

// Mode is the o65 header mode word. It selects the CPU, the width of
// every size field in the image, the relocation granularity, the
// alignment class, and whether another image is chained after this one.
type Mode uint16

const (
	ModePaged   Mode = 0x4000 // relocation is page-wise
	Mode32Bit   Mode = 0x2000 // sizes in the file are 32 bits
	ModeObj     Mode = 0x1000 // object file, clear for executable
	ModeSimple  Mode = 0x0800 // simple load address form
	ModeChain   Mode = 0x0400 // another image follows in the same file
	ModeBSSZero Mode = 0x0200 // .bss must be zeroed by the loader

	modeCPUBits Mode = 0x80F0
	modeAlign   Mode = 0x0003
)

func (m Mode) Paged() bool   { return m&ModePaged != 0 }
func (m Mode) Is32Bit() bool { return m&Mode32Bit != 0 }
func (m Mode) Obj() bool     { return m&ModeObj != 0 }
func (m Mode) Simple() bool  { return m&ModeSimple != 0 }
func (m Mode) Chain() bool   { return m&ModeChain != 0 }
func (m Mode) BSSZero() bool { return m&ModeBSSZero != 0 }

func (m Mode) CPU() CPU         { return CPU(m & modeCPUBits) }
func (m Mode) Align() Alignment { return Alignment(m & modeAlign) }

// AddrWidth returns the number of bytes occupied by every base,
// length, value, and count field of the image.
func (m Mode) AddrWidth() int {
	if m.Is32Bit() {
		return 4
	}
	return 2
}

// HexDigits returns the number of digits used to print addresses and
// values from this image.
func (m Mode) HexDigits() int { return 2 * m.AddrWidth() }

// List returns the mode descriptions in the order they are reported:
// CPU, paging, address width, file kind, then the remaining flags and
// the alignment class.
func (m Mode) List() []string {
	desc := []string{m.CPU().String()}
	if m.Paged() {
		desc = append(desc, "pagewise relocation")
	}
	if m.Is32Bit() {
		desc = append(desc, "32-bit addresses")
	} else {
		desc = append(desc, "16-bit addresses")
	}
	if m.Obj() {
		desc = append(desc, "obj")
	} else {
		desc = append(desc, "exe")
	}
	if m.Simple() {
		desc = append(desc, "simple")
	}
	if m.Chain() {
		desc = append(desc, "chain")
	}
	if m.BSSZero() {
		desc = append(desc, "bsszero")
	}
	return append(desc, m.Align().String())
}

func (m Mode) String() string { return strings.Join(m.List(), ", ") }

// A CPU is the processor family encoded in the mode word.
type CPU uint16

const (
	CPU6502      CPU = 0x0000 // 6502 core, no undocumented opcodes
	CPU65C02     CPU = 0x0010
	CPU65SC02    CPU = 0x0020
	CPU65CE02    CPU = 0x0030
	CPU6502Undoc CPU = 0x0040 // NMOS 6502 with undocumented opcodes
	CPU65816Emul CPU = 0x0050 // 65816 in 6502 emulation mode
	CPU6809      CPU = 0x0080
	CPUZ80       CPU = 0x00A0
	CPU8086      CPU = 0x00D0
	CPU80286     CPU = 0x00E0
	CPU65816     CPU = 0x8000 // 65816 in 16-bit mode
)

var cpuStrings = []intName{
	{uint32(CPU6502), "6502"},
	{uint32(CPU65C02), "65C02"},
	{uint32(CPU65SC02), "65SC02"},
	{uint32(CPU65CE02), "65CE02"},
	{uint32(CPU6502Undoc), "6502-undoc"},
	{uint32(CPU65816Emul), "65816-emul"},
	{uint32(CPU6809), "6809"},
	{uint32(CPUZ80), "Z80"},
	{uint32(CPU8086), "8086"},
	{uint32(CPU80286), "80286"},
	{uint32(CPU65816), "65816"},
}

func (c CPU) String() string { return stringName(uint32(c), cpuStrings, "0x%04X") }

// Alignment is the alignment class from the low two mode bits.
type Alignment uint16

const (
	AlignByte Alignment = 0
	AlignWord Alignment = 1
	AlignLong Alignment = 2
	AlignPage Alignment = 3
)

var alignStrings = []intName{
	{uint32(AlignByte), "byte alignment"},
	{uint32(AlignWord), "word alignment"},
	{uint32(AlignLong), "long alignment"},
	{uint32(AlignPage), "page alignment"},
}

func (a Alignment) String() string { return stringName(uint32(a), alignStrings, "alignment %d") }
