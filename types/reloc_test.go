package types

import "testing"

func TestRelocTypeByte(t *testing.T) {
	tests := []struct {
		typ  uint8
		kind RelocKind
		seg  SegID
	}{
		{0x82, RelocWord, SegText},
		{0x43, RelocHigh, SegData},
		{0x20, RelocLow, SegUndef},
		{0xC4, RelocSegAdr, SegBSS},
		{0xA1, RelocSeg, SegAbs},
		{0x05, RelocKind(0), SegZeroPage},
	}
	for _, tt := range tests {
		r := Reloc{Type: tt.typ}
		if got := r.Kind(); got != tt.kind {
			t.Errorf("Reloc{Type: %#02x}.Kind() = %#02x, want %#02x", tt.typ, uint8(got), uint8(tt.kind))
		}
		if got := r.SegID(); got != tt.seg {
			t.Errorf("Reloc{Type: %#02x}.SegID() = %d, want %d", tt.typ, got, tt.seg)
		}
	}
}

func TestRelocKindString(t *testing.T) {
	tests := []struct {
		kind RelocKind
		want string
	}{
		{RelocWord, "WORD"},
		{RelocHigh, "HIGH"},
		{RelocLow, "LOW"},
		{RelocSegAdr, "SEGADR"},
		{RelocSeg, "SEG"},
		{RelocKind(0x00), "RELOC-00"},
		{RelocKind(0x60), "RELOC-60"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("RelocKind(%#02x).String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
	}
}

func TestSegIDString(t *testing.T) {
	tests := []struct {
		seg  SegID
		want string
	}{
		{SegUndef, "undef"},
		{SegAbs, "abs"},
		{SegText, ".text"},
		{SegData, ".data"},
		{SegBSS, ".bss"},
		{SegZeroPage, ".zeropage"},
		{SegID(9), "segment 9"},
	}
	for _, tt := range tests {
		if got := tt.seg.String(); got != tt.want {
			t.Errorf("SegID(%d).String() = %q, want %q", tt.seg, got, tt.want)
		}
	}
}

func TestOptionTypeIsString(t *testing.T) {
	for _, typ := range []OptionType{OptFilename, OptProgram, OptAuthor, OptCreated} {
		if !typ.IsString() {
			t.Errorf("OptionType(%d).IsString() = false, want true", typ)
		}
	}
	for _, typ := range []OptionType{OptOS, OptELFMachine, OptionType(9)} {
		if typ.IsString() {
			t.Errorf("OptionType(%d).IsString() = true, want false", typ)
		}
	}
}

func TestOSString(t *testing.T) {
	if got := OSCC65.String(); got != "cc65" {
		t.Errorf("OSCC65.String() = %q, want %q", got, "cc65")
	}
	if got := OS(9).String(); got != "os-9" {
		t.Errorf("OS(9).String() = %q, want %q", got, "os-9")
	}
}
