package types

// Relocation type byte layout: the high three bits select the kind,
// the low five bits the target segment.
const (
	RelocKindMask = 0xE0
	RelocSegMask  = 0x1F
)

// Special values of a relocation entry's offset byte.
const (
	RelocEndOfTable = 0   // terminates the table; never a real entry
	RelocSkip       = 255 // advance the address cursor, no relocation
	RelocSkipAmount = 254 // distance covered by one skip entry
)

// A RelocKind identifies how the bytes at a relocated address are
// patched.
type RelocKind uint8

const (
	RelocWord   RelocKind = 0x80 // 16-bit word
	RelocHigh   RelocKind = 0x40 // high byte of a 16-bit word
	RelocLow    RelocKind = 0x20 // low byte of a 16-bit word
	RelocSegAdr RelocKind = 0xC0 // 24-bit segment address
	RelocSeg    RelocKind = 0xA0 // segment byte of a 24-bit address
)

var relocKindStrings = []intName{
	{uint32(RelocWord), "WORD"},
	{uint32(RelocHigh), "HIGH"},
	{uint32(RelocLow), "LOW"},
	{uint32(RelocSegAdr), "SEGADR"},
	{uint32(RelocSeg), "SEG"},
}

func (k RelocKind) String() string { return stringName(uint32(k), relocKindStrings, "RELOC-%02x") }

// A SegID names the segment a relocation target or exported symbol
// value is relative to.
type SegID uint8

const (
	SegUndef    SegID = 0 // entry in the undefined references list
	SegAbs      SegID = 1 // absolute value
	SegText     SegID = 2
	SegData     SegID = 3
	SegBSS      SegID = 4
	SegZeroPage SegID = 5
)

var segIDStrings = []intName{
	{uint32(SegUndef), "undef"},
	{uint32(SegAbs), "abs"},
	{uint32(SegText), ".text"},
	{uint32(SegData), ".data"},
	{uint32(SegBSS), ".bss"},
	{uint32(SegZeroPage), ".zeropage"},
}

func (s SegID) String() string { return stringName(uint32(s), segIDStrings, "segment %d") }

// A Reloc is one entry from a segment's relocation table.
//
// An entry with Offset equal to RelocSkip carries no other fields.
// UndefIndex is meaningful only when SegID() is SegUndef. Extra is
// meaningful only for RelocHigh under byte-wise granularity (one byte)
// and RelocSeg (two bytes).
type Reloc struct {
	Offset     uint8  // distance from the previous relocated address
	Type       uint8  // packed kind and segment id
	Extra      uint16 // low address byte(s) for HIGH and SEG kinds
	UndefIndex uint32 // index into the undefined symbol table
}

func (r Reloc) Kind() RelocKind { return RelocKind(r.Type & RelocKindMask) }
func (r Reloc) SegID() SegID    { return SegID(r.Type & RelocSegMask) }
