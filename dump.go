package o65

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/appsworld/go-o65/types"
)

// A Dumper renders o65 images as an annotated text report. Lines are
// written as they are decoded, so everything emitted before a failure
// is preserved and shows how far into the structure decoding got.
type Dumper struct {
	w io.Writer
}

func NewDumper(w io.Writer) *Dumper { return &Dumper{w: w} }

// DumpFile dumps every image chained in the named file. The file is
// closed on every path; decode failures come back prefixed with the
// file name so batch callers can report them directly.
func (d *Dumper) DumpFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		var perr *fs.PathError
		if errors.As(err, &perr) {
			return fmt.Errorf("%s: %w", name, perr.Err)
		}
		return err
	}
	defer f.Close()
	if err := d.Dump(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Dump walks the chain of images in r, dumping each one, until an
// image's mode word no longer carries the chain flag. A signature
// mismatch on the first image means r holds some other format; after
// that it means the previous image promised a continuation the file
// does not contain.
func (d *Dumper) Dump(r io.Reader) error {
	c := newCursor(r)
	for first := true; ; first = false {
		hdr, err := readHeader(c)
		if err != nil {
			if !first && errors.Is(err, ErrBadMagic) {
				return &FormatError{c.off, "chained image header missing"}
			}
			return err
		}
		if err := d.dumpImage(c, hdr); err != nil {
			return err
		}
		if !hdr.Mode.Chain() {
			return nil
		}
		fmt.Fprintln(d.w)
	}
}

// dumpImage renders one image in on-disk record order. The order is
// fixed: each section consumes exactly its bytes from the stream.
func (d *Dumper) dumpImage(c *cursor, hdr *types.FileHeader) error {
	fmt.Fprintf(d.w, "Header:\n%s", hdr)
	if err := d.dumpOptions(c); err != nil {
		return err
	}
	if err := d.dumpSegment(c, ".text", hdr.TBase, hdr.TLen, hdr.Mode); err != nil {
		return err
	}
	if err := d.dumpSegment(c, ".data", hdr.DBase, hdr.DLen, hdr.Mode); err != nil {
		return err
	}
	if err := d.dumpUndefined(c, hdr.Mode); err != nil {
		return err
	}
	if err := d.dumpRelocs(c, ".text", hdr.TBase, hdr.Mode); err != nil {
		return err
	}
	if err := d.dumpRelocs(c, ".data", hdr.DBase, hdr.Mode); err != nil {
		return err
	}
	return d.dumpExported(c, hdr.Mode)
}

// dumpOptions renders the option list. The section header appears
// only once an option exists; a list that is just the terminator
// renders nothing.
func (d *Dumper) dumpOptions(c *cursor) error {
	have := false
	for {
		opt, err := readOption(c)
		if err != nil {
			return err
		}
		if opt == nil {
			return nil
		}
		if !have {
			fmt.Fprintf(d.w, "\nOptions:\n")
			have = true
		}
		fmt.Fprintf(d.w, "    %s\n", optionLine(opt))
	}
}

func optionLine(opt *types.Option) string {
	switch opt.Type {
	case types.OptFilename:
		return "Filename: " + escapeString(opt.Data)
	case types.OptOS:
		return "Operating System Information:" + hexBytes(opt.Data)
	case types.OptProgram:
		return "Assembler/Linker: " + escapeString(opt.Data)
	case types.OptAuthor:
		return "Author: " + escapeString(opt.Data)
	case types.OptCreated:
		return "Created: " + escapeString(opt.Data)
	default:
		return fmt.Sprintf("Option %d:%s", opt.Type, hexBytes(opt.Data))
	}
}

// escapeString renders raw payload bytes as text: printable ASCII
// passes through, NULs are dropped, everything else becomes a \xNN
// escape.
func escapeString(data []byte) string {
	var b strings.Builder
	for _, ch := range data {
		switch {
		case ch >= ' ' && ch <= 0x7E:
			b.WriteByte(ch)
		case ch != 0:
			fmt.Fprintf(&b, "\\x%02x", ch)
		}
	}
	return b.String()
}

func hexBytes(data []byte) string {
	var b strings.Builder
	for _, ch := range data {
		fmt.Fprintf(&b, " %02x", ch)
	}
	return b.String()
}

// dumpSegment streams a segment's bytes as 16-byte hex lines. The
// declared length is consumed exactly; a zero length still emits the
// byte-count line.
func (d *Dumper) dumpSegment(c *cursor, name string, base, length uint32, mode types.Mode) error {
	fmt.Fprintf(d.w, "\n%s: %d bytes\n", name, length)
	var buf [16]byte
	for length > 0 {
		n := uint32(len(buf))
		if length < n {
			n = length
		}
		if err := c.readFull(buf[:n]); err != nil {
			return err
		}
		fmt.Fprintf(d.w, "    %0*x:%s\n", mode.HexDigits(), base, hexBytes(buf[:n]))
		base += n
		length -= n
	}
	return nil
}

// dumpName copies one nul-terminated name from the stream to the
// output, byte by byte, through the same escaping as escapeString.
func (d *Dumper) dumpName(c *cursor) error {
	for {
		ch, err := c.readByte()
		if err != nil {
			return err
		}
		switch {
		case ch == 0:
			return nil
		case ch >= ' ' && ch <= 0x7E:
			fmt.Fprintf(d.w, "%c", ch)
		default:
			fmt.Fprintf(d.w, "\\x%02x", ch)
		}
	}
}

func (d *Dumper) dumpUndefined(c *cursor, mode types.Mode) error {
	count, err := readCount(c, mode)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Fprintf(d.w, "\nUndefined Symbols: none\n")
		return nil
	}
	fmt.Fprintf(d.w, "\nUndefined Symbols:\n")
	for index := uint32(0); index < count; index++ {
		fmt.Fprintf(d.w, "    %d: ", index)
		if err := d.dumpName(c); err != nil {
			return err
		}
		fmt.Fprintln(d.w)
	}
	return nil
}

// dumpRelocs walks one segment's relocation table. The table has no
// count; it ends at the first entry whose offset byte is zero. Every
// real entry advances the address cursor by its offset before being
// reported, so the cursor is seeded one below the segment base. A
// base of zero wraps; the format allows that.
func (d *Dumper) dumpRelocs(c *cursor, name string, base uint32, mode types.Mode) error {
	addr := base - 1
	fmt.Fprintf(d.w, "\n%s.relocs:\n", name)
	for {
		rel, err := readReloc(c, mode)
		if err != nil {
			return err
		}
		if rel.Offset == types.RelocEndOfTable {
			return nil
		}
		if rel.Offset == types.RelocSkip {
			addr += types.RelocSkipAmount
			continue
		}
		addr += uint32(rel.Offset)
		fmt.Fprintf(d.w, "    %0*x: ", mode.HexDigits(), addr)
		if rel.SegID() == types.SegUndef {
			fmt.Fprintf(d.w, "undef %d", rel.UndefIndex)
		} else {
			fmt.Fprintf(d.w, "%s", rel.SegID())
		}
		switch kind := rel.Kind(); kind {
		case types.RelocHigh:
			if mode.Paged() {
				fmt.Fprintf(d.w, ", HIGH\n")
			} else {
				fmt.Fprintf(d.w, ", HIGH %02x\n", rel.Extra)
			}
		case types.RelocSeg:
			fmt.Fprintf(d.w, ", SEG %04x\n", rel.Extra)
		default:
			fmt.Fprintf(d.w, ", %s\n", kind)
		}
	}
}

func (d *Dumper) dumpExported(c *cursor, mode types.Mode) error {
	count, err := readCount(c, mode)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Fprintf(d.w, "\nExported Symbols: none\n")
		return nil
	}
	fmt.Fprintf(d.w, "\nExported Symbols:\n")
	for index := uint32(0); index < count; index++ {
		fmt.Fprintf(d.w, "    ")
		if err := d.dumpName(c); err != nil {
			return err
		}
		segid, err := c.readByte()
		if err != nil {
			return err
		}
		value, err := c.readSize(mode.Is32Bit())
		if err != nil {
			return err
		}
		fmt.Fprintf(d.w, ", %s, 0x%0*x\n", types.SegID(segid), mode.HexDigits(), value)
	}
	return nil
}
