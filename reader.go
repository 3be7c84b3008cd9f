package o65

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/appsworld/go-o65/types"
)

// cursor is a forward-only reader over an image stream. It tracks the
// offset consumed so far so that errors can report where decoding
// stopped. The format gives no reason to expect EOF inside a record,
// so EOF from the underlying reader is normalized to
// io.ErrUnexpectedEOF; other I/O errors pass through untouched.
type cursor struct {
	r   *bufio.Reader
	off int64
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: bufio.NewReader(r)}
}

func (c *cursor) readByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	c.off++
	return b, nil
}

func (c *cursor) readFull(p []byte) error {
	n, err := io.ReadFull(c.r, p)
	c.off += int64(n)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func (c *cursor) readUint16() (uint16, error) {
	var buf [2]byte
	if err := c.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func (c *cursor) readUint32() (uint32, error) {
	var buf [4]byte
	if err := c.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// readSize reads one base, length, value, or count field at the width
// selected by the image's mode word.
func (c *cursor) readSize(wide bool) (uint32, error) {
	if wide {
		return c.readUint32()
	}
	v, err := c.readUint16()
	return uint32(v), err
}

// readHeader decodes and validates one image header. A signature
// mismatch is ErrBadMagic; the caller decides whether that means
// "different format" or a broken chain.
func readHeader(c *cursor) (*types.FileHeader, error) {
	var magic [6]byte
	if err := c.readFull(magic[:]); err != nil {
		return nil, err
	}
	if !bytes.Equal(magic[:], types.Magic[:]) {
		return nil, ErrBadMagic
	}
	mode, err := c.readUint16()
	if err != nil {
		return nil, err
	}
	hdr := &types.FileHeader{Mode: types.Mode(mode)}
	wide := hdr.Mode.Is32Bit()
	for _, field := range []*uint32{
		&hdr.TBase, &hdr.TLen,
		&hdr.DBase, &hdr.DLen,
		&hdr.BBase, &hdr.BLen,
		&hdr.ZBase, &hdr.ZLen,
		&hdr.Stack,
	} {
		if *field, err = c.readSize(wide); err != nil {
			return nil, err
		}
	}
	return hdr, nil
}

// readOption decodes one header option. A nil Option with nil error
// means the zero-length terminator was consumed and the list is
// complete. The length prefix counts itself and the type byte, so any
// nonzero length below two is structurally invalid.
func readOption(c *cursor) (*types.Option, error) {
	length, err := c.readByte()
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, nil
	}
	if length < 2 {
		return nil, &FormatError{c.off - 1, "option shorter than its own prefix"}
	}
	typ, err := c.readByte()
	if err != nil {
		return nil, err
	}
	data := make([]byte, length-2)
	if err := c.readFull(data); err != nil {
		return nil, err
	}
	return &types.Option{Type: types.OptionType(typ), Data: data}, nil
}

// readReloc decodes one relocation entry. The offset byte values 0
// (end of table) and 255 (skip ahead) carry no further fields and
// return immediately. Real entries carry the type byte, then the
// undefined symbol index when the target segment is undef, then the
// extra byte(s) demanded by the kind: one for HIGH under byte-wise
// granularity, two for SEG.
func readReloc(c *cursor, mode types.Mode) (types.Reloc, error) {
	var rel types.Reloc
	off, err := c.readByte()
	if err != nil {
		return rel, err
	}
	rel.Offset = off
	if off == types.RelocEndOfTable || off == types.RelocSkip {
		return rel, nil
	}
	typ, err := c.readByte()
	if err != nil {
		return rel, err
	}
	rel.Type = typ
	if rel.SegID() == types.SegUndef {
		if rel.UndefIndex, err = c.readSize(mode.Is32Bit()); err != nil {
			return rel, err
		}
	}
	switch rel.Kind() {
	case types.RelocHigh:
		if !mode.Paged() {
			b, err := c.readByte()
			if err != nil {
				return rel, err
			}
			rel.Extra = uint16(b)
		}
	case types.RelocSeg:
		if rel.Extra, err = c.readUint16(); err != nil {
			return rel, err
		}
	}
	return rel, nil
}

// readCount reads a symbol table count. In 32-bit mode four bytes are
// consumed but only the low 16 bits carry the count.
func readCount(c *cursor, mode types.Mode) (uint32, error) {
	v, err := c.readSize(mode.Is32Bit())
	if err != nil {
		return 0, err
	}
	if mode.Is32Bit() {
		v &= 0xFFFF
	}
	return v, nil
}
