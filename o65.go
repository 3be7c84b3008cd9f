// Package o65 reads the .o65 relocatable object format used by
// 6502-family assemblers and linkers, and renders its images as an
// annotated text dump.
//
// A file holds one or more chained images. Each image is a fixed
// header followed, in order, by the option list, the .text and .data
// segment bytes, the undefined symbol table, the .text and .data
// relocation tables, and the exported symbol table. The stream is
// forward-only: every record is decoded exactly once, in place.
//
// Reference: http://www.6502.org/users/andre/o65/fileformat.html
package o65

import (
	"errors"
	"fmt"
)

// ErrBadMagic is reported when a stream does not begin with the o65
// signature.
var ErrBadMagic = errors.New("not in .o65 format")

// FormatError is returned when the data is structurally not a valid
// o65 image. The offset is the stream position at which decoding
// stopped.
type FormatError struct {
	off int64
	msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format: %s at offset %d", e.msg, e.off)
}
