// Package component holds the parse/generate contract shared by the header
// value engines in this module along with the folding writer they use to keep
// generated lines within a length budget.
package component

import (
	"errors"
	"fmt"
	"io"
)

// Line length limits, in bytes, used when generating header values.
const (
	// Infinite disables folding. Any value less than or equal to zero is
	// treated the same way.
	Infinite = -1

	// Convenient is the line length RFC 5322 recommends lines be kept under.
	Convenient = 78

	// MaxLength is the hard limit RFC 5322 puts on a line, excluding the CRLF.
	MaxLength = 998
)

// ErrRange is returned by Parse when the position range given does not fit in
// the buffer given. This is the only error a Parse will return. Malformed
// input is never an error.
var ErrRange = errors.New("position range is outside the buffer")

// Result describes the outcome of a Parse. Parsing always produces a value,
// even from garbage. WellFormed is false when any part of the input had to be
// recovered from by treating it literally or by falling back to a default.
type Result struct {
	NewPosition int  // the position just past the last byte consumed
	WellFormed  bool // false when the input needed tolerant recovery
}

// Component is implemented by every header value kind. Parse replaces the
// receiver's content with what is found in buf[position:end]. Generate writes
// the wire form to w, starting at column curLinePos of the current line and
// folding to keep within maxLineLength. It returns the column of the last line
// written.
type Component interface {
	Parse(buf []byte, position, end int) (Result, error)
	Generate(w io.Writer, maxLineLength, curLinePos int) (int, error)
}

// CheckRange returns ErrRange if position and end do not describe a half-open
// range inside buf.
func CheckRange(buf []byte, position, end int) error {
	if position < 0 || end > len(buf) || position > end {
		return fmt.Errorf("%w: [%d, %d) of %d bytes", ErrRange, position, end, len(buf))
	}
	return nil
}
