package header

import "bytes"

// Break represents the line break used by a header.
type Break string

// Constants for use when selecting a line break to use with a header. If you
// don't know what to pick, choose CRLF.
const (
	Meh  Break = ""         // Sometimes it doesn't matter
	CRLF Break = "\x0d\x0a" // \r\n - Network linebreak
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
	CR   Break = "\x0d"     // \r - Commodores/old Macs linebreak
	LFCR Break = "\x0a\x0d" // \n\r - for weirdos
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}

// orCRLF returns CRLF in place of Meh.
func (b Break) orCRLF() Break {
	if b == Meh {
		return CRLF
	}
	return b
}

// DetectBreak guesses the line break used in m from the first line break
// found. It returns CRLF when m has no line breaks at all.
func DetectBreak(m []byte) Break {
	ix := bytes.IndexAny(m, "\r\n")
	switch {
	case ix < 0:
		return CRLF
	case m[ix] == '\r' && ix+1 < len(m) && m[ix+1] == '\n':
		return CRLF
	case m[ix] == '\r':
		return CR
	case ix+1 < len(m) && m[ix+1] == '\r':
		return LFCR
	}
	return LF
}
