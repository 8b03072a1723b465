package header

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// ErrNoSuchField is returned by Header methods when the field named does not
// exist.
var ErrNoSuchField = errors.New("no such header field")

// BadStartError is returned when the header begins with junk text that does not
// appear to be a header. This text is preserved in the error object.
type BadStartError struct {
	BadStart []byte // the text skipped at the start of header
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header"
}

// Line is the unparsed content of a complete header field, including any
// continuation lines.
type Line []byte

// Lines is the unparsed content of zero or more header fields.
type Lines []Line

// ParseLines splits m into header field lines. A line starting with a space or
// tab, or holding no colon, continues the field before it. Everything in m is
// taken to be part of the header.
//
// Any lines before the first field are skipped and returned in a
// BadStartError along with the fields that follow.
func ParseLines(m []byte, lb Break) (Lines, error) {
	lb = lb.orCRLF()

	h := make(Lines, 0, len(m)/80)
	var err *BadStartError
	for _, line := range bytes.SplitAfter(m, lb.Bytes()) {
		if len(line) == 0 {
			break
		}
		if line[0] == '\t' || line[0] == ' ' || !bytes.Contains(line, []byte(":")) {
			// Start with a continuation? Weird, uh...
			if len(h) == 0 {
				if err != nil {
					err.BadStart = append(err.BadStart, line...)
				} else {
					err = &BadStartError{line}
				}
				continue
			}

			h[len(h)-1] = append(h[len(h)-1], line...)
		} else {
			h = append(h, line)
		}
	}

	if err != nil {
		return h, err
	}
	return h, nil
}

// Header is an ordered list of fields.
type Header struct {
	lb     Break
	fields []*Field
}

// Parse parses m as a complete header using the line break lb. The whole of m
// is taken to be the header. A BadStartError is returned with the header when
// m starts with something other than a field.
func Parse(m []byte, lb Break) (*Header, error) {
	lines, err := ParseLines(m, lb)

	var badStartErr *BadStartError // recoverable
	if err != nil && !errors.As(err, &badStartErr) {
		return nil, err
	}

	h := &Header{lb: lb, fields: make([]*Field, len(lines))}
	for i, line := range lines {
		h.fields[i] = ParseField(line, lb)
	}

	return h, err
}

// Break returns the line break used when writing the header.
func (h *Header) Break() Break { return h.lb.orCRLF() }

// Len returns the number of fields.
func (h *Header) Len() int { return len(h.fields) }

// Fields returns the fields in order.
func (h *Header) Fields() []*Field {
	return append([]*Field(nil), h.fields...)
}

// Add appends a field to the end of the header.
func (h *Header) Add(f *Field) {
	f.SetBreak(h.lb)
	h.fields = append(h.fields, f)
}

// Get returns the first field with the given name, matched without regard to
// case. It returns ErrNoSuchField if there is none.
func (h *Header) Get(name string) (*Field, error) {
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			return f, nil
		}
	}
	return nil, ErrNoSuchField
}

// WriteTo writes every field, each folded and ending in a line break.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	total := int64(0)
	for _, f := range h.fields {
		n, err := f.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
