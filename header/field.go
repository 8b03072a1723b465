package header

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/zostay/go-mailtext/header/component"
	"github.com/zostay/go-mailtext/header/datetime"
	"github.com/zostay/go-mailtext/header/text"
)

// Kind identifies the kind of value a header field holds.
type Kind int

// The kinds of field value this package knows how to parse and generate.
const (
	KindText     Kind = iota // unstructured text, possibly with encoded-words
	KindDateTime             // an RFC 2822 date-time
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindDateTime:
		return "date-time"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// These are the fields whose values are dates.
const (
	Date         = "Date"
	ResentDate   = "Resent-Date"
	DeliveryDate = "Delivery-Date"
	Expires      = "Expires"
	ExpiryDate   = "Expiry-Date"
	ReplyBy      = "Reply-By"
)

var dateFields = map[string]struct{}{
	strings.ToLower(Date):         {},
	strings.ToLower(ResentDate):   {},
	strings.ToLower(DeliveryDate): {},
	strings.ToLower(Expires):      {},
	strings.ToLower(ExpiryDate):   {},
	strings.ToLower(ReplyBy):      {},
}

// KindOf returns the kind of value expected in the named field. Field names
// are matched without regard to case. Every field not known to hold a date is
// treated as text.
func KindOf(name string) Kind {
	if _, isDate := dateFields[strings.ToLower(name)]; isDate {
		return KindDateTime
	}
	return KindText
}

// Field is a single header field holding either a text or a date-time value.
type Field struct {
	name       string
	kind       Kind
	text       *text.Text
	date       *datetime.DateTime
	wellFormed bool
	lb         Break
}

// NewTextField returns a field holding text.
func NewTextField(name string, t *text.Text) *Field {
	return &Field{name: name, kind: KindText, text: t, wellFormed: true}
}

// NewDateTimeField returns a field holding a date-time.
func NewDateTimeField(name string, d *datetime.DateTime) *Field {
	return &Field{name: name, kind: KindDateTime, date: d, wellFormed: true}
}

// Name returns the name of the field.
func (f *Field) Name() string { return f.name }

// Kind returns the kind of value held.
func (f *Field) Kind() Kind { return f.kind }

// Text returns the value of a KindText field and nil for any other kind.
func (f *Field) Text() *text.Text { return f.text }

// DateTime returns the value of a KindDateTime field and nil for any other
// kind.
func (f *Field) DateTime() *datetime.DateTime { return f.date }

// Value returns the value, whatever its kind.
func (f *Field) Value() component.Component {
	switch {
	case f.kind == KindDateTime && f.date != nil:
		return f.date
	case f.kind == KindText && f.text != nil:
		return f.text
	}
	return nil
}

// WellFormed returns false if the field was parsed from input that could only
// be read by falling back on some tolerant interpretation.
func (f *Field) WellFormed() bool { return f.wellFormed }

// Break returns the line break used when writing the field.
func (f *Field) Break() Break { return f.lb.orCRLF() }

// SetBreak sets the line break used when writing the field.
func (f *Field) SetBreak(lb Break) { f.lb = lb }

// ParseField parses a single header field line, including any folded
// continuation lines. A trailing lb is ignored. The kind of value parsed is
// chosen from the field name by KindOf. A line without a colon is taken to be
// a name with an empty value and is marked as not well-formed.
func ParseField(line []byte, lb Break) *Field {
	line = bytes.TrimSuffix(line, lb.Bytes())

	wellFormed := true
	ix := bytes.IndexByte(line, ':')
	start := ix + 1
	if ix < 0 {
		ix, start = len(line), len(line)
		wellFormed = false
	}

	name := string(bytes.TrimSpace(bytes.Map(dropBreaks, line[:ix])))

	end := len(line)
	for start < end && isFWS(line[start]) {
		start++
	}
	for end > start && isFWS(line[end-1]) {
		end--
	}

	f := &Field{name: name, kind: KindOf(name), lb: lb}

	var c component.Component
	if f.kind == KindDateTime {
		f.date = &datetime.DateTime{}
		c = f.date
	} else {
		f.text = text.New()
		c = f.text
	}

	// the range is inside line by construction
	res, _ := c.Parse(line, start, end)
	f.wellFormed = wellFormed && res.WellFormed

	return f
}

func isFWS(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func dropBreaks(r rune) rune {
	if r == '\r' || r == '\n' {
		return -1
	}
	return r
}

// WriteTo writes the complete field, folded to keep lines within
// component.Convenient bytes where possible and ending with a line break.
func (f *Field) WriteTo(w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(f.name)
	buf.WriteString(": ")

	if v := f.Value(); v != nil {
		if _, err := v.Generate(buf, component.Convenient, buf.Len()); err != nil {
			return 0, err
		}
	}

	out := buf.Bytes()
	lb := f.Break()
	if lb != CRLF {
		out = bytes.ReplaceAll(out, component.CRLF, lb.Bytes())
	}
	out = append(out, lb.Bytes()...)

	n, err := w.Write(out)
	return int64(n), err
}

// String returns the field as WriteTo writes it, without the final line
// break.
func (f *Field) String() string {
	buf := &strings.Builder{}
	_, _ = f.WriteTo(buf)
	return strings.TrimSuffix(buf.String(), f.Break().String())
}
