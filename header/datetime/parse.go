package datetime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/zostay/go-mailtext/header/component"
)

// ErrUnparseable is returned by ParseAny when nothing could make sense of the
// date given.
var ErrUnparseable = errors.New("date cannot be parsed")

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var dayNames = [...]string{
	"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
}

// dateScanner walks over a date-time one token at a time.
type dateScanner struct {
	buf []byte
	pos int
	ok  bool
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool { return 'a' <= c|0x20 && c|0x20 <= 'z' }

func (s *dateScanner) more() bool { return s.pos < len(s.buf) }

func (s *dateScanner) peek() byte {
	if s.more() {
		return s.buf[s.pos]
	}
	return 0
}

// skipCFWS skips any run of whitespace and comments. Comments nest and may
// hold quoted-pairs. An unterminated comment runs to the end of input.
func (s *dateScanner) skipCFWS() {
	depth := 0
	for ; s.more(); s.pos++ {
		c := s.buf[s.pos]
		switch {
		case c == '(':
			depth++
		case c == ')' && depth > 0:
			depth--
		case c == '\\' && depth > 0:
			s.pos++
		case depth > 0:
		case c == ' ', c == '\t', c == '\r', c == '\n':
		default:
			return
		}
	}

	if depth > 0 {
		s.ok = false
	}
}

// maxDigits bounds the digits read into a number so the value fits an int32.
const maxDigits = 9

// number reads a run of digits, returning its value and length. Only the
// first maxDigits digits count toward the value. A longer run is consumed
// whole but marks the date malformed.
func (s *dateScanner) number() (int, int) {
	start := s.pos
	n := 0
	for s.more() && isDigit(s.peek()) {
		if s.pos-start < maxDigits {
			n = n*10 + int(s.peek()-'0')
		} else {
			s.ok = false
		}
		s.pos++
	}
	return n, s.pos - start
}

func (s *dateScanner) word() string {
	start := s.pos
	for s.more() && isAlpha(s.peek()) {
		s.pos++
	}
	return string(s.buf[start:s.pos])
}

// field reads a number, marking the date malformed when there is none.
func (s *dateScanner) field() int {
	s.skipCFWS()
	n, l := s.number()
	if l == 0 {
		s.ok = false
	}
	return n
}

// colon consumes the separator between the parts of a time of day.
func (s *dateScanner) colon() bool {
	save := s.pos
	s.skipCFWS()
	if s.peek() == ':' {
		s.pos++
		return true
	}
	s.pos = save
	return false
}

func lookupName(names []string, w string) int {
	if len(w) < 3 {
		return -1
	}
	for i, n := range names {
		if strings.EqualFold(w[:3], n) {
			return i
		}
	}
	return -1
}

// Parse reads the date-time found in buf[position:end] into the receiver. The
// expected form is:
//
//	[ day-of-week "," ] day month-name year hour ":" minute [ ":" second ] zone
//
// with whitespace and comments allowed between any of the parts. Any
// day-of-week given is skipped without being checked against the date.
//
// Two digit years are taken to be in 1970 through 2069 and three digit years
// are taken to count from 1900. The zone is a signed HHMM offset or a name
// known to ZoneOffset.
//
// Parse never fails on bad input. Any field that cannot be read is left as 0
// and the result is marked not WellFormed. An ErrRange error is returned only
// when position and end do not fit buf, in which case the receiver is left
// unchanged.
func (d *DateTime) Parse(buf []byte, position, end int) (component.Result, error) {
	if err := component.CheckRange(buf, position, end); err != nil {
		return component.Result{NewPosition: position}, err
	}

	*d = DateTime{}
	s := &dateScanner{buf: buf[:end], pos: position, ok: true}

	s.skipCFWS()
	if isAlpha(s.peek()) {
		save := s.pos
		w := s.word()
		s.skipCFWS()
		switch {
		case s.peek() == ',':
			s.pos++
		case lookupName(dayNames[:], w) >= 0:
			s.ok = false
		default:
			// take it for a month name and let the day go missing
			s.pos = save
		}
	}

	s.skipCFWS()
	if isDigit(s.peek()) {
		d.day, _ = s.number()
	} else {
		s.ok = false
	}

	s.skipCFWS()
	if m := lookupName(monthNames[:], s.word()); m >= 0 {
		d.month = m + 1
	} else {
		s.ok = false
	}

	s.skipCFWS()
	year, digits := s.number()
	switch {
	case digits == 0:
		s.ok = false
	case digits == 2 && year >= 70:
		year += 1900
	case digits == 2:
		year += 2000
	case digits == 3:
		year += 1900
	}
	d.year = year

	d.hour = s.field()
	if s.colon() {
		d.minute = s.field()
	} else {
		s.ok = false
	}
	if s.colon() {
		d.second = s.field()
	}

	s.skipCFWS()
	d.zone = s.zone()

	s.skipCFWS()
	if s.more() {
		s.ok = false
	}

	return component.Result{NewPosition: s.pos, WellFormed: s.ok}, nil
}

// zone reads a numeric or named zone. Unknown names resolve to UTC.
func (s *dateScanner) zone() int {
	switch c := s.peek(); {
	case c == '+' || c == '-':
		s.pos++
		n, l := s.number()
		if l != 4 {
			s.ok = false
		}
		z := n/100*60 + n%100
		if c == '-' {
			z = -z
		}
		return z

	case isAlpha(c):
		if z, ok := ZoneOffset(s.word()); ok {
			return z
		}
	}

	s.ok = false
	return GMT
}

// ParseString parses the whole of s as a date-time. The second value reports
// whether the input was well-formed.
func ParseString(s string) (*DateTime, bool) {
	d := &DateTime{}
	res, _ := d.Parse([]byte(s), 0, len(s))
	return d, res.WellFormed
}

// UnixDateWithEarlyYear is a layout seen from some mailers, like
// time.UnixDate but with the year ahead of the zone.
const UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"

// ParseAny tries s as an RFC 2822 date-time first and then falls back to
// guessing at any of the many other formats found in the wild. It returns an
// ErrUnparseable error if nothing works.
func ParseAny(s string) (*DateTime, error) {
	d, wellFormed := ParseString(s)
	if wellFormed {
		return d, nil
	}

	s = strings.TrimSpace(s)
	t, err := dateparse.ParseAny(s)
	if err == nil {
		return FromTime(t), nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, s)
	if err == nil {
		return FromTime(t), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnparseable, s)
}
