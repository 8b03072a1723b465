package datetime

import (
	"bytes"
	"io"
	"strconv"

	"github.com/zostay/go-mailtext/header/component"
)

// sakamoto holds the month offsets used by DayOfWeek.
var sakamoto = [...]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DayOfWeek returns the day of the week for a date of the proleptic Gregorian
// calendar, with Sunday as 0. Months and days outside their usual range roll
// over into the neighboring months and years.
func DayOfWeek(year, month, day int) int {
	year += floorDiv(month-1, 12)
	month -= floorDiv(month-1, 12) * 12
	if month < 3 {
		year--
	}

	w := year + floorDiv(year, 4) - floorDiv(year, 100) + floorDiv(year, 400) +
		sakamoto[month-1] + day
	w %= 7
	if w < 0 {
		w += 7
	}
	return w
}

func appendPadded(dst []byte, n, width int) []byte {
	if n < 0 {
		dst = append(dst, '-')
		n = -n
	}
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}

func appendZone(dst []byte, zone int) []byte {
	sign := byte('+')
	if zone < 0 {
		sign = '-'
		zone = -zone
	}
	dst = append(dst, sign)
	dst = appendPadded(dst, zone/60, 2)
	return appendPadded(dst, zone%60, 2)
}

// tokens returns the parts of the date as they are written, in order.
func (d *DateTime) tokens() [][]byte {
	wd := []byte(dayNames[d.Weekday()])
	wd = append(wd, ',')

	var mon []byte
	if d.month >= January && d.month <= December {
		mon = []byte(monthNames[d.month-1])
	} else {
		mon = []byte(strconv.Itoa(d.month))
	}

	clock := appendPadded(nil, d.hour, 2)
	clock = append(clock, ':')
	clock = appendPadded(clock, d.minute, 2)
	clock = append(clock, ':')
	clock = appendPadded(clock, d.second, 2)

	return [][]byte{
		wd,
		appendPadded(nil, d.day, 2),
		mon,
		appendPadded(nil, d.year, 4),
		clock,
		appendZone(nil, d.zone),
	}
}

// Generate writes the date-time in the form
//
//	Mon, 02 Jan 2006 15:04:05 -0700
//
// with the day of the week worked out from the date. The zone is always
// written as a number, never a name. A month outside of 1 through 12 is
// written as a number. Lines are folded between the parts if maxLineLength
// requires it, though a date usually fits on one line.
func (d *DateTime) Generate(w io.Writer, maxLineLength, curLinePos int) (int, error) {
	f := component.NewFolder(w, maxLineLength, curLinePos, false)
	for i, tok := range d.tokens() {
		if i > 0 {
			f.Space([]byte{' '})
		}
		f.Token(tok)
	}
	return f.Flush()
}

// String returns the date-time as Generate writes it, all on one line.
func (d *DateTime) String() string {
	buf := &bytes.Buffer{}
	_, _ = d.Generate(buf, component.Infinite, 0)
	return buf.String()
}
