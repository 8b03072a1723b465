// Package datetime parses and generates the date-time values found in the
// Date and Resent-Date header fields, following the RFC 2822 grammar along
// with the obsolete forms still seen in older mail.
//
// A DateTime holds its fields exactly as given. Nothing is checked against the
// calendar, so a month of 13 parses, is stored, and is generated again as-is.
// Call Time to get a normalized time.Time.
package datetime

import (
	"time"

	"github.com/zostay/go-mailtext/header/component"
)

// Months of the year, as stored in a DateTime.
const (
	January = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Days of the week, as returned by DayOfWeek.
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DateTime is a calendar date and time of day with the offset of its time zone
// from UTC, in minutes. The zero value is midnight, day 0 of month 0 of year 0,
// in UTC.
//
// A DateTime has no references to anything else, so it is copied by plain
// assignment.
type DateTime struct {
	year   int
	month  int
	day    int
	hour   int
	minute int
	second int
	zone   int
}

var _ component.Component = (*DateTime)(nil)

// New returns a DateTime made from the given fields. The zone is the offset
// from UTC in minutes, such as EST or GMTPlus1.
func New(year, month, day, hour, minute, second, zone int) *DateTime {
	return &DateTime{
		year:   year,
		month:  month,
		day:    day,
		hour:   hour,
		minute: minute,
		second: second,
		zone:   zone,
	}
}

// NewDate returns a DateTime for midnight UTC on the given day.
func NewDate(year, month, day int) *DateTime {
	return New(year, month, day, 0, 0, 0, GMT)
}

// FromTime returns a DateTime holding the wall clock fields of t and the
// offset of its location, truncated to whole minutes.
func FromTime(t time.Time) *DateTime {
	_, offset := t.Zone()
	return New(t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), offset/60)
}

// Now returns the current local time.
func Now() *DateTime {
	return FromTime(time.Now())
}

// Year returns the year.
func (d *DateTime) Year() int { return d.year }

// Month returns the month, which is 1 for January when in range.
func (d *DateTime) Month() int { return d.month }

// Day returns the day of the month.
func (d *DateTime) Day() int { return d.day }

// Hour returns the hour of the day.
func (d *DateTime) Hour() int { return d.hour }

// Minute returns the minute of the hour.
func (d *DateTime) Minute() int { return d.minute }

// Second returns the second of the minute.
func (d *DateTime) Second() int { return d.second }

// Zone returns the offset from UTC in minutes.
func (d *DateTime) Zone() int { return d.zone }

// Weekday returns the day of the week of the date, with Sunday as 0.
func (d *DateTime) Weekday() int {
	return DayOfWeek(d.year, d.month, d.day)
}

// Date returns the year, month, and day.
func (d *DateTime) Date() (year, month, day int) {
	return d.year, d.month, d.day
}

// Clock returns the hour, minute, and second.
func (d *DateTime) Clock() (hour, minute, second int) {
	return d.hour, d.minute, d.second
}

// SetYear sets the year. No range check is made.
func (d *DateTime) SetYear(year int) { d.year = year }

// SetMonth sets the month, with January as 1. No range check is made.
func (d *DateTime) SetMonth(month int) { d.month = month }

// SetDay sets the day of the month. No range check is made.
func (d *DateTime) SetDay(day int) { d.day = day }

// SetHour sets the hour of the day. No range check is made.
func (d *DateTime) SetHour(hour int) { d.hour = hour }

// SetMinute sets the minute of the hour. No range check is made.
func (d *DateTime) SetMinute(minute int) { d.minute = minute }

// SetSecond sets the second of the minute. No range check is made.
func (d *DateTime) SetSecond(second int) { d.second = second }

// SetZone sets the offset from UTC in minutes. No range check is made.
func (d *DateTime) SetZone(zone int) { d.zone = zone }

// SetDate sets the year, month, and day.
func (d *DateTime) SetDate(year, month, day int) {
	d.year, d.month, d.day = year, month, day
}

// SetTime sets the time of day and the zone.
func (d *DateTime) SetTime(hour, minute, second, zone int) {
	d.hour, d.minute, d.second, d.zone = hour, minute, second, zone
}

// Location returns a fixed time.Location for the zone offset.
func (d *DateTime) Location() *time.Location {
	return time.FixedZone("", d.zone*60)
}

// Time returns the DateTime as a time.Time. Fields out of their usual range
// are normalized the way time.Date does it, so October 32 becomes November 1.
func (d *DateTime) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day,
		d.hour, d.minute, d.second, 0, d.Location())
}

// In returns the same instant as seen from the given zone offset.
func (d *DateTime) In(zone int) *DateTime {
	return FromTime(d.Time().In(time.FixedZone("", zone*60)))
}

// Equal reports whether both describe the same instant, even when their
// zones differ.
func (d *DateTime) Equal(o *DateTime) bool {
	return d.Time().Equal(o.Time())
}
