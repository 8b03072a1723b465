package datetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailtext/header/component"
	"github.com/zostay/go-mailtext/header/datetime"
)

type fields struct {
	year, month, day, hour, minute, second, zone int
}

func fieldsOf(d *datetime.DateTime) fields {
	return fields{
		d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), d.Zone(),
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in         string
		want       fields
		wellFormed bool
	}{
		{"Mon, 02 Jan 06 15:04:05 EST", fields{2006, 1, 2, 15, 4, 5, -300}, true},
		{"Fri, 21 Nov 1997 09:55:06 -0600", fields{1997, 11, 21, 9, 55, 6, -360}, true},
		{"1 Jan 99 00:00 +0000", fields{1999, 1, 1, 0, 0, 0, 0}, true},
		{"1 Jan 05 00:00 +0000", fields{2005, 1, 1, 0, 0, 0, 0}, true},
		{"1 Jan 70 00:00 +0000", fields{1970, 1, 1, 0, 0, 0, 0}, true},
		{"1 Jan 69 00:00 +0000", fields{2069, 1, 1, 0, 0, 0, 0}, true},
		{"1 Jan 1970 00:00 +0000", fields{1970, 1, 1, 0, 0, 0, 0}, true},
		{"1 Jan 103 00:00 +0000", fields{2003, 1, 1, 0, 0, 0, 0}, true},
		{"Xyz, 01 Jan 2021 00:00:00 +0000", fields{2021, 1, 1, 0, 0, 0, 0}, true},
		{"Sun, 01 Jan 2021 00:00:00 +0000", fields{2021, 1, 1, 0, 0, 0, 0}, true},
		{"Thu, 13 Feb 1969 23:32:54 -0330", fields{1969, 2, 13, 23, 32, 54, -210}, true},
		{"Thu, 13 Feb 1969 23:32 +0530", fields{1969, 2, 13, 23, 32, 0, 330}, true},
		{"2 march 2010 10:00:00 GMT", fields{2010, 3, 2, 10, 0, 0, 0}, true},
		{"2 DECEMBER 2010 10:00:00 UT", fields{2010, 12, 2, 10, 0, 0, 0}, true},
		{"  Tue (day) ,\r\n 1 (the (first)) Jun 2010 10 : 20 : 30 PDT (Pacific) ",
			fields{2010, 6, 1, 10, 20, 30, -420}, true},
		{"1 Jun 2010 10:20:30 Z", fields{2010, 6, 1, 10, 20, 30, 0}, true},

		{"1 Jun 2010 10:20:30 XYZ", fields{2010, 6, 1, 10, 20, 30, 0}, false},
		{"1 Jun 2010 10:20:30 +530", fields{2010, 6, 1, 10, 20, 30, 330}, false},
		{"1 Jun 2010 10:20:30", fields{2010, 6, 1, 10, 20, 30, 0}, false},
		{"1 Foo 2010 10:20:30 +0100", fields{2010, 0, 1, 10, 20, 30, 60}, false},
		{"1 Jun 2010 10:20:30 +0100 trailing", fields{2010, 6, 1, 10, 20, 30, 60}, false},
		{"1 Jun 2010 10:20:30 +0100 (open", fields{2010, 6, 1, 10, 20, 30, 60}, false},
		{"Mon 1 Jun 2010 10:20:30 +0100", fields{2010, 6, 1, 10, 20, 30, 60}, false},
		{"Mon, 99999999999999999999999 Jan 2006 15:04:05 +0000",
			fields{2006, 1, 999999999, 15, 4, 5, 0}, false},
		{"1 Jun 2010 10:20:30 +00000000000000000100", fields{2010, 6, 1, 10, 20, 30, 0}, false},
		{"", fields{}, false},
		{"garbage", fields{}, false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			d, wellFormed := datetime.ParseString(c.in)
			assert.Equal(t, c.want, fieldsOf(d))
			assert.Equal(t, c.wellFormed, wellFormed)
		})
	}
}

func TestParse_MilitaryZones(t *testing.T) {
	t.Parallel()

	want := map[string]int{
		"A": -60, "I": -540, "K": -600, "M": -720,
		"N": 60, "Y": 720,
		"Z": 0, "GMT": 0, "UT": 0,
	}
	for name, zone := range want {
		d, wellFormed := datetime.ParseString("1 Jan 2000 00:00:00 " + name)
		assert.True(t, wellFormed, name)
		assert.Equal(t, zone, d.Zone(), name)
	}

	_, ok := datetime.ZoneOffset("J")
	assert.False(t, ok)

	d, wellFormed := datetime.ParseString("1 Jan 2000 00:00:00 J")
	assert.False(t, wellFormed)
	assert.Equal(t, 0, d.Zone())

	// names are case-sensitive
	_, ok = datetime.ZoneOffset("est")
	assert.False(t, ok)
}

func TestDateTime_Parse(t *testing.T) {
	t.Parallel()

	buf := []byte("Date: Tue, 1 Jun 2010 10:20:30 +0100\r\n")

	d := datetime.New(1, 2, 3, 4, 5, 6, 7)
	res, err := d.Parse(buf, 6, len(buf)-2)
	require.NoError(t, err)
	assert.Equal(t, component.Result{NewPosition: len(buf) - 2, WellFormed: true}, res)
	assert.Equal(t, fields{2010, 6, 1, 10, 20, 30, 60}, fieldsOf(d))

	res, err = d.Parse(buf, 0, 100)
	assert.ErrorIs(t, err, component.ErrRange)
	assert.Equal(t, 0, res.NewPosition)
	assert.Equal(t, fields{2010, 6, 1, 10, 20, 30, 60}, fieldsOf(d))
}

func TestParseAny(t *testing.T) {
	t.Parallel()

	d, err := datetime.ParseAny("Mon, 02 Jan 2006 15:04:05 -0700")
	require.NoError(t, err)
	assert.Equal(t, fields{2006, 1, 2, 15, 4, 5, -420}, fieldsOf(d))

	d, err = datetime.ParseAny("2006-01-02T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, fields{2006, 1, 2, 15, 4, 5, 0}, fieldsOf(d))

	d, err = datetime.ParseAny("2012-08-03 18:31:59.257000000 +0000 UTC")
	require.NoError(t, err)
	assert.True(t, d.Time().Equal(time.Date(2012, 8, 3, 18, 31, 59, 0, time.UTC)))

	d, err = datetime.ParseAny("Mon Jan 02 15:04:05 2006 MST")
	require.NoError(t, err)
	y, mo, dd := d.Date()
	h, m, sec := d.Clock()
	assert.Equal(t, []int{2006, 1, 2, 15, 4, 5}, []int{y, mo, dd, h, m, sec})

	_, err = datetime.ParseAny("not a date at all")
	assert.ErrorIs(t, err, datetime.ErrUnparseable)
}
