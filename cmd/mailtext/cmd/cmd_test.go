package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailtext/header/datetime"
)

func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the command tree, which holds its flags in package variables,
// so these tests must not run in parallel.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDecode(t *testing.T) {
	out, _, err := run(t, "", "decode", "=?utf-8?Q?caf=C3=A9?=", "time")
	require.NoError(t, err)
	assert.Equal(t, "café time\n", out)

	out, _, err = run(t, "", "decode", "--words", "Hello =?ISO-8859-1?Q?w=F6rld?=")
	require.NoError(t, err)
	assert.Equal(t, "us-ascii\t\"Hello \"\niso-8859-1\t\"wörld\"\n", out)

	out, errOut, err := run(t, "=?utf-8?X?abc?=\n", "decode")
	require.NoError(t, err)
	assert.Equal(t, "=?utf-8?X?abc?=\n", out)
	assert.Contains(t, errOut, "not well-formed")
}

func TestEncode(t *testing.T) {
	out, _, err := run(t, "", "encode", "--charset", "iso-8859-1", "Linux dans un téléphone mobile")
	require.NoError(t, err)
	assert.Equal(t, "Linux dans un =?iso-8859-1?Q?t=E9l=E9phone?= mobile\n", out)

	out, _, err = run(t, "Hello\n", "encode", "--force")
	require.NoError(t, err)
	assert.Equal(t, "=?us-ascii?Q?Hello?=\n", out)

	out, _, err = run(t, "", "encode", "--max", "20", "The quick brown fox jumps over the lazy dog")
	require.NoError(t, err)
	assert.Equal(t, "The quick brown fox\r\n jumps over the lazy\r\n dog\n", out)

	out, _, err = run(t, "", "encode", "--no-encode", "--force", "naïve")
	require.NoError(t, err)
	assert.Equal(t, "naïve\n", out)

	_, _, err = run(t, "", "encode", "--charset", "x-no-such-charset", "é")
	assert.Error(t, err)
}

func TestDate(t *testing.T) {
	out, _, err := run(t, "", "date", "Mon, 02 Jan 06 15:04:05 EST")
	require.NoError(t, err)
	assert.Equal(t, "Mon, 02 Jan 2006 15:04:05 -0500\n", out)

	out, _, err = run(t, "Mon, 02 Jan 06 15:04:05 EST\n", "date", "--utc")
	require.NoError(t, err)
	assert.Equal(t, "Mon, 02 Jan 2006 20:04:05 +0000\n", out)

	_, _, err = run(t, "", "date", "2006-01-02T15:04:05Z")
	assert.ErrorIs(t, err, ErrMalformedDate)

	out, _, err = run(t, "", "date", "--loose", "2006-01-02T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, "Mon, 02 Jan 2006 15:04:05 +0000\n", out)

	out, _, err = run(t, "", "date", "--now")
	require.NoError(t, err)
	_, wellFormed := datetime.ParseString(out)
	assert.True(t, wellFormed)
}

const message = "Subject: =?utf-8?B?SGkg4pi6?=\r\n" +
	"Date: Fri, 21 Nov 1997 09:55:06 -0600\r\n" +
	"\r\n" +
	"Date: not part of the header\r\n"

func TestHeader(t *testing.T) {
	out, _, err := run(t, message, "header")
	require.NoError(t, err)
	assert.Equal(t,
		"Subject [text]: Hi ☺\n"+
			"Date [date-time]: Fri, 21 Nov 1997 09:55:06 -0600\n",
		out,
	)

	out, _, err = run(t, "Date: whenever\n\n", "header", "-")
	require.NoError(t, err)
	assert.Equal(t, "Date [date-time] (malformed): Tue, 00 0 0000 00:00:00 +0000\n", out)
}

func TestRoundtrip(t *testing.T) {
	out, _, err := run(t, "Subject: hi\r\nDate: Fri, 21 Nov 1997 09:55:06 -0600\r\n\r\nbody\r\n", "roundtrip")
	require.NoError(t, err)
	assert.Equal(t, "no changes\n", out)

	out, _, err = run(t, "Subject: hi\nDate: 21 Nov 97 09:55:06 CST\n", "roundtrip")
	require.NoError(t, err)
	assert.Contains(t, out, "Fri, ")
	assert.Contains(t, out, "-0600")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "mailtext v0.1.0\n", out)

	_, _, err = run(t, "", "version", "--at-least", "0.0.1")
	assert.NoError(t, err)

	_, _, err = run(t, "", "version", "--at-least", "9.0.0")
	assert.Error(t, err)

	_, _, err = run(t, "", "version", "--at-least", "nope")
	assert.Error(t, err)
}
