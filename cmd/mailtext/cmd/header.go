package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailtext/header"
)

var headerCmd = &cobra.Command{
	Use:   "header [file]",
	Short: "Show the decoded fields of a message header",
	Long: `Parse a message header and print each field with the kind of value it
holds and that value decoded. Reading stops at the first blank line, so a whole
message may be given. The header is read from standard input when no file is
named.`,
	Args: cobra.MaximumNArgs(1),
	RunE: RunHeader,
}

func init() {
	rootCmd.AddCommand(headerCmd)
}

// parseHeader parses the header found at the start of m, stopping at the
// first blank line.
func parseHeader(m []byte) ([]byte, *header.Header, error) {
	lb := header.DetectBreak(m)
	m = headerPart(m, lb)

	h, err := header.Parse(m, lb)
	var badStart *header.BadStartError
	if errors.As(err, &badStart) {
		err = nil
	}
	return m, h, err
}

func headerPart(m []byte, lb header.Break) []byte {
	if bytes.HasPrefix(m, lb.Bytes()) {
		return m[:0]
	}
	if ix := bytes.Index(m, []byte(lb+lb)); ix >= 0 {
		return m[:ix+len(lb)]
	}
	return m
}

func RunHeader(cmd *cobra.Command, args []string) error {
	in, err := readFile(cmd, args)
	if err != nil {
		return err
	}

	_, h, err := parseHeader(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range h.Fields() {
		var value string
		switch f.Kind() {
		case header.KindDateTime:
			value = f.DateTime().String()
		default:
			value = f.Text().DecodedText()
		}

		mark := ""
		if !f.WellFormed() {
			mark = " (malformed)"
		}
		fmt.Fprintf(out, "%s [%s]%s: %s\n", f.Name(), f.Kind(), mark, value)
	}

	return nil
}
