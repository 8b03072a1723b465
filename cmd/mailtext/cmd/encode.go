package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailtext/header/charset"
	"github.com/zostay/go-mailtext/header/component"
	"github.com/zostay/go-mailtext/header/text"
)

var (
	encodeCmd = &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text as a folded header value",
		Long: `Encode UTF-8 text as a header value, using RFC 2047 encoded-words for
whatever cannot be sent as plain ASCII and folding lines to fit. The text is
read from standard input when no arguments are given.`,
		RunE: RunEncode,
	}

	encodeCharset string
	maxLineLength int
	startColumn   int
	forceEncoding bool
	noEncoding    bool
	crlfOnly      bool
)

func init() {
	rootCmd.AddCommand(encodeCmd)

	flags := encodeCmd.Flags()
	flags.StringVarP(&encodeCharset, "charset", "c", charset.Default, "the charset to encode the text in")
	flags.IntVarP(&maxLineLength, "max", "m", component.Convenient, "the maximum line length, or 0 for no folding")
	flags.IntVar(&startColumn, "column", 0, "the column the value starts at, such as the length of \"Subject: \"")
	flags.BoolVar(&forceEncoding, "force", false, "encode everything, even plain ASCII")
	flags.BoolVar(&noEncoding, "no-encode", false, "never encode, only fold")
	flags.BoolVar(&crlfOnly, "crlf-only", false, "fold with a bare CRLF where the text has no whitespace")
}

func encodeFlags() text.Flags {
	var flags text.Flags
	if forceEncoding {
		flags |= text.ForceEncoding
	}
	if noEncoding {
		flags |= text.ForceNoEncoding
	}
	if crlfOnly {
		flags |= text.NoNewLineSequence
	}
	return flags
}

func RunEncode(cmd *cobra.Command, args []string) error {
	in, err := readValue(cmd, args)
	if err != nil {
		return err
	}

	converted, err := charset.Convert(in, charset.UTF8, encodeCharset)
	if err != nil {
		return fmt.Errorf("unable to convert text to %s: %w", encodeCharset, err)
	}

	lineLength := maxLineLength
	if lineLength <= 0 {
		lineLength = component.Infinite
	}

	tx := text.NewFromString(string(converted), encodeCharset)
	out := cmd.OutOrStdout()
	if _, err := tx.EncodeAndFold(out, lineLength, startColumn, encodeFlags()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}
