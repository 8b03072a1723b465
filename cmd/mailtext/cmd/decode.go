package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailtext/header/text"
)

var (
	decodeCmd = &cobra.Command{
		Use:   "decode [value...]",
		Short: "Decode the encoded-words in a header value",
		Long: `Decode the RFC 2047 encoded-words in a header value and print the
text as UTF-8. Folded input is unfolded. The value is read from standard input
when no arguments are given.`,
		RunE: RunDecode,
	}

	showWords bool
)

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().BoolVarP(&showWords, "words", "w", false, "list each word with its charset")
}

func RunDecode(cmd *cobra.Command, args []string) error {
	in, err := readValue(cmd, args)
	if err != nil {
		return err
	}

	tx, wellFormed := text.DecodeAndUnfold(string(in))
	if !wellFormed {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: value is not well-formed")
	}

	out := cmd.OutOrStdout()
	if !showWords {
		fmt.Fprintln(out, tx.DecodedText())
		return nil
	}

	for _, w := range tx.Words() {
		fmt.Fprintf(out, "%s\t%q\n", w.Charset(), w.String())
	}
	return nil
}
