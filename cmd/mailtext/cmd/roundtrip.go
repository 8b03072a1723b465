package cmd

import (
	"bytes"
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [file]",
	Short: "Shows the diff of a message header round-trip",
	Long: `Parse a message header and generate it again, then show how the output
differs from the input. Differences in folding and encoding are expected. The
header is read from standard input when no file is named.`,
	Args: cobra.MaximumNArgs(1),
	RunE: RunRoundtrip,
}

func init() {
	rootCmd.AddCommand(roundtripCmd)
}

func RunRoundtrip(cmd *cobra.Command, args []string) error {
	in, err := readFile(cmd, args)
	if err != nil {
		return err
	}

	orig, h, err := parseHeader(in)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	if _, err := h.WriteTo(buf); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if bytes.Equal(orig, buf.Bytes()) {
		fmt.Fprintln(out, "no changes")
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(orig), buf.String(), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	fmt.Fprintln(out, dmp.DiffPrettyText(diffs))
	return nil
}
