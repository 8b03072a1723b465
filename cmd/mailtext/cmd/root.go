package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	// the full IANA charset table, not just the defaults
	_ "github.com/zostay/go-mailtext/header/charset/encoding"
)

var rootCmd = &cobra.Command{
	Use:          "mailtext",
	Short:        "Tools for decoding and encoding mail header values",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// readValue returns the arguments joined by spaces or, when there are none,
// all of standard input without its final line break.
func readValue(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}

	in, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	in = bytes.TrimSuffix(in, []byte("\n"))
	return bytes.TrimSuffix(in, []byte("\r")), nil
}

// readFile returns the contents of the file named by the first argument or
// standard input when there is no argument or it is "-".
func readFile(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
