package cmd

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
	"github.com/spf13/cobra"

	mailtext "github.com/zostay/go-mailtext"
)

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version of mailtext",
		Args:  cobra.NoArgs,
		RunE:  RunVersion,
	}

	atLeast string
)

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVar(&atLeast, "at-least", "", "fail unless the version is at least this one")
}

func RunVersion(cmd *cobra.Command, args []string) error {
	v, err := semver.NewVersion(mailtext.Version)
	if err != nil {
		return fmt.Errorf("bad version %q: %w", mailtext.Version, err)
	}

	if atLeast != "" {
		want, err := semver.NewVersion(atLeast)
		if err != nil {
			return fmt.Errorf("bad version %q: %w", atLeast, err)
		}

		if v.LessThan(*want) {
			return fmt.Errorf("mailtext version %s is older than %s", v, want)
		}
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "mailtext v%s\n", v)
	return err
}
