package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailtext/header/datetime"
)

// ErrMalformedDate is returned by the date command when a date does not follow
// RFC 2822 and --loose is not set.
var ErrMalformedDate = errors.New("date is not well-formed")

var (
	dateCmd = &cobra.Command{
		Use:   "date [date...]",
		Short: "Normalize a date as it would be written in a Date field",
		Long: `Parse an RFC 2822 date, including the obsolete forms, and write it back
out normalized. With --loose, many other date formats are accepted too.`,
		RunE: RunDate,
	}

	dateNow   bool
	dateLoose bool
	dateUTC   bool
)

func init() {
	rootCmd.AddCommand(dateCmd)

	flags := dateCmd.Flags()
	flags.BoolVar(&dateNow, "now", false, "print the current date and time")
	flags.BoolVar(&dateLoose, "loose", false, "guess at dates in formats other than RFC 2822")
	flags.BoolVar(&dateUTC, "utc", false, "convert the date to UTC")
}

func RunDate(cmd *cobra.Command, args []string) error {
	var d *datetime.DateTime
	if dateNow {
		d = datetime.Now()
	} else {
		in, err := readValue(cmd, args)
		if err != nil {
			return err
		}

		if dateLoose {
			d, err = datetime.ParseAny(string(in))
			if err != nil {
				return err
			}
		} else {
			var wellFormed bool
			d, wellFormed = datetime.ParseString(string(in))
			if !wellFormed {
				return fmt.Errorf("%w: %q", ErrMalformedDate, in)
			}
		}
	}

	if dateUTC {
		d = d.In(datetime.UT)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), d)
	return err
}
