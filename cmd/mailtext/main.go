package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-mailtext/cmd/mailtext/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
