package main

import (
	"github.com/hadronized/hop.kak/internal/cli"
	"github.com/spf13/cobra"
)

var hintCmd = &cobra.Command{
	Use:   "hint [SELECTION...]",
	Short: "Label a fresh set of selections",
	Long: `Allocates one label per selection and prints the pairing.
Selections are read from stdin, one or more per line, when none are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Hint(runOptions(cmd), args)
	},
}

func init() {
	rootCmd.AddCommand(hintCmd)
	addOutputFlags(hintCmd)
}
