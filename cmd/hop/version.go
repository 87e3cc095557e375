package main

import (
	"fmt"
	"os"
	"strings"

	hop "github.com/hadronized/hop.kak"
	"github.com/hadronized/hop.kak/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hop",
	Run: func(cmd *cobra.Command, args []string) {
		version := strings.TrimSpace(hop.Version)
		if cmd.OutOrStdout() == os.Stdout && tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(os.Stdout, version, true)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "hop version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
