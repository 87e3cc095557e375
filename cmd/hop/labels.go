package main

import (
	"fmt"
	"strconv"

	"github.com/hadronized/hop.kak/internal/cli"
	"github.com/spf13/cobra"
)

var labelsCmd = &cobra.Command{
	Use:   "labels N",
	Short: "Print the labels N selections would receive",
	Example: `  hop labels 30 -k asdf
  hop labels 30 -k asdf -f mermaid --typed f`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("labels: %q is not a count", args[0])
		}
		typed, _ := cmd.Flags().GetString("typed")
		return cli.Labels(runOptions(cmd), n, typed)
	},
}

func init() {
	rootCmd.AddCommand(labelsCmd)

	labelsCmd.Flags().StringP("format", "f", "", "Output format: text or mermaid")
	labelsCmd.Flags().String("typed", "", "Keys already typed, highlighted in mermaid output")
}
