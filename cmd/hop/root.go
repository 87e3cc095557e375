package main

import (
	"fmt"
	"os"

	"github.com/hadronized/hop.kak/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hop",
	Short: "hop labels editor selections for keyboard jumping",
	Long: `hop assigns short prefix-free labels to a set of selections and narrows
them one typed key at a time. Every call is stateless: the editor passes back
what the previous call emitted.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hop: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file (default: $XDG_CONFIG_HOME/hop/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log engine events to stderr")
	rootCmd.PersistentFlags().String("metrics-textfile", "", "Write Prometheus metrics to this file after the call")
	rootCmd.PersistentFlags().StringP("keyset", "k", "", "Symbols to build labels from, highest priority first")
}

// runOptions collects the flags every command shares.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	metrics, _ := cmd.Flags().GetString("metrics-textfile")
	keyset, _ := cmd.Flags().GetString("keyset")

	opts := cli.RunOptions{
		ConfigPath:      configPath,
		Debug:           debug,
		MetricsTextfile: metrics,
		Keyset:          keyset,
		Stdin:           cmd.InOrStdin(),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	}

	if f := cmd.Flags().Lookup("format"); f != nil {
		opts.Format = f.Value.String()
	}
	if cmd.Flags().Changed("strict") {
		strict, _ := cmd.Flags().GetBool("strict")
		opts.Strict = &strict
	}
	if f := cmd.Flags().Lookup("session"); f != nil {
		opts.SessionID = f.Value.String()
	}
	return opts
}

// addOutputFlags registers the flags of commands that emit hints.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Output format: text, json or pairs")
	cmd.Flags().Bool("strict", false, "Reject selection descriptors that are not line.col,line.col")
	cmd.Flags().String("session", "", "Correlation id echoed in logs and json output")
}
