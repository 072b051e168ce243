// Command edidgen renders a YAML display description into a binary
// EDID 1.3/1.4 base block, optionally followed by a CTA-861 extension
// block, or validates such a description without writing output.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/edidgen/internal/xlog"
	"github.com/spf13/cobra"
)

var (
	logFormat string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "edidgen",
		Short: "edidgen renders and validates VESA EDID / CTA-861 descriptions",
		Long: `edidgen reads a YAML display description and encodes it into a
binary EDID base block, with an optional CTA-861 extension block.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			xlog.SetLevel(level)
			if logFormat == "json" {
				xlog.SetFormat(xlog.FormatJSON)
			} else {
				xlog.SetFormat(xlog.FormatText)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(encodeCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
