package main

import (
	"fmt"
	"os"

	"github.com/ardnew/edidgen/edid"
	"github.com/ardnew/edidgen/edidyaml"
	"github.com/ardnew/edidgen/internal/xlog"
	"github.com/spf13/cobra"
)

var validateInput string

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a YAML description without encoding it",
		Long: `Validate a YAML display description, reporting the same
construction and cross-field errors that encode would, without writing
any output.

Examples:
  # Validate a file
  edidgen validate --in display.yaml

  # Validate from stdin
  cat display.yaml | edidgen validate`,
		RunE: runValidate,
	}

	cmd.Flags().StringVarP(&validateInput, "in", "i", "", "input YAML description (default: stdin)")

	return cmd
}

func runValidate(_ *cobra.Command, _ []string) error {
	in := os.Stdin
	if validateInput != "" {
		f, err := os.Open(validateInput) // #nosec G304 -- validateInput is a user-specified input file path from command line flag
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	description, err := edidyaml.Load(in)
	if err != nil {
		return describeError(err)
	}

	if _, err := edid.Encode(description); err != nil {
		return describeError(err)
	}

	xlog.Info(xlog.ComponentCLI, "description is valid")
	fmt.Println("OK")
	return nil
}
