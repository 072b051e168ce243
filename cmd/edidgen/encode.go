package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ardnew/edidgen/edid"
	"github.com/ardnew/edidgen/edidyaml"
	"github.com/ardnew/edidgen/internal/xlog"
	"github.com/spf13/cobra"
)

var (
	encodeInput  string
	encodeOutput string
)

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a YAML description into a binary EDID",
		Long: `Encode a YAML display description into a binary EDID base block,
with an optional CTA-861 extension block.

Examples:
  # Encode to a file
  edidgen encode --in display.yaml --out display.bin

  # Encode to stdout
  edidgen encode --in display.yaml`,
		RunE: runEncode,
	}

	cmd.Flags().StringVarP(&encodeInput, "in", "i", "", "input YAML description (default: stdin)")
	cmd.Flags().StringVarP(&encodeOutput, "out", "o", "", "output binary EDID (default: stdout)")

	return cmd
}

func runEncode(_ *cobra.Command, _ []string) error {
	in := os.Stdin
	if encodeInput != "" {
		f, err := os.Open(encodeInput) // #nosec G304 -- encodeInput is a user-specified input file path from command line flag
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

	blob, err := edid.Encode(description)
	if err != nil {
		return describeError(err)
	}
	xlog.Info(xlog.ComponentCLI, "encoded description", "bytes", len(blob))

	out := os.Stdout
	if encodeOutput != "" {
		f, err := os.Create(encodeOutput) // #nosec G304 -- encodeOutput is a user-specified output file path from command line flag
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if _, err := out.Write(blob); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// describeError renders the structured edid error kinds with their field
// context, falling back to the plain error text for anything else.
func describeError(err error) error {
	var ife *edid.InvalidFieldError
	if errors.As(err, &ife) {
		return fmt.Errorf("invalid field %s: %s", ife.Field, ife.Reason)
	}
	var cfe *edid.CrossFieldError
	if errors.As(err, &cfe) {
		return fmt.Errorf("invalid combination of fields %v: %s", cfe.Fields, cfe.Reason)
	}
	var vue *edid.VersionUnsupportedError
	if errors.As(err, &vue) {
		return fmt.Errorf("field %s is not supported under EDID release %s", vue.Field, vue.Release)
	}
	var soe *edid.SlotOverflowError
	if errors.As(err, &soe) {
		return fmt.Errorf("%s overflowed: needed %d, available %d", soe.Region, soe.Needed, soe.Available)
	}
	var mre *edid.MissingRequiredError
	if errors.As(err, &mre) {
		return fmt.Errorf("field %s is required under EDID release %s", mre.Field, mre.Release)
	}
	return err
}
