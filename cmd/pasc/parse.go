package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pasc/internal/diagfmt"
	"pasc/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.pas>",
		Short: "Parse a Pascal source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	result, err := driver.Parse(args[0], s.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatASTJSON(out, result.Builder, result.FileID)
	} else {
		err = diagfmt.FormatASTPretty(out, result.Builder, result.FileID, result.FileSet)
	}
	if err != nil {
		return fmt.Errorf("failed to format syntax tree: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     s.useColor(os.Stderr),
			ShowNotes: true,
		})
	}
	if result.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}
