package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pasc/internal/diagfmt"
	"pasc/internal/driver"
	"pasc/internal/expr"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] <expression>",
		Short: "Infer the type of an expression and fold it",
		Long: `Evaluate a constant expression. With --program the declarations of that
file are visible to the expression`,
		Example: `  pasc eval '1 + 2 * 3'
  pasc eval --program decls.pas 'n div 2'`,
		Args: cobra.ExactArgs(1),
		RunE: runEval,
	}
	cmd.Flags().String("program", "", "source file whose declarations the expression may use")
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	programPath, err := cmd.Flags().GetString("program")
	if err != nil {
		return fmt.Errorf("failed to get program flag: %w", err)
	}

	ctx := expr.NoContext
	if programPath != "" {
		checked, checkErr := driver.CheckFile(cmd.Context(), programPath, driver.Options{MaxDiagnostics: s.maxDiagnostics})
		if checkErr != nil {
			return checkErr
		}
		if checked.Bag.HasErrors() || checked.Sema == nil || checked.Sema.Program == nil {
			diagfmt.Pretty(cmd.ErrOrStderr(), checked.Bag, checked.FileSet, diagfmt.PrettyOpts{Color: s.useColor(os.Stderr)})
			return errDiagnostics
		}
		ctx = checked.Sema.Program
	}

	res := driver.Eval(args[0], ctx)
	if res.HasErrors() {
		if err := diagfmt.Throwables(cmd.ErrOrStderr(), res.Errors, res.Mapper, s.useColor(os.Stderr)); err != nil {
			return err
		}
		return errDiagnostics
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "type:  %s\n", res.Type)
	if res.Value != nil {
		fmt.Fprintf(out, "value: %d\n", *res.Value)
	} else {
		fmt.Fprintln(out, "value: not foldable")
	}
	return nil
}
