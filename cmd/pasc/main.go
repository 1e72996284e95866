package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pasc/internal/version"
)

// errDiagnostics marks a run that already printed its errors; main only
// sets the exit status for it.
var errDiagnostics = errors.New("errors reported")

// cli owns the command tree and whatever the pre-run hooks opened.
type cli struct {
	root     *cobra.Command
	cleanups []func()
}

func newCLI() *cli {
	c := &cli{}
	root := &cobra.Command{
		Use:           "pasc",
		Short:         "Pascal front end: lexer, parser and declaration checker",
		Long:          `pasc checks Pascal declaration sections: constants, types and variables`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadSettings(cmd); err != nil {
				return err
			}
			stopProf, err := setupProfiling(cmd)
			if err != nil {
				return err
			}
			c.cleanups = append(c.cleanups, stopProf)
			stopTrace, err := setupTracing(cmd)
			if err != nil {
				return err
			}
			c.cleanups = append(c.cleanups, stopTrace)
			return nil
		},
	}
	c.root = root

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file, 0 for no limit")
	pf.String("config", "", "path to pasc.toml (default: search upwards from the working directory)")
	pf.String("trace", "", "trace output file, - for stderr")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "events kept by the ring buffer")
	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newEvalCmd())
	root.AddCommand(newVersionCmd())
	return c
}

// execute runs the command and then the cleanups in reverse order, also
// when the command failed.
func (c *cli) execute() error {
	defer func() {
		for i := len(c.cleanups) - 1; i >= 0; i-- {
			c.cleanups[i]()
		}
		c.cleanups = nil
	}()
	return c.root.Execute()
}

// main builds the CLI and runs it. Any error, printed diagnostics included,
// exits with status 1.
func main() {
	app := newCLI()
	defer dumpTraceOnPanic(app.root)
	if err := app.execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
