package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pasc/internal/diag"
	"pasc/internal/diagfmt"
	"pasc/internal/driver"
	"pasc/internal/source"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <file.pas|dir>...",
		Short: "Check declarations of Pascal source files",
		Long:  `Parse and check const, type and var sections; directories are searched for .pas files recursively`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().Bool("cache", false, "reuse diagnostics of unchanged files from the disk cache")
	cmd.Flags().Bool("with-notes", false, "include diagnostic notes")
	cmd.Flags().Bool("full-path", false, "print absolute paths")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	return cmd
}

type checkFlags struct {
	format    string
	jobs      int
	cache     bool
	withNotes bool
	fullPath  bool
	ui        progressView
}

func readCheckFlags(cmd *cobra.Command, s *settings) (checkFlags, error) {
	var out checkFlags
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return out, fmt.Errorf("failed to get format flag: %w", err)
	}
	if out.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return out, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if out.cache, err = cmd.Flags().GetBool("cache"); err != nil {
		return out, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if out.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return out, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if out.fullPath, err = cmd.Flags().GetBool("full-path"); err != nil {
		return out, fmt.Errorf("failed to get full-path flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return out, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if out.ui, err = parseProgressView(uiValue); err != nil {
		return out, err
	}
	out.format = strings.ToLower(format)

	if m := s.manifest; m != nil {
		cfg := m.Config.Check
		if !cmd.Flags().Changed("format") && cfg.Format != "" {
			out.format = cfg.Format
		}
		if !cmd.Flags().Changed("jobs") && m.IsDefined("check", "jobs") {
			out.jobs = cfg.Jobs
		}
		if !cmd.Flags().Changed("cache") && m.IsDefined("check", "cache") {
			out.cache = cfg.Cache
		}
		if !cmd.Flags().Changed("with-notes") && m.IsDefined("check", "with_notes") {
			out.withNotes = cfg.WithNotes
		}
	}
	switch out.format {
	case "pretty", "short", "json":
	default:
		return out, fmt.Errorf("unknown format: %s", out.format)
	}
	if out.jobs < 0 {
		return out, fmt.Errorf("--jobs must not be negative")
	}
	return out, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	flags, err := readCheckFlags(cmd, s)
	if err != nil {
		return err
	}

	files, err := driver.ExpandPaths(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", driver.SourceExt)
	}

	opts := driver.Options{MaxDiagnostics: s.maxDiagnostics, Jobs: flags.jobs}
	if flags.cache {
		cache, cacheErr := driver.OpenDiskCache("pasc")
		if cacheErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", cacheErr)
		} else {
			opts.Cache = cache
		}
	}

	var (
		fs      *source.FileSet
		results []*driver.CheckResult
	)
	if flags.ui.enabled(len(files), flags.format, os.Stdout) {
		fs, results, err = runCheckWithUI(cmd.Context(), "pasc check", files, opts)
	} else {
		fs, results, err = driver.CheckFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeCheckOutput(out, fs, results, flags, s.useColor(os.Stdout)); err != nil {
		return err
	}
	if s.timings {
		writeTimings(cmd.ErrOrStderr(), results)
	}
	for _, res := range results {
		if res.Bag.HasErrors() {
			return errDiagnostics
		}
	}
	return nil
}

func writeCheckOutput(out io.Writer, fs *source.FileSet, results []*driver.CheckResult, flags checkFlags, useColor bool) error {
	pathMode := diagfmt.PathModeAuto
	if flags.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	switch flags.format {
	case "json":
		bags := make([]*diag.Bag, 0, len(results))
		for _, res := range results {
			bags = append(bags, res.Bag)
		}
		return diagfmt.JSON(out, bags, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     flags.withNotes,
		})
	case "short":
		for _, res := range results {
			if err := diagfmt.Short(out, res.Bag, fs, flags.withNotes); err != nil {
				return err
			}
		}
	default:
		opts := diagfmt.PrettyOpts{Color: useColor, PathMode: pathMode, ShowNotes: flags.withNotes}
		for _, res := range results {
			diagfmt.Pretty(out, res.Bag, fs, opts)
		}
	}
	return nil
}

func writeTimings(w io.Writer, results []*driver.CheckResult) {
	for _, res := range results {
		if res.Timer == nil {
			continue
		}
		suffix := ""
		if res.Cached {
			suffix = " (cached)"
		}
		fmt.Fprintf(w, "%s%s\n%s", res.Path, suffix, res.Timer.Summary())
	}
}
