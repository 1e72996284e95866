package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pasc/internal/project"
)

// settings are flag values merged with pasc.toml. Flags set on the command
// line win over the file.
type settings struct {
	color          string
	maxDiagnostics int
	timings        bool
	manifest       *project.Manifest
}

func loadManifest(cmd *cobra.Command) (*project.Manifest, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return project.LoadFile(path)
	}
	m, err := project.Load(".")
	if errors.Is(err, project.ErrNoConfig) {
		return nil, nil
	}
	return m, err
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	pf := cmd.Root().PersistentFlags()
	colorFlag, err := pf.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	maxDiagnostics, err := pf.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timings, err := pf.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	manifest, err := loadManifest(cmd)
	if err != nil {
		return nil, err
	}

	s := &settings{color: strings.ToLower(colorFlag), maxDiagnostics: maxDiagnostics, timings: timings, manifest: manifest}
	if manifest != nil {
		if !pf.Changed("color") && manifest.Config.Output.Color != "" {
			s.color = manifest.Config.Output.Color
		}
		if !pf.Changed("max-diagnostics") && manifest.IsDefined("check", "max_diagnostics") {
			s.maxDiagnostics = manifest.Config.Check.MaxDiagnostics
		}
	}
	switch s.color {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.color)
	}
	if s.maxDiagnostics < 0 {
		return nil, fmt.Errorf("--max-diagnostics must not be negative")
	}
	return s, nil
}

// useColor resolves auto against the stream the output goes to.
func (s *settings) useColor(f *os.File) bool {
	switch s.color {
	case "on":
		return true
	case "off":
		return false
	default:
		return f != nil && isTerminal(f)
	}
}
