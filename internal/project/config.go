package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up from the working directory towards the root.
const ConfigFileName = "pasc.toml"

// ErrNoConfig is returned by Load when no config file exists above the start directory.
var ErrNoConfig = errors.New("no " + ConfigFileName + " found")

// Config mirrors pasc.toml. Zero values mean "use the flag default".
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
}

type CheckConfig struct {
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Jobs           int    `toml:"jobs"`
	Cache          bool   `toml:"cache"`
	Format         string `toml:"format"`
	WithNotes      bool   `toml:"with_notes"`
}

type OutputConfig struct {
	// Color is one of auto, on, off.
	Color string `toml:"color"`
}

// Manifest is a loaded config file together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
	meta   toml.MetaData
}

// IsDefined reports whether the file sets the key, e.g. ("check", "jobs").
func (m *Manifest) IsDefined(key ...string) bool {
	if m == nil {
		return false
	}
	return m.meta.IsDefined(key...)
}

var validFormats = map[string]bool{"": true, "pretty": true, "short": true, "json": true}
var validColors = map[string]bool{"": true, "auto": true, "on": true, "off": true}

// FindConfig walks up from startDir to locate pasc.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the nearest pasc.toml.
func Load(startDir string) (*Manifest, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoConfig
	}
	return LoadFile(path)
}

// LoadFile decodes and validates one config file.
func LoadFile(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Check.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("%s: [check].max_diagnostics must not be negative", path)
	}
	if cfg.Check.Jobs < 0 {
		return nil, fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	cfg.Check.Format = strings.ToLower(strings.TrimSpace(cfg.Check.Format))
	if !validFormats[cfg.Check.Format] {
		return nil, fmt.Errorf("%s: [check].format must be pretty, short or json, got %q", path, cfg.Check.Format)
	}
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
	if !validColors[cfg.Output.Color] {
		return nil, fmt.Errorf("%s: [output].color must be auto, on or off, got %q", path, cfg.Output.Color)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
		meta:   meta,
	}, nil
}
