// Package config loads runpath run settings from TOML or YAML files and
// turns them into solver options.
//
// Example (TOML):
//
//	mode    = "both"
//	max_run = 5
//	start   = [0, 0]
//	goal    = [12, 12]
//	render  = true
//	format  = "json"
//
// Unset fields keep their defaults: mode "standard", corner start and goal,
// preset run bounds, text output without rendering.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/runpath/grid"
	"github.com/katalvlaran/runpath/runpath"
)

// Sentinel errors for configuration handling.
var (
	// ErrUnknownFormat indicates a file extension with no decoder.
	ErrUnknownFormat = errors.New("config: unknown file format")
	// ErrDecode indicates a syntax error or an unknown key.
	ErrDecode = errors.New("config: cannot decode")
	// ErrBadMode indicates a mode other than standard, ultra or both.
	ErrBadMode = errors.New("config: mode must be standard, ultra or both")
	// ErrBadPoint indicates a start or goal that is not [row, col] with both ≥ 0.
	ErrBadPoint = errors.New("config: point must be [row, col] with non-negative values")
	// ErrBadOutput indicates an output format other than text or json.
	ErrBadOutput = errors.New("config: format must be text or json")
)

// Format names a configuration file syntax.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Mode values accepted in a Config besides the runpath preset names.
const ModeBoth = "both"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the on-disk run configuration.
type Config struct {
	Mode   string `toml:"mode" yaml:"mode"`
	MinRun *int   `toml:"min_run" yaml:"min_run"`
	MaxRun *int   `toml:"max_run" yaml:"max_run"`
	Start  []int  `toml:"start" yaml:"start"`
	Goal   []int  `toml:"goal" yaml:"goal"`
	Render bool   `toml:"render" yaml:"render"`
	Color  bool   `toml:"color" yaml:"color"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Mode:   runpath.Standard.String(),
		Format: OutputText,
	}
}

// FormatOf picks the decoder for path from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg, err := Decode(format, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads a configuration in the given format on top of Default and
// validates it. Unknown keys are rejected.
func Decode(format Format, r io.Reader) (*Config, error) {
	cfg := Default()
	switch format {
	case TOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// An empty document leaves the defaults in place.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field values. Run bounds are checked against the
// resulting rules by Options, since they combine with the mode preset.
func (c *Config) Validate() error {
	if _, err := c.Modes(); err != nil {
		return err
	}
	if _, err := point(c.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if _, err := point(c.Goal); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	switch c.Format {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: %q", ErrBadOutput, c.Format)
	}

	return nil
}

// Modes expands the mode setting into the presets to run.
func (c *Config) Modes() ([]runpath.Mode, error) {
	if strings.EqualFold(strings.TrimSpace(c.Mode), ModeBoth) {
		return []runpath.Mode{runpath.Standard, runpath.Ultra}, nil
	}
	m, err := runpath.ParseMode(c.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadMode, c.Mode)
	}

	return []runpath.Mode{m}, nil
}

// Rules returns the preset for m with any min_run / max_run overrides
// applied and validated.
func (c *Config) Rules(m runpath.Mode) (runpath.Rules, error) {
	rules := m.Rules()
	if c.MinRun != nil {
		rules.MinRun = *c.MinRun
	}
	if c.MaxRun != nil {
		rules.MaxRun = *c.MaxRun
	}
	if err := rules.Validate(); err != nil {
		return runpath.Rules{}, err
	}

	return rules, nil
}

// Options translates the configuration into solver options for mode m.
// Path reconstruction is requested when the output needs it.
func (c *Config) Options(m runpath.Mode) ([]runpath.Option, error) {
	rules, err := c.Rules(m)
	if err != nil {
		return nil, err
	}
	opts := []runpath.Option{runpath.WithRules(rules)}

	if p, err := point(c.Start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	} else if p != nil {
		opts = append(opts, runpath.WithStart(*p))
	}
	if p, err := point(c.Goal); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	} else if p != nil {
		opts = append(opts, runpath.WithGoal(*p))
	}
	if c.Render || c.Format == OutputJSON {
		opts = append(opts, runpath.WithReturnPath())
	}

	return opts, nil
}

// point converts an optional [row, col] pair. A nil slice means unset.
func point(v []int) (*grid.Pos, error) {
	if v == nil {
		return nil, nil
	}
	if len(v) != 2 || v[0] < 0 || v[1] < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadPoint, v)
	}

	return &grid.Pos{Row: v[0], Col: v[1]}, nil
}
