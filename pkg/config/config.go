// Package config defines the rogfanctl configuration file.
package config

import (
	"path/filepath"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/rog-community/rogfanctl/pkg/board"
	"github.com/rog-community/rogfanctl/pkg/curve"
)

type Config struct {
	// Board overrides DMI auto-detection, e.g. "GA401IV".
	Board  string   `yaml:"board,omitempty" mapstructure:"board"`
	Curves CurveSet `yaml:"curves" mapstructure:"curves"`
}

// CurveSet holds one config-string curve per fan. Empty entries fall back
// to the vendor default curve.
type CurveSet struct {
	Cpu string `yaml:"cpu,omitempty" mapstructure:"cpu"`
	Gpu string `yaml:"gpu,omitempty" mapstructure:"gpu"`
}

// CurveFor returns the configured curve string for f, which may be empty.
func (c Config) CurveFor(f board.Fan) string {
	switch f {
	case board.FanCpu:
		return c.Curves.Cpu
	case board.FanGpu:
		return c.Curves.Gpu
	default:
		return ""
	}
}

// Default returns a config seeded with the vendor default curve for both
// fans, so a freshly written file shows the expected format.
func Default() Config {
	defaultCurve := curve.New().ConfigString()
	return Config{
		Curves: CurveSet{
			Cpu: defaultCurve,
			Gpu: defaultCurve,
		},
	}
}

// Ensure writes the default config to path unless a file already exists
// there. Existing files are never touched.
func Ensure(fs afero.Fs, path string) humane.Error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return humane.Wrap(err, "failed to check for an existing configuration file",
			"ensure "+path+" is readable",
		)
	}
	if exists {
		return nil
	}

	raw, err := yaml.Marshal(Default())
	if err != nil {
		return humane.Wrap(err, "failed to render the default configuration")
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return humane.Wrap(err, "failed to create the configuration directory",
			"ensure "+filepath.Dir(path)+" is writable",
		)
	}
	if err := afero.WriteFile(fs, path, raw, 0o644); err != nil {
		return humane.Wrap(err, "failed to write the default configuration file",
			"ensure "+path+" is writable",
		)
	}

	return nil
}
