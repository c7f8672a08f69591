// Package config defines the options shared by the keyscript loaders,
// parser, and resolver. Every tunable the engine consults lives here and
// is passed in explicitly; nothing reads package-level state.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied wherever an Options field is left at its zero value.
const (
	// DefaultDelimiter separates fields in data table text.
	DefaultDelimiter = ","
	// DefaultPauseSeconds is the pause duration when none is given.
	DefaultPauseSeconds = 1
	// DefaultPressRepeat is the press count when none is given.
	DefaultPressRepeat = 1
)

// Options carries the configuration for one procedure run.
type Options struct {
	// Delimiter separates fields in data table text. Default ",".
	Delimiter string `yaml:"delimiter"`

	// PauseSeconds is the duration of a bare pause. Default 1.
	PauseSeconds int `yaml:"pauseSeconds"`

	// PressRepeat is the count of a press with no repeat attribute.
	// Default 1.
	PressRepeat int `yaml:"pressRepeat"`
}

// Default returns the options used when no configuration file is given.
func Default() Options {
	return Options{
		Delimiter:    DefaultDelimiter,
		PauseSeconds: DefaultPauseSeconds,
		PressRepeat:  DefaultPressRepeat,
	}
}

// Normalize fills zero-valued fields with their defaults.
func (o Options) Normalize() Options {
	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
	}
	if o.PauseSeconds <= 0 {
		o.PauseSeconds = DefaultPauseSeconds
	}
	if o.PressRepeat <= 0 {
		o.PressRepeat = DefaultPressRepeat
	}
	return o
}

// Load reads options from a YAML file.
func Load(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader reads options from a YAML stream. Missing fields fall back
// to their defaults.
func LoadReader(r io.Reader) (Options, error) {
	var opts Options
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("decoding config: %w", err)
	}
	return opts.Normalize(), nil
}
