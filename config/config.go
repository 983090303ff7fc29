package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hb9tf/profilegen/export"
	"github.com/hb9tf/profilegen/sdr"
	"github.com/hb9tf/profilegen/wizard"
)

const (
	OutputFile   = "file"
	OutputStdout = "stdout"
)

// Config represents the optional YAML configuration file.
type Config struct {
	Output    string   `yaml:"output"`
	OutFile   string   `yaml:"outFile"`
	Open      *bool    `yaml:"open"`
	Inclusive bool     `yaml:"inclusive"`
	Defaults  Defaults `yaml:"defaults"`
}

// Defaults preselects answers of the interactive prompts. The enum fields
// are pointers so that an explicit zero value is validated instead of being
// replaced by the built-in default.
type Defaults struct {
	Prefix     string   `yaml:"prefix"`
	Suffix     string   `yaml:"suffix"`
	SampleRate *float64 `yaml:"sampleRate"` // MS/s
	Modulation *string  `yaml:"modulation"`
	TuningStep *int64   `yaml:"tuningStep"` // Hz
}

// Default returns the configuration used without a file.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the configuration from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file %q: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = OutputFile
	}
	if c.OutFile == "" {
		c.OutFile = export.DefaultFile
	}
	if c.Open == nil {
		open := true
		c.Open = &open
	}
	if c.Defaults.SampleRate == nil {
		rate := sdr.DefaultSampleRate.MSps()
		c.Defaults.SampleRate = &rate
	}
	if c.Defaults.Modulation == nil {
		mod := sdr.DefaultModulation.String()
		c.Defaults.Modulation = &mod
	}
	if c.Defaults.TuningStep == nil {
		step := sdr.DefaultTuningStep.Hz()
		c.Defaults.TuningStep = &step
	}
}

func (c *Config) Validate() error {
	switch c.Output {
	case OutputFile, OutputStdout:
	default:
		return fmt.Errorf("%q is not a supported output, pick one of: %s, %s", c.Output, OutputFile, OutputStdout)
	}
	_, err := c.Defaults.Wizard()
	return err
}

// ShouldOpen reports whether the written file is shown to the user.
func (c *Config) ShouldOpen() bool {
	return c.Output == OutputFile && c.Open != nil && *c.Open
}

// Wizard converts the defaults into typed prompt defaults. Unset fields map to
// the sdr defaults.
func (d Defaults) Wizard() (wizard.Defaults, error) {
	rate, mod, step := sdr.DefaultSampleRate, sdr.DefaultModulation, sdr.DefaultTuningStep
	var err error
	if d.SampleRate != nil {
		if rate, err = sdr.ParseSampleRate(*d.SampleRate); err != nil {
			return wizard.Defaults{}, fmt.Errorf("defaults.sampleRate: %w", err)
		}
	}
	if d.Modulation != nil {
		if mod, err = sdr.ParseModulation(*d.Modulation); err != nil {
			return wizard.Defaults{}, fmt.Errorf("defaults.modulation: %w", err)
		}
	}
	if d.TuningStep != nil {
		if step, err = sdr.ParseTuningStep(*d.TuningStep); err != nil {
			return wizard.Defaults{}, fmt.Errorf("defaults.tuningStep: %w", err)
		}
	}
	return wizard.Defaults{
		Prefix:     d.Prefix,
		Suffix:     d.Suffix,
		SampleRate: rate,
		Modulation: mod,
		TuningStep: step,
	}, nil
}
