package wizard

import (
	"errors"
	"math"

	"github.com/hb9tf/profilegen/profile"
	"github.com/hb9tf/profilegen/prompt"
	"github.com/hb9tf/profilegen/sdr"
)

// ErrCanceled is returned when the user declines to start.
var ErrCanceled = errors.New("profile generation canceled")

var (
	errNotPositive = errors.New("please enter a positive number")
	errEndBelow    = errors.New("end frequency must be greater than start frequency")
)

// Defaults preselects answers. Zero values fall back to the sdr defaults.
type Defaults struct {
	Prefix     string
	Suffix     string
	SampleRate sdr.SampleRate
	Modulation sdr.Modulation
	TuningStep sdr.TuningStep
}

// Ask runs the interactive question sequence and returns the generator
// options. Declining the initial confirmation returns ErrCanceled.
func Ask(p *prompt.Prompter, defaults Defaults) (*profile.Options, error) {
	p.Printf("Welcome to the Profile Generator!\n")
	p.Printf("This tool will help you generate configuration profiles.\n")

	ready, err := p.Confirm("Are you ready to generate profiles?", true)
	if err != nil {
		return nil, err
	}
	if !ready {
		return nil, ErrCanceled
	}

	opts := &profile.Options{}
	if opts.StartMHz, err = p.Number("Enter the start frequency in MHz (e.g., 400):", validateStart); err != nil {
		return nil, err
	}
	if opts.EndMHz, err = p.Number("Enter the end frequency in MHz (e.g., 460):", validateEnd(opts.StartMHz)); err != nil {
		return nil, err
	}
	if opts.Prefix, err = p.Input("Insert the text BEFORE the profile name:", defaults.Prefix); err != nil {
		return nil, err
	}
	if opts.Suffix, err = p.Input("Insert the text AFTER the profile name:", defaults.Suffix); err != nil {
		return nil, err
	}

	if opts.SampleRate, err = choose(p, "Select the sample rate (MS/s):", sdr.SampleRateOptions(), orDefault(defaults.SampleRate, sdr.DefaultSampleRate)); err != nil {
		return nil, err
	}
	if opts.Modulation, err = choose(p, "Select the modulation type:", sdr.ModulationOptions(), orDefault(defaults.Modulation, sdr.DefaultModulation)); err != nil {
		return nil, err
	}
	if opts.TuningStep, err = choose(p, "Select the tuning step in Hz:", sdr.TuningStepOptions(), orDefault(defaults.TuningStep, sdr.DefaultTuningStep)); err != nil {
		return nil, err
	}

	return opts, nil
}

func validateStart(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || profile.MHzToHz(v) <= 0 {
		return errNotPositive
	}
	return nil
}

func validateEnd(start float64) func(float64) error {
	return func(v float64) error {
		if err := validateStart(v); err != nil {
			return err
		}
		if profile.MHzToHz(v) <= profile.MHzToHz(start) {
			return errEndBelow
		}
		return nil
	}
}

type enum interface {
	comparable
	Valid() bool
}

func orDefault[T enum](v, def T) T {
	if v.Valid() {
		return v
	}
	return def
}

func choose[T enum](p *prompt.Prompter, question string, opts []sdr.Option[T], def T) (T, error) {
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	idx, err := p.Select(question, labels, sdr.DefaultIndex(opts, def))
	if err != nil {
		var zero T
		return zero, err
	}
	return opts[idx].Value, nil
}
