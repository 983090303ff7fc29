package session

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"

	"github.com/hb9tf/profilegen/export"
	"github.com/hb9tf/profilegen/profile"
	"github.com/hb9tf/profilegen/prompt"
	"github.com/hb9tf/profilegen/viewer"
	"github.com/hb9tf/profilegen/wizard"
)

type Session struct {
	Prompter *prompt.Prompter
	Defaults wizard.Defaults
	Exporter export.Exporter

	// Inclusive is passed on to the generator.
	Inclusive bool

	// File is the path written by Exporter. When set, Open is called with it
	// after a successful export.
	File string
	Open viewer.Opener
}

// Result summarizes a completed run.
type Result struct {
	Options *profile.Options
	Set     profile.Set
	// OpenErr is set when the written file could not be shown. It never
	// fails the run.
	OpenErr error
}

// Run asks for the parameters, generates the profiles and exports them.
// wizard.ErrCanceled is returned unchanged when the user declines.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	opts, err := wizard.Ask(s.Prompter, s.Defaults)
	if err != nil {
		return nil, err
	}
	opts.Inclusive = s.Inclusive

	records, err := profile.Generate(opts)
	if err != nil {
		return nil, fmt.Errorf("unable to generate profiles: %w", err)
	}
	set, err := profile.NewSet(records)
	if err != nil {
		return nil, fmt.Errorf("unable to index profiles: %w", err)
	}
	glog.V(1).Infof("generated %d profiles for %s - %s (%s, %s, step %s)",
		len(set), mhz(opts.StartMHz), mhz(opts.EndMHz), opts.SampleRate.Label(), opts.Modulation, opts.TuningStep.Label())

	if err := s.Exporter.Write(ctx, set); err != nil {
		return nil, err
	}

	res := &Result{Options: opts, Set: set}
	if s.File == "" {
		return res, nil
	}

	count := humanize.Comma(int64(len(set)))
	if s.Open == nil {
		s.Prompter.Printf("The file %s has been successfully created with %s profiles!\n", s.File, count)
		return res, nil
	}
	s.Prompter.Printf("The file %s has been successfully created with %s profiles! Opening it...\n", s.File, count)
	if err := s.Open(s.File); err != nil {
		glog.Warningf("failed to open %s: %s", s.File, err)
		s.Prompter.Printf("Failed to open %s: %s\n", s.File, err)
		res.OpenErr = err
	}
	return res, nil
}

func mhz(v float64) string {
	return humanize.SIWithDigits(v*1e6, 6, "Hz")
}
