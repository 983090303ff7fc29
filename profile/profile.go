package profile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hb9tf/profilegen/sdr"
)

const (
	// BandWidthMHz is the width of every generated sub-band.
	BandWidthMHz = 2.0

	hzPerMHz = 1_000_000
	maxMHz   = 1e12
)

// Record is a receiver profile covering one sub-band.
type Record struct {
	// ID is the key of the record within a Set. It is not part of the
	// encoded record body.
	ID string `json:"-"`

	Name       string         `json:"name"`
	CenterFreq int64          `json:"center_freq"`
	SampRate   int64          `json:"samp_rate"`
	StartFreq  int64          `json:"start_freq"`
	StartMod   sdr.Modulation `json:"start_mod"`
	TuningStep int64          `json:"tuning_step"`
}

type Options struct {
	// StartMHz is the lower bound of the first sub-band in MHz.
	StartMHz float64
	// EndMHz is the requested upper end of the range in MHz.
	EndMHz float64

	// Prefix and Suffix are put around the sub-band bounds in the record name.
	Prefix string
	Suffix string

	SampleRate sdr.SampleRate
	Modulation sdr.Modulation
	TuningStep sdr.TuningStep

	// Inclusive keeps emitting sub-bands while their lower bound is equal to
	// EndMHz. Otherwise the last sub-band starts below EndMHz.
	Inclusive bool

	// NewID returns a fresh record identifier. Defaults to random UUIDs.
	NewID func() string
}

func (o *Options) Validate() error {
	if !representable(o.StartMHz) || MHzToHz(o.StartMHz) <= 0 {
		return fmt.Errorf("start frequency must be a positive number: %v", o.StartMHz)
	}
	if !representable(o.EndMHz) || MHzToHz(o.EndMHz) <= MHzToHz(o.StartMHz) {
		return fmt.Errorf("end frequency must be greater than start frequency: %v <= %v", o.EndMHz, o.StartMHz)
	}
	if !o.SampleRate.Valid() {
		return fmt.Errorf("unsupported sample rate: %d S/s", o.SampleRate)
	}
	if !o.Modulation.Valid() {
		return fmt.Errorf("unsupported modulation: %q", o.Modulation)
	}
	if !o.TuningStep.Valid() {
		return fmt.Errorf("unsupported tuning step: %d Hz", o.TuningStep)
	}
	return nil
}

// Generate covers [StartMHz, EndMHz] with BandWidthMHz wide sub-bands and
// returns one record per sub-band, ordered by frequency.
func Generate(opts *Options) ([]Record, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	// Bounds are compared in whole Hz so fractional MHz input cannot pick up
	// rounding error while stepping.
	startHz, endHz := MHzToHz(opts.StartMHz), MHzToHz(opts.EndMHz)
	widthHz := MHzToHz(BandWidthMHz)

	var records []Record
	for loHz := startHz; loHz < endHz || (opts.Inclusive && loHz == endHz); loHz += widthHz {
		records = append(records, Record{
			ID:         newID(),
			Name:       Name(opts.Prefix, loHz, loHz+widthHz, opts.Suffix),
			CenterFreq: loHz + widthHz/2,
			SampRate:   opts.SampleRate.Hz(),
			StartFreq:  loHz,
			StartMod:   opts.Modulation,
			TuningStep: opts.TuningStep.Hz(),
		})
	}
	return records, nil
}

// Name builds the record label "{prefix }{lo}-{hi}{ suffix}" with the bounds
// given in Hz and printed in MHz.
func Name(prefix string, loHz, hiHz int64, suffix string) string {
	var b strings.Builder
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteByte(' ')
	}
	b.WriteString(FormatMHz(loHz))
	b.WriteByte('-')
	b.WriteString(FormatMHz(hiHz))
	if suffix != "" {
		b.WriteByte(' ')
		b.WriteString(suffix)
	}
	return b.String()
}

// FormatMHz prints hz in MHz as the shortest exact decimal, e.g. 145.5125.
func FormatMHz(hz int64) string {
	mhz := strconv.FormatInt(hz/hzPerMHz, 10)
	frac := hz % hzPerMHz
	if frac == 0 {
		return mhz
	}
	digits := strings.TrimRight(fmt.Sprintf("%06d", frac), "0")
	return mhz + "." + digits
}

// MHzToHz converts to whole Hz, rounding to the nearest Hz.
func MHzToHz(mhz float64) int64 {
	return int64(math.Round(mhz * hzPerMHz))
}

// representable reports whether mhz converts to Hz without overflowing.
func representable(mhz float64) bool {
	return !math.IsNaN(mhz) && math.Abs(mhz) <= maxMHz
}
