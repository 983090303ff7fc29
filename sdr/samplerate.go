package sdr

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// SampleRate is a receiver sample rate in samples per second.
type SampleRate int64

const (
	SampleRate1M0   SampleRate = 1_000_000
	SampleRate1M4   SampleRate = 1_400_000
	SampleRate1M8   SampleRate = 1_800_000
	SampleRate2M048 SampleRate = 2_048_000
	SampleRate2M4   SampleRate = 2_400_000 // recommended for RTL-SDR dongles
	SampleRate2M56  SampleRate = 2_560_000
	SampleRate2M8   SampleRate = 2_800_000
	SampleRate3M2   SampleRate = 3_200_000

	DefaultSampleRate = SampleRate2M4
)

var sampleRates = []SampleRate{
	SampleRate1M0,
	SampleRate1M4,
	SampleRate1M8,
	SampleRate2M048,
	SampleRate2M4,
	SampleRate2M56,
	SampleRate2M8,
	SampleRate3M2,
}

// SampleRates lists the supported rates in ascending order.
func SampleRates() []SampleRate {
	return append([]SampleRate(nil), sampleRates...)
}

func SampleRateOptions() []Option[SampleRate] {
	return options(sampleRates)
}

// ParseSampleRate maps a rate given in MS/s onto the closed set.
func ParseSampleRate(msps float64) (SampleRate, error) {
	r := SampleRate(math.Round(msps * 1e6))
	if !r.Valid() {
		return 0, fmt.Errorf("%v MS/s is not a supported sample rate", msps)
	}
	return r, nil
}

func (r SampleRate) Valid() bool {
	for _, v := range sampleRates {
		if v == r {
			return true
		}
	}
	return false
}

// Hz returns the rate in samples per second.
func (r SampleRate) Hz() int64 {
	return int64(r)
}

// MSps returns the rate in mega samples per second.
func (r SampleRate) MSps() float64 {
	return float64(r) / 1e6
}

func (r SampleRate) String() string {
	return fmt.Sprintf("%g", r.MSps())
}

func (r SampleRate) Label() string {
	label := humanize.SIWithDigits(float64(r), 3, "S/s")
	if r == SampleRate2M4 {
		label += ", recommended for RTL-SDR"
	}
	return label
}
