package sdr

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// TuningStep is the frequency granularity in Hz used when stepping a receiver.
type TuningStep int64

const (
	TuningStep1Hz    TuningStep = 1
	TuningStep10Hz   TuningStep = 10
	TuningStep20Hz   TuningStep = 20
	TuningStep50Hz   TuningStep = 50
	TuningStep100Hz  TuningStep = 100
	TuningStep500Hz  TuningStep = 500
	TuningStep1kHz   TuningStep = 1_000
	TuningStep2k5Hz  TuningStep = 2_500
	TuningStep3kHz   TuningStep = 3_000
	TuningStep5kHz   TuningStep = 5_000
	TuningStep6kHz   TuningStep = 6_000
	TuningStep6k25Hz TuningStep = 6_250
	TuningStep8k33Hz TuningStep = 8_330
	TuningStep9kHz   TuningStep = 9_000
	TuningStep10kHz  TuningStep = 10_000
	TuningStep12kHz  TuningStep = 12_000
	TuningStep12k5Hz TuningStep = 12_500
	TuningStep25kHz  TuningStep = 25_000
	TuningStep50kHz  TuningStep = 50_000

	DefaultTuningStep = TuningStep1kHz
)

var tuningSteps = []TuningStep{
	TuningStep1Hz,
	TuningStep10Hz,
	TuningStep20Hz,
	TuningStep50Hz,
	TuningStep100Hz,
	TuningStep500Hz,
	TuningStep1kHz,
	TuningStep2k5Hz,
	TuningStep3kHz,
	TuningStep5kHz,
	TuningStep6kHz,
	TuningStep6k25Hz,
	TuningStep8k33Hz,
	TuningStep9kHz,
	TuningStep10kHz,
	TuningStep12kHz,
	TuningStep12k5Hz,
	TuningStep25kHz,
	TuningStep50kHz,
}

func TuningSteps() []TuningStep {
	return append([]TuningStep(nil), tuningSteps...)
}

func TuningStepOptions() []Option[TuningStep] {
	return options(tuningSteps)
}

func ParseTuningStep(hz int64) (TuningStep, error) {
	s := TuningStep(hz)
	if !s.Valid() {
		return 0, fmt.Errorf("%d Hz is not a supported tuning step", hz)
	}
	return s, nil
}

func (s TuningStep) Valid() bool {
	for _, v := range tuningSteps {
		if v == s {
			return true
		}
	}
	return false
}

func (s TuningStep) Hz() int64 {
	return int64(s)
}

func (s TuningStep) String() string {
	return fmt.Sprintf("%d", int64(s))
}

func (s TuningStep) Label() string {
	return humanize.SIWithDigits(float64(s), 2, "Hz")
}
