package sdr

import (
	"testing"
)

func TestParseSampleRate(t *testing.T) {
	tests := []struct {
		msps    float64
		want    SampleRate
		wantErr bool
	}{
		{msps: 1.0, want: SampleRate1M0},
		{msps: 2.048, want: SampleRate2M048},
		{msps: 2.4, want: SampleRate2M4},
		{msps: 3.2, want: SampleRate3M2},
		{msps: 2.5, wantErr: true},
		{msps: 0, wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseSampleRate(tc.msps)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseSampleRate(%v) = %d, want error", tc.msps, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSampleRate(%v) returned error: %s", tc.msps, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSampleRate(%v) = %d, want %d", tc.msps, got, tc.want)
		}
	}
}

func TestSampleRateHz(t *testing.T) {
	if got := SampleRate2M048.Hz(); got != 2048000 {
		t.Errorf("SampleRate2M048.Hz() = %d, want 2048000", got)
	}
	if got := SampleRate1M4.MSps(); got != 1.4 {
		t.Errorf("SampleRate1M4.MSps() = %v, want 1.4", got)
	}
	if got := SampleRate2M56.String(); got != "2.56" {
		t.Errorf("SampleRate2M56.String() = %q, want %q", got, "2.56")
	}
}

func TestParseModulation(t *testing.T) {
	for _, tag := range []string{"nfm", "NFM", " usb ", "fst4w", "adsb"} {
		if _, err := ParseModulation(tag); err != nil {
			t.Errorf("ParseModulation(%q) returned error: %s", tag, err)
		}
	}
	for _, tag := range []string{"", "fm", "p25"} {
		if m, err := ParseModulation(tag); err == nil {
			t.Errorf("ParseModulation(%q) = %q, want error", tag, m)
		}
	}
}

func TestParseTuningStep(t *testing.T) {
	if s, err := ParseTuningStep(8330); err != nil || s != TuningStep8k33Hz {
		t.Errorf("ParseTuningStep(8330) = %d, %v", s, err)
	}
	if s, err := ParseTuningStep(7); err == nil {
		t.Errorf("ParseTuningStep(7) = %d, want error", s)
	}
}

func TestEnumerationSizes(t *testing.T) {
	if got := len(SampleRates()); got != 8 {
		t.Errorf("len(SampleRates()) = %d, want 8", got)
	}
	if got := len(Modulations()); got != 43 {
		t.Errorf("len(Modulations()) = %d, want 43", got)
	}
	if got := len(TuningSteps()); got != 19 {
		t.Errorf("len(TuningSteps()) = %d, want 19", got)
	}
}

func TestOptionsDefaultIndex(t *testing.T) {
	rates := SampleRateOptions()
	idx := DefaultIndex(rates, DefaultSampleRate)
	if idx != 4 {
		t.Errorf("default sample rate index = %d, want 4", idx)
	}
	mods := ModulationOptions()
	if idx := DefaultIndex(mods, DefaultModulation); idx != 0 {
		t.Errorf("default modulation index = %d, want 0", idx)
	}
	steps := TuningStepOptions()
	idx = DefaultIndex(steps, DefaultTuningStep)
	if idx != 6 {
		t.Errorf("default tuning step index = %d, want 6", idx)
	}

	for i, o := range steps {
		if o.Label != o.Value.Label() {
			t.Errorf("option %d label = %q, want %q", i, o.Label, o.Value.Label())
		}
	}
}
