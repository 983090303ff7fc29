package sdr

import (
	"fmt"
	"strings"
)

const (
	ModulationNFM       Modulation = "nfm"
	ModulationWFM       Modulation = "wfm"
	ModulationAM        Modulation = "am"
	ModulationLSB       Modulation = "lsb"
	ModulationUSB       Modulation = "usb"
	ModulationCW        Modulation = "cw"
	ModulationSAM       Modulation = "sam"
	ModulationDMR       Modulation = "dmr"
	ModulationDSTAR     Modulation = "dstar"
	ModulationNXDN      Modulation = "nxdn"
	ModulationYSF       Modulation = "ysf"
	ModulationM17       Modulation = "m17"
	ModulationFREEDV    Modulation = "freedv"
	ModulationDRM       Modulation = "drm"
	ModulationDAB       Modulation = "dab"
	ModulationBPSK31    Modulation = "bpsk31"
	ModulationBPSK63    Modulation = "bpsk63"
	ModulationRTTY170   Modulation = "rtty170"
	ModulationRTTY450   Modulation = "rtty450"
	ModulationRTTY85    Modulation = "rtty85"
	ModulationSITORB    Modulation = "sitorb"
	ModulationFT8       Modulation = "ft8"
	ModulationFT4       Modulation = "ft4"
	ModulationJT65      Modulation = "jt65"
	ModulationJT9       Modulation = "jt9"
	ModulationWSPR      Modulation = "wspr"
	ModulationFST4      Modulation = "fst4"
	ModulationFST4W     Modulation = "fst4w"
	ModulationMSK144    Modulation = "msk144"
	ModulationJS8       Modulation = "js8"
	ModulationPACKET    Modulation = "packet"
	ModulationAIS       Modulation = "ais"
	ModulationPAGE      Modulation = "page"
	ModulationCWDECODER Modulation = "cwdecoder"
	ModulationSSTV      Modulation = "sstv"
	ModulationFAX       Modulation = "fax"
	ModulationSELCALL   Modulation = "selcall"
	ModulationZVEI      Modulation = "zvei"
	ModulationISM       Modulation = "ism"
	ModulationHFDL      Modulation = "hfdl"
	ModulationVDL2      Modulation = "vdl2"
	ModulationACARS     Modulation = "acars"
	ModulationADSB      Modulation = "adsb"

	DefaultModulation = ModulationNFM
)

// modulations keeps the order in which the schemes are offered.
var modulations = []Modulation{
	ModulationNFM,
	ModulationWFM,
	ModulationAM,
	ModulationLSB,
	ModulationUSB,
	ModulationCW,
	ModulationSAM,
	ModulationDMR,
	ModulationDSTAR,
	ModulationNXDN,
	ModulationYSF,
	ModulationM17,
	ModulationFREEDV,
	ModulationDRM,
	ModulationDAB,
	ModulationBPSK31,
	ModulationBPSK63,
	ModulationRTTY170,
	ModulationRTTY450,
	ModulationRTTY85,
	ModulationSITORB,
	ModulationFT8,
	ModulationFT4,
	ModulationJT65,
	ModulationJT9,
	ModulationWSPR,
	ModulationFST4,
	ModulationFST4W,
	ModulationMSK144,
	ModulationJS8,
	ModulationPACKET,
	ModulationAIS,
	ModulationPAGE,
	ModulationCWDECODER,
	ModulationSSTV,
	ModulationFAX,
	ModulationSELCALL,
	ModulationZVEI,
	ModulationISM,
	ModulationHFDL,
	ModulationVDL2,
	ModulationACARS,
	ModulationADSB,
}

var validModulations = func() map[Modulation]struct{} {
	m := make(map[Modulation]struct{}, len(modulations))
	for _, v := range modulations {
		m[v] = struct{}{}
	}
	return m
}()

// Modulation names a demodulation or decoding scheme.
type Modulation string

func Modulations() []Modulation {
	return append([]Modulation(nil), modulations...)
}

func ModulationOptions() []Option[Modulation] {
	return options(modulations)
}

// ParseModulation accepts a tag regardless of case and surrounding space.
func ParseModulation(tag string) (Modulation, error) {
	m := Modulation(strings.ToLower(strings.TrimSpace(tag)))
	if !m.Valid() {
		return "", fmt.Errorf("%q is not a supported modulation", tag)
	}
	return m, nil
}

func (m Modulation) Valid() bool {
	_, ok := validModulations[m]
	return ok
}

func (m Modulation) String() string {
	return string(m)
}

func (m Modulation) Label() string {
	return string(m)
}
