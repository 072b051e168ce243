package edid

// SignalLevel enumerates the analog video signal level standard (VESA
// EDID 1.4 table for base block byte 0x14, bits 6-5, analog form).
type SignalLevel uint8

// Signal level values for analog video input.
const (
	SignalLevel0700_0300 SignalLevel = iota // +0.700/-0.300 V
	SignalLevel0714_0286                    // +0.714/-0.286 V
	SignalLevel1000_0400                    // +1.000/-0.400 V
	SignalLevel0700_0700                    // +0.700/-0.700 V
)

// DigitalBitDepth enumerates the color bit depth per channel for a
// digital video input (EDID 1.4 only).
type DigitalBitDepth uint8

// Digital bit-depth values.
const (
	BitDepthUndefined DigitalBitDepth = iota
	BitDepth6
	BitDepth8
	BitDepth10
	BitDepth12
	BitDepth14
	BitDepth16
)

func (b DigitalBitDepth) code() (uint8, bool) {
	switch b {
	case BitDepthUndefined:
		return 0, true
	case BitDepth6:
		return 1, true
	case BitDepth8:
		return 2, true
	case BitDepth10:
		return 3, true
	case BitDepth12:
		return 4, true
	case BitDepth14:
		return 5, true
	case BitDepth16:
		return 6, true
	default:
		return 0, false
	}
}

// DigitalInterface enumerates the digital video interface standard
// (EDID 1.4 only).
type DigitalInterface uint8

// Digital interface values.
const (
	InterfaceUndefined DigitalInterface = iota
	InterfaceDVI
	InterfaceHDMIa
	InterfaceHDMIb
	InterfaceMDDI
	InterfaceDisplayPort
)

func (i DigitalInterface) code() (uint8, bool) {
	switch i {
	case InterfaceUndefined, InterfaceDVI, InterfaceHDMIa, InterfaceHDMIb, InterfaceMDDI, InterfaceDisplayPort:
		return uint8(i), true
	default:
		return 0, false
	}
}

// VideoInput is the analog/digital video input definition (base block
// byte 0x14). Construct via NewAnalogVideoInput, NewDigitalVideoInputR3, or
// NewDigitalVideoInputR4.
type VideoInput struct {
	digital bool

	// Analog fields.
	signalLevel     SignalLevel
	blankToBlackSetup bool
	separateSync    bool
	compositeSync   bool
	compositeOnGreen bool
	serrationOnVsync bool

	// Digital fields.
	dfp1Compatible bool // EDID 1.3
	bitDepth       DigitalBitDepth // EDID 1.4
	iface          DigitalInterface // EDID 1.4
	r4Digital      bool // set when constructed via NewDigitalVideoInputR4
}

// AnalogSyncCapabilities selects which analog sync forms the display
// accepts, packed into byte 0x14 bits 3-0.
type AnalogSyncCapabilities struct {
	SeparateSync     bool
	CompositeSync    bool
	CompositeOnGreen bool
	SerrationOnVsync bool
}

// NewAnalogVideoInput constructs an analog VideoInput.
func NewAnalogVideoInput(level SignalLevel, blankToBlackSetup bool, sync AnalogSyncCapabilities) (VideoInput, error) {
	if level > SignalLevel0700_0700 {
		return VideoInput{}, &InvalidFieldError{Field: "video_input.signal_level", Reason: "unknown signal level"}
	}
	return VideoInput{
		digital:           false,
		signalLevel:       level,
		blankToBlackSetup: blankToBlackSetup,
		separateSync:      sync.SeparateSync,
		compositeSync:     sync.CompositeSync,
		compositeOnGreen:  sync.CompositeOnGreen,
		serrationOnVsync:  sync.SerrationOnVsync,
	}, nil
}

// NewDigitalVideoInputR3 constructs a digital VideoInput for EDID 1.3,
// where the only defined digital flag is DFP 1.x compatibility.
func NewDigitalVideoInputR3(dfp1Compatible bool) (VideoInput, error) {
	return VideoInput{digital: true, dfp1Compatible: dfp1Compatible}, nil
}

// NewDigitalVideoInputR4 constructs a digital VideoInput for EDID 1.4,
// carrying bit depth and interface standard. Using this constructor for
// an EDID 1.3 description is rejected at assembly time
// (VersionUnsupported), per spec.md §9's Open Question default.
func NewDigitalVideoInputR4(depth DigitalBitDepth, iface DigitalInterface) (VideoInput, error) {
	if _, ok := depth.code(); !ok {
		return VideoInput{}, &InvalidFieldError{Field: "video_input.bit_depth", Reason: "unknown bit depth"}
	}
	if _, ok := iface.code(); !ok {
		return VideoInput{}, &InvalidFieldError{Field: "video_input.interface", Reason: "unknown interface"}
	}
	return VideoInput{digital: true, bitDepth: depth, iface: iface, r4Digital: true}, nil
}

// IsDigital reports whether this is a digital video input, used by
// validateBaseBlock to check that FeatureSupport's display type is the
// matching analog or digital variant.
func (v VideoInput) IsDigital() bool {
	return v.digital
}

// validateForRelease rejects EDID-1.4-only digital fields under EDID 1.3.
func (v VideoInput) validateForRelease(release EdidRelease) error {
	if v.digital && v.r4Digital && release != ReleaseR4 {
		return &VersionUnsupportedError{Field: "video_input.bit_depth", Release: release}
	}
	return nil
}

// encode packs base block byte 0x14. Bit 7 selects digital (1) vs analog
// (0).
func (v VideoInput) encode() byte {
	if !v.digital {
		var b byte
		b |= byte(v.signalLevel) << 5
		if v.blankToBlackSetup {
			b |= 1 << 4
		}
		if v.separateSync {
			b |= 1 << 3
		}
		if v.compositeSync {
			b |= 1 << 2
		}
		if v.compositeOnGreen {
			b |= 1 << 1
		}
		if v.serrationOnVsync {
			b |= 1 << 0
		}
		return b
	}

	b := byte(0x80)
	if v.r4Digital {
		depth, _ := v.bitDepth.code()
		iface, _ := v.iface.code()
		b |= depth << 4
		b |= iface
	} else if v.dfp1Compatible {
		b |= 1
	}
	return b
}
