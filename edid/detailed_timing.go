package edid

// AnalogSyncOn selects which lines carry sync in an AnalogSignal.
type AnalogSyncOn uint8

// Analog sync-on-line selections. SyncOnHSync and SyncOnGreenOnly share a
// wire encoding: VESA's detailed-timing flags byte allocates only one bit
// to this distinction for analog signals (bit 1: "sync on all three RGB
// lines" vs "sync on green only"), so a dedicated horizontal-sync-only
// analog encoding does not exist on the wire. SyncOnHSync is accepted as
// an input value for API completeness with spec.md §3 and encodes
// identically to SyncOnGreenOnly.
const (
	SyncOnHSync AnalogSyncOn = iota
	SyncOnAllThreeRGB
	SyncOnGreenOnly
)

// DetailedTimingSignal is the sync/polarity portion of a DetailedTiming's
// byte-17 flags: either AnalogSignal, DigitalCompositeSignal, or
// DigitalSeparateSignal.
type DetailedTimingSignal interface {
	// encodeBits returns bits 4-1 of byte 17 (bit 4 = digital/analog,
	// bit 3 = bipolar-or-separate, bits 2-1 = the remaining pair of
	// signal-specific flags), left-shifted into position.
	encodeBits() byte
}

// AnalogSignal is the analog sync/polarity variant of DetailedTimingSignal.
type AnalogSignal struct {
	Bipolar  bool
	Serrated bool
	SyncOn   AnalogSyncOn
}

func (s AnalogSignal) encodeBits() byte {
	var b byte
	if s.Bipolar {
		b |= 1 << 3
	}
	if s.Serrated {
		b |= 1 << 2
	}
	if s.SyncOn == SyncOnAllThreeRGB {
		b |= 1 << 1
	}
	return b
}

// DigitalCompositeSignal is the digital composite-sync variant of
// DetailedTimingSignal.
type DigitalCompositeSignal struct {
	Serrated      bool
	HSyncPolarity bool
}

func (s DigitalCompositeSignal) encodeBits() byte {
	b := byte(1 << 4)
	if s.Serrated {
		b |= 1 << 2
	}
	if s.HSyncPolarity {
		b |= 1 << 1
	}
	return b
}

// DigitalSeparateSignal is the digital separate-sync variant of
// DetailedTimingSignal.
type DigitalSeparateSignal struct {
	HSyncPositive bool
	VSyncPositive bool
}

func (s DigitalSeparateSignal) encodeBits() byte {
	b := byte(1<<4 | 1<<3)
	if s.VSyncPositive {
		b |= 1 << 2
	}
	if s.HSyncPositive {
		b |= 1 << 1
	}
	return b
}

// StereoMode enumerates the stereo-viewing support field carried in
// DetailedTiming byte 17, bits 6-5 and bit 0.
type StereoMode uint8

// Stereo viewing modes.
const (
	StereoNone StereoMode = iota
	StereoFieldSequentialRight
	StereoFieldSequentialLeft
	StereoTwoWayInterleavedRight
	StereoTwoWayInterleavedLeft
	StereoFourWayInterleaved
	StereoSideBySideInterleaved
)

// code returns the 3-bit stereo code distributed across byte 17 bits
// 6-5 (high two bits) and bit 0 (low bit).
func (m StereoMode) code() (uint8, bool) {
	switch m {
	case StereoNone:
		return 0b000, true
	case StereoFieldSequentialRight:
		return 0b010, true
	case StereoFieldSequentialLeft:
		return 0b100, true
	case StereoTwoWayInterleavedRight:
		return 0b011, true
	case StereoTwoWayInterleavedLeft:
		return 0b101, true
	case StereoFourWayInterleaved:
		return 0b110, true
	case StereoSideBySideInterleaved:
		return 0b111, true
	default:
		return 0, false
	}
}

// DetailedTiming is a full detailed timing descriptor payload (spec.md
// §3). Construct via NewDetailedTiming.
type DetailedTiming struct {
	PixelClock10KHz uint16 // 1..=65535 (i.e. 10..=655350 kHz)

	HActive   uint16 // 0..=4095
	HBlanking uint16 // 0..=4095
	VActive   uint16 // 0..=4095
	VBlanking uint16 // 0..=4095

	HFrontPorch uint16 // 0..=1023
	HSyncPulse  uint16 // 0..=1023
	VFrontPorch uint8  // 0..=63
	VSyncPulse  uint8  // 0..=63

	HImageSizeMM uint16 // 0..=4095
	VImageSizeMM uint16 // 0..=4095

	HBorderPx uint8 // 0..=255, applied to both left and right edges
	VBorderPx uint8 // 0..=255, applied to both top and bottom edges

	Signal      DetailedTimingSignal
	Stereo      StereoMode
	Interlaced  bool
}

// NewDetailedTiming validates every field range named in spec.md §3.
func NewDetailedTiming(t DetailedTiming) (DetailedTiming, error) {
	switch {
	case t.PixelClock10KHz == 0:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.pixel_clock", Reason: "must be in 1..=65535 (10 kHz units)"}
	case t.HActive > 4095:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.h_active", Reason: "must be 0..=4095"}
	case t.HBlanking > 4095:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.h_blanking", Reason: "must be 0..=4095"}
	case t.VActive > 4095:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.v_active", Reason: "must be 0..=4095"}
	case t.VBlanking > 4095:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.v_blanking", Reason: "must be 0..=4095"}
	case t.HFrontPorch > 1023:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.h_front_porch", Reason: "must be 0..=1023"}
	case t.HSyncPulse > 1023:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.h_sync_pulse", Reason: "must be 0..=1023"}
	case t.VFrontPorch > 63:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.v_front_porch", Reason: "must be 0..=63"}
	case t.VSyncPulse > 63:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.v_sync_pulse", Reason: "must be 0..=63"}
	case t.HImageSizeMM > 4095:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.h_image_size_mm", Reason: "must be 0..=4095"}
	case t.VImageSizeMM > 4095:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.v_image_size_mm", Reason: "must be 0..=4095"}
	case t.Signal == nil:
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.signal", Reason: "must be set"}
	}
	if _, ok := t.Stereo.code(); !ok {
		return DetailedTiming{}, &InvalidFieldError{Field: "detailed_timing.stereo", Reason: "unknown stereo mode"}
	}
	return t, nil
}

// encode packs the detailed timing descriptor's 18 bytes.
func (t DetailedTiming) encode() [18]byte {
	var b [18]byte

	putUint16LE(b[0:2], t.PixelClock10KHz)

	b[2] = byte(t.HActive)
	b[3] = byte(t.HBlanking)
	b[4] = byte(t.HActive>>8)<<4 | byte(t.HBlanking>>8)

	b[5] = byte(t.VActive)
	b[6] = byte(t.VBlanking)
	b[7] = byte(t.VActive>>8)<<4 | byte(t.VBlanking>>8)

	b[8] = byte(t.HFrontPorch)
	b[9] = byte(t.HSyncPulse)
	b[10] = byte(t.VFrontPorch&0x0F)<<4 | byte(t.VSyncPulse&0x0F)
	b[11] = byte(t.HFrontPorch>>8&0x03)<<6 | byte(t.HSyncPulse>>8&0x03)<<4 |
		byte(t.VFrontPorch>>4&0x03)<<2 | byte(t.VSyncPulse>>4&0x03)

	b[12] = byte(t.HImageSizeMM)
	b[13] = byte(t.VImageSizeMM)
	b[14] = byte(t.HImageSizeMM>>8)<<4 | byte(t.VImageSizeMM>>8)

	b[15] = t.HBorderPx
	b[16] = t.VBorderPx

	var flags byte
	if t.Interlaced {
		flags |= 1 << 7
	}
	stereo, _ := t.Stereo.code()
	flags |= (stereo >> 2 & 0x01) << 6
	flags |= (stereo >> 1 & 0x01) << 5
	flags |= t.Signal.encodeBits()
	flags |= stereo & 0x01

	b[17] = flags
	return b
}
