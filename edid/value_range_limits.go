package edid

// RangeLimitsTimingSupport selects the subvariant carried in
// DisplayRangeLimits descriptor byte 11 (and its byte-12-17 payload).
type RangeLimitsTimingSupport interface {
	rangeLimitsTag() byte
	rangeLimitsPayload() [6]byte
	validateForRelease(release EdidRelease) error
}

// DefaultGTF selects the "default GTF supported" timing-support
// subvariant: byte 11 = 0x0A, bytes 12-17 = 0x20 (spec.md §9 Open
// Question: fixed 0x20 fill, never 0x0A-terminated, since this payload
// carries no string).
type DefaultGTF struct{}

func (DefaultGTF) rangeLimitsTag() byte        { return 0x0A }
func (DefaultGTF) rangeLimitsPayload() [6]byte { return [6]byte{0x20, 0x20, 0x20, 0x20, 0x20, 0x20} }
func (DefaultGTF) validateForRelease(EdidRelease) error { return nil }

// SecondaryGTF selects the "secondary GTF supported" timing-support
// subvariant: byte 11 = 0x00. StartFreqKHz must be less than the minimum
// of the descriptor's horizontal and vertical rate (spec.md §3).
type SecondaryGTF struct {
	StartFreqKHz uint16
	C            float64 // 0.0..=127.5 in 0.5 steps
	M            uint16
	K            uint8
	J            float64 // 0.0..=127.5 in 0.5 steps
}

func (g SecondaryGTF) rangeLimitsTag() byte { return 0x00 }

func (g SecondaryGTF) rangeLimitsPayload() [6]byte {
	var out [6]byte
	out[0] = byte(g.StartFreqKHz / 2)
	out[1] = byte(g.C * 2)
	putUint16LE(out[2:4], g.M)
	out[4] = g.K
	out[5] = byte(g.J * 2)
	return out
}

func (SecondaryGTF) validateForRelease(EdidRelease) error { return nil }

// RangeLimitsOnly selects the "range limits only, no additional timing
// formula supported" subvariant (EDID 1.4 only): byte 11 = 0x01.
type RangeLimitsOnly struct{}

func (RangeLimitsOnly) rangeLimitsTag() byte        { return 0x01 }
func (RangeLimitsOnly) rangeLimitsPayload() [6]byte { return [6]byte{0x20, 0x20, 0x20, 0x20, 0x20, 0x20} }
func (RangeLimitsOnly) validateForRelease(release EdidRelease) error {
	if release != ReleaseR4 {
		return &VersionUnsupportedError{Field: "display_range_limits.range_limits_only", Release: release}
	}
	return nil
}

// CVTVersion is the CVT standard version number (major.minor) carried by
// CVTSupported.
type CVTVersion struct {
	Major, Minor uint8
}

// CVTSupported selects the "CVT supported" subvariant (EDID 1.4 only):
// byte 11 = 0x04, byte 12 = version.
type CVTSupported struct {
	Version CVTVersion
}

func (c CVTSupported) rangeLimitsTag() byte { return 0x04 }

func (c CVTSupported) rangeLimitsPayload() [6]byte {
	var out [6]byte
	out[0] = c.Version.Major<<4 | c.Version.Minor
	return out
}

func (CVTSupported) validateForRelease(release EdidRelease) error {
	if release != ReleaseR4 {
		return &VersionUnsupportedError{Field: "display_range_limits.cvt_supported", Release: release}
	}
	return nil
}

// DisplayRangeLimits is the DisplayRangeLimits descriptor payload
// (spec.md §3, §4.C). Construct via NewDisplayRangeLimits.
type DisplayRangeLimits struct {
	MinVRateHz    uint16
	MaxVRateHz    uint16
	MinHRateKHz   uint16
	MaxHRateKHz   uint16
	MaxPixelClockMHz uint16 // 0 = absent; otherwise a multiple of 10
	TimingSupport RangeLimitsTimingSupport
}

// NewDisplayRangeLimits validates the frequency ranges (min < max on both
// axes) and, if present, that MaxPixelClockMHz is a multiple of 10.
// Release-dependent range ceilings (255 vs 510) and the timing-support
// subvariant's own version gating are checked at assembly time, since
// they depend on the description's EdidRelease.
func NewDisplayRangeLimits(minV, maxV, minH, maxH, maxPixelClockMHz uint16, support RangeLimitsTimingSupport) (DisplayRangeLimits, error) {
	if minV == 0 || minV >= maxV {
		return DisplayRangeLimits{}, &CrossFieldError{Fields: []string{"min_v_rate_hz", "max_v_rate_hz"}, Reason: "min must be < max"}
	}
	if minH == 0 || minH >= maxH {
		return DisplayRangeLimits{}, &CrossFieldError{Fields: []string{"min_h_rate_khz", "max_h_rate_khz"}, Reason: "min must be < max"}
	}
	if maxPixelClockMHz != 0 && maxPixelClockMHz%10 != 0 {
		return DisplayRangeLimits{}, &InvalidFieldError{Field: "display_range_limits.max_pixel_clock_mhz", Reason: "must be a multiple of 10"}
	}
	if gtf, ok := support.(SecondaryGTF); ok {
		if gtf.StartFreqKHz >= minH || gtf.StartFreqKHz >= minV {
			return DisplayRangeLimits{}, &CrossFieldError{Fields: []string{"secondary_gtf.start_freq_khz"}, Reason: "must be less than the minimum of the horizontal and vertical rate"}
		}
	}
	return DisplayRangeLimits{
		MinVRateHz:       minV,
		MaxVRateHz:       maxV,
		MinHRateKHz:      minH,
		MaxHRateKHz:      maxH,
		MaxPixelClockMHz: maxPixelClockMHz,
		TimingSupport:    support,
	}, nil
}

func (d DisplayRangeLimits) validateForRelease(release EdidRelease) error {
	ceiling := uint16(255)
	if release == ReleaseR4 {
		ceiling = 510
	}
	if d.MinVRateHz > ceiling || d.MaxVRateHz > ceiling {
		return &InvalidFieldError{Field: "display_range_limits.v_rate_hz", Reason: "exceeds release's encodable range"}
	}
	if d.MinHRateKHz > ceiling || d.MaxHRateKHz > ceiling {
		return &InvalidFieldError{Field: "display_range_limits.h_rate_khz", Reason: "exceeds release's encodable range"}
	}
	return d.TimingSupport.validateForRelease(release)
}

// encode packs the DisplayRangeLimits descriptor. offsetByte replaces the
// otherwise-zero last byte of the descriptor's 5-byte sentinel header
// (descriptor byte 4); payload fills descriptor bytes 5-17 (min/max
// rates, max pixel clock, a reserved byte, the timing-support tag, and
// its 6-byte subvariant payload).
func (d DisplayRangeLimits) encode() (offsetByte byte, payload [13]byte) {
	minV, maxV, minH, maxH := d.MinVRateHz, d.MaxVRateHz, d.MinHRateKHz, d.MaxHRateKHz
	if minV > 255 {
		offsetByte |= 1 << 0
		minV -= 255
	}
	if maxV > 255 {
		offsetByte |= 1 << 1
		maxV -= 255
	}
	if minH > 255 {
		offsetByte |= 1 << 2
		minH -= 255
	}
	if maxH > 255 {
		offsetByte |= 1 << 3
		maxH -= 255
	}

	payload[0] = byte(minV)
	payload[1] = byte(maxV)
	payload[2] = byte(minH)
	payload[3] = byte(maxH)
	if d.MaxPixelClockMHz != 0 {
		payload[4] = byte(d.MaxPixelClockMHz / 10)
	}
	// payload[5] is the reserved byte 10, left zero.
	payload[6] = d.TimingSupport.rangeLimitsTag()
	sub := d.TimingSupport.rangeLimitsPayload()
	copy(payload[7:13], sub[:])
	return offsetByte, payload
}
