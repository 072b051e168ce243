package edid

// EstablishedTiming enumerates the 17 legacy modes representable in base
// block bytes 0x23-0x25.
type EstablishedTiming uint8

// Established timing modes, in bit order (byte, then bit index low to
// high) matching the VESA layout.
const (
	Timing800x600At60Hz EstablishedTiming = iota
	Timing800x600At56Hz
	Timing640x480At75Hz
	Timing640x480At72Hz
	Timing640x480At67Hz
	Timing640x480At60Hz
	Timing720x400At88Hz
	Timing720x400At70Hz
	Timing1280x1024At75Hz
	Timing1024x768At75Hz
	Timing1024x768At70Hz
	Timing1024x768At60Hz
	Timing1024x768At87HzInterlaced
	Timing832x624At75Hz
	Timing800x600At75Hz
	Timing800x600At72Hz
	Timing1152x870At75Hz
)

const establishedTimingCount = 17

// EstablishedTimings is a set over the 17 legacy timing modes (base block
// bytes 0x23-0x25). The zero value is the empty set.
type EstablishedTimings struct {
	bits uint32 // bit i set means EstablishedTiming(i) present
}

// NewEstablishedTimings constructs a set containing exactly the given
// modes.
func NewEstablishedTimings(modes ...EstablishedTiming) (EstablishedTimings, error) {
	var t EstablishedTimings
	for _, m := range modes {
		if m >= establishedTimingCount {
			return EstablishedTimings{}, &InvalidFieldError{Field: "established_timings", Reason: "unknown timing mode"}
		}
		t.bits |= 1 << uint(m)
	}
	return t, nil
}

// Has reports whether m is present in the set.
func (t EstablishedTimings) Has(m EstablishedTiming) bool {
	return t.bits&(1<<uint(m)) != 0
}

// encode returns base block bytes 0x23, 0x24, 0x25.
//
// Byte 0x23 (Established Timings I) bit 0 up to 7 = modes 0..7.
// Byte 0x24 (Established Timings II) bit 0 up to 7 = modes 8..15.
// Byte 0x25 (Manufacturer's Timings) bit 7 = mode 16 (1152x870@75Hz);
// bits 6-0 reserved, always zero.
func (t EstablishedTimings) encode() (byte, byte, byte) {
	var b1, b2, b3 byte
	for m := EstablishedTiming(0); m < 8; m++ {
		if t.Has(m) {
			b1 |= 1 << uint(m)
		}
	}
	for m := EstablishedTiming(8); m < 16; m++ {
		if t.Has(m) {
			b2 |= 1 << uint(m-8)
		}
	}
	if t.Has(Timing1152x870At75Hz) {
		b3 |= 1 << 7
	}
	return b1, b2, b3
}
