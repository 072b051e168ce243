package edid

// StandardTimingAspect enumerates the four aspect ratios encodable in a
// StandardTiming.
type StandardTimingAspect uint8

// Standard timing aspect ratios (byte 2, bits 7-6 of the encoded pair).
const (
	Aspect16x10 StandardTimingAspect = iota
	Aspect4x3
	Aspect5x4
	Aspect16x9
)

// StandardTiming is one of the up to eight standard timing slots (base
// block bytes 0x26-0x35, two bytes each).
type StandardTiming struct {
	present   bool
	hActive   uint16
	aspect    StandardTimingAspect
	refreshHz uint8
}

// UnusedStandardTiming returns the sentinel value for an unused standard
// timing slot, encoded on the wire as 0x01 0x01.
func UnusedStandardTiming() StandardTiming {
	return StandardTiming{present: false}
}

// NewStandardTiming validates hActive (a multiple of 8 in 256..=2288) and
// refreshHz (60..=123).
func NewStandardTiming(hActive uint16, aspect StandardTimingAspect, refreshHz uint8) (StandardTiming, error) {
	if hActive < 256 || hActive > 2288 || hActive%8 != 0 {
		return StandardTiming{}, &InvalidFieldError{Field: "standard_timing.h_active", Reason: "must be a multiple of 8 in 256..=2288"}
	}
	if aspect > Aspect16x9 {
		return StandardTiming{}, &InvalidFieldError{Field: "standard_timing.aspect", Reason: "unknown aspect ratio"}
	}
	if refreshHz < 60 || refreshHz > 123 {
		return StandardTiming{}, &InvalidFieldError{Field: "standard_timing.refresh_hz", Reason: "must be in 60..=123"}
	}
	return StandardTiming{present: true, hActive: hActive, aspect: aspect, refreshHz: refreshHz}, nil
}

// encode returns the two-byte wire encoding.
func (s StandardTiming) encode() (byte, byte) {
	if !s.present {
		return 0x01, 0x01
	}
	b1 := byte(s.hActive/8 - 31)
	b2 := byte(s.aspect)<<6 | (s.refreshHz - 60)
	return b1, b2
}

// StandardTimingList holds the base block's up to eight standard timing
// slots in order.
type StandardTimingList [8]StandardTiming

// NewStandardTimingList fills unused trailing slots with
// UnusedStandardTiming; timings must contain at most 8 entries.
func NewStandardTimingList(timings ...StandardTiming) (StandardTimingList, error) {
	if len(timings) > 8 {
		return StandardTimingList{}, &SlotOverflowError{Region: "standard_timings", Needed: len(timings), Available: 8}
	}
	var list StandardTimingList
	for i := range list {
		list[i] = UnusedStandardTiming()
	}
	copy(list[:], timings)
	return list, nil
}
