package edid

// DisplaySize is the physical display size or aspect ratio (base block
// bytes 0x15-0x16). Construct via NewDisplaySizeUndefined,
// NewDisplaySizeDimensions, NewDisplaySizeAspectLandscape, or
// NewDisplaySizeAspectPortrait.
type DisplaySize struct {
	kind   displaySizeKind
	hCm    uint8
	vCm    uint8
	aspect uint8 // encoded per VESA: byte = round(ratio * 100) - 99 for both aspect forms
}

type displaySizeKind uint8

const (
	displaySizeUndefined displaySizeKind = iota
	displaySizeDimensions
	displaySizeAspectLandscape
	displaySizeAspectPortrait
)

// NewDisplaySizeUndefined constructs an undefined display size.
func NewDisplaySizeUndefined() DisplaySize {
	return DisplaySize{kind: displaySizeUndefined}
}

// NewDisplaySizeDimensions constructs a display size from physical
// dimensions in centimeters, each 1..=255.
func NewDisplaySizeDimensions(hCm, vCm uint8) (DisplaySize, error) {
	if hCm == 0 || vCm == 0 {
		return DisplaySize{}, &InvalidFieldError{Field: "display_size", Reason: "h_cm and v_cm must be 1..=255"}
	}
	return DisplaySize{kind: displaySizeDimensions, hCm: hCm, vCm: vCm}, nil
}

// NewDisplaySizeAspectLandscape constructs a landscape aspect-ratio-only
// display size (EDID 1.4 only): ratio = h/v, encoded byte =
// round(ratio*100) - 99.
func NewDisplaySizeAspectLandscape(ratio float64) (DisplaySize, error) {
	b, err := encodeAspectByte(ratio)
	if err != nil {
		return DisplaySize{}, err
	}
	return DisplaySize{kind: displaySizeAspectLandscape, aspect: b}, nil
}

// NewDisplaySizeAspectPortrait constructs a portrait aspect-ratio-only
// display size (EDID 1.4 only): ratio = v/h, encoded byte =
// round(ratio*100) - 99.
func NewDisplaySizeAspectPortrait(ratio float64) (DisplaySize, error) {
	b, err := encodeAspectByte(ratio)
	if err != nil {
		return DisplaySize{}, err
	}
	return DisplaySize{kind: displaySizeAspectPortrait, aspect: b}, nil
}

func encodeAspectByte(ratio float64) (uint8, error) {
	v := int(ratio*100+0.5) - 99
	if v < 0 || v > 255 {
		return 0, &InvalidFieldError{Field: "display_size.aspect", Reason: "ratio out of encodable range"}
	}
	return uint8(v), nil
}

func (d DisplaySize) validateForRelease(release EdidRelease) error {
	if (d.kind == displaySizeAspectLandscape || d.kind == displaySizeAspectPortrait) && release != ReleaseR4 {
		return &VersionUnsupportedError{Field: "display_size", Release: release}
	}
	return nil
}

// encode returns base block bytes 0x15, 0x16.
func (d DisplaySize) encode() (byte, byte) {
	switch d.kind {
	case displaySizeDimensions:
		return d.hCm, d.vCm
	case displaySizeAspectLandscape:
		return d.aspect, 0x00
	case displaySizeAspectPortrait:
		return 0x00, d.aspect
	default:
		return 0x00, 0x00
	}
}

// Gamma is the display transfer characteristic (base block byte 0x17):
// either a rational in 1.00..=3.54, or Undefined.
type Gamma struct {
	undefined bool
	value     float64
}

// UndefinedGamma is the sentinel value for an unreported display gamma
// (encodes as 0xFF).
func UndefinedGamma() Gamma {
	return Gamma{undefined: true}
}

// NewGamma validates that value is in 1.00..=3.54.
func NewGamma(value float64) (Gamma, error) {
	if value < 1.00 || value > 3.54 {
		return Gamma{}, &InvalidFieldError{Field: "gamma", Reason: "must be in 1.00..=3.54"}
	}
	return Gamma{value: value}, nil
}

// encode returns base block byte 0x17.
func (g Gamma) encode() byte {
	if g.undefined {
		return 0xFF
	}
	return byte(int(g.value*100+0.5) - 100)
}

// DisplayType is the analog monochrome/color capability or digital
// color-format capability packed into base block byte 0x18 bits 4-3:
// either an AnalogDisplayType or a DigitalDisplayType. Which one a
// Description must carry is determined by its VideoInput; validateBaseBlock
// rejects a Description whose FeatureSupport.displayType and VideoInput
// disagree on analog-vs-digital.
type DisplayType interface {
	// bits returns the 2-bit code for byte 0x18 bits 4-3.
	bits() byte
	// digital reports whether this DisplayType is the digital variant.
	digital() bool
}

// AnalogDisplayType is the analog variant of DisplayType (byte 0x18 bits
// 4-3 when VideoInput is analog).
type AnalogDisplayType uint8

// Analog display types.
const (
	DisplayTypeMonochrome AnalogDisplayType = iota
	DisplayTypeRGBColor
	DisplayTypeNonRGBColor
	DisplayTypeUndefinedColor
)

func (d AnalogDisplayType) bits() byte    { return byte(d) & 0x03 }
func (d AnalogDisplayType) digital() bool { return false }

// DigitalDisplayType is the digital variant of DisplayType (byte 0x18
// bits 4-3 when VideoInput is digital).
type DigitalDisplayType uint8

// Digital display types.
const (
	DisplayTypeRGB444 DigitalDisplayType = iota
	DisplayTypeRGB444YCbCr444
	DisplayTypeRGB444YCbCr422
	DisplayTypeRGB444YCbCr444YCbCr422
)

func (d DigitalDisplayType) bits() byte    { return byte(d) & 0x03 }
func (d DigitalDisplayType) digital() bool { return true }

// FeatureSupport is the feature-support bitmap (base block byte 0x18).
// Construct via NewFeatureSupport.
type FeatureSupport struct {
	standby              bool // R3 only, deprecated R4
	suspend               bool // R3 only, deprecated R4
	activeOff             bool
	displayType           DisplayType
	srgbDefault           bool
	preferredTimingNative bool // R4
	continuousFrequency   bool // R4
	gtfDefault            bool // R3
}

// FeatureSupportFlags groups the boolean flags accepted by
// NewFeatureSupport.
type FeatureSupportFlags struct {
	Standby               bool
	Suspend               bool
	ActiveOff             bool
	SRGBDefault           bool
	PreferredTimingNative bool
	ContinuousFrequency   bool
	GTFDefault            bool
}

// NewFeatureSupport constructs a FeatureSupport. displayType must be an
// AnalogDisplayType or a DigitalDisplayType matching the description's
// VideoInput (spec.md §3, byte 0x18 bits 3-4 vs byte 0x14 bit 7);
// validateBaseBlock checks that consistency once VideoInput is known.
func NewFeatureSupport(displayType DisplayType, flags FeatureSupportFlags) (FeatureSupport, error) {
	if displayType == nil {
		return FeatureSupport{}, &InvalidFieldError{Field: "feature_support.display_type", Reason: "unknown display type"}
	}
	return FeatureSupport{
		standby:               flags.Standby,
		suspend:               flags.Suspend,
		activeOff:             flags.ActiveOff,
		displayType:           displayType,
		srgbDefault:           flags.SRGBDefault,
		preferredTimingNative: flags.PreferredTimingNative,
		continuousFrequency:   flags.ContinuousFrequency,
		gtfDefault:            flags.GTFDefault,
	}, nil
}

// digitalDisplayType reports whether f's DisplayType is the digital
// variant, for validateBaseBlock's byte 0x18 vs byte 0x14 cross-check.
func (f FeatureSupport) digitalDisplayType() bool {
	return f.displayType.digital()
}

func (f FeatureSupport) validateForRelease(release EdidRelease) error {
	if release == ReleaseR4 && (f.standby || f.suspend) {
		return &VersionUnsupportedError{Field: "feature_support.standby_suspend", Release: release}
	}
	if release == ReleaseR3 && f.continuousFrequency {
		return &VersionUnsupportedError{Field: "feature_support.continuous_frequency", Release: release}
	}
	return nil
}

// encode returns base block byte 0x18.
func (f FeatureSupport) encode() byte {
	var b byte
	if f.standby {
		b |= 1 << 7
	}
	if f.suspend {
		b |= 1 << 6
	}
	if f.activeOff {
		b |= 1 << 5
	}
	b |= f.displayType.bits() << 3
	if f.srgbDefault {
		b |= 1 << 2
	}
	if f.preferredTimingNative {
		b |= 1 << 1
	}
	if f.continuousFrequency || f.gtfDefault {
		b |= 1 << 0
	}
	return b
}

// Chromaticity holds the CIE (x,y) coordinates of the red, green, blue
// primaries and the white point, each component in [0,1) (base block
// bytes 0x19-0x22).
type Chromaticity struct {
	RedX, RedY     float64
	GreenX, GreenY float64
	BlueX, BlueY   float64
	WhiteX, WhiteY float64
}

// NewChromaticity validates that every coordinate is in [0,1).
func NewChromaticity(redX, redY, greenX, greenY, blueX, blueY, whiteX, whiteY float64) (Chromaticity, error) {
	c := Chromaticity{redX, redY, greenX, greenY, blueX, blueY, whiteX, whiteY}
	for name, v := range map[string]float64{
		"red_x": redX, "red_y": redY, "green_x": greenX, "green_y": greenY,
		"blue_x": blueX, "blue_y": blueY, "white_x": whiteX, "white_y": whiteY,
	} {
		if v < 0 || v >= 1 {
			return Chromaticity{}, &InvalidFieldError{Field: "chromaticity." + name, Reason: "must be in [0,1)"}
		}
	}
	return c, nil
}

// encode returns base block bytes 0x19-0x22 (10 bytes), per the VESA
// layout: byte 0x19 packs the low 2 bits of RedX/RedY/GreenX/GreenY, byte
// 0x1A packs the low 2 bits of BlueX/BlueY/WhiteX/WhiteY, and bytes
// 0x1B-0x22 carry the high 8 bits of each of the eight coordinates in
// RedX, RedY, GreenX, GreenY, BlueX, BlueY, WhiteX, WhiteY order.
func (c Chromaticity) encode() [10]byte {
	rx := packChroma10(c.RedX)
	ry := packChroma10(c.RedY)
	gx := packChroma10(c.GreenX)
	gy := packChroma10(c.GreenY)
	bx := packChroma10(c.BlueX)
	by := packChroma10(c.BlueY)
	wx := packChroma10(c.WhiteX)
	wy := packChroma10(c.WhiteY)

	var out [10]byte
	out[0] = byte(rx&0x03)<<6 | byte(ry&0x03)<<4 | byte(gx&0x03)<<2 | byte(gy&0x03)
	out[1] = byte(bx&0x03)<<6 | byte(by&0x03)<<4 | byte(wx&0x03)<<2 | byte(wy&0x03)
	out[2] = byte(rx >> 2)
	out[3] = byte(ry >> 2)
	out[4] = byte(gx >> 2)
	out[5] = byte(gy >> 2)
	out[6] = byte(bx >> 2)
	out[7] = byte(by >> 2)
	out[8] = byte(wx >> 2)
	out[9] = byte(wy >> 2)
	return out
}
