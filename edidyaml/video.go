package edidyaml

import (
	"fmt"

	"github.com/ardnew/edidgen/edid"
)

// VideoInputDoc is the YAML form of edid.VideoInput.
type VideoInputDoc struct {
	Kind string `yaml:"kind"` // "analog" or "digital"

	// Analog fields.
	SignalLevel       string `yaml:"signal_level,omitempty"`
	BlankToBlackSetup bool   `yaml:"blank_to_black_setup,omitempty"`
	SeparateSync      bool   `yaml:"separate_sync,omitempty"`
	CompositeSync     bool   `yaml:"composite_sync,omitempty"`
	CompositeOnGreen  bool   `yaml:"composite_on_green,omitempty"`
	SerrationOnVsync  bool   `yaml:"serration_on_vsync,omitempty"`

	// Digital fields.
	DFP1Compatible bool   `yaml:"dfp1_compatible,omitempty"` // R3
	BitDepth       string `yaml:"bit_depth,omitempty"`       // R4
	Interface      string `yaml:"interface,omitempty"`       // R4
}

func (v VideoInputDoc) build() (edid.VideoInput, error) {
	switch v.Kind {
	case "analog":
		level, err := parseSignalLevel(v.SignalLevel)
		if err != nil {
			return edid.VideoInput{}, err
		}
		return edid.NewAnalogVideoInput(level, v.BlankToBlackSetup, edid.AnalogSyncCapabilities{
			SeparateSync:     v.SeparateSync,
			CompositeSync:    v.CompositeSync,
			CompositeOnGreen: v.CompositeOnGreen,
			SerrationOnVsync: v.SerrationOnVsync,
		})
	case "digital":
		if v.BitDepth != "" || v.Interface != "" {
			depth, err := parseBitDepth(v.BitDepth)
			if err != nil {
				return edid.VideoInput{}, err
			}
			iface, err := parseInterface(v.Interface)
			if err != nil {
				return edid.VideoInput{}, err
			}
			return edid.NewDigitalVideoInputR4(depth, iface)
		}
		return edid.NewDigitalVideoInputR3(v.DFP1Compatible)
	default:
		return edid.VideoInput{}, &edid.InvalidFieldError{Field: "video_input.kind", Reason: fmt.Sprintf("unrecognized kind %q, want analog or digital", v.Kind)}
	}
}

var signalLevelsByName = map[string]edid.SignalLevel{
	"0.700/-0.300": edid.SignalLevel0700_0300,
	"0.714/-0.286": edid.SignalLevel0714_0286,
	"1.000/-0.400": edid.SignalLevel1000_0400,
	"0.700/-0.700": edid.SignalLevel0700_0700,
}

func parseSignalLevel(s string) (edid.SignalLevel, error) {
	if s == "" {
		return edid.SignalLevel0700_0300, nil
	}
	l, ok := signalLevelsByName[s]
	if !ok {
		return 0, &edid.InvalidFieldError{Field: "video_input.signal_level", Reason: fmt.Sprintf("unrecognized signal level %q", s)}
	}
	return l, nil
}

var bitDepthsByName = map[string]edid.DigitalBitDepth{
	"undefined": edid.BitDepthUndefined,
	"6":         edid.BitDepth6,
	"8":         edid.BitDepth8,
	"10":        edid.BitDepth10,
	"12":        edid.BitDepth12,
	"14":        edid.BitDepth14,
	"16":        edid.BitDepth16,
}

func parseBitDepth(s string) (edid.DigitalBitDepth, error) {
	if s == "" {
		return edid.BitDepthUndefined, nil
	}
	d, ok := bitDepthsByName[s]
	if !ok {
		return 0, &edid.InvalidFieldError{Field: "video_input.bit_depth", Reason: fmt.Sprintf("unrecognized bit depth %q", s)}
	}
	return d, nil
}

var interfacesByName = map[string]edid.DigitalInterface{
	"undefined":    edid.InterfaceUndefined,
	"dvi":          edid.InterfaceDVI,
	"hdmi-a":       edid.InterfaceHDMIa,
	"hdmi-b":       edid.InterfaceHDMIb,
	"mddi":         edid.InterfaceMDDI,
	"displayport":  edid.InterfaceDisplayPort,
}

func parseInterface(s string) (edid.DigitalInterface, error) {
	if s == "" {
		return edid.InterfaceUndefined, nil
	}
	i, ok := interfacesByName[s]
	if !ok {
		return 0, &edid.InvalidFieldError{Field: "video_input.interface", Reason: fmt.Sprintf("unrecognized interface %q", s)}
	}
	return i, nil
}

// DisplaySizeDoc is the YAML form of edid.DisplaySize.
type DisplaySizeDoc struct {
	Kind  string  `yaml:"kind"` // "undefined", "dimensions", "aspect_landscape", "aspect_portrait"
	HCm   uint8   `yaml:"h_cm,omitempty"`
	VCm   uint8   `yaml:"v_cm,omitempty"`
	Ratio float64 `yaml:"ratio,omitempty"`
}

func (d DisplaySizeDoc) build() (edid.DisplaySize, error) {
	switch d.Kind {
	case "", "undefined":
		return edid.NewDisplaySizeUndefined(), nil
	case "dimensions":
		return edid.NewDisplaySizeDimensions(d.HCm, d.VCm)
	case "aspect_landscape":
		return edid.NewDisplaySizeAspectLandscape(d.Ratio)
	case "aspect_portrait":
		return edid.NewDisplaySizeAspectPortrait(d.Ratio)
	default:
		return edid.DisplaySize{}, &edid.InvalidFieldError{Field: "display_size.kind", Reason: fmt.Sprintf("unrecognized kind %q", d.Kind)}
	}
}

// FeatureSupportDoc is the YAML form of edid.FeatureSupport.
type FeatureSupportDoc struct {
	DisplayType           string `yaml:"display_type"`
	Standby               bool   `yaml:"standby,omitempty"`
	Suspend               bool   `yaml:"suspend,omitempty"`
	ActiveOff             bool   `yaml:"active_off,omitempty"`
	SRGBDefault           bool   `yaml:"srgb_default,omitempty"`
	PreferredTimingNative bool   `yaml:"preferred_timing_native,omitempty"`
	ContinuousFrequency   bool   `yaml:"continuous_frequency,omitempty"`
	GTFDefault            bool   `yaml:"gtf_default,omitempty"`
}

var displayTypesByName = map[string]edid.DisplayType{
	"monochrome":           edid.DisplayTypeMonochrome,
	"rgb_color":            edid.DisplayTypeRGBColor,
	"non_rgb_color":        edid.DisplayTypeNonRGBColor,
	"undefined_color":      edid.DisplayTypeUndefinedColor,
	"rgb444":               edid.DisplayTypeRGB444,
	"rgb444_ycbcr444":      edid.DisplayTypeRGB444YCbCr444,
	"rgb444_ycbcr422":      edid.DisplayTypeRGB444YCbCr422,
	"rgb444_ycbcr444_ycbcr422": edid.DisplayTypeRGB444YCbCr444YCbCr422,
}

func (f FeatureSupportDoc) build() (edid.FeatureSupport, error) {
	displayType, ok := displayTypesByName[f.DisplayType]
	if !ok {
		return edid.FeatureSupport{}, &edid.InvalidFieldError{Field: "features.display_type", Reason: fmt.Sprintf("unrecognized display type %q", f.DisplayType)}
	}
	return edid.NewFeatureSupport(displayType, edid.FeatureSupportFlags{
		Standby:               f.Standby,
		Suspend:               f.Suspend,
		ActiveOff:             f.ActiveOff,
		SRGBDefault:           f.SRGBDefault,
		PreferredTimingNative: f.PreferredTimingNative,
		ContinuousFrequency:   f.ContinuousFrequency,
		GTFDefault:            f.GTFDefault,
	})
}

// ChromaticityDoc is the YAML form of edid.Chromaticity.
type ChromaticityDoc struct {
	RedX   float64 `yaml:"red_x"`
	RedY   float64 `yaml:"red_y"`
	GreenX float64 `yaml:"green_x"`
	GreenY float64 `yaml:"green_y"`
	BlueX  float64 `yaml:"blue_x"`
	BlueY  float64 `yaml:"blue_y"`
	WhiteX float64 `yaml:"white_x"`
	WhiteY float64 `yaml:"white_y"`
}

func (c ChromaticityDoc) build() (edid.Chromaticity, error) {
	return edid.NewChromaticity(c.RedX, c.RedY, c.GreenX, c.GreenY, c.BlueX, c.BlueY, c.WhiteX, c.WhiteY)
}

// StandardTimingDoc is the YAML form of one edid.StandardTiming entry.
type StandardTimingDoc struct {
	HActive   uint16 `yaml:"h_active"`
	Aspect    string `yaml:"aspect"`
	RefreshHz uint8  `yaml:"refresh_hz"`
}

var standardTimingAspectsByName = map[string]edid.StandardTimingAspect{
	"16:10": edid.Aspect16x10,
	"4:3":   edid.Aspect4x3,
	"5:4":   edid.Aspect5x4,
	"16:9":  edid.Aspect16x9,
}

func (s StandardTimingDoc) build() (edid.StandardTiming, error) {
	aspect, ok := standardTimingAspectsByName[s.Aspect]
	if !ok {
		return edid.StandardTiming{}, &edid.InvalidFieldError{Field: "standard_timing.aspect", Reason: fmt.Sprintf("unrecognized aspect %q", s.Aspect)}
	}
	return edid.NewStandardTiming(s.HActive, aspect, s.RefreshHz)
}
