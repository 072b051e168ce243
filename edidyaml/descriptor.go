package edidyaml

import (
	"fmt"

	"github.com/ardnew/edidgen/edid"
)

// DescriptorDoc is the YAML form of one base-block descriptor slot.
type DescriptorDoc struct {
	Kind string `yaml:"kind"` // detailed_timing, product_name, product_serial, data_string, display_range_limits, dummy

	Text string `yaml:"text,omitempty"` // product_name / product_serial / data_string

	DetailedTiming *DetailedTimingDoc   `yaml:"detailed_timing,omitempty"`
	RangeLimits    *DisplayRangeLimitsDoc `yaml:"display_range_limits,omitempty"`
}

func (d DescriptorDoc) build() (edid.Descriptor, error) {
	switch d.Kind {
	case "detailed_timing":
		if d.DetailedTiming == nil {
			return nil, &edid.InvalidFieldError{Field: "descriptor.detailed_timing", Reason: "required for kind detailed_timing"}
		}
		t, err := d.DetailedTiming.build()
		if err != nil {
			return nil, err
		}
		return edid.NewDetailedTimingDescriptor(t), nil
	case "product_name":
		return edid.NewProductNameDescriptor(d.Text)
	case "product_serial":
		return edid.NewProductSerialDescriptor(d.Text)
	case "data_string":
		return edid.NewDataStringDescriptor(d.Text)
	case "display_range_limits":
		if d.RangeLimits == nil {
			return nil, &edid.InvalidFieldError{Field: "descriptor.display_range_limits", Reason: "required for kind display_range_limits"}
		}
		limits, err := d.RangeLimits.build()
		if err != nil {
			return nil, err
		}
		return edid.NewDisplayRangeLimitsDescriptor(limits), nil
	case "dummy":
		return edid.DummyDescriptor(), nil
	default:
		return nil, &edid.InvalidFieldError{Field: "descriptor.kind", Reason: fmt.Sprintf("unrecognized kind %q", d.Kind)}
	}
}

// DetailedTimingDoc is the YAML form of edid.DetailedTiming.
type DetailedTimingDoc struct {
	PixelClock10KHz uint16 `yaml:"pixel_clock_10khz"`
	HActive         uint16 `yaml:"h_active"`
	HBlanking       uint16 `yaml:"h_blanking"`
	VActive         uint16 `yaml:"v_active"`
	VBlanking       uint16 `yaml:"v_blanking"`
	HFrontPorch     uint16 `yaml:"h_front_porch"`
	HSyncPulse      uint16 `yaml:"h_sync_pulse"`
	VFrontPorch     uint8  `yaml:"v_front_porch"`
	VSyncPulse      uint8  `yaml:"v_sync_pulse"`
	HImageSizeMM    uint16 `yaml:"h_image_size_mm"`
	VImageSizeMM    uint16 `yaml:"v_image_size_mm"`
	HBorderPx       uint8  `yaml:"h_border_px,omitempty"`
	VBorderPx       uint8  `yaml:"v_border_px,omitempty"`
	Interlaced      bool   `yaml:"interlaced,omitempty"`
	Stereo          string `yaml:"stereo,omitempty"`
	Signal          SignalDoc `yaml:"signal"`
}

var stereoModesByName = map[string]edid.StereoMode{
	"none":                        edid.StereoNone,
	"field_sequential_right":      edid.StereoFieldSequentialRight,
	"field_sequential_left":       edid.StereoFieldSequentialLeft,
	"two_way_interleaved_right":   edid.StereoTwoWayInterleavedRight,
	"two_way_interleaved_left":    edid.StereoTwoWayInterleavedLeft,
	"four_way_interleaved":        edid.StereoFourWayInterleaved,
	"side_by_side_interleaved":    edid.StereoSideBySideInterleaved,
}

func (d DetailedTimingDoc) build() (edid.DetailedTiming, error) {
	stereo := edid.StereoNone
	if d.Stereo != "" {
		var ok bool
		stereo, ok = stereoModesByName[d.Stereo]
		if !ok {
			return edid.DetailedTiming{}, &edid.InvalidFieldError{Field: "detailed_timing.stereo", Reason: fmt.Sprintf("unrecognized stereo mode %q", d.Stereo)}
		}
	}
	signal, err := d.Signal.build()
	if err != nil {
		return edid.DetailedTiming{}, err
	}
	return edid.NewDetailedTiming(edid.DetailedTiming{
		PixelClock10KHz: d.PixelClock10KHz,
		HActive:         d.HActive,
		HBlanking:       d.HBlanking,
		VActive:         d.VActive,
		VBlanking:       d.VBlanking,
		HFrontPorch:     d.HFrontPorch,
		HSyncPulse:      d.HSyncPulse,
		VFrontPorch:     d.VFrontPorch,
		VSyncPulse:      d.VSyncPulse,
		HImageSizeMM:    d.HImageSizeMM,
		VImageSizeMM:    d.VImageSizeMM,
		HBorderPx:       d.HBorderPx,
		VBorderPx:       d.VBorderPx,
		Interlaced:      d.Interlaced,
		Stereo:          stereo,
		Signal:          signal,
	})
}

// SignalDoc is the YAML form of edid.DetailedTimingSignal.
type SignalDoc struct {
	Kind string `yaml:"kind"` // analog, digital_composite, digital_separate

	Bipolar  bool   `yaml:"bipolar,omitempty"`
	Serrated bool   `yaml:"serrated,omitempty"`
	SyncOn   string `yaml:"sync_on,omitempty"`

	HSyncPolarity bool `yaml:"hsync_polarity,omitempty"`
	HSyncPositive bool `yaml:"hsync_positive,omitempty"`
	VSyncPositive bool `yaml:"vsync_positive,omitempty"`
}

var analogSyncOnByName = map[string]edid.AnalogSyncOn{
	"hsync":          edid.SyncOnHSync,
	"all_three_rgb":  edid.SyncOnAllThreeRGB,
	"green_only":     edid.SyncOnGreenOnly,
}

func (s SignalDoc) build() (edid.DetailedTimingSignal, error) {
	switch s.Kind {
	case "analog":
		syncOn := edid.SyncOnHSync
		if s.SyncOn != "" {
			var ok bool
			syncOn, ok = analogSyncOnByName[s.SyncOn]
			if !ok {
				return nil, &edid.InvalidFieldError{Field: "signal.sync_on", Reason: fmt.Sprintf("unrecognized sync_on %q", s.SyncOn)}
			}
		}
		return edid.AnalogSignal{Bipolar: s.Bipolar, Serrated: s.Serrated, SyncOn: syncOn}, nil
	case "digital_composite":
		return edid.DigitalCompositeSignal{Serrated: s.Serrated, HSyncPolarity: s.HSyncPolarity}, nil
	case "digital_separate":
		return edid.DigitalSeparateSignal{HSyncPositive: s.HSyncPositive, VSyncPositive: s.VSyncPositive}, nil
	default:
		return nil, &edid.InvalidFieldError{Field: "signal.kind", Reason: fmt.Sprintf("unrecognized kind %q", s.Kind)}
	}
}

// DisplayRangeLimitsDoc is the YAML form of edid.DisplayRangeLimits.
type DisplayRangeLimitsDoc struct {
	MinVRateHz       uint16 `yaml:"min_v_rate_hz"`
	MaxVRateHz       uint16 `yaml:"max_v_rate_hz"`
	MinHRateKHz      uint16 `yaml:"min_h_rate_khz"`
	MaxHRateKHz      uint16 `yaml:"max_h_rate_khz"`
	MaxPixelClockMHz uint16 `yaml:"max_pixel_clock_mhz,omitempty"`

	TimingSupport string `yaml:"timing_support"` // default_gtf, secondary_gtf, range_limits_only, cvt_supported

	SecondaryGTF *SecondaryGTFDoc `yaml:"secondary_gtf,omitempty"`
	CVTVersion   *CVTVersionDoc   `yaml:"cvt_version,omitempty"`
}

// SecondaryGTFDoc is the YAML form of edid.SecondaryGTF.
type SecondaryGTFDoc struct {
	StartFreqKHz uint16  `yaml:"start_freq_khz"`
	C            float64 `yaml:"c"`
	M            uint16  `yaml:"m"`
	K            uint8   `yaml:"k"`
	J            float64 `yaml:"j"`
}

// CVTVersionDoc is the YAML form of edid.CVTVersion.
type CVTVersionDoc struct {
	Major uint8 `yaml:"major"`
	Minor uint8 `yaml:"minor"`
}

func (d DisplayRangeLimitsDoc) build() (edid.DisplayRangeLimits, error) {
	var support edid.RangeLimitsTimingSupport
	switch d.TimingSupport {
	case "", "default_gtf":
		support = edid.DefaultGTF{}
	case "secondary_gtf":
		if d.SecondaryGTF == nil {
			return edid.DisplayRangeLimits{}, &edid.InvalidFieldError{Field: "display_range_limits.secondary_gtf", Reason: "required for timing_support secondary_gtf"}
		}
		support = edid.SecondaryGTF{
			StartFreqKHz: d.SecondaryGTF.StartFreqKHz,
			C:            d.SecondaryGTF.C,
			M:            d.SecondaryGTF.M,
			K:            d.SecondaryGTF.K,
			J:            d.SecondaryGTF.J,
		}
	case "range_limits_only":
		support = edid.RangeLimitsOnly{}
	case "cvt_supported":
		version := edid.CVTVersion{Major: 1, Minor: 1}
		if d.CVTVersion != nil {
			version = edid.CVTVersion{Major: d.CVTVersion.Major, Minor: d.CVTVersion.Minor}
		}
		support = edid.CVTSupported{Version: version}
	default:
		return edid.DisplayRangeLimits{}, &edid.InvalidFieldError{Field: "display_range_limits.timing_support", Reason: fmt.Sprintf("unrecognized timing_support %q", d.TimingSupport)}
	}
	return edid.NewDisplayRangeLimits(d.MinVRateHz, d.MaxVRateHz, d.MinHRateKHz, d.MaxHRateKHz, d.MaxPixelClockMHz, support)
}
