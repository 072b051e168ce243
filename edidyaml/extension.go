package edidyaml

import (
	"fmt"

	"github.com/ardnew/edidgen/edid"
)

// CtaExtensionDoc is the YAML form of edid.CtaExtension.
type CtaExtensionDoc struct {
	UnderscanITFormatsByDefault bool `yaml:"underscan_it_formats_by_default,omitempty"`
	BasicAudio                  bool `yaml:"basic_audio,omitempty"`
	YCbCr444Supported           bool `yaml:"ycbcr_444_supported,omitempty"`
	YCbCr422Supported           bool `yaml:"ycbcr_422_supported,omitempty"`
	NativeFormats               uint8 `yaml:"native_formats,omitempty"`

	DataBlocks      []DataBlockDoc       `yaml:"data_blocks,omitempty"`
	DetailedTimings []DetailedTimingDoc  `yaml:"detailed_timings,omitempty"`
}

func (e CtaExtensionDoc) build() (edid.CtaExtension, error) {
	var blocks []edid.CtaDataBlock
	for _, b := range e.DataBlocks {
		block, err := b.build()
		if err != nil {
			return edid.CtaExtension{}, err
		}
		blocks = append(blocks, block)
	}

	var timings []edid.DetailedTiming
	for _, t := range e.DetailedTimings {
		timing, err := t.build()
		if err != nil {
			return edid.CtaExtension{}, err
		}
		timings = append(timings, timing)
	}

	return edid.NewCtaExtension(
		e.UnderscanITFormatsByDefault,
		e.BasicAudio,
		e.YCbCr444Supported,
		e.YCbCr422Supported,
		e.NativeFormats,
		blocks,
		timings,
	)
}

// DataBlockDoc is the YAML form of one CTA-861 data block.
type DataBlockDoc struct {
	Kind string `yaml:"kind"` // audio, video, vendor_specific_hdmi, speaker_allocation, colorimetry, video_capability

	SADs []SADDoc `yaml:"sads,omitempty"`
	VICs []VICDoc `yaml:"vics,omitempty"`

	HdmiVsdb *HdmiVsdbDoc `yaml:"hdmi_vsdb,omitempty"`

	SpeakerAllocation *SpeakerAllocationDoc `yaml:"speaker_allocation,omitempty"`
	Colorimetry       *ColorimetryDoc       `yaml:"colorimetry,omitempty"`
	VideoCapability   *VideoCapabilityDoc   `yaml:"video_capability,omitempty"`
}

func (d DataBlockDoc) build() (edid.CtaDataBlock, error) {
	switch d.Kind {
	case "audio":
		var sads []edid.SAD
		for _, s := range d.SADs {
			sad, err := s.build()
			if err != nil {
				return nil, err
			}
			sads = append(sads, sad)
		}
		return edid.NewAudioDataBlock(sads...)
	case "video":
		var vics []edid.VIC
		for _, v := range d.VICs {
			vic, err := v.build()
			if err != nil {
				return nil, err
			}
			vics = append(vics, vic)
		}
		return edid.NewVideoDataBlock(vics...)
	case "vendor_specific_hdmi":
		if d.HdmiVsdb == nil {
			return nil, &edid.InvalidFieldError{Field: "data_block.hdmi_vsdb", Reason: "required for kind vendor_specific_hdmi"}
		}
		vsdb, err := d.HdmiVsdb.build()
		if err != nil {
			return nil, err
		}
		return edid.NewVendorSpecificHdmiDataBlock(vsdb)
	case "speaker_allocation":
		if d.SpeakerAllocation == nil {
			return nil, &edid.InvalidFieldError{Field: "data_block.speaker_allocation", Reason: "required for kind speaker_allocation"}
		}
		return edid.SpeakerAllocationDataBlock{Flags: d.SpeakerAllocation.build()}, nil
	case "colorimetry":
		if d.Colorimetry == nil {
			return nil, &edid.InvalidFieldError{Field: "data_block.colorimetry", Reason: "required for kind colorimetry"}
		}
		return edid.ColorimetryDataBlock{Flags: d.Colorimetry.build()}, nil
	case "video_capability":
		if d.VideoCapability == nil {
			return nil, &edid.InvalidFieldError{Field: "data_block.video_capability", Reason: "required for kind video_capability"}
		}
		flags, err := d.VideoCapability.build()
		if err != nil {
			return nil, err
		}
		return edid.VideoCapabilityDataBlock{Flags: flags}, nil
	default:
		return nil, &edid.InvalidFieldError{Field: "data_block.kind", Reason: fmt.Sprintf("unrecognized kind %q", d.Kind)}
	}
}

// SADDoc is the YAML form of edid.SAD.
type SADDoc struct {
	Channels    uint8    `yaml:"channels"`
	SampleRates []string `yaml:"sample_rates,omitempty"`
	BitDepths   []string `yaml:"bit_depths,omitempty"`
}

var samplingRatesByName = map[string]edid.SamplingRates{
	"32kHz":   edid.SamplingRate32kHz,
	"44.1kHz": edid.SamplingRate44_1kHz,
	"48kHz":   edid.SamplingRate48kHz,
	"88.2kHz": edid.SamplingRate88_2kHz,
	"96kHz":   edid.SamplingRate96kHz,
	"176.4kHz": edid.SamplingRate176_4kHz,
	"192kHz":  edid.SamplingRate192kHz,
}

var lpcmBitDepthsByName = map[string]edid.LPCMBitDepths{
	"16": edid.LPCMBitDepth16,
	"20": edid.LPCMBitDepth20,
	"24": edid.LPCMBitDepth24,
}

func (s SADDoc) build() (edid.SAD, error) {
	var rates edid.SamplingRates
	for _, name := range s.SampleRates {
		r, ok := samplingRatesByName[name]
		if !ok {
			return edid.SAD{}, &edid.InvalidFieldError{Field: "sad.sample_rates", Reason: fmt.Sprintf("unrecognized sample rate %q", name)}
		}
		rates |= r
	}
	var depths edid.LPCMBitDepths
	for _, name := range s.BitDepths {
		d, ok := lpcmBitDepthsByName[name]
		if !ok {
			return edid.SAD{}, &edid.InvalidFieldError{Field: "sad.bit_depths", Reason: fmt.Sprintf("unrecognized bit depth %q", name)}
		}
		depths |= d
	}
	return edid.NewSAD(s.Channels, rates, depths)
}

// VICDoc is the YAML form of edid.VIC.
type VICDoc struct {
	Code   uint8 `yaml:"code"`
	Native bool  `yaml:"native,omitempty"`
}

func (v VICDoc) build() (edid.VIC, error) {
	return edid.NewVIC(v.Code, v.Native)
}

// HdmiVsdbDoc is the YAML form of edid.HdmiVsdb.
type HdmiVsdbDoc struct {
	SourcePhysicalAddress [4]uint8 `yaml:"source_physical_address"`
	MaxTMDSRateMHz        uint16   `yaml:"max_tmds_rate_mhz,omitempty"`
	DVIDual               bool     `yaml:"dvi_dual,omitempty"`
	ACPISRCSupported      bool     `yaml:"acp_isrc_supported,omitempty"`
	DeepColor30Bits       bool     `yaml:"deep_color_30_bits,omitempty"`
	DeepColor36Bits       bool     `yaml:"deep_color_36_bits,omitempty"`
	DeepColor48Bits       bool     `yaml:"deep_color_48_bits,omitempty"`
	DeepColorYCbCr444     bool     `yaml:"deep_color_ycbcr_444,omitempty"`
	VICs                  []VICDoc `yaml:"vics,omitempty"`
}

func (h HdmiVsdbDoc) build() (edid.HdmiVsdb, error) {
	spa := edid.HdmiSourcePhysicalAddress{
		A: h.SourcePhysicalAddress[0],
		B: h.SourcePhysicalAddress[1],
		C: h.SourcePhysicalAddress[2],
		D: h.SourcePhysicalAddress[3],
	}
	vsdb, err := edid.NewHdmiVsdb(spa, h.MaxTMDSRateMHz)
	if err != nil {
		return edid.HdmiVsdb{}, err
	}
	vsdb.DVIDual = h.DVIDual
	vsdb.ACPISRCSupported = h.ACPISRCSupported
	vsdb.DeepColor30Bits = h.DeepColor30Bits
	vsdb.DeepColor36Bits = h.DeepColor36Bits
	vsdb.DeepColor48Bits = h.DeepColor48Bits
	vsdb.DeepColorYCbCr444 = h.DeepColorYCbCr444
	for _, v := range h.VICs {
		vic, err := v.build()
		if err != nil {
			return edid.HdmiVsdb{}, err
		}
		vsdb.VICs = append(vsdb.VICs, vic)
	}
	return vsdb, nil
}

// SpeakerAllocationDoc is the YAML form of edid.SpeakerAllocationFlags.
type SpeakerAllocationDoc struct {
	FrontLeftRight       bool `yaml:"front_left_right,omitempty"`
	LFE                  bool `yaml:"lfe,omitempty"`
	FrontCenter          bool `yaml:"front_center,omitempty"`
	RearLeftRight        bool `yaml:"rear_left_right,omitempty"`
	RearCenter           bool `yaml:"rear_center,omitempty"`
	FrontLeftRightCenter bool `yaml:"front_left_right_center,omitempty"`
	RearLeftRightCenter  bool `yaml:"rear_left_right_center,omitempty"`
	FrontLeftRightWide   bool `yaml:"front_left_right_wide,omitempty"`
	FrontLeftRightHigh   bool `yaml:"front_left_right_high,omitempty"`
	TopCenter            bool `yaml:"top_center,omitempty"`
	FrontCenterHigh      bool `yaml:"front_center_high,omitempty"`
}

func (s SpeakerAllocationDoc) build() edid.SpeakerAllocationFlags {
	return edid.SpeakerAllocationFlags{
		FrontLeftRight:       s.FrontLeftRight,
		LFE:                  s.LFE,
		FrontCenter:          s.FrontCenter,
		RearLeftRight:        s.RearLeftRight,
		RearCenter:           s.RearCenter,
		FrontLeftRightCenter: s.FrontLeftRightCenter,
		RearLeftRightCenter:  s.RearLeftRightCenter,
		FrontLeftRightWide:   s.FrontLeftRightWide,
		FrontLeftRightHigh:   s.FrontLeftRightHigh,
		TopCenter:            s.TopCenter,
		FrontCenterHigh:      s.FrontCenterHigh,
	}
}

// ColorimetryDoc is the YAML form of edid.ColorimetryFlags.
type ColorimetryDoc struct {
	XVYCC601      bool  `yaml:"xvycc601,omitempty"`
	XVYCC709      bool  `yaml:"xvycc709,omitempty"`
	SYCC601       bool  `yaml:"sycc601,omitempty"`
	AdobeYCC601   bool  `yaml:"adobe_ycc601,omitempty"`
	AdobeRGB      bool  `yaml:"adobe_rgb,omitempty"`
	BT2020CYCC    bool  `yaml:"bt2020_cycc,omitempty"`
	BT2020YCC     bool  `yaml:"bt2020_ycc,omitempty"`
	BT2020RGB     bool  `yaml:"bt2020_rgb,omitempty"`
	GamutMetadata uint8 `yaml:"gamut_metadata,omitempty"`
}

func (c ColorimetryDoc) build() edid.ColorimetryFlags {
	return edid.ColorimetryFlags{
		XVYCC601:      c.XVYCC601,
		XVYCC709:      c.XVYCC709,
		SYCC601:       c.SYCC601,
		AdobeYCC601:   c.AdobeYCC601,
		AdobeRGB:      c.AdobeRGB,
		BT2020CYCC:    c.BT2020CYCC,
		BT2020YCC:     c.BT2020YCC,
		BT2020RGB:     c.BT2020RGB,
		GamutMetadata: c.GamutMetadata,
	}
}

// VideoCapabilityDoc is the YAML form of edid.VideoCapabilityFlags.
type VideoCapabilityDoc struct {
	QYQuantRangeSelectable bool   `yaml:"qy_quant_range_selectable,omitempty"`
	QSQuantRangeSelectable bool   `yaml:"qs_quant_range_selectable,omitempty"`
	ITScan                 string `yaml:"it_scan,omitempty"`
	CEScan                 string `yaml:"ce_scan,omitempty"`
}

var scanBehaviorsByName = map[string]edid.ScanBehavior{
	"no_data":            edid.ScanBehaviorNoData,
	"always_overscanned":  edid.ScanBehaviorAlwaysOverscanned,
	"always_underscanned": edid.ScanBehaviorAlwaysUnderscanned,
	"both":                edid.ScanBehaviorBoth,
}

func (v VideoCapabilityDoc) build() (edid.VideoCapabilityFlags, error) {
	it := edid.ScanBehaviorNoData
	if v.ITScan != "" {
		var ok bool
		it, ok = scanBehaviorsByName[v.ITScan]
		if !ok {
			return edid.VideoCapabilityFlags{}, &edid.InvalidFieldError{Field: "video_capability.it_scan", Reason: fmt.Sprintf("unrecognized scan behavior %q", v.ITScan)}
		}
	}
	ce := edid.ScanBehaviorNoData
	if v.CEScan != "" {
		var ok bool
		ce, ok = scanBehaviorsByName[v.CEScan]
		if !ok {
			return edid.VideoCapabilityFlags{}, &edid.InvalidFieldError{Field: "video_capability.ce_scan", Reason: fmt.Sprintf("unrecognized scan behavior %q", v.CEScan)}
		}
	}
	return edid.VideoCapabilityFlags{
		QYQuantRangeSelectable: v.QYQuantRangeSelectable,
		QSQuantRangeSelectable: v.QSQuantRangeSelectable,
		ITScan:                 it,
		CEScan:                 ce,
	}, nil
}
