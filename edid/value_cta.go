package edid

// VIC is a CTA-861 Video Identification Code with its native-format flag
// (spec.md §3). Construct via NewVIC.
type VIC struct {
	code   uint8
	native bool
}

// NewVIC validates code against the range required by native: a native
// VIC must lie in 1..=64; a non-native VIC must lie in 65..=127 or
// 193..=255.
func NewVIC(code uint8, native bool) (VIC, error) {
	if native {
		if code < 1 || code > 64 {
			return VIC{}, &InvalidFieldError{Field: "vic.code", Reason: "native VICs must be in 1..=64"}
		}
	} else {
		if !(code >= 65 && code <= 127) && !(code >= 193 && code <= 255) {
			return VIC{}, &InvalidFieldError{Field: "vic.code", Reason: "non-native VICs must be in 65..=127 or 193..=255"}
		}
	}
	return VIC{code: code, native: native}, nil
}

// encode returns the one-byte wire encoding: the code with the native
// flag in the MSB.
func (v VIC) encode() byte {
	b := v.code
	if v.native {
		b |= 0x80
	}
	return b
}

// AudioFormat enumerates the Short Audio Descriptor format field. Only
// LPCM is in scope for this core (spec.md §4.E).
type AudioFormat uint8

// Audio formats.
const (
	AudioFormatLPCM AudioFormat = 1
)

// SamplingRates is a bitmap of supported sampling rates for a Short
// Audio Descriptor (byte 2 of the SAD).
type SamplingRates uint8

// Sampling-rate bits, low to high.
const (
	SamplingRate32kHz  SamplingRates = 1 << 0
	SamplingRate44_1kHz SamplingRates = 1 << 1
	SamplingRate48kHz  SamplingRates = 1 << 2
	SamplingRate88_2kHz SamplingRates = 1 << 3
	SamplingRate96kHz  SamplingRates = 1 << 4
	SamplingRate176_4kHz SamplingRates = 1 << 5
	SamplingRate192kHz SamplingRates = 1 << 6
)

// LPCMBitDepths is a bitmap of supported LPCM sample bit depths (byte 3
// of the SAD, LPCM format only).
type LPCMBitDepths uint8

// LPCM bit-depth bits.
const (
	LPCMBitDepth16 LPCMBitDepths = 1 << 0
	LPCMBitDepth20 LPCMBitDepths = 1 << 1
	LPCMBitDepth24 LPCMBitDepths = 1 << 2
)

// SAD is a Short Audio Descriptor (spec.md §3, §4.E). Construct via
// NewSAD.
type SAD struct {
	Format      AudioFormat
	Channels    uint8 // 1..=8
	SampleRates SamplingRates
	BitDepths   LPCMBitDepths
}

// NewSAD validates Channels and Format.
func NewSAD(channels uint8, rates SamplingRates, depths LPCMBitDepths) (SAD, error) {
	if channels < 1 || channels > 8 {
		return SAD{}, &InvalidFieldError{Field: "sad.channels", Reason: "must be 1..=8"}
	}
	return SAD{Format: AudioFormatLPCM, Channels: channels, SampleRates: rates, BitDepths: depths}, nil
}

// encode returns the three-byte wire encoding.
func (s SAD) encode() [3]byte {
	return [3]byte{
		byte(s.Format)<<3 | (s.Channels - 1),
		byte(s.SampleRates),
		byte(s.BitDepths),
	}
}

// HdmiSourcePhysicalAddress is the four-nibble HDMI Source Physical
// Address (a.b.c.d), each nibble 0..=15.
type HdmiSourcePhysicalAddress struct {
	A, B, C, D uint8
}

func (a HdmiSourcePhysicalAddress) validate() error {
	if a.A > 15 || a.B > 15 || a.C > 15 || a.D > 15 {
		return &InvalidFieldError{Field: "hdmi_vsdb.source_physical_address", Reason: "each nibble must be 0..=15"}
	}
	return nil
}

func (a HdmiSourcePhysicalAddress) encode() uint16 {
	return uint16(a.A)<<12 | uint16(a.B)<<8 | uint16(a.C)<<4 | uint16(a.D)
}

// HdmiVsdb is the Vendor-Specific Data Block payload for the HDMI
// Licensing LLC OUI (spec.md §3, §4.E). Construct via NewHdmiVsdb.
type HdmiVsdb struct {
	SourcePhysicalAddress HdmiSourcePhysicalAddress
	MaxTMDSRateMHz        uint16 // 0 = absent; otherwise 165..=1275, a multiple of 5
	DVIDual               bool
	ACPISRCSupported      bool
	DeepColor30Bits       bool
	DeepColor36Bits       bool
	DeepColor48Bits       bool
	DeepColorYCbCr444     bool
	VICs                  []VIC
}

// NewHdmiVsdb validates the source physical address and, if present,
// MaxTMDSRateMHz (spec.md §4.E: 165..=1275 MHz and a multiple of 5).
func NewHdmiVsdb(spa HdmiSourcePhysicalAddress, maxTMDSRateMHz uint16) (HdmiVsdb, error) {
	if err := spa.validate(); err != nil {
		return HdmiVsdb{}, err
	}
	if maxTMDSRateMHz != 0 {
		if maxTMDSRateMHz < 165 || maxTMDSRateMHz > 1275 || maxTMDSRateMHz%5 != 0 {
			return HdmiVsdb{}, &InvalidFieldError{Field: "hdmi_vsdb.max_tmds_rate_mhz", Reason: "must be 165..=1275 and a multiple of 5"}
		}
	}
	return HdmiVsdb{SourcePhysicalAddress: spa, MaxTMDSRateMHz: maxTMDSRateMHz}, nil
}
