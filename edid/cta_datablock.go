package edid

// CtaDataBlock is one CTA-861 data block entry within a CtaExtension's
// data-block collection (spec.md §3, §4.E): Audio, Video,
// VendorSpecificHdmi, SpeakerAllocation, Extended::Colorimetry, or
// Extended::VideoCapability.
type CtaDataBlock interface {
	// encode returns the block's full wire encoding, including its
	// tag/length prefix byte(s).
	encode() ([]byte, error)
}

// CTA-861 data-block tag codes (upper 3 bits of the tag/length byte).
const (
	ctaTagAudio             = 1
	ctaTagVideo             = 2
	ctaTagVendorSpecific    = 3
	ctaTagSpeakerAllocation = 4
	ctaTagExtended          = 7
)

// CTA-861 extended tag codes, used when the primary tag is ctaTagExtended.
const (
	ctaExtTagVideoCapability = 0x00
	ctaExtTagColorimetry     = 0x05
)

// packTagLength returns the tag/length prefix byte: tag in bits 7-5,
// payloadLen in bits 4-0. Rejects payloads that don't fit the 5-bit
// length field.
func packTagLength(tag uint8, payloadLen int) (byte, error) {
	if payloadLen < 0 || payloadLen > 31 {
		return 0, &SlotOverflowError{Region: "cta_data_block.length", Needed: payloadLen, Available: 31}
	}
	return tag<<5 | uint8(payloadLen), nil
}

// AudioDataBlock is the CTA-861 Audio Data Block: a list of Short Audio
// Descriptors.
type AudioDataBlock struct {
	SADs []SAD
}

// NewAudioDataBlock validates that the encoded payload (3 bytes per SAD)
// fits the 5-bit length field.
func NewAudioDataBlock(sads ...SAD) (AudioDataBlock, error) {
	if len(sads)*3 > 31 {
		return AudioDataBlock{}, &SlotOverflowError{Region: "audio_data_block", Needed: len(sads) * 3, Available: 31}
	}
	return AudioDataBlock{SADs: sads}, nil
}

func (b AudioDataBlock) encode() ([]byte, error) {
	payload := make([]byte, 0, len(b.SADs)*3)
	for _, sad := range b.SADs {
		enc := sad.encode()
		payload = append(payload, enc[:]...)
	}
	header, err := packTagLength(ctaTagAudio, len(payload))
	if err != nil {
		return nil, err
	}
	return append([]byte{header}, payload...), nil
}

// VideoDataBlock is the CTA-861 Video Data Block: a list of VICs.
type VideoDataBlock struct {
	VICs []VIC
}

// NewVideoDataBlock validates that one byte per VIC fits the 5-bit
// length field.
func NewVideoDataBlock(vics ...VIC) (VideoDataBlock, error) {
	if len(vics) > 31 {
		return VideoDataBlock{}, &SlotOverflowError{Region: "video_data_block", Needed: len(vics), Available: 31}
	}
	return VideoDataBlock{VICs: vics}, nil
}

func (b VideoDataBlock) encode() ([]byte, error) {
	payload := make([]byte, len(b.VICs))
	for i, v := range b.VICs {
		payload[i] = v.encode()
	}
	header, err := packTagLength(ctaTagVideo, len(payload))
	if err != nil {
		return nil, err
	}
	return append([]byte{header}, payload...), nil
}

// SpeakerAllocationFlags packs the CTA-861 Speaker Allocation Data
// Block's 3-byte channel-group bitmap.
type SpeakerAllocationFlags struct {
	FrontLeftRight       bool
	LFE                  bool
	FrontCenter          bool
	RearLeftRight        bool
	RearCenter           bool
	FrontLeftRightCenter bool
	RearLeftRightCenter  bool
	FrontLeftRightWide   bool
	FrontLeftRightHigh   bool
	TopCenter            bool
	FrontCenterHigh      bool
}

// SpeakerAllocationDataBlock is the CTA-861 Speaker Allocation Data
// Block.
type SpeakerAllocationDataBlock struct {
	Flags SpeakerAllocationFlags
}

func (b SpeakerAllocationDataBlock) encode() ([]byte, error) {
	var b1, b2 byte
	f := b.Flags
	if f.FrontLeftRight {
		b1 |= 1 << 0
	}
	if f.LFE {
		b1 |= 1 << 1
	}
	if f.FrontCenter {
		b1 |= 1 << 2
	}
	if f.RearLeftRight {
		b1 |= 1 << 3
	}
	if f.RearCenter {
		b1 |= 1 << 4
	}
	if f.FrontLeftRightCenter {
		b1 |= 1 << 5
	}
	if f.RearLeftRightCenter {
		b1 |= 1 << 6
	}
	if f.FrontLeftRightWide {
		b1 |= 1 << 7
	}
	if f.FrontLeftRightHigh {
		b2 |= 1 << 0
	}
	if f.TopCenter {
		b2 |= 1 << 1
	}
	if f.FrontCenterHigh {
		b2 |= 1 << 2
	}
	header, err := packTagLength(ctaTagSpeakerAllocation, 3)
	if err != nil {
		return nil, err
	}
	return []byte{header, b1, b2, 0x00}, nil
}

// ColorimetryFlags packs the Extended Colorimetry Data Block's two
// payload bytes after the extended tag: the colorimetry flags byte and
// the metadata byte.
type ColorimetryFlags struct {
	XVYCC601     bool
	XVYCC709     bool
	SYCC601      bool
	AdobeYCC601  bool
	AdobeRGB     bool
	BT2020CYCC   bool
	BT2020YCC    bool
	BT2020RGB    bool
	GamutMetadata uint8 // low bits of the second payload byte (MD0-MD2)
}

// ColorimetryDataBlock is the Extended tag 0x05 Colorimetry Data Block.
type ColorimetryDataBlock struct {
	Flags ColorimetryFlags
}

func (b ColorimetryDataBlock) encode() ([]byte, error) {
	var b1 byte
	f := b.Flags
	if f.XVYCC601 {
		b1 |= 1 << 0
	}
	if f.XVYCC709 {
		b1 |= 1 << 1
	}
	if f.SYCC601 {
		b1 |= 1 << 2
	}
	if f.AdobeYCC601 {
		b1 |= 1 << 3
	}
	if f.AdobeRGB {
		b1 |= 1 << 4
	}
	if f.BT2020CYCC {
		b1 |= 1 << 5
	}
	if f.BT2020YCC {
		b1 |= 1 << 6
	}
	if f.BT2020RGB {
		b1 |= 1 << 7
	}
	b2 := f.GamutMetadata & 0x07

	payload := []byte{byte(ctaExtTagColorimetry), b1, b2}
	header, err := packTagLength(ctaTagExtended, len(payload))
	if err != nil {
		return nil, err
	}
	return append([]byte{header}, payload...), nil
}

// ScanBehavior enumerates the two-bit IT/CE overscan-underscan support
// codes used by VideoCapabilityDataBlock.
type ScanBehavior uint8

// Scan behavior codes.
const (
	ScanBehaviorNoData ScanBehavior = iota
	ScanBehaviorAlwaysOverscanned
	ScanBehaviorAlwaysUnderscanned
	ScanBehaviorBoth
)

// VideoCapabilityFlags packs the Extended Video Capability Data Block's
// one payload byte.
type VideoCapabilityFlags struct {
	QYQuantRangeSelectable bool
	QSQuantRangeSelectable bool
	PTScan                 ScanBehavior
	ITScan                 ScanBehavior
	CEScan                 ScanBehavior
}

// VideoCapabilityDataBlock is the Extended tag 0x00 Video Capability
// Data Block.
type VideoCapabilityDataBlock struct {
	Flags VideoCapabilityFlags
}

func (b VideoCapabilityDataBlock) encode() ([]byte, error) {
	f := b.Flags
	var v byte
	if f.QYQuantRangeSelectable {
		v |= 1 << 7
	}
	if f.QSQuantRangeSelectable {
		v |= 1 << 6
	}
	v |= (byte(f.PTScan) & 0x03) << 4
	v |= (byte(f.ITScan) & 0x03) << 2
	v |= byte(f.CEScan) & 0x03

	payload := []byte{byte(ctaExtTagVideoCapability), v}
	header, err := packTagLength(ctaTagExtended, len(payload))
	if err != nil {
		return nil, err
	}
	return append([]byte{header}, payload...), nil
}
