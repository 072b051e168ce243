package edid

// CtaExtensionSize is the fixed size, in bytes, of a CTA-861 extension
// block.
const CtaExtensionSize = 128

const ctaExtensionHeaderSize = 4  // tag, revision, DTD offset, flags
const ctaExtensionPayloadSize = 123 // bytes 0x04..0x7E, shared by data blocks and DTDs

// CtaExtension is the CTA-861 extension block (spec.md §3, §4.F).
// Construct via NewCtaExtension.
type CtaExtension struct {
	UnderscanITFormatsByDefault bool
	BasicAudio                  bool
	YCbCr444Supported           bool
	YCbCr422Supported           bool
	NativeFormats                uint8 // 0..=15
	DataBlocks                   []CtaDataBlock
	DetailedTimings              []DetailedTiming
}

// NewCtaExtension validates the co-setting of YCbCr444/422 support and
// the native-format count (spec.md §3, §4.F). The total-payload-size
// invariant is checked by encode, since it depends on the encoded size
// of every data block.
func NewCtaExtension(
	underscanITByDefault, basicAudio, ycbcr444, ycbcr422 bool,
	nativeFormats uint8,
	dataBlocks []CtaDataBlock,
	detailedTimings []DetailedTiming,
) (CtaExtension, error) {
	if ycbcr444 != ycbcr422 {
		return CtaExtension{}, &CrossFieldError{
			Fields: []string{"ycbcr_444_supported", "ycbcr_422_supported"},
			Reason: "must both be true or both be false",
		}
	}
	if nativeFormats > 15 {
		return CtaExtension{}, &InvalidFieldError{Field: "cta_extension.native_formats", Reason: "must be 0..=15"}
	}
	return CtaExtension{
		UnderscanITFormatsByDefault: underscanITByDefault,
		BasicAudio:                  basicAudio,
		YCbCr444Supported:           ycbcr444,
		YCbCr422Supported:           ycbcr422,
		NativeFormats:               nativeFormats,
		DataBlocks:                  dataBlocks,
		DetailedTimings:             detailedTimings,
	}, nil
}

func (c CtaExtension) flagsByte() byte {
	var b byte
	if c.UnderscanITFormatsByDefault {
		b |= 1 << 7
	}
	if c.BasicAudio {
		b |= 1 << 6
	}
	if c.YCbCr444Supported {
		b |= 1 << 5
	}
	if c.YCbCr422Supported {
		b |= 1 << 4
	}
	b |= c.NativeFormats & 0x0F
	return b
}

// encode assembles the 128-byte CTA-861 extension block.
func (c CtaExtension) encode() ([CtaExtensionSize]byte, error) {
	var dataBlockBytes []byte
	for _, block := range c.DataBlocks {
		enc, err := block.encode()
		if err != nil {
			return [CtaExtensionSize]byte{}, err
		}
		dataBlockBytes = append(dataBlockBytes, enc...)
	}

	dtdBytes := len(c.DetailedTimings) * 18
	total := len(dataBlockBytes) + dtdBytes
	if total > ctaExtensionPayloadSize {
		return [CtaExtensionSize]byte{}, &SlotOverflowError{
			Region:    "cta_extension.payload",
			Needed:    total,
			Available: ctaExtensionPayloadSize,
		}
	}

	var b [CtaExtensionSize]byte
	b[0x00] = 0x02
	b[0x01] = 0x03

	// spec.md §9 Open Question: byte 0x02 encodes the header length (4)
	// even when there are no data blocks and no DTDs, matching
	// edid-decode's expectation rather than a bare 0x00.
	dtdOffset := ctaExtensionHeaderSize + len(dataBlockBytes)
	b[0x02] = byte(dtdOffset)
	b[0x03] = c.flagsByte()

	copy(b[ctaExtensionHeaderSize:dtdOffset], dataBlockBytes)

	pos := dtdOffset
	for _, t := range c.DetailedTimings {
		enc := t.encode()
		copy(b[pos:pos+18], enc[:])
		pos += 18
	}

	b[0x7F] = checksum8(b[0x00:0x7F])
	return b, nil
}
