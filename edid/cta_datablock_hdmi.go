package edid

// hdmiOUI is the 24-bit IEEE OUI assigned to HDMI Licensing LLC,
// 00-0C-03, written little-endian on the wire.
var hdmiOUI = [3]byte{0x03, 0x0C, 0x00}

// VendorSpecificHdmiDataBlock is the CTA-861 Vendor-Specific Data Block
// carrying the HDMI Licensing LLC OUI payload (spec.md §3, §4.E).
type VendorSpecificHdmiDataBlock struct {
	Vsdb HdmiVsdb
}

// NewVendorSpecificHdmiDataBlock validates that the encoded payload fits
// the 5-bit length field.
func NewVendorSpecificHdmiDataBlock(vsdb HdmiVsdb) (VendorSpecificHdmiDataBlock, error) {
	b := VendorSpecificHdmiDataBlock{Vsdb: vsdb}
	if _, err := b.payload(); err != nil {
		return VendorSpecificHdmiDataBlock{}, err
	}
	return b, nil
}

func (b VendorSpecificHdmiDataBlock) payload() ([]byte, error) {
	v := b.Vsdb
	spa := v.SourcePhysicalAddress.encode()

	var flags byte
	if v.ACPISRCSupported {
		flags |= 1 << 7
	}
	if v.DeepColor48Bits {
		flags |= 1 << 6
	}
	if v.DeepColor36Bits {
		flags |= 1 << 5
	}
	if v.DeepColor30Bits {
		flags |= 1 << 4
	}
	if v.DeepColorYCbCr444 {
		flags |= 1 << 3
	}
	if v.DVIDual {
		flags |= 1 << 0
	}

	maxTMDS := byte(0)
	if v.MaxTMDSRateMHz != 0 {
		maxTMDS = byte(v.MaxTMDSRateMHz / 5)
	}

	videoPresent := byte(0)
	if len(v.VICs) > 0 {
		videoPresent = 1 << 5
	}

	payload := []byte{
		hdmiOUI[0], hdmiOUI[1], hdmiOUI[2],
		byte(spa >> 8), byte(spa),
		flags,
		maxTMDS,
		videoPresent,
	}

	if len(v.VICs) > 0 {
		videoFlagByte := byte(len(v.VICs)&0x1F) << 5
		payload = append(payload,
			0x00, // 3D/CNC byte: no 3D or content-negotiation fields present in this core
			videoFlagByte,
		)
		for _, vic := range v.VICs {
			payload = append(payload, vic.encode())
		}
	}

	if len(payload) > 31 {
		return nil, &SlotOverflowError{Region: "hdmi_vsdb", Needed: len(payload), Available: 31}
	}
	return payload, nil
}

func (b VendorSpecificHdmiDataBlock) encode() ([]byte, error) {
	payload, err := b.payload()
	if err != nil {
		return nil, err
	}
	header, err := packTagLength(ctaTagVendorSpecific, len(payload))
	if err != nil {
		return nil, err
	}
	return append([]byte{header}, payload...), nil
}
