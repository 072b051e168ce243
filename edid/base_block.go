package edid

// BaseBlockSize is the fixed size, in bytes, of an EDID base block.
const BaseBlockSize = 128

var baseBlockHeader = [8]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// Description is the fully constructed, validated top-level EDID value:
// a base block's worth of fields plus an optional CTA-861 extension. It
// is the sole input to Encode (spec.md §6).
type Description struct {
	Release            EdidRelease
	Manufacturer       ManufacturerId
	ProductCode        ProductCode
	Serial             SerialNumber // 0 if HasSerial is false
	HasSerial          bool
	Date               Date
	VideoInput         VideoInput
	DisplaySize        DisplaySize
	Gamma              Gamma
	Features           FeatureSupport
	Chromaticity       Chromaticity
	EstablishedTimings EstablishedTimings
	StandardTimings    StandardTimingList
	Descriptors        DescriptorSlots
	Extension          *CtaExtension // nil if no extension
}

// validateBaseBlock enforces spec.md §4.D's cross-field and
// version-gating rules that span more than one already-constructed
// value type.
func (d Description) validateBaseBlock() error {
	if !d.Release.valid() {
		return &InvalidFieldError{Field: "release", Reason: "must be ReleaseR3 or ReleaseR4"}
	}
	if err := d.Date.validateForRelease(d.Release); err != nil {
		return err
	}
	if err := d.VideoInput.validateForRelease(d.Release); err != nil {
		return err
	}
	if err := d.DisplaySize.validateForRelease(d.Release); err != nil {
		return err
	}
	if err := d.Features.validateForRelease(d.Release); err != nil {
		return err
	}
	if d.Features.digitalDisplayType() != d.VideoInput.IsDigital() {
		return &CrossFieldError{Fields: []string{"features.display_type", "video_input"}, Reason: "display type must be analog when video input is analog, digital when digital"}
	}
	for _, desc := range d.Descriptors {
		if err := desc.validateForRelease(d.Release); err != nil {
			return err
		}
	}

	if d.Release == ReleaseR3 {
		if !d.EstablishedTimings.Has(Timing640x480At60Hz) {
			return &MissingRequiredError{Field: "established_timings.640x480@60Hz", Release: d.Release}
		}
		if !hasDescriptorMatching(d.Descriptors, Descriptor.isDisplayRangeLimits) {
			return &MissingRequiredError{Field: "display_range_limits", Release: d.Release}
		}
		if !hasDescriptorMatching(d.Descriptors, Descriptor.isProductName) {
			return &MissingRequiredError{Field: "product_name", Release: d.Release}
		}
	}

	return nil
}

func hasDescriptorMatching(slots DescriptorSlots, pred func(Descriptor) bool) bool {
	for _, d := range slots {
		if pred(d) {
			return true
		}
	}
	return false
}

// encode assembles the 128-byte base block. Callers must call
// validateBaseBlock first; encode performs no validation of its own.
func (d Description) encode(extensionCount byte) [BaseBlockSize]byte {
	var b [BaseBlockSize]byte

	copy(b[0x00:0x08], baseBlockHeader[:])

	manu := packManufacturer(d.Manufacturer)
	b[0x08] = manu[0]
	b[0x09] = manu[1]

	putUint16LE(b[0x0A:0x0C], uint16(d.ProductCode))

	if d.HasSerial {
		putUint32LE(b[0x0C:0x10], uint32(d.Serial))
	}

	week, year := d.Date.encode()
	b[0x10] = week
	b[0x11] = year

	b[0x12] = 0x01
	b[0x13] = d.Release.revisionByte()

	b[0x14] = d.VideoInput.encode()

	hSize, vSize := d.DisplaySize.encode()
	b[0x15] = hSize
	b[0x16] = vSize

	b[0x17] = d.Gamma.encode()
	b[0x18] = d.Features.encode()

	chroma := d.Chromaticity.encode()
	copy(b[0x19:0x23], chroma[:])

	t1, t2, t3 := d.EstablishedTimings.encode()
	b[0x23], b[0x24], b[0x25] = t1, t2, t3

	for i, st := range d.StandardTimings {
		lo, hi := st.encode()
		b[0x26+i*2] = lo
		b[0x26+i*2+1] = hi
	}

	for i, desc := range d.Descriptors {
		bytes := desc.encode()
		copy(b[0x36+i*18:0x36+(i+1)*18], bytes[:])
	}

	b[0x7E] = extensionCount

	b[0x7F] = checksum8(b[0x00:0x7F])

	return b
}
