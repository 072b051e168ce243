package edid

// Descriptor is one of the base block's four 18-byte descriptor slot
// values: DetailedTiming, ProductName, ProductSerial, DataString,
// DisplayRangeLimits, or Dummy (spec.md §3, §4.C).
type Descriptor interface {
	// isDetailedTiming reports whether this descriptor is a
	// DetailedTiming, which drives the slot-0 policy in spec.md §4.C.
	isDetailedTiming() bool
	// isDisplayRangeLimits reports whether this descriptor is a
	// DisplayRangeLimits, checked by the R3 mandatory-descriptor rule.
	isDisplayRangeLimits() bool
	// isProductName reports whether this descriptor is a ProductName,
	// checked by the R3 mandatory-descriptor rule.
	isProductName() bool
	// validateForRelease checks release-gated constraints intrinsic to
	// this descriptor's payload (e.g. DisplayRangeLimits subvariants).
	validateForRelease(release EdidRelease) error
	// encode packs this descriptor's 18 bytes.
	encode() [18]byte
}

// descriptorStringTag identifies which sentinel-header descriptor
// variant a plain 13-byte-ASCII-string descriptor is.
type descriptorStringTag byte

// Descriptor tag bytes, written at descriptor byte 3 following the
// 00 00 00 sentinel prefix.
const (
	tagProductSerial       descriptorStringTag = 0xFF
	tagDataString          descriptorStringTag = 0xFE
	tagProductName         descriptorStringTag = 0xFC
	tagDisplayRangeLimits  descriptorStringTag = 0xFD
	tagDummy               descriptorStringTag = 0x10
)

// stringDescriptor implements Descriptor for the three plain-ASCII-string
// variants: ProductName, ProductSerial, DataString.
type stringDescriptor struct {
	tag  descriptorStringTag
	text string
}

func newStringDescriptor(field string, tag descriptorStringTag, text string) (Descriptor, error) {
	if len(text) == 0 || len(text) > 13 {
		return nil, &InvalidFieldError{Field: field, Reason: "length must be 1..=13"}
	}
	if !isASCII(text) {
		return nil, &InvalidFieldError{Field: field, Reason: "must be ASCII"}
	}
	return stringDescriptor{tag: tag, text: text}, nil
}

// NewProductNameDescriptor constructs a ProductName descriptor.
func NewProductNameDescriptor(text string) (Descriptor, error) {
	return newStringDescriptor("product_name", tagProductName, text)
}

// NewProductSerialDescriptor constructs a ProductSerial descriptor.
func NewProductSerialDescriptor(text string) (Descriptor, error) {
	return newStringDescriptor("product_serial", tagProductSerial, text)
}

// NewDataStringDescriptor constructs a DataString descriptor.
func NewDataStringDescriptor(text string) (Descriptor, error) {
	return newStringDescriptor("data_string", tagDataString, text)
}

func (d stringDescriptor) isDetailedTiming() bool               { return false }
func (d stringDescriptor) isDisplayRangeLimits() bool            { return false }
func (d stringDescriptor) isProductName() bool                   { return d.tag == tagProductName }
func (d stringDescriptor) validateForRelease(EdidRelease) error { return nil }

func (d stringDescriptor) encode() [18]byte {
	var b [18]byte
	b[3] = byte(d.tag)
	copy(b[5:18], packPaddedString(d.text, 13))
	return b
}

// dummyDescriptor implements Descriptor for an unused slot.
type dummyDescriptor struct{}

// DummyDescriptor constructs the sentinel used for unused descriptor
// slots.
func DummyDescriptor() Descriptor {
	return dummyDescriptor{}
}

func (dummyDescriptor) isDetailedTiming() bool               { return false }
func (dummyDescriptor) isDisplayRangeLimits() bool            { return false }
func (dummyDescriptor) isProductName() bool                   { return false }
func (dummyDescriptor) validateForRelease(EdidRelease) error { return nil }

func (dummyDescriptor) encode() [18]byte {
	var b [18]byte
	b[3] = byte(tagDummy)
	for i := 5; i < 18; i++ {
		b[i] = 0x20
	}
	return b
}

// detailedTimingDescriptor implements Descriptor for a DetailedTiming.
type detailedTimingDescriptor struct {
	timing DetailedTiming
}

// NewDetailedTimingDescriptor wraps an already-validated DetailedTiming
// as a Descriptor.
func NewDetailedTimingDescriptor(t DetailedTiming) Descriptor {
	return detailedTimingDescriptor{timing: t}
}

func (d detailedTimingDescriptor) isDetailedTiming() bool               { return true }
func (d detailedTimingDescriptor) isDisplayRangeLimits() bool            { return false }
func (d detailedTimingDescriptor) isProductName() bool                   { return false }
func (d detailedTimingDescriptor) validateForRelease(EdidRelease) error { return nil }
func (d detailedTimingDescriptor) encode() [18]byte                     { return d.timing.encode() }

// displayRangeLimitsDescriptor implements Descriptor for a
// DisplayRangeLimits.
type displayRangeLimitsDescriptor struct {
	limits DisplayRangeLimits
}

// NewDisplayRangeLimitsDescriptor wraps a DisplayRangeLimits value as a
// Descriptor.
func NewDisplayRangeLimitsDescriptor(d DisplayRangeLimits) Descriptor {
	return displayRangeLimitsDescriptor{limits: d}
}

func (d displayRangeLimitsDescriptor) isDetailedTiming() bool    { return false }
func (d displayRangeLimitsDescriptor) isDisplayRangeLimits() bool { return true }
func (d displayRangeLimitsDescriptor) isProductName() bool        { return false }

func (d displayRangeLimitsDescriptor) validateForRelease(release EdidRelease) error {
	return d.limits.validateForRelease(release)
}

func (d displayRangeLimitsDescriptor) encode() [18]byte {
	var b [18]byte
	offsetByte, payload := d.limits.encode()
	b[3] = byte(tagDisplayRangeLimits)
	b[4] = offsetByte
	copy(b[5:18], payload[:])
	return b
}

// DescriptorSlots holds the base block's exactly four descriptor slots
// in wire order.
type DescriptorSlots [4]Descriptor

// NewDescriptorSlots fills unused trailing slots with DummyDescriptor and
// enforces the slot-0-is-detailed-timing policy of spec.md §4.C: if any
// slot holds a DetailedTiming, slot 0 must.
func NewDescriptorSlots(descriptors ...Descriptor) (DescriptorSlots, error) {
	if len(descriptors) > 4 {
		return DescriptorSlots{}, &SlotOverflowError{Region: "descriptors", Needed: len(descriptors), Available: 4}
	}
	var slots DescriptorSlots
	for i := range slots {
		slots[i] = DummyDescriptor()
	}
	copy(slots[:], descriptors)

	hasDetailedTiming := false
	for _, d := range slots {
		if d.isDetailedTiming() {
			hasDetailedTiming = true
			break
		}
	}
	if hasDetailedTiming && !slots[0].isDetailedTiming() {
		return DescriptorSlots{}, &CrossFieldError{Fields: []string{"descriptors"}, Reason: "a DetailedTiming descriptor must occupy slot 0 when present"}
	}
	return slots, nil
}
