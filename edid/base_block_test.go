package edid

import (
	"bytes"
	"testing"
)

// sampleDescription builds the S1 scenario: a minimal EDID 1.3
// description with no CTA extension.
func sampleDescription(t *testing.T) Description {
	t.Helper()

	manu, err := NewManufacturerId("LNX")
	if err != nil {
		t.Fatalf("NewManufacturerId: %v", err)
	}
	date, err := NewDateUnspecified(2023)
	if err != nil {
		t.Fatalf("NewDateUnspecified: %v", err)
	}
	videoInput, err := NewDigitalVideoInputR3(true)
	if err != nil {
		t.Fatalf("NewDigitalVideoInputR3: %v", err)
	}
	size, err := NewDisplaySizeDimensions(160, 90)
	if err != nil {
		t.Fatalf("NewDisplaySizeDimensions: %v", err)
	}
	gamma, err := NewGamma(2.20)
	if err != nil {
		t.Fatalf("NewGamma: %v", err)
	}
	features, err := NewFeatureSupport(DisplayTypeRGB444, FeatureSupportFlags{})
	if err != nil {
		t.Fatalf("NewFeatureSupport: %v", err)
	}
	chroma, err := NewChromaticity(0, 0, 0, 0, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewChromaticity: %v", err)
	}
	established, err := NewEstablishedTimings(Timing640x480At60Hz)
	if err != nil {
		t.Fatalf("NewEstablishedTimings: %v", err)
	}
	standard, err := NewStandardTimingList()
	if err != nil {
		t.Fatalf("NewStandardTimingList: %v", err)
	}

	timing, err := NewDetailedTiming(DetailedTiming{
		PixelClock10KHz: 14850,
		HActive:         1920,
		HBlanking:       148 + 88 + 44,
		VActive:         1080,
		VBlanking:       36 + 4 + 5,
		HFrontPorch:     88,
		HSyncPulse:      44,
		VFrontPorch:     4,
		VSyncPulse:      5,
		HImageSizeMM:    1600,
		VImageSizeMM:    900,
		Signal:          DigitalSeparateSignal{HSyncPositive: true, VSyncPositive: true},
		Stereo:          StereoNone,
	})
	if err != nil {
		t.Fatalf("NewDetailedTiming: %v", err)
	}
	productName, err := NewProductNameDescriptor("Test EDID")
	if err != nil {
		t.Fatalf("NewProductNameDescriptor: %v", err)
	}
	rangeLimits, err := NewDisplayRangeLimits(50, 70, 30, 70, 150, DefaultGTF{})
	if err != nil {
		t.Fatalf("NewDisplayRangeLimits: %v", err)
	}
	slots, err := NewDescriptorSlots(
		NewDetailedTimingDescriptor(timing),
		productName,
		NewDisplayRangeLimitsDescriptor(rangeLimits),
	)
	if err != nil {
		t.Fatalf("NewDescriptorSlots: %v", err)
	}

	return Description{
		Release:            ReleaseR3,
		Manufacturer:       manu,
		ProductCode:        42,
		HasSerial:          false,
		Date:               date,
		VideoInput:         videoInput,
		DisplaySize:        size,
		Gamma:              gamma,
		Features:           features,
		Chromaticity:       chroma,
		EstablishedTimings: established,
		StandardTimings:    standard,
		Descriptors:        slots,
	}
}

func TestValidateBaseBlockAcceptsSampleDescription(t *testing.T) {
	d := sampleDescription(t)
	if err := d.validateBaseBlock(); err != nil {
		t.Fatalf("validateBaseBlock: %v", err)
	}
}

func TestValidateBaseBlockRequiresPlugAndPlayTimingUnderR3(t *testing.T) {
	d := sampleDescription(t)
	established, err := NewEstablishedTimings(Timing800x600At60Hz)
	if err != nil {
		t.Fatalf("NewEstablishedTimings: %v", err)
	}
	d.EstablishedTimings = established
	if err := d.validateBaseBlock(); err == nil {
		t.Fatal("expected MissingRequiredError: 640x480@60Hz absent under R3")
	}
}

func TestValidateBaseBlockRequiresProductNameUnderR3(t *testing.T) {
	d := sampleDescription(t)
	timing, err := NewDetailedTiming(sampleDetailedTiming())
	if err != nil {
		t.Fatalf("NewDetailedTiming: %v", err)
	}
	rangeLimits, err := NewDisplayRangeLimits(50, 70, 30, 70, 150, DefaultGTF{})
	if err != nil {
		t.Fatalf("NewDisplayRangeLimits: %v", err)
	}
	slots, err := NewDescriptorSlots(NewDetailedTimingDescriptor(timing), NewDisplayRangeLimitsDescriptor(rangeLimits))
	if err != nil {
		t.Fatalf("NewDescriptorSlots: %v", err)
	}
	d.Descriptors = slots
	if err := d.validateBaseBlock(); err == nil {
		t.Fatal("expected MissingRequiredError: product name absent under R3")
	}
}

func TestBaseBlockEncodeHeaderAndChecksum(t *testing.T) {
	d := sampleDescription(t)
	if err := d.validateBaseBlock(); err != nil {
		t.Fatalf("validateBaseBlock: %v", err)
	}
	b := d.encode(0)

	want := [8]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}
	if !bytes.Equal(b[0:8], want[:]) {
		t.Errorf("header = % X, want % X", b[0:8], want)
	}
	if b[0x12] != 0x01 {
		t.Errorf("b[0x12] = 0x%02X, want 0x01", b[0x12])
	}
	if b[0x13] != 0x03 {
		t.Errorf("b[0x13] = 0x%02X, want 0x03", b[0x13])
	}
	if b[0x7E] != 0 {
		t.Errorf("b[0x7E] = %d, want 0", b[0x7E])
	}
	var sum byte
	for _, v := range b {
		sum += v
	}
	if sum != 0 {
		t.Errorf("checksum: byte-sum mod 256 = %d, want 0", sum)
	}
}
