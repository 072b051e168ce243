package edid

import "testing"

func TestDisplaySizeDimensionsEncode(t *testing.T) {
	d, err := NewDisplaySizeDimensions(60, 34)
	if err != nil {
		t.Fatalf("NewDisplaySizeDimensions: %v", err)
	}
	h, v := d.encode()
	if h != 60 || v != 34 {
		t.Errorf("encode() = (%d, %d), want (60, 34)", h, v)
	}
}

func TestDisplaySizeDimensionsRejectsZero(t *testing.T) {
	if _, err := NewDisplaySizeDimensions(0, 34); err == nil {
		t.Fatal("expected error for h_cm = 0")
	}
}

func TestDisplaySizeAspectLandscapeRejectedUnderR3(t *testing.T) {
	d, err := NewDisplaySizeAspectLandscape(1.6)
	if err != nil {
		t.Fatalf("NewDisplaySizeAspectLandscape: %v", err)
	}
	if err := d.validateForRelease(ReleaseR3); err == nil {
		t.Fatal("expected VersionUnsupportedError under EDID 1.3")
	}
	if err := d.validateForRelease(ReleaseR4); err != nil {
		t.Errorf("validateForRelease(R4): %v", err)
	}
}

func TestUndefinedGammaEncode(t *testing.T) {
	if got := UndefinedGamma().encode(); got != 0xFF {
		t.Errorf("encode() = 0x%02X, want 0xFF", got)
	}
}

func TestGammaEncode(t *testing.T) {
	g, err := NewGamma(2.20)
	if err != nil {
		t.Fatalf("NewGamma: %v", err)
	}
	if got := g.encode(); got != 120 {
		t.Errorf("encode() = %d, want 120", got)
	}
}

func TestGammaRejectsOutOfRange(t *testing.T) {
	if _, err := NewGamma(0.5); err == nil {
		t.Fatal("expected error for gamma < 1.00")
	}
	if _, err := NewGamma(4.0); err == nil {
		t.Fatal("expected error for gamma > 3.54")
	}
}

func TestFeatureSupportEncode(t *testing.T) {
	f, err := NewFeatureSupport(DisplayTypeRGBColor, FeatureSupportFlags{
		ActiveOff:   true,
		SRGBDefault: true,
	})
	if err != nil {
		t.Fatalf("NewFeatureSupport: %v", err)
	}
	want := byte(1<<5) | byte(DisplayTypeRGBColor)<<3 | 1<<2
	if got := f.encode(); got != want {
		t.Errorf("encode() = 0x%02X, want 0x%02X", got, want)
	}
}

func TestFeatureSupportStandbyRejectedUnderR4(t *testing.T) {
	f, err := NewFeatureSupport(DisplayTypeRGB444, FeatureSupportFlags{Standby: true})
	if err != nil {
		t.Fatalf("NewFeatureSupport: %v", err)
	}
	if err := f.validateForRelease(ReleaseR4); err == nil {
		t.Fatal("expected VersionUnsupportedError for standby under EDID 1.4")
	}
	if err := f.validateForRelease(ReleaseR3); err != nil {
		t.Errorf("validateForRelease(R3): %v", err)
	}
}

func TestFeatureSupportContinuousFrequencyRejectedUnderR3(t *testing.T) {
	f, err := NewFeatureSupport(DisplayTypeRGB444, FeatureSupportFlags{ContinuousFrequency: true})
	if err != nil {
		t.Fatalf("NewFeatureSupport: %v", err)
	}
	if err := f.validateForRelease(ReleaseR3); err == nil {
		t.Fatal("expected VersionUnsupportedError for continuous frequency under EDID 1.3")
	}
}

func TestChromaticityRejectsOutOfRange(t *testing.T) {
	_, err := NewChromaticity(1.0, 0.3, 0.3, 0.6, 0.15, 0.06, 0.31, 0.33)
	if err == nil {
		t.Fatal("expected error for red_x = 1.0 (must be in [0,1))")
	}
}

func TestChromaticityEncodeRoundTripsHighBits(t *testing.T) {
	c, err := NewChromaticity(0.6400, 0.3300, 0.3000, 0.6000, 0.1500, 0.0600, 0.3127, 0.3290)
	if err != nil {
		t.Fatalf("NewChromaticity: %v", err)
	}
	out := c.encode()
	wantRxHigh := byte(packChroma10(0.6400) >> 2)
	if out[2] != wantRxHigh {
		t.Errorf("out[2] (red_x high byte) = 0x%02X, want 0x%02X", out[2], wantRxHigh)
	}
}
