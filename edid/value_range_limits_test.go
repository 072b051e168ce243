package edid

import "testing"

func TestNewDisplayRangeLimitsRejectsMinGeMax(t *testing.T) {
	if _, err := NewDisplayRangeLimits(60, 60, 30, 80, 0, DefaultGTF{}); err == nil {
		t.Fatal("expected error when min_v_rate == max_v_rate")
	}
	if _, err := NewDisplayRangeLimits(60, 75, 80, 30, 0, DefaultGTF{}); err == nil {
		t.Fatal("expected error when min_h_rate > max_h_rate")
	}
}

func TestNewDisplayRangeLimitsRejectsBadPixelClock(t *testing.T) {
	if _, err := NewDisplayRangeLimits(50, 75, 30, 80, 155, DefaultGTF{}); err == nil {
		t.Fatal("expected error for max_pixel_clock_mhz not a multiple of 10")
	}
}

func TestNewDisplayRangeLimitsSecondaryGTFStartFreqConstraint(t *testing.T) {
	gtf := SecondaryGTF{StartFreqKHz: 100, C: 30, M: 250, K: 15, J: 30}
	_, err := NewDisplayRangeLimits(50, 75, 30, 80, 0, gtf)
	if err == nil {
		t.Fatal("expected error: start_freq_khz must be less than min of h/v rate")
	}
}

func TestDisplayRangeLimitsEncodeUnder255(t *testing.T) {
	d, err := NewDisplayRangeLimits(50, 75, 30, 80, 160, DefaultGTF{})
	if err != nil {
		t.Fatalf("NewDisplayRangeLimits: %v", err)
	}
	offset, payload := d.encode()
	if offset != 0 {
		t.Errorf("offsetByte = 0x%02X, want 0x00", offset)
	}
	if payload[0] != 50 || payload[1] != 75 || payload[2] != 30 || payload[3] != 80 {
		t.Errorf("payload[0:4] = %v, want [50 75 30 80]", payload[0:4])
	}
	if payload[4] != 16 {
		t.Errorf("payload[4] (max pixel clock/10) = %d, want 16", payload[4])
	}
	if payload[6] != 0x0A {
		t.Errorf("payload[6] (timing-support tag) = 0x%02X, want 0x0A", payload[6])
	}
	for i := 7; i < 13; i++ {
		if payload[i] != 0x20 {
			t.Errorf("payload[%d] = 0x%02X, want 0x20", i, payload[i])
		}
	}
}

func TestDisplayRangeLimitsEncodeOver255UsesOffsetBits(t *testing.T) {
	d, err := NewDisplayRangeLimits(300, 400, 30, 80, 0, DefaultGTF{})
	if err != nil {
		t.Fatalf("NewDisplayRangeLimits: %v", err)
	}
	if err := d.validateForRelease(ReleaseR4); err != nil {
		t.Fatalf("validateForRelease(R4): %v", err)
	}
	offset, payload := d.encode()
	if offset&0x03 != 0x03 {
		t.Errorf("offsetByte low 2 bits = %02b, want 11 (both v_rate offsets set)", offset&0x03)
	}
	if payload[0] != byte(300-255) || payload[1] != byte(400-255) {
		t.Errorf("payload[0:2] = %v, want [%d %d]", payload[0:2], 300-255, 400-255)
	}
}

func TestDisplayRangeLimitsRejectedOver255UnderR3(t *testing.T) {
	d, err := NewDisplayRangeLimits(300, 400, 30, 80, 0, DefaultGTF{})
	if err != nil {
		t.Fatalf("NewDisplayRangeLimits: %v", err)
	}
	if err := d.validateForRelease(ReleaseR3); err == nil {
		t.Fatal("expected error: 300 Hz exceeds EDID 1.3's 255 ceiling")
	}
}

func TestRangeLimitsOnlyRejectedUnderR3(t *testing.T) {
	d, err := NewDisplayRangeLimits(50, 75, 30, 80, 0, RangeLimitsOnly{})
	if err != nil {
		t.Fatalf("NewDisplayRangeLimits: %v", err)
	}
	if err := d.validateForRelease(ReleaseR3); err == nil {
		t.Fatal("expected VersionUnsupportedError for RangeLimitsOnly under EDID 1.3")
	}
	if err := d.validateForRelease(ReleaseR4); err != nil {
		t.Errorf("validateForRelease(R4): %v", err)
	}
}

func TestCVTSupportedEncode(t *testing.T) {
	c := CVTSupported{Version: CVTVersion{Major: 1, Minor: 1}}
	if got := c.rangeLimitsTag(); got != 0x04 {
		t.Errorf("rangeLimitsTag() = 0x%02X, want 0x04", got)
	}
	payload := c.rangeLimitsPayload()
	if want := byte(1<<4 | 1); payload[0] != want {
		t.Errorf("payload[0] = 0x%02X, want 0x%02X", payload[0], want)
	}
}
