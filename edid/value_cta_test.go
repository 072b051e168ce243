package edid

import "testing"

func TestNewVICNative(t *testing.T) {
	v, err := NewVIC(16, true)
	if err != nil {
		t.Fatalf("NewVIC: %v", err)
	}
	if got := v.encode(); got != 0x90 {
		t.Errorf("encode() = 0x%02X, want 0x90", got)
	}
}

func TestNewVICRejectsOutOfRange(t *testing.T) {
	if _, err := NewVIC(65, true); err == nil {
		t.Fatal("expected error: native VIC 65 is out of range 1..=64")
	}
	if _, err := NewVIC(64, false); err == nil {
		t.Fatal("expected error: non-native VIC 64 is out of range 65..=127, 193..=255")
	}
}

func TestNewVICNonNativeRanges(t *testing.T) {
	if _, err := NewVIC(100, false); err != nil {
		t.Errorf("NewVIC(100, false): %v", err)
	}
	if _, err := NewVIC(200, false); err != nil {
		t.Errorf("NewVIC(200, false): %v", err)
	}
}

func TestNewSADEncode(t *testing.T) {
	sad, err := NewSAD(2, SamplingRate48kHz|SamplingRate44_1kHz, LPCMBitDepth16|LPCMBitDepth24)
	if err != nil {
		t.Fatalf("NewSAD: %v", err)
	}
	b := sad.encode()
	want := byte(AudioFormatLPCM)<<3 | 1
	if b[0] != want {
		t.Errorf("b[0] = 0x%02X, want 0x%02X", b[0], want)
	}
	if b[1] != byte(SamplingRate48kHz|SamplingRate44_1kHz) {
		t.Errorf("b[1] = 0x%02X, want 0x%02X", b[1], byte(SamplingRate48kHz|SamplingRate44_1kHz))
	}
}

func TestNewSADRejectsChannelsOutOfRange(t *testing.T) {
	if _, err := NewSAD(0, 0, 0); err == nil {
		t.Fatal("expected error for channels = 0")
	}
	if _, err := NewSAD(9, 0, 0); err == nil {
		t.Fatal("expected error for channels = 9")
	}
}

func TestHdmiSourcePhysicalAddressEncode(t *testing.T) {
	spa := HdmiSourcePhysicalAddress{A: 1, B: 2, C: 3, D: 4}
	if err := spa.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got, want := spa.encode(), uint16(0x1234); got != want {
		t.Errorf("encode() = 0x%04X, want 0x%04X", got, want)
	}
}

func TestNewHdmiVsdbRejectsBadMaxTMDS(t *testing.T) {
	spa := HdmiSourcePhysicalAddress{}
	if _, err := NewHdmiVsdb(spa, 100); err == nil {
		t.Fatal("expected error: 100 MHz is below the 165 MHz floor")
	}
	if _, err := NewHdmiVsdb(spa, 166); err == nil {
		t.Fatal("expected error: 166 is not a multiple of 5")
	}
}

func TestNewHdmiVsdbAcceptsZeroMaxTMDS(t *testing.T) {
	spa := HdmiSourcePhysicalAddress{}
	if _, err := NewHdmiVsdb(spa, 0); err != nil {
		t.Errorf("NewHdmiVsdb with absent max TMDS rate: %v", err)
	}
}
