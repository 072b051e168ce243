package edid

import "testing"

func TestAudioDataBlockEncode(t *testing.T) {
	sad, err := NewSAD(2, SamplingRate48kHz, LPCMBitDepth16)
	if err != nil {
		t.Fatalf("NewSAD: %v", err)
	}
	block, err := NewAudioDataBlock(sad)
	if err != nil {
		t.Fatalf("NewAudioDataBlock: %v", err)
	}
	b, err := block.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if want := byte(ctaTagAudio)<<5 | 3; b[0] != want {
		t.Errorf("b[0] = 0x%02X, want 0x%02X", b[0], want)
	}
	if len(b) != 4 {
		t.Errorf("len(b) = %d, want 4", len(b))
	}
}

func TestVideoDataBlockEncode(t *testing.T) {
	vic, err := NewVIC(16, true)
	if err != nil {
		t.Fatalf("NewVIC: %v", err)
	}
	block, err := NewVideoDataBlock(vic)
	if err != nil {
		t.Fatalf("NewVideoDataBlock: %v", err)
	}
	b, err := block.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if want := byte(ctaTagVideo)<<5 | 1; b[0] != want {
		t.Errorf("b[0] = 0x%02X, want 0x%02X", b[0], want)
	}
	if b[1] != 0x90 {
		t.Errorf("b[1] = 0x%02X, want 0x90", b[1])
	}
}

func TestVideoDataBlockOverflow(t *testing.T) {
	vics := make([]VIC, 32)
	v, _ := NewVIC(1, true)
	for i := range vics {
		vics[i] = v
	}
	if _, err := NewVideoDataBlock(vics...); err == nil {
		t.Fatal("expected SlotOverflowError for 32 VICs")
	}
}

func TestSpeakerAllocationDataBlockEncode(t *testing.T) {
	block := SpeakerAllocationDataBlock{Flags: SpeakerAllocationFlags{FrontLeftRight: true, LFE: true}}
	b, err := block.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if want := byte(ctaTagSpeakerAllocation)<<5 | 3; b[0] != want {
		t.Errorf("b[0] = 0x%02X, want 0x%02X", b[0], want)
	}
	if want := byte(1 | 1<<1); b[1] != want {
		t.Errorf("b[1] = 0x%02X, want 0x%02X", b[1], want)
	}
}

func TestColorimetryDataBlockEncode(t *testing.T) {
	block := ColorimetryDataBlock{Flags: ColorimetryFlags{BT2020RGB: true, GamutMetadata: 2}}
	b, err := block.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if want := byte(ctaTagExtended)<<5 | 3; b[0] != want {
		t.Errorf("b[0] = 0x%02X, want 0x%02X", b[0], want)
	}
	if b[1] != byte(ctaExtTagColorimetry) {
		t.Errorf("b[1] = 0x%02X, want extended tag 0x%02X", b[1], ctaExtTagColorimetry)
	}
	if b[2] != byte(1<<7) || b[3] != 2 {
		t.Errorf("b[2:4] = [0x%02X 0x%02X], want [0x%02X 0x02]", b[2], b[3], byte(1<<7))
	}
}

func TestVideoCapabilityDataBlockEncode(t *testing.T) {
	block := VideoCapabilityDataBlock{Flags: VideoCapabilityFlags{
		QYQuantRangeSelectable: true,
		QSQuantRangeSelectable: true,
		PTScan:                 ScanBehaviorBoth,
		ITScan:                 ScanBehaviorAlwaysUnderscanned,
		CEScan:                 ScanBehaviorAlwaysOverscanned,
	}}
	b, err := block.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if b[1] != byte(ctaExtTagVideoCapability) {
		t.Errorf("b[1] = 0x%02X, want extended tag 0x%02X", b[1], ctaExtTagVideoCapability)
	}
	want := byte(1<<7) | byte(1<<6) | byte(ScanBehaviorBoth)<<4 | byte(ScanBehaviorAlwaysUnderscanned)<<2 | byte(ScanBehaviorAlwaysOverscanned)
	if b[2] != want {
		t.Errorf("b[2] = 0x%02X, want 0x%02X", b[2], want)
	}
}

func TestPackTagLengthRejectsOverflow(t *testing.T) {
	if _, err := packTagLength(ctaTagAudio, 32); err == nil {
		t.Fatal("expected error for payload length > 31")
	}
}
