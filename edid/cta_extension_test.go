package edid

import "testing"

func TestNewCtaExtensionRejectsMismatchedYCbCr(t *testing.T) {
	_, err := NewCtaExtension(false, false, true, false, 0, nil, nil)
	if err == nil {
		t.Fatal("expected CrossFieldError: ycbcr_444 != ycbcr_422")
	}
}

func TestNewCtaExtensionRejectsNativeFormatsOutOfRange(t *testing.T) {
	_, err := NewCtaExtension(false, false, false, false, 16, nil, nil)
	if err == nil {
		t.Fatal("expected error: native_formats > 15")
	}
}

func TestCtaExtensionEncodeEmpty(t *testing.T) {
	ext, err := NewCtaExtension(false, false, false, false, 0, nil, nil)
	if err != nil {
		t.Fatalf("NewCtaExtension: %v", err)
	}
	b, err := ext.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if b[0x00] != 0x02 {
		t.Errorf("b[0x00] = 0x%02X, want 0x02", b[0x00])
	}
	if b[0x01] != 0x03 {
		t.Errorf("b[0x01] = 0x%02X, want 0x03", b[0x01])
	}
	// spec.md §9 Open Question: header-length offset even with an empty
	// data-block collection and DTD list.
	if b[0x02] != 0x04 {
		t.Errorf("b[0x02] = 0x%02X, want 0x04", b[0x02])
	}
	var sum byte
	for _, v := range b {
		sum += v
	}
	if sum != 0 {
		t.Errorf("checksum: byte-sum mod 256 = %d, want 0", sum)
	}
}

// TestCtaExtensionEncodeS3 exercises the S3 seed scenario: an extension
// carrying Colorimetry, Video, VideoCapability, and HDMI data blocks.
func TestCtaExtensionEncodeS3(t *testing.T) {
	colorimetry := ColorimetryDataBlock{}
	vic, err := NewVIC(16, true)
	if err != nil {
		t.Fatalf("NewVIC: %v", err)
	}
	video, err := NewVideoDataBlock(vic)
	if err != nil {
		t.Fatalf("NewVideoDataBlock: %v", err)
	}
	videoCap := VideoCapabilityDataBlock{Flags: VideoCapabilityFlags{
		QYQuantRangeSelectable: true,
		QSQuantRangeSelectable: true,
		ITScan:                 ScanBehaviorAlwaysUnderscanned,
		CEScan:                 ScanBehaviorAlwaysUnderscanned,
	}}
	spa := HdmiSourcePhysicalAddress{A: 1, B: 2, C: 3, D: 4}
	vsdb, err := NewHdmiVsdb(spa, 340)
	if err != nil {
		t.Fatalf("NewHdmiVsdb: %v", err)
	}
	vsdb.DeepColor30Bits = true
	vsdb.DeepColor36Bits = true
	vsdb.DeepColor48Bits = true
	vsdb.DeepColorYCbCr444 = true
	hdmi, err := NewVendorSpecificHdmiDataBlock(vsdb)
	if err != nil {
		t.Fatalf("NewVendorSpecificHdmiDataBlock: %v", err)
	}

	ext, err := NewCtaExtension(true, false, true, true, 1,
		[]CtaDataBlock{colorimetry, video, videoCap, hdmi}, nil)
	if err != nil {
		t.Fatalf("NewCtaExtension: %v", err)
	}
	b, err := ext.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if b[0x00] != 0x02 || b[0x01] != 0x03 {
		t.Fatalf("b[0:2] = [0x%02X 0x%02X], want [0x02 0x03]", b[0x00], b[0x01])
	}
	wantFlags := byte(1<<7 | 1<<5 | 1<<4 | 1)
	if b[0x03] != wantFlags {
		t.Errorf("b[0x03] = 0x%02X, want 0x%02X", b[0x03], wantFlags)
	}
	if (b[0x03]>>4)&1 != (b[0x03]>>5)&1 {
		t.Error("YCbCr 4:4:4 and 4:2:2 flag bits must match")
	}

	// The Video Data Block follows Colorimetry's 4 bytes; its VIC byte is
	// the first byte of that block's payload.
	colorimetryLen := 4 // 1-byte tag/length header + 3-byte payload
	videoBlockStart := ctaExtensionHeaderSize + colorimetryLen
	if got := b[videoBlockStart+1]; got != 0x90 {
		t.Errorf("VIC byte = 0x%02X, want 0x90", got)
	}
	var sum byte
	for _, v := range b {
		sum += v
	}
	if sum != 0 {
		t.Errorf("checksum: byte-sum mod 256 = %d, want 0", sum)
	}
}

func TestCtaExtensionEncodeRejectsOverflow(t *testing.T) {
	sads := make([]SAD, 0)
	sad, err := NewSAD(2, SamplingRate48kHz, LPCMBitDepth16)
	if err != nil {
		t.Fatalf("NewSAD: %v", err)
	}
	sads = append(sads, sad)
	audio, err := NewAudioDataBlock(sads...)
	if err != nil {
		t.Fatalf("NewAudioDataBlock: %v", err)
	}

	dt, err := NewDetailedTiming(sampleDetailedTiming())
	if err != nil {
		t.Fatalf("NewDetailedTiming: %v", err)
	}
	timings := make([]DetailedTiming, 7) // 7*18 = 126, plus 4-byte audio block exceeds 123
	for i := range timings {
		timings[i] = dt
	}

	ext, err := NewCtaExtension(false, false, false, false, 0, []CtaDataBlock{audio}, timings)
	if err != nil {
		t.Fatalf("NewCtaExtension: %v", err)
	}
	if _, err := ext.encode(); err == nil {
		t.Fatal("expected SlotOverflowError: data blocks + DTDs exceed 123 payload bytes")
	}
}
