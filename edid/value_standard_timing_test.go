package edid

import "testing"

func TestUnusedStandardTimingEncode(t *testing.T) {
	b1, b2 := UnusedStandardTiming().encode()
	if b1 != 0x01 || b2 != 0x01 {
		t.Errorf("encode() = (0x%02X, 0x%02X), want (0x01, 0x01)", b1, b2)
	}
}

func TestNewStandardTimingEncode(t *testing.T) {
	st, err := NewStandardTiming(1920, Aspect16x9, 60)
	if err != nil {
		t.Fatalf("NewStandardTiming: %v", err)
	}
	b1, b2 := st.encode()
	if want := byte(1920/8 - 31); b1 != want {
		t.Errorf("byte1 = %d, want %d", b1, want)
	}
	if want := byte(Aspect16x9)<<6 | 0; b2 != want {
		t.Errorf("byte2 = 0x%02X, want 0x%02X", b2, want)
	}
}

func TestNewStandardTimingRejectsBadHActive(t *testing.T) {
	cases := []uint16{100, 255, 2289, 1921}
	for _, h := range cases {
		if _, err := NewStandardTiming(h, Aspect4x3, 60); err == nil {
			t.Errorf("NewStandardTiming(%d, ...): expected error", h)
		}
	}
}

func TestNewStandardTimingRejectsBadRefresh(t *testing.T) {
	if _, err := NewStandardTiming(1920, Aspect16x9, 59); err == nil {
		t.Fatal("expected error for refresh_hz < 60")
	}
	if _, err := NewStandardTiming(1920, Aspect16x9, 124); err == nil {
		t.Fatal("expected error for refresh_hz > 123")
	}
}

func TestNewStandardTimingListFillsUnused(t *testing.T) {
	st, err := NewStandardTiming(1920, Aspect16x9, 60)
	if err != nil {
		t.Fatalf("NewStandardTiming: %v", err)
	}
	list, err := NewStandardTimingList(st)
	if err != nil {
		t.Fatalf("NewStandardTimingList: %v", err)
	}
	if list[0] != st {
		t.Errorf("list[0] = %#v, want %#v", list[0], st)
	}
	for i := 1; i < 8; i++ {
		b1, b2 := list[i].encode()
		if b1 != 0x01 || b2 != 0x01 {
			t.Errorf("list[%d] not unused: (0x%02X, 0x%02X)", i, b1, b2)
		}
	}
}

func TestNewStandardTimingListOverflow(t *testing.T) {
	st, err := NewStandardTiming(1920, Aspect16x9, 60)
	if err != nil {
		t.Fatalf("NewStandardTiming: %v", err)
	}
	nine := make([]StandardTiming, 9)
	for i := range nine {
		nine[i] = st
	}
	if _, err := NewStandardTimingList(nine...); err == nil {
		t.Fatal("expected SlotOverflowError for 9 standard timings")
	}
}
