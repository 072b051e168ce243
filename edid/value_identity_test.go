package edid

import "testing"

func TestNewManufacturerIdRejectsBadInput(t *testing.T) {
	cases := []string{"", "AB", "ABCD", "abc", "A1C"}
	for _, id := range cases {
		if _, err := NewManufacturerId(id); err == nil {
			t.Errorf("NewManufacturerId(%q): expected error", id)
		}
	}
}

func TestNewManufacturerIdAccepts(t *testing.T) {
	m, err := NewManufacturerId("LNX")
	if err != nil {
		t.Fatalf("NewManufacturerId: %v", err)
	}
	if m.String() != "LNX" {
		t.Errorf("String() = %q, want LNX", m.String())
	}
}

func TestDateEncode(t *testing.T) {
	d, err := NewDateWithWeek(2024, 10)
	if err != nil {
		t.Fatalf("NewDateWithWeek: %v", err)
	}
	week, year := d.encode()
	if week != 10 || year != 34 {
		t.Errorf("encode() = (%d, %d), want (10, 34)", week, year)
	}
}

func TestDateModelYearRejectedUnderR3(t *testing.T) {
	d, err := NewDateModelYear(2022)
	if err != nil {
		t.Fatalf("NewDateModelYear: %v", err)
	}
	if err := d.validateForRelease(ReleaseR3); err == nil {
		t.Fatal("expected error for model year under EDID 1.3")
	}
	if err := d.validateForRelease(ReleaseR4); err != nil {
		t.Errorf("validateForRelease(R4): %v", err)
	}
}

func TestDateWeekExceedsReleaseMax(t *testing.T) {
	d, err := NewDateWithWeek(2024, 54)
	if err != nil {
		t.Fatalf("NewDateWithWeek: %v", err)
	}
	if err := d.validateForRelease(ReleaseR3); err == nil {
		t.Fatal("expected error: week 54 exceeds EDID 1.3's max of 53")
	}
	if err := d.validateForRelease(ReleaseR4); err != nil {
		t.Errorf("validateForRelease(R4): %v", err)
	}
}

func TestDateRejectsYearBefore1990(t *testing.T) {
	if _, err := NewDateUnspecified(1989); err == nil {
		t.Fatal("expected error for year < 1990")
	}
}
