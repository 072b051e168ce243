package edid

import "fmt"

// InvalidFieldError reports a value rejected at construction: a range,
// alphabet, multiple-of, or non-empty constraint violation.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// CrossFieldError reports two or more fields whose combination is
// inconsistent, such as YCbCr 4:4:4 support without 4:2:2, or a minimum
// frequency at or above its maximum.
type CrossFieldError struct {
	Fields []string
	Reason string
}

func (e *CrossFieldError) Error() string {
	return fmt.Sprintf("inconsistent fields %v: %s", e.Fields, e.Reason)
}

// VersionUnsupportedError reports a field whose value is incompatible with
// the declared EdidRelease.
type VersionUnsupportedError struct {
	Field   string
	Release EdidRelease
}

func (e *VersionUnsupportedError) Error() string {
	return fmt.Sprintf("field %q is not supported under EDID release %s", e.Field, e.Release)
}

// SlotOverflowError reports a fixed-capacity region (descriptor slots,
// standard timings, the CTA data-block collection) that cannot hold what
// was asked of it.
type SlotOverflowError struct {
	Region    string
	Needed    int
	Available int
}

func (e *SlotOverflowError) Error() string {
	return fmt.Sprintf("%s overflow: needed %d, available %d", e.Region, e.Needed, e.Available)
}

// MissingRequiredError reports an absent mandatory field for the declared
// EdidRelease, such as DisplayRangeLimits under EDID 1.3.
type MissingRequiredError struct {
	Field   string
	Release EdidRelease
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("field %q is required under EDID release %s", e.Field, e.Release)
}
