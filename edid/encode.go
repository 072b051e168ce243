package edid

// Encode is the core's single public entry point (spec.md §6): it
// validates description against every cross-block invariant and, if
// accepted, returns the fully assembled byte buffer. The returned slice
// is 128 bytes when description.Extension is nil, or 256 bytes
// otherwise. Encode never panics on a validly constructed Description.
func Encode(description Description) ([]byte, error) {
	if err := description.validateBaseBlock(); err != nil {
		return nil, err
	}

	extensionCount := byte(0)
	if description.Extension != nil {
		extensionCount = 1
	}

	if description.Extension != nil {
		nativeDTDs := countBaseDetailedTimings(description.Descriptors)
		nativeDTDs += len(description.Extension.DetailedTimings)
		if int(description.Extension.NativeFormats) > nativeDTDs {
			return nil, &CrossFieldError{
				Fields: []string{"cta_extension.native_formats"},
				Reason: "must not exceed the number of detailed timings present across base block and extension",
			}
		}
	}

	base := description.encode(extensionCount)

	if description.Extension == nil {
		out := make([]byte, BaseBlockSize)
		copy(out, base[:])
		return out, nil
	}

	ext, err := description.Extension.encode()
	if err != nil {
		return nil, err
	}

	out := make([]byte, BaseBlockSize+CtaExtensionSize)
	copy(out[0:BaseBlockSize], base[:])
	copy(out[BaseBlockSize:], ext[:])
	return out, nil
}

func countBaseDetailedTimings(slots DescriptorSlots) int {
	n := 0
	for _, d := range slots {
		if d.isDetailedTiming() {
			n++
		}
	}
	return n
}
