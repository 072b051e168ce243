// Package edid serializes a typed, validated in-memory description of a
// display device into a byte-exact VESA Enhanced Extended Display
// Identification Data (EDID) blob.
//
// It supports EDID 1.3 and 1.4 base blocks (128 bytes) and an optional
// CTA-861 extension block (128 bytes). Decoding, extensions other than
// CTA-861, and EDID revisions before 1.3 are out of scope.
//
// # Architecture
//
// The package is organized bottom-up:
//
//   - Primitive encoders (primitive.go) pack fixed-width integers, the
//     VESA manufacturer code, padded ASCII strings, and 10-bit
//     chromaticity fractions.
//   - Domain value types (value_*.go) are newtypes over numeric or string
//     primitives whose constructors are the sole ingress and the sole
//     validation point.
//   - The descriptor encoder (descriptor.go, detailed_timing.go) packs
//     each of the six 18-byte descriptor variants.
//   - The base-block assembler (base_block.go) composes the 128-byte base
//     block.
//   - The CTA-861 data-block encoders (cta_datablock*.go) and extension
//     assembler (cta_extension.go) compose the optional 128-byte
//     extension.
//   - The top-level encoder (encode.go) orchestrates cross-block
//     validation and returns the final buffer.
//
// # Zero-Allocation-Adjacent Design
//
// Following the same discipline as the descriptor packing this package is
// modeled on, the descriptor, base-block, and extension encoders write
// into fixed-size arrays ([18]byte, BaseBlockSize, CtaExtensionSize)
// rather than growing a slice. CTA data blocks are variable-length and
// are built as slices before being copied into the extension array.
// Encode concatenates the finished arrays into the single returned
// buffer.
//
// # Purity
//
// The package performs no I/O, holds no package-level mutable state, and
// never logs. Every function is a pure transform from an immutable input
// value to a byte buffer or an error. Diagnostics surface only as returned
// error values.
//
// # Example
//
//	manufacturer, err := edid.NewManufacturerId("LNX")
//	if err != nil {
//		// handle validation failure
//	}
//	desc := edid.Description{
//		Release:      edid.ReleaseR3,
//		Manufacturer: manufacturer,
//		ProductCode:  42,
//		// ... remaining fields
//	}
//	buf, err := edid.Encode(desc)
package edid
