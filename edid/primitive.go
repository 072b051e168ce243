package edid

import "encoding/binary"

// putUint16LE writes v into buf[0:2] little-endian. Panics if buf is too
// short; callers always pass a correctly sized slice of a fixed array.
func putUint16LE(buf []byte, v uint16) {
	binary.LittleEndian.PutUint16(buf, v)
}

// putUint32LE writes v into buf[0:4] little-endian.
func putUint32LE(buf []byte, v uint32) {
	binary.LittleEndian.PutUint32(buf, v)
}

// packManufacturer computes the two-byte, big-endian, 5-bit-per-letter
// VESA manufacturer code for a validated ManufacturerId.
//
// Given letters C1 C2 C3, each vI = letter - 'A' + 1 (1..=26). The high
// byte is (v1<<2)|(v2>>3); the low byte is ((v2&0x07)<<5)|v3. The top bit
// of the high byte is always zero.
func packManufacturer(id ManufacturerId) [2]byte {
	v1 := uint16(id[0]-'A') + 1
	v2 := uint16(id[1]-'A') + 1
	v3 := uint16(id[2]-'A') + 1
	hi := byte((v1 << 2) | (v2 >> 3))
	lo := byte(((v2 & 0x07) << 5) | v3)
	return [2]byte{hi, lo}
}

// unpackManufacturer is the inverse of packManufacturer, used only by
// tests to assert the round-trip property (spec.md §8.5).
func unpackManufacturer(hi, lo byte) [3]byte {
	v1 := (uint16(hi) >> 2) & 0x1f
	v2 := ((uint16(hi) & 0x03) << 3) | (uint16(lo) >> 5)
	v3 := uint16(lo) & 0x1f
	return [3]byte{
		byte('A' + v1 - 1),
		byte('A' + v2 - 1),
		byte('A' + v3 - 1),
	}
}

// packChroma10 maps x in [0,1) to a clamped 10-bit unsigned fraction:
// round(x*1024), clamped to 0..=1023.
func packChroma10(x float64) uint16 {
	v := int32(x*1024 + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 1023 {
		v = 1023
	}
	return uint16(v)
}

// packPaddedString writes s left-justified into a width-byte field: the
// ASCII bytes of s, then 0x0A if len(s) < width, then 0x20 padding to
// fill. Callers must have already validated 1 <= len(s) <= width and that
// s is ASCII; packPaddedString does not re-validate.
func packPaddedString(s string, width int) []byte {
	out := make([]byte, width)
	n := copy(out, s)
	if n < width {
		out[n] = 0x0A
		n++
	}
	for ; n < width; n++ {
		out[n] = 0x20
	}
	return out
}

// checksum8 returns the byte that makes sum(data)+result ≡ 0 (mod 256).
func checksum8(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return byte(256 - int(sum)%256)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
