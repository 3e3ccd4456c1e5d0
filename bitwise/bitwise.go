// Package bitwise provides fixed-width rotation and byte-order helpers.
//
// Rotation amounts must be strictly inside the word width: the zero and
// full-width cases hit undefined shift semantics and are the caller's
// responsibility to avoid.
package bitwise

// RotL64 rotates x left by b bits, b in [1,63].
func RotL64(x uint64, b uint) uint64 {
	return x<<b | x>>(64-b)
}

// RotR32 rotates x right by b bits, b in [1,31].
func RotR32(x uint32, b uint) uint32 {
	return x>>b | x<<(32-b)
}

// SwapBytes32 reverses the byte order of a 32-bit word.
func SwapBytes32(x uint32) uint32 {
	return x>>24 | x>>8&0x0000ff00 | x<<8&0x00ff0000 | x<<24
}
