// Package xoroshiro128 implements the xoroshiro128++ pseudorandom number
// generator with the (17, 49, 28) rotation set.
//
// https://prng.di.unimi.it/
//
// Seeding follows the splitmix64 recommendation: a single 64-bit seed is
// expanded into two well-distributed lanes, so even low-entropy seeds avoid
// the degenerate all-zero state.
package xoroshiro128

import (
	"math/rand"

	"github.com/Nel-S/worldseed/bitwise"
)

// Lane-expansion constants: the silver-ratio xor, the golden-ratio
// increment, and the two splitmix64 multipliers.
const (
	silverRatio = 0x6a09e667f3bcc909
	goldenRatio = 0x9e3779b97f4a7c15
	mixA        = 0xbf58476d1ce4e5b9
	mixB        = 0x94d049bb133111eb
)

// Source is a two-lane xoroshiro128++ generator. The lanes are never both
// zero after seeding. Not safe for concurrent use.
type Source struct {
	lo, hi uint64
}

var (
	_ rand.Source64 = (*Source)(nil)
)

// New returns a generator seeded from a single 64-bit value.
func New(seed uint64) *Source {
	s := &Source{}
	s.SetSeed(seed)
	return s
}

// SetSeed expands seed into the two lanes.
func (s *Source) SetSeed(seed uint64) {
	lo := seed ^ silverRatio
	hi := lo + goldenRatio
	s.lo = mix64(lo)
	s.hi = mix64(hi)
}

// Lanes returns the raw lane pair.
func (s *Source) Lanes() (lo, hi uint64) {
	return s.lo, s.hi
}

// mix64 is one splitmix64 scramble round.
func mix64(z uint64) uint64 {
	z = (z ^ z>>30) * mixA
	z = (z ^ z>>27) * mixB
	return z ^ z>>31
}

// NextLong advances the generator and returns the next 64-bit draw.
func (s *Source) NextLong() uint64 {
	lo, hi := s.lo, s.hi
	n := bitwise.RotL64(lo+hi, 17) + lo
	hi ^= lo
	s.lo = bitwise.RotL64(lo, 49) ^ hi ^ hi<<21
	s.hi = bitwise.RotL64(hi, 28)
	return n
}

// NextInt returns a uniform value in [0,n). n == 0 is undefined.
//
// Multiply-shift bound (Lemire): the top 32 bits of low32(draw)*n are the
// candidate; draws landing in the short final interval of size 2^32 mod n
// are rejected. 2^32 mod n is computed as (-n) mod n in two's complement.
func (s *Source) NextInt(n uint32) uint32 {
	r := (s.NextLong() & 0xffffffff) * uint64(n)
	if uint32(r) < n {
		for uint32(r) < -n%n {
			r = (s.NextLong() & 0xffffffff) * uint64(n)
		}
	}
	return uint32(r >> 32)
}

// NextFloat returns a uniform float32 in [0,1) from the top 24 bits of a
// draw.
func (s *Source) NextFloat() float32 {
	return float32(s.NextLong()>>40) * (1.0 / (1 << 24))
}

// NextDouble returns a uniform float64 in [0,1) from the top 53 bits of a
// draw.
func (s *Source) NextDouble() float64 {
	return float64(s.NextLong()>>11) * (1.0 / (1 << 53))
}

// Uint64 implements rand.Source64.
func (s *Source) Uint64() uint64 {
	return s.NextLong()
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.NextLong() >> 1)
}

// Seed implements rand.Source.
func (s *Source) Seed(seed int64) {
	s.SetSeed(uint64(seed))
}
