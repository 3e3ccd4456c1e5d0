// Package lcg48 implements the 48-bit linear congruential generator used by
// java.util.Random.
//
// https://docs.oracle.com/javase/8/docs/api/java/util/Random.html
//
// The generator is emulated bit for bit: the same multiplier and increment,
// the same 48-bit state truncation, and the same rejection sampling in
// NextInt. Sequences produced here match the reference generator for any
// seed, which is the entire point — downstream seed catalogs depend on it.
package lcg48

import "math/rand"

const (
	multiplier = 0x5DEECE66D
	increment  = 0xB
	mask48     = 1<<48 - 1
)

// Source is a 48-bit LCG. The state lives in the low 48 bits of a uint64 and
// is re-masked after every mutation. Not safe for concurrent use.
type Source struct {
	state uint64
}

var (
	_ rand.Source = (*Source)(nil)
)

// New returns a generator scrambled from the given seed.
func New(seed uint64) *Source {
	s := &Source{}
	s.SetSeed(seed)
	return s
}

// SetSeed rescrambles the generator from seed.
func (s *Source) SetSeed(seed uint64) {
	s.state = (seed ^ multiplier) & mask48
}

// State returns the raw 48-bit state word.
func (s *Source) State() uint64 {
	return s.state
}

// Next advances the state once and returns its top bits as an int32.
// bits must be in [1,32].
func (s *Source) Next(bits uint) int32 {
	s.state = (s.state*multiplier + increment) & mask48
	return int32(s.state >> (48 - bits))
}

// NextInt returns a uniform value in [0,n). n <= 0 is undefined.
//
// Powers of two take a multiply-shift fast path; everything else rejection
// samples so the 31-bit draw carries no modulo bias. The loop has no hard
// bound but terminates with probability 1.
func (s *Source) NextInt(n int32) int32 {
	if n&-n == n {
		return int32((int64(n) * int64(s.Next(31))) >> 31)
	}
	for {
		bits := s.Next(31)
		val := bits % n
		if bits-val+(n-1) >= 0 {
			return val
		}
	}
}

// NextLong returns the next 64-bit draw: two 32-bit draws, high word first.
func (s *Source) NextLong() int64 {
	hi := int64(s.Next(32)) << 32
	return hi + int64(s.Next(32))
}

// NextFloat returns a uniform float32 in [0,1).
func (s *Source) NextFloat() float32 {
	return float32(s.Next(24)) / (1 << 24)
}

// NextDouble returns a uniform float64 in [0,1), built from a 53-bit
// mantissa drawn in two pieces.
func (s *Source) NextDouble() float64 {
	hi := int64(s.Next(26)) << 27
	return float64(hi+int64(s.Next(27))) * (1.0 / (1 << 53))
}

// Skip advances the state by n steps of the Next recurrence in O(log n),
// composing the step transform by binary exponentiation rather than
// iterating.
func (s *Source) Skip(n uint64) {
	s.state = Step().Pow(n).Apply(s.state)
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(uint64(s.NextLong()) >> 1)
}

// Seed implements rand.Source.
func (s *Source) Seed(seed int64) {
	s.SetSeed(uint64(seed))
}
