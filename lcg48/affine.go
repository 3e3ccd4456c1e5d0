package lcg48

// Affine is a state transform state' = (Mul*state + Add) mod 2^48. One
// generator step is an affine transform, and affine transforms compose, so
// any number of steps collapses into a single (Mul, Add) pair.
type Affine struct {
	Mul, Add uint64
}

// Identity returns the transform that leaves state unchanged.
func Identity() Affine {
	return Affine{Mul: 1, Add: 0}
}

// Step returns the transform of a single Next call.
func Step() Affine {
	return Affine{Mul: multiplier, Add: increment}
}

// Then returns the transform equivalent to applying a after t.
func (t Affine) Then(a Affine) Affine {
	return Affine{
		Mul: a.Mul * t.Mul & mask48,
		Add: (a.Mul*t.Add + a.Add) & mask48,
	}
}

// Pow returns the transform equivalent to applying t n times, computed by
// binary exponentiation in O(log n).
func (t Affine) Pow(n uint64) Affine {
	acc := Identity()
	for ; n != 0; n >>= 1 {
		if n&1 != 0 {
			acc = acc.Then(t)
		}
		t = t.Then(t)
	}
	return acc
}

// Apply runs the transform on a 48-bit state word.
func (t Affine) Apply(state uint64) uint64 {
	return (t.Mul*state + t.Add) & mask48
}
