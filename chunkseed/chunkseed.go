// Package chunkseed derives the layered seed hierarchy used for
// position-dependent procedural generation:
//
//	world seed -> layer salt -> start salt/seed -> chunk seed
//
// Every derivation composes a single nonlinear mixing step (the Knuth MMIX
// LCG constants folded with the running seed), so the whole pipeline is a
// handful of pure functions on 64-bit scalars. Generation layers sharing a
// world seed stay decorrelated because each folds in its own layer salt.
package chunkseed

const (
	stepMul = 6364136223846793005
	stepAdd = 1442695040888963407
)

// StepSeed is the mixing primitive: s*(s*stepMul + stepAdd) + salt, mod 2^64.
func StepSeed(s, salt uint64) uint64 {
	return s*(s*stepMul+stepAdd) + salt
}

// LayerSalt expands a small per-layer salt constant into a full 64-bit layer
// salt by folding it with itself three times.
func LayerSalt(salt uint64) uint64 {
	ls := StepSeed(salt, salt)
	ls = StepSeed(ls, salt)
	return StepSeed(ls, salt)
}

// StartSalt mixes a world seed with a layer salt. The result salts the draws
// stepped off a chunk seed.
func StartSalt(worldSeed, layerSalt uint64) uint64 {
	ss := StepSeed(worldSeed, layerSalt)
	ss = StepSeed(ss, layerSalt)
	return StepSeed(ss, layerSalt)
}

// StartSeed is the start salt advanced once more with a zero salt; it seeds
// per-chunk derivation.
func StartSeed(worldSeed, layerSalt uint64) uint64 {
	return StepSeed(StartSalt(worldSeed, layerSalt), 0)
}

// ChunkSeed derives the leaf seed for chunk coordinates (x, z).
func ChunkSeed(startSeed uint64, x, z int32) uint64 {
	ux, uz := uint64(int64(x)), uint64(int64(z))
	cs := startSeed + ux
	cs = StepSeed(cs, uz)
	cs = StepSeed(cs, ux)
	return StepSeed(cs, uz)
}

// FirstInt extracts the first pseudorandom integer in [0, mod) from a
// derived seed. mod must be positive.
func FirstInt(seed uint64, mod int32) int32 {
	ret := int32((int64(seed) >> 24) % int64(mod))
	if ret < 0 {
		ret += mod
	}
	return ret
}

// FirstIsZero reports whether FirstInt(seed, mod) would be zero, skipping
// the negative correction: a truncating remainder of zero is zero from
// either side.
func FirstIsZero(seed uint64, mod int32) bool {
	return (int64(seed)>>24)%int64(mod) == 0
}
