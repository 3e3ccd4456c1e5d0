package xoroshiro128_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nel-S/worldseed/xoroshiro128"
)

func TestSeedLanes(t *testing.T) {
	lo, hi := xoroshiro128.New(0).Lanes()
	assert.Equal(t, uint64(0x3564b439cd1e1f16), lo)
	assert.Equal(t, uint64(0x63cfc62a2b097592), hi)

	lo, hi = xoroshiro128.New(12345).Lanes()
	assert.Equal(t, uint64(0x0a2c34e6ca54dd9e), lo)
	assert.Equal(t, uint64(0xcf828dadc78bbeeb), hi)
}

func TestLanesNeverBothZero(t *testing.T) {
	for _, seed := range []uint64{0, 1, 0x6a09e667f3bcc909, 0xFFFFFFFFFFFFFFFF} {
		lo, hi := xoroshiro128.New(seed).Lanes()
		assert.False(t, lo == 0 && hi == 0, "seed=%#x", seed)
	}
	for seed := uint64(0); seed < 10000; seed++ {
		lo, hi := xoroshiro128.New(seed).Lanes()
		assert.False(t, lo == 0 && hi == 0, "seed=%d", seed)
	}
}

func TestNextLongRegression(t *testing.T) {
	x := xoroshiro128.New(0)
	got := make([]uint64, 5)
	for i := range got {
		got[i] = x.NextLong()
	}
	assert.Equal(t, []uint64{
		3038984756725240190,
		14752704786953913202,
		4633751808701151732,
		2160572957309072155,
		1839370574944072389,
	}, got)

	x.SetSeed(12345)
	for i := range got {
		got[i] = x.NextLong()
	}
	assert.Equal(t, []uint64{
		10328258799079035131,
		8241557746459281790,
		4143755034716878659,
		1226499899398695337,
		10394400370050304468,
	}, got)
}

func TestNextInt(t *testing.T) {
	x := xoroshiro128.New(12345)
	got := make([]uint32, 8)
	for i := range got {
		got[i] = x.NextInt(16)
	}
	assert.Equal(t, []uint32{0, 13, 14, 0, 8, 11, 3, 8}, got)

	x.SetSeed(12345)
	for i := range got {
		got[i] = x.NextInt(10)
	}
	assert.Equal(t, []uint32{0, 8, 8, 0, 5, 6, 2, 5}, got)
}

func TestNextIntRange(t *testing.T) {
	x := xoroshiro128.New(777)
	for _, n := range []uint32{1, 2, 3, 7, 10, 16, 100, 1 << 16, 1<<31 + 1} {
		for i := 0; i < 200; i++ {
			assert.Less(t, x.NextInt(n), n)
		}
	}
}

func TestNextDouble(t *testing.T) {
	x := xoroshiro128.New(12345)
	assert.Equal(t, 0.5598960313977008, x.NextDouble())
	assert.Equal(t, 0.44677574066879455, x.NextDouble())
	assert.Equal(t, 0.22463341054438923, x.NextDouble())

	x.SetSeed(0)
	for i := 0; i < 1000; i++ {
		v := x.NextDouble()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestNextFloat(t *testing.T) {
	x := xoroshiro128.New(12345)
	assert.Equal(t, float32(0.5598959922790527), x.NextFloat())
	assert.Equal(t, float32(0.44677573442459106), x.NextFloat())
	assert.Equal(t, float32(0.22463339567184448), x.NextFloat())
}

func TestRandSource64(t *testing.T) {
	r := rand.New(xoroshiro128.New(7))
	for i := 0; i < 100; i++ {
		assert.Less(t, r.Intn(10), 10)
	}
}
