package rng

import "math/rand/v2"

// golden is the 64-bit golden ratio increment used by SplitMix64.
const golden = 0x9e3779b97f4a7c15

// Key identifies one pseudo-random stream. Keys are small values: copying
// is cheap and the same key always opens the same stream.
type Key struct {
	hi, lo uint64
}

// NewKey derives a key from a seed.
func NewKey(seed uint64) Key {
	return Key{mix(seed), mix(seed + golden)}
}

// Split derives two child keys. The children and the parent identify
// pairwise distinct streams; after splitting, the parent should not be used
// for further draws.
func (k Key) Split() (Key, Key) {
	return k.child(0), k.child(1)
}

// SplitN derives n child keys, one per logically distinct draw.
func (k Key) SplitN(n int) []Key {
	keys := make([]Key, n)
	for i := range keys {
		keys[i] = k.child(uint64(i))
	}
	return keys
}

func (k Key) child(i uint64) Key {
	return Key{
		mix(k.hi ^ mix(2*i+1)),
		mix(k.lo + (i+1)*golden),
	}
}

// Source returns a fresh math/rand/v2 source positioned at the start of the
// key's stream.
func (k Key) Source() rand.Source {
	return rand.NewPCG(k.hi, k.lo)
}

// Rand returns a *rand.Rand reading the key's stream.
func (k Key) Rand() *rand.Rand {
	return rand.New(k.Source())
}

// mix is the SplitMix64 finalizer.
func mix(z uint64) uint64 {
	z += golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
