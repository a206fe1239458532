// Package rng provides splittable pseudo-random keys.
//
// Sampling functions in this module take an explicit Key instead of sharing
// a global generator. A key opens one deterministic stream, so the same key
// always reproduces the same draws. Splitting a key derives independent
// child keys for logically distinct draws; the rule is split before use,
// and a key is never used for two different draws:
//
//	key := rng.NewKey(7)
//	priorKey, obsKey := key.Split()
//	// priorKey drives the prior draw, obsKey the observation draw
//
// The bit generation itself is delegated to math/rand/v2's PCG; a Key only
// derives and positions streams.
package rng
