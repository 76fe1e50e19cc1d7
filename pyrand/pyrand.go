/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package pyrand is an MT19937 generator that follows CPython's random
// module draw for draw, so a seeded run reproduces the same values as the
// Python tooling this project started with.
package pyrand

import (
	"math/bits"
	"sort"
)

const (
	stateSize  = 624
	shiftSize  = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	initSeed   = 19650218
	twoPow26   = 67108864.0
	twoPowM53  = 1.0 / 9007199254740992.0
	maxBitsOne = 32
)

// Rand is a seeded MT19937 stream. It is not safe for concurrent use.
type Rand struct {
	mt  [stateSize]uint32
	mti int
}

// New returns a generator seeded the way random.seed(int) seeds CPython.
func New(seed int64) *Rand {
	r := &Rand{}
	r.Seed(seed)
	return r
}

// Seed resets the stream. The absolute value of seed is split into
// little-endian 32-bit words and fed to init_by_array.
func (r *Rand) Seed(seed int64) {
	n := uint64(seed)
	if seed < 0 {
		n = uint64(-seed)
	}

	key := []uint32{uint32(n)}
	if hi := uint32(n >> 32); hi != 0 {
		key = append(key, hi)
	}

	r.initByArray(key)
}

func (r *Rand) initGenrand(s uint32) {
	r.mt[0] = s
	for i := 1; i < stateSize; i++ {
		r.mt[i] = 1812433253*(r.mt[i-1]^(r.mt[i-1]>>30)) + uint32(i)
	}
	r.mti = stateSize
}

func (r *Rand) initByArray(key []uint32) {
	r.initGenrand(initSeed)

	i, j := 1, 0
	k := stateSize
	if len(key) > k {
		k = len(key)
	}

	for ; k > 0; k-- {
		r.mt[i] = (r.mt[i] ^ ((r.mt[i-1] ^ (r.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= stateSize {
			r.mt[0] = r.mt[stateSize-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}

	for k = stateSize - 1; k > 0; k-- {
		r.mt[i] = (r.mt[i] ^ ((r.mt[i-1] ^ (r.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= stateSize {
			r.mt[0] = r.mt[stateSize-1]
			i = 1
		}
	}

	r.mt[0] = 0x80000000
}

func (r *Rand) twist() {
	mag01 := [2]uint32{0, matrixA}

	kk := 0
	for ; kk < stateSize-shiftSize; kk++ {
		y := (r.mt[kk] & upperMask) | (r.mt[kk+1] & lowerMask)
		r.mt[kk] = r.mt[kk+shiftSize] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < stateSize-1; kk++ {
		y := (r.mt[kk] & upperMask) | (r.mt[kk+1] & lowerMask)
		r.mt[kk] = r.mt[kk+shiftSize-stateSize] ^ (y >> 1) ^ mag01[y&1]
	}

	y := (r.mt[stateSize-1] & upperMask) | (r.mt[0] & lowerMask)
	r.mt[stateSize-1] = r.mt[shiftSize-1] ^ (y >> 1) ^ mag01[y&1]

	r.mti = 0
}

// Uint32 returns the next tempered word of the stream.
func (r *Rand) Uint32() uint32 {
	if r.mti >= stateSize {
		r.twist()
	}

	y := r.mt[r.mti]
	r.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}

// Getrandbits returns an integer with k random bits, 1 <= k <= 32.
func (r *Rand) Getrandbits(k int) uint32 {
	if k <= 0 || k > maxBitsOne {
		panic(errBitsOutOfRange)
	}
	return r.Uint32() >> (maxBitsOne - k)
}

// Randbelow returns a uniform integer in [0, n) using rejection sampling
// over bitlen(n) bits, one word per attempt.
func (r *Rand) Randbelow(n int) int {
	if n <= 0 {
		panic(errEmptyRange)
	}

	k := bits.Len(uint(n))
	if k > maxBitsOne {
		panic(errBitsOutOfRange)
	}

	v := int(r.Getrandbits(k))
	for v >= n {
		v = int(r.Getrandbits(k))
	}
	return v
}

// Randint returns a uniform integer in [a, b], both ends inclusive.
func (r *Rand) Randint(a, b int) int {
	return a + r.Randbelow(b-a+1)
}

// Choice returns a uniform index into an enumeration of n items.
func (r *Rand) Choice(n int) int {
	return r.Randbelow(n)
}

// Random returns a float in [0, 1) with 53 bits of precision.
func (r *Rand) Random() float64 {
	a := r.Uint32() >> 5
	b := r.Uint32() >> 6
	return float64(float64(a)*twoPow26+float64(b)) * twoPowM53
}

// Uniform returns a + (b-a)*Random(). The explicit conversions keep the
// compiler from fusing the multiply-add, which would change the last bit.
func (r *Rand) Uniform(a, b float64) float64 {
	return a + float64((b-a)*r.Random())
}

// Weighted picks an index using cumulative weights, consuming one Random()
// draw. The result is the bisect-right position of Random()*total.
func (r *Rand) Weighted(cumWeights []float64) int {
	if len(cumWeights) == 0 {
		panic(errEmptyRange)
	}

	hi := len(cumWeights) - 1
	x := float64(r.Random() * cumWeights[hi])

	idx := sort.Search(hi, func(i int) bool {
		return cumWeights[i] > x
	})
	return idx
}

// Cumulative turns relative weights into the running totals Weighted expects.
func Cumulative(weights ...float64) []float64 {
	out := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		total += w
		out[i] = total
	}
	return out
}
