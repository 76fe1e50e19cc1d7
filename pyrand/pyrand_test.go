// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package pyrand

import (
	"math"
	"testing"
)

func TestRandomMatchesKnownSequence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		seed int64
		want []float64
	}{
		{seed: 42, want: []float64{0.6394267984578837, 0.025010755222666936, 0.27502931836911926}},
		{seed: 0, want: []float64{0.8444218515250481}},
		{seed: 1, want: []float64{0.13436424411240122}},
	}

	for _, tc := range cases {
		r := New(tc.seed)
		for i, want := range tc.want {
			if got := r.Random(); got != want {
				t.Fatalf("seed %d draw %d: expected %v, got %v", tc.seed, i, want, got)
			}
		}
	}
}

func TestRandintMatchesKnownValue(t *testing.T) {
	t.Parallel()

	if got := New(42).Randint(1, 100); got != 82 {
		t.Fatalf("expected 82, got %d", got)
	}
}

func TestNegativeSeedUsesAbsoluteValue(t *testing.T) {
	t.Parallel()

	a := New(42)
	b := New(-42)
	for i := 0; i < 10; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("expected identical streams at draw %d", i)
		}
	}
}

func TestSeedResetsStream(t *testing.T) {
	t.Parallel()

	r := New(7)
	first := r.Uint32()
	for i := 0; i < 1000; i++ {
		r.Uint32()
	}

	r.Seed(7)
	if got := r.Uint32(); got != first {
		t.Fatalf("expected %d after reseed, got %d", first, got)
	}
}

func TestRandintStaysInRange(t *testing.T) {
	t.Parallel()

	r := New(3)
	seenLow, seenHigh := false, false
	for i := 0; i < 20000; i++ {
		v := r.Randint(50, 400)
		if v < 50 || v > 400 {
			t.Fatalf("value %d out of range", v)
		}
		seenLow = seenLow || v == 50
		seenHigh = seenHigh || v == 400
	}
	if !seenLow || !seenHigh {
		t.Fatalf("expected both bounds to be reachable (low=%v high=%v)", seenLow, seenHigh)
	}
}

func TestUniformStaysInRange(t *testing.T) {
	t.Parallel()

	r := New(11)
	for i := 0; i < 10000; i++ {
		v := r.Uniform(0.0005, 0.005)
		if v < 0.0005 || v > 0.005 {
			t.Fatalf("value %v out of range", v)
		}
	}
}

func TestWeightedConvergesToWeights(t *testing.T) {
	t.Parallel()

	r := New(42)
	cum := Cumulative(45, 45, 10)
	counts := make([]int, 3)
	const n = 100000
	for i := 0; i < n; i++ {
		counts[r.Weighted(cum)]++
	}

	want := []float64{0.45, 0.45, 0.10}
	for i, c := range counts {
		if got := float64(c) / n; math.Abs(got-want[i]) > 0.01 {
			t.Fatalf("bucket %d: expected ~%.2f, got %.4f", i, want[i], got)
		}
	}
}

func TestCumulative(t *testing.T) {
	t.Parallel()

	got := Cumulative(90, 10)
	if len(got) != 2 || got[0] != 90 || got[1] != 100 {
		t.Fatalf("unexpected cumulative weights: %v", got)
	}
}

func TestRandbelowPanicsOnEmptyRange(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty range")
		}
	}()
	New(1).Randbelow(0)
}
