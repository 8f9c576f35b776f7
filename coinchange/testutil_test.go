// Package coinchange_test provides helpers shared across *_test.go files:
// an independent brute-force oracle and deterministic random instances.
package coinchange_test

import (
	"math/rand"
	"slices"
)

const (
	// seedDet is the deterministic seed for randomized cross-checks.
	seedDet = int64(20241019)

	// randomRuns is the number of random instances per cross-check.
	randomRuns = 300

	// maxRandAmount bounds amounts in random instances (keeps the oracle cheap).
	maxRandAmount = 40
)

// bruteMin enumerates every multiplicity vector over denoms and returns the
// smallest total count summing to amount, or (0, false) if none does.
// It shares no code with the DP solver.
func bruteMin(denoms []int, amount int) (int, bool) {
	best, found := 0, false

	var rec func(idx, remaining, used int)
	rec = func(idx, remaining, used int) {
		if remaining == 0 {
			if !found || used < best {
				best, found = used, true
			}

			return
		}
		if idx == len(denoms) {
			return
		}
		c := denoms[idx]
		for k := 0; k*c <= remaining; k++ {
			rec(idx+1, remaining-k*c, used+k)
		}
	}
	rec(0, amount, 0)

	return best, found
}

// sum adds up a coin list.
func sum(coins []int) int {
	var s int
	for _, c := range coins {
		s += c
	}

	return s
}

// randomInstance draws 0..4 denominations in 1..12 (duplicates allowed) and
// an amount in 0..maxRandAmount.
func randomInstance(r *rand.Rand) ([]int, int) {
	n := r.Intn(5)
	denoms := make([]int, n)
	for i := range denoms {
		denoms[i] = 1 + r.Intn(12)
	}

	return denoms, r.Intn(maxRandAmount + 1)
}

// allMembers reports whether every coin is one of denoms.
func allMembers(denoms, coins []int) bool {
	for _, c := range coins {
		if !slices.Contains(denoms, c) {
			return false
		}
	}

	return true
}
