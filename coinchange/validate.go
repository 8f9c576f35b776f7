// Package coinchange - input validation shared by Solve, Count, Build and Verify.
//
// Design principles:
//   - Every contract violation is reported before any table is allocated.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with the offending value.
package coinchange

import "fmt"

// validateAll verifies options, amount and denominations, in that order.
//
// Complexity: O(|denoms|).
func validateAll(denoms []int, amount int, opts Options) error {
	var err error

	// Stage 1: Options-only sanity.
	if err = validateOptions(opts); err != nil {
		return err
	}

	// Stage 2: amount range (sign, caller cap, hard cap).
	if err = validateAmount(amount, opts.MaxAmount); err != nil {
		return err
	}

	// Stage 3: every denomination strictly positive.
	return validateDenominations(denoms)
}

// validateOptions checks Options without reference to any input.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxAmount < 0 {
		return fmt.Errorf("%w: %d", ErrBadMaxAmount, opts.MaxAmount)
	}
	switch opts.Order {
	case FromZero, FromAmount:
		// ok
	default:
		return fmt.Errorf("%w: %d", ErrBadOrder, int(opts.Order))
	}

	return nil
}

// validateAmount enforces 0 ≤ amount ≤ min(max, hardMaxAmount); max == 0 means
// the caller imposed no cap.
//
// Complexity: O(1).
func validateAmount(amount, max int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, amount)
	}
	if max > 0 && amount > max {
		return fmt.Errorf("%w: %d > %d", ErrAmountTooLarge, amount, max)
	}
	if amount > hardMaxAmount {
		return fmt.Errorf("%w: %d > %d", ErrAmountTooLarge, amount, hardMaxAmount)
	}

	return nil
}

// validateDenominations rejects zero and negative denominations. An empty
// set is valid: it simply reaches nothing but amount 0.
//
// Complexity: O(|denoms|).
func validateDenominations(denoms []int) error {
	for i, c := range denoms {
		if c <= 0 {
			return fmt.Errorf("%w: denoms[%d] = %d", ErrBadDenomination, i, c)
		}
	}

	return nil
}

// normalize returns a fresh copy of denoms without duplicates, keeping the
// first occurrence of each value so the tie-break order is unchanged.
// The caller's slice is never modified.
//
// Complexity: O(|denoms|) time and space.
func normalize(denoms []int) []int {
	var (
		out  = make([]int, 0, len(denoms))
		seen = make(map[int]struct{}, len(denoms))
		ok   bool // presence flag in the 'seen' set
	)
	for _, c := range denoms {
		if _, ok = seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}
