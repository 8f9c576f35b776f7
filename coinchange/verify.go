package coinchange

import "fmt"

// Verify checks that coins is a valid change for amount using denoms:
// every coin is one of the denominations and the coins sum to amount.
// It does not check minimality; compare len(coins) with Count for that.
//
// Contract violations in denoms or amount yield the same errors as Solve.
// Otherwise ErrUnknownCoin or ErrSumMismatch is returned, wrapped with the
// offending values.
//
// Complexity: O(|denoms| + |coins|).
func Verify(denoms []int, amount int, coins []int) error {
	var err error
	if err = validateAmount(amount, 0); err != nil {
		return err
	}
	if err = validateDenominations(denoms); err != nil {
		return err
	}

	known := make(map[int]struct{}, len(denoms))
	for _, c := range denoms {
		known[c] = struct{}{}
	}

	var (
		sum int  // running total of coins
		ok  bool // presence flag in the 'known' set
	)
	for i, c := range coins {
		if _, ok = known[c]; !ok {
			return fmt.Errorf("%w: coins[%d] = %d", ErrUnknownCoin, i, c)
		}
		sum += c
	}
	if sum != amount {
		return fmt.Errorf("%w: got %d, want %d", ErrSumMismatch, sum, amount)
	}

	return nil
}

// Tally groups coins by denomination: the multiset view of a coin list.
// An empty or nil list yields an empty map.
func Tally(coins []int) map[int]int {
	out := make(map[int]int, len(coins))
	for _, c := range coins {
		out[c]++
	}

	return out
}
