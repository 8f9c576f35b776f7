package coinchange

import "slices"

// Coin change — minimum number of coins with reconstruction
//
// Algorithm Outline:
//  1. Allocate cells[0..N]; cells[0] = {count: 0, reached: true}, every other
//     cell starts unreached.
//  2. For i = 1..N:
//     For each denomination c in input order (duplicates removed):
//     if c ≤ i and cells[i-c] is reached and
//     (cells[i] unreached or cells[i-c].count+1 < cells[i].count):
//     cells[i] = {count: cells[i-c].count+1, coin: c, reached: true}
//  3. Amount a is feasible iff cells[a].reached.
//  4. Reconstruct: starting at cur = a, append cells[cur].coin and subtract it
//     until cur == 0; reverse for FromZero.
//
// Tie-break:
//
//	Only a strict improvement replaces a recorded choice, so among the
//	denominations giving the same minimum the first one in input order wins.
//	The result is deterministic for a fixed input order.
//
// Invariant (checked by tests):
//
//	for every reached i > 0: cells[i].count == cells[i-coin].count + 1 and
//	coin is a denomination ≤ i.
//
// Complexity:
//
//	Time   = O(N·|denoms|)
//	Memory = O(N)

// Solve returns one minimum-size list of coins from denoms summing to amount.
//
// ok is false when no combination sums exactly to amount; coins is then nil.
// amount == 0 always yields an empty, non-nil slice with ok == true, even for
// an empty denomination set. err is non-nil only for contract violations
// (ErrNegativeAmount, ErrBadDenomination, ErrAmountTooLarge, ErrBadMaxAmount,
// ErrBadOrder), reported before any table is built.
//
// Example:
//
//	coins, ok, err := Solve([]int{1, 2, 5}, 11) // [5 5 1], true, nil
func Solve(denoms []int, amount int, opts ...Option) (coins []int, ok bool, err error) {
	var t *Table
	if t, err = Build(denoms, amount, opts...); err != nil {
		return nil, false, err
	}

	return t.Coins(amount)
}

// Count returns the minimum number of coins from denoms summing to amount,
// without materialising the coin list. ok and err follow Solve.
func Count(denoms []int, amount int, opts ...Option) (n int, ok bool, err error) {
	var t *Table
	if t, err = Build(denoms, amount, opts...); err != nil {
		return 0, false, err
	}

	return t.Count(amount)
}

// Build fills the cost/choice tables for every amount 0..max and returns them
// as a Table. Optimal substructure makes every prefix of the table final, so a
// single Build answers Count/Coins for all amounts up to max.
//
// Options are applied over DefaultOptions. All inputs are validated before
// allocation; see Solve for the error set.
func Build(denoms []int, max int, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateAll(denoms, max, o); err != nil {
		return nil, err
	}

	t := &Table{
		denoms: normalize(denoms),
		cells:  make([]cell, max+1),
		order:  o.Order,
	}
	t.cells[0] = cell{reached: true}

	var (
		i    int   // amount being filled
		c    int   // candidate denomination
		prev cell  // cell for i-c
		cur  *cell // cell for i
	)
	for i = 1; i <= max; i++ {
		cur = &t.cells[i]
		for _, c = range t.denoms {
			if c > i {
				continue
			}
			prev = t.cells[i-c]
			if !prev.reached {
				continue
			}
			// strict improvement only: an equal count never displaces an earlier coin
			if !cur.reached || prev.count+1 < cur.count {
				*cur = cell{count: prev.count + 1, coin: c, reached: true}
			}
		}
	}

	return t, nil
}

// Max returns the largest amount the table was built for.
func (t *Table) Max() int { return len(t.cells) - 1 }

// Order returns the listing order used by Coins.
func (t *Table) Order() Order { return t.order }

// Denominations returns a copy of the normalised denominations in tie-break order.
func (t *Table) Denominations() []int { return slices.Clone(t.denoms) }

// Reachable reports whether amount can be formed exactly. Amounts outside
// 0..Max() report false.
func (t *Table) Reachable(amount int) bool {
	if amount < 0 || amount > t.Max() {
		return false
	}

	return t.cells[amount].reached
}

// Count returns the minimum coin count for amount.
// ok is false when amount is infeasible.
func (t *Table) Count(amount int) (int, bool, error) {
	if err := t.checkRange(amount); err != nil {
		return 0, false, err
	}
	if !t.cells[amount].reached {
		return 0, false, nil
	}

	return t.cells[amount].count, true, nil
}

// Coins reconstructs one optimal coin list for amount, listed per the
// table's Order. ok is false when amount is infeasible; the returned slice is
// then nil. Every call returns a fresh slice.
func (t *Table) Coins(amount int) ([]int, bool, error) {
	if err := t.checkRange(amount); err != nil {
		return nil, false, err
	}
	if !t.cells[amount].reached {
		return nil, false, nil
	}

	coins := make([]int, 0, t.cells[amount].count)
	for cur := amount; cur > 0; cur -= t.cells[cur].coin {
		coins = append(coins, t.cells[cur].coin)
	}
	if t.order == FromZero {
		slices.Reverse(coins)
	}

	return coins, true, nil
}

// checkRange maps amounts outside 0..Max() to sentinel errors.
func (t *Table) checkRange(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > t.Max() {
		return ErrOutOfRange
	}

	return nil
}
