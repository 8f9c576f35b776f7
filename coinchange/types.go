package coinchange

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the coinchange package.
//
// None of them signal infeasibility: an amount that cannot be formed from
// the given denominations is reported through the ok result instead.
var (
	// ErrNegativeAmount indicates that a negative target amount was passed.
	ErrNegativeAmount = errors.New("coinchange: amount must be non-negative")

	// ErrBadDenomination indicates a zero or negative denomination.
	ErrBadDenomination = errors.New("coinchange: denominations must be positive")

	// ErrBadMaxAmount indicates that MaxAmount was set to a negative value.
	ErrBadMaxAmount = errors.New("coinchange: MaxAmount must be non-negative")

	// ErrAmountTooLarge indicates that the amount exceeds MaxAmount (or the
	// hard table limit), so no table was allocated.
	ErrAmountTooLarge = errors.New("coinchange: amount exceeds MaxAmount")

	// ErrBadOrder indicates an unknown Order value.
	ErrBadOrder = errors.New("coinchange: unknown Order")

	// ErrOutOfRange indicates a Table lookup above the amount it was built for.
	ErrOutOfRange = errors.New("coinchange: amount outside table range")

	// ErrSumMismatch indicates that a coin list does not sum to the amount.
	ErrSumMismatch = errors.New("coinchange: coins do not sum to amount")

	// ErrUnknownCoin indicates that a coin list contains a value that is not
	// one of the denominations.
	ErrUnknownCoin = errors.New("coinchange: coin is not a known denomination")
)

// hardMaxAmount caps table size independently of Options.MaxAmount so that
// amount+1 never overflows and allocation never panics on user input.
const hardMaxAmount = 1<<31 - 2

// Order controls the order in which reconstructed coins are listed.
//
//   - FromZero   — coins in the order they are added counting up from 0
//     (the reversed reconstruction walk). {1,2,5}/11 ⇒ [5 5 1].
//   - FromAmount — coins in raw walk order, from the amount down to 0.
//     {1,2,5}/11 ⇒ [1 5 5].
type Order int

const (
	// FromZero lists coins starting from amount 0 (default).
	FromZero Order = iota

	// FromAmount lists coins starting from the target amount.
	FromAmount
)

// String returns the flag/config spelling of o.
func (o Order) String() string {
	switch o {
	case FromZero:
		return "from-zero"
	case FromAmount:
		return "from-amount"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder is the inverse of Order.String. Matching is case-insensitive.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "from-zero":
		return FromZero, nil
	case "from-amount":
		return FromAmount, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadOrder, s)
	}
}

// Options configures Solve, Count and Build.
//
// MaxAmount – largest amount a call may build a table for. 0 means no cap
//
//	(only the hard table limit applies). Must be ≥ 0.
//
// Order     – listing order of reconstructed coins. Default FromZero.
type Options struct {
	MaxAmount int   // Upper bound on the target amount (0 = unbounded)
	Order     Order // Listing order of reconstructed coins
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithMaxAmount bounds the amount any single call may allocate a table for.
// Amounts above max are rejected with ErrAmountTooLarge before any work.
// Negative values are reported as ErrBadMaxAmount by the solver.
func WithMaxAmount(max int) Option {
	return func(o *Options) {
		o.MaxAmount = max
	}
}

// WithOrder selects the listing order of reconstructed coins.
func WithOrder(order Order) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// DefaultOptions returns the defaults used when no Option is supplied.
//
// Defaults:
//   - MaxAmount: 0 (no cap beyond the hard table limit).
//   - Order:     FromZero.
func DefaultOptions() Options {
	return Options{
		MaxAmount: 0,
		Order:     FromZero,
	}
}

// cell is one entry of the DP table. An amount is unreachable until reached
// is set; count and coin carry no meaning before that.
type cell struct {
	count   int  // minimum number of coins summing to this amount
	coin    int  // denomination used last in the recorded optimum (0 at amount 0)
	reached bool // whether any combination sums to this amount
}

// Table holds the cost/choice tables for every amount 0..Max().
// A Table is immutable once built and safe for concurrent readers.
type Table struct {
	denoms []int  // normalised denominations, first-occurrence order
	cells  []cell // len == max+1
	order  Order
}
