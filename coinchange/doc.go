// Package coinchange solves the minimum-coin change problem exactly and
// reconstructs the coins that realise the optimum.
//
// 🚀 What is minimum-coin change?
//
//	Given a set of positive denominations (each usable any number of times)
//	and a non-negative target amount, find the fewest coins whose values sum
//	to exactly that amount. It shows up in:
//	  • Vending machines & cash registers
//	  • Pack / bundle sizing for orders
//	  • Resource quantisation (fixed block sizes, fee tiers)
//
// ✨ Key features:
//   - full dynamic programming, never a greedy shortcut (works for {1,3,4})
//   - exact reconstruction of one optimal multiset of coins
//   - infeasibility is a normal result (ok == false), not an error
//   - contract violations (negative amount, non-positive coin) are sentinel errors
//   - reusable Table: build once up to N, answer every amount 0..N
//   - deterministic tie-break: first denomination (input order) that strictly
//     improves an amount wins
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/changekit/coinchange"
//
//	coins, ok, err := coinchange.Solve([]int{1, 2, 5}, 11)
//	// coins == [5 5 1], ok == true, err == nil
//
//	_, ok, _ = coinchange.Solve([]int{2, 4}, 3)
//	// ok == false: no combination of 2 and 4 sums to 3
//
// Ordering:
//
//	The walk naturally runs from the amount down to zero. By default (FromZero)
//	it is reversed, so coins are listed in the order they would be added when
//	counting up from zero. WithOrder(FromAmount) keeps the raw walk order.
//
// Performance:
//
//   - Time:   O(amount·|denominations|)
//   - Memory: O(amount)
//
// Callers that accept untrusted amounts should bound them with WithMaxAmount.
package coinchange
