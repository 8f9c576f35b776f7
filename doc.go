// Package changekit is a small toolkit for exact change: the fewest coins
// that sum to an amount, and the coins themselves.
//
// 🚀 What is in changekit?
//
//		• coinchange/    — minimum-coin DP solver with reconstruction, reusable
//		                   tables, verification and tallying
//		• cmd/changekit/ — command-line front end (solve, count, table, verify)
//		• examples/      — runnable real-world scenario
//
// ✨ Why choose changekit?
//
//   - Exact – full dynamic programming, correct for non-canonical coin systems
//   - Honest results – "no solution" is a value, bad input is an error
//   - Deterministic – fixed tie-break by denomination input order
//   - Pure Go – the solver has no dependencies and no shared state
//
// Quick example:
//
//	coins, ok, err := coinchange.Solve([]int{1, 2, 5}, 11)
//	// [5 5 1] true <nil>
//
//	go get github.com/katalvlaran/changekit/coinchange
package changekit
