package coinchange

// Test bridge (white-box): exposes the raw DP cells to coinchange_test so the
// table invariant can be checked without widening the production API.

// ExportedCell returns the recorded count, last coin and reachability for
// amount i. It panics if i is outside 0..t.Max().
func ExportedCell(t *Table, i int) (count, coin int, reached bool) {
	c := t.cells[i]

	return c.count, c.coin, c.reached
}

// ExportedNormalize exposes normalize for white-box tests.
var ExportedNormalize = normalize

// ExportedHardMaxAmount exposes the hard table limit.
const ExportedHardMaxAmount = hardMaxAmount
