package attention

// Reconcile returns a fresh n×n matrix derived from raw: surplus rows and
// columns are truncated from the end, missing rows and columns are
// zero-filled. Overlong rows are clamped to n in every branch, so the result
// always satisfies rows == n and len(row) == n for every row. The input is
// never mutated.
//
// Callers must short-circuit n == 0 or an empty raw matrix before calling;
// reconciliation is not defined for those inputs.
func Reconcile(raw [][]float64, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, n)
		if i < len(raw) {
			// copy stops at min(n, len(raw[i])): truncation and
			// zero-padding in one step.
			copy(row, raw[i])
		}
		out[i] = row
	}
	return out
}
