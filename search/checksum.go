package search

// GCGChecksum computes the GCG text checksum of an input alignment:
// for each row, sum `(1 + (i mod 57)) * toupper(c)` over every
// character including gaps, where i restarts at 0 for each row; each
// row's sum is taken mod 10000 and the per-row results are summed and
// modded again. The HMM carries this value to verify map-based include
// operations against the alignment it was built from.
func GCGChecksum(rows [][]byte) int {
	total := 0
	for _, row := range rows {
		rowSum := 0
		for i, c := range row {
			rowSum += (1 + (i % 57)) * int(toUpper(c))
		}
		total += rowSum % 10000
	}
	return total % 10000
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
