package aggregators

// Every function here expects a non-empty, ascending slice.

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// nearestRank returns the ceil(n*pct/100)-th smallest value, 1-based.
func nearestRank(sorted []float64, pct int) float64 {
	n := len(sorted)
	rank := (n*pct + 99) / 100
	if rank < 1 {
		rank = 1
	}
	if rank > n {
		rank = n
	}
	return sorted[rank-1]
}

// exclusiveQuantile returns the i-th of the q-quantile cut points, using n+1
// positions and linear interpolation. Indices are clamped to the sample, so
// small samples extrapolate past the largest value: p99 of [1, 2] is 2.97.
func exclusiveQuantile(sorted []float64, i, q int) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	m := n + 1
	j := i * m / q
	if j < 1 {
		j = 1
	}
	if j > n-1 {
		j = n - 1
	}
	delta := i*m - j*q
	return (sorted[j-1]*float64(q-delta) + sorted[j]*float64(delta)) / float64(q)
}
