package models

import "fmt"

// QuantileMethod selects how percentile latencies are computed.
type QuantileMethod string

const (
	// QuantileNearestRank picks the ceil(n*p)-th smallest value (1-based).
	QuantileNearestRank QuantileMethod = "nearest_rank"
	// QuantileExclusive interpolates over n+1 positions like the "exclusive"
	// method of common statistics libraries. It may extrapolate past the
	// largest observation for small samples.
	QuantileExclusive QuantileMethod = "exclusive"
)

func NewQuantileMethodFromString(s string) (QuantileMethod, error) {
	switch QuantileMethod(s) {
	case QuantileNearestRank, QuantileExclusive:
		return QuantileMethod(s), nil
	default:
		return "", fmt.Errorf("invalid quantile method: %q", s)
	}
}
