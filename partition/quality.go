// File: quality.go
// Role: numerical helpers shared by the Surprise and Significance
// quality functions — the binary KL divergence with the 0*log(0/y) := 0
// convention required by SPEC_FULL.md §4.8/§9.

package partition

import "math"

// klDiv computes the binary Kullback-Leibler divergence D(x || y) =
// x*ln(x/y) + (1-x)*ln((1-x)/(1-y)), treating any 0*ln(0) term as 0. y is
// assumed to lie in (0,1); x is assumed to lie in [0,1].
func klDiv(x, y float64) float64 {
	return xlogy(x, x, y) + xlogy(1-x, 1-x, 1-y)
}

// xlogy returns num*ln(num/den), or 0 if num == 0 (the "0 log 0 := 0"
// convention), or 0 if the ratio is non-finite (NumericEdgeCase, handled
// internally per SPEC_FULL.md §4.8 rather than surfaced as NaN/Inf).
func xlogy(coeff, num, den float64) float64 {
	if coeff == 0 {
		return 0
	}
	if den <= 0 {
		return 0
	}
	ratio := num / den
	if ratio <= 0 {
		return 0
	}
	v := coeff * math.Log(ratio)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
