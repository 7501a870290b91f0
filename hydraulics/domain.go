package hydraulics

import "math"

// domainGuard collects the first input of a step that falls outside a
// correlation's empirical validity range. Evaluation continues with the
// clamped value so the profile stays finite; the recorded error tells the
// caller the step is an extrapolation rather than a fit.
type domainGuard struct {
	method string
	err    *DomainError
}

// clamp bounds v to [lo, hi] and records the violation. NaN counts as a
// violation and falls to lo.
func (g *domainGuard) clamp(quantity string, v, lo, hi float64) float64 {
	c := v
	switch {
	case math.IsNaN(v) || v < lo:
		c = lo
	case v > hi:
		c = hi
	default:
		return v
	}
	if g.err == nil {
		g.err = &DomainError{Method: g.method, Quantity: quantity, Value: v, Clamped: c}
	}
	return c
}
