package hydraulics

import "fmt"

// ValidationError reports malformed input (geometry, physical quantities,
// unknown method names). No partial result accompanies it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// GeometryError reports a depth outside the defined flow path.
type GeometryError struct {
	Depth  float64
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error at %.1f ft: %s", e.Depth, e.Reason)
}

// DomainError reports a correlation input outside its empirical validity
// range. It carries the offending step and the clamped fallback actually used,
// so the caller can decide to keep the clamped profile or discard it.
type DomainError struct {
	Method   string
	Step     int
	Depth    float64
	Quantity string
	Value    float64
	Clamped  float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s=%g outside validity range at step %d (%.1f ft), clamped to %g",
		e.Method, e.Quantity, e.Value, e.Step, e.Depth, e.Clamped)
}

// ConvergenceWarning marks a step (or Z-factor solve) that hit its iteration
// cap. Non-fatal: integration continues with the last estimate.
type ConvergenceWarning struct {
	Step       int
	Depth      float64
	Iterations int
	Residual   float64
}

func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("step %d (%.1f ft) did not converge after %d iterations, residual %.3g",
		w.Step, w.Depth, w.Iterations, w.Residual)
}

// PropertyUnavailableError wraps a fluid property port failure. Fatal for the
// traverse in which it occurs.
type PropertyUnavailableError struct {
	Depth       float64
	Pressure    float64
	Temperature float64
	Err         error
}

func (e *PropertyUnavailableError) Error() string {
	return fmt.Sprintf("fluid properties unavailable at %.1f ft (p=%.1f psia, T=%.1f °F): %v",
		e.Depth, e.Pressure, e.Temperature, e.Err)
}

func (e *PropertyUnavailableError) Unwrap() error { return e.Err }
