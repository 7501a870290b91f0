package hydraulics

import "math"

// ansari is a mechanistic model whose regime transitions come from
// characteristic velocities scaled by the density contrast.
type ansari struct{}

func (ansari) Descriptor() Descriptor {
	return Descriptor{
		ID:          "ansari",
		Name:        "Ansari",
		Description: "Mechanistic model for flow pattern prediction and pressure gradient calculations",
	}
}

func (ansari) evaluate(s *stepState) stepEval {
	g := domainGuard{method: "ansari"}
	rhoL := g.clamp("liquidDensity", s.RhoL, s.RhoG+0.5, math.Inf(1))

	vBS := 0.25 * math.Sqrt(gravity*s.Diameter*(rhoL-s.RhoG)/rhoL)
	vSC := 0.4 * math.Sqrt(gravity*s.Diameter)
	vCA := 3.5 * math.Sqrt(gravity*s.Diameter*(rhoL-s.RhoG)/s.RhoG)

	var pattern FlowPattern
	var hl float64
	switch {
	case s.VSG < vBS:
		pattern = PatternBubble
		hl = math.Max(0.9, s.CL)
	case s.VSG < vSC:
		pattern = PatternSlug
		vtb := 0.35 * math.Sqrt(gravity*s.Diameter*(rhoL-s.RhoG)/rhoL)
		hl = 0.8 + 0.2*s.VSL/(s.VSG+s.VSL+vtb)
	case s.VSG < vCA:
		pattern = PatternTransition
		hl = 0.4 + 0.6*s.CL
	default:
		pattern = PatternAnnular
		hl = 0.1 + 0.5*s.CL
	}
	hl = clampHoldup(hl)

	rhoM := s.slipDensity(hl)
	muM := hl*s.MuL + (1-hl)*s.Props.GasViscosity
	re := rhoM * s.VM * s.Diameter / (muM + 1e-10)
	f := frictionFactor(re, s.RelRoughness)
	fricGrad := frictionGradient(f, rhoM, s.VM, s.Diameter)

	return stepEval{
		pattern:      pattern,
		holdup:       hl,
		slipDensity:  rhoM,
		viscosity:    muM,
		reynolds:     re,
		friction:     f,
		frictionGrad: fricGrad,
		accelGrad:    0.01 * fricGrad,
		domain:       g.err,
	}
}
