package hydraulics

import "math"

// aziz is a drift-flux formulation centered on the bubble and slug regimes.
type aziz struct{}

func (aziz) Descriptor() Descriptor {
	return Descriptor{
		ID:          "aziz",
		Name:        "Aziz et al.",
		Description: "Correlation for wide range of gas-liquid ratios with flow pattern transitions",
	}
}

func (aziz) evaluate(s *stepState) stepEval {
	g := domainGuard{method: "aziz"}
	cl := g.clamp("liquidFraction", s.CL, 1e-4, 1)

	theta := s.Inclination * math.Pi / 180
	sinAbs := math.Abs(math.Sin(theta))

	vCrit := 0.3 * math.Sqrt(cl) * (1 + 0.2*sinAbs)

	var pattern FlowPattern
	var hl float64
	switch {
	case s.VSG < vCrit:
		pattern = PatternBubble
		c0 := 1.13 + 0.2*sinAbs
		vd := 0.5 * math.Sqrt(gravity*s.Diameter)
		alpha := (c0*s.VSG + vd*math.Cos(theta)) / (s.VM + 1e-9)
		alpha = math.Min(math.Max(alpha, 0), 0.95)
		hl = 1 - alpha
	case s.VSG < 10:
		pattern = PatternSlug
		vd := 0.35 * math.Sqrt(gravity*s.Diameter)
		alpha := (1.2*s.VSG + vd*math.Cos(theta)) / (s.VM + 1e-9)
		alpha = math.Min(math.Max(alpha, 0), 0.95)
		hl = 1 - alpha
	default:
		pattern = PatternAnnular
		hl = 0.9 * cl
	}
	hl = clampHoldup(hl)

	rhoM := s.slipDensity(hl)
	muM := hl*s.MuL + (1-hl)*s.Props.GasViscosity
	re := rhoM * s.VM * s.Diameter / (muM + 1e-10)
	f := frictionFactor(re, s.RelRoughness)
	fricGrad := frictionGradient(f, rhoM, s.VM, s.Diameter)

	ev := stepEval{
		pattern:      pattern,
		holdup:       hl,
		slipDensity:  rhoM,
		viscosity:    muM,
		reynolds:     re,
		friction:     f,
		frictionGrad: fricGrad,
		domain:       g.err,
	}
	if s.Index > 0 && s.Pressure > 0 && s.PrevPressure/s.Pressure > 1.01 {
		ev.accelGrad = 0.05 * fricGrad
	}
	return ev
}
