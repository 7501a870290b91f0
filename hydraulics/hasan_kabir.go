package hydraulics

import "math"

// hasanKabir uses drift-flux holdup with an explicit roughness amplification
// on the friction factor.
type hasanKabir struct{}

func (hasanKabir) Descriptor() Descriptor {
	return Descriptor{
		ID:          "hasan-kabir",
		Name:        "Hasan-Kabir",
		Description: "Correlation considering pipe roughness effects on pressure drop calculations",
	}
}

func (hasanKabir) evaluate(s *stepState) stepEval {
	g := domainGuard{method: "hasan-kabir"}
	rhoL := g.clamp("liquidDensity", s.RhoL, s.RhoG+0.5, math.Inf(1))

	theta := s.Inclination * math.Pi / 180
	sinAbs := math.Abs(math.Sin(theta))

	boundaryBubbly := 0.429*s.VSL + 0.357*s.VSL*sinAbs
	boundaryMist := 1.083*s.VSL + 0.52*math.Sqrt(gravity*(rhoL-s.RhoG)/s.RhoG)

	var pattern FlowPattern
	var hl float64
	switch {
	case s.VSG < boundaryBubbly:
		if s.VSL < 1 {
			pattern = PatternBubble
			alpha := 1.15 * s.VSG / (s.VM + 1e-9)
			alpha = math.Min(math.Max(alpha, 0), 0.95)
			hl = 1 - alpha
		} else {
			pattern = PatternSlug
			vd := 1.53 * math.Pow(gravity*(rhoL-s.RhoG)*s.Sigma*s.Sigma/(rhoL*rhoL), 0.25)
			alpha := (1.2*s.VSG + vd) / (s.VM + 1e-9)
			alpha = math.Min(math.Max(alpha, 0), 0.95)
			hl = 1 - alpha
		}
	case s.VSG < boundaryMist:
		pattern = PatternBubble
		alpha := s.VSG / (s.VM + 1e-9)
		alpha = math.Min(math.Max(alpha, 0), 0.9)
		hl = 1 - alpha
	default:
		pattern = PatternAnnular
		hl = 0.9 * s.CL
	}
	hl = clampHoldup(hl)

	// roughness amplification for rough pipe
	eff := s.RelRoughness
	if eff > 0.001 {
		eff *= 1 + (eff-0.0006)/0.0004
	}
	if pattern == PatternAnnular {
		eff *= 1.2
	} else {
		eff *= 0.9
	}

	rhoM := s.slipDensity(hl)
	muM := hl*s.MuL + (1-hl)*s.Props.GasViscosity
	re := rhoM * s.VM * s.Diameter / (muM + 1e-10)
	f := frictionFactor(re, eff)

	return stepEval{
		pattern:      pattern,
		holdup:       hl,
		slipDensity:  rhoM,
		viscosity:    muM,
		reynolds:     re,
		friction:     f,
		frictionGrad: frictionGradient(f, rhoM, s.VM, s.Diameter),
		domain:       g.err,
	}
}
