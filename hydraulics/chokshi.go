package hydraulics

import "math"

// chokshi is a drift-flux mechanistic model with an annular film thickness
// treatment and an explicit acceleration term.
type chokshi struct{}

func (chokshi) Descriptor() Descriptor {
	return Descriptor{
		ID:          "chokshi",
		Name:        "Chokshi",
		Description: "Modern mechanistic model for multiphase flow in wellbores",
	}
}

func (chokshi) evaluate(s *stepState) stepEval {
	g := domainGuard{method: "chokshi"}
	rhoL := g.clamp("liquidDensity", s.RhoL, s.RhoG+0.5, math.Inf(1))

	ngv := s.VSG * math.Pow(rhoL/(gravity*s.Sigma), 0.25)
	frm := s.VM * s.VM / (gravity * s.Diameter)

	var pattern FlowPattern
	var hl float64
	var delta float64 // annular film thickness, ft

	switch {
	case s.VSG < 0.2:
		pattern = PatternBubble
		alpha := (s.VSG + 0.05) / (s.VM + 0.05)
		alpha = math.Min(math.Max(alpha, 0), 0.25)
		hl = 1 - alpha
	case frm < 0.3:
		vd := 0.35 * math.Sqrt(gravity*s.Diameter)
		alpha := (1.2*s.VSG + vd) / (s.VM + 1e-9)
		alpha = math.Min(alpha, 0.85)
		hl = 1 - alpha
		if s.VSL > 0.1 {
			pattern = PatternSlug
		} else {
			pattern = PatternStratified
		}
	case ngv < 1:
		pattern = PatternSlug
		vd := 0.35 * math.Sqrt(gravity*s.Diameter)
		alpha := (1.2*s.VSG + vd) / (s.VM + 1e-9)
		alpha = math.Min(alpha, 0.85)
		hl = 1 - alpha
	case ngv < 3:
		pattern = PatternTransition
		vd := 0.4 * math.Sqrt(gravity*s.Diameter)
		alpha := (s.VSG + vd) / (s.VM + 1e-9)
		alpha = math.Min(alpha, 0.9)
		hl = 1 - alpha
	default:
		pattern = PatternAnnular
		entrainment := math.Min(0.9, 0.3+0.5*s.VSG/(s.VSG+s.VSL+1))
		delta = 0.01 * s.Diameter * math.Sqrt(s.VSL/(s.VSG+0.1))
		dr := delta / s.Diameter
		hl = 4*dr - 4*dr*dr
		hl = (1-entrainment)*hl + entrainment*s.CL
	}
	hl = clampHoldup(hl)

	rhoM := s.slipDensity(hl)

	var re, mu float64
	var relRough float64 = s.RelRoughness
	if pattern == PatternAnnular {
		deff := s.Diameter * (1 - 2*delta/s.Diameter)
		mu = s.Props.GasViscosity
		re = s.RhoG * s.VSG * deff / (mu + 1e-10)
		relRough = s.RelRoughness + delta/s.Diameter
	} else {
		mu = s.MuL
		v := s.VSL
		if s.MuL > 10 {
			mu = hl*s.MuL + (1-hl)*s.Props.GasViscosity
			v = s.VM
		}
		re = s.RhoL * v * s.Diameter / (mu + 1e-10)
	}
	f := frictionFactor(re, relRough)

	ev := stepEval{
		pattern:      pattern,
		holdup:       hl,
		slipDensity:  rhoM,
		viscosity:    mu,
		reynolds:     re,
		friction:     f,
		frictionGrad: frictionGradient(f, rhoM, s.VM, s.Diameter),
		domain:       g.err,
	}

	if s.Index > 0 && s.Pressure > 0 {
		dvg := s.VSG * (s.PrevPressure/s.Pressure - 1)
		ev.accelGrad = rhoM * s.VM * dvg / (gravityConv * 144 * s.StepLength)
	}
	return ev
}
