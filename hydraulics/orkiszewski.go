package hydraulics

import "math"

// orkiszewski combines Griffith-Wallis bubble flow with a slug regime driven
// by the Taylor bubble rise velocity.
type orkiszewski struct{}

func (orkiszewski) Descriptor() Descriptor {
	return Descriptor{
		ID:          "orkiszewski",
		Name:        "Orkiszewski",
		Description: "Specialized correlation for wells with large tubing diameters",
	}
}

func (orkiszewski) evaluate(s *stepState) stepEval {
	g := domainGuard{method: "orkiszewski"}
	rhoL := g.clamp("liquidDensity", s.RhoL, s.RhoG+0.5, math.Inf(1))

	vs := 0.35 * math.Pow(s.Sigma*gravity*(rhoL-s.RhoG)/(rhoL*rhoL), 0.25)
	vs = math.Min(math.Max(vs, 0.1), 1.2)
	lb := 1.071 - 0.2218*math.Pow(s.VM/vs, 2)

	var pattern FlowPattern
	var hl, mu float64
	switch {
	case s.VSG < vs*(lb-s.VSL/vs):
		pattern = PatternBubble
		hl = 1 - 0.5*s.VSG/(s.VSG+vs)
		mu = s.MuL
	case s.VSG < 0.75:
		pattern = PatternSlug
		vtb := 0.52 * math.Sqrt(gravity*s.Diameter*(rhoL-s.RhoG)/rhoL)
		beta := s.VSL / (s.VM + vtb)
		hl = beta + (1-beta)*s.VSL/(s.VSG+s.VSL+vtb)
		mu = s.MuL
	case s.VSG < 10:
		pattern = PatternTransition
		t := (s.VSG - 0.75) / (10 - 0.75)
		hlSlug := 0.5 * (1 + s.VSL/(s.VSL+s.VSG))
		hl = hlSlug + t*(s.CL-hlSlug)
		mu = s.CL*s.MuL + (1-s.CL)*s.Props.GasViscosity
	default:
		pattern = PatternAnnular
		hl = math.Max(0.6*s.CL, 0.05)
		mu = s.Props.GasViscosity
	}
	hl = clampHoldup(hl)

	rhoS := s.slipDensity(hl)

	var re float64
	switch pattern {
	case PatternBubble, PatternSlug:
		re = s.RhoL * s.VM * s.Diameter / (s.MuL + 1e-10)
	case PatternTransition:
		re = rhoS * s.VM * s.Diameter / (mu + 1e-10)
	default:
		re = s.RhoG * s.VM * s.Diameter / (s.Props.GasViscosity + 1e-10)
	}
	f := frictionFactor(re, s.RelRoughness)

	return stepEval{
		pattern:      pattern,
		holdup:       hl,
		slipDensity:  rhoS,
		viscosity:    mu,
		reynolds:     re,
		friction:     f,
		frictionGrad: frictionGradient(f, rhoS, s.VM, s.Diameter),
		domain:       g.err,
	}
}
