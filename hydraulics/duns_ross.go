package hydraulics

import "math"

// dunsRoss maps dimensionless velocity numbers onto the classic four-region
// flow map (bubble, slug, churn transition, annular mist).
type dunsRoss struct{}

func (dunsRoss) Descriptor() Descriptor {
	return Descriptor{
		ID:          "duns-ross",
		Name:        "Duns-Ross",
		Description: "Vertical flow correlation based on flow pattern transitions",
	}
}

func (dunsRoss) evaluate(s *stepState) stepEval {
	g := domainGuard{method: "duns-ross"}
	rhoL := g.clamp("liquidDensity", s.RhoL, s.RhoG+0.5, math.Inf(1))

	ngv := s.VSG * math.Sqrt(s.RhoG/(gravity*s.Sigma))
	nlv := s.VSL * math.Sqrt(s.RhoG/(gravity*s.Sigma))
	nd := s.Diameter * math.Sqrt((rhoL-s.RhoG)*gravity/s.Sigma)

	l1 := 0.13 * math.Sqrt(nd)
	l2 := 0.24 * math.Sqrt(nd)
	ls := 50 + 36*nlv
	lm := 75 + 84*math.Pow(nlv, 0.75)

	var pattern FlowPattern
	var hl float64
	switch {
	case ngv <= l1+l2*nlv:
		pattern = PatternBubble
		hl = 1 - 0.5*s.VSG/(0.24+s.VM)
	case ngv <= ls:
		pattern = PatternSlug
		f1 := 0.0246 * math.Sqrt(nd)
		f2 := 1 / (0.0726 + 0.4257*nlv - 0.05747*nlv*nlv)
		f3 := 1 / (1 + f1*math.Pow(ngv/(nlv+0.001), f2))
		hl = f3 * (1 - s.VSG/s.VM)
	case ngv < lm:
		pattern = PatternChurn
		t := (ngv - ls) / (lm - ls)
		hlSlug := 0.5 * (1 - s.VSG/s.VM)
		hl = hlSlug + t*(s.CL-hlSlug)
	default:
		pattern = PatternMist
		hl = 0.8*s.CL + 0.2*(1-s.VSG/s.VM)
	}
	hl = clampHoldup(hl)

	rhoS := s.slipDensity(hl)
	rhoNS := s.noSlipDensity()

	var re, mu float64
	if pattern == PatternMist {
		mu = s.Props.GasViscosity
		re = s.RhoG * s.VM * s.Diameter / (mu + 1e-10)
	} else {
		mu = s.MuL
		re = s.RhoL * s.VM * s.Diameter / (mu + 1e-10)
	}
	f := frictionFactor(re, s.RelRoughness)

	return stepEval{
		pattern:      pattern,
		holdup:       hl,
		slipDensity:  rhoS,
		viscosity:    mu,
		reynolds:     re,
		friction:     f,
		frictionGrad: frictionGradient(f, rhoNS, s.VM, s.Diameter),
		domain:       g.err,
	}
}
