package hydraulics

import "math"

// beggsBrill handles all inclination angles via the horizontal flow regime
// map with an inclination correction on holdup.
type beggsBrill struct{}

func (beggsBrill) Descriptor() Descriptor {
	return Descriptor{
		ID:          "beggs-brill",
		Name:        "Beggs-Brill",
		Description: "Inclined multiphase flow correlation for all inclination angles",
	}
}

func (beggsBrill) evaluate(s *stepState) stepEval {
	// correlation works with the angle from horizontal
	theta := 90 - s.Inclination
	thetaRad := theta * math.Pi / 180

	g := domainGuard{method: "beggs-brill"}
	nfr := s.VM * s.VM / (gravity * s.Diameter)
	nlv := 1.938 * s.VSL * math.Pow(s.RhoL/(gravity*s.SigmaDyn), 0.25)
	cl := g.clamp("liquidFraction", s.CL, 1e-4, 1)

	l1 := 316 * math.Pow(cl, 0.302)
	l2 := 0.0009252 * math.Pow(cl, -2.4684)
	l3 := 0.10 * math.Pow(cl, -1.4516)
	l4 := 0.50 * math.Pow(cl, -6.738)

	type regime int
	const (
		segregated regime = iota
		intermittent
		distributed
		transition
	)

	var rg regime
	var pattern FlowPattern
	switch {
	case (cl < 0.01 && nfr < l1) || (cl >= 0.01 && nfr < l2):
		rg, pattern = segregated, PatternStratified
	case cl >= 0.01 && nfr > l2 && nfr <= l3:
		rg, pattern = transition, PatternTransition
	case (cl >= 0.01 && cl < 0.4 && nfr > l3 && nfr <= l1) ||
		(cl >= 0.4 && nfr > l3 && nfr <= l4):
		rg, pattern = intermittent, PatternSlug
	default:
		rg, pattern = distributed, PatternBubble
	}

	holdupH := func(a, b, c float64) float64 {
		return a * math.Pow(cl, b) / math.Pow(nfr, c)
	}
	var hl0 float64
	switch rg {
	case segregated:
		hl0 = holdupH(0.98, 0.4846, 0.0868)
	case intermittent:
		hl0 = holdupH(0.845, 0.5351, 0.0173)
	case distributed:
		hl0 = holdupH(1.065, 0.5824, 0.0609)
	case transition:
		a := (l3 - nfr) / (l3 - l2)
		hl0 = a*holdupH(0.98, 0.4846, 0.0868) + (1-a)*holdupH(0.845, 0.5351, 0.0173)
	}
	hl0 = math.Max(hl0, cl)

	var beta float64
	if theta >= 0 {
		switch rg {
		case segregated:
			beta = (1 - cl) * math.Log(0.011*math.Pow(cl, -3.768)*math.Pow(nlv, 3.539)*math.Pow(nfr, -1.614))
		case intermittent, transition:
			beta = (1 - cl) * math.Log(2.96*math.Pow(cl, 0.305)*math.Pow(nlv, -0.4473)*math.Pow(nfr, 0.0978))
		case distributed:
			beta = 0
		}
	} else {
		beta = (1 - cl) * math.Log(4.7*math.Pow(cl, -0.3692)*math.Pow(nlv, 0.1244)*math.Pow(nfr, -0.5056))
	}
	beta = math.Max(beta, 0)

	sin18 := math.Sin(1.8 * thetaRad)
	b := 1 + beta*(sin18-sin18*sin18*sin18/3)
	hl := clampHoldup(hl0 * b)

	rhoS := s.slipDensity(hl)
	rhoNS := s.noSlipDensity()
	muNS := s.noSlipViscosity()
	reNS := rhoNS * s.VM * s.Diameter / (muNS + 1e-20)
	fNS := frictionFactor(reNS, s.RelRoughness)

	y := cl / (hl * hl)
	var sCorr float64
	switch {
	case y > 1 && y < 1.2:
		sCorr = math.Log(2.2*y - 1.2)
	case y > 0:
		lny := math.Log(y)
		sCorr = lny / (-0.0523 + 3.182*lny - 0.8725*lny*lny + 0.01853*math.Pow(lny, 4))
	}
	fTP := fNS * math.Exp(sCorr)

	return stepEval{
		pattern:      pattern,
		holdup:       hl,
		slipDensity:  rhoS,
		viscosity:    muNS,
		reynolds:     reNS,
		friction:     fTP,
		frictionGrad: frictionGradient(fTP, rhoNS, s.VM, s.Diameter),
		domain:       g.err,
	}
}
