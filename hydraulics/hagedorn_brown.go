package hydraulics

import "math"

// hagedornBrown is the classic vertical-well holdup correlation. Acceleration
// is excluded, following the original methodology.
type hagedornBrown struct{}

func (hagedornBrown) Descriptor() Descriptor {
	return Descriptor{
		ID:          "hagedorn-brown",
		Name:        "Hagedorn-Brown",
		Description: "Vertical multiphase flow correlation for oil and gas wells",
	}
}

func (hagedornBrown) evaluate(s *stepState) stepEval {
	g := domainGuard{method: "hagedorn-brown"}
	rhoL := g.clamp("liquidDensity", s.RhoL, s.RhoG+0.5, math.Inf(1))
	muL := g.clamp("liquidViscosity", s.MuL, s.Props.GasViscosity, math.Inf(1))

	psi := math.Max(1, 30-0.1*(s.Temperature-60)-0.005*(s.Pressure-14.7))
	psi = math.Pow(psi/(gravityConv*(rhoL-s.RhoG)*s.Diameter), 0.25)

	cnMu := math.Pow(muL/s.Props.GasViscosity, 0.1)
	nlv := s.VSL * math.Pow(rhoL/s.RhoG, 0.25)
	ngv := s.VSG * math.Pow(rhoL/s.RhoG, 0.25)

	l := 0.0055 * math.Pow(nlv, 0.1) * math.Sqrt(cnMu) * math.Pow(psi, 0.7)
	if l > 0.025 {
		l = 0.0055 * math.Pow(nlv, 0.1) * math.Sqrt(cnMu) * math.Pow(psi, -2.3)
	}

	var hl float64
	switch {
	case ngv <= 0.1:
		hl = 1 - ngv/(1+75*l)
	case ngv <= 1:
		hl = 1 - ngv/(1+75*l*math.Pow(ngv, -0.5))
	case ngv <= 10:
		hl = 1 - ngv/(1+75*l*math.Pow(ngv, -0.75))
	default:
		hl = 1 - ngv/(1+75*l/ngv)
	}
	hl = clampHoldup(hl)

	var pattern FlowPattern
	switch {
	case hl > 0.8:
		pattern = PatternBubble
	case hl > 0.3:
		pattern = PatternSlug
	case hl > 0.1:
		pattern = PatternTransition
	default:
		pattern = PatternAnnular
	}

	rhoS := s.slipDensity(hl)
	muM := math.Pow(muL, hl) * math.Pow(s.Props.GasViscosity, 1-hl)
	re := rhoS * s.VM * s.Diameter / (muM + 1e-10)
	f := frictionFactor(re, s.RelRoughness)

	return stepEval{
		pattern:      pattern,
		holdup:       hl,
		slipDensity:  rhoS,
		viscosity:    muM,
		reynolds:     re,
		friction:     f,
		frictionGrad: frictionGradient(f, rhoS, s.VM, s.Diameter),
		domain:       g.err,
	}
}
