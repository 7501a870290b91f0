package hydraulics

import "math"

// gray targets high-rate gas wells: holdup from a dimensionless group fit,
// friction through a velocity-dependent pseudo-roughness.
type gray struct{}

func (gray) Descriptor() Descriptor {
	return Descriptor{
		ID:          "gray",
		Name:        "Gray",
		Description: "Correlation developed for high-rate gas wells and high Reynolds numbers",
	}
}

func (gray) evaluate(s *stepState) stepEval {
	g := domainGuard{method: "gray"}
	r := s.VSL / (s.VSG + 1e-10)

	const (
		cA = 0.0814
		cB = -0.821
		cC = 0.4846
		cD = -0.0868
	)
	var hl float64
	if r > 0.01 {
		dRho := g.clamp("densityContrast", s.RhoL-s.RhoG, 0.1, math.Inf(1))
		nv := s.RhoL * s.RhoL * s.VM * s.VM / (gravity * s.Sigma * dRho)
		nd := gravity * dRho * s.Diameter * s.Diameter / s.Sigma
		hl = 1 / (1 + cA*math.Pow(r, cB)*math.Pow(nv, cC)*math.Pow(nd, cD))
	} else {
		hl = 0.01 + 0.99*r
	}
	hl = clampHoldup(hl)

	var pattern FlowPattern
	switch {
	case hl < 0.1:
		pattern = PatternMist
	case hl < 0.25:
		pattern = PatternAnnular
	case hl < 0.45:
		pattern = PatternTransition
	default:
		pattern = PatternSlug
	}

	rhoS := s.slipDensity(hl)
	rhoNS := s.noSlipDensity()
	muNS := s.noSlipViscosity()

	// pseudo-roughness accounts for the wavy liquid film
	k0 := 28.5 * s.Sigma / (rhoNS * s.VM * s.VM)
	keff := math.Max(s.RelRoughness+k0, 2.77e-5)

	re := rhoNS * s.VM * s.Diameter / (muNS + 1e-10)
	f := frictionFactor(re, keff)

	return stepEval{
		pattern:      pattern,
		holdup:       hl,
		slipDensity:  rhoS,
		viscosity:    muNS,
		reynolds:     re,
		friction:     f,
		frictionGrad: frictionGradient(f, rhoNS, s.VM, s.Diameter),
		domain:       g.err,
	}
}
