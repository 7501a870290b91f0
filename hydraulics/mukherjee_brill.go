package hydraulics

import "math"

// mukherjeeBrill is tuned for directional wells: regime boundaries and
// holdup both carry inclination terms, with a stratified regime when the
// flow path turns downhill.
type mukherjeeBrill struct{}

func (mukherjeeBrill) Descriptor() Descriptor {
	return Descriptor{
		ID:          "mukherjee-brill",
		Name:        "Mukherjee-Brill",
		Description: "Specialized correlation for directional and deviated wells",
	}
}

func (mukherjeeBrill) evaluate(s *stepState) stepEval {
	g := domainGuard{method: "mukherjee-brill"}
	cl := g.clamp("liquidFraction", s.CL, 1e-4, 1)
	theta := s.Inclination * math.Pi / 180
	sinAbs := math.Abs(math.Sin(theta))
	downhill := s.Inclination > 90

	vBubble := 0.5 + 0.1*sinAbs
	vStrat := 0.3 * math.Sqrt(s.Diameter)
	vAnnular := 8 - 3*sinAbs

	type regime int
	const (
		bubbleSlug regime = iota
		stratified
		slugChurn
		annular
	)

	var rg regime
	var pattern FlowPattern
	switch {
	case s.VSG < vBubble:
		rg = bubbleSlug
		if s.VSL > 0.3 {
			pattern = PatternBubble
		} else {
			pattern = PatternSlug
		}
	case downhill && s.VSG < vStrat:
		rg, pattern = stratified, PatternStratified
	case s.VSG < vAnnular:
		rg, pattern = slugChurn, PatternTransition
	default:
		rg, pattern = annular, PatternAnnular
	}

	var hl float64
	switch rg {
	case bubbleSlug:
		hl = cl
		if !downhill {
			hl = 0.918 * cl
		}
	case stratified:
		hl = 0.5 * (1 + s.VSL/(s.VSL+s.VSG) - 0.2*math.Sin(-theta))
	case slugChurn:
		hl = cl * (1 - 0.15*sinAbs)
	case annular:
		hl = 0.9 * cl
	}
	hl = clampHoldup(hl)

	rhoS := s.slipDensity(hl)
	rhoNS := s.noSlipDensity()
	muNS := s.noSlipViscosity()

	var f, re float64
	switch rg {
	case stratified:
		reL := s.RhoL * s.VSL * s.Diameter / (s.MuL + 1e-10)
		reG := s.RhoG * s.VSG * s.Diameter / (s.Props.GasViscosity + 1e-10)
		fL := frictionFactor(reL, s.RelRoughness)
		fG := frictionFactor(reG, s.RelRoughness)
		f = fL*hl + fG*(1-hl)
		re = reL*hl + reG*(1-hl)
	case annular:
		re = rhoNS * s.VM * s.Diameter / (muNS + 1e-10)
		fNS := frictionFactor(re, s.RelRoughness)
		phi := hl / cl
		fr := 1.0
		if phi >= 1 {
			fr = math.Sqrt(phi)
		}
		f = fNS * fr
	default:
		re = rhoNS * s.VM * s.Diameter / (muNS + 1e-10)
		f = frictionFactor(re, s.RelRoughness)
	}

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
