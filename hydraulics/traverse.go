package hydraulics

import (
	"context"
	"math"
)

// Field-unit constants shared by all correlations.
const (
	gravity     = 32.2  // ft/s²
	gravityConv = 32.17 // lbm·ft/(lbf·s²)
)

// stepState carries everything a correlation needs to evaluate one step.
type stepState struct {
	Index      int
	Depth      float64 // measured depth, ft
	StepLength float64 // ft

	Diameter     float64 // ft
	Area         float64 // ft²
	RelRoughness float64
	Inclination  float64 // degrees from vertical

	Pressure    float64 // psia
	Temperature float64 // °F
	Props       FluidProperties

	VSL, VSG, VM float64 // superficial velocities, ft/s
	CL           float64 // no-slip liquid fraction

	RhoO, RhoW, RhoG float64 // lbm/ft³
	RhoL, MuL        float64 // liquid blend

	Sigma    float64 // gas-liquid interfacial tension, lbf/ft
	SigmaDyn float64 // dynes/cm

	PrevPressure float64
	PrevVSG      float64

	fluid *FluidDescription
}

// noSlipDensity is the rate-weighted two-phase density.
func (s *stepState) noSlipDensity() float64 {
	return s.CL*s.RhoL + (1-s.CL)*s.RhoG
}

// noSlipViscosity is the rate-weighted two-phase viscosity.
func (s *stepState) noSlipViscosity() float64 {
	return s.CL*s.MuL + (1-s.CL)*s.Props.GasViscosity
}

// slipDensity combines phase densities with an actual holdup.
func (s *stepState) slipDensity(holdup float64) float64 {
	return holdup*s.RhoL + (1-holdup)*s.RhoG
}

// stepEval is a correlation's verdict for one step. slipDensity drives the
// elevation gradient; friction and acceleration gradients are in psi/ft.
type stepEval struct {
	pattern      FlowPattern
	holdup       float64
	slipDensity  float64
	viscosity    float64
	reynolds     float64
	friction     float64
	frictionGrad float64
	accelGrad    float64
	domain       *DomainError
}

// Correlation evaluates multiphase flow behavior along a wellbore.
type Correlation interface {
	Descriptor() Descriptor
	evaluate(s *stepState) stepEval
}

// frictionFactor returns the Darcy friction factor: Haaland's explicit form
// in turbulent flow, 64/Re laminar, zero when there is no flow.
func frictionFactor(re, relRoughness float64) float64 {
	if re <= 0 {
		return 0
	}
	if re > 2100 {
		v := -1.8 * math.Log10(math.Pow(relRoughness/3.7, 1.11)+6.9/re)
		return 1 / (v * v)
	}
	return 64.0 / re
}

// frictionGradient is f·ρ·v²/(2·gc·D) in psi/ft.
func frictionGradient(f, rho, v, diameter float64) float64 {
	return f * rho * v * v / (2 * gravityConv * diameter * 144)
}

// clampHoldup bounds a liquid holdup to the physically meaningful band used
// throughout the correlations.
func clampHoldup(h float64) float64 {
	return math.Min(math.Max(h, 0.01), 0.99)
}

// interfacialTension evaluates the Baker-Swerdloff style gas-liquid tension,
// rate-weighted between oil and water, in dynes/cm.
func interfacialTension(fluid *FluidDescription, p, t float64) float64 {
	sigmaOil := math.Max(1, 30-0.1*(t-60)-0.005*(p-14.7))
	sigmaWater := math.Max(5, 70-0.15*(t-60)-0.01*(p-14.7))
	qLiq := fluid.OilRate + fluid.WaterRate
	if qLiq <= 0 {
		return sigmaOil
	}
	return (fluid.OilRate*sigmaOil + fluid.WaterRate*sigmaWater) / qLiq
}

// recordedStep pairs a correlation verdict with the state it was computed at.
type recordedStep struct {
	eval      stepEval
	state     stepState
	converged bool
}

// CalculatePressureProfile integrates the pressure traverse along geom with
// the given correlation. boundaryAtSurface selects the marching direction:
// true fixes the surface pressure and integrates down to the bottomhole,
// false fixes the bottomhole pressure and integrates up. Each step solves the
// gradient implicitly at the interval midpoint.
func CalculatePressureProfile(ctx context.Context, corr Correlation, geom *FlowPathGeometry,
	fluid FluidDescription, port PropertyPort, boundaryPressure float64,
	boundaryAtSurface bool, ctrl StepControl) (*TraverseResult, error) {

	if corr == nil {
		return nil, &ValidationError{Field: "method", Reason: "no correlation given"}
	}
	if geom == nil {
		return nil, &ValidationError{Field: "geometry", Reason: "no flow path given"}
	}
	if port == nil {
		return nil, &ValidationError{Field: "properties", Reason: "no property port given"}
	}
	if boundaryPressure <= 0 {
		return nil, &ValidationError{Field: "boundaryPressure", Reason: "must be positive"}
	}
	if err := fluid.Validate(); err != nil {
		return nil, err
	}
	ctrl = ctrl.normalized()

	n := geom.Steps()
	length := geom.TotalLength()
	depths := make([]float64, n)
	pressures := make([]float64, n)
	recorded := make([]recordedStep, n)
	for i := range depths {
		depths[i] = length * float64(i) / float64(n-1)
	}

	result := &TraverseResult{Method: corr.Descriptor().ID}

	evalPoint := func(idx int, depth, p, prevP, prevVSG, stepLen float64) (stepEval, stepState, error) {
		seg, err := geom.SegmentAt(depth)
		if err != nil {
			return stepEval{}, stepState{}, err
		}
		inc, err := geom.InclinationAt(depth)
		if err != nil {
			return stepEval{}, stepState{}, err
		}
		t := fluid.TemperatureAt(depth)
		props, err := port.Properties(fluid, p, t)
		if err != nil {
			return stepEval{}, stepState{}, &PropertyUnavailableError{Depth: depth, Pressure: p, Temperature: t, Err: err}
		}

		d := seg.Diameter / 12
		st := stepState{
			Index:        idx,
			Depth:        depth,
			StepLength:   stepLen,
			Diameter:     d,
			Area:         math.Pi / 4 * d * d,
			RelRoughness: seg.Roughness / seg.Diameter,
			Inclination:  inc,
			Pressure:     p,
			Temperature:  t,
			Props:        props,
			PrevPressure: prevP,
			PrevVSG:      prevVSG,
			fluid:        &fluid,
		}

		qo := fluid.OilRate * 5.615 * props.OilFVF
		qw := fluid.WaterRate * 5.615 * props.WaterFVF
		qg := fluid.GasRate * 1000 * props.GasFVF
		st.VSL = (qo + qw) / (86400 * st.Area)
		st.VSG = qg / (86400 * st.Area)
		st.VM = st.VSL + st.VSG
		st.CL = st.VSL / (st.VSL + st.VSG + 1e-10)

		st.RhoO = 62.4 / props.OilFVF
		st.RhoW = 62.4 * fluid.WaterGravity / props.WaterFVF
		st.RhoG = 0.0764 * fluid.GasGravity / props.GasFVF

		qLiq := fluid.OilRate + fluid.WaterRate
		if qLiq > 0 {
			st.RhoL = (fluid.OilRate*st.RhoO + fluid.WaterRate*st.RhoW) / qLiq
			st.MuL = (fluid.OilRate*props.OilViscosity + fluid.WaterRate*props.WaterVisc) / qLiq
		}

		st.SigmaDyn = interfacialTension(&fluid, p, t)
		st.Sigma = st.SigmaDyn * 6.85e-5

		var ev stepEval
		if st.VM <= 0 {
			// static column: pure hydrostatic gradient
			ev.pattern = PatternStatic
			if qLiq > 0 {
				ev.holdup = 1
				ev.slipDensity = st.RhoL
				ev.viscosity = st.MuL
			} else {
				ev.slipDensity = st.RhoG
				ev.viscosity = props.GasViscosity
			}
		} else {
			ev = corr.evaluate(&st)
			if math.Abs(st.VSG-prevVSG) < ctrl.AccelThreshold {
				ev.accelGrad = 0
			}
		}
		return ev, st, nil
	}

	totalGradient := func(ev stepEval, inc float64) float64 {
		elev := ev.slipDensity * gravity * math.Cos(inc*math.Pi/180) / (144 * gravityConv)
		return elev + ev.frictionGrad + ev.accelGrad
	}

	boundary := 0
	sign := 1.0
	if !boundaryAtSurface {
		boundary = n - 1
		sign = -1.0
	}
	pressures[boundary] = boundaryPressure

	prevVSG := 0.0
	prevP := boundaryPressure
	for step := 0; step < n-1; step++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		k := boundary + int(sign)*step
		u := k + int(sign)
		dz := math.Abs(depths[u] - depths[k])

		evK, stK, err := evalPoint(k, depths[k], pressures[k], prevP, prevVSG, dz)
		if err != nil {
			return nil, err
		}
		guess := pressures[k] + sign*totalGradient(evK, stK.Inclination)*dz
		if guess < 1 {
			guess = 1
		}

		evMid, stMid := evK, stK
		converged := false
		var residual float64
		for it := 0; it < ctrl.MaxIterations; it++ {
			pm := (pressures[k] + guess) / 2
			dm := (depths[k] + depths[u]) / 2
			evMid, stMid, err = evalPoint(k, dm, pm, prevP, prevVSG, dz)
			if err != nil {
				return nil, err
			}
			next := pressures[k] + sign*totalGradient(evMid, stMid.Inclination)*dz
			if next < 1 {
				next = 1
			}
			residual = math.Abs(next - guess)
			guess = next
			if residual <= ctrl.Tolerance*math.Max(math.Abs(guess), 1) {
				converged = true
				break
			}
		}
		if !converged {
			result.Warnings = append(result.Warnings, &ConvergenceWarning{
				Step: u, Depth: depths[u], Iterations: ctrl.MaxIterations, Residual: residual,
			})
		}
		if evMid.domain != nil {
			evMid.domain.Step = u
			evMid.domain.Depth = depths[u]
			result.DomainErrors = append(result.DomainErrors, evMid.domain)
			if ctrl.AbortOnDomainError {
				return result, evMid.domain
			}
		}

		pressures[u] = guess
		shallow := k
		if u < k {
			shallow = u
		}
		recorded[shallow] = recordedStep{eval: evMid, state: stMid, converged: converged}
		prevVSG = stMid.VSG
		prevP = stMid.Pressure
	}

	// deepest station reuses the last interval's verdict
	recorded[n-1] = recorded[n-2]

	result.Profile = make([]PressureProfilePoint, n)
	for i := 0; i < n; i++ {
		r := recorded[i]
		tvd, err := geom.TVDAt(depths[i])
		if err != nil {
			return nil, err
		}
		inc, _ := geom.InclinationAt(depths[i])
		elev := r.eval.slipDensity * gravity * math.Cos(inc*math.Pi/180) / (144 * gravityConv)
		result.Profile[i] = PressureProfilePoint{
			Depth:                depths[i],
			TVD:                  tvd,
			Pressure:             pressures[i],
			Temperature:          fluid.TemperatureAt(depths[i]),
			FlowPattern:          r.eval.pattern,
			LiquidHoldup:         r.eval.holdup,
			MixtureDensity:       r.eval.slipDensity,
			MixtureViscosity:     r.eval.viscosity,
			SuperficialVL:        r.state.VSL,
			SuperficialVG:        r.state.VSG,
			MixtureVelocity:      r.state.VM,
			Reynolds:             r.eval.reynolds,
			FrictionFactor:       r.eval.friction,
			Converged:            r.converged,
			ElevationGradient:    elev,
			FrictionGradient:     r.eval.frictionGrad,
			AccelerationGradient: r.eval.accelGrad,
			TotalGradient:        elev + r.eval.frictionGrad + r.eval.accelGrad,
		}
	}

	result.SurfacePressure = pressures[0]
	result.BottomholePressure = pressures[n-1]
	result.TotalPressureDrop = pressures[n-1] - pressures[0]
	result.ElevationPct, result.FrictionPct, result.AccelerationPct = integrateSplit(result.Profile)
	result.FlowPatterns = patternIntervals(result.Profile)
	return result, nil
}

// integrateSplit trapezoid-integrates the gradient components over depth and
// returns each as a percentage of their sum.
func integrateSplit(profile []PressureProfilePoint) (elevPct, fricPct, accPct float64) {
	var elev, fric, acc float64
	for i := 1; i < len(profile); i++ {
		dz := profile[i].Depth - profile[i-1].Depth
		elev += dz * (profile[i].ElevationGradient + profile[i-1].ElevationGradient) / 2
		fric += dz * (profile[i].FrictionGradient + profile[i-1].FrictionGradient) / 2
		acc += dz * (profile[i].AccelerationGradient + profile[i-1].AccelerationGradient) / 2
	}
	total := elev + fric + acc
	if total <= 0 {
		return 0, 0, 0
	}
	return elev / total * 100, fric / total * 100, acc / total * 100
}

// patternIntervals compresses the per-point flow patterns into contiguous
// depth intervals.
func patternIntervals(profile []PressureProfilePoint) []PatternInterval {
	if len(profile) == 0 {
		return nil
	}
	intervals := []PatternInterval{{
		Pattern:    profile[0].FlowPattern,
		StartDepth: profile[0].Depth,
		EndDepth:   profile[0].Depth,
	}}
	for _, p := range profile[1:] {
		last := &intervals[len(intervals)-1]
		if p.FlowPattern == last.Pattern {
			last.EndDepth = p.Depth
			continue
		}
		intervals = append(intervals, PatternInterval{
			Pattern:    p.FlowPattern,
			StartDepth: last.EndDepth,
			EndDepth:   p.Depth,
		})
	}
	return intervals
}
