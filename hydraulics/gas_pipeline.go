package hydraulics

import "math"

// PipelineInput describes a single-phase gas pipeline calculation.
// Diameter in inches, length in ft, rate in Mscf/d, pressures in psia,
// temperature in °F. ZFactor zero means estimate it; Efficiency zero means
// use the equation's customary default.
type PipelineInput struct {
	Equation      string  `json:"equation"`
	Diameter      float64 `json:"diameter"`
	Length        float64 `json:"length"`
	GasRate       float64 `json:"gasRate"`
	InletPressure float64 `json:"inletPressure"`
	GasGravity    float64 `json:"gasGravity"`
	Temperature   float64 `json:"temperature"`
	ZFactor       float64 `json:"zFactor,omitempty"`
	Efficiency    float64 `json:"efficiency,omitempty"`
}

// PipelineResult is the outcome of a pipeline calculation. When the requested
// rate cannot be carried, IsValid is false, the outlet pressure is pinned to
// atmospheric and MaxFlow holds the deliverable rate.
type PipelineResult struct {
	Equation       string  `json:"equation"`
	InletPressure  float64 `json:"inletPressure"`
	OutletPressure float64 `json:"outletPressure"`
	PressureDrop   float64 `json:"pressureDrop"`
	Velocity       float64 `json:"flowVelocity"` // ft/s at average conditions
	Reynolds       float64 `json:"reynoldsNumber"`
	FrictionFactor float64 `json:"frictionFactor"`
	FlowRegime     string  `json:"flowRegime"`
	ZFactor        float64 `json:"zFactor"`
	IsValid        bool    `json:"isValid"`
	MaxFlow        float64 `json:"maxFlow,omitempty"` // Mscf/d
}

// gasEquation captures what distinguishes the pipeline flow equations: the
// flow constant, the diameter and gravity exponents and the customary
// efficiency. friction approximates the factor implicit in the equation;
// nil means solve it from the Reynolds number.
type gasEquation struct {
	descriptor Descriptor
	flowConst  float64
	diamExp    float64
	gravExp    float64
	defaultEff float64
	friction   func(re, diameter float64) float64
}

// flowTerm is Q·√(T·G·L)·G^a / (C·E·d^b), the squared-pressure driving term.
func (e gasEquation) flowTerm(rate, tAvg, gravity, lengthMiles, eff, diameter float64) float64 {
	return rate * math.Sqrt(tAvg*gravity*lengthMiles) * math.Pow(gravity, e.gravExp) /
		(e.flowConst * eff * math.Pow(diameter, e.diamExp))
}

func (in *PipelineInput) validate() error {
	if in.Diameter <= 0 {
		return &ValidationError{Field: "diameter", Reason: "must be positive"}
	}
	if in.Length <= 0 {
		return &ValidationError{Field: "length", Reason: "must be positive"}
	}
	if in.GasRate < 0 {
		return &ValidationError{Field: "gasRate", Reason: "must be non-negative"}
	}
	if in.InletPressure <= 0 {
		return &ValidationError{Field: "inletPressure", Reason: "must be positive"}
	}
	if in.GasGravity <= 0 || in.GasGravity >= 1.5 {
		return &ValidationError{Field: "gasGravity", Reason: "must be in (0, 1.5)"}
	}
	if in.Temperature <= -460 {
		return &ValidationError{Field: "temperature", Reason: "below absolute zero"}
	}
	if in.Efficiency < 0 || in.Efficiency > 1 {
		return &ValidationError{Field: "efficiency", Reason: "must be in (0, 1]"}
	}
	return nil
}

// zEstimate is the simplified pseudo-reduced z correlation at pAvg.
func zEstimate(pAvg, gravity, tAvg float64) float64 {
	ppr := pAvg / (709 - 58*gravity)
	tpr := tAvg / (170 + 314*gravity)
	return 1 - 0.06*ppr/tpr
}

// PipelineEquations lists the available single-phase flow equations.
func PipelineEquations() []Descriptor {
	out := make([]Descriptor, len(gasEquations))
	for i, e := range gasEquations {
		out[i] = e.descriptor
	}
	return out
}

func equationByID(id string) (gasEquation, error) {
	for _, e := range gasEquations {
		if e.descriptor.ID == id {
			return e, nil
		}
	}
	return gasEquation{}, &ValidationError{Field: "equation", Reason: "unknown pipeline equation " + id}
}

// CalculatePipeline solves the outlet pressure for the requested rate. When
// no z-factor is supplied it is found by fixed-point iteration between the
// average pressure and the z estimate.
func CalculatePipeline(in PipelineInput, ctrl StepControl) (*PipelineResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	eq, err := equationByID(in.Equation)
	if err != nil {
		return nil, err
	}
	ctrl = ctrl.normalized()

	eff := in.Efficiency
	if eff == 0 {
		eff = eq.defaultEff
	}
	tAvg := in.Temperature + 460
	lengthMiles := in.Length / 5280

	term := eq.flowTerm(in.GasRate, tAvg, in.GasGravity, lengthMiles, eff, in.Diameter)
	p2sq := in.InletPressure*in.InletPressure - term*term

	res := &PipelineResult{
		Equation:      eq.descriptor.ID,
		InletPressure: in.InletPressure,
	}
	if p2sq <= 0 {
		res.OutletPressure = 14.7
		res.IsValid = false
		maxFlow, err := MaxFlowRate(in, ctrl)
		if err != nil {
			return nil, err
		}
		res.MaxFlow = maxFlow
	} else {
		res.OutletPressure = math.Sqrt(p2sq)
		res.IsValid = true
	}
	res.PressureDrop = in.InletPressure - res.OutletPressure

	avgPressure := (in.InletPressure + res.OutletPressure) / 2
	z := in.ZFactor
	if z == 0 {
		z = zEstimate(0.75*in.InletPressure, in.GasGravity, tAvg)
		for i := 0; i < ctrl.ZFactorMaxIterations; i++ {
			next := zEstimate(avgPressure, in.GasGravity, tAvg)
			if math.Abs(next-z) < ctrl.ZFactorTolerance {
				z = next
				break
			}
			z = next
		}
	}
	res.ZFactor = z

	area := math.Pi * math.Pow(in.Diameter/24, 2)
	actualRate := in.GasRate * 1000 * (14.7 / avgPressure) * (tAvg / 520) * z / 86400
	res.Velocity = actualRate / area

	viscLbft := (0.01 + 0.002*in.GasGravity) * 6.72e-4
	density := 0.0764 * in.GasGravity * avgPressure / (z * tAvg) * 520 / 14.7
	res.Reynolds = density * res.Velocity * (in.Diameter / 12) / viscLbft

	if eq.friction != nil {
		res.FrictionFactor = eq.friction(res.Reynolds, in.Diameter)
	} else if res.Reynolds < 2000 {
		res.FrictionFactor = 64 / res.Reynolds
	} else {
		res.FrictionFactor = frictionFactor(res.Reynolds, 0.0006/in.Diameter)
	}

	switch {
	case res.Reynolds < 2000:
		res.FlowRegime = "Laminar"
	case res.Reynolds < 4000:
		res.FlowRegime = "Transitional"
	default:
		res.FlowRegime = "Turbulent"
	}
	return res, nil
}

// MaxFlowRate is the deliverable rate down to an outlet floor of 10% of the
// inlet pressure (atmospheric at minimum), in Mscf/d.
func MaxFlowRate(in PipelineInput, ctrl StepControl) (float64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	eq, err := equationByID(in.Equation)
	if err != nil {
		return 0, err
	}
	eff := in.Efficiency
	if eff == 0 {
		eff = eq.defaultEff
	}
	tAvg := in.Temperature + 460
	lengthMiles := in.Length / 5280
	p2min := math.Max(14.7, in.InletPressure*0.1)

	return eq.flowConst * eff * math.Pow(in.Diameter, eq.diamExp) *
		math.Sqrt(in.InletPressure*in.InletPressure-p2min*p2min) /
		(math.Sqrt(tAvg*in.GasGravity*lengthMiles) * math.Pow(in.GasGravity, eq.gravExp)), nil
}

// RequiredDiameter inverts the flow equation for the pipe diameter (inches)
// that carries the rate between the given terminal pressures.
func RequiredDiameter(in PipelineInput, outletPressure float64, ctrl StepControl) (float64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	eq, err := equationByID(in.Equation)
	if err != nil {
		return 0, err
	}
	if outletPressure <= 0 || outletPressure >= in.InletPressure {
		return 0, &ValidationError{Field: "outletPressure", Reason: "must be positive and below inlet pressure"}
	}
	eff := in.Efficiency
	if eff == 0 {
		eff = eq.defaultEff
	}
	tAvg := in.Temperature + 460
	lengthMiles := in.Length / 5280

	term := in.GasRate * math.Sqrt(tAvg*in.GasGravity*lengthMiles) * math.Pow(in.GasGravity, eq.gravExp) /
		(eq.flowConst * eff * math.Sqrt(in.InletPressure*in.InletPressure-outletPressure*outletPressure))
	return math.Pow(term, 1/eq.diamExp), nil
}
