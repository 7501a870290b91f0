package service

import (
	"errors"
	"math"

	"github.com/codevance-sas/Nodal-API/hydraulics"
	"github.com/codevance-sas/Nodal-API/pkg/logger"
)

var standardPipeSizes = []float64{2, 3, 4, 6, 8, 10, 12, 16, 20, 24, 30, 36}

const defaultVelocityLimit = 60.0 // ft/s erosional guideline

// CalculateGasPipeline solves the flow equation, then layers terrain and
// Joule-Thomson corrections on top of the horizontal isothermal result.
func (s *Service) CalculateGasPipeline(req *GasPipelineRequest, ctrl hydraulics.StepControl) (*GasPipelineResult, error) {
	base, err := hydraulics.CalculatePipeline(req.PipelineInput, ctrl)
	if err != nil {
		return nil, err
	}

	out := &GasPipelineResult{PipelineResult: *base}
	out.FrictionComponent = base.PressureDrop

	if req.ElevationChange != 0 && base.IsValid {
		avgP := 0.85 * req.InletPressure
		tAbs := req.Temperature + 460
		z := acidGasZ(avgP, tAbs, req.GasGravity, req.CO2Fraction, req.H2SFraction, req.N2Fraction)
		density := 0.0764 * req.GasGravity * avgP / (z * tAbs)
		hydrostatic := density * req.ElevationChange / 144

		out.OutletPressure -= hydrostatic
		out.ElevationComponent = hydrostatic
		out.PressureDrop = req.InletPressure - out.OutletPressure
		if out.OutletPressure <= 0 {
			out.OutletPressure = 14.7
			out.PressureDrop = req.InletPressure - out.OutletPressure
			out.IsValid = false
		}
	}

	cooling := jouleThomson(req.InletPressure, out.OutletPressure, req.Temperature,
		req.GasGravity, req.CO2Fraction, req.H2SFraction, req.N2Fraction)
	out.OutletTemperature = cooling.OutletTemperature
	out.TemperatureDrop = cooling.TemperatureDrop
	out.JTCoefficient = cooling.JTCoefficient
	out.HydrateRisk = cooling.HydrateRisk
	out.HydrateFormationTemp = cooling.HydrateFormationTemp
	out.HydrateMargin = cooling.HydrateMargin
	if out.HydrateRisk {
		logger.Logger.Warnf("hydrate risk: outlet %.1f°F at or below formation temperature %.1f°F",
			out.OutletTemperature, out.HydrateFormationTemp)
	}
	return out, nil
}

// GasPipelineDiameter sizes a line to standard pipe diameters, upsizing while
// the flow velocity exceeds the erosional limit.
func (s *Service) GasPipelineDiameter(req *DiameterRequest, ctrl hydraulics.StepControl) (*DiameterResult, error) {
	sizes := req.AvailableSizes
	if len(sizes) == 0 {
		sizes = standardPipeSizes
	}
	limit := req.VelocityLimit
	if limit <= 0 {
		limit = defaultVelocityLimit
	}

	in := hydraulics.PipelineInput{
		Equation:      req.Equation,
		Diameter:      1, // placeholder for validation, replaced below
		Length:        req.Length,
		GasRate:       req.GasRate,
		InletPressure: req.InletPressure,
		GasGravity:    req.GasGravity,
		Temperature:   req.Temperature,
		ZFactor:       req.ZFactor,
		Efficiency:    req.Efficiency,
	}
	calc, err := hydraulics.RequiredDiameter(in, req.OutletPressure, ctrl)
	if err != nil {
		return nil, err
	}

	recommended := sizes[len(sizes)-1]
	for _, d := range sizes {
		if d >= calc {
			recommended = d
			break
		}
	}

	final := recommended
	var velocity float64
	for {
		in.Diameter = final
		res, err := hydraulics.CalculatePipeline(in, ctrl)
		if err != nil {
			return nil, err
		}
		velocity = res.Velocity
		if velocity <= limit {
			break
		}
		next, ok := nextLargerSize(sizes, final)
		if !ok {
			logger.Logger.Warnf("velocity %.1f ft/s exceeds limit %.1f ft/s at largest size %.0f in",
				velocity, limit, final)
			break
		}
		final = next
	}

	return &DiameterResult{
		CalculatedDiameter:  calc,
		RecommendedDiameter: recommended,
		FinalDiameter:       final,
		FlowVelocity:        velocity,
		VelocityLimit:       limit,
		VelocityLimited:     final != recommended,
		AvailableSizes:      sizes,
	}, nil
}

func nextLargerSize(sizes []float64, current float64) (float64, bool) {
	for _, d := range sizes {
		if d > current {
			return d, true
		}
	}
	return 0, false
}

// GasPipelineSensitivity sweeps one design variable of the base case.
func (s *Service) GasPipelineSensitivity(req *GasSensitivityRequest, ctrl hydraulics.StepControl) (*GasSensitivityResult, error) {
	steps := req.Steps
	if steps <= 0 {
		steps = 10
	}
	base := req.Base

	lo, hi := req.MinValue, req.MaxValue
	switch req.Variable {
	case "diameter":
		if lo == 0 {
			lo = math.Max(1, 0.5*base.Diameter)
		}
		if hi == 0 {
			hi = 2 * base.Diameter
		}
	case "length":
		if lo == 0 {
			lo = math.Max(100, 0.1*base.Length)
		}
		if hi == 0 {
			hi = 3 * base.Length
		}
	case "flowRate":
		if lo == 0 {
			lo = math.Max(10, 0.2*base.GasRate)
		}
		if hi == 0 {
			hi = 2 * base.GasRate
		}
	case "pressure":
		if lo == 0 {
			lo = math.Max(100, 0.5*base.InletPressure)
		}
		if hi == 0 {
			hi = 2 * base.InletPressure
		}
	default:
		return nil, errors.New("unknown sensitivity variable " + req.Variable)
	}
	if hi <= lo {
		return nil, errors.New("sensitivity range must be increasing")
	}

	out := &GasSensitivityResult{Variable: req.Variable}
	for _, v := range linspace(lo, hi, steps) {
		r := base
		switch req.Variable {
		case "diameter":
			r.Diameter = v
		case "length":
			r.Length = v
		case "flowRate":
			r.GasRate = v
		case "pressure":
			r.InletPressure = v
		}
		res, err := s.CalculateGasPipeline(&r, ctrl)
		if err != nil {
			return nil, err
		}
		out.Points = append(out.Points, GasSensitivityPoint{
			Value:           v,
			OutletPressure:  res.OutletPressure,
			PressureDrop:    res.PressureDrop,
			FlowVelocity:    res.Velocity,
			TemperatureDrop: res.TemperatureDrop,
			HydrateRisk:     res.HydrateRisk,
		})
	}
	return out, nil
}

// CompressorStation sizes a multi-stage station with adiabatic power, fuel
// and downstream cooling estimates.
func (s *Service) CompressorStation(req *CompressorRequest) (*CompressorResult, error) {
	if req.InletPressure <= 0 || req.OutletPressure <= req.InletPressure {
		return nil, errors.New("outlet pressure must exceed a positive inlet pressure")
	}
	if req.GasRate <= 0 {
		return nil, errors.New("gas rate must be positive")
	}
	eff := req.Efficiency
	if eff <= 0 || eff > 1 {
		eff = 0.75
	}
	maxRatio := req.MaxRatioPerStage
	if maxRatio <= 1 {
		maxRatio = 3.0
	}
	k := req.HeatRatio
	if k <= 0 {
		k = 1.32 - 0.05*req.GasGravity
	}

	inletTempR := req.InletTemperature + 460
	ratio := req.OutletPressure / req.InletPressure

	zAvg := req.ZAvg
	if zAvg <= 0 {
		ppc := 709 - 58*req.GasGravity
		tpc := 170 + 314*req.GasGravity
		tpr := inletTempR / tpc
		zIn := 1 - 0.06*(req.InletPressure/ppc)/tpr
		zOut := 1 - 0.06*(req.OutletPressure/ppc)/tpr
		zAvg = (zIn + zOut) / 2
	}

	stages := int(math.Ceil(math.Log(ratio) / math.Log(maxRatio)))
	if stages < 1 {
		stages = 1
	}
	ratioPerStage := math.Pow(ratio, 1/float64(stages))

	res := &CompressorResult{
		Stages:           stages,
		CompressionRatio: ratio,
	}

	stageInlet := req.InletPressure
	stageInletTemp := inletTempR
	t2t1 := math.Pow(ratioPerStage, (k-1)/k)
	var totalHP float64
	var dischargeTempR float64
	for i := 0; i < stages; i++ {
		stageOutlet := stageInlet * ratioPerStage
		dischargeTempR = stageInletTemp * t2t1 / eff

		// actual inlet volume flow, cubic feet per minute
		acfm := req.GasRate * 1e6 * (req.InletPressure / stageInlet) * (stageInletTemp / 520) * zAvg / 1440
		const powerFactor = 0.0857
		hp := acfm * stageInlet * zAvg * (t2t1 - 1) * powerFactor / eff
		totalHP += hp

		res.StageDetails = append(res.StageDetails, CompressorStage{
			InletPressure:  stageInlet,
			OutletPressure: stageOutlet,
			DischargeTempF: dischargeTempR - 460,
			PowerHP:        hp,
		})

		stageInlet = stageOutlet
		stageInletTemp = dischargeTempR - 50 // interstage cooler
	}

	res.DischargeTempF = dischargeTempR - 460
	res.PowerRequiredHP = totalHP
	res.PowerRequiredKW = totalHP * 0.7457
	res.SpecificPowerHP = totalHP / req.GasRate

	const heatRate = 9000 // BTU/hp-hr, gas engine driver
	fuelSCFH := heatRate * totalHP / 1020
	res.FuelConsumptionMMScf = fuelSCFH * 24 / 1e6

	cooling := jouleThomson(req.OutletPressure, req.OutletPressure*0.7,
		res.DischargeTempF, req.GasGravity, 0, 0, 0)
	res.PipelineCooling = cooling

	costPerHP := 2500.0
	if req.CompressorType == "reciprocating" {
		costPerHP = 2000.0
	}
	installed := totalHP * costPerHP * 1.2
	res.Economics = CompressorEconomics{
		InstalledCostUSD:     installed,
		AnnualFuelCostUSD:    res.FuelConsumptionMMScf * 365 * 4.0 * 1000, // $4/MMBtu
		AnnualMaintenanceUSD: installed * 0.05,
	}
	return res, nil
}

// ExampleGasPipelineInput is a representative gathering line case.
func (s *Service) ExampleGasPipelineInput() *GasPipelineRequest {
	return &GasPipelineRequest{
		PipelineInput: hydraulics.PipelineInput{
			Equation:      "weymouth",
			Diameter:      12,
			Length:        52800,
			GasRate:       50000,
			InletPressure: 1000,
			GasGravity:    0.65,
			Temperature:   75,
		},
		ElevationChange: 0,
	}
}

// jouleThomson estimates expansion cooling and hydrate formation risk.
func jouleThomson(inletP, outletP, inletT, gravity, co2, h2s, n2 float64) *GasPipelineCooling {
	jt := (0.045 + 0.01*gravity) * (1 + 0.5*co2 + 0.7*h2s - 0.1*n2)
	jt *= 1 - 0.003*(inletT-60)

	drop := jt * (inletP - outletP)
	outletT := inletT - drop
	hydrateTemp := 50 + 0.2*outletP - 20*gravity

	return &GasPipelineCooling{
		InletTemperature:     inletT,
		OutletTemperature:    outletT,
		TemperatureDrop:      drop,
		JTCoefficient:        jt,
		HydrateFormationTemp: hydrateTemp,
		HydrateRisk:          outletT <= hydrateTemp,
		HydrateMargin:        outletT - hydrateTemp,
	}
}

// acidGasZ is the simplified compressibility with Wichert-Aziz style
// pseudo-critical shifts for CO2, H2S and N2.
func acidGasZ(p, tAbs, gravity, co2, h2s, n2 float64) float64 {
	ppc := 709 - 58*gravity - (9.5*co2 + 5.2*h2s - 0.1*n2)
	tpc := 170 + 314*gravity - (3.5*co2 + 4.8*h2s - 7.9*n2)
	z := 1 - 0.06*(p/ppc)/(tAbs/tpc)
	return math.Max(0.2, math.Min(z, 1.2))
}
