package service

import (
	"context"
	"errors"
	"math"

	"github.com/codevance-sas/Nodal-API/hydraulics"
	"github.com/codevance-sas/Nodal-API/pkg/logger"
	"github.com/codevance-sas/Nodal-API/pvt"
)

const (
	defaultDepthSteps = 100

	targetMaxIterations = 20
	targetTolerance     = 5.0 // psi
	minSurfacePressure  = 50.0
)

// geometryFor assembles the flow path for a request. A WellID pulls the
// directional survey from the database; otherwise an explicit survey or a
// constant deviation is used.
func (s *Service) geometryFor(req *TraverseRequest) (*hydraulics.FlowPathGeometry, error) {
	steps := req.DepthSteps
	if steps <= 0 {
		steps = defaultDepthSteps
	}
	if len(req.Segments) == 0 {
		return nil, errors.New("at least one pipe segment required")
	}

	stations := req.Survey
	if req.WellID != "" {
		loaded, err := s.SurveyStations(req.WellID)
		if err != nil {
			return nil, err
		}
		stations = loaded
	}
	if len(stations) == 0 && req.Deviation != 0 {
		depth := req.Segments[len(req.Segments)-1].EndDepth
		stations = []hydraulics.SurveyStation{
			{MD: 0, Inclination: req.Deviation},
			{MD: depth, Inclination: req.Deviation},
		}
	}
	return hydraulics.NewFlowPathGeometry(req.Segments, stations, steps)
}

// CalculateTraverse runs one pressure traverse from the surface boundary down
// to the bottomhole.
func (s *Service) CalculateTraverse(ctx context.Context, req *TraverseRequest) (*hydraulics.TraverseResult, error) {
	corr, err := hydraulics.New(req.Method)
	if err != nil {
		return nil, err
	}
	geom, err := s.geometryFor(req)
	if err != nil {
		return nil, err
	}
	port := pvt.BlackOil{Salinity: req.Salinity}
	return hydraulics.CalculatePressureProfile(ctx, corr, geom, req.Fluid, port,
		req.SurfacePressure, true, req.Control)
}

// SolveTargetBHP finds the surface pressure that produces the requested
// bottomhole pressure, by secant iteration on repeated traverses.
func (s *Service) SolveTargetBHP(ctx context.Context, req *TraverseRequest) (*TargetSolution, error) {
	if req.TargetBHP <= 0 {
		return nil, errors.New("target bottomhole pressure must be positive")
	}
	corr, err := hydraulics.New(req.Method)
	if err != nil {
		return nil, err
	}
	geom, err := s.geometryFor(req)
	if err != nil {
		return nil, err
	}
	port := pvt.BlackOil{Salinity: req.Salinity}

	target := req.TargetBHP
	surface := 0.5 * target
	var (
		prevSurface, prevError float64
		result                 *hydraulics.TraverseResult
		achieved               float64
	)

	sol := &TargetSolution{TargetBHP: target}
	for i := 0; i < targetMaxIterations; i++ {
		result, err = hydraulics.CalculatePressureProfile(ctx, corr, geom, req.Fluid, port,
			surface, true, req.Control)
		if err != nil {
			return nil, err
		}
		achieved = result.BottomholePressure
		errNow := achieved - target
		sol.Iterations = i + 1

		if math.Abs(errNow) <= targetTolerance {
			sol.Converged = true
			break
		}

		next := surface
		if i == 0 {
			if errNow > 0 {
				next = surface * 0.8
			} else {
				next = surface * 1.2
			}
		} else if math.Abs(errNow-prevError) < 1e-6 {
			// flat secant slope, nudge instead
			if errNow > 0 {
				next = surface * 0.9
			} else {
				next = surface * 1.1
			}
		} else {
			next = surface - errNow*(surface-prevSurface)/(errNow-prevError)
		}
		next = math.Max(minSurfacePressure, math.Min(next, 0.9*target))

		prevSurface, prevError = surface, errNow
		surface = next
	}

	if !sol.Converged {
		logger.Logger.Warnf("target BHP %.1f psia not met within %d iterations, residual %.2f psi",
			target, sol.Iterations, achieved-target)
	}
	sol.SurfacePressure = surface
	sol.BottomholePressure = achieved
	sol.Error = achieved - target
	sol.Result = result
	return sol, nil
}

// CompareMethods runs the traverse with every requested correlation, or all
// registered ones when methods is empty, and aggregates spread statistics
// across the ones that succeed.
func (s *Service) CompareMethods(ctx context.Context, req *TraverseRequest, methods []string) (*ComparisonResult, error) {
	if len(methods) == 0 {
		for _, d := range hydraulics.Methods() {
			methods = append(methods, d.ID)
		}
	}
	geom, err := s.geometryFor(req)
	if err != nil {
		return nil, err
	}
	port := pvt.BlackOil{Salinity: req.Salinity}

	out := &ComparisonResult{}
	var bhps []float64
	for _, id := range methods {
		entry := MethodComparison{Method: id}
		corr, err := hydraulics.New(id)
		if err != nil {
			entry.Error = err.Error()
			out.Methods = append(out.Methods, entry)
			continue
		}
		res, err := hydraulics.CalculatePressureProfile(ctx, corr, geom, req.Fluid, port,
			req.SurfacePressure, true, req.Control)
		if err != nil {
			entry.Error = err.Error()
			out.Methods = append(out.Methods, entry)
			continue
		}
		entry.Success = true
		entry.BottomholePressure = res.BottomholePressure
		entry.PressureDrop = res.TotalPressureDrop
		entry.ElevationPct = res.ElevationPct
		entry.FrictionPct = res.FrictionPct
		entry.AccelerationPct = res.AccelerationPct
		out.Methods = append(out.Methods, entry)
		bhps = append(bhps, res.BottomholePressure)
	}

	if len(bhps) > 0 {
		stats := &ComparisonStats{MinBHP: bhps[0], MaxBHP: bhps[0]}
		var sum float64
		for _, v := range bhps {
			sum += v
			stats.MinBHP = math.Min(stats.MinBHP, v)
			stats.MaxBHP = math.Max(stats.MaxBHP, v)
		}
		stats.AverageBHP = sum / float64(len(bhps))
		var ss float64
		for _, v := range bhps {
			d := v - stats.AverageBHP
			ss += d * d
		}
		stats.StdDevBHP = math.Sqrt(ss / float64(len(bhps)))
		stats.BHPRange = stats.MaxBHP - stats.MinBHP
		if stats.AverageBHP > 0 {
			stats.PercentRange = stats.BHPRange / stats.AverageBHP * 100
		}
		out.Stats = stats
	}
	return out, nil
}

// RecommendMethod picks a correlation from well deviation, gas-liquid ratio
// and tubing size.
func (s *Service) RecommendMethod(req *RecommendRequest) *Recommendation {
	liquid := req.OilRate + req.WaterRate
	glr := math.Inf(1)
	if liquid > 0 {
		glr = req.GasRate * 1000 / liquid
	}

	rec := &Recommendation{GLR: glr}
	switch {
	case req.Deviation > 45 && glr > 5000:
		rec.Method = "mukherjee-brill"
		rec.Reason = "deviated well with high gas-liquid ratio"
	case req.Deviation > 45:
		rec.Method = "beggs-brill"
		rec.Reason = "deviated well"
	case glr > 10000:
		rec.Method = "gray"
		rec.Reason = "gas well with low liquid loading"
	case glr > 2000:
		rec.Method = "duns-ross"
		rec.Reason = "high gas-liquid ratio vertical well"
	case req.TubingID > 3.5:
		rec.Method = "orkiszewski"
		rec.Reason = "large tubing vertical well"
	default:
		rec.Method = "hagedorn-brown"
		rec.Reason = "conventional vertical oil well"
	}
	return rec
}

// FlowRateSensitivity sweeps the oil rate, scaling water and gas to preserve
// the base water cut and producing GOR.
func (s *Service) FlowRateSensitivity(ctx context.Context, req *FlowRateSensitivityRequest) ([]FlowRatePoint, error) {
	steps := req.Steps
	if steps <= 0 {
		steps = 10
	}
	if req.MaxOilRate <= req.MinOilRate || req.MinOilRate < 0 {
		return nil, errors.New("oil rate range must be increasing and non-negative")
	}

	base := req.Base.Fluid
	var waterCut, gor float64
	if base.OilRate+base.WaterRate > 0 {
		waterCut = base.WaterRate / (base.OilRate + base.WaterRate)
	}
	if base.OilRate > 0 {
		gor = base.GasRate * 1000 / base.OilRate
	}

	points := make([]FlowRatePoint, 0, steps)
	for _, oil := range linspace(req.MinOilRate, req.MaxOilRate, steps) {
		r := req.Base
		r.Fluid.OilRate = oil
		if waterCut < 1 {
			r.Fluid.WaterRate = oil * waterCut / (1 - waterCut)
		}
		r.Fluid.GasRate = oil * gor / 1000

		pt := FlowRatePoint{OilRate: oil, TotalLiquid: r.Fluid.OilRate + r.Fluid.WaterRate}
		res, err := s.CalculateTraverse(ctx, &r)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Logger.Warnf("flow rate sensitivity at %.0f STB/d failed: %v", oil, err)
			points = append(points, pt)
			continue
		}
		pt.Success = true
		pt.BHP = res.BottomholePressure
		pt.PressureDrop = res.TotalPressureDrop
		pt.ElevationPct = res.ElevationPct
		pt.FrictionPct = res.FrictionPct
		points = append(points, pt)
	}
	return points, nil
}

// TubingSensitivity sweeps the tubing inner diameter applied to every segment
// of the base geometry.
func (s *Service) TubingSensitivity(ctx context.Context, req *TubingSensitivityRequest) ([]TubingPoint, error) {
	steps := req.Steps
	if steps <= 0 {
		steps = 10
	}
	if req.MinTubingID <= 0 || req.MaxTubingID <= req.MinTubingID {
		return nil, errors.New("tubing diameter range must be positive and increasing")
	}

	points := make([]TubingPoint, 0, steps)
	for _, d := range linspace(req.MinTubingID, req.MaxTubingID, steps) {
		r := req.Base
		r.Segments = append([]hydraulics.PipeSegment(nil), req.Base.Segments...)
		for i := range r.Segments {
			r.Segments[i].Diameter = d
		}

		pt := TubingPoint{TubingID: d, FlowArea: math.Pi * math.Pow(d/24, 2)}
		res, err := s.CalculateTraverse(ctx, &r)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Logger.Warnf("tubing sensitivity at %.3f in failed: %v", d, err)
			points = append(points, pt)
			continue
		}
		pt.Success = true
		pt.BHP = res.BottomholePressure
		pt.PressureDrop = res.TotalPressureDrop
		pt.ElevationPct = res.ElevationPct
		pt.FrictionPct = res.FrictionPct
		points = append(points, pt)
	}
	return points, nil
}

// ExampleTraverseInput is a representative two-segment deep well request.
func (s *Service) ExampleTraverseInput() *TraverseRequest {
	return &TraverseRequest{
		Method: "hagedorn-brown",
		Segments: []hydraulics.PipeSegment{
			{StartDepth: 0, EndDepth: 10000, Diameter: 2.441, Roughness: 0.0006},
			{StartDepth: 10000, EndDepth: 20000, Diameter: 2.0, Roughness: 0.0006},
		},
		Deviation:       0,
		DepthSteps:      100,
		SurfacePressure: 100,
		Fluid: hydraulics.FluidDescription{
			OilRate:             500,
			WaterRate:           100,
			GasRate:             1000,
			OilGravity:          35,
			WaterGravity:        1.05,
			GasGravity:          0.65,
			BubblePoint:         2500,
			SurfaceTemperature:  75,
			TemperatureGradient: 0.015,
		},
	}
}
