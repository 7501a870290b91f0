package hydraulics_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevance-sas/Nodal-API/hydraulics"
	"github.com/codevance-sas/Nodal-API/pvt"
)

func testFluid() hydraulics.FluidDescription {
	return hydraulics.FluidDescription{
		OilRate:             500,
		WaterRate:           100,
		GasRate:             1000,
		OilGravity:          35,
		WaterGravity:        1.05,
		GasGravity:          0.65,
		BubblePoint:         2500,
		SurfaceTemperature:  75,
		TemperatureGradient: 0.015,
	}
}

func testGeometry(t *testing.T, deviation float64) *hydraulics.FlowPathGeometry {
	t.Helper()
	g, err := hydraulics.NewSimpleGeometry(8000, deviation, 2.441, 0.0006, 100)
	require.NoError(t, err)
	return g
}

func TestAllMethodsProduceFlowingProfile(t *testing.T) {
	geom := testGeometry(t, 0)
	fluid := testFluid()
	port := pvt.BlackOil{}

	for _, d := range hydraulics.Methods() {
		d := d
		t.Run(d.ID, func(t *testing.T) {
			corr, err := hydraulics.New(d.ID)
			require.NoError(t, err)

			res, err := hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
				fluid, port, 100, true, hydraulics.StepControl{})
			require.NoError(t, err)

			assert.Equal(t, d.ID, res.Method)
			assert.Len(t, res.Profile, 100)
			assert.Equal(t, 100.0, res.SurfacePressure)
			assert.Greater(t, res.BottomholePressure, res.SurfacePressure,
				"flowing column must gain pressure with depth")
			assert.False(t, math.IsNaN(res.BottomholePressure))
			assert.InDelta(t, res.BottomholePressure-res.SurfacePressure, res.TotalPressureDrop, 1e-9)

			for _, p := range res.Profile {
				assert.False(t, math.IsNaN(p.Pressure), "pressure at %.0f ft", p.Depth)
				assert.GreaterOrEqual(t, p.LiquidHoldup, 0.0)
				assert.LessOrEqual(t, p.LiquidHoldup, 1.0)
				assert.GreaterOrEqual(t, p.MixtureDensity, 0.0)
			}

			split := res.ElevationPct + res.FrictionPct + res.AccelerationPct
			assert.InDelta(t, 100.0, split, 1e-6, "gradient split must sum to 100")
			assert.NotEmpty(t, res.FlowPatterns)
		})
	}
}

func gasOnlyFluid() hydraulics.FluidDescription {
	f := testFluid()
	f.OilRate, f.WaterRate = 0, 0
	return f
}

func TestGasOnlyWellClampsOutOfRangeInputs(t *testing.T) {
	geom := testGeometry(t, 0)

	corr, err := hydraulics.New("hagedorn-brown")
	require.NoError(t, err)

	res, err := hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
		gasOnlyFluid(), pvt.BlackOil{}, 100, true, hydraulics.StepControl{})
	require.NoError(t, err)

	require.NotEmpty(t, res.DomainErrors, "zero liquid density lies outside the holdup fit")
	de := res.DomainErrors[0]
	assert.Equal(t, "hagedorn-brown", de.Method)
	assert.Equal(t, "liquidDensity", de.Quantity)
	assert.Greater(t, de.Clamped, de.Value)
	assert.Greater(t, de.Depth, 0.0)

	assert.False(t, math.IsNaN(res.BottomholePressure))
	assert.Greater(t, res.BottomholePressure, res.SurfacePressure)
	for _, p := range res.Profile {
		assert.False(t, math.IsNaN(p.Pressure), "at %.0f ft", p.Depth)
		assert.False(t, math.IsNaN(p.MixtureDensity), "at %.0f ft", p.Depth)
		assert.False(t, math.IsNaN(p.TotalGradient), "at %.0f ft", p.Depth)
	}
}

func TestGasOnlyWellStaysFiniteAcrossMethods(t *testing.T) {
	geom := testGeometry(t, 0)
	fluid := gasOnlyFluid()

	for _, d := range hydraulics.Methods() {
		d := d
		t.Run(d.ID, func(t *testing.T) {
			corr, err := hydraulics.New(d.ID)
			require.NoError(t, err)

			res, err := hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
				fluid, pvt.BlackOil{}, 100, true, hydraulics.StepControl{})
			require.NoError(t, err)

			assert.False(t, math.IsNaN(res.BottomholePressure))
			assert.Greater(t, res.BottomholePressure, 100.0)
			for _, p := range res.Profile {
				assert.False(t, math.IsNaN(p.Pressure), "at %.0f ft", p.Depth)
			}
			if d.ID != "gray" {
				// gray was fit to high-rate gas wells and treats a dry
				// gas stream as in range
				assert.NotEmpty(t, res.DomainErrors)
			}
		})
	}
}

func TestAbortOnDomainError(t *testing.T) {
	geom := testGeometry(t, 0)

	corr, err := hydraulics.New("hagedorn-brown")
	require.NoError(t, err)

	res, err := hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
		gasOnlyFluid(), pvt.BlackOil{}, 100, true,
		hydraulics.StepControl{AbortOnDomainError: true})
	require.Error(t, err)

	var de *hydraulics.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "hagedorn-brown", de.Method)
	require.NotNil(t, res, "partial result accompanies the abort")
	require.NotEmpty(t, res.DomainErrors)
}

func TestPerPointConvergenceFlag(t *testing.T) {
	geom := testGeometry(t, 0)

	corr, err := hydraulics.New("hagedorn-brown")
	require.NoError(t, err)

	res, err := hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
		testFluid(), pvt.BlackOil{}, 100, true, hydraulics.StepControl{})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	for _, p := range res.Profile {
		assert.True(t, p.Converged, "at %.0f ft", p.Depth)
	}

	starved, err := hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
		testFluid(), pvt.BlackOil{}, 100, true,
		hydraulics.StepControl{Tolerance: 1e-12, MaxIterations: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, starved.Warnings)

	var flagged int
	for _, p := range starved.Profile {
		if !p.Converged {
			flagged++
		}
	}
	assert.Greater(t, flagged, 0, "starved iteration must mark its points")
}

func TestStaticColumnIsHydrostatic(t *testing.T) {
	geom := testGeometry(t, 0)
	fluid := testFluid()
	fluid.OilRate, fluid.WaterRate, fluid.GasRate = 0, 0, 0

	corr, err := hydraulics.New("hagedorn-brown")
	require.NoError(t, err)

	res, err := hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
		fluid, pvt.BlackOil{}, 500, true, hydraulics.StepControl{})
	require.NoError(t, err)

	assert.Greater(t, res.BottomholePressure, 500.0)
	for _, p := range res.Profile {
		assert.Equal(t, hydraulics.PatternStatic, p.FlowPattern)
		assert.Zero(t, p.FrictionGradient)
		assert.Zero(t, p.AccelerationGradient)
	}
	assert.InDelta(t, 100.0, res.ElevationPct, 1e-9)
	require.Len(t, res.FlowPatterns, 1)
	assert.Equal(t, hydraulics.PatternStatic, res.FlowPatterns[0].Pattern)
}

func TestHorizontalPathHasNoElevationGradient(t *testing.T) {
	geom := testGeometry(t, 90)

	corr, err := hydraulics.New("beggs-brill")
	require.NoError(t, err)

	res, err := hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
		testFluid(), pvt.BlackOil{}, 300, true, hydraulics.StepControl{})
	require.NoError(t, err)

	for _, p := range res.Profile {
		assert.InDelta(t, 0.0, p.ElevationGradient, 1e-12, "at %.0f ft", p.Depth)
	}
	assert.Greater(t, res.BottomholePressure, res.SurfacePressure,
		"friction still consumes pressure in a horizontal pipe")
	assert.InDelta(t, 0.0, res.ElevationPct, 1e-9)
}

func TestMarchingUpFromBottomhole(t *testing.T) {
	geom := testGeometry(t, 0)

	corr, err := hydraulics.New("hagedorn-brown")
	require.NoError(t, err)

	res, err := hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
		testFluid(), pvt.BlackOil{}, 3000, false, hydraulics.StepControl{})
	require.NoError(t, err)

	assert.Equal(t, 3000.0, res.BottomholePressure)
	assert.Less(t, res.SurfacePressure, 3000.0)
	assert.Greater(t, res.SurfacePressure, 0.0)
}

func TestTraverseHonorsContext(t *testing.T) {
	geom := testGeometry(t, 0)

	corr, err := hydraulics.New("gray")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = hydraulics.CalculatePressureProfile(ctx, corr, geom,
		testFluid(), pvt.BlackOil{}, 100, true, hydraulics.StepControl{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTraverseValidation(t *testing.T) {
	geom := testGeometry(t, 0)
	corr, err := hydraulics.New("aziz")
	require.NoError(t, err)

	_, err = hydraulics.CalculatePressureProfile(context.Background(), nil, geom,
		testFluid(), pvt.BlackOil{}, 100, true, hydraulics.StepControl{})
	assert.Error(t, err)

	_, err = hydraulics.CalculatePressureProfile(context.Background(), corr, nil,
		testFluid(), pvt.BlackOil{}, 100, true, hydraulics.StepControl{})
	assert.Error(t, err)

	_, err = hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
		testFluid(), pvt.BlackOil{}, -50, true, hydraulics.StepControl{})
	assert.Error(t, err)

	bad := testFluid()
	bad.GasGravity = 2.0
	_, err = hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
		bad, pvt.BlackOil{}, 100, true, hydraulics.StepControl{})
	assert.Error(t, err)

	_, err = hydraulics.New("no-such-method")
	assert.Error(t, err)
}

func TestMethodsRegistry(t *testing.T) {
	methods := hydraulics.Methods()
	assert.Len(t, methods, 10)

	seen := map[string]bool{}
	for _, d := range methods {
		assert.NotEmpty(t, d.ID)
		assert.NotEmpty(t, d.Name)
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
	}
	assert.True(t, seen["hagedorn-brown"])
	assert.True(t, seen["mukherjee-brill"])
}
