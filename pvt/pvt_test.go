package pvt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevance-sas/Nodal-API/hydraulics"
)

func testFluid() hydraulics.FluidDescription {
	return hydraulics.FluidDescription{
		OilRate:      500,
		WaterRate:    100,
		GasRate:      1000, // producing GOR 2000 scf/STB
		OilGravity:   35,
		WaterGravity: 1.05,
		GasGravity:   0.65,
		BubblePoint:  2500,
	}
}

func TestPropertiesRangeChecks(t *testing.T) {
	port := BlackOil{}

	_, err := port.Properties(testFluid(), 0, 150)
	assert.Error(t, err)

	_, err = port.Properties(testFluid(), 500, -500)
	assert.Error(t, err)
}

func TestPropertiesSaturated(t *testing.T) {
	port := BlackOil{}

	props, err := port.Properties(testFluid(), 1500, 150)
	require.NoError(t, err)

	assert.Greater(t, props.SolutionGOR, 0.0)
	assert.Less(t, props.SolutionGOR, 2000.0, "below bubble point gas stays partly free")
	assert.Greater(t, props.OilFVF, 1.0)
	assert.Less(t, props.OilFVF, 2.0)
	assert.Greater(t, props.OilViscosity, 0.0)
	assert.GreaterOrEqual(t, props.WaterFVF, 1.0)
	assert.GreaterOrEqual(t, props.WaterVisc, 0.2)
	assert.LessOrEqual(t, props.WaterVisc, 10.0)
	assert.Equal(t, 0.02, props.GasViscosity)
	assert.Greater(t, props.ZFactor, 0.2)
	assert.Less(t, props.ZFactor, 1.5)
	assert.Greater(t, props.GasFVF, 0.0001)
	assert.Less(t, props.GasFVF, 0.5)
}

func TestSolutionGORCappedAtProducingGOR(t *testing.T) {
	port := BlackOil{}

	props, err := port.Properties(testFluid(), 9000, 150)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, props.SolutionGOR, 1e-9,
		"dissolved gas cannot exceed the produced gas")
}

func TestOilViscosityAboveBubblePoint(t *testing.T) {
	fluid := testFluid()
	fluid.BubblePoint = 2000
	port := BlackOil{}

	sat, err := port.Properties(fluid, 2000, 150)
	require.NoError(t, err)
	under, err := port.Properties(fluid, 5000, 150)
	require.NoError(t, err)

	assert.Greater(t, under.OilViscosity, sat.OilViscosity,
		"undersaturated oil thickens with pressure")
}

func TestGasFVFShrinksWithPressure(t *testing.T) {
	port := BlackOil{}

	lo, err := port.Properties(testFluid(), 500, 150)
	require.NoError(t, err)
	hi, err := port.Properties(testFluid(), 4000, 150)
	require.NoError(t, err)

	assert.Greater(t, lo.GasFVF, hi.GasFVF)
}

func TestZFactorLowPressureLimit(t *testing.T) {
	// below pseudo-reduced pressure 0.1 the gas is treated as ideal
	assert.Equal(t, 1.0, zFactor(20, 100, 0.65))
}

func TestZFactorBounds(t *testing.T) {
	for _, p := range []float64{200, 1000, 3000, 8000, 15000} {
		z := zFactor(p, 180, 0.7)
		assert.GreaterOrEqual(t, z, 0.2, "at %.0f psia", p)
		assert.LessOrEqual(t, z, 1.5, "at %.0f psia", p)
	}
}

func TestStandingBubblePointClamps(t *testing.T) {
	assert.Equal(t, 14.7, standingPb(0, 0.65, 150, 35))

	pb := standingPb(500, 0.65, 150, 35)
	assert.Greater(t, pb, 14.7)
	assert.Less(t, pb, 10000.0)
}

func TestWaterProperties(t *testing.T) {
	assert.InDelta(t, 1.0, WaterFVF(60), 1e-9)
	assert.Greater(t, WaterFVF(200), 1.0)

	fresh := WaterViscosity(100, 0)
	salty := WaterViscosity(100, 10)
	assert.Greater(t, salty, fresh)

	assert.InDelta(t, 62.4*1.05, WaterDensity(60, 1.05), 1e-9)
	assert.Less(t, WaterDensity(200, 1.05), WaterDensity(60, 1.05))
}
