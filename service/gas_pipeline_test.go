package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevance-sas/Nodal-API/hydraulics"
)

func TestCalculateGasPipelineFlat(t *testing.T) {
	svc := NewService(nil)
	req := svc.ExampleGasPipelineInput()

	res, err := svc.CalculateGasPipeline(req, hydraulics.StepControl{})
	require.NoError(t, err)

	assert.True(t, res.IsValid)
	assert.Zero(t, res.ElevationComponent)
	assert.InDelta(t, res.PressureDrop, res.FrictionComponent, 1e-9)
	assert.Less(t, res.OutletTemperature, req.Temperature,
		"expansion always cools the gas")
	assert.Greater(t, res.JTCoefficient, 0.0)
}

func TestCalculateGasPipelineUphill(t *testing.T) {
	svc := NewService(nil)
	flat := svc.ExampleGasPipelineInput()

	uphill := *flat
	uphill.ElevationChange = 2000

	flatRes, err := svc.CalculateGasPipeline(flat, hydraulics.StepControl{})
	require.NoError(t, err)
	upRes, err := svc.CalculateGasPipeline(&uphill, hydraulics.StepControl{})
	require.NoError(t, err)

	assert.Greater(t, upRes.ElevationComponent, 0.0)
	assert.Less(t, upRes.OutletPressure, flatRes.OutletPressure)
	assert.InDelta(t, upRes.FrictionComponent+upRes.ElevationComponent, upRes.PressureDrop, 1e-9)
}

func TestJouleThomsonCooling(t *testing.T) {
	c := jouleThomson(1000, 800, 60, 0.65, 0, 0, 0)

	// base coefficient 0.045 + 0.01*0.65 at the 60°F reference
	assert.InDelta(t, 0.0515, c.JTCoefficient, 1e-9)
	assert.InDelta(t, 10.3, c.TemperatureDrop, 1e-9)
	assert.InDelta(t, 49.7, c.OutletTemperature, 1e-9)
	assert.InDelta(t, 50+0.2*800-20*0.65, c.HydrateFormationTemp, 1e-9)
	assert.True(t, c.HydrateRisk)

	// sour gas cools harder
	sour := jouleThomson(1000, 800, 60, 0.65, 0.05, 0.02, 0)
	assert.Greater(t, sour.TemperatureDrop, c.TemperatureDrop)
}

func TestGasPipelineDiameterSizing(t *testing.T) {
	svc := NewService(nil)
	req := &DiameterRequest{
		Equation:       "weymouth",
		Length:         52800,
		GasRate:        50000,
		InletPressure:  1000,
		OutletPressure: 900,
		GasGravity:     0.65,
		Temperature:    75,
	}

	res, err := svc.GasPipelineDiameter(req, hydraulics.StepControl{})
	require.NoError(t, err)

	assert.Greater(t, res.CalculatedDiameter, 2.0)
	assert.Less(t, res.CalculatedDiameter, 3.0)
	assert.Equal(t, 3.0, res.RecommendedDiameter)
	assert.Greater(t, res.FinalDiameter, res.RecommendedDiameter,
		"small pipe violates the velocity limit and is upsized")
	assert.True(t, res.VelocityLimited)
	assert.LessOrEqual(t, res.FlowVelocity, res.VelocityLimit)
	assert.Equal(t, standardPipeSizes, res.AvailableSizes)
}

func TestGasPipelineSensitivityFlowRate(t *testing.T) {
	svc := NewService(nil)
	req := &GasSensitivityRequest{
		Base:     *svc.ExampleGasPipelineInput(),
		Variable: "flowRate",
		Steps:    5,
	}

	res, err := svc.GasPipelineSensitivity(req, hydraulics.StepControl{})
	require.NoError(t, err)
	require.Len(t, res.Points, 5)
	assert.Equal(t, "flowRate", res.Variable)

	// more gas through the same pipe burns more pressure
	assert.Greater(t, res.Points[4].PressureDrop, res.Points[0].PressureDrop)
}

func TestGasPipelineSensitivityUnknownVariable(t *testing.T) {
	svc := NewService(nil)
	req := &GasSensitivityRequest{
		Base:     *svc.ExampleGasPipelineInput(),
		Variable: "salinity",
	}
	_, err := svc.GasPipelineSensitivity(req, hydraulics.StepControl{})
	assert.Error(t, err)
}

func TestCompressorStationTwoStage(t *testing.T) {
	svc := NewService(nil)
	req := &CompressorRequest{
		InletPressure:    250,
		OutletPressure:   1000, // ratio 4 needs two stages at 3 per stage
		GasRate:          20,
		GasGravity:       0.65,
		InletTemperature: 80,
	}

	res, err := svc.CompressorStation(req)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Stages)
	assert.InDelta(t, 4.0, res.CompressionRatio, 1e-9)
	require.Len(t, res.StageDetails, 2)
	assert.InDelta(t, res.StageDetails[0].OutletPressure, res.StageDetails[1].InletPressure, 1e-9)
	assert.InDelta(t, 1000.0, res.StageDetails[1].OutletPressure, 1e-6)

	assert.Greater(t, res.PowerRequiredHP, 0.0)
	assert.InDelta(t, res.PowerRequiredHP*0.7457, res.PowerRequiredKW, 1e-6)
	assert.Greater(t, res.DischargeTempF, req.InletTemperature)
	assert.Greater(t, res.FuelConsumptionMMScf, 0.0)
	require.NotNil(t, res.PipelineCooling)
	assert.InDelta(t, res.DischargeTempF, res.PipelineCooling.InletTemperature, 1e-9)
	assert.Greater(t, res.Economics.InstalledCostUSD, 0.0)
}

func TestCompressorStationValidation(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.CompressorStation(&CompressorRequest{InletPressure: 500, OutletPressure: 400, GasRate: 10})
	assert.Error(t, err)

	_, err = svc.CompressorStation(&CompressorRequest{InletPressure: 200, OutletPressure: 800, GasRate: 0})
	assert.Error(t, err)
}
