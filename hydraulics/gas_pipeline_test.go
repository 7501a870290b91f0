package hydraulics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePipelineInput() PipelineInput {
	return PipelineInput{
		Equation:      "weymouth",
		Diameter:      12,
		Length:        52800, // 10 miles
		GasRate:       50000,
		InletPressure: 1000,
		GasGravity:    0.65,
		Temperature:   75,
	}
}

func TestPipelineEquationsListing(t *testing.T) {
	eqs := PipelineEquations()
	require.Len(t, eqs, 3)
	assert.Equal(t, "weymouth", eqs[0].ID)
	assert.Equal(t, "panhandle-a", eqs[1].ID)
	assert.Equal(t, "panhandle-b", eqs[2].ID)
}

func TestCalculatePipelineOversizedLine(t *testing.T) {
	res, err := CalculatePipeline(basePipelineInput(), StepControl{})
	require.NoError(t, err)

	assert.True(t, res.IsValid)
	assert.Less(t, res.OutletPressure, 1000.0)
	assert.Greater(t, res.OutletPressure, 990.0, "12 in line barely notices this rate")
	assert.InDelta(t, 1000.0-res.OutletPressure, res.PressureDrop, 1e-9)
	assert.Greater(t, res.Velocity, 0.0)
	assert.Greater(t, res.Reynolds, 4000.0)
	assert.Equal(t, "Turbulent", res.FlowRegime)
	assert.Greater(t, res.ZFactor, 0.8)
	assert.Less(t, res.ZFactor, 1.0)
}

func TestCalculatePipelineOverCapacity(t *testing.T) {
	in := basePipelineInput()
	in.Diameter = 2

	res, err := CalculatePipeline(in, StepControl{})
	require.NoError(t, err)

	assert.False(t, res.IsValid)
	assert.Equal(t, 14.7, res.OutletPressure)
	assert.Greater(t, res.MaxFlow, 0.0)
	assert.Less(t, res.MaxFlow, in.GasRate)
}

func TestMaxFlowRateHitsOutletFloor(t *testing.T) {
	in := basePipelineInput()
	in.Diameter = 4

	maxFlow, err := MaxFlowRate(in, StepControl{})
	require.NoError(t, err)
	require.Greater(t, maxFlow, 0.0)

	in.GasRate = maxFlow
	res, err := CalculatePipeline(in, StepControl{})
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	// floor is max(14.7, 10% of inlet)
	assert.InDelta(t, 100.0, res.OutletPressure, 1e-6)
}

func TestMaxFlowRateDecreasesWithLength(t *testing.T) {
	in := basePipelineInput()

	prev := math.Inf(1)
	for _, miles := range []float64{5, 10, 20, 40} {
		in.Length = miles * 5280
		maxFlow, err := MaxFlowRate(in, StepControl{})
		require.NoError(t, err)
		require.Greater(t, maxFlow, 0.0)
		assert.Less(t, maxFlow, prev, "at %v miles", miles)
		prev = maxFlow
	}
}

func TestRequiredDiameterRoundTrip(t *testing.T) {
	in := basePipelineInput()

	d, err := RequiredDiameter(in, 900, StepControl{})
	require.NoError(t, err)
	assert.Greater(t, d, 1.0)
	assert.Less(t, d, 12.0)

	in.Diameter = d
	res, err := CalculatePipeline(in, StepControl{})
	require.NoError(t, err)
	assert.InDelta(t, 900.0, res.OutletPressure, 1e-6)
}

func TestRequiredDiameterValidation(t *testing.T) {
	in := basePipelineInput()

	_, err := RequiredDiameter(in, 0, StepControl{})
	assert.Error(t, err)

	_, err = RequiredDiameter(in, 1500, StepControl{})
	assert.Error(t, err, "outlet above inlet")
}

func TestPanhandleDefaultsAndFriction(t *testing.T) {
	in := basePipelineInput()
	in.Equation = "panhandle-a"

	res, err := CalculatePipeline(in, StepControl{})
	require.NoError(t, err)

	explicit := in
	explicit.Efficiency = 0.92
	res2, err := CalculatePipeline(explicit, StepControl{})
	require.NoError(t, err)
	assert.InDelta(t, res.OutletPressure, res2.OutletPressure, 1e-9,
		"zero efficiency falls back to the equation default")

	// Panhandle friction approximations decay with Reynolds number
	assert.Greater(t, panhandleAEq.friction(1e6, 12), panhandleAEq.friction(1e7, 12))
	assert.Greater(t, panhandleBEq.friction(1e6, 12), panhandleBEq.friction(1e7, 12))
}

func TestPipelineInputValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PipelineInput)
	}{
		{"zero diameter", func(in *PipelineInput) { in.Diameter = 0 }},
		{"zero length", func(in *PipelineInput) { in.Length = 0 }},
		{"negative rate", func(in *PipelineInput) { in.GasRate = -1 }},
		{"zero inlet", func(in *PipelineInput) { in.InletPressure = 0 }},
		{"bad gravity", func(in *PipelineInput) { in.GasGravity = 1.6 }},
		{"bad efficiency", func(in *PipelineInput) { in.Efficiency = 1.2 }},
		{"unknown equation", func(in *PipelineInput) { in.Equation = "spitzglass" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := basePipelineInput()
			tc.mutate(&in)
			_, err := CalculatePipeline(in, StepControl{})
			assert.Error(t, err)
		})
	}
}
