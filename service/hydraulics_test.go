package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendMethodTree(t *testing.T) {
	svc := NewService(nil)

	cases := []struct {
		name string
		req  RecommendRequest
		want string
	}{
		{"deviated high glr", RecommendRequest{Deviation: 60, OilRate: 100, GasRate: 1000}, "mukherjee-brill"},
		{"deviated moderate glr", RecommendRequest{Deviation: 60, OilRate: 500, GasRate: 1000}, "beggs-brill"},
		{"gas well", RecommendRequest{Deviation: 10, OilRate: 50, GasRate: 1000}, "gray"},
		{"high glr vertical", RecommendRequest{Deviation: 10, OilRate: 200, GasRate: 1000}, "duns-ross"},
		{"large tubing", RecommendRequest{Deviation: 10, OilRate: 1000, GasRate: 500, TubingID: 4.5}, "orkiszewski"},
		{"conventional", RecommendRequest{Deviation: 10, OilRate: 1000, GasRate: 500, TubingID: 2.441}, "hagedorn-brown"},
		{"no liquid", RecommendRequest{Deviation: 10, GasRate: 1000}, "gray"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := svc.RecommendMethod(&tc.req)
			assert.Equal(t, tc.want, rec.Method)
			assert.NotEmpty(t, rec.Reason)
		})
	}
}

func TestCalculateTraverseExampleInput(t *testing.T) {
	svc := NewService(nil)
	req := svc.ExampleTraverseInput()

	res, err := svc.CalculateTraverse(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "hagedorn-brown", res.Method)
	assert.Equal(t, 100.0, res.SurfacePressure)
	assert.Greater(t, res.BottomholePressure, 100.0)
	assert.Len(t, res.Profile, 100)
}

func TestSolveTargetBHP(t *testing.T) {
	svc := NewService(nil)
	req := svc.ExampleTraverseInput()

	forward, err := svc.CalculateTraverse(context.Background(), req)
	require.NoError(t, err)

	req.TargetBHP = forward.BottomholePressure
	sol, err := svc.SolveTargetBHP(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, sol.Converged)
	assert.InDelta(t, req.TargetBHP, sol.BottomholePressure, targetTolerance)
	assert.Greater(t, sol.SurfacePressure, 0.0)
	assert.NotNil(t, sol.Result)
}

func TestSolveTargetBHPValidation(t *testing.T) {
	svc := NewService(nil)
	req := svc.ExampleTraverseInput()
	req.TargetBHP = 0

	_, err := svc.SolveTargetBHP(context.Background(), req)
	assert.Error(t, err)
}

func TestCompareMethodsAll(t *testing.T) {
	svc := NewService(nil)
	req := svc.ExampleTraverseInput()

	res, err := svc.CompareMethods(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Len(t, res.Methods, 10)
	require.NotNil(t, res.Stats)
	assert.GreaterOrEqual(t, res.Stats.MaxBHP, res.Stats.MinBHP)
	assert.InDelta(t, res.Stats.BHPRange, res.Stats.MaxBHP-res.Stats.MinBHP, 1e-9)

	var successes int
	for _, m := range res.Methods {
		if m.Success {
			successes++
			assert.Greater(t, m.BottomholePressure, req.SurfacePressure)
		}
	}
	assert.Equal(t, 10, successes)
}

func TestFlowRateSensitivityScalesStream(t *testing.T) {
	svc := NewService(nil)
	req := &FlowRateSensitivityRequest{
		Base:       *svc.ExampleTraverseInput(),
		MinOilRate: 200,
		MaxOilRate: 1000,
		Steps:      5,
	}

	points, err := svc.FlowRateSensitivity(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, points, 5)

	assert.InDelta(t, 200.0, points[0].OilRate, 1e-9)
	assert.InDelta(t, 1000.0, points[4].OilRate, 1e-9)
	for _, pt := range points {
		assert.True(t, pt.Success)
		// water cut 100/600 carried from the base case
		assert.InDelta(t, pt.OilRate/5, pt.TotalLiquid-pt.OilRate, 1e-6)
		assert.Greater(t, pt.BHP, 0.0)
	}
}

func TestTubingSensitivity(t *testing.T) {
	svc := NewService(nil)
	req := &TubingSensitivityRequest{
		Base:        *svc.ExampleTraverseInput(),
		MinTubingID: 1.995,
		MaxTubingID: 3.958,
		Steps:       4,
	}

	points, err := svc.TubingSensitivity(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, points, 4)

	for _, pt := range points {
		assert.True(t, pt.Success)
		assert.Greater(t, pt.FlowArea, 0.0)
	}
	// bigger tubing means less friction, lower bottomhole pressure requirement
	assert.Greater(t, points[0].FrictionPct, points[3].FrictionPct)
}

func TestLinspace(t *testing.T) {
	vals := linspace(0, 10, 5)
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, vals)
	assert.Equal(t, []float64{3}, linspace(3, 9, 1))
}
