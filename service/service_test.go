package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/codevance-sas/Nodal-API/model"
	"github.com/codevance-sas/Nodal-API/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

func TestMinimumCurvatureVertical(t *testing.T) {
	st := []model.Survey{
		{MD: 0, Inc: 0, Azm: 0},
		{MD: 1000, Inc: 0, Azm: 0},
	}
	minimumCurvature(st)

	assert.InDelta(t, 1000.0, st[1].TVD, 1e-9)
	assert.InDelta(t, 0.0, st[1].NS, 1e-9)
	assert.InDelta(t, 0.0, st[1].EW, 1e-9)
	assert.InDelta(t, 0.0, st[1].DLS, 1e-9)
	assert.InDelta(t, 1.0, st[1].RF, 1e-9)
}

func TestMinimumCurvatureBuildSection(t *testing.T) {
	// 0° to 60° over 1000 ft due north
	st := []model.Survey{
		{MD: 0, Inc: 0, Azm: 0},
		{MD: 1000, Inc: 60, Azm: 0},
	}
	minimumCurvature(st)

	require.InDelta(t, 6.0, st[1].DLS, 1e-6, "60° over 1000 ft is 6°/100ft")
	assert.Greater(t, st[1].TVD, 0.0)
	assert.Less(t, st[1].TVD, 1000.0)
	assert.Greater(t, st[1].NS, 0.0, "build to the north gains northing")
	assert.InDelta(t, 0.0, st[1].EW, 1e-9)
	assert.InDelta(t, st[1].NS, st[1].Stepout, 1e-9)

	// ratio factor exceeds one on a curved section
	assert.Greater(t, st[1].RF, 1.0)
}
