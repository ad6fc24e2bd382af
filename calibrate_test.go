package goflo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrateOpeningValidation(t *testing.T) {
	a, _ := bleedDownAnalysis(t, 2.)
	obs := make([]float64, a.Steps()+1)

	_, _, err := a.CalibrateOpening(5, obs, DefaultCoefficientBounds())
	assert.ErrorIs(t, err, ErrConfiguration, "undefined link")

	_, _, err = a.CalibrateOpening(0, obs[:3], DefaultCoefficientBounds())
	assert.ErrorIs(t, err, ErrConfiguration, "observed record length mismatch")
}

func TestCalibrateOpeningRecoversCoefficient(t *testing.T) {
	a, np := bleedDownAnalysis(t, 2.)
	op := a.Net.Links[0].(*Opening)
	op.Korif = 0.55
	res, err := a.Run()
	require.NoError(t, err)
	obs := res.Stages(np)
	op.Korif = 0.8 // calibration starts away from the target

	b := DefaultCoefficientBounds()
	cal, of, err := a.CalibrateOpening(0, obs, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.55, cal.Korif, 0.05)
	assert.Less(t, of, 0.003, "fitted stage RMSE [ft]")
	assert.GreaterOrEqual(t, cal.Kweir, b.KweirLo)
	assert.LessOrEqual(t, cal.Kweir, b.KweirHi)
	assert.Equal(t, 0.8, op.Korif, "trials route copies, the network is untouched")
}

func TestDefaultCoefficientBounds(t *testing.T) {
	b := DefaultCoefficientBounds()
	require.Less(t, b.KorifLo, b.KorifHi)
	require.Less(t, b.KweirLo, b.KweirHi)
}
