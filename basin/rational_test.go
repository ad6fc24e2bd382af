package basin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goflo "github.com/benjiyamin/goflo"
)

func TestRationalRunoffArea(t *testing.T) {
	b := &Rational{Tc: 10., Area: 10., C: 0.5}
	assert.InDelta(t, 5., b.RunoffArea(), 1e-9)
}

func TestRationalAddShapes(t *testing.T) {
	b := &Rational{Tc: 10.}
	b.AddShapes([][2]float64{{6., 0.3}, {4., 0.9}})
	assert.InDelta(t, 10., b.Area, 1e-9)
	assert.InDelta(t, (6.*0.3+4.*0.9)/10., b.C, 1e-9)
}

func TestRationalFloodHydrograph(t *testing.T) {
	b := &Rational{Tc: 10., Area: 10., C: 0.5}
	hyd, err := b.FloodHydrograph([][2]float64{{0., 0.}, {1., 2.}}, 0.5)
	require.NoError(t, err)
	require.Len(t, hyd, 3)

	assert.Zero(t, hyd[0][1], "no elapsed time, no intensity")
	// constant 2 in/hr storm: flow holds at i·C·A·k
	assert.InDelta(t, 2.*5.*goflo.KRational, hyd[1][1], 1e-9)
	assert.InDelta(t, 2.*5.*goflo.KRational, hyd[2][1], 1e-9)
}

func TestRationalFloodHydrographErrors(t *testing.T) {
	b := &Rational{Tc: 10., Area: 10., C: 0.5}
	_, err := b.FloodHydrograph([][2]float64{{0., 0.}}, 0.5)
	assert.Error(t, err)
	_, err = b.FloodHydrograph([][2]float64{{0., 0.}, {1., 2.}}, 0.)
	assert.Error(t, err)
}
