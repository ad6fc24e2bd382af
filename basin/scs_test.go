package basin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSCS() *SCS {
	return &SCS{
		Area:       4.6,
		CN:         85.,
		Tc:         2.3,
		RunoffDist: UH484(),
		PeakFactor: 484.,
	}
}

func TestSCSRetention(t *testing.T) {
	b := testSCS()
	assert.InDelta(t, 1.7647, b.PotentialRetention(), 1e-4)
	assert.InDelta(t, 0.3529, b.InitialAbstraction(), 1e-4)
}

func TestSCSRunoffDepth(t *testing.T) {
	b := testSCS()
	assert.Zero(t, b.RunoffDepth(0.3), "rainfall below the initial abstraction")
	assert.InDelta(t, 0.7951, b.RunoffDepth(2.0), 1e-4)
	assert.InDelta(t, 0.7951*4.6*43560./12., b.RunoffVolume(2.0), 2.)
}

func TestSCSPeak(t *testing.T) {
	b := testSCS()
	assert.InDelta(t, 1.53295, b.PeakTime(), 1e-5)
	assert.InDelta(t, 1452.36, b.PeakRunoff(), 0.01)
}

func TestSCSAddShapes(t *testing.T) {
	b := &SCS{Area: 10., CN: 80.}
	b.AddShapes([][2]float64{{10., 90.}})
	assert.InDelta(t, 20., b.Area, 1e-9)
	assert.InDelta(t, 85., b.CN, 1e-9)

	b.AddShapes(nil)
	assert.InDelta(t, 20., b.Area, 1e-9, "no shapes, no change")
}

func TestSCSUnitHydrograph(t *testing.T) {
	b := testSCS()
	uh, err := b.UnitHydrograph(0.1)
	require.NoError(t, err)
	assert.Zero(t, uh[0][1], "starts dry")
	peak := 0.
	for _, p := range uh {
		if p[1] > peak {
			peak = p[1]
		}
	}
	assert.InDelta(t, 1449.24, peak, 0.5, "tabulated peak just off the exact peak time")
}

func TestSCSFloodHydrograph(t *testing.T) {
	b := testSCS()
	rain := [][2]float64{{0., 0.}, {6., 1.0}, {12., 2.0}}
	hyd, err := b.FloodHydrograph(rain, 0.1)
	require.NoError(t, err)
	require.NotEmpty(t, hyd)

	peak, total := 0., 0.
	for _, p := range hyd {
		if p[1] > peak {
			peak = p[1]
		}
		total += p[1] * 0.1 * 3600.
	}
	assert.InDelta(t, 334.6, peak, 0.5)
	assert.InDelta(t, 8.5136e6, total, 5e3)
	assert.Zero(t, hyd[0][1])
	assert.InDelta(t, 0., hyd[len(hyd)-1][1], 1e-6, "recedes to dry")
}

func TestSCSFloodHydrographErrors(t *testing.T) {
	b := testSCS()
	_, err := b.FloodHydrograph([][2]float64{{0., 0.}}, 0.1)
	assert.Error(t, err, "degenerate rainfall table")

	b.RunoffDist = nil
	_, err = b.FloodHydrograph([][2]float64{{0., 0.}, {6., 1.}}, 0.1)
	assert.Error(t, err)
}
