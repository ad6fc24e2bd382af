package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadTables(t *testing.T) {
	_, err := New([][2]float64{{0., 0.}})
	require.Error(t, err)
	_, err = New([][2]float64{{0., 0.}, {0., 1.}})
	require.Error(t, err, "duplicate x")
	_, err = New([][2]float64{{0., 0.}, {2., 1.}, {1., 2.}})
	require.Error(t, err, "decreasing x")
}

func TestLookup(t *testing.T) {
	d, err := New([][2]float64{{0., 0.}, {1., 10.}, {3., 10.}})
	require.NoError(t, err)

	y, err := d.Lookup(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 5., y, 1e-12)

	y, err = d.Lookup(2.)
	require.NoError(t, err)
	assert.InDelta(t, 10., y, 1e-12)

	_, err = d.Lookup(-0.1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = d.Lookup(3.1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestClamped(t *testing.T) {
	d, err := New([][2]float64{{1., 2.}, {2., 4.}})
	require.NoError(t, err)
	c := d.Clamped()
	assert.Equal(t, 2., c.Y(0.))
	assert.Equal(t, 4., c.Y(5.))
	assert.InDelta(t, 3., c.Y(1.5), 1e-12)
}

func TestResample(t *testing.T) {
	d, err := New([][2]float64{{0., 0.}, {1., 1.}})
	require.NoError(t, err)
	r, err := d.Resample(0.25)
	require.NoError(t, err)
	require.Equal(t, 5, r.Len())
	for _, p := range r.Pairs() {
		assert.InDelta(t, p[0], p[1], 1e-12)
	}

	// uneven final step still lands on xmax
	r, err = d.Resample(0.4)
	require.NoError(t, err)
	pp := r.Pairs()
	assert.InDelta(t, 1., pp[len(pp)-1][0], 1e-12)

	_, err = d.Resample(0.)
	require.Error(t, err)
}

func TestScale(t *testing.T) {
	d, err := New([][2]float64{{0., 0.}, {1., 1.}, {5., 0.}})
	require.NoError(t, err)
	s, err := d.Scale(1.5, 1455.)
	require.NoError(t, err)
	pp := s.Pairs()
	assert.InDelta(t, 1.5, pp[1][0], 1e-12)
	assert.InDelta(t, 1455., pp[1][1], 1e-12)
	assert.InDelta(t, 7.5, pp[2][0], 1e-12)
}
