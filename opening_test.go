package goflo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjiyamin/goflo/section"
)

func TestOrificeFlow(t *testing.T) {
	o := Opening{
		Up: 0, Dn: 1,
		Kind:  Orifice,
		Inv:   10.,
		Korif: 0.6,
		Sect:  &section.Circle{Diameter: 0.5},
	}

	q, err := o.Flow(9.5, 0.)
	require.NoError(t, err)
	assert.Zero(t, q, "dry above the invert")

	q, err = o.Flow(10.4, 0.)
	require.NoError(t, err)
	assert.Zero(t, q, "nothing passes until the opening drowns out")

	// free discharge, head to the opening centroid
	q, err = o.Flow(12., 5.)
	require.NoError(t, err)
	assert.InDelta(t, 1.2507, q, 1e-3)

	// submerged discharge, head to the tailwater
	qs, err := o.Flow(12., 11.)
	require.NoError(t, err)
	assert.InDelta(t, 0.9455, qs, 1e-3)
	assert.Less(t, qs, q)
}

func TestWeirFlow(t *testing.T) {
	o := Opening{
		Up: 0, Dn: 1,
		Kind:  Weir,
		Inv:   10.,
		Kweir: 3.2,
		Sect:  &section.Rectangle{Span: 4., Height: 2.},
	}

	q, err := o.Flow(11.5, 0.)
	require.NoError(t, err)
	assert.InDelta(t, 3.2*4.*math.Pow(1.5, 1.5), q, 1e-9)

	qs, err := o.Flow(11.5, 10.75)
	require.NoError(t, err)
	assert.Greater(t, qs, 0.)
	assert.Less(t, qs, q, "submerged crest passes less")
}

func TestCombinedFlow(t *testing.T) {
	o := Opening{
		Up: 0, Dn: 1,
		Kind:       Combined,
		Inv:        10.,
		Korif:      0.6,
		Kweir:      3.2,
		Transition: 0.5,
		Sect:       &section.Rectangle{Span: 4., Height: 2.},
	}

	q, err := o.Flow(10.4, 0.)
	require.NoError(t, err)
	assert.Zero(t, q, "orifice bay not yet drowned, crest not yet engaged")

	// orifice bay plus engaged crest
	q, err = o.Flow(11.5, 0.)
	require.NoError(t, err)
	qo := 0.6 * 2. * math.Sqrt(2.*Gravity*1.25)
	qw := 3.2 * 4. * 1.
	assert.InDelta(t, qo+qw, q, 1e-9)
}

func TestOpeningReverseGradient(t *testing.T) {
	o := Opening{
		Up: 0, Dn: 1,
		Kind:  Weir,
		Inv:   10.,
		Kweir: 3.2,
		Sect:  &section.Rectangle{Span: 4., Height: 2.},
	}
	q, err := o.Flow(9., 11.5)
	require.NoError(t, err)
	assert.Zero(t, q, "one-way structures block reverse gradients")

	o.Bidirectional = true
	q, err = o.Flow(9., 11.5)
	require.NoError(t, err)
	fwd, err := o.Flow(11.5, 9.)
	require.NoError(t, err)
	assert.InDelta(t, -fwd, q, 1e-9, "reverse flow mirrors the forward rating")
}

func TestOpeningMonotoneRating(t *testing.T) {
	for _, o := range []Opening{
		{Kind: Orifice, Inv: 10., Korif: 0.6, Sect: &section.Circle{Diameter: 0.5}},
		{Kind: Weir, Inv: 10., Kweir: 3.2, Sect: &section.Rectangle{Span: 4., Height: 2.}},
		{Kind: Combined, Inv: 10., Korif: 0.6, Kweir: 3.2, Transition: 0.5,
			Sect: &section.Rectangle{Span: 4., Height: 2.}},
	} {
		last := 0.
		for s1 := 9.5; s1 < 14.; s1 += 0.05 {
			q, err := o.Flow(s1, 0.)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, q, last, "discharge must not fall as stage rises")
			last = q
		}
	}
}
