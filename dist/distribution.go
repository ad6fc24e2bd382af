// Package dist provides immutable monotonic (x,y) tables with interpolated
// lookup and uniform resampling. Distributions carry normalized rainfall
// and unit-hydrograph shapes into the routing engine's node spacing.
package dist

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrOutOfRange is returned by Lookup for an x outside the table domain.
var ErrOutOfRange = errors.New("dist: lookup outside defined domain")

// Distribution is an ordered table of (x,y) pairs, x strictly increasing.
// Immutable after construction.
type Distribution struct {
	xy [][2]float64
}

// New validates and copies pairs into a Distribution.
func New(pairs [][2]float64) (*Distribution, error) {
	if len(pairs) < 2 {
		return nil, fmt.Errorf("dist.New: need at least 2 pairs, have %d", len(pairs))
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i][0] <= pairs[i-1][0] {
			return nil, fmt.Errorf("dist.New: x not strictly increasing at index %d (%g then %g)", i, pairs[i-1][0], pairs[i][0])
		}
	}
	cp := make([][2]float64, len(pairs))
	copy(cp, pairs)
	return &Distribution{xy: cp}, nil
}

// Len returns the number of tabulated pairs.
func (d *Distribution) Len() int { return len(d.xy) }

// Pairs returns a copy of the tabulated pairs.
func (d *Distribution) Pairs() [][2]float64 {
	cp := make([][2]float64, len(d.xy))
	copy(cp, d.xy)
	return cp
}

// Domain returns the tabulated [xmin, xmax].
func (d *Distribution) Domain() (float64, float64) {
	return d.xy[0][0], d.xy[len(d.xy)-1][0]
}

// Lookup linearly interpolates y at x, failing with ErrOutOfRange outside
// the tabulated domain.
func (d *Distribution) Lookup(x float64) (float64, error) {
	x0, x1 := d.Domain()
	if x < x0 || x > x1 {
		return 0., fmt.Errorf("%w: %g not in [%g,%g]", ErrOutOfRange, x, x0, x1)
	}
	return d.interp(x), nil
}

func (d *Distribution) interp(x float64) float64 {
	i := sort.Search(len(d.xy), func(i int) bool { return d.xy[i][0] >= x })
	if i == 0 {
		return d.xy[0][1]
	}
	p0, p1 := d.xy[i-1], d.xy[i]
	f := (x - p0[0]) / (p1[0] - p0[0])
	return p0[1] + f*(p1[1]-p0[1])
}

// Clamped wraps a Distribution so lookups outside the domain hold the
// nearest end value instead of failing.
type Clamped struct {
	d *Distribution
}

// Clamped returns an end-value clamping evaluator over the table.
func (d *Distribution) Clamped() Clamped { return Clamped{d: d} }

// Y evaluates the table at x, clamping to the first/last tabulated y.
func (c Clamped) Y(x float64) float64 {
	x0, x1 := c.d.Domain()
	switch {
	case x <= x0:
		return c.d.xy[0][1]
	case x >= x1:
		return c.d.xy[len(c.d.xy)-1][1]
	}
	return c.d.interp(x)
}

// Resample re-tabulates the distribution at a uniform step, from xmin up
// to and including xmax.
func (d *Distribution) Resample(step float64) (*Distribution, error) {
	if step <= 0. {
		return nil, fmt.Errorf("dist.Resample: step must be positive, have %g", step)
	}
	x0, x1 := d.Domain()
	n := int(math.Ceil((x1-x0)/step-1e-12)) + 1
	out := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		x := x0 + float64(i)*step
		if x > x1 {
			x = x1
		}
		out = append(out, [2]float64{x, d.interp(x)})
		if x >= x1 {
			break
		}
	}
	return New(out)
}

// Scale returns a copy with x multiplied by sx and y by sy. Used to
// dimensionalize a normalized unit-hydrograph shape by (peak time, peak
// flow).
func (d *Distribution) Scale(sx, sy float64) (*Distribution, error) {
	if sx <= 0. {
		return nil, fmt.Errorf("dist.Scale: sx must be positive, have %g", sx)
	}
	out := make([][2]float64, len(d.xy))
	for i, p := range d.xy {
		out[i] = [2]float64{p[0] * sx, p[1] * sy}
	}
	return New(out)
}
