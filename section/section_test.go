package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircle(t *testing.T) {
	c := &Circle{Diameter: 2.}

	assert.Zero(t, c.FlowArea(0.))
	assert.Zero(t, c.FlowArea(-1.))

	full := math.Pi * 1. // πD²/4, D=2
	assert.InDelta(t, full, c.FlowArea(2.), 1e-9)
	assert.InDelta(t, full/2., c.FlowArea(1.), 1e-9)
	assert.InDelta(t, full, c.FlowArea(5.), 1e-9, "surcharge clamps to full barrel")

	assert.InDelta(t, 2.*math.Pi, c.WetPerimeter(2.), 1e-9)
	assert.InDelta(t, math.Pi, c.WetPerimeter(1.), 1e-9)

	assert.InDelta(t, 2., c.SurfaceWidth(1.), 1e-9, "widest at springline")
	assert.InDelta(t, 2., c.Projection(1.5), 1e-9, "projection holds full width above springline")

	assert.InDelta(t, 0.5, HydRadius(c, 2.), 1e-9, "full pipe R=D/4")

	twin := &Circle{Diameter: 2., Count: 2}
	assert.InDelta(t, 2.*full, twin.FlowArea(2.), 1e-9)
}

func TestRectangle(t *testing.T) {
	r := &Rectangle{Span: 4., Height: 2.}
	assert.InDelta(t, 4., r.FlowArea(1.), 1e-12)
	assert.InDelta(t, 8., r.FlowArea(3.), 1e-12, "clamped at rise")
	assert.InDelta(t, 6., r.WetPerimeter(1.), 1e-12)
	assert.InDelta(t, 12., r.WetPerimeter(2.), 1e-12)
	assert.InDelta(t, 4., r.SurfaceWidth(1.), 1e-12)

	sq := Square(3.)
	assert.Equal(t, 3., sq.Rise())
	assert.InDelta(t, 9., sq.FlowArea(3.), 1e-12)
}

func TestTrapezoid(t *testing.T) {
	tz := &Trapezoid{LSlope: 2., BWidth: 3., RSlope: 2.}
	assert.Zero(t, tz.Rise(), "open section")
	// A = d(b + z·d) for symmetric slopes
	assert.InDelta(t, 2.*(3.+2.*2.), tz.FlowArea(2.), 1e-12)
	assert.InDelta(t, 3.+2.*2.*2., tz.SurfaceWidth(2.), 1e-12)
	assert.InDelta(t, 3.+2.*math.Sqrt(4.*(1.+4.)), tz.WetPerimeter(2.), 1e-12)
}

func TestSectionMonotonicity(t *testing.T) {
	for _, s := range []Section{
		&Circle{Diameter: 1.5},
		&Rectangle{Span: 2., Height: 1.},
		&Trapezoid{LSlope: 1., BWidth: 2., RSlope: 3.},
		&Irregular{Points: [][2]float64{{0., 5.}, {2., 0.}, {4., 0.}, {6., 5.}}},
	} {
		last := 0.
		for d := 0.; d <= 3.; d += 0.05 {
			a := s.FlowArea(d)
			assert.GreaterOrEqual(t, a, last, "area non-decreasing with depth")
			last = a
		}
	}
}

func TestIrregular(t *testing.T) {
	// 2:1 symmetric vee, bottom at (2,0)
	v := &Irregular{Points: [][2]float64{{0., 4.}, {2., 0.}, {4., 4.}}}
	assert.InDelta(t, 2., v.SurfaceWidth(2.), 1e-9, "w = 2·z·d, z=0.5")
	assert.InDelta(t, 2., v.FlowArea(2.), 1e-9, "A = z·d²")
	assert.InDelta(t, 0.5, v.FlowArea(1.), 1e-9)
	assert.Zero(t, v.Rise())

	box := &Irregular{Points: [][2]float64{{0., 2.}, {0., 0.}, {3., 0.}, {3., 2.}}, Closed: true}
	assert.InDelta(t, 2., box.Rise(), 1e-12)
	assert.InDelta(t, 3., box.FlowArea(1.), 1e-9)
	assert.InDelta(t, 5., box.WetPerimeter(1.), 1e-9)
}
