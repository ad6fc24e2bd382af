package section

import "math"

// Circle is a circular (pipe) section. Count > 1 models parallel barrels.
type Circle struct {
	Diameter float64
	Mannings float64
	Count    int
}

func (c *Circle) Rise() float64 { return c.Diameter }
func (c *Circle) N() float64    { return c.Mannings }

// alpha is the chord angle subtended at the centre by the water surface.
func (c *Circle) alpha(depth float64) float64 {
	d := math.Min(depth, c.Diameter)
	return 2. * math.Acos(1.-2.*d/c.Diameter)
}

func (c *Circle) FlowArea(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	a := c.alpha(depth)
	return barrels(c.Count) * c.Diameter * c.Diameter / 8. * (a - math.Sin(a))
}

func (c *Circle) WetPerimeter(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	return barrels(c.Count) * c.alpha(depth) * c.Diameter / 2.
}

func (c *Circle) SurfaceWidth(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	return barrels(c.Count) * c.Diameter * math.Sin(c.alpha(depth)/2.)
}

func (c *Circle) Projection(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	if depth < c.Diameter/2. {
		return c.SurfaceWidth(depth)
	}
	return barrels(c.Count) * c.Diameter
}
