package section

import "math"

// Trapezoid is an open trapezoidal channel section. Side slopes are
// horizontal-over-vertical; a triangular channel has BWidth 0.
type Trapezoid struct {
	LSlope   float64 // left side slope (h/v)
	BWidth   float64 // bottom width [ft]
	RSlope   float64 // right side slope (h/v)
	Mannings float64
	Count    int
}

func (t *Trapezoid) Rise() float64 { return 0. } // open section
func (t *Trapezoid) N() float64    { return t.Mannings }

func (t *Trapezoid) FlowArea(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	l := t.LSlope * depth * depth / 2.
	c := t.BWidth * depth
	r := t.RSlope * depth * depth / 2.
	return barrels(t.Count) * (l + c + r)
}

func (t *Trapezoid) WetPerimeter(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	l := math.Sqrt(depth * depth * (1. + t.LSlope*t.LSlope))
	r := math.Sqrt(depth * depth * (1. + t.RSlope*t.RSlope))
	return barrels(t.Count) * (l + t.BWidth + r)
}

func (t *Trapezoid) SurfaceWidth(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	return barrels(t.Count) * (t.LSlope*depth + t.BWidth + t.RSlope*depth)
}

func (t *Trapezoid) Projection(depth float64) float64 {
	return t.SurfaceWidth(depth)
}
