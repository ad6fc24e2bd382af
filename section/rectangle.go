package section

import "math"

// Rectangle is a rectangular (box) section.
type Rectangle struct {
	Span     float64 // horizontal opening [ft]
	Height   float64 // vertical rise [ft]
	Mannings float64
	Count    int
}

// Square returns a box section with equal span and rise.
func Square(side float64) *Rectangle {
	return &Rectangle{Span: side, Height: side}
}

func (r *Rectangle) Rise() float64 { return r.Height }
func (r *Rectangle) N() float64    { return r.Mannings }

func (r *Rectangle) FlowArea(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	return barrels(r.Count) * math.Min(depth, r.Height) * r.Span
}

func (r *Rectangle) WetPerimeter(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	if depth < r.Height {
		return barrels(r.Count) * (r.Span + 2.*depth)
	}
	return barrels(r.Count) * (2.*r.Span + 2.*r.Height)
}

func (r *Rectangle) SurfaceWidth(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	return barrels(r.Count) * r.Span
}

func (r *Rectangle) Projection(depth float64) float64 {
	return r.SurfaceWidth(depth)
}
