package section

import "math"

// Irregular is a surveyed cross section given as (station, elevation)
// points ordered left to right. Depth is measured above the lowest point.
// Closed marks a shape whose point loop bounds a conduit, giving it a
// defined rise.
type Irregular struct {
	Points   [][2]float64
	Closed   bool
	Mannings float64
}

func (g *Irregular) N() float64 { return g.Mannings }

func (g *Irregular) Rise() float64 {
	if !g.Closed {
		return 0.
	}
	ymin, ymax := g.yrange()
	return ymax - ymin
}

func (g *Irregular) yrange() (float64, float64) {
	ymin, ymax := g.Points[0][1], g.Points[0][1]
	for _, p := range g.Points[1:] {
		ymin = math.Min(ymin, p[1])
		ymax = math.Max(ymax, p[1])
	}
	return ymin, ymax
}

// clip trims segment (p1,p2) to the region below the waterline yd,
// returning ok=false when the segment is entirely dry.
func clip(p1, p2 [2]float64, yd float64) (a, b [2]float64, ok bool) {
	x1, y1, x2, y2 := p1[0], p1[1], p2[0], p2[1]
	if y1 >= yd && y2 >= yd {
		return a, b, false
	}
	if y1 > yd { // submerging
		x1 = p1[0] + (x2-p1[0])*(yd-p1[1])/(y2-p1[1])
		y1 = yd
	} else if y2 > yd { // emerging
		x2 = p1[0] + (x2-p1[0])*(yd-p1[1])/(y2-p1[1])
		y2 = yd
	}
	return [2]float64{x1, y1}, [2]float64{x2, y2}, true
}

func (g *Irregular) FlowArea(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	ymin, _ := g.yrange()
	yd := ymin + depth
	area := 0.
	for i := 1; i < len(g.Points); i++ {
		a, b, ok := clip(g.Points[i-1], g.Points[i], yd)
		if !ok {
			continue
		}
		area += (b[0] - a[0]) * (yd - (a[1]+b[1])/2.)
	}
	return math.Abs(area)
}

func (g *Irregular) WetPerimeter(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	ymin, _ := g.yrange()
	yd := ymin + depth
	per := 0.
	for i := 1; i < len(g.Points); i++ {
		a, b, ok := clip(g.Points[i-1], g.Points[i], yd)
		if !ok {
			continue
		}
		per += math.Hypot(b[0]-a[0], b[1]-a[1])
	}
	return per
}

func (g *Irregular) SurfaceWidth(depth float64) float64 {
	if depth <= 0. {
		return 0.
	}
	ymin, _ := g.yrange()
	yd := ymin + depth
	w := 0.
	for i := 1; i < len(g.Points); i++ {
		a, b, ok := clip(g.Points[i-1], g.Points[i], yd)
		if !ok {
			continue
		}
		w += math.Abs(b[0] - a[0])
	}
	return w
}

func (g *Irregular) Projection(depth float64) float64 {
	return g.SurfaceWidth(depth)
}
