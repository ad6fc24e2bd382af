// Package section provides closed-form cross-sectional geometry for
// hydraulic structures and conduits: wetted area, wet perimeter, surface
// width and horizontal projection as functions of flow depth. Shapes are
// pure value types; depths above a closed shape's rise clamp to the full
// geometry since surcharge is a valid hydraulic regime handled by the
// structure, and depths at or below zero yield zero.
package section

// Section is the closed set of cross-sectional shapes.
type Section interface {
	// FlowArea is the wetted cross-sectional area [ft²] at a depth [ft]
	// above the section invert.
	FlowArea(depth float64) float64
	// WetPerimeter is the wetted perimeter [ft] at a depth.
	WetPerimeter(depth float64) float64
	// SurfaceWidth is the free-surface top width [ft] at a depth.
	SurfaceWidth(depth float64) float64
	// Projection is the effective horizontal crest length [ft] used by
	// weir-flow computations at a depth.
	Projection(depth float64) float64
	// Rise is the vertical extent [ft] of a closed shape, 0 for open shapes.
	Rise() float64
	// N is the Manning roughness, 0 when not set.
	N() float64
}

// HydRadius is the hydraulic radius A/P at a depth, 0 when dry.
func HydRadius(s Section, depth float64) float64 {
	pw := s.WetPerimeter(depth)
	if pw <= 0. {
		return 0.
	}
	return s.FlowArea(depth) / pw
}

func barrels(count int) float64 {
	if count < 1 {
		return 1.
	}
	return float64(count)
}
