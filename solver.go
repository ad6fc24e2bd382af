package goflo

import "math"

// Solver carries the routing root-finder's knobs. Convergence behaviour
// is deliberately exposed rather than hidden inside a library call so it
// stays testable and tunable.
type Solver struct {
	// Tol is the absolute continuity-residual tolerance [ft³].
	Tol float64
	// MaxIter caps the bisection iterations per node per step; when
	// reached the best estimate is accepted and a convergence warning
	// recorded.
	MaxIter int
	// Headroom is the stage search allowance above a reservoir's highest
	// contour [ft]; 0 sizes it from the step's peak inflow.
	Headroom float64
}

func (s Solver) withDefaults() Solver {
	if s.Tol <= 0. {
		s.Tol = 0.01
	}
	if s.MaxIter <= 0 {
		s.MaxIter = 100
	}
	return s
}

// headroom above the top contour: enough stage for the whole step's
// inflow to pond on the top surface area, and never less than a foot.
func (s Solver) headroom(r *Reservoir, inflow, dtsec float64) float64 {
	if s.Headroom > 0. {
		return s.Headroom
	}
	a, err := r.Area(r.MaxStage())
	if err != nil || a <= 0. {
		return 1.
	}
	return math.Max(1., 2.*inflow*dtsec/a)
}
