package goflo

import (
	"fmt"
	"math"

	"github.com/benjiyamin/goflo/section"
)

// Reach is a sloped conduit or channel between two nodes with
// Manning-based hydraulics. Its section must carry a Manning roughness.
type Reach struct {
	Up, Dn           int
	Invert1, Invert2 float64 // bottom elevations at the upstream and downstream ends [ft]
	Length           float64 // end-to-end distance [ft]
	Sect             section.Section
	KMinor           float64 // optional minor loss coefficient
}

func (r *Reach) Ends() (int, int) { return r.Up, r.Dn }
func (r *Reach) Invert() float64  { return r.Invert2 }

func (r *Reach) Drop() float64      { return r.Invert1 - r.Invert2 }
func (r *Reach) LongSlope() float64 { return r.Drop() / r.Length }

// Velocity of a partial flow section at a depth from the invert [ft/s].
func (r *Reach) Velocity(depth float64) float64 {
	rh := section.HydRadius(r.Sect, depth)
	return KManning * math.Pow(rh, 2./3.) * math.Sqrt(r.LongSlope()) / r.Sect.N()
}

// NormalFlow at a depth from the invert [cfs].
func (r *Reach) NormalFlow(depth float64) float64 {
	return r.Sect.FlowArea(depth) * r.Velocity(depth)
}

// FroudeNumber compares a velocity against the critical condition.
func (r *Reach) FroudeNumber(velocity float64) float64 {
	return velocity / math.Sqrt(Gravity*r.Length)
}

// ShearStress along the lining [lb/ft²]; maximum uses the full depth in
// place of the hydraulic radius.
func (r *Reach) ShearStress(depth float64, maximum bool) float64 {
	b := section.HydRadius(r.Sect, depth)
	if maximum {
		b = depth
	}
	return SGWater * b * r.LongSlope()
}

func (r *Reach) criticalAccuracy(depth, flow float64) float64 {
	af := r.Sect.FlowArea(depth)
	ws := r.Sect.SurfaceWidth(depth)
	return Gravity*af*af*af - ws*flow*flow
}

// CriticalDepth goal-seeks the depth where flow passes through critical.
func (r *Reach) CriticalDepth(flow float64) (float64, error) {
	ub := r.Sect.Rise()
	if ub <= 0. {
		found := false
		for i := 1; i < 100; i++ {
			if r.criticalAccuracy(float64(i), flow) > 1. {
				ub, found = float64(i), true
				break
			}
		}
		if !found {
			return 0., fmt.Errorf("%w: no upper bound for critical depth at %.3f cfs", ErrNotConverged, flow)
		}
	}
	d, _ := bisect(func(d float64) float64 { return r.criticalAccuracy(d, flow) }, 1e-12, ub, bisectTol, bisectMaxIter)
	return d, nil
}

// CriticalVelocity at critical depth [ft/s].
func (r *Reach) CriticalVelocity(flow float64) (float64, error) {
	dc, err := r.CriticalDepth(flow)
	if err != nil {
		return 0., err
	}
	return math.Sqrt(Gravity * dc), nil
}

// CriticalSlope sustaining critical flow [ft/ft].
func (r *Reach) CriticalSlope(flow float64) (float64, error) {
	dc, err := r.CriticalDepth(flow)
	if err != nil {
		return 0., err
	}
	vc := math.Sqrt(Gravity * dc)
	rh := section.HydRadius(r.Sect, dc)
	a := vc * r.Sect.N()
	b := KManning * math.Pow(rh, 2./3.)
	return a * a / (b * b), nil
}

// FrictionSlope of the water surface profile at a depth and flow [ft/ft].
func (r *Reach) FrictionSlope(depth, flow float64) float64 {
	af := r.Sect.FlowArea(depth)
	if af <= 0. {
		return 0.
	}
	vel := flow / af
	rh := section.HydRadius(r.Sect, depth)
	a := vel * vel * r.Sect.N() * r.Sect.N()
	b := KManning * KManning * math.Pow(rh, 4./3.)
	return math.Max(a/b, 0.)
}

// FrictionLoss over the reach length [ft].
func (r *Reach) FrictionLoss(depth, flow float64) float64 {
	return r.Length * r.FrictionSlope(depth, flow)
}

// MinorLoss from the optional minor loss coefficient [ft].
func (r *Reach) MinorLoss(depth, flow float64) float64 {
	if r.KMinor == 0. {
		return 0.
	}
	af := r.Sect.FlowArea(depth)
	if af <= 0. {
		return 0.
	}
	vel := flow / af
	return r.KMinor * vel * vel / 2. / Gravity
}

// VelocityLoss is the velocity head at a depth and flow [ft].
func (r *Reach) VelocityLoss(depth, flow float64) float64 {
	af := r.Sect.FlowArea(depth)
	if af <= 0. {
		return 0.
	}
	vel := flow / af
	return vel * vel / 2. / Gravity
}

// SectionTime is the end-to-end travel time [min].
func (r *Reach) SectionTime(depth, flow float64) float64 {
	af := r.Sect.FlowArea(depth)
	if af <= 0. || flow <= 0. {
		return 0.
	}
	return r.Length / (flow / af) / 60.
}

// NormalDepth goal-seeks the uniform-flow depth passing the given flow;
// a full closed section caps at its rise.
func (r *Reach) NormalDepth(flow float64) (float64, error) {
	scale := 1.
	if rise := r.Sect.Rise(); rise > 0. {
		if qf := r.NormalFlow(rise); qf > 0. && flow/qf >= 1. {
			return rise, nil
		}
		scale = rise
	}
	for i := 1; i < 100; i++ {
		dt := float64(i) * scale
		if r.NormalFlow(dt)-flow > 0. {
			d, _ := bisect(func(d float64) float64 { return r.NormalFlow(d) - flow }, 1e-12, dt, bisectTol, bisectMaxIter)
			return d, nil
		}
	}
	return 0., fmt.Errorf("%w: no upper bound for normal depth at %.3f cfs", ErrNotConverged, flow)
}

func (r *Reach) energy1(depth, flow float64) float64 {
	return r.Invert1 + depth + r.VelocityLoss(depth, flow)
}

func (r *Reach) energy2(depth, stage2, flow float64) float64 {
	y2 := stage2 - r.Invert2
	hv := r.VelocityLoss(y2, flow)
	hf := (r.FrictionLoss(depth, flow) + r.FrictionLoss(y2, flow)) / 2.
	hm := (r.MinorLoss(depth, flow) + r.MinorLoss(y2, flow)) / 2.
	return r.Invert2 + y2 + hv + hf + hm
}

func (r *Reach) stage1Accuracy(stage1, stage2, flow float64) float64 {
	depth := stage1 - r.Invert1
	return r.energy1(depth, flow) - r.energy2(depth, stage2, flow)
}

// Stage1 goal-seeks the upstream stage balancing energy across the reach
// for a downstream hydraulic elevation and flow.
func (r *Reach) Stage1(stage2, flow float64) (float64, error) {
	dc, err := r.CriticalDepth(flow)
	if err != nil {
		return 0., err
	}
	ba := r.Invert1 + 1e-12
	bb := r.Invert1 + dc
	bc, found := 0., false
	for i := 1; i < 100; i++ {
		dt := float64(i)
		if rise := r.Sect.Rise(); rise > 0. {
			dt *= rise
		}
		hw := r.Invert1 + dt
		if r.stage1Accuracy(hw, stage2, flow) > 1. {
			bc, found = hw, true
			break
		}
	}
	if !found {
		return 0., fmt.Errorf("%w: no upper bound for upstream stage at %.3f cfs", ErrNotConverged, flow)
	}
	f := func(hw float64) float64 { return r.stage1Accuracy(hw, stage2, flow) }
	b1, b2 := [2]float64{ba, bb}, [2]float64{bb, bc}
	if stage2-r.Invert2 >= dc { // downstream control
		b1, b2 = b2, b1
	}
	if f(b1[0])*f(b1[1]) <= 0. {
		hw, _ := bisect(f, b1[0], b1[1], bisectTol, bisectMaxIter)
		return hw, nil
	}
	hw, _ := bisect(f, b2[0], b2[1], bisectTol, bisectMaxIter)
	return hw, nil
}

// HGL2 is the controlling hydraulic elevation at the downstream end.
func (r *Reach) HGL2(stage2, flow float64) (float64, error) {
	dn, err := r.NormalDepth(flow)
	if err != nil {
		return 0., err
	}
	return math.Max(stage2, r.Invert2+dn), nil
}

// HGL1 is the controlling hydraulic elevation at the upstream end.
func (r *Reach) HGL1(stage2, flow float64) (float64, error) {
	lower, err := r.HGL2(stage2, flow)
	if err != nil {
		return 0., err
	}
	dn, err := r.NormalDepth(flow)
	if err != nil {
		return 0., err
	}
	s1, err := r.Stage1(lower, flow)
	if err != nil {
		return 0., err
	}
	return math.Max(r.Invert1+dn, s1), nil
}

func (r *Reach) flowAccuracy(flow, stage1, stage2 float64) float64 {
	depth := stage1 - r.Invert1
	return r.energy1(depth, flow) - r.energy2(depth, stage2, flow)
}

// Flow goal-seeks the discharge balancing energy between the two stages.
// The energy residual falls monotonically with discharge, so the upper
// bound doubles from a full-section normal flow until it overshoots.
// Reverse gradients pass nothing.
func (r *Reach) Flow(stage1, stage2 float64) (float64, error) {
	if stage1-stage2 <= nearzero {
		return 0., nil
	}
	f := func(q float64) float64 { return r.flowAccuracy(q, stage1, stage2) }
	qt := r.NormalFlow(math.Max(r.Sect.Rise(), stage1-r.Invert1))
	if qt <= 0. {
		qt = 1.
	}
	for i := 0; i < 60; i++ {
		if f(qt) < 0. {
			q, _ := bisect(f, 1e-12, qt, bisectTol, bisectMaxIter)
			if math.IsNaN(q) || math.IsInf(q, 0) {
				return q, fmt.Errorf("%w: reach %d→%d at stages %.4f/%.4f", ErrNumericOverflow, r.Up, r.Dn, stage1, stage2)
			}
			return q, nil
		}
		qt *= 2.
	}
	return 0., fmt.Errorf("%w: no upper bound for reach flow between stages %.4f/%.4f", ErrNotConverged, stage1, stage2)
}
