package goflo

import "fmt"

// Reservoir is a node's stage-storage relationship built from
// (elevation, surface area) contour pairs. Cumulative volumes between
// successive contours are cached at construction by trapezoidal
// integration, giving a monotone, invertible elevation→storage mapping.
type Reservoir struct {
	StartStage float64 // initial water surface elevation [ft]
	// AllowExtrapolation permits area/storage evaluation above the
	// highest contour by extending the last contour-to-contour area
	// gradient; off by default since surcharge beyond defined geometry
	// is a modelling gap.
	AllowExtrapolation bool

	contours [][2]float64 // (elevation ft, area ft²), strictly increasing elevation
	vols     []float64    // cumulative storage at each contour [ft³]
}

// NewReservoir validates contours and caches cumulative volumes. The
// start stage defaults to the lowest contour elevation.
func NewReservoir(contours [][2]float64) (*Reservoir, error) {
	if len(contours) < 2 {
		return nil, fmt.Errorf("%w: reservoir needs at least 2 contours, have %d", ErrConfiguration, len(contours))
	}
	for i, c := range contours {
		if c[1] < 0. {
			return nil, fmt.Errorf("%w: reservoir contour %d has negative area", ErrConfiguration, i)
		}
		if i > 0 && c[0] <= contours[i-1][0] {
			return nil, fmt.Errorf("%w: reservoir contour elevations not strictly increasing at index %d", ErrConfiguration, i)
		}
	}
	cp := make([][2]float64, len(contours))
	copy(cp, contours)
	vols := make([]float64, len(cp))
	for i := 1; i < len(cp); i++ {
		vols[i] = vols[i-1] + (cp[i][1]+cp[i-1][1])/2.*(cp[i][0]-cp[i-1][0])
	}
	return &Reservoir{
		StartStage: cp[0][0],
		contours:   cp,
		vols:       vols,
	}, nil
}

// MinStage is the lowest contour elevation.
func (r *Reservoir) MinStage() float64 { return r.contours[0][0] }

// MaxStage is the highest contour elevation.
func (r *Reservoir) MaxStage() float64 { return r.contours[len(r.contours)-1][0] }

// Area interpolates the surface area at a stage. Above the highest
// contour the area gradient of the last pair extends when extrapolation
// is allowed.
func (r *Reservoir) Area(stage float64) (float64, error) {
	n := len(r.contours)
	if stage < r.MinStage() {
		return 0., fmt.Errorf("%w: stage %.4f below lowest contour %.4f", ErrOutOfRange, stage, r.MinStage())
	}
	if stage > r.MaxStage() {
		if !r.AllowExtrapolation {
			return 0., fmt.Errorf("%w: stage %.4f above highest contour %.4f", ErrOutOfRange, stage, r.MaxStage())
		}
		c0, c1 := r.contours[n-2], r.contours[n-1]
		grad := (c1[1] - c0[1]) / (c1[0] - c0[0])
		return c1[1] + grad*(stage-c1[0]), nil
	}
	for i := 1; i < n; i++ {
		if stage <= r.contours[i][0] {
			c0, c1 := r.contours[i-1], r.contours[i]
			f := (stage - c0[0]) / (c1[0] - c0[0])
			return c0[1] + f*(c1[1]-c0[1]), nil
		}
	}
	return r.contours[n-1][1], nil
}

// Storage is the impounded volume at a stage [ft³]; stages at or below
// the lowest contour hold nothing.
func (r *Reservoir) Storage(stage float64) (float64, error) {
	if stage <= r.MinStage() {
		return 0., nil
	}
	n := len(r.contours)
	if stage > r.MaxStage() && !r.AllowExtrapolation {
		return 0., fmt.Errorf("%w: stage %.4f above highest contour %.4f", ErrOutOfRange, stage, r.MaxStage())
	}
	i := n - 1
	for j := 1; j < n; j++ {
		if stage <= r.contours[j][0] {
			i = j - 1
			break
		}
	}
	a, err := r.Area(stage)
	if err != nil {
		return 0., err
	}
	c := r.contours[i]
	return r.vols[i] + (a+c[1])/2.*(stage-c[0]), nil
}

// storageX evaluates storage with extrapolation forced on; the routing
// engine searches above the top contour and reports surcharge as a
// warning rather than failing mid-run.
func (r *Reservoir) storageX(stage float64) float64 {
	if r.AllowExtrapolation {
		v, _ := r.Storage(stage)
		return v
	}
	rx := *r
	rx.AllowExtrapolation = true
	v, _ := rx.Storage(stage)
	return v
}

// Stage goal-seeks the elevation impounding a volume, the inverse of
// Storage, by bisection over the contour bounds.
func (r *Reservoir) Stage(storage float64) (float64, error) {
	if storage <= 0. {
		return r.MinStage(), nil
	}
	top := r.vols[len(r.vols)-1]
	ub := r.MaxStage()
	if storage > top {
		if !r.AllowExtrapolation {
			return 0., fmt.Errorf("%w: storage %.1f above highest contour volume %.1f", ErrOutOfRange, storage, top)
		}
		f := func(s float64) float64 {
			v, _ := r.Storage(s)
			return v - storage
		}
		var ok bool
		if ub, ok = bracketUp(f, r.MaxStage(), 60); !ok {
			return 0., fmt.Errorf("%w: no stage bound for storage %.1f", ErrNotConverged, storage)
		}
	}
	s, _ := bisect(func(s float64) float64 {
		v, _ := r.Storage(s)
		return v - storage
	}, r.MinStage(), ub, bisectTol, bisectMaxIter)
	return s, nil
}
