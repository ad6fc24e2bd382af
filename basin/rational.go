package basin

import (
	"fmt"

	goflo "github.com/benjiyamin/goflo"
	"github.com/benjiyamin/goflo/dist"
)

// Rational is a watershed parameterized for the rational method.
type Rational struct {
	Tc   float64 // time of concentration [min]
	Area float64 // drainage area [ac]
	C    float64 // runoff coefficient, 0 to 1
}

// RunoffArea is the effective contributing area C·A [ac].
func (b *Rational) RunoffArea() float64 { return b.Area * b.C }

// AddShapes merges (area [ac], C) subareas into the basin, growing Area
// and area-weighting C.
func (b *Rational) AddShapes(shapes [][2]float64) {
	aShp, cShp := 0., 0.
	for _, s := range shapes {
		aShp += s[0]
		cShp += s[0] * s[1]
	}
	if aShp <= 0. {
		return
	}
	cShp /= aShp
	aTot := b.Area + aShp
	b.C = (b.Area*b.C + aShp*cShp) / aTot
	b.Area = aTot
}

// FloodHydrograph converts a cumulative rainfall table [hr, in] to
// time-flow pairs [hr, cfs] at the given interval, taking the rainfall
// intensity as the running average depth over elapsed time.
func (b *Rational) FloodHydrograph(rainDist [][2]float64, interval float64) ([][2]float64, error) {
	d, err := dist.New(rainDist)
	if err != nil {
		return nil, fmt.Errorf("basin: rainfall table: %w", err)
	}
	rs, err := d.Resample(interval)
	if err != nil {
		return nil, err
	}
	out := make([][2]float64, 0, rs.Len())
	for _, p := range rs.Pairs() {
		t, rainfall := p[0], p[1]
		if t <= 0. {
			out = append(out, [2]float64{t, 0.})
			continue
		}
		intensity := rainfall / t
		flow := intensity * b.RunoffArea() * goflo.KRational
		out = append(out, [2]float64{t, flow})
	}
	return out, nil
}
