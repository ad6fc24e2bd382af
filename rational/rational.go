// Package rational performs steady-state rational method design analysis
// over a reach network: contributing areas and times of concentration
// accumulate downstream, peak flows come from an intensity relation, and
// the hydraulic grade line traces back upstream from the boundary stage.
package rational

import (
	"fmt"
	"math"

	goflo "github.com/benjiyamin/goflo"
	"github.com/benjiyamin/goflo/basin"
	"github.com/benjiyamin/goflo/dist"
)

// Intensity maps a storm duration [min] to a rainfall rate [in/hr].
type Intensity interface {
	Rate(durMin float64) float64
}

// Constant is a fixed design intensity [in/hr].
type Constant float64

func (c Constant) Rate(float64) float64 { return float64(c) }

// IDF evaluates a tabulated intensity-duration curve [hr, in/hr],
// clamping beyond the tabulated durations.
type IDF struct {
	ev dist.Clamped
}

func NewIDF(d *dist.Distribution) IDF { return IDF{ev: d.Clamped()} }

func (c IDF) Rate(durMin float64) float64 { return c.ev.Y(durMin / 60.) }

// Row is the design result for one reach.
type Row struct {
	Link    int     // link index in the network
	Area    float64 // accumulated drainage area [ac]
	C       float64 // accumulated runoff coefficient
	TcLocal float64 // controlling inlet time of concentration [min]
	TcTotal float64 // TcLocal plus reach travel time [min]
	Flow    float64 // design flow [cfs]
	HGL1    float64 // hydraulic grade line, upstream end [ft]
	HGL2    float64 // hydraulic grade line, downstream end [ft]
}

// Analysis carries a reach network and its rational method loading.
// Every modelled link must be a Reach.
type Analysis struct {
	Net       *goflo.Network
	Outlet    int
	TW        float64                 // boundary stage, the HGL floor [ft]
	Intensity Intensity               // design rainfall relation
	Basins    map[int]*basin.Rational // inlet basins keyed by node index
}

// Solve accumulates flows downstream then traces the hydraulic grade
// line upstream, returning one row per reach in upstream-first order.
func (a *Analysis) Solve() ([]Row, error) {
	if err := a.Net.Validate(a.Outlet); err != nil {
		return nil, err
	}
	if a.Intensity == nil {
		return nil, fmt.Errorf("%w: no intensity relation set", goflo.ErrConfiguration)
	}
	ord, err := a.Net.Order(a.Outlet)
	if err != nil {
		return nil, err
	}
	ord = append(ord, a.Outlet)

	type ends struct{ up, dn int }
	var rows []Row
	at := make(map[int]ends) // link index to ends, solved links only

	// accumulate area, coefficient and tc top-down
	for _, n := range ord {
		for _, li := range a.Net.Outgoing(n) {
			r, ok := a.Net.Links[li].(*goflo.Reach)
			if !ok {
				return nil, fmt.Errorf("%w: link %d is not a reach", goflo.ErrConfiguration, li)
			}
			area, runoff, tc := 0., 0., 0.
			if b := a.Basins[n]; b != nil {
				area, runoff, tc = b.Area, b.RunoffArea(), b.Tc
			}
			for i := range rows {
				if at[rows[i].Link].dn == n {
					area += rows[i].Area
					runoff += rows[i].Area * rows[i].C
					tc = math.Max(tc, rows[i].TcTotal)
				}
			}
			c := 0.
			if area > 0. {
				c = runoff / area
			}
			flow := a.Intensity.Rate(tc) * c * area * goflo.KRational
			depth, err := r.NormalDepth(flow)
			if err != nil {
				return nil, fmt.Errorf("reach %d: %w", li, err)
			}
			up, dn := r.Ends()
			at[li] = ends{up, dn}
			rows = append(rows, Row{
				Link:    li,
				Area:    area,
				C:       c,
				TcLocal: tc,
				TcTotal: tc + r.SectionTime(depth, flow),
				Flow:    flow,
			})
		}
	}

	// trace the grade line bottom-up
	for i := len(rows) - 1; i >= 0; i-- {
		r := a.Net.Links[rows[i].Link].(*goflo.Reach)
		dn := at[rows[i].Link].dn
		stage2 := a.TW
		for j := i + 1; j < len(rows); j++ { // downstream rows, already traced
			if at[rows[j].Link].up == dn && rows[j].HGL1 > stage2 {
				stage2 = rows[j].HGL1
			}
		}
		h2, err := r.HGL2(stage2, rows[i].Flow)
		if err != nil {
			return nil, fmt.Errorf("reach %d: %w", rows[i].Link, err)
		}
		h1, err := r.HGL1(stage2, rows[i].Flow)
		if err != nil {
			return nil, fmt.Errorf("reach %d: %w", rows[i].Link, err)
		}
		rows[i].HGL1, rows[i].HGL2 = h1, h2
	}
	return rows, nil
}
