package goflo

import (
	"fmt"
	"math"

	"github.com/benjiyamin/goflo/dist"
)

// Record is one node's state at the end of a timestep.
type Record struct {
	Time    float64 // [hr]
	Inflow  float64 // step-end inflow: external hydrograph plus upstream discharge [cfs]
	Outflow float64 // step-end discharge through the node's outgoing links [cfs]
	Storage float64 // impounded volume [ft³]
	Stage   float64 // water surface elevation [ft]
}

// Warning records a per-node per-step solver condition that did not abort
// the run: an exhausted iteration budget, a stage pinned at the lowest
// contour, or surcharge above the highest contour.
type Warning struct {
	Node       int
	Step       int
	Time       float64
	Residual   float64 // continuity residual at the accepted estimate [ft³]
	Clamped    bool    // stage held at the lowest contour
	Surcharged bool    // stage above the highest contour
}

// NodeResult is one node's time series. Err is set when a non-finite
// stage or discharge aborted this node's run; Data then holds the steps
// completed, and the rest of the network carries on without it.
type NodeResult struct {
	Node int
	Name string
	Data []Record
	Err  error
}

// Results aggregates a run. Warnings are never silently dropped.
type Results struct {
	Interval float64
	ByNode   []NodeResult
	Warnings []Warning
}

// Stages returns a node's stage column, index 0 holding the initial state.
func (r *Results) Stages(n int) []float64 {
	out := make([]float64, len(r.ByNode[n].Data))
	for i, rec := range r.ByNode[n].Data {
		out[i] = rec.Stage
	}
	return out
}

// Outflows returns a node's outflow column.
func (r *Results) Outflows(n int) []float64 {
	out := make([]float64, len(r.ByNode[n].Data))
	for i, rec := range r.ByNode[n].Data {
		out[i] = rec.Outflow
	}
	return out
}

// Analysis routes every node's stage through time, balancing storage
// change against net structure discharge by the storage-indication
// (modified Puls) method. The network and its links are read-only during
// a run and may be shared across concurrent analyses; all transient state
// is owned here.
type Analysis struct {
	Net      *Network
	Outlet   int        // boundary node whose stage is the tailwater
	TW       *Tailwater // boundary stage, constant or time-varying
	Duration float64    // [hr]
	Interval float64    // fixed timestep [hr]
	Solver   Solver
	// OnStep, when set, is called after each completed timestep.
	OnStep func(step, steps int)
}

// Steps is the number of timesteps in the run.
func (a *Analysis) Steps() int { return int(math.Ceil(a.Duration / a.Interval)) }

type runState struct {
	a      *Analysis
	slv    Solver
	net    *Network
	inflow []*dist.Clamped // external hydrograph evaluators, nil for none
	res    *Results
	dead   []bool
	dtsec  float64
}

func (a *Analysis) prepare() (*runState, error) {
	if a.Interval <= 0. || a.Duration <= 0. {
		return nil, fmt.Errorf("%w: duration and interval must be positive", ErrConfiguration)
	}
	if a.TW == nil {
		return nil, fmt.Errorf("%w: no tailwater boundary", ErrConfiguration)
	}
	if err := a.Net.Validate(a.Outlet); err != nil {
		return nil, err
	}
	nn := len(a.Net.Nodes)
	st := &runState{
		a:      a,
		slv:    a.Solver.withDefaults(),
		net:    a.Net,
		inflow: make([]*dist.Clamped, nn),
		dead:   make([]bool, nn),
		dtsec:  a.Interval * 3600.,
		res: &Results{
			Interval: a.Interval,
			ByNode:   make([]NodeResult, nn),
		},
	}
	tw0 := a.TW.Stage(0.)
	for n := range a.Net.Nodes {
		node := &a.Net.Nodes[n]
		st.res.ByNode[n] = NodeResult{Node: n, Name: node.Name}
		if len(node.Inflow) > 0 {
			d, err := dist.New(node.Inflow)
			if err != nil {
				return nil, fmt.Errorf("%w: node %q inflow hydrograph: %v", ErrConfiguration, node.Name, err)
			}
			ev := d.Clamped()
			st.inflow[n] = &ev
		}
		if n == a.Outlet {
			continue
		}
		stage, storage := tw0, 0.
		if node.Res != nil {
			stage = node.Res.StartStage
			var err error
			if storage, err = node.Res.Storage(stage); err != nil {
				return nil, fmt.Errorf("%w: node %q start stage: %v", ErrConfiguration, node.Name, err)
			}
		}
		st.res.ByNode[n].Data = append(st.res.ByNode[n].Data, Record{Stage: stage, Storage: storage})
	}
	return st, nil
}

func (st *runState) external(n int, t float64) float64 {
	if st.inflow[n] == nil {
		return 0.
	}
	return st.inflow[n].Y(t)
}

// dsStage is the downstream boundary seen by a link this step: the
// tailwater at the outlet, the invert for a farfield receiver, otherwise
// the receiving node's latest recorded stage.
func (st *runState) dsStage(li int, t float64) float64 {
	l := st.net.Links[li]
	_, dn := l.Ends()
	switch dn {
	case st.a.Outlet:
		return st.a.TW.Stage(t)
	case Farfield:
		return l.Invert()
	}
	d := st.res.ByNode[dn].Data
	return d[len(d)-1].Stage
}

// solve advances one node through one step. It returns the node's new
// record, the modelled receiver (Farfield when none) with the discharge
// routed to it, any solver warnings, and a fatal numeric error.
func (st *runState) solve(n, step int, t, qin float64) (rec Record, rcv int, dq float64, warns []Warning, fatal error) {
	node := &st.net.Nodes[n]
	data := st.res.ByNode[n].Data
	prev := data[len(data)-1]

	var ferr error
	outflowAt := func(s float64) float64 {
		q := 0.
		for _, li := range node.out {
			qi, err := st.net.Links[li].Flow(s, st.dsStage(li, t))
			if err != nil && ferr == nil {
				ferr = err
			}
			q += qi
		}
		return q
	}

	var stage, outflow, storage float64
	if node.Res != nil {
		iavg := (prev.Inflow + qin) / 2.
		o1 := prev.Outflow
		f := func(s2 float64) float64 {
			oavg := (o1 + outflowAt(s2)) / 2.
			return node.Res.storageX(s2) - prev.Storage - st.dtsec*(iavg-oavg)
		}
		lo := node.Res.MinStage()
		hi := node.Res.MaxStage() + st.slv.headroom(node.Res, qin, st.dtsec)
		flo, fhi := f(lo), f(hi)
		switch {
		case flo >= 0.: // draining below the lowest contour
			stage = lo
			if flo > st.slv.Tol {
				warns = append(warns, Warning{Node: n, Step: step, Time: t, Residual: flo, Clamped: true})
			}
		case fhi < 0.: // bracket too narrow for the true root
			stage = hi
			warns = append(warns, Warning{Node: n, Step: step, Time: t, Residual: fhi})
		default:
			var ok bool
			stage, ok = bisect(f, lo, hi, st.slv.Tol, st.slv.MaxIter)
			if !ok {
				warns = append(warns, Warning{Node: n, Step: step, Time: t, Residual: f(stage)})
			}
		}
		outflow = outflowAt(stage)
		storage = node.Res.storageX(stage)
		if stage > node.Res.MaxStage()+nearzero {
			warns = append(warns, Warning{Node: n, Step: step, Time: t, Surcharged: true})
		}
	} else {
		// zero-storage junction: algebraic balance, outflow equals
		// inflow exactly; the stage is whatever passes that flow.
		outflow = qin
		lo := math.Inf(1)
		for _, li := range node.out {
			lo = math.Min(lo, st.net.Links[li].Invert())
		}
		if qin <= nearzero {
			stage = lo
		} else {
			g := func(s float64) float64 { return outflowAt(s) - qin }
			hi, ok := bracketUp(g, lo, 60)
			if !ok {
				warns = append(warns, Warning{Node: n, Step: step, Time: t, Residual: g(hi)})
			}
			stage, ok = bisect(g, lo, hi, st.slv.Tol, st.slv.MaxIter)
			if !ok {
				warns = append(warns, Warning{Node: n, Step: step, Time: t, Residual: g(stage)})
			}
		}
	}
	if ferr != nil {
		return rec, Farfield, 0., warns, ferr
	}

	// split the discharge: only the share through links into the
	// modelled receiver routes onward this step.
	rcv = Farfield
	qrcv, qtot := 0., 0.
	for _, li := range node.out {
		l := st.net.Links[li]
		qi, err := l.Flow(stage, st.dsStage(li, t))
		if err != nil {
			return rec, Farfield, 0., warns, err
		}
		qtot += qi
		if _, dn := l.Ends(); dn != st.a.Outlet && dn != Farfield {
			rcv = dn
			qrcv += qi
		}
	}
	dq = qrcv
	if node.Res == nil && qtot > 0. {
		dq = outflow * qrcv / qtot // preserve the exact junction balance
	}

	rec = Record{Time: t, Inflow: qin, Outflow: outflow, Storage: storage, Stage: stage}
	return rec, rcv, dq, warns, nil
}

// Run executes the analysis serially and returns the per-node record
// streams. Configuration errors abort before simulation; per-step numeric
// failures abort only the offending node.
func (a *Analysis) Run() (*Results, error) {
	return a.run(false)
}

func (a *Analysis) run(concurrent bool) (*Results, error) {
	st, err := a.prepare()
	if err != nil {
		return nil, err
	}
	rounds, err := a.Net.Rounds(a.Outlet)
	if err != nil {
		return nil, err
	}
	steps := a.Steps()
	acc := make([]float64, len(a.Net.Nodes))
	for j := 1; j <= steps; j++ {
		t := float64(j) * a.Interval
		for i := range acc {
			acc[i] = 0.
		}
		for _, round := range rounds {
			if concurrent && len(round) > 1 {
				st.stepRound(round, j, t, acc)
				continue
			}
			for _, n := range round {
				if st.dead[n] {
					continue
				}
				rec, rcv, dq, warns, ferr := st.solve(n, j, t, st.external(n, t)+acc[n])
				st.apply(n, rec, rcv, dq, warns, ferr, j, t, acc)
			}
		}
		if a.OnStep != nil {
			a.OnStep(j, steps)
		}
	}
	return st.res, nil
}

func (st *runState) apply(n int, rec Record, rcv int, dq float64, warns []Warning, ferr error, step int, t float64, acc []float64) {
	if ferr != nil {
		st.dead[n] = true
		st.res.ByNode[n].Err = fmt.Errorf("node %q step %d (t=%.4f hr): %w", st.net.Nodes[n].Name, step, t, ferr)
		return
	}
	st.res.ByNode[n].Data = append(st.res.ByNode[n].Data, rec)
	st.res.Warnings = append(st.res.Warnings, warns...)
	if rcv != Farfield {
		acc[rcv] += dq
	}
}
