package goflo

import "sync"

// RunConcurrent executes the analysis solving independent nodes of each
// drainage round in parallel within a timestep. Results are identical to
// Run: nodes in a round share no drainage path, read only stages settled
// in earlier rounds, and their routed discharges are applied after the
// round joins.
func (a *Analysis) RunConcurrent() (*Results, error) {
	return a.run(true)
}

type roundOut struct {
	rec   Record
	rcv   int
	dq    float64
	warns []Warning
	err   error
}

func (st *runState) stepRound(round []int, step int, t float64, acc []float64) {
	out := make([]roundOut, len(round))
	var wg sync.WaitGroup
	for i, n := range round {
		if st.dead[n] {
			out[i].rcv = Farfield
			continue
		}
		wg.Add(1)
		go func(i, n int) {
			defer wg.Done()
			rec, rcv, dq, warns, ferr := st.solve(n, step, t, st.external(n, t)+acc[n])
			out[i] = roundOut{rec: rec, rcv: rcv, dq: dq, warns: warns, err: ferr}
		}(i, n)
	}
	wg.Wait()
	for i, n := range round {
		if st.dead[n] {
			continue
		}
		st.apply(n, out[i].rec, out[i].rcv, out[i].dq, out[i].warns, out[i].err, step, t, acc)
	}
}
