package goflo

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// Coefficients are a fitted opening's discharge coefficients.
type Coefficients struct {
	Korif, Kweir float64
}

// CoefficientBounds bracket the calibration search space.
type CoefficientBounds struct {
	KorifLo, KorifHi float64
	KweirLo, KweirHi float64
}

// DefaultCoefficientBounds cover the usual range of published orifice and
// broad-crested weir coefficients.
func DefaultCoefficientBounds() CoefficientBounds {
	return CoefficientBounds{KorifLo: 0.4, KorifHi: 1., KweirLo: 2.5, KweirHi: 3.5}
}

// CalibrateOpening fits an opening's discharge coefficients to an
// observed stage record at its upstream node using shuffled complex
// evolution, minimizing the stage RMSE. obs must hold one stage per
// record of the run, the initial state included. The analysis and its
// network are not mutated; each trial routes a copy.
func (a *Analysis) CalibrateOpening(link int, obs []float64, b CoefficientBounds) (Coefficients, float64, error) {
	if link < 0 || link >= len(a.Net.Links) {
		return Coefficients{}, 0., fmt.Errorf("%w: link %d undefined", ErrConfiguration, link)
	}
	op, ok := a.Net.Links[link].(*Opening)
	if !ok {
		return Coefficients{}, 0., fmt.Errorf("%w: link %d is not an opening", ErrConfiguration, link)
	}
	if len(obs) != a.Steps()+1 {
		return Coefficients{}, 0., fmt.Errorf("%w: observed stage record has %d values, run produces %d", ErrConfiguration, len(obs), a.Steps()+1)
	}
	if err := a.Net.Validate(a.Outlet); err != nil {
		return Coefficients{}, 0., err
	}

	toCoef := func(u []float64) Coefficients {
		return Coefficients{
			Korif: mmaths.LinearTransform(b.KorifLo, b.KorifHi, u[0]),
			Kweir: mmaths.LinearTransform(b.KweirLo, b.KweirHi, u[1]),
		}
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	gen := func(u []float64) float64 {
		c := toCoef(u)
		trial := *op
		trial.Korif, trial.Kweir = c.Korif, c.Kweir
		net := Network{Nodes: a.Net.Nodes, Links: make([]Link, len(a.Net.Links))}
		copy(net.Links, a.Net.Links)
		net.Links[link] = &trial
		ta := *a
		ta.Net = &net
		ta.OnStep = nil
		res, err := ta.Run()
		if err != nil {
			return math.MaxFloat64
		}
		if res.ByNode[op.Up].Err != nil {
			return math.MaxFloat64
		}
		sim := res.Stages(op.Up)
		if len(sim) != len(obs) {
			return math.MaxFloat64
		}
		return objfunc.RMSE(obs, sim)
	}

	uFinal, of := glbopt.SCE(runtime.GOMAXPROCS(0), 2, rng, gen, true)
	return toCoef(uFinal), of, nil
}
