// Package gauge compares routed results against observed records and
// reads/writes hydrograph and record CSV files.
package gauge

import (
	"fmt"

	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"

	goflo "github.com/benjiyamin/goflo"
)

// Fit summarizes the agreement between an observed and a simulated
// series.
type Fit struct {
	NSE, KGE, RMSE, Bias float64
}

// Evaluate computes fit statistics for paired series.
func Evaluate(obs, sim []float64) (Fit, error) {
	if len(obs) != len(sim) {
		return Fit{}, fmt.Errorf("gauge: series lengths differ (%d and %d)", len(obs), len(sim))
	}
	if len(obs) == 0 {
		return Fit{}, fmt.Errorf("gauge: empty series")
	}
	return Fit{
		NSE:  objfunc.NSE(obs, sim),
		KGE:  objfunc.KGE(obs, sim),
		RMSE: objfunc.RMSE(obs, sim),
		Bias: objfunc.Bias(obs, sim),
	}, nil
}

// ReadHydrograph loads (time,flow) pairs from a headed csv file.
func ReadHydrograph(fp string) ([][2]float64, error) {
	dat, err := mmio.ReadCSV(fp, 1)
	if err != nil {
		return nil, fmt.Errorf("gauge: %s: %w", fp, err)
	}
	out := make([][2]float64, 0, len(dat))
	for i, ln := range dat {
		if len(ln) < 2 {
			return nil, fmt.Errorf("gauge: %s line %d: need time,flow", fp, i+2)
		}
		out = append(out, [2]float64{ln[0], ln[1]})
	}
	return out, nil
}

// WriteHydrograph saves (time,flow) pairs to a headed csv file.
func WriteHydrograph(fp string, hyd [][2]float64) error {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	if err := csvw.WriteHead("time,flow"); err != nil {
		return fmt.Errorf("gauge: %s: %w", fp, err)
	}
	for _, p := range hyd {
		csvw.WriteLine(p[0], p[1])
	}
	return nil
}

// WriteRecords saves a node's routed record to a headed csv file.
func WriteRecords(fp string, recs []goflo.Record) error {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	if err := csvw.WriteHead("time,inflow,outflow,storage,stage"); err != nil {
		return fmt.Errorf("gauge: %s: %w", fp, err)
	}
	for _, r := range recs {
		csvw.WriteLine(r.Time, r.Inflow, r.Outflow, r.Storage, r.Stage)
	}
	return nil
}
