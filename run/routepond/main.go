package main

import (
	"fmt"
	"log"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"

	goflo "github.com/benjiyamin/goflo"
	"github.com/benjiyamin/goflo/gauge"
	"github.com/benjiyamin/goflo/section"
)

// Routes a wet detention pond's bleed-down through a riser orifice,
// writing the routed pond record to csv.
func main() {

	const (
		outfp      = "routepond.csv"
		duration   = 24.      // [hr]
		interval   = 5. / 60. // [hr]
		startStage = 25.35    // [ft]
		riserInv   = 23.5     // [ft]
		riserDiam  = 3.25     // [in]
		tailwater  = 0.       // [ft]
	)

	fmt.Println("")
	tt := mmio.NewTimer()

	// stage-area contours [ft, ft²]
	pond, err := goflo.NewReservoir([][2]float64{
		{16.0, 0.10 * 43560.},
		{21.5, 0.42 * 43560.},
		{23.5, 0.61 * 43560.},
		{29.8, 1.25 * 43560.},
	})
	if err != nil {
		log.Fatalln(err)
	}
	pond.StartStage = startStage

	var net goflo.Network
	np := net.AddNode("pond")
	no := net.AddNode("outfall")
	net.Nodes[np].Res = pond
	if _, err := net.AddLink(&goflo.Opening{
		Up: np, Dn: no,
		Kind:  goflo.Orifice,
		Inv:   riserInv,
		Korif: 0.6,
		Sect:  &section.Circle{Diameter: riserDiam / 12.},
	}); err != nil {
		log.Fatalln(err)
	}

	a := goflo.Analysis{
		Net:      &net,
		Outlet:   no,
		TW:       goflo.ConstantTailwater(tailwater),
		Duration: duration,
		Interval: interval,
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(a.Steps()).AppendCompleted().PrependElapsed()
	a.OnStep = func(step, steps int) { bar.Incr() }

	res, err := a.Run()
	uiprogress.Stop()
	if err != nil {
		log.Fatalln(err)
	}
	nr := res.ByNode[np]
	if nr.Err != nil {
		log.Fatalln(nr.Err)
	}
	for _, w := range res.Warnings {
		fmt.Printf(" warning: node %d step %d: residual %g\n", w.Node, w.Step, w.Residual)
	}

	if err := gauge.WriteRecords(outfp, nr.Data); err != nil {
		log.Fatalln(err)
	}
	last := nr.Data[len(nr.Data)-1]
	fmt.Printf(" pond stage %0.2f to %0.2f ft over %.0f hr\n", startStage, last.Stage, duration)
	tt.Lap("\nRun complete.")
}
