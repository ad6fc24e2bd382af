// Package basin generates runoff hydrographs from delineated watershed
// areas. Two methods are provided: the NRCS (SCS) curve-number unit
// hydrograph procedure (SCS) and the rational method (Rational). Both
// produce time-flow pairs [hr, cfs] suitable as external node inflows.
package basin

import (
	"github.com/benjiyamin/goflo/dist"
)

// uh484 is the NRCS dimensionless unit hydrograph, tabulated as
// (t/Tp, q/qp) for the standard peak rate factor of 484.
var uh484 = [][2]float64{
	{0.0, 0.000}, {0.1, 0.030}, {0.2, 0.100}, {0.3, 0.190}, {0.4, 0.310},
	{0.5, 0.470}, {0.6, 0.660}, {0.7, 0.820}, {0.8, 0.930}, {0.9, 0.990},
	{1.0, 1.000}, {1.1, 0.990}, {1.2, 0.930}, {1.3, 0.860}, {1.4, 0.780},
	{1.5, 0.680}, {1.6, 0.560}, {1.7, 0.460}, {1.8, 0.390}, {1.9, 0.330},
	{2.0, 0.280}, {2.2, 0.207}, {2.4, 0.147}, {2.6, 0.107}, {2.8, 0.077},
	{3.0, 0.055}, {3.2, 0.040}, {3.4, 0.029}, {3.6, 0.021}, {3.8, 0.015},
	{4.0, 0.011}, {4.5, 0.005}, {5.0, 0.000},
}

// UH484 returns the standard NRCS dimensionless unit hydrograph shape,
// for use as an SCS RunoffDist with PeakFactor 484.
func UH484() *dist.Distribution {
	d, err := dist.New(uh484)
	if err != nil {
		panic(err) // table is fixed
	}
	return d
}
