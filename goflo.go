// Package goflo performs stormwater hydrology and hydraulics analysis:
// runoff hydrograph synthesis from basin properties and rainfall (see
// subpackage basin), and time-stepped level-pool (modified Puls) flood
// routing through a network of storage nodes connected by hydraulic
// control structures (weirs, orifices, conduits).
//
// US customary units throughout: elevations and depths in feet, areas in
// square feet, flows in cfs, times in hours unless noted.
//
// Networks are dendritic: each node drains through any number of links,
// but every link from a node must share one receiving node, and drainage
// paths may not cycle. Validate rejects anything else.
package goflo

const (
	// Gravity [ft/s²]
	Gravity = 32.2
	// KManning is the US customary Manning conversion coefficient.
	KManning = 1.4859
	// KRational converts in/hr·ac to cfs.
	KRational = 43560. / 12. / 60. / 60.
	// SGWater [lb/ft³]
	SGWater = 62.4

	nearzero = 1e-8

	// internal bisection defaults for the steady (reach) hydraulics;
	// the routing engine exposes its own knobs through Solver.
	bisectTol     = 1e-9
	bisectMaxIter = 100
)
