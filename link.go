package goflo

// Link is a directed hydraulic connection between two arena node indices.
// Flow is signed: positive downstream (up → dn).
type Link interface {
	// Flow is the discharge [cfs] through the link for an upstream and
	// downstream stage [ft].
	Flow(stage1, stage2 float64) (float64, error)
	// Ends returns the upstream and downstream node indices; downstream
	// may be Farfield.
	Ends() (up, dn int)
	// Invert is the downstream control elevation assumed for free
	// discharge when the receiver is unmodelled.
	Invert() float64
}
