package goflo

import (
	"fmt"

	"github.com/benjiyamin/goflo/dist"
)

// Tailwater is the downstream boundary stage imposed on the outlet,
// constant or time-varying, never solved by the engine. Times outside a
// time-varying table clamp to the nearest tabulated stage.
type Tailwater struct {
	c  float64
	ev *dist.Clamped
}

// ConstantTailwater fixes the boundary at a single stage.
func ConstantTailwater(stage float64) *Tailwater {
	return &Tailwater{c: stage}
}

// NewTailwater builds a time-varying boundary from (hr, ft) pairs.
func NewTailwater(timeStages [][2]float64) (*Tailwater, error) {
	if len(timeStages) > 0 && timeStages[0][0] < 0. {
		return nil, fmt.Errorf("%w: tailwater times must not be negative", ErrConfiguration)
	}
	d, err := dist.New(timeStages)
	if err != nil {
		return nil, fmt.Errorf("%w: tailwater table: %v", ErrConfiguration, err)
	}
	ev := d.Clamped()
	return &Tailwater{ev: &ev}, nil
}

// Stage at a time [hr].
func (tw *Tailwater) Stage(t float64) float64 {
	if tw.ev == nil {
		return tw.c
	}
	return tw.ev.Y(t)
}
