// Package strategy provides derived heuristics: apex points for the
// optimal racing line and pit-stop recommendations.
package strategy

import (
	"fmt"
	"math"

	"github.com/startrack/startrack-sim-go/pkg/model"
	"github.com/startrack/startrack-sim-go/pkg/simulation/physics"
)

// corners tighter than this get the late-apex tip; a presentation
// threshold, not a physical cutoff
const lateApexRadiusM = 50.0

type LineCalculator struct {
	phys *physics.Model
}

type LineOption func(*LineCalculator)

func WithPhysics(m *physics.Model) LineOption {
	return func(c *LineCalculator) {
		c.phys = m
	}
}

func NewLineCalculator(opts ...LineOption) *LineCalculator {
	ret := &LineCalculator{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.phys == nil {
		ret.phys = physics.New()
	}
	return ret
}

// Calculate returns one apex point per corner segment, preserving input
// order. The tire state is an explicit parameter so the result does not
// depend on whatever a previous run left behind; speeds use a fixed dry
// grip modifier of 1.0.
func (c *LineCalculator) Calculate(
	segments []model.CircuitSegment,
	state model.VehicleState,
) []model.ApexPoint {
	apexes := make([]model.ApexPoint, 0)
	for idx, seg := range segments {
		if !seg.IsCorner() {
			continue
		}
		apexSpeed := c.phys.CorneringSpeed(state, seg.Radius, 1.0)

		id := seg.ID
		if id == "" {
			id = fmt.Sprintf("seg-%d", idx)
		}
		tip := "Standard apex"
		if seg.Radius < lateApexRadiusM {
			tip = "Late apex"
		}
		apexes = append(apexes, model.ApexPoint{
			SegmentID:        id,
			SegmentIndex:     idx,
			RecommendedSpeed: math.Round(apexSpeed*3.6*10) / 10,
			Radius:           seg.Radius,
			Tip:              tip,
		})
	}
	return apexes
}
