// Package lap advances a vehicle state across an ordered segment list,
// producing per-segment telemetry and sector/lap times.
package lap

import (
	"math"

	"github.com/startrack/startrack-sim-go/pkg/model"
	"github.com/startrack/startrack-sim-go/pkg/simulation/physics"
)

type Simulator struct {
	phys *physics.Model
}

type Option func(*Simulator)

func WithPhysics(m *physics.Model) Option {
	return func(s *Simulator) {
		s.phys = m
	}
}

func New(opts ...Option) *Simulator {
	ret := &Simulator{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.phys == nil {
		ret.phys = physics.New()
	}
	return ret
}

func (s *Simulator) Physics() *physics.Model {
	return s.phys
}

// Run simulates one lap on the given compound and weather. The passed state
// is a value; the evolved state is returned alongside the lap result so
// concurrent runs never share mutable data.
func (s *Simulator) Run(
	state model.VehicleState,
	segments []model.CircuitSegment,
	compound string,
	weather string,
	lapNumber int,
) (model.VehicleState, model.LapResult) {
	gripMod := model.GripModifier(weather)
	tire := s.phys.Tire(compound)
	state.TireCompound = compound

	totalTime := 0.0
	sectorTimes := make([]float64, 3)
	telemetry := make([]model.TelemetryPoint, 0, len(segments))
	cumDist := 0.0

	for idx, seg := range segments {
		// ordinal partition into three sectors; an approximation of the
		// distance-based split real timing lines would use
		sector := idx * 3 / len(segments)
		if sector > 2 {
			sector = 2
		}

		var out segmentOutcome
		state, out = s.advance(state, seg, tire, gripMod)

		totalTime += out.time
		sectorTimes[sector] += out.time
		cumDist += seg.Length

		telemetry = append(telemetry, model.TelemetryPoint{
			Time:          round3(totalTime),
			Dist:          cumDist,
			Speed:         round1(state.SpeedMS * 3.6),
			Battery:       round2(state.BatteryMJ),
			TireLife:      round1(state.TireLifePct),
			TireTemp:      round1(state.TireTempC),
			BrakeTemp:     round1(state.BrakeTempC),
			Fuel:          round2(state.FuelKg),
			GLateral:      out.gLat,
			GLongitudinal: out.gLon,
			SegmentKind:   kindOf(seg),
			Sector:        sector + 1,
		})
	}

	return state, model.LapResult{
		LapNumber: lapNumber,
		LapTime:   round3(totalTime),
		SectorTimes: []float64{
			round3(sectorTimes[0]),
			round3(sectorTimes[1]),
			round3(sectorTimes[2]),
		},
		Telemetry:     telemetry,
		FinalTireLife: round1(state.TireLifePct),
		FinalFuel:     round2(state.FuelKg),
		FinalBattery:  round2(state.BatteryMJ),
	}
}

// the reported kind follows the radius, not the declared type
func kindOf(seg model.CircuitSegment) model.SegmentKind {
	if seg.IsCorner() {
		return model.SegmentCorner
	}
	return model.SegmentStraight
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
