package lap

import (
	"math"

	"github.com/startrack/startrack-sim-go/pkg/model"
	"github.com/startrack/startrack-sim-go/pkg/simulation/physics"
)

const (
	// fixed integration step on straights
	integrationStep = 0.1
	// deploy boost while the battery holds more than this charge
	deployMinBatteryMJ = 0.2
	// battery drain per second while deploying
	deployDrainMJPerS = 0.12
	// share of braking energy harvested into the battery
	harvestRatio = 0.6

	brakeTempCeilingC = 900.0
	brakeTempFloorC   = 300.0
	tireTempCeilingC  = 120.0
	tireTempFloorC    = 70.0

	// substituted when a segment carries no length (lenient input handling)
	defaultSegmentLengthM = 100.0

	cornerWearMultiplier = 1.5
)

// segmentOutcome reports what a single segment contributed to the lap.
type segmentOutcome struct {
	time float64
	gLat float64
	gLon float64
}

// advance evolves the vehicle state across one segment and returns the new
// state together with the segment outcome. Corners apply an instantaneous
// braking transition with energy recovery; straights integrate the
// acceleration model with a fixed step.
func (s *Simulator) advance(
	state model.VehicleState,
	seg model.CircuitSegment,
	tire model.TireCompound,
	gripMod float64,
) (model.VehicleState, segmentOutcome) {
	length := seg.Length
	if length == 0 {
		length = defaultSegmentLengthM
	}

	var out segmentOutcome
	if seg.IsCorner() {
		state, out = s.corner(state, length, seg.Radius, tire, gripMod)
	} else {
		state, out = s.straight(state, length, tire)
	}

	state.FuelKg = math.Max(0, state.FuelKg-s.phys.Params().FuelPerKm*(length/1000.0))
	return state, out
}

func (s *Simulator) corner(
	state model.VehicleState,
	length, radius float64,
	tire model.TireCompound,
	gripMod float64,
) (model.VehicleState, segmentOutcome) {
	target := s.phys.CorneringSpeed(state, radius, gripMod)

	if state.SpeedMS > target {
		// braking: part of the kinetic energy is harvested, the rest heats
		// the brakes
		mass := s.phys.Params().MassKg + state.FuelKg
		keDiff := 0.5 * mass * (state.SpeedMS*state.SpeedMS - target*target)
		if keDiff > 0 {
			recovered := keDiff * harvestRatio
			state.BatteryMJ = math.Min(state.MaxBatteryMJ, state.BatteryMJ+recovered/1e6)
			state.BrakeTempC = math.Min(brakeTempCeilingC, state.BrakeTempC+keDiff/50000)
		}
		state.SpeedMS = target
	}

	dt := length / math.Max(state.SpeedMS, 10.0)

	wear := tire.WearRate * (length / 1000.0) * cornerWearMultiplier
	state.TireLifePct = math.Max(0, state.TireLifePct-wear)
	state.TireTempC = math.Min(tireTempCeilingC, state.TireTempC+dt*2)

	gLat, gLon := s.phys.GForce(state.SpeedMS, radius, 0)
	return state, segmentOutcome{time: dt, gLat: gLat, gLon: gLon}
}

func (s *Simulator) straight(
	state model.VehicleState,
	length float64,
	tire model.TireCompound,
) (model.VehicleState, segmentOutcome) {
	// deployment is sticky: once the battery is drained it stays off for
	// the rest of the segment
	deploy := state.BatteryMJ > deployMinBatteryMJ

	pos := 0.0
	elapsed := 0.0
	accel := 0.0
	for pos < length {
		accel = s.phys.Acceleration(state, deploy)
		state.SpeedMS += accel * integrationStep
		if state.SpeedMS > physics.SpeedCapMS {
			state.SpeedMS = physics.SpeedCapMS
		}
		pos += state.SpeedMS * integrationStep
		elapsed += integrationStep

		if deploy {
			state.BatteryMJ = math.Max(0, state.BatteryMJ-deployDrainMJPerS*integrationStep)
			if state.BatteryMJ <= 0 {
				deploy = false
			}
		}
	}

	wear := tire.WearRate * (length / 1000.0)
	state.TireLifePct = math.Max(0, state.TireLifePct-wear)
	state.BrakeTempC = math.Max(brakeTempFloorC, state.BrakeTempC-elapsed*5)
	state.TireTempC = math.Max(tireTempFloorC, state.TireTempC-elapsed*0.5)

	gLat, gLon := s.phys.GForce(state.SpeedMS, 0, accel)
	return state, segmentOutcome{time: elapsed, gLat: gLat, gLon: gLon}
}
