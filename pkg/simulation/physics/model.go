package physics

import (
	"math"

	"github.com/startrack/startrack-sim-go/pkg/catalog"
	"github.com/startrack/startrack-sim-go/pkg/model"
)

const (
	gravity            = 9.81
	rollingResistCoeff = 0.015
	// tractive force is power/speed; the floor avoids the singularity at rest
	speedFloorMS = 10.0
	// SpeedCapMS is the hard ceiling on straight-line speed.
	SpeedCapMS = 350.0 / 3.6
	// theoretical ceiling returned when the aero term dominates the
	// cornering equation and the algebraic solution would be unbounded
	cornerCeilingMS = 340.0 / 3.6
	// minimum charge required to deploy boost power
	boostMinBatteryMJ = 0.1
)

// TireLookup resolves a compound name to its parameters.
type TireLookup func(name string) model.TireCompound

type Model struct {
	params Params
	tires  TireLookup
}

type Option func(*Model)

func WithParams(p Params) Option {
	return func(m *Model) {
		m.params = p
	}
}

func WithTireLookup(lookup TireLookup) Option {
	return func(m *Model) {
		m.tires = lookup
	}
}

func New(opts ...Option) *Model {
	ret := &Model{
		params: DefaultParams(),
		tires:  catalog.Tire,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (m *Model) Params() Params {
	return m.params
}

func (m *Model) Tire(name string) model.TireCompound {
	return m.tires(name)
}

// Acceleration returns the longitudinal acceleration in m/s² for the given
// state. With deployBoost the electric boost power is added as long as the
// battery holds more than the deploy threshold. The result is clamped at 0:
// braking is handled only by the cornering transition, never here.
func (m *Model) Acceleration(state model.VehicleState, deployBoost bool) float64 {
	powerKW := m.params.BasePowerKW
	if deployBoost && state.BatteryMJ > boostMinBatteryMJ {
		powerKW += m.params.BoostPowerKW
	}

	v := math.Max(state.SpeedMS, speedFloorMS)
	fTract := powerKW * 1000 / v
	fDrag := 0.5 * m.params.AirDensity * m.params.DragCoeff * m.params.FrontalArea *
		state.SpeedMS * state.SpeedMS
	fRoll := (m.params.MassKg + state.FuelKg) * gravity * rollingResistCoeff

	accel := (fTract - fDrag - fRoll) / (m.params.MassKg + state.FuelKg)
	return math.Max(accel, 0)
}

// CorneringSpeed returns the maximum lateral-grip-limited speed in m/s for
// a corner of the given radius. Tire compound, wear and temperature are
// taken from the passed state; gripMod is the weather derating.
//
// The downforce contribution grows with the same v² being solved for, so
// the self-consistent equation v² = μ·m·g / (m/r − μ·½·ρ·Cl·A) is solved
// algebraically, not iteratively. If the denominator is not positive the
// aero term dominates and a fixed theoretical ceiling is returned.
func (m *Model) CorneringSpeed(state model.VehicleState, radius, gripMod float64) float64 {
	if radius <= 0 {
		return cornerCeilingMS
	}
	tire := m.tires(state.TireCompound)

	wearPenalty := math.Max(0.6, state.TireLifePct/100.0)
	tempDiff := math.Abs(state.TireTempC - tire.OptimalTemp)
	tempPenalty := math.Max(0.85, 1.0-(tempDiff/100.0)*0.15)

	mu := tire.Grip * wearPenalty * tempPenalty * 1.6 * gripMod

	mass := m.params.MassKg + state.FuelKg
	numerator := mu * mass * gravity
	denom := mass/radius - mu*0.5*m.params.AirDensity*m.params.DownforceCoeff*m.params.FrontalArea
	if denom <= 0 {
		return cornerCeilingMS
	}
	return math.Sqrt(numerator / denom)
}

// GForce returns the lateral and longitudinal g-forces, rounded to two
// decimals for telemetry reporting.
func (m *Model) GForce(speedMS, radius, accel float64) (lateral, longitudinal float64) {
	if radius > 0 {
		lateral = round2(speedMS * speedMS / (radius * gravity))
	}
	longitudinal = round2(accel / gravity)
	return lateral, longitudinal
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
