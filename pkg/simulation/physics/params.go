// Package physics implements the longitudinal and lateral vehicle models:
// tractive acceleration with optional energy-recovery boost, grip-limited
// cornering speed with a closed-form downforce term, and g-force reporting.
package physics

// Params holds the fixed vehicle and environment parameters of a run.
type Params struct {
	MassKg         float64 // minimum weight, without fuel
	BasePowerKW    float64 // ICE power
	BoostPowerKW   float64 // MGU-K limit
	DragCoeff      float64
	DownforceCoeff float64
	FrontalArea    float64 // m²
	AirDensity     float64 // kg/m³
	FuelPerKm      float64 // kg consumed per km
	PitStopTime    float64 // seconds for tire change
	PitLaneTime    float64 // seconds pit lane transit
}

// DefaultParams returns the baseline open-wheel car parameters.
func DefaultParams() Params {
	return Params{
		MassKg:         798,
		BasePowerKW:    740 * 0.7457, // 740 hp ICE
		BoostPowerKW:   120,
		DragCoeff:      1.0,
		DownforceCoeff: 3.5,
		FrontalArea:    1.6,
		AirDensity:     1.225,
		FuelPerKm:      2.0,
		PitStopTime:    2.5,
		PitLaneTime:    18.0,
	}
}
