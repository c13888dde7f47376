package model

// VehicleState is the mutable per-run car state. It is a plain value:
// each simulation step takes a state and returns the evolved state, so a
// single state is never shared between concurrent runs.
type VehicleState struct {
	FuelKg       float64
	SpeedMS      float64
	BatteryMJ    float64
	MaxBatteryMJ float64
	TireLifePct  float64 // 0..100
	TireCompound string
	TireTempC    float64
	BrakeTempC   float64
}

// NewVehicleState returns the state of a freshly prepared car.
func NewVehicleState(fuelKg float64, tireCompound string) VehicleState {
	return VehicleState{
		FuelKg:       fuelKg,
		SpeedMS:      0,
		BatteryMJ:    4.0,
		MaxBatteryMJ: 4.0,
		TireLifePct:  100.0,
		TireCompound: tireCompound,
		TireTempC:    80.0,
		BrakeTempC:   300.0,
	}
}
