package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGripModifier(t *testing.T) {
	assert.Equal(t, 1.0, GripModifier("dry"))
	assert.Equal(t, 0.95, GripModifier("hot"))
	assert.Equal(t, 0.7, GripModifier("rain"))
	// silent default, mirrors the tire catalog leniency
	assert.Equal(t, 1.0, GripModifier("sandstorm"))
}

func TestPitStopsByLap_LaterEntryWins(t *testing.T) {
	s := RaceStrategy{
		PitStops: []PitStop{
			{Lap: 5, Tire: "hard"},
			{Lap: 12, Tire: "medium"},
			{Lap: 5, Tire: "soft"},
		},
	}
	assert.Equal(t, map[int]string{5: "soft", 12: "medium"}, s.PitStopsByLap())
}

func TestNewVehicleState(t *testing.T) {
	s := NewVehicleState(85, "soft")
	assert.Equal(t, 85.0, s.FuelKg)
	assert.Equal(t, 0.0, s.SpeedMS)
	assert.Equal(t, 4.0, s.BatteryMJ)
	assert.Equal(t, 4.0, s.MaxBatteryMJ)
	assert.Equal(t, 100.0, s.TireLifePct)
	assert.Equal(t, "soft", s.TireCompound)
	assert.Equal(t, 80.0, s.TireTempC)
	assert.Equal(t, 300.0, s.BrakeTempC)
}
