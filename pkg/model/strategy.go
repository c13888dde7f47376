package model

//nolint:tagliatelle // wire format of the original API
type PitStop struct {
	Lap  int    `json:"lap"`
	Tire string `json:"tire"`
}

//nolint:tagliatelle // wire format of the original API
type RaceStrategy struct {
	TotalLaps    int       `json:"total_laps"`
	StartingTire string    `json:"starting_tire"`
	StartingFuel float64   `json:"starting_fuel"` // kg
	PitStops     []PitStop `json:"pit_stops"`
}

// PitStopsByLap maps lap number to the new compound. If the same lap is
// listed twice the later entry wins (map semantics, not an error).
func (s RaceStrategy) PitStopsByLap() map[int]string {
	ret := make(map[int]string, len(s.PitStops))
	for _, p := range s.PitStops {
		ret[p.Lap] = p.Tire
	}
	return ret
}
