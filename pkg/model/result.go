package model

// TelemetryPoint is emitted once per segment (not per integration step).
//
//nolint:tagliatelle // wire format of the original API
type TelemetryPoint struct {
	Time          float64     `json:"time"`  // seconds since lap start
	Dist          float64     `json:"dist"`  // cumulative meters since lap start
	Speed         float64     `json:"speed"` // km/h
	Battery       float64     `json:"battery"`
	TireLife      float64     `json:"tire_life"`
	TireTemp      float64     `json:"tire_temp"`
	BrakeTemp     float64     `json:"brake_temp"`
	Fuel          float64     `json:"fuel"`
	GLateral      float64     `json:"g_lateral"`
	GLongitudinal float64     `json:"g_longitudinal"`
	SegmentKind   SegmentKind `json:"segment_type"`
	Sector        int         `json:"sector"` // 1..3
}

//nolint:tagliatelle // wire format of the original API
type LapResult struct {
	LapNumber     int              `json:"lap_number"`
	LapTime       float64          `json:"lap_time"`
	SectorTimes   []float64        `json:"sector_times"`
	Telemetry     []TelemetryPoint `json:"telemetry"`
	FinalTireLife float64          `json:"final_tire_life"`
	FinalFuel     float64          `json:"final_fuel"`
	FinalBattery  float64          `json:"final_battery"`
}

// RaceLapResult is one lap entry of a race run; lap_time includes any
// pit penalty while pure_lap_time does not.
//
//nolint:tagliatelle // wire format of the original API
type RaceLapResult struct {
	LapNumber      int              `json:"lap_number"`
	LapTime        float64          `json:"lap_time"`
	PureLapTime    float64          `json:"pure_lap_time"`
	PitStop        bool             `json:"pit_stop"`
	PitTime        float64          `json:"pit_time"`
	CumulativeTime float64          `json:"cumulative_time"`
	TireCompound   string           `json:"tire_compound"`
	TireLife       float64          `json:"tire_life"`
	Fuel           float64          `json:"fuel"`
	SectorTimes    []float64        `json:"sector_times"`
	Telemetry      []TelemetryPoint `json:"telemetry"`
}

//nolint:tagliatelle // wire format of the original API
type ApexPoint struct {
	SegmentID        string  `json:"segment_id"`
	SegmentIndex     int     `json:"segment_index"`
	RecommendedSpeed float64 `json:"recommended_speed"` // km/h
	Radius           float64 `json:"radius"`
	Tip              string  `json:"tip"`
}

//nolint:tagliatelle // wire format of the original API
type StrategyRecommendation struct {
	Recommendation string    `json:"recommendation"`
	StartingTire   string    `json:"starting_tire"`
	PitStops       []PitStop `json:"pit_stops"`
	Explanation    string    `json:"explanation"`
}

// StrategyComparison holds the outcome of running two strategies on the
// same circuit with independent vehicle states.
//
//nolint:tagliatelle // wire format of the original API
type StrategyComparison struct {
	ResultsA   []RaceLapResult `json:"results_a"`
	ResultsB   []RaceLapResult `json:"results_b"`
	TotalTimeA float64         `json:"total_time_a"`
	TotalTimeB float64         `json:"total_time_b"`
	// Winner is "A" or "B"; a tie goes to "B".
	Winner string  `json:"winner"`
	Delta  float64 `json:"delta"` // totalA - totalB
}
