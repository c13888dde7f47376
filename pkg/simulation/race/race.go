// Package race runs multi-lap simulations with pit-stop strategies and
// compares strategy outcomes.
package race

import (
	"math"

	"github.com/startrack/startrack-sim-go/pkg/model"
	"github.com/startrack/startrack-sim-go/pkg/simulation/lap"
)

const (
	rollingStartSpeedMS = 60.0
	defaultStartingFuel = 100.0
	defaultStartingTire = "soft"
)

type Simulator struct {
	laps *lap.Simulator
}

type Option func(*Simulator)

func WithLapSimulator(s *lap.Simulator) Option {
	return func(sim *Simulator) {
		sim.laps = s
	}
}

func New(opts ...Option) *Simulator {
	ret := &Simulator{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.laps == nil {
		ret.laps = lap.New()
	}
	return ret
}

// Run simulates a full race. A fresh vehicle state is constructed from the
// strategy and owned exclusively by this run; pit stops give new tires but
// carry fuel and battery over.
func (s *Simulator) Run(
	segments []model.CircuitSegment,
	strategy model.RaceStrategy,
	weather string,
) []model.RaceLapResult {
	totalLaps := strategy.TotalLaps
	if totalLaps < 1 {
		totalLaps = 1
	}
	fuel := strategy.StartingFuel
	if fuel <= 0 {
		fuel = defaultStartingFuel
	}
	tire := strategy.StartingTire
	if tire == "" {
		tire = defaultStartingTire
	}

	state := model.NewVehicleState(fuel, tire)
	state.SpeedMS = rollingStartSpeedMS

	pits := strategy.PitStopsByLap()
	params := s.laps.Physics().Params()

	results := make([]model.RaceLapResult, 0, totalLaps)
	cumulative := 0.0
	for lapNo := 1; lapNo <= totalLaps; lapNo++ {
		pitTime := 0.0
		if newTire, ok := pits[lapNo]; ok {
			pitTime = params.PitStopTime + params.PitLaneTime
			state.TireLifePct = 100.0
			state.TireCompound = newTire
			state.TireTempC = 80.0
		}

		var lapResult model.LapResult
		state, lapResult = s.laps.Run(state, segments, state.TireCompound, weather, lapNo)

		lapTime := lapResult.LapTime + pitTime
		cumulative += lapTime

		results = append(results, model.RaceLapResult{
			LapNumber:      lapNo,
			LapTime:        lapTime,
			PureLapTime:    lapResult.LapTime,
			PitStop:        pitTime > 0,
			PitTime:        pitTime,
			CumulativeTime: round3(cumulative),
			TireCompound:   state.TireCompound,
			TireLife:       lapResult.FinalTireLife,
			Fuel:           lapResult.FinalFuel,
			SectorTimes:    lapResult.SectorTimes,
			Telemetry:      lapResult.Telemetry,
		})
	}
	return results
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
