package race

import "github.com/startrack/startrack-sim-go/pkg/model"

// Compare runs both strategies on the same circuit and weather, each with
// its own fresh vehicle state. The strictly lower total time wins; a tie
// goes to the second strategy.
func (s *Simulator) Compare(
	segments []model.CircuitSegment,
	strategyA, strategyB model.RaceStrategy,
	weather string,
) model.StrategyComparison {
	resultsA := s.Run(segments, strategyA, weather)
	resultsB := s.Run(segments, strategyB, weather)

	totalA := resultsA[len(resultsA)-1].CumulativeTime
	totalB := resultsB[len(resultsB)-1].CumulativeTime

	winner := "B"
	if totalA < totalB {
		winner = "A"
	}

	return model.StrategyComparison{
		ResultsA:   resultsA,
		ResultsB:   resultsB,
		TotalTimeA: totalA,
		TotalTimeB: totalB,
		Winner:     winner,
		Delta:      round3(totalA - totalB),
	}
}
