package strategy

import (
	"fmt"

	"github.com/startrack/startrack-sim-go/pkg/model"
)

// Recommend returns a pit plan purely based on race length and weather.
// The segment list is part of the signature for compatibility with the
// published API but is not consulted.
func Recommend(_ []model.CircuitSegment, totalLaps int, weather string) model.StrategyRecommendation {
	switch {
	case totalLaps <= 3:
		return model.StrategyRecommendation{
			Recommendation: "Single stint",
			StartingTire:   "soft",
			PitStops:       []model.PitStop{},
			Explanation:    "Short race - maximize grip with softs, no pit required.",
		}
	case totalLaps <= 10:
		startingTire := "soft"
		if weather != "dry" {
			startingTire = "intermediate"
		}
		return model.StrategyRecommendation{
			Recommendation: "One-stop strategy",
			StartingTire:   startingTire,
			PitStops:       []model.PitStop{{Lap: totalLaps / 2, Tire: "hard"}},
			Explanation: fmt.Sprintf(
				"Start on softs for early pace, pit on lap %d for hards.", totalLaps/2),
		}
	default:
		return model.StrategyRecommendation{
			Recommendation: "Two-stop strategy",
			StartingTire:   "soft",
			PitStops: []model.PitStop{
				{Lap: totalLaps / 3, Tire: "hard"},
				{Lap: 2 * totalLaps / 3, Tire: "medium"},
			},
			Explanation: "Aggressive three-stint strategy for optimal pace.",
		}
	}
}
