package simulate

import (
	"github.com/spf13/cobra"

	"github.com/startrack/startrack-sim-go/pkg/model"
	"github.com/startrack/startrack-sim-go/pkg/simulation/race"
)

var (
	totalLaps    int
	startingTire string
	startingFuel float64
	pitStopArgs  []string
	strategyFile string
)

func NewRaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "race",
		Short: "simulates a race with a pit strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulateRace()
		},
	}
	cmd.Flags().IntVar(&totalLaps,
		"laps",
		10,
		"number of laps to race")
	cmd.Flags().StringVar(&startingTire,
		"start-tire",
		"soft",
		"tire compound to start on")
	cmd.Flags().Float64Var(&startingFuel,
		"fuel",
		100,
		"starting fuel load in kg")
	cmd.Flags().StringArrayVar(&pitStopArgs,
		"pit",
		nil,
		"pit stop as lap:compound (repeatable)")
	cmd.Flags().StringVar(&strategyFile,
		"strategy",
		"",
		"file containing a race strategy (JSON), overrides the strategy flags")
	return cmd
}

func simulateRace() error {
	segments, err := loadSegments()
	if err != nil {
		return err
	}
	strategy, err := buildStrategy()
	if err != nil {
		return err
	}
	results := race.New().Run(segments, strategy, weather)
	return writeResult(results)
}

func buildStrategy() (model.RaceStrategy, error) {
	if strategyFile != "" {
		return loadStrategy(strategyFile)
	}
	pitStops, err := parsePitStops(pitStopArgs)
	if err != nil {
		return model.RaceStrategy{}, err
	}
	return model.RaceStrategy{
		TotalLaps:    totalLaps,
		StartingTire: startingTire,
		StartingFuel: startingFuel,
		PitStops:     pitStops,
	}, nil
}
