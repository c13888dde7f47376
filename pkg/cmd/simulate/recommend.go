package simulate

import (
	"github.com/spf13/cobra"

	"github.com/startrack/startrack-sim-go/pkg/simulation/strategy"
)

var recommendLaps int

func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "recommends a pit strategy for a race distance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return recommendStrategy()
		},
	}
	cmd.Flags().IntVar(&recommendLaps,
		"laps",
		10,
		"number of laps to race")
	return cmd
}

func recommendStrategy() error {
	segments, err := loadSegments()
	if err != nil {
		return err
	}
	recommendation := strategy.Recommend(segments, recommendLaps, weather)
	return writeResult(recommendation)
}
