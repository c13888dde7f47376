package simulate

import (
	"github.com/spf13/cobra"

	"github.com/startrack/startrack-sim-go/pkg/simulation/race"
)

var (
	strategyFileA string
	strategyFileB string
)

func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "compares two race strategies on the same circuit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return compareStrategies()
		},
	}
	cmd.Flags().StringVar(&strategyFileA,
		"strategy-a",
		"",
		"file containing strategy A (JSON)")
	cmd.Flags().StringVar(&strategyFileB,
		"strategy-b",
		"",
		"file containing strategy B (JSON)")
	//nolint:errcheck // flags are defined above
	cmd.MarkFlagRequired("strategy-a")
	//nolint:errcheck // flags are defined above
	cmd.MarkFlagRequired("strategy-b")
	return cmd
}

func compareStrategies() error {
	segments, err := loadSegments()
	if err != nil {
		return err
	}
	strategyA, err := loadStrategy(strategyFileA)
	if err != nil {
		return err
	}
	strategyB, err := loadStrategy(strategyFileB)
	if err != nil {
		return err
	}
	comparison := race.New().Compare(segments, strategyA, strategyB, weather)
	return writeResult(comparison)
}
