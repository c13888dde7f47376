package simulate

import (
	"github.com/spf13/cobra"

	"github.com/startrack/startrack-sim-go/pkg/model"
	"github.com/startrack/startrack-sim-go/pkg/simulation/strategy"
)

var lineTire string

func NewLineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "line",
		Short: "calculates apex speeds for the optimal racing line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return calculateLine()
		},
	}
	cmd.Flags().StringVar(&lineTire,
		"tire",
		"soft",
		"tire compound to calculate with")
	return cmd
}

func calculateLine() error {
	segments, err := loadSegments()
	if err != nil {
		return err
	}
	state := model.NewVehicleState(100, lineTire)
	apexes := strategy.NewLineCalculator().Calculate(segments, state)
	return writeResult(apexes)
}
