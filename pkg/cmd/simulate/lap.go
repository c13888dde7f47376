package simulate

import (
	"github.com/spf13/cobra"

	"github.com/startrack/startrack-sim-go/pkg/model"
	"github.com/startrack/startrack-sim-go/pkg/simulation/lap"
)

var (
	tireCompound string
	lapNumber    int
	fuelLoad     float64
)

func NewLapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lap",
		Short: "simulates a single lap",
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulateLap()
		},
	}
	cmd.Flags().StringVar(&tireCompound,
		"tire",
		"soft",
		"tire compound to run on")
	cmd.Flags().IntVar(&lapNumber,
		"lap-number",
		1,
		"lap number used for the result")
	cmd.Flags().Float64Var(&fuelLoad,
		"fuel",
		100,
		"fuel load in kg")
	return cmd
}

func simulateLap() error {
	segments, err := loadSegments()
	if err != nil {
		return err
	}
	state := model.NewVehicleState(fuelLoad, tireCompound)
	_, result := lap.New().Run(state, segments, tireCompound, weather, lapNumber)
	return writeResult(result)
}
