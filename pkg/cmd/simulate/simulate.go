// Package simulate provides CLI access to the simulation engine.
package simulate

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/startrack/startrack-sim-go/pkg/catalog"
	"github.com/startrack/startrack-sim-go/pkg/model"
)

var (
	trackID     string
	circuitFile string
	weather     string
	outputFile  string
)

var errNoCircuit = errors.New("either --track or --circuit is required")

func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "run simulations from the command line",
	}
	cmd.PersistentFlags().StringVarP(&trackID,
		"track",
		"t",
		"",
		fmt.Sprintf("track template to simulate (%s)", strings.Join(catalog.TrackIDs(), ", ")))
	cmd.PersistentFlags().StringVarP(&circuitFile,
		"circuit",
		"c",
		"",
		"file containing a circuit definition (JSON)")
	cmd.PersistentFlags().StringVarP(&weather,
		"weather",
		"w",
		"dry",
		"weather conditions (dry, hot, rain)")
	cmd.PersistentFlags().StringVarP(&outputFile,
		"output",
		"o",
		"",
		"write the result to this file instead of stdout")

	cmd.AddCommand(NewLapCmd())
	cmd.AddCommand(NewRaceCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewLineCmd())
	cmd.AddCommand(NewRecommendCmd())
	return cmd
}

func loadSegments() ([]model.CircuitSegment, error) {
	if circuitFile != "" {
		data, err := os.ReadFile(circuitFile)
		if err != nil {
			return nil, err
		}
		var circuit model.Circuit
		if err := oj.Unmarshal(data, &circuit); err != nil {
			return nil, err
		}
		if len(circuit.Segments) == 0 {
			return nil, fmt.Errorf("%s contains no segments", circuitFile)
		}
		return circuit.Segments, nil
	}
	if trackID != "" {
		track, ok := catalog.Track(trackID)
		if !ok {
			return nil, fmt.Errorf("unknown track template %q", trackID)
		}
		return track.Segments, nil
	}
	return nil, errNoCircuit
}

func loadStrategy(file string) (model.RaceStrategy, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return model.RaceStrategy{}, err
	}
	var strategy model.RaceStrategy
	if err := oj.Unmarshal(data, &strategy); err != nil {
		return model.RaceStrategy{}, err
	}
	return strategy, nil
}

// parsePitStops converts "lap:compound" arguments to pit stops.
func parsePitStops(args []string) ([]model.PitStop, error) {
	ret := make([]model.PitStop, 0, len(args))
	for _, arg := range args {
		lapArg, tire, found := strings.Cut(arg, ":")
		if !found {
			return nil, fmt.Errorf("invalid pit stop %q, want lap:compound", arg)
		}
		lapNum, err := strconv.Atoi(lapArg)
		if err != nil {
			return nil, fmt.Errorf("invalid pit stop lap %q: %w", lapArg, err)
		}
		ret = append(ret, model.PitStop{Lap: lapNum, Tire: tire})
	}
	return ret, nil
}

func writeResult(v any) error {
	data, err := oj.Marshal(v, 2)
	if err != nil {
		return err
	}
	if outputFile != "" {
		//nolint:gosec,mnd // ok here
		return os.WriteFile(outputFile, data, 0644)
	}
	fmt.Println(string(data))
	return nil
}
