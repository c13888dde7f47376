//nolint:funlen // ok for tests
package race

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startrack/startrack-sim-go/pkg/model"
)

func testCircuit() []model.CircuitSegment {
	return []model.CircuitSegment{
		{ID: "s1", Kind: model.SegmentStraight, Length: 500, Radius: 0},
		{ID: "s2", Kind: model.SegmentCorner, Length: 100, Radius: 40},
	}
}

func TestRun_NoPitStops(t *testing.T) {
	sim := New()
	strategy := model.RaceStrategy{
		TotalLaps:    4,
		StartingTire: "soft",
		StartingFuel: 100,
	}

	results := sim.Run(testCircuit(), strategy, "dry")
	require.Len(t, results, 4)

	sum := 0.0
	for i, r := range results {
		assert.Equal(t, i+1, r.LapNumber)
		assert.False(t, r.PitStop)
		assert.Equal(t, 0.0, r.PitTime)
		assert.Equal(t, r.PureLapTime, r.LapTime)
		assert.Equal(t, "soft", r.TireCompound)

		sum += r.LapTime
		assert.InDelta(t, math.Round(sum*1000)/1000, r.CumulativeTime, 1e-9)
	}
}

func TestRun_PitStop(t *testing.T) {
	sim := New()
	strategy := model.RaceStrategy{
		TotalLaps:    3,
		StartingTire: "soft",
		StartingFuel: 100,
		PitStops:     []model.PitStop{{Lap: 2, Tire: "hard"}},
	}

	// long enough that tire wear survives the one-decimal telemetry rounding
	circuit := []model.CircuitSegment{
		{ID: "s1", Kind: model.SegmentStraight, Length: 5000, Radius: 0},
		{ID: "s2", Kind: model.SegmentCorner, Length: 1000, Radius: 40},
	}
	results := sim.Run(circuit, strategy, "dry")
	require.Len(t, results, 3)

	params := sim.laps.Physics().Params()
	penalty := params.PitStopTime + params.PitLaneTime

	assert.False(t, results[0].PitStop)
	assert.Equal(t, "soft", results[0].TireCompound)

	pitLap := results[1]
	assert.True(t, pitLap.PitStop)
	assert.Equal(t, penalty, pitLap.PitTime)
	assert.InDelta(t, pitLap.PureLapTime+penalty, pitLap.LapTime, 1e-9)
	assert.Equal(t, "hard", pitLap.TireCompound)
	// fresh rubber: the pit lap ends with more tire life than the lap before
	assert.Greater(t, pitLap.TireLife, results[0].TireLife)
	// fuel is not refilled by a pit stop
	assert.Less(t, pitLap.Fuel, results[0].Fuel)

	assert.False(t, results[2].PitStop)
	assert.Equal(t, "hard", results[2].TireCompound)
}

func TestRun_DuplicatePitLapLastEntryWins(t *testing.T) {
	sim := New()
	strategy := model.RaceStrategy{
		TotalLaps:    2,
		StartingTire: "soft",
		StartingFuel: 100,
		PitStops: []model.PitStop{
			{Lap: 2, Tire: "hard"},
			{Lap: 2, Tire: "medium"},
		},
	}

	results := sim.Run(testCircuit(), strategy, "dry")
	assert.Equal(t, "medium", results[1].TireCompound)
}

func TestRun_DefaultsForMissingStrategyValues(t *testing.T) {
	sim := New()

	results := sim.Run(testCircuit(), model.RaceStrategy{}, "dry")
	require.Len(t, results, 1)
	assert.Equal(t, "soft", results[0].TireCompound)
}

func TestRun_WeatherSlowsLaps(t *testing.T) {
	sim := New()
	strategy := model.RaceStrategy{TotalLaps: 1, StartingTire: "soft", StartingFuel: 100}

	dry := sim.Run(testCircuit(), strategy, "dry")
	rain := sim.Run(testCircuit(), strategy, "rain")
	assert.Greater(t, rain[0].LapTime, dry[0].LapTime)

	// unrecognized weather silently falls back to dry grip
	unknown := sim.Run(testCircuit(), strategy, "fog")
	assert.Equal(t, dry[0].LapTime, unknown[0].LapTime)
}

func TestCompare_TieFavorsSecondStrategy(t *testing.T) {
	sim := New()
	strategy := model.RaceStrategy{TotalLaps: 2, StartingTire: "soft", StartingFuel: 100}

	comparison := sim.Compare(testCircuit(), strategy, strategy, "dry")
	assert.Equal(t, comparison.TotalTimeA, comparison.TotalTimeB)
	assert.Equal(t, "B", comparison.Winner)
	assert.Equal(t, 0.0, comparison.Delta)
}

func TestCompare_IndependentStates(t *testing.T) {
	sim := New()
	a := model.RaceStrategy{TotalLaps: 2, StartingTire: "soft", StartingFuel: 100}
	b := model.RaceStrategy{
		TotalLaps:    2,
		StartingTire: "hard",
		StartingFuel: 60,
		PitStops:     []model.PitStop{{Lap: 2, Tire: "soft"}},
	}

	before := sim.Run(testCircuit(), a, "dry")
	comparison := sim.Compare(testCircuit(), a, b, "dry")
	after := sim.Run(testCircuit(), a, "dry")

	// runs never leak state into each other
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("independent runs differ (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(before, comparison.ResultsA); diff != "" {
		t.Errorf("comparison run differs from standalone run (-standalone +comparison):\n%s", diff)
	}
}

func TestCompare_FasterStrategyWins(t *testing.T) {
	sim := New()
	fast := model.RaceStrategy{TotalLaps: 2, StartingTire: "soft", StartingFuel: 100}
	slow := model.RaceStrategy{
		TotalLaps:    2,
		StartingTire: "soft",
		StartingFuel: 100,
		PitStops:     []model.PitStop{{Lap: 2, Tire: "soft"}},
	}

	comparison := sim.Compare(testCircuit(), fast, slow, "dry")
	assert.Equal(t, "A", comparison.Winner)
	assert.Negative(t, comparison.Delta)
}
