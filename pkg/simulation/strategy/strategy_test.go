//nolint:funlen // ok for tests
package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startrack/startrack-sim-go/pkg/catalog"
	"github.com/startrack/startrack-sim-go/pkg/model"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name         string
		totalLaps    int
		weather      string
		wantTire     string
		wantPitStops []model.PitStop
	}{
		{
			name:         "sprint has no stops",
			totalLaps:    3,
			weather:      "dry",
			wantTire:     "soft",
			wantPitStops: []model.PitStop{},
		},
		{
			name:         "medium race pits halfway",
			totalLaps:    10,
			weather:      "dry",
			wantTire:     "soft",
			wantPitStops: []model.PitStop{{Lap: 5, Tire: "hard"}},
		},
		{
			name:         "wet medium race starts on intermediates",
			totalLaps:    10,
			weather:      "rain",
			wantTire:     "intermediate",
			wantPitStops: []model.PitStop{{Lap: 5, Tire: "hard"}},
		},
		{
			name:      "long race pits twice",
			totalLaps: 15,
			weather:   "dry",
			wantTire:  "soft",
			wantPitStops: []model.PitStop{
				{Lap: 5, Tire: "hard"},
				{Lap: 10, Tire: "medium"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(nil, tt.totalLaps, tt.weather)
			assert.Equal(t, tt.wantTire, got.StartingTire)
			assert.Equal(t, tt.wantPitStops, got.PitStops)
			assert.NotEmpty(t, got.Explanation)
		})
	}
}

func TestRecommend_IgnoresSegments(t *testing.T) {
	monaco, _ := catalog.Track("monaco")
	withSegments := Recommend(monaco.Segments, 10, "dry")
	withoutSegments := Recommend(nil, 10, "dry")
	assert.Equal(t, withoutSegments, withSegments)
}

func TestLineCalculator_OneApexPerCorner(t *testing.T) {
	calc := NewLineCalculator()
	monaco, ok := catalog.Track("monaco")
	require.True(t, ok)

	apexes := calc.Calculate(monaco.Segments, model.NewVehicleState(100, "soft"))
	require.Len(t, apexes, 5)

	wantIDs := []string{"s2", "s4", "s6", "s8", "s10"}
	prevIdx := -1
	for i, apex := range apexes {
		assert.Equal(t, wantIDs[i], apex.SegmentID)
		assert.Greater(t, apex.SegmentIndex, prevIdx)
		prevIdx = apex.SegmentIndex
		assert.GreaterOrEqual(t, apex.RecommendedSpeed, 0.0)
	}
}

func TestLineCalculator_ApexTips(t *testing.T) {
	calc := NewLineCalculator()
	segments := []model.CircuitSegment{
		{ID: "tight", Length: 80, Radius: 40},
		{ID: "open", Length: 150, Radius: 90},
		{ID: "straight", Length: 500, Radius: 0},
	}

	apexes := calc.Calculate(segments, model.NewVehicleState(100, "medium"))
	require.Len(t, apexes, 2)
	assert.Equal(t, "Late apex", apexes[0].Tip)
	assert.Equal(t, "Standard apex", apexes[1].Tip)
}

func TestLineCalculator_ExplicitTireState(t *testing.T) {
	calc := NewLineCalculator()
	segments := []model.CircuitSegment{{ID: "c", Length: 100, Radius: 40}}

	fresh := calc.Calculate(segments, model.NewVehicleState(100, "soft"))
	worn := model.NewVehicleState(100, "soft")
	worn.TireLifePct = 50
	wornApexes := calc.Calculate(segments, worn)

	// the result depends only on the passed state, and wear lowers the speed
	assert.Greater(t, fresh[0].RecommendedSpeed, wornApexes[0].RecommendedSpeed)
}

func TestLineCalculator_MissingSegmentID(t *testing.T) {
	calc := NewLineCalculator()
	segments := []model.CircuitSegment{
		{Length: 500, Radius: 0},
		{Length: 100, Radius: 40},
	}

	apexes := calc.Calculate(segments, model.NewVehicleState(100, "medium"))
	require.Len(t, apexes, 1)
	assert.Equal(t, "seg-1", apexes[0].SegmentID)
	assert.Equal(t, 1, apexes[0].SegmentIndex)
}
