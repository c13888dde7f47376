package catalog

import (
	"sort"

	"github.com/samber/lo"

	"github.com/startrack/startrack-sim-go/pkg/model"
)

//nolint:tagliatelle // wire format of the original API
type TrackTemplate struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	LengthKm float64                `json:"length_km"`
	Segments []model.CircuitSegment `json:"segments"`
}

var trackTemplates = map[string]TrackTemplate{
	"monaco": {
		ID:       "monaco",
		Name:     "Monaco GP",
		LengthKm: 3.337,
		Segments: []model.CircuitSegment{
			{ID: "s1", Kind: model.SegmentStraight, Length: 500, Radius: 0},
			{ID: "s2", Kind: model.SegmentCorner, Length: 80, Radius: 40},
			{ID: "s3", Kind: model.SegmentStraight, Length: 300, Radius: 0},
			{ID: "s4", Kind: model.SegmentCorner, Length: 120, Radius: 25},
			{ID: "s5", Kind: model.SegmentStraight, Length: 200, Radius: 0},
			{ID: "s6", Kind: model.SegmentCorner, Length: 100, Radius: 60},
			{ID: "s7", Kind: model.SegmentStraight, Length: 400, Radius: 0},
			{ID: "s8", Kind: model.SegmentCorner, Length: 90, Radius: 35},
			{ID: "s9", Kind: model.SegmentStraight, Length: 350, Radius: 0},
			{ID: "s10", Kind: model.SegmentCorner, Length: 110, Radius: 50},
		},
	},
	"silverstone": {
		ID:       "silverstone",
		Name:     "Silverstone GP",
		LengthKm: 5.891,
		Segments: []model.CircuitSegment{
			{ID: "s1", Kind: model.SegmentStraight, Length: 800, Radius: 0},
			{ID: "s2", Kind: model.SegmentCorner, Length: 200, Radius: 120},
			{ID: "s3", Kind: model.SegmentStraight, Length: 600, Radius: 0},
			{ID: "s4", Kind: model.SegmentCorner, Length: 150, Radius: 80},
			{ID: "s5", Kind: model.SegmentStraight, Length: 500, Radius: 0},
			{ID: "s6", Kind: model.SegmentCorner, Length: 180, Radius: 100},
			{ID: "s7", Kind: model.SegmentStraight, Length: 700, Radius: 0},
			{ID: "s8", Kind: model.SegmentCorner, Length: 160, Radius: 90},
		},
	},
	"spa": {
		ID:       "spa",
		Name:     "Spa-Francorchamps",
		LengthKm: 7.004,
		Segments: []model.CircuitSegment{
			{ID: "s1", Kind: model.SegmentStraight, Length: 1000, Radius: 0},
			{ID: "s2", Kind: model.SegmentCorner, Length: 300, Radius: 150},
			{ID: "s3", Kind: model.SegmentStraight, Length: 800, Radius: 0},
			{ID: "s4", Kind: model.SegmentCorner, Length: 400, Radius: 200},
			{ID: "s5", Kind: model.SegmentStraight, Length: 1200, Radius: 0},
			{ID: "s6", Kind: model.SegmentCorner, Length: 250, Radius: 100},
		},
	},
}

// Track returns the template with the given id.
func Track(id string) (TrackTemplate, bool) {
	t, ok := trackTemplates[id]
	return t, ok
}

// TrackIDs returns the known template ids in stable order.
func TrackIDs() []string {
	ids := lo.Keys(trackTemplates)
	sort.Strings(ids)
	return ids
}

// Tracks returns all templates in stable order.
func Tracks() []TrackTemplate {
	return lo.Map(TrackIDs(), func(id string, _ int) TrackTemplate {
		return trackTemplates[id]
	})
}
