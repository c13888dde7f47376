package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack_Templates(t *testing.T) {
	tests := []struct {
		id       string
		segments int
		lengthKm float64
	}{
		{id: "monaco", segments: 10, lengthKm: 3.337},
		{id: "silverstone", segments: 8, lengthKm: 5.891},
		{id: "spa", segments: 6, lengthKm: 7.004},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			track, ok := Track(tt.id)
			require.True(t, ok)
			assert.Len(t, track.Segments, tt.segments)
			assert.Equal(t, tt.lengthKm, track.LengthKm)
			for _, seg := range track.Segments {
				assert.Positive(t, seg.Length)
				assert.GreaterOrEqual(t, seg.Radius, 0.0)
			}
		})
	}
}

func TestTrack_Unknown(t *testing.T) {
	_, ok := Track("nordschleife")
	assert.False(t, ok)
}

func TestTrackPreviews(t *testing.T) {
	previews := TrackPreviews(context.Background())
	require.Len(t, previews, 3)
	for _, p := range previews {
		assert.NotEmpty(t, p.PreviewPoints, p.ID)
		// normalized onto the 800x600 canvas
		for _, pt := range p.PreviewPoints {
			assert.GreaterOrEqual(t, pt.X, 0.0)
			assert.LessOrEqual(t, pt.X, 800.0)
			assert.GreaterOrEqual(t, pt.Y, 0.0)
			assert.LessOrEqual(t, pt.Y, 600.0)
		}
	}
}

func TestLayout_PointCount(t *testing.T) {
	track, ok := Track("monaco")
	require.True(t, ok)
	points := Layout(track.Segments, "monaco")
	// start point, one per straight, ten per corner
	straights, corners := 0, 0
	for _, seg := range track.Segments {
		if seg.Radius > 0 {
			corners++
		} else {
			straights++
		}
	}
	assert.Len(t, points, 1+straights+corners*10)
}
