package catalog

import (
	"context"
	"math"
	"strconv"

	"github.com/startrack/startrack-sim-go/pkg/model"
	"github.com/startrack/startrack-sim-go/pkg/utils/cache/loadercache"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

//nolint:tagliatelle // wire format of the original API
type TrackSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	LengthKm      float64 `json:"length_km"`
	PreviewPoints []Point `json:"preview_points"`
}

// layout computation is deterministic, so cached entries never go stale
var previewCache = loadercache.New[string, []Point](
	loadercache.WithLoader[string, []Point](func(id string) (*[]Point, error) {
		t, ok := Track(id)
		if !ok {
			return &[]Point{}, nil
		}
		points := Layout(t.Segments, id)
		return &points, nil
	}),
)

// Preview returns the cached 2D layout points for a track template.
func Preview(ctx context.Context, id string) []Point {
	points, err := previewCache.Get(ctx, id)
	if err != nil || points == nil {
		return []Point{}
	}
	return *points
}

// TrackPreviews returns the template summaries including layout points.
func TrackPreviews(ctx context.Context) []TrackSummary {
	ret := make([]TrackSummary, 0, len(trackTemplates))
	for _, id := range TrackIDs() {
		t := trackTemplates[id]
		ret = append(ret, TrackSummary{
			ID:            t.ID,
			Name:          t.Name,
			LengthKm:      t.LengthKm,
			PreviewPoints: Preview(ctx, id),
		})
	}
	return ret
}

// Layout generates 2D coordinates for track visualization. Corners are
// approximated by arcs subdivided into 10 chords; the result is normalized
// to fit an 800x600 canvas.
//
//nolint:funlen // sequential geometry pipeline
func Layout(segments []model.CircuitSegment, trackID string) []Point {
	x, y := 100.0, 300.0
	angle := 0.0 // 0 is East
	points := []Point{{X: x, Y: y}}

	const scale = 0.5 // scale down for visualization

	for idx, segment := range segments {
		length := segment.Length * scale
		radius := segment.Radius * scale

		if radius == 0 {
			x += length * math.Cos(angle)
			y += length * math.Sin(angle)
			points = append(points, Point{X: x, Y: y})
			continue
		}

		// arc made of small straight chords
		arcLength := length
		turnAngle := arcLength / radius // radians

		// deterministic turn direction derived from the segment ordinal;
		// monaco uses hardcoded directions for a recognizable shape
		ordinal := segmentOrdinal(segment.ID, idx)
		turnDirection := -1.0
		if trackID == "monaco" {
			if ordinal == 2 || ordinal == 6 || ordinal == 10 {
				turnDirection = 1.0
			}
		} else if ordinal%2 == 0 {
			turnDirection = 1.0
		}

		const steps = 10
		stepAngle := (turnAngle * turnDirection) / steps
		stepLen := arcLength / steps
		for i := 0; i < steps; i++ {
			angle += stepAngle
			x += stepLen * math.Cos(angle)
			y += stepLen * math.Sin(angle)
			points = append(points, Point{X: x, Y: y})
		}
	}

	return normalize(points)
}

// normalize scales and centers the points on the 800x600 canvas.
func normalize(points []Point) []Point {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	width := maxX - minX
	height := maxY - minY
	scaleX, scaleY := 1.0, 1.0
	if width > 0 {
		scaleX = 700 / width
	}
	if height > 0 {
		scaleY = 500 / height
	}
	finalScale := math.Min(scaleX, scaleY) * 0.8

	offsetX := 400 - (minX+width/2)*finalScale
	offsetY := 300 - (minY+height/2)*finalScale

	ret := make([]Point, len(points))
	for i, p := range points {
		ret[i] = Point{X: p.X*finalScale + offsetX, Y: p.Y*finalScale + offsetY}
	}
	return ret
}

// segmentOrdinal extracts N from template ids like "s4"; segments with
// free-form ids fall back to their 1-based position.
func segmentOrdinal(id string, idx int) int {
	if len(id) > 1 {
		if n, err := strconv.Atoi(id[1:]); err == nil {
			return n
		}
	}
	return idx + 1
}
