package model

type SegmentKind string

const (
	SegmentStraight SegmentKind = "straight"
	SegmentCorner   SegmentKind = "corner"
)

// CircuitSegment describes one piece of track geometry.
// A radius of 0 marks a straight.
type CircuitSegment struct {
	ID     string      `json:"id"`
	Kind   SegmentKind `json:"type"`
	Length float64     `json:"length"` // meters
	Radius float64     `json:"radius"` // meters, 0 if straight
}

// IsCorner reports whether the segment is grip limited.
func (s CircuitSegment) IsCorner() bool {
	return s.Radius > 0
}

type Circuit struct {
	Name     string           `json:"name"`
	Segments []CircuitSegment `json:"segments"`
}
