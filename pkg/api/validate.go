package api

import (
	"errors"
	"fmt"

	"github.com/startrack/startrack-sim-go/pkg/model"
)

// Structural validation lives at the API boundary. The engine itself is
// deliberately lenient (unknown compounds and weather fall back to
// documented defaults) and is never handed a circuit rejected here.
var (
	ErrEmptyCircuit   = errors.New("circuit must contain at least one segment")
	ErrUnknownTrack   = errors.New("unknown track template")
	ErrInvalidLaps    = errors.New("total_laps must be at least 1")
	ErrInvalidPitLap  = errors.New("pit stop lap outside of race distance")
	ErrInvalidLength  = errors.New("segment length must be positive")
	ErrNegativeRadius = errors.New("segment radius must not be negative")
)

func validateSegments(segments []model.CircuitSegment) error {
	if len(segments) == 0 {
		return ErrEmptyCircuit
	}
	for i, seg := range segments {
		if seg.Length <= 0 {
			return fmt.Errorf("segment %d: %w", i, ErrInvalidLength)
		}
		if seg.Radius < 0 {
			return fmt.Errorf("segment %d: %w", i, ErrNegativeRadius)
		}
	}
	return nil
}

func validateStrategy(s model.RaceStrategy) error {
	if s.TotalLaps < 1 {
		return ErrInvalidLaps
	}
	for _, p := range s.PitStops {
		if p.Lap < 1 || p.Lap > s.TotalLaps {
			return fmt.Errorf("lap %d: %w", p.Lap, ErrInvalidPitLap)
		}
	}
	return nil
}
