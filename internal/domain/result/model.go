package result

import (
	"fmt"
	"strings"
	"time"
)

// Record is one submitted performance test for an athlete. Records are
// immutable once created; the aggregation layer only reads AthleteID,
// Exercise, Score and CreatedAt and treats the remaining metrics as opaque.
type Record struct {
	ID                   string
	AthleteID            string
	Exercise             string
	Score                float64
	Feedback             []string
	Corrections          []string
	Reps                 *int
	JumpHeightCm         *float64
	JumpDisplacementNorm *float64
	Turns                *int
	SplitTimes           []float64
	Cadence              *float64
	TrunkAngleAvg        *float64
	TrunkAngleMin        *float64
	TrunkAngleMax        *float64
	DistanceKm           *float64
	DurationSec          *float64
	PaceMinPerKm         *float64
	VideoURL             string
	CreatedAt            time.Time
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.AthleteID) == "" {
		return fmt.Errorf("result athlete id is required")
	}
	if strings.TrimSpace(r.Exercise) == "" {
		return fmt.Errorf("result exercise is required")
	}
	return nil
}
