package usecase

import (
	"math"

	"github.com/khelsetu/arena/internal/domain/result"
)

// ScoreAggregate is the reduced view of one athlete's submissions.
type ScoreAggregate struct {
	AthleteID    string
	AverageScore float64
	TotalScore   float64
	TestsCount   int
}

// AggregateScores reduces a result collection into one aggregate per athlete.
// A score that failed upstream coercion arrives as NaN and counts as 0; the
// record itself is never skipped, so TestsCount always equals the number of
// submissions. An empty input yields an empty map.
func AggregateScores(records []result.Record) map[string]ScoreAggregate {
	aggregates := make(map[string]ScoreAggregate, len(records))

	for _, record := range records {
		score := record.Score
		if math.IsNaN(score) || math.IsInf(score, 0) {
			score = 0
		}

		agg := aggregates[record.AthleteID]
		agg.AthleteID = record.AthleteID
		agg.TotalScore += score
		agg.TestsCount++
		aggregates[record.AthleteID] = agg
	}

	for athleteID, agg := range aggregates {
		agg.AverageScore = agg.TotalScore / float64(agg.TestsCount)
		aggregates[athleteID] = agg
	}

	return aggregates
}

// roundHalfUp rounds to the nearest integer with .5 rounding up, matching the
// display convention used everywhere a score is shown.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
