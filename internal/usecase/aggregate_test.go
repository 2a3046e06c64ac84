package usecase

import (
	"math"
	"testing"

	"github.com/khelsetu/arena/internal/domain/result"
)

func TestAggregateScores_GroupsPerAthlete(t *testing.T) {
	records := []result.Record{
		{AthleteID: "a1", Score: 80},
		{AthleteID: "a1", Score: 60},
		{AthleteID: "a2", Score: 90},
	}

	got := AggregateScores(records)

	if len(got) != 2 {
		t.Fatalf("expected 2 aggregates, got %d", len(got))
	}

	a1 := got["a1"]
	if a1.TestsCount != 2 || a1.TotalScore != 140 || a1.AverageScore != 70 {
		t.Fatalf("unexpected a1 aggregate: %+v", a1)
	}
	a2 := got["a2"]
	if a2.TestsCount != 1 || a2.AverageScore != 90 {
		t.Fatalf("unexpected a2 aggregate: %+v", a2)
	}
}

func TestAggregateScores_EmptyInput(t *testing.T) {
	got := AggregateScores(nil)
	if len(got) != 0 {
		t.Fatalf("expected empty mapping, got %v", got)
	}
}

func TestAggregateScores_NonNumericScoreCountsAsZero(t *testing.T) {
	records := []result.Record{
		{AthleteID: "a1", Score: math.NaN()},
		{AthleteID: "a1", Score: 50},
	}

	got := AggregateScores(records)

	a1 := got["a1"]
	if a1.TestsCount != 2 {
		t.Fatalf("record with unusable score must still count, got %d", a1.TestsCount)
	}
	if a1.AverageScore != 25 {
		t.Fatalf("expected average 25, got %f", a1.AverageScore)
	}
}

func TestAggregateScores_DisjointUnionEqualsSeparateRuns(t *testing.T) {
	left := []result.Record{
		{AthleteID: "a1", Score: 40},
		{AthleteID: "a1", Score: 60},
	}
	right := []result.Record{
		{AthleteID: "a2", Score: 75},
	}

	combined := AggregateScores(append(append([]result.Record{}, left...), right...))
	separateLeft := AggregateScores(left)
	separateRight := AggregateScores(right)

	if len(combined) != len(separateLeft)+len(separateRight) {
		t.Fatalf("expected union of key sets, got %d keys", len(combined))
	}
	if combined["a1"] != separateLeft["a1"] {
		t.Fatalf("a1 aggregate diverged: %+v vs %+v", combined["a1"], separateLeft["a1"])
	}
	if combined["a2"] != separateRight["a2"] {
		t.Fatalf("a2 aggregate diverged: %+v vs %+v", combined["a2"], separateRight["a2"])
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{69.4, 69},
		{69.5, 70},
		{70.0, 70},
		{0, 0},
	}
	for _, tc := range cases {
		if got := roundHalfUp(tc.in); got != tc.want {
			t.Fatalf("roundHalfUp(%f) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
