package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/khelsetu/arena/internal/domain/result"
)

func TestSummarizeResults_TwoScores(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	records := []result.Record{
		{AthleteID: "a1", Exercise: "vertical-jump", Score: 90, CreatedAt: base.Add(24 * time.Hour)},
		{AthleteID: "a1", Exercise: "shuttle-run", Score: 50, CreatedAt: base},
	}

	got := SummarizeResults(records)

	if got.OverallScore != 70 {
		t.Fatalf("expected overall 70, got %d", got.OverallScore)
	}
	if got.Badge != BadgeSilver {
		t.Fatalf("expected Silver badge, got %s", got.Badge)
	}
	if got.BestScore != 90 {
		t.Fatalf("expected best 90, got %f", got.BestScore)
	}
	if got.YAxisDomain != [2]float64{40, 100} {
		t.Fatalf("expected domain [40 100], got %v", got.YAxisDomain)
	}
	if got.LastTestAt != base.Add(24*time.Hour) {
		t.Fatalf("expected most recent timestamp, got %s", got.LastTestAt)
	}
}

func TestSummarizeResults_ZeroRecords(t *testing.T) {
	got := SummarizeResults(nil)

	if got.OverallScore != 0 {
		t.Fatalf("expected overall 0, got %d", got.OverallScore)
	}
	if got.Badge != BadgeBronze {
		t.Fatalf("expected Bronze badge, got %s", got.Badge)
	}
	if got.YAxisDomain != [2]float64{0, 100} {
		t.Fatalf("expected domain [0 100], got %v", got.YAxisDomain)
	}
	if len(got.TrendSeries) != 0 {
		t.Fatalf("expected empty trend series, got %v", got.TrendSeries)
	}
	if len(got.Distribution) != 0 {
		t.Fatalf("expected empty distribution, got %v", got.Distribution)
	}
	if !got.LastTestAt.IsZero() {
		t.Fatalf("expected zero LastTestAt, got %s", got.LastTestAt)
	}
}

func TestSummarizeResults_TrendIsChronologicalRegardlessOfInputOrder(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	records := []result.Record{
		{AthleteID: "a1", Exercise: "situps", Score: 80, CreatedAt: base.Add(48 * time.Hour)},
		{AthleteID: "a1", Exercise: "situps", Score: 60, CreatedAt: base},
		{AthleteID: "a1", Exercise: "situps", Score: 70, CreatedAt: base.Add(24 * time.Hour)},
	}

	got := SummarizeResults(records)

	if len(got.TrendSeries) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got.TrendSeries))
	}
	for i := 1; i < len(got.TrendSeries); i++ {
		if got.TrendSeries[i].Timestamp.Before(got.TrendSeries[i-1].Timestamp) {
			t.Fatalf("trend series out of order at %d: %v", i, got.TrendSeries)
		}
	}
	if got.TrendSeries[0].Score != 60 || got.TrendSeries[2].Score != 80 {
		t.Fatalf("unexpected series: %v", got.TrendSeries)
	}
	if got.LastTestAt != base.Add(48*time.Hour) {
		t.Fatalf("LastTestAt must be the newest record, got %s", got.LastTestAt)
	}
}

func TestSummarizeResults_BadgeBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Badge
	}{
		{79, BadgeSilver},
		{80, BadgeGold},
		{60, BadgeSilver},
		{59, BadgeBronze},
	}
	for _, tc := range cases {
		got := SummarizeResults([]result.Record{{AthleteID: "a1", Exercise: "x", Score: tc.score}})
		if got.Badge != tc.want {
			t.Fatalf("score %f: expected %s, got %s", tc.score, tc.want, got.Badge)
		}
	}
}

func TestSummarizeResults_DomainClampsToBounds(t *testing.T) {
	records := []result.Record{
		{AthleteID: "a1", Exercise: "x", Score: 5},
		{AthleteID: "a1", Exercise: "x", Score: 98},
	}

	got := SummarizeResults(records)
	if got.YAxisDomain != [2]float64{0, 100} {
		t.Fatalf("expected clamped domain [0 100], got %v", got.YAxisDomain)
	}
}

func TestSummarizeResults_DistributionSkipsEmptyExercise(t *testing.T) {
	records := []result.Record{
		{AthleteID: "a1", Exercise: "situps", Score: 50},
		{AthleteID: "a1", Exercise: "situps", Score: 60},
		{AthleteID: "a1", Exercise: "", Score: 70},
	}

	got := SummarizeResults(records)
	if got.Distribution["situps"] != 2 {
		t.Fatalf("expected 2 situps, got %v", got.Distribution)
	}
	if len(got.Distribution) != 1 {
		t.Fatalf("expected unlabeled records skipped, got %v", got.Distribution)
	}
}

func TestSummaryService_Summarize(t *testing.T) {
	now := time.Now()
	repo := &stubResultRepository{records: []result.Record{
		{AthleteID: "a1", Exercise: "situps", Score: 85, CreatedAt: now},
		{AthleteID: "a2", Exercise: "situps", Score: 10, CreatedAt: now},
	}}

	service := NewSummaryService(repo)

	got, err := service.Summarize(context.Background(), "a1")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got.OverallScore != 85 || got.Badge != BadgeGold {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestSummaryService_Summarize_RequiresAthleteID(t *testing.T) {
	service := NewSummaryService(&stubResultRepository{})

	if _, err := service.Summarize(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
