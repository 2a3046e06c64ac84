package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/khelsetu/arena/internal/domain/result"
)

// Badge is the coarse performance tier derived from an athlete's average score.
type Badge string

const (
	BadgeBronze Badge = "Bronze"
	BadgeSilver Badge = "Silver"
	BadgeGold   Badge = "Gold"
)

const (
	goldThreshold   = 80
	silverThreshold = 60
	domainPadding   = 10
	domainFloor     = 0
	domainCeiling   = 100
)

// TrendPoint is one point of the chronological score series.
type TrendPoint struct {
	Timestamp time.Time
	Score     float64
}

// AthleteSummary is the profile-report view of one athlete's history.
type AthleteSummary struct {
	OverallScore int
	Badge        Badge
	BestScore    float64
	LastTestAt   time.Time
	TrendSeries  []TrendPoint
	YAxisDomain  [2]float64
	Distribution map[string]int
}

type SummaryService struct {
	resultRepo result.Repository
}

func NewSummaryService(resultRepo result.Repository) *SummaryService {
	return &SummaryService{resultRepo: resultRepo}
}

func (s *SummaryService) Summarize(ctx context.Context, athleteID string) (AthleteSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.Summarize")
	defer span.End()

	athleteID = strings.TrimSpace(athleteID)
	if athleteID == "" {
		return AthleteSummary{}, fmt.Errorf("%w: athlete id is required", ErrInvalidInput)
	}

	records, err := s.resultRepo.ListByAthlete(ctx, athleteID)
	if err != nil {
		return AthleteSummary{}, fmt.Errorf("list athlete results: %w", err)
	}

	return SummarizeResults(records), nil
}

// SummarizeResults reduces one athlete's full result history into a summary.
// The input may arrive in any order: the engine sorts by CreatedAt itself, so
// LastTestAt is always the most recent submission regardless of how the
// storage layer ordered the rows. Zero records yields the documented
// defaults: score 0, Bronze, [0,100] domain, empty series and distribution.
func SummarizeResults(records []result.Record) AthleteSummary {
	summary := AthleteSummary{
		Badge:        BadgeBronze,
		YAxisDomain:  [2]float64{domainFloor, domainCeiling},
		TrendSeries:  []TrendPoint{},
		Distribution: map[string]int{},
	}
	if len(records) == 0 {
		return summary
	}

	ordered := make([]result.Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	var total float64
	minScore := math.Inf(1)
	maxScore := math.Inf(-1)

	for _, record := range ordered {
		score := record.Score
		if math.IsNaN(score) || math.IsInf(score, 0) {
			score = 0
		}

		total += score
		if score < minScore {
			minScore = score
		}
		if score > maxScore {
			maxScore = score
		}

		summary.TrendSeries = append(summary.TrendSeries, TrendPoint{
			Timestamp: record.CreatedAt,
			Score:     score,
		})
		if record.Exercise != "" {
			summary.Distribution[record.Exercise]++
		}
	}

	summary.OverallScore = roundHalfUp(total / float64(len(ordered)))
	summary.Badge = badgeFor(summary.OverallScore)
	summary.BestScore = maxScore
	summary.LastTestAt = ordered[len(ordered)-1].CreatedAt
	summary.YAxisDomain = [2]float64{
		math.Max(domainFloor, minScore-domainPadding),
		math.Min(domainCeiling, maxScore+domainPadding),
	}

	return summary
}

func badgeFor(overallScore int) Badge {
	switch {
	case overallScore >= goldThreshold:
		return BadgeGold
	case overallScore >= silverThreshold:
		return BadgeSilver
	default:
		return BadgeBronze
	}
}
