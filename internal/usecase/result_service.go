package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/khelsetu/arena/internal/domain/account"
	"github.com/khelsetu/arena/internal/domain/result"
	idgen "github.com/khelsetu/arena/internal/platform/id"
)

const defaultExerciseLabel = "unknown"

// SubmitInput carries one parsed test submission. Score is optional at the
// boundary; a missing value enters storage as 0 so aggregation stays total.
type SubmitInput struct {
	AthleteID            string
	Exercise             string
	Score                *float64
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
}

type ResultService struct {
	resultRepo  result.Repository
	accountRepo account.Repository
	idGenerator idgen.Generator
	now         func() time.Time
}

func NewResultService(
	resultRepo result.Repository,
	accountRepo account.Repository,
	idGenerator idgen.Generator,
) *ResultService {
	return &ResultService{
		resultRepo:  resultRepo,
		accountRepo: accountRepo,
		idGenerator: idGenerator,
		now:         time.Now,
	}
}

// Submit stores one test result after confirming the athlete exists. Records
// are immutable once created; there is no update or delete path.
func (s *ResultService) Submit(ctx context.Context, input SubmitInput) (result.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Submit")
	defer span.End()

	athleteID := strings.TrimSpace(input.AthleteID)
	if athleteID == "" {
		return result.Record{}, fmt.Errorf("%w: athlete id is required", ErrInvalidInput)
	}

	_, exists, err := s.accountRepo.GetByID(ctx, athleteID)
	if err != nil {
		return result.Record{}, fmt.Errorf("get athlete account: %w", err)
	}
	if !exists {
		return result.Record{}, fmt.Errorf("%w: athlete=%s", ErrNotFound, athleteID)
	}

	recordID, err := s.idGenerator.NewID()
	if err != nil {
		return result.Record{}, fmt.Errorf("generate result id: %w", err)
	}

	record := result.Record{
		ID:                   recordID,
		AthleteID:            athleteID,
		Exercise:             normalizeExercise(input.Exercise),
		Score:                coerceScore(input.Score),
		Feedback:             append([]string(nil), input.Feedback...),
		Corrections:          append([]string(nil), input.Corrections...),
		Reps:                 input.Reps,
		JumpHeightCm:         input.JumpHeightCm,
		JumpDisplacementNorm: input.JumpDisplacementNorm,
		Turns:                input.Turns,
		SplitTimes:           append([]float64(nil), input.SplitTimes...),
		Cadence:              input.Cadence,
		TrunkAngleAvg:        input.TrunkAngleAvg,
		TrunkAngleMin:        input.TrunkAngleMin,
		TrunkAngleMax:        input.TrunkAngleMax,
		DistanceKm:           input.DistanceKm,
		DurationSec:          input.DurationSec,
		PaceMinPerKm:         input.PaceMinPerKm,
		VideoURL:             strings.TrimSpace(input.VideoURL),
		CreatedAt:            s.now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return result.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.resultRepo.Create(ctx, record)
	if err != nil {
		return result.Record{}, fmt.Errorf("create result: %w", err)
	}

	return saved, nil
}

func (s *ResultService) ListByAthlete(ctx context.Context, athleteID string) ([]result.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ListByAthlete")
	defer span.End()

	athleteID = strings.TrimSpace(athleteID)
	if athleteID == "" {
		return nil, fmt.Errorf("%w: athlete id is required", ErrInvalidInput)
	}

	records, err := s.resultRepo.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("list athlete results: %w", err)
	}

	return records, nil
}

func normalizeExercise(raw string) string {
	exercise := strings.TrimSpace(raw)
	if exercise == "" {
		return defaultExerciseLabel
	}
	return exercise
}

func coerceScore(score *float64) float64 {
	if score == nil || math.IsNaN(*score) || math.IsInf(*score, 0) {
		return 0
	}
	return *score
}
