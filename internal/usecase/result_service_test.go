package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/khelsetu/arena/internal/domain/account"
	idgen "github.com/khelsetu/arena/internal/platform/id"
)

func newTestResultService(results *stubResultRepository, accounts *stubAccountRepository) *ResultService {
	return NewResultService(results, accounts, idgen.NewRandomGenerator())
}

func TestResultService_Submit(t *testing.T) {
	results := &stubResultRepository{}
	accounts := &stubAccountRepository{byID: map[string]account.Record{
		"a1": {ID: "a1", Name: "Asha"},
	}}
	service := newTestResultService(results, accounts)

	score := 87.5
	reps := 30
	got, err := service.Submit(context.Background(), SubmitInput{
		AthleteID: "a1",
		Exercise:  "situps",
		Score:     &score,
		Reps:      &reps,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if got.ID == "" {
		t.Fatalf("expected generated result id")
	}
	if got.Score != 87.5 || got.Exercise != "situps" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
	if len(results.records) != 1 {
		t.Fatalf("expected record persisted, got %d", len(results.records))
	}
}

func TestResultService_Submit_DefaultsExerciseAndScore(t *testing.T) {
	accounts := &stubAccountRepository{byID: map[string]account.Record{
		"a1": {ID: "a1"},
	}}
	service := newTestResultService(&stubResultRepository{}, accounts)

	got, err := service.Submit(context.Background(), SubmitInput{AthleteID: "a1"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.Exercise != "unknown" {
		t.Fatalf("expected default exercise label, got %q", got.Exercise)
	}
	if got.Score != 0 {
		t.Fatalf("expected missing score coerced to 0, got %f", got.Score)
	}
}

func TestResultService_Submit_UnknownAthlete(t *testing.T) {
	service := newTestResultService(&stubResultRepository{}, &stubAccountRepository{})

	_, err := service.Submit(context.Background(), SubmitInput{AthleteID: "nobody", Exercise: "situps"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResultService_Submit_RequiresAthleteID(t *testing.T) {
	service := newTestResultService(&stubResultRepository{}, &stubAccountRepository{})

	_, err := service.Submit(context.Background(), SubmitInput{Exercise: "situps"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
