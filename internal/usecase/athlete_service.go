package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/khelsetu/arena/internal/domain/account"
	"github.com/khelsetu/arena/internal/domain/profile"
	"github.com/khelsetu/arena/internal/domain/result"
)

// ProfilePage is the full payload backing an athlete's profile screen:
// account, optional profile and complete result history.
type ProfilePage struct {
	Account    account.Record
	HasAccount bool
	Profile    profile.Record
	HasProfile bool
	Results    []result.Record
}

// AthletePage is the athlete detail payload: result history plus the optional
// self-maintained profile.
type AthletePage struct {
	Results    []result.Record
	Profile    profile.Record
	HasProfile bool
}

type AthleteService struct {
	resultRepo  result.Repository
	accountRepo account.Repository
	profileRepo profile.Repository
}

func NewAthleteService(
	resultRepo result.Repository,
	accountRepo account.Repository,
	profileRepo profile.Repository,
) *AthleteService {
	return &AthleteService{
		resultRepo:  resultRepo,
		accountRepo: accountRepo,
		profileRepo: profileRepo,
	}
}

// GetProfilePage loads account, profile and results concurrently. An athlete
// with neither an account nor a profile does not exist.
func (s *AthleteService) GetProfilePage(ctx context.Context, athleteID string) (ProfilePage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AthleteService.GetProfilePage")
	defer span.End()

	athleteID = strings.TrimSpace(athleteID)
	if athleteID == "" {
		return ProfilePage{}, fmt.Errorf("%w: athlete id is required", ErrInvalidInput)
	}

	var page ProfilePage

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		acct, exists, err := s.accountRepo.GetByID(ctx, athleteID)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		page.Account = acct
		page.HasAccount = exists
		return nil
	})
	p.Go(func(ctx context.Context) error {
		prof, exists, err := s.profileRepo.GetByUserID(ctx, athleteID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		page.Profile = prof
		page.HasProfile = exists
		return nil
	})
	p.Go(func(ctx context.Context) error {
		records, err := s.resultRepo.ListByAthlete(ctx, athleteID)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		page.Results = records
		return nil
	})
	if err := p.Wait(); err != nil {
		return ProfilePage{}, err
	}

	if !page.HasAccount && !page.HasProfile {
		return ProfilePage{}, fmt.Errorf("%w: athlete=%s", ErrNotFound, athleteID)
	}

	return page, nil
}

// GetAthletePage loads an athlete's results and optional profile.
func (s *AthleteService) GetAthletePage(ctx context.Context, athleteID string) (AthletePage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AthleteService.GetAthletePage")
	defer span.End()

	athleteID = strings.TrimSpace(athleteID)
	if athleteID == "" {
		return AthletePage{}, fmt.Errorf("%w: athlete id is required", ErrInvalidInput)
	}

	records, err := s.resultRepo.ListByAthlete(ctx, athleteID)
	if err != nil {
		return AthletePage{}, fmt.Errorf("list results: %w", err)
	}

	prof, exists, err := s.profileRepo.GetByUserID(ctx, athleteID)
	if err != nil {
		return AthletePage{}, fmt.Errorf("get profile: %w", err)
	}

	return AthletePage{
		Results:    records,
		Profile:    prof,
		HasProfile: exists,
	}, nil
}
