package usecase

import (
	"context"
	"sort"

	"github.com/khelsetu/arena/internal/domain/account"
	"github.com/khelsetu/arena/internal/domain/profile"
	"github.com/khelsetu/arena/internal/domain/result"
)

type stubResultRepository struct {
	records   []result.Record
	listErr   error
	createErr error
}

func (r *stubResultRepository) ListAll(_ context.Context) ([]result.Record, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]result.Record(nil), r.records...), nil
}

func (r *stubResultRepository) ListByAthlete(_ context.Context, athleteID string) ([]result.Record, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]result.Record, 0)
	for _, rec := range r.records {
		if rec.AthleteID == athleteID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubResultRepository) Create(_ context.Context, record result.Record) (result.Record, error) {
	if r.createErr != nil {
		return result.Record{}, r.createErr
	}
	r.records = append(r.records, record)
	return record, nil
}

type stubAccountRepository struct {
	byID map[string]account.Record
	err  error
}

func (r *stubAccountRepository) GetByID(_ context.Context, athleteID string) (account.Record, bool, error) {
	if r.err != nil {
		return account.Record{}, false, r.err
	}
	acct, ok := r.byID[athleteID]
	return acct, ok, nil
}

func (r *stubAccountRepository) GetByIDs(_ context.Context, athleteIDs []string) (map[string]account.Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make(map[string]account.Record, len(athleteIDs))
	for _, id := range athleteIDs {
		if acct, ok := r.byID[id]; ok {
			out[id] = acct
		}
	}
	return out, nil
}

type stubProfileRepository struct {
	byUserID map[string]profile.Record
	err      error
}

func (r *stubProfileRepository) GetByUserID(_ context.Context, athleteID string) (profile.Record, bool, error) {
	if r.err != nil {
		return profile.Record{}, false, r.err
	}
	prof, ok := r.byUserID[athleteID]
	return prof, ok, nil
}

func (r *stubProfileRepository) GetByUserIDs(_ context.Context, athleteIDs []string) (map[string]profile.Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make(map[string]profile.Record, len(athleteIDs))
	for _, id := range athleteIDs {
		if prof, ok := r.byUserID[id]; ok {
			out[id] = prof
		}
	}
	return out, nil
}
