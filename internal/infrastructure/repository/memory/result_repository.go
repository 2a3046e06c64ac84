package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/khelsetu/arena/internal/domain/result"
)

type ResultRepository struct {
	mu    sync.RWMutex
	items []result.Record
}

func NewResultRepository(records []result.Record) *ResultRepository {
	items := make([]result.Record, len(records))
	copy(items, records)

	return &ResultRepository{items: items}
}

func (r *ResultRepository) ListAll(_ context.Context) ([]result.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Record, len(r.items))
	copy(out, r.items)

	return out, nil
}

func (r *ResultRepository) ListByAthlete(_ context.Context, athleteID string) ([]result.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Record, 0)
	for _, record := range r.items {
		if record.AthleteID == athleteID {
			out = append(out, record)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *ResultRepository) Create(_ context.Context, record result.Record) (result.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, record)

	return record, nil
}
