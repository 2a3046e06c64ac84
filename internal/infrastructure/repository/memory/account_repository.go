package memory

import (
	"context"
	"sync"

	"github.com/khelsetu/arena/internal/domain/account"
)

type AccountRepository struct {
	mu    sync.RWMutex
	items map[string]account.Record
}

func NewAccountRepository(accounts []account.Record) *AccountRepository {
	items := make(map[string]account.Record, len(accounts))
	for _, a := range accounts {
		items[a.ID] = a
	}

	return &AccountRepository{items: items}
}

func (r *AccountRepository) GetByID(_ context.Context, athleteID string) (account.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[athleteID]
	if !ok {
		return account.Record{}, false, nil
	}

	return a, true, nil
}

func (r *AccountRepository) GetByIDs(_ context.Context, athleteIDs []string) (map[string]account.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]account.Record, len(athleteIDs))
	for _, id := range athleteIDs {
		if a, ok := r.items[id]; ok {
			out[id] = a
		}
	}

	return out, nil
}
