package memory

import (
	"context"
	"sync"

	"github.com/khelsetu/arena/internal/domain/profile"
)

type ProfileRepository struct {
	mu    sync.RWMutex
	items map[string]profile.Record
}

func NewProfileRepository(profiles []profile.Record) *ProfileRepository {
	items := make(map[string]profile.Record, len(profiles))
	for _, p := range profiles {
		items[p.UserID] = p
	}

	return &ProfileRepository{items: items}
}

func (r *ProfileRepository) GetByUserID(_ context.Context, athleteID string) (profile.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[athleteID]
	if !ok {
		return profile.Record{}, false, nil
	}

	return p, true, nil
}

func (r *ProfileRepository) GetByUserIDs(_ context.Context, athleteIDs []string) (map[string]profile.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]profile.Record, len(athleteIDs))
	for _, id := range athleteIDs {
		if p, ok := r.items[id]; ok {
			out[id] = p
		}
	}

	return out, nil
}
