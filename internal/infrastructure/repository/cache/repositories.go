package cache

import (
	"context"
	"sort"
	"strings"

	"github.com/khelsetu/arena/internal/domain/account"
	"github.com/khelsetu/arena/internal/domain/profile"
	"github.com/khelsetu/arena/internal/domain/result"
	basecache "github.com/khelsetu/arena/internal/platform/cache"
)

type AccountRepository struct {
	next  account.Repository
	cache *basecache.Store
}

func NewAccountRepository(next account.Repository, cache *basecache.Store) *AccountRepository {
	return &AccountRepository{next: next, cache: cache}
}

func (r *AccountRepository) GetByID(ctx context.Context, athleteID string) (account.Record, bool, error) {
	key := "account:id:" + athleteID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, athleteID)
		if err != nil {
			return nil, err
		}
		return cachedAccountByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return account.Record{}, false, err
	}

	cached, _ := v.(cachedAccountByID)
	return cached.value, cached.exists, nil
}

func (r *AccountRepository) GetByIDs(ctx context.Context, athleteIDs []string) (map[string]account.Record, error) {
	key := "account:ids:" + batchKey(athleteIDs)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.GetByIDs(ctx, athleteIDs)
		if err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.(map[string]account.Record)
	out := make(map[string]account.Record, len(items))
	for id, item := range items {
		out[id] = item
	}
	return out, nil
}

type cachedAccountByID struct {
	value  account.Record
	exists bool
}

type ProfileRepository struct {
	next  profile.Repository
	cache *basecache.Store
}

func NewProfileRepository(next profile.Repository, cache *basecache.Store) *ProfileRepository {
	return &ProfileRepository{next: next, cache: cache}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, athleteID string) (profile.Record, bool, error) {
	key := "profile:id:" + athleteID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByUserID(ctx, athleteID)
		if err != nil {
			return nil, err
		}
		return cachedProfileByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return profile.Record{}, false, err
	}

	cached, _ := v.(cachedProfileByID)
	return cached.value, cached.exists, nil
}

func (r *ProfileRepository) GetByUserIDs(ctx context.Context, athleteIDs []string) (map[string]profile.Record, error) {
	key := "profile:ids:" + batchKey(athleteIDs)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.GetByUserIDs(ctx, athleteIDs)
		if err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.(map[string]profile.Record)
	out := make(map[string]profile.Record, len(items))
	for id, item := range items {
		out[id] = item
	}
	return out, nil
}

type cachedProfileByID struct {
	value  profile.Record
	exists bool
}

type ResultRepository struct {
	next  result.Repository
	cache *basecache.Store
}

func NewResultRepository(next result.Repository, cache *basecache.Store) *ResultRepository {
	return &ResultRepository{next: next, cache: cache}
}

func (r *ResultRepository) ListAll(ctx context.Context) ([]result.Record, error) {
	v, err := r.cache.GetOrLoad(ctx, "result:list", func(ctx context.Context) (any, error) {
		items, err := r.next.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return append([]result.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]result.Record)
	return append([]result.Record(nil), items...), nil
}

func (r *ResultRepository) ListByAthlete(ctx context.Context, athleteID string) ([]result.Record, error) {
	key := "result:athlete:" + athleteID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByAthlete(ctx, athleteID)
		if err != nil {
			return nil, err
		}
		return append([]result.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]result.Record)
	return append([]result.Record(nil), items...), nil
}

// Create writes through and drops every result key so the next leaderboard
// or summary read sees the new record.
func (r *ResultRepository) Create(ctx context.Context, record result.Record) (result.Record, error) {
	created, err := r.next.Create(ctx, record)
	if err != nil {
		return result.Record{}, err
	}

	r.cache.DeletePrefix(ctx, "result:")

	return created, nil
}

func batchKey(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
