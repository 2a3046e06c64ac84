package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/khelsetu/arena/internal/domain/account"
	"github.com/khelsetu/arena/internal/domain/profile"
	"github.com/khelsetu/arena/internal/domain/result"
)

// View selects the geographic scope of a leaderboard.
type View string

const (
	ViewGlobal   View = "global"
	ViewState    View = "state"
	ViewDistrict View = "district"
)

// ParseView maps a raw selector onto a view. Unrecognized values widen to
// global; an empty value falls back to the supplied default so the configured
// district-first behavior is preserved.
func ParseView(raw string, fallback View) View {
	switch View(strings.ToLower(strings.TrimSpace(raw))) {
	case ViewDistrict:
		return ViewDistrict
	case ViewState:
		return ViewState
	case ViewGlobal:
		return ViewGlobal
	case "":
		return fallback
	default:
		return ViewGlobal
	}
}

// LeaderboardEntry is one ranked row of the cross-population leaderboard.
type LeaderboardEntry struct {
	AthleteID  string
	Name       string
	State      string
	District   string
	ImageURL   string
	Score      int
	TestsCount int
	Rank       int
}

const defaultIdentityWorkers = 8

type LeaderboardService struct {
	resultRepo  result.Repository
	accountRepo account.Repository
	profileRepo profile.Repository
	workers     int
}

func NewLeaderboardService(
	resultRepo result.Repository,
	accountRepo account.Repository,
	profileRepo profile.Repository,
) *LeaderboardService {
	return &LeaderboardService{
		resultRepo:  resultRepo,
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		workers:     defaultIdentityWorkers,
	}
}

// WithWorkers overrides the identity fan-out pool size.
func (s *LeaderboardService) WithWorkers(n int) *LeaderboardService {
	if n > 0 {
		s.workers = n
	}
	return s
}

// Build fetches the full result set, resolves every athlete's identity and
// returns the ranked, view-filtered leaderboard. Identity lookups for the N
// athletes are independent and fan out over a bounded worker pool; all
// lookups complete before sorting starts.
func (s *LeaderboardService) Build(ctx context.Context, view View) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Build")
	defer span.End()

	records, err := s.resultRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	if len(records) == 0 {
		return []LeaderboardEntry{}, nil
	}

	athleteIDs := distinctAthleteIDs(records)
	accounts, profiles, err := s.fetchIdentityRecords(ctx, athleteIDs)
	if err != nil {
		return nil, err
	}

	return BuildLeaderboard(records, accounts, profiles, view), nil
}

// fetchIdentityRecords loads account and profile records for the given
// athletes, chunked across a worker pool.
func (s *LeaderboardService) fetchIdentityRecords(
	ctx context.Context,
	athleteIDs []string,
) (map[string]account.Record, map[string]profile.Record, error) {
	workers := s.workers
	if workers < 1 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, nil, fmt.Errorf("create identity worker pool: %w", err)
	}
	defer pool.Release()

	accounts := make(map[string]account.Record, len(athleteIDs))
	profiles := make(map[string]profile.Record, len(athleteIDs))

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	record := func(accs map[string]account.Record, profs map[string]profile.Record, taskErr error) {
		mu.Lock()
		defer mu.Unlock()
		if taskErr != nil {
			if firstErr == nil {
				firstErr = taskErr
			}
			return
		}
		for id, acc := range accs {
			accounts[id] = acc
		}
		for id, prof := range profs {
			profiles[id] = prof
		}
	}

	for _, chunk := range chunkIDs(athleteIDs, workers) {
		chunk := chunk
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			accs, accErr := s.accountRepo.GetByIDs(ctx, chunk)
			if accErr != nil {
				record(nil, nil, fmt.Errorf("get accounts: %w", accErr))
				return
			}
			profs, profErr := s.profileRepo.GetByUserIDs(ctx, chunk)
			if profErr != nil {
				record(nil, nil, fmt.Errorf("get profiles: %w", profErr))
				return
			}
			record(accs, profs, nil)
		}); err != nil {
			wg.Done()
			return nil, nil, fmt.Errorf("submit identity lookup: %w", err)
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, nil, firstErr
	}

	return accounts, profiles, nil
}

// BuildLeaderboard is the pure ranking core: aggregate, enrich, sort, filter,
// rank. Entries sort by score descending with athlete ID ascending as the
// deterministic tie-break. Ranks are a dense 1-based sequence over the
// filtered list; tied scores do not share a rank. Athletes missing identity
// records are never dropped.
func BuildLeaderboard(
	records []result.Record,
	accounts map[string]account.Record,
	profiles map[string]profile.Record,
	view View,
) []LeaderboardEntry {
	aggregates := AggregateScores(records)

	entries := make([]LeaderboardEntry, 0, len(aggregates))
	for athleteID, agg := range aggregates {
		var acct *account.Record
		if a, ok := accounts[athleteID]; ok {
			acct = &a
		}
		var prof *profile.Record
		if p, ok := profiles[athleteID]; ok {
			prof = &p
		}

		identity := ResolveIdentity(acct, prof)
		entries = append(entries, LeaderboardEntry{
			AthleteID:  athleteID,
			Name:       identity.Name,
			State:      identity.State,
			District:   identity.District,
			ImageURL:   identity.ImageURL,
			Score:      roundHalfUp(agg.AverageScore),
			TestsCount: agg.TestsCount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].AthleteID < entries[j].AthleteID
	})

	entries = filterByView(entries, view)
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

func filterByView(entries []LeaderboardEntry, view View) []LeaderboardEntry {
	switch view {
	case ViewDistrict:
		return filterEntries(entries, func(e LeaderboardEntry) bool { return e.District != "" })
	case ViewState:
		return filterEntries(entries, func(e LeaderboardEntry) bool { return e.State != "" })
	default:
		return entries
	}
}

func filterEntries(entries []LeaderboardEntry, keep func(LeaderboardEntry) bool) []LeaderboardEntry {
	out := entries[:0]
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func distinctAthleteIDs(records []result.Record) []string {
	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.AthleteID]; ok {
			continue
		}
		seen[r.AthleteID] = struct{}{}
		ids = append(ids, r.AthleteID)
	}
	return ids
}

func chunkIDs(ids []string, chunks int) [][]string {
	if chunks < 1 {
		chunks = 1
	}
	size := (len(ids) + chunks - 1) / chunks
	if size < 1 {
		size = 1
	}

	out := make([][]string, 0, chunks)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}
