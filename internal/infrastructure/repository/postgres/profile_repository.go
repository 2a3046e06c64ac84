package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/khelsetu/arena/internal/domain/profile"
	qb "github.com/khelsetu/arena/internal/platform/querybuilder"
)

type ProfileRepository struct {
	db *sqlx.DB
}

var profileSelectColumns = []string{
	"user_id",
	"name",
	"sport",
	"state",
	"profile_image",
	"updated_at",
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, athleteID string) (profile.Record, bool, error) {
	query, args, err := qb.Select(profileSelectColumns...).From("profiles").
		Where(qb.Eq("user_id", athleteID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return profile.Record{}, false, fmt.Errorf("build select profile query: %w", err)
	}

	var row profileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Record{}, false, nil
		}
		return profile.Record{}, false, fmt.Errorf("select profile: %w", err)
	}

	return profileRowToRecord(row), true, nil
}

func (r *ProfileRepository) GetByUserIDs(ctx context.Context, athleteIDs []string) (map[string]profile.Record, error) {
	if len(athleteIDs) == 0 {
		return map[string]profile.Record{}, nil
	}

	query, args, err := qb.Select(profileSelectColumns...).From("profiles").
		Where(qb.In("user_id", stringSliceToAny(athleteIDs))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select profiles by ids query: %w", err)
	}

	var rows []profileTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select profiles by ids: %w", err)
	}

	out := make(map[string]profile.Record, len(rows))
	for _, row := range rows {
		out[row.UserID] = profileRowToRecord(row)
	}

	return out, nil
}

func profileRowToRecord(row profileTableModel) profile.Record {
	return profile.Record{
		UserID:       row.UserID,
		Name:         row.Name,
		Sport:        row.Sport,
		State:        row.State,
		ProfileImage: row.ProfileImage,
		UpdatedAt:    row.UpdatedAt,
	}
}
