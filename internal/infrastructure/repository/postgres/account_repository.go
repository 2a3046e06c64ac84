package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/khelsetu/arena/internal/domain/account"
	qb "github.com/khelsetu/arena/internal/platform/querybuilder"
)

type AccountRepository struct {
	db *sqlx.DB
}

var accountSelectColumns = []string{
	"id",
	"name",
	"first_name",
	"last_name",
	"email",
	"username",
	"state",
	"district",
	"image_url",
	"created_at",
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByID(ctx context.Context, athleteID string) (account.Record, bool, error) {
	query, args, err := qb.Select(accountSelectColumns...).From("accounts").
		Where(qb.Eq("id", athleteID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return account.Record{}, false, fmt.Errorf("build select account query: %w", err)
	}

	var row accountTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return account.Record{}, false, nil
		}
		return account.Record{}, false, fmt.Errorf("select account: %w", err)
	}

	return accountRowToRecord(row), true, nil
}

func (r *AccountRepository) GetByIDs(ctx context.Context, athleteIDs []string) (map[string]account.Record, error) {
	if len(athleteIDs) == 0 {
		return map[string]account.Record{}, nil
	}

	query, args, err := qb.Select(accountSelectColumns...).From("accounts").
		Where(qb.In("id", stringSliceToAny(athleteIDs))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select accounts by ids query: %w", err)
	}

	var rows []accountTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select accounts by ids: %w", err)
	}

	out := make(map[string]account.Record, len(rows))
	for _, row := range rows {
		out[row.ID] = accountRowToRecord(row)
	}

	return out, nil
}

func accountRowToRecord(row accountTableModel) account.Record {
	return account.Record{
		ID:        row.ID,
		Name:      row.Name,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Username:  row.Username,
		State:     row.State,
		District:  row.District,
		ImageURL:  row.ImageURL,
		CreatedAt: row.CreatedAt,
	}
}
