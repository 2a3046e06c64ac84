package account

import "context"

// Repository describes account persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, athleteID string) (Record, bool, error)
	GetByIDs(ctx context.Context, athleteIDs []string) (map[string]Record, error)
}
