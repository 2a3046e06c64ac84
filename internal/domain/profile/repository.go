package profile

import "context"

// Repository describes profile persistence needs from use cases.
type Repository interface {
	GetByUserID(ctx context.Context, athleteID string) (Record, bool, error)
	GetByUserIDs(ctx context.Context, athleteIDs []string) (map[string]Record, error)
}
