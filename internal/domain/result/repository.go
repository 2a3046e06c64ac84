package result

import "context"

// Repository describes result persistence needs from use cases.
type Repository interface {
	ListAll(ctx context.Context) ([]Record, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]Record, error)
	Create(ctx context.Context, record Record) (Record, error)
}
