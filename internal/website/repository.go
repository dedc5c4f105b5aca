package website

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, website *Website) error
	Get(ctx context.Context, id string) (*Website, error)
	ListByUser(ctx context.Context, userID string) ([]*Website, error)
}
