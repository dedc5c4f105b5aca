package searchdata

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("search data snapshot not found")

// Repository defines the data-access contract.
type Repository interface {
	Create(ctx context.Context, snapshot *Snapshot) error
	Find(ctx context.Context, websiteID, startDate, endDate string) (*Snapshot, error)
}
