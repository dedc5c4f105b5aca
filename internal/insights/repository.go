package insights

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, insight *Insight) error
	ListByWebsite(ctx context.Context, websiteID string) ([]*Insight, error)
	DeleteByWebsite(ctx context.Context, websiteID string) error

	// Replace swaps the full insight set for a website in one step.
	// Implementations must not let a concurrent Replace for the same
	// website interleave with this one.
	Replace(ctx context.Context, websiteID string, insights []*Insight) error
}
