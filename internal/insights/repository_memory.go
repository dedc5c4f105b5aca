package insights

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	insights map[string]*Insight
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		insights: make(map[string]*Insight),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, insight *Insight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.create(insight)
	return nil
}

// create assumes r.mu is held.
func (r *InMemoryRepository) create(insight *Insight) {
	if insight.ID == "" {
		insight.ID = uuid.New().String()
	}
	copied := *insight
	r.insights[insight.ID] = &copied
}

func (r *InMemoryRepository) ListByWebsite(ctx context.Context, websiteID string) ([]*Insight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*Insight{}
	for _, insight := range r.insights {
		if insight.WebsiteID == websiteID {
			copied := *insight
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) DeleteByWebsite(ctx context.Context, websiteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteByWebsite(websiteID)
	return nil
}

// deleteByWebsite assumes r.mu is held.
func (r *InMemoryRepository) deleteByWebsite(websiteID string) {
	for id, insight := range r.insights {
		if insight.WebsiteID == websiteID {
			delete(r.insights, id)
		}
	}
}

// Replace deletes and reinserts under one lock, so two concurrent
// refreshes for the same website cannot interleave.
func (r *InMemoryRepository) Replace(ctx context.Context, websiteID string, insights []*Insight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deleteByWebsite(websiteID)
	for _, insight := range insights {
		r.create(insight)
	}
	return nil
}
