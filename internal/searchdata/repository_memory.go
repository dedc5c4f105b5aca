package searchdata

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu        sync.Mutex
	snapshots map[string]*Snapshot
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		snapshots: make(map[string]*Snapshot),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, snapshot *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now()
	}
	copied := *snapshot
	r.snapshots[snapshot.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Find(ctx context.Context, websiteID, startDate, endDate string) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, snapshot := range r.snapshots {
		if snapshot.WebsiteID == websiteID &&
			snapshot.StartDate == startDate &&
			snapshot.EndDate == endDate {
			copied := *snapshot
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}
