package website

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("website not found")

type InMemoryRepository struct {
	mu       sync.Mutex
	websites map[string]*Website
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		websites: make(map[string]*Website),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, website *Website) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if website.ID == "" {
		website.ID = uuid.New().String()
	}
	if website.CreatedAt.IsZero() {
		website.CreatedAt = time.Now()
	}
	copied := *website
	r.websites[website.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Website, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	website, ok := r.websites[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *website
	return &copied, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Website, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*Website{}
	for _, website := range r.websites {
		if website.UserID == userID {
			copied := *website
			result = append(result, &copied)
		}
	}
	return result, nil
}
