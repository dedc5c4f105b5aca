package website

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Connect registers a website for a user. Connecting the same URL twice
// returns the existing row instead of creating a duplicate.
func (s *Service) Connect(ctx context.Context, userID, url, siteURL, permissionLevel string) (*Website, error) {
	if userID == "" || url == "" || siteURL == "" {
		return nil, errors.New("missing required fields")
	}

	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, w := range existing {
		if w.URL == url {
			return w, nil
		}
	}

	website := &Website{
		UserID:          userID,
		URL:             url,
		SiteURL:         siteURL,
		PermissionLevel: permissionLevel,
	}
	if err := s.repo.Create(ctx, website); err != nil {
		return nil, err
	}
	return website, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Website, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]*Website, error) {
	return s.repo.ListByUser(ctx, userID)
}
