package searchdata

import (
	"context"

	"github.com/arnikanord/gsc-for-seo-new/internal/searchconsole"
)

// Service exposes snapshot caching in terms of SearchAnalytics values.
// It satisfies searchconsole.SnapshotStore.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Save(ctx context.Context, websiteID string, data *searchconsole.SearchAnalytics) error {
	return s.repo.Create(ctx, &Snapshot{
		WebsiteID: websiteID,
		Data:      *data,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
	})
}

func (s *Service) Find(ctx context.Context, websiteID, startDate, endDate string) (*searchconsole.SearchAnalytics, error) {
	snapshot, err := s.repo.Find(ctx, websiteID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	data := snapshot.Data
	return &data, nil
}
