package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/arnikanord/gsc-for-seo-new/internal/analysis"
)

// ValidationError carries field-level detail for a 400 response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid insight: %s %s", e.Field, e.Reason)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Replace validates the model's suggestions, stamps them, and swaps the
// full insight set for the website. All-or-nothing: a bad suggestion
// rejects the whole batch and the stored set is untouched.
func (s *Service) Replace(
	ctx context.Context,
	websiteID string,
	suggestions []analysis.InsightSuggestion,
) ([]*Insight, error) {

	if websiteID == "" {
		return nil, &ValidationError{Field: "websiteId", Reason: "is required"}
	}

	now := time.Now()
	batch := make([]*Insight, 0, len(suggestions))

	for _, suggestion := range suggestions {
		if !validType(suggestion.Type) {
			return nil, &ValidationError{
				Field:  "type",
				Reason: fmt.Sprintf("must be positive, opportunity or info, got %q", suggestion.Type),
			}
		}
		if suggestion.Title == "" {
			return nil, &ValidationError{Field: "title", Reason: "is required"}
		}
		if suggestion.Description == "" {
			return nil, &ValidationError{Field: "description", Reason: "is required"}
		}

		batch = append(batch, &Insight{
			WebsiteID:   websiteID,
			Type:        suggestion.Type,
			Title:       suggestion.Title,
			Description: suggestion.Description,
			CreatedAt:   now,
		})
	}

	if err := s.repo.Replace(ctx, websiteID, batch); err != nil {
		return nil, err
	}

	return batch, nil
}

// List returns the current insight set for a website, order unspecified.
func (s *Service) List(ctx context.Context, websiteID string) ([]*Insight, error) {
	return s.repo.ListByWebsite(ctx, websiteID)
}
