package analysis

import (
	"context"
	"strings"
)

const (
	analysisMaxTokens        = 1500
	recommendationsMaxTokens = 800
	trendSummaryMaxTokens    = 500
)

type Service struct {
	client Completer
}

func NewService(client Completer) *Service {
	return &Service{client: client}
}

// AnalyzeSearchData asks the model for a structured analysis of one
// search data snapshot. A reply that cannot be parsed by any tier
// surfaces as ErrParse; there is no fallback in this mode.
func (s *Service) AnalyzeSearchData(ctx context.Context, data any) (*Analysis, error) {
	content, err := s.client.Complete(ctx, BuildAnalysisPrompt(data), analysisMaxTokens)
	if err != nil {
		return nil, err
	}

	var result Analysis
	if err := decodeJSON(content, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// QueryRecommendations asks the model for 3-5 actionable recommendations
// for a single query. When no tier yields JSON the raw reply is returned
// as a single-element list, so this mode never fails on parsing.
func (s *Service) QueryRecommendations(ctx context.Context, query string, data any) ([]string, error) {
	content, err := s.client.Complete(ctx, BuildQueryRecommendationsPrompt(query, data), recommendationsMaxTokens)
	if err != nil {
		return nil, err
	}

	var recommendations []string
	if err := decodeJSON(content, &recommendations); err != nil {
		return []string{strings.TrimSpace(content)}, nil
	}

	return recommendations, nil
}

// SummarizeTrends returns a prose summary of historical performance.
func (s *Service) SummarizeTrends(ctx context.Context, data any) (string, error) {
	content, err := s.client.Complete(ctx, BuildTrendSummaryPrompt(data), trendSummaryMaxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}
