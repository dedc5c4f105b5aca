package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// --------------------------------------------------
// Mock Completer
// --------------------------------------------------

type mockCompleter struct {
	reply         string
	err           error
	lastPrompt    string
	lastMaxTokens int
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	m.lastPrompt = prompt
	m.lastMaxTokens = maxTokens
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestAnalyzeSearchData_Success(t *testing.T) {
	mock := &mockCompleter{
		reply: `{"summary":"steady growth","insights":[{"type":"positive","title":"CTR up","description":"CTR improved"}],"topPerformers":{"queries":[{"name":"buy shoes","reason":"high intent"}],"pages":[]},"recommendations":["add schema"]}`,
	}
	service := NewService(mock)

	result, err := service.AnalyzeSearchData(context.Background(), map[string]any{"rows": []any{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Summary != "steady growth" {
		t.Errorf("unexpected summary %q", result.Summary)
	}
	if len(result.Insights) != 1 || result.Insights[0].Type != "positive" {
		t.Errorf("unexpected insights: %+v", result.Insights)
	}
	if mock.lastMaxTokens != analysisMaxTokens {
		t.Errorf("expected max tokens %d, got %d", analysisMaxTokens, mock.lastMaxTokens)
	}
}

func TestAnalyzeSearchData_PromptCarriesDataVerbatim(t *testing.T) {
	mock := &mockCompleter{reply: `{"summary":"ok","insights":[],"topPerformers":{"queries":[],"pages":[]},"recommendations":[]}`}
	service := NewService(mock)

	data := map[string]any{
		"total_clicks":      20,
		"total_impressions": 200,
		"avg_ctr":           0.1,
		"avg_position":      7.2,
	}

	if _, err := service.AnalyzeSearchData(context.Background(), data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The prompt must embed the serialized input itself, not a
	// re-derived version of it.
	if !strings.Contains(mock.lastPrompt, marshalData(data)) {
		t.Fatalf("prompt does not contain the serialized input:\n%s", mock.lastPrompt)
	}
}

func TestAnalyzeSearchData_ProseIsParseError(t *testing.T) {
	mock := &mockCompleter{reply: "Overall the site is doing fine."}
	service := NewService(mock)

	_, err := service.AnalyzeSearchData(context.Background(), map[string]any{})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestAnalyzeSearchData_UpstreamErrorPropagates(t *testing.T) {
	upstream := &UpstreamError{Message: "rate limited"}
	mock := &mockCompleter{err: upstream}
	service := NewService(mock)

	_, err := service.AnalyzeSearchData(context.Background(), map[string]any{})

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestQueryRecommendations_JSONReply(t *testing.T) {
	mock := &mockCompleter{reply: `["improve title tags","target long-tail variants","add FAQ schema"]`}
	service := NewService(mock)

	recs, err := service.QueryRecommendations(context.Background(), "buy shoes", map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	if mock.lastMaxTokens != recommendationsMaxTokens {
		t.Errorf("expected max tokens %d, got %d", recommendationsMaxTokens, mock.lastMaxTokens)
	}
	if !strings.Contains(mock.lastPrompt, `"buy shoes"`) {
		t.Errorf("prompt must name the query:\n%s", mock.lastPrompt)
	}
}

func TestQueryRecommendations_ProseFallsBack(t *testing.T) {
	mock := &mockCompleter{reply: "  Just write better content.  "}
	service := NewService(mock)

	recs, err := service.QueryRecommendations(context.Background(), "buy shoes", map[string]any{})
	if err != nil {
		t.Fatalf("prose reply must not fail: %v", err)
	}

	if len(recs) != 1 || recs[0] != "Just write better content." {
		t.Fatalf("expected single trimmed element, got %v", recs)
	}
}

func TestSummarizeTrends(t *testing.T) {
	mock := &mockCompleter{reply: "\nClicks rose steadily over the period.\n"}
	service := NewService(mock)

	summary, err := service.SummarizeTrends(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary != "Clicks rose steadily over the period." {
		t.Errorf("expected trimmed prose, got %q", summary)
	}
	if mock.lastMaxTokens != trendSummaryMaxTokens {
		t.Errorf("expected max tokens %d, got %d", trendSummaryMaxTokens, mock.lastMaxTokens)
	}
}
