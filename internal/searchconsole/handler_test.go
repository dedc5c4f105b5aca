package searchconsole

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeTokens struct {
	token string
}

func (f *fakeTokens) GoogleAccessToken(ctx context.Context, userID string) (string, error) {
	return f.token, nil
}

type fakeSnapshots struct {
	saved map[string]*SearchAnalytics
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{saved: make(map[string]*SearchAnalytics)}
}

func (f *fakeSnapshots) Save(ctx context.Context, websiteID string, data *SearchAnalytics) error {
	f.saved[websiteID+"|"+data.StartDate+"|"+data.EndDate] = data
	return nil
}

func (f *fakeSnapshots) Find(ctx context.Context, websiteID, startDate, endDate string) (*SearchAnalytics, error) {
	if data, ok := f.saved[websiteID+"|"+startDate+"|"+endDate]; ok {
		return data, nil
	}
	return nil, errNoSnapshot
}

var errNoSnapshot = errors.New("no snapshot")

func setupAnalyticsRouter(upstream string, tokens *fakeTokens, snapshots *fakeSnapshots) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewClientWithBaseURL(upstream, nil), tokens, snapshots)

	authed := r.Group("", func(c *gin.Context) {
		c.Set("userID", "user-1")
		c.Next()
	})
	authed.GET("/api/search-console/analytics", handler.Analytics)
	authed.GET("/api/search-console/summary", handler.Summary)

	return r
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestAnalyticsEndpoint_MissingParams(t *testing.T) {
	r := setupAnalyticsRouter("http://localhost:0", &fakeTokens{token: "tok"}, newFakeSnapshots())

	req := httptest.NewRequest(http.MethodGet, "/api/search-console/analytics?siteUrl=https://example.com/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestAnalyticsEndpoint_NotConnected(t *testing.T) {
	r := setupAnalyticsRouter("http://localhost:0", &fakeTokens{token: ""}, newFakeSnapshots())

	req := httptest.NewRequest(http.MethodGet,
		"/api/search-console/analytics?siteUrl=https://example.com/&startDate=2026-01-01&endDate=2026-01-28", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 when not connected, got %d", w.Code)
	}
}

func TestAnalyticsEndpoint_FetchesAndCaches(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"rows":[{"keys":["buy shoes"],"clicks":20,"impressions":200,"ctr":0.1,"position":7.2}]}`))
	}))
	defer server.Close()

	snapshots := newFakeSnapshots()
	r := setupAnalyticsRouter(server.URL, &fakeTokens{token: "tok"}, snapshots)

	url := "/api/search-console/analytics?siteUrl=https://example.com/&startDate=2026-01-01&endDate=2026-01-28&websiteId=site-1"

	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(snapshots.saved) != 1 {
		t.Fatalf("expected snapshot to be cached, have %d", len(snapshots.saved))
	}

	// Second identical request is served from the snapshot.
	req2 := httptest.NewRequest(http.MethodGet, url, nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)

	if w2.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w2.Code)
	}
	if calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls)
	}
}

func TestSummaryEndpoint_UsesSharedAggregation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rows":[
			{"keys":["a"],"clicks":10,"impressions":100,"ctr":0.1,"position":5},
			{"keys":["b"],"clicks":5,"impressions":50,"ctr":0.1,"position":15}
		]}`))
	}))
	defer server.Close()

	r := setupAnalyticsRouter(server.URL, &fakeTokens{token: "tok"}, newFakeSnapshots())

	req := httptest.NewRequest(http.MethodGet,
		"/api/search-console/summary?siteUrl=https://example.com/&startDate=2026-01-01&endDate=2026-01-28", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var summary Summary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decoding summary: %v", err)
	}

	if summary.TotalClicks != 15 || summary.TotalImpressions != 150 {
		t.Errorf("unexpected totals: %+v", summary)
	}
	if !almostEqual(summary.AvgPosition, 1250.0/150.0) {
		t.Errorf("expected weighted position %f, got %f", 1250.0/150.0, summary.AvgPosition)
	}
}
