package insights

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(NewInMemoryRepository()))
	r.POST("/api/insights", handler.Replace)
	r.GET("/api/insights/:websiteId", handler.List)

	return r
}

func TestReplaceEndpoint_Success(t *testing.T) {
	r := setupTestRouter()

	payload := map[string]any{
		"websiteId": "site-1",
		"insights": []map[string]string{
			{"type": "positive", "title": "CTR improving", "description": "CTR rose over the period"},
		},
	}

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/insights", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReplaceEndpoint_MissingWebsiteID(t *testing.T) {
	r := setupTestRouter()

	body, _ := json.Marshal(map[string]any{"insights": []map[string]string{}})
	req := httptest.NewRequest(http.MethodPost, "/api/insights", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestReplaceEndpoint_InvalidType(t *testing.T) {
	r := setupTestRouter()

	payload := map[string]any{
		"websiteId": "site-1",
		"insights": []map[string]string{
			{"type": "negative", "title": "t", "description": "d"},
		},
	}

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/insights", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestListEndpoint_ReturnsReplacedSet(t *testing.T) {
	r := setupTestRouter()

	payload := map[string]any{
		"websiteId": "site-1",
		"insights": []map[string]string{
			{"type": "opportunity", "title": "Low CTR pages", "description": "Several pages rank well but get few clicks"},
			{"type": "info", "title": "Mobile heavy", "description": "Most impressions come from mobile"},
		},
	}

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/insights", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	req2 := httptest.NewRequest(http.MethodGet, "/api/insights/site-1", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)

	if w2.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w2.Code)
	}

	var listed []Insight
	if err := json.Unmarshal(w2.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(listed))
	}
}
