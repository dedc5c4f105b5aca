package auth

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

	handler := NewHandler(NewService(NewInMemoryUserRepository()), NewGoogleConnector())
	r.POST("/api/auth/register", handler.Register)
	r.POST("/api/auth/login", handler.Login)

	return r
}

func postJSON(r *gin.Engine, path string, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupTestRouter()

	w := postJSON(r, "/api/auth/register", map[string]string{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["token"] == "" || resp["token"] == nil {
		t.Fatal("expected a session token in the response")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupTestRouter()

	w := postJSON(r, "/api/auth/register", map[string]string{
		"email": "test@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupTestRouter()

	payload := map[string]string{
		"username": "testuser",
		"password": "Password@123",
	}

	w1 := postJSON(r, "/api/auth/register", payload)
	if w1.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w1.Code)
	}

	w2 := postJSON(r, "/api/auth/register", payload)
	if w2.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w2.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupTestRouter()

	postJSON(r, "/api/auth/register", map[string]string{
		"username": "testuser",
		"password": "Password@123",
	})

	w := postJSON(r, "/api/auth/login", map[string]string{
		"username": "testuser",
		"password": "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}
