package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func authRouter(t *testing.T, key string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", StudentAuth(key), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"roll": c.GetString(RollKey)})
	})
	return r
}

func doGet(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json body %q: %v", w.Body.String(), err)
	}
	return body["detail"]
}

func TestStudentAuthMissingHeader(t *testing.T) {
	w := doGet(authRouter(t, "secret"), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := detailOf(t, w); got != "Not authenticated" {
		t.Errorf("detail = %q", got)
	}
}

func TestStudentAuthWrongScheme(t *testing.T) {
	w := doGet(authRouter(t, "secret"), "Basic abc123")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestStudentAuthExpiredToken(t *testing.T) {
	token, _, err := Issue("101", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	w := doGet(authRouter(t, "secret"), "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := detailOf(t, w); got != "Token expired" {
		t.Errorf("detail = %q, want Token expired", got)
	}
}

func TestStudentAuthForeignToken(t *testing.T) {
	token, _, err := Issue("101", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	w := doGet(authRouter(t, "secret"), "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := detailOf(t, w); got != "Invalid token" {
		t.Errorf("detail = %q, want Invalid token", got)
	}
}

func TestStudentAuthValidToken(t *testing.T) {
	token, _, err := Issue("101", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	w := doGet(authRouter(t, "secret"), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["roll"] != "101" {
		t.Errorf("roll = %q, want 101", body["roll"])
	}
}
