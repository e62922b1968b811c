package socket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"DevHub/dao/cache"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newPresenceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	rds := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	h := &WSHandler{Hub: NewHub(cache.NewOnlineStorage(rds))}
	r := gin.New()
	h.RegisterRouter(r)
	return r
}

func TestPresence_RejectsBadUserID(t *testing.T) {
	r := newPresenceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/presence/abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPresence_OfflineWithoutRegistry(t *testing.T) {
	r := newPresenceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/presence/42", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `"online":false`) {
		t.Fatalf("unexpected body %q", body)
	}
}
