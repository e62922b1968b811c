package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"DevHub/config"
	"DevHub/models"
	"DevHub/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type fakeFollowService struct {
	followed   []int64
	unfollowed []int64
}

func (f *fakeFollowService) Follow(ctx context.Context, followerID, followeeID int64) error {
	f.followed = append(f.followed, followeeID)
	return nil
}

func (f *fakeFollowService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	f.unfollowed = append(f.unfollowed, followeeID)
	return nil
}

func (f *fakeFollowService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return true, nil
}

func (f *fakeFollowService) GetFollowing(ctx context.Context, userID, viewerID int64, cursor int64, limit int) ([]*models.FollowingQueryResult, error) {
	return nil, nil
}

func (f *fakeFollowService) GetFollowers(ctx context.Context, userID, viewerID int64, cursor int64, limit int) ([]*models.FollowingQueryResult, error) {
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: &config.App{Env: "test", Debug: true},
		Jwt: &config.Jwt{Secret: "test-secret", AccessExpire: 3600},
	}
}

func newFollowRouter(svc *fakeFollowService) (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	h := &Follow{Config: cfg, FollowService: svc}
	r := gin.New()
	h.RegisterRouter(r)
	return r, cfg
}

func TestFollowUser_RequiresAuth(t *testing.T) {
	svc := &fakeFollowService{}
	r, _ := newFollowRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/v1/users/5/follow", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if len(svc.followed) != 0 {
		t.Fatal("service must not be called without auth")
	}
}

func TestFollowUser_OK(t *testing.T) {
	svc := &fakeFollowService{}
	r, cfg := newFollowRouter(svc)

	token, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), 1, "user", "access", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/users/5/follow", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(svc.followed) != 1 || svc.followed[0] != 5 {
		t.Fatalf("expected follow of user 5, got %v", svc.followed)
	}
}

func TestFollowUser_BadTarget(t *testing.T) {
	svc := &fakeFollowService{}
	r, cfg := newFollowRouter(svc)

	token, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), 1, "user", "access", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/v1/users/abc/follow", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if len(svc.unfollowed) != 0 {
		t.Fatal("service must not be called for a malformed id")
	}
}
