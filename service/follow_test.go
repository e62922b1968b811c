package service

import (
	"context"
	"testing"

	"DevHub/dao"
	"DevHub/dao/cache"
	"DevHub/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type fakeNotify struct {
	follows int
}

func (f *fakeNotify) NotifyFollow(ctx context.Context, followerID, followeeID int64) { f.follows++ }
func (f *fakeNotify) NotifyComment(ctx context.Context, authorID, ownerID, commentID int64) {}
func (f *fakeNotify) NotifySystem(ctx context.Context, userID int64, title, content string, sourceID int64) {
}
func (f *fakeNotify) Announce(ctx context.Context, title, content string) error { return nil }
func (f *fakeNotify) AnnounceCommunity(ctx context.Context, actorID, communityID int64, title, content string) error {
	return nil
}
func (f *fakeNotify) Deliver(ctx context.Context, ev *types.NotifyEvent) error  { return nil }
func (f *fakeNotify) List(ctx context.Context, userID int64, cursor *types.CursorQuery) ([]*types.NotificationItem, int64, error) {
	return nil, 0, nil
}
func (f *fakeNotify) UnreadCount(ctx context.Context, userID int64) (int64, error) { return 0, nil }
func (f *fakeNotify) MarkRead(ctx context.Context, userID int64, ids []int64) error {
	return nil
}
func (f *fakeNotify) MarkAllRead(ctx context.Context, userID int64) error { return nil }

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true, TranslateError: true})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

func newFollowService(db *gorm.DB, notify *fakeNotify) *FollowService {
	// redis is unreachable on purpose, cache invalidation degrades silently
	rds := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	return &FollowService{
		DB:         db,
		FollowDAO:  dao.NewUserFollowDAO(db),
		StatsDAO:   dao.NewUserStatsDAO(db),
		UserDAO:    dao.NewUsers(db),
		StatsCache: cache.NewStatsStorage(rds),
		Notify:     notify,
	}
}

func TestFollow_MovesCountersOnce(t *testing.T) {
	db, mock := newMockDB(t)
	notify := &fakeNotify{}
	s := newFollowService(db, notify)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_banned"}).AddRow(2, false))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `user_follows` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)INSERT INTO user_stats \(user_id, follower_count`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)INSERT INTO user_stats \(user_id, following_count`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if notify.follows != 1 {
		t.Fatalf("expected 1 follow notification, got %d", notify.follows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFollow_RepeatIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	notify := &fakeNotify{}
	s := newFollowService(db, notify)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_banned"}).AddRow(2, false))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `user_follows` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `user_follows`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectCommit()

	if err := s.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if notify.follows != 0 {
		t.Fatalf("repeat follow must not notify, got %d", notify.follows)
	}
	// no stats SQL expected, ExpectationsWereMet would flag any extra
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFollow_Self(t *testing.T) {
	db, _ := newMockDB(t)
	s := newFollowService(db, &fakeNotify{})

	if err := s.Follow(context.Background(), 1, 1); err == nil {
		t.Fatal("expected error when following yourself")
	}
}

func TestUnfollow_MovesCountersDown(t *testing.T) {
	db, mock := newMockDB(t)
	s := newFollowService(db, &fakeNotify{})

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `user_follows` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)INSERT INTO user_stats \(user_id, follower_count`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)INSERT INTO user_stats \(user_id, following_count`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.Unfollow(context.Background(), 1, 2); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFollow_BannedUser(t *testing.T) {
	db, mock := newMockDB(t)
	s := newFollowService(db, &fakeNotify{})

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_banned"}).AddRow(2, true))

	if err := s.Follow(context.Background(), 1, 2); err == nil {
		t.Fatal("expected error when following a banned user")
	}
}
