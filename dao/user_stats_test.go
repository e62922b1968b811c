package dao

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUserStatsIncrFollowerCount_Clamped(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewUserStatsDAO(db)

	mock.ExpectExec(`(?s)INSERT INTO user_stats \(user_id, follower_count.*GREATEST\(follower_count \+ \?, 0\)`).
		WithArgs(7, -1, sqlmock.AnyArg(), sqlmock.AnyArg(), -1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := d.IncrFollowerCount(db, 7, -1); err != nil {
		t.Fatalf("incr follower count: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserStatsIncrFollowingCount_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewUserStatsDAO(db)

	mock.ExpectExec(`(?s)INSERT INTO user_stats \(user_id, following_count.*ON DUPLICATE KEY UPDATE`).
		WithArgs(7, 1, sqlmock.AnyArg(), sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := d.IncrFollowingCount(db, 7, 1); err != nil {
		t.Fatalf("incr following count: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
