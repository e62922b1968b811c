package service

import (
	"context"
	"testing"

	"DevHub/dao"
	"DevHub/dao/cache"
	"DevHub/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"
)

func TestClaimEvent_NoSequenceDeliversInline(t *testing.T) {
	s := &NotificationService{}
	if !s.claimEvent(context.Background(), "ev-1") {
		t.Fatal("without a dedup store delivery must proceed")
	}
}

func TestClaimEvent_FailsOpenWhenRedisDown(t *testing.T) {
	rds := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	s := &NotificationService{Seq: cache.NewSequence(rds)}
	if !s.claimEvent(context.Background(), "ev-1") {
		t.Fatal("an unreachable dedup store must not drop the event")
	}
}

// Without a broker the event is delivered inline, straight to inbox rows.
func TestDispatch_NoBrokerWritesInboxRows(t *testing.T) {
	db, mock := newMockDB(t)
	s := &NotificationService{NotificationDAO: dao.NewNotificationDAO(db)}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `notifications`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	s.dispatch(context.Background(), &types.NotifyEvent{
		Type:    "system",
		UserIDs: []int64{1, 2},
		Title:   "t",
		Content: "c",
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
