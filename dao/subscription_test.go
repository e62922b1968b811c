package dao

import (
	"testing"
	"time"

	"DevHub/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSubscriptionReview_SettlesPendingOnly(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewSubscriptionDAO(db)

	expires := time.Now().AddDate(0, 1, 0)

	mock.ExpectExec("UPDATE `subscriptions` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	settled, err := d.Review(db, 10, models.SubscriptionApproved, 99, &expires)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if !settled {
		t.Fatal("expected pending row to settle")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSubscriptionReview_AlreadyReviewed(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewSubscriptionDAO(db)

	// the WHERE clause pins status to pending, a settled row matches nothing
	mock.ExpectExec("UPDATE `subscriptions` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	settled, err := d.Review(db, 10, models.SubscriptionRejected, 99, nil)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if settled {
		t.Fatal("second review must not settle again")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
