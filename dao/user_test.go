package dao

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

// The sweep reads the user row's own expiry and never consults subscription
// history, so an old lapsed approval cannot shadow a later renewal.
func TestExpiredProIDs_KeyedOnUserExpiry(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewUsers(db)

	mock.ExpectQuery(`^SELECT .id. FROM .users. WHERE is_pro = 1 AND pro_expires_at IS NOT NULL AND pro_expires_at <= \?`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	ids, err := d.ExpiredProIDs(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("expired pro ids: %v", err)
	}
	if len(ids) != 1 || ids[0] != 11 {
		t.Fatalf("expected [11], got %v", ids)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
