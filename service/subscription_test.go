package service

import (
	"context"
	"testing"

	"DevHub/dao"

	"github.com/DATA-DOG/go-sqlmock"
)

// A user who renewed carries a future pro_expires_at, so the sweep query
// skips them; only the ids it returns get demoted.
func TestExpireSweep_DemotesOnlyLapsedUsers(t *testing.T) {
	db, mock := newMockDB(t)
	s := &SubscriptionService{DB: db, UserDAO: dao.NewUsers(db)}

	mock.ExpectQuery(`SELECT .id. FROM .users. WHERE is_pro = 1 AND pro_expires_at IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.ExpireSweep(context.Background()); err != nil {
		t.Fatalf("expire sweep: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
