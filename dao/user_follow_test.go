package dao

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

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

func TestUserFollowSetStatus_Flip(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewUserFollowDAO(db)

	mock.ExpectExec("UPDATE `user_follows` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	changed, err := d.SetStatus(db, 1, 2, 1)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if !changed {
		t.Fatal("expected edge flip to report changed")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserFollowSetStatus_AlreadySet(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewUserFollowDAO(db)

	mock.ExpectExec("UPDATE `user_follows` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `user_follows`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	changed, err := d.SetStatus(db, 1, 2, 1)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if changed {
		t.Fatal("repeated toggle must not report changed")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserFollowSetStatus_CreatesMissingEdge(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewUserFollowDAO(db)

	mock.ExpectExec("UPDATE `user_follows` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `user_follows`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `user_follows`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	changed, err := d.SetStatus(db, 1, 2, 1)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if !changed {
		t.Fatal("creating a fresh edge must report changed")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserFollowSetStatus_ClearMissingEdgeIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewUserFollowDAO(db)

	mock.ExpectExec("UPDATE `user_follows` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `user_follows`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	changed, err := d.SetStatus(db, 1, 2, 0)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if changed {
		t.Fatal("unfollowing a never-followed user must be a no-op")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
