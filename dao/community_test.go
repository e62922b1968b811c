package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCommunityUpdateById(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCommunityDAO(db)

	mock.ExpectExec("UPDATE `communities` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := d.UpdateById(context.Background(), 7, map[string]any{"description": "go shop talk"})
	if err != nil {
		t.Fatalf("update community: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
