package service

import (
	"context"
	"testing"

	"DevHub/dao"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
)

func newCommentService(t *testing.T) (*CommentService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return &CommentService{
		DB:             db,
		CommentDAO:     dao.NewComment(db),
		CommentLikeDAO: dao.NewCommentLike(db),
	}, mock
}

// Two requests race past the exists check; the unique key rejects the second
// insert and the service absorbs it instead of surfacing a driver error.
func TestLikeComment_ConcurrentDuplicateIsNoop(t *testing.T) {
	s, mock := newCommentService(t)

	mock.ExpectQuery(`SELECT \* FROM .comments. WHERE id = \? AND status = 1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).AddRow(9, 2, 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM .comment_likes.`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comment_likes`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectCommit()

	if err := s.Like(context.Background(), 7, 9); err != nil {
		t.Fatalf("duplicate like should be absorbed as a no-op, got error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestLikeComment_AlreadyLiked(t *testing.T) {
	s, mock := newCommentService(t)

	mock.ExpectQuery(`SELECT \* FROM .comments. WHERE id = \? AND status = 1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).AddRow(9, 2, 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM .comment_likes.`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	// no transaction, no insert, no counter movement
	if err := s.Like(context.Background(), 7, 9); err != nil {
		t.Fatalf("repeat like: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
