package comment_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/marquee/internal/platform/apperr"
	"github.com/taibuivan/marquee/internal/social/comment"
)

var commentColumns = []string{"id", "movieid", "authorid", "parentid", "body", "likecount", "dislikecount", "createdat"}

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *comment.PostgresStore) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, comment.NewPostgresStore(mock, trmpgx.DefaultCtxGetter)
}

func TestPostgresStore_Create(t *testing.T) {
	mock, store := newMockStore(t)
	created := newComment("c1", "", 0)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO social.comment (id,movieid,authorid,parentid,body,likecount,dislikecount,createdat) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)")).
		WithArgs(created.ID, created.MovieID, created.AuthorID, created.ParentID, created.Body, 0, 0, created.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.Create(context.Background(), created))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Create_UnknownMovie(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO social.comment")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := store.Create(context.Background(), newComment("c1", "", 0))

	assert.ErrorIs(t, err, comment.ErrMovieNotFound)
}

func TestPostgresStore_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, store := newMockStore(t)
		created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta("FROM social.comment WHERE id = $1")).
			WithArgs("c1").
			WillReturnRows(pgxmock.NewRows(commentColumns).
				AddRow("c1", "m1", "u1", nil, "hello", 4, 1, created))

		got, err := store.Get(context.Background(), "c1")

		require.NoError(t, err)
		assert.Equal(t, "hello", got.Body)
		assert.Nil(t, got.ParentID)
		assert.Equal(t, 3, got.NetScore())
		assert.Equal(t, created, got.CreatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		mock, store := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM social.comment WHERE id = $1")).
			WithArgs("c1").
			WillReturnError(pgx.ErrNoRows)

		_, err := store.Get(context.Background(), "c1")

		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})
}

func TestPostgresStore_ListByMovie(t *testing.T) {
	mock, store := newMockStore(t)
	now := time.Now().UTC()
	query := regexp.QuoteMeta("FROM social.comment WHERE movieid = $1 ORDER BY createdat, id")

	rows := func() *pgxmock.Rows {
		return pgxmock.NewRows(commentColumns).
			AddRow("a", "m1", "u1", nil, "first", 0, 0, now).
			AddRow("b", "m1", "u2", nil, "second", 1, 0, now.Add(time.Second))
	}
	mock.ExpectQuery(query).WithArgs("m1").WillReturnRows(rows())
	mock.ExpectQuery(query).WithArgs("m1").WillReturnRows(rows())

	seq := store.ListByMovie(context.Background(), "m1")

	// Ranging twice reads twice.
	for range 2 {
		var got []string
		for c, err := range seq {
			require.NoError(t, err)
			got = append(got, c.ID)
		}
		assert.Equal(t, []string{"a", "b"}, got)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListByMovie_QueryError(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM social.comment")).
		WithArgs("m1").
		WillReturnError(errors.New("connection reset"))

	var errs int
	for c, err := range store.ListByMovie(context.Background(), "m1") {
		assert.Nil(t, c)
		assert.Error(t, err)
		errs++
	}
	assert.Equal(t, 1, errs)
}

func TestPostgresStore_Delete(t *testing.T) {
	mock, store := newMockStore(t)
	query := regexp.QuoteMeta("DELETE FROM social.comment WHERE id = $1")

	mock.ExpectExec(query).WithArgs("c1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(query).WithArgs("c2").WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, store.Delete(context.Background(), "c1"))
	assert.ErrorIs(t, store.Delete(context.Background(), "c2"), comment.ErrNotFound)
}

func TestPostgresStore_PatchCounts(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE social.comment SET likecount = $1, dislikecount = $2 WHERE id = $3")).
		WithArgs(5, 2, "c1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, store.PatchCounts(context.Background(), "c1", 5, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
