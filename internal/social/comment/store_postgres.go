package comment

import (
	"context"
	"errors"
	"iter"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/marquee/internal/platform/apperr"
	"github.com/taibuivan/marquee/internal/platform/database/schema"
	"github.com/taibuivan/marquee/internal/platform/dberr"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var commentColumns = []string{
	schema.SocialComment.ID,
	schema.SocialComment.MovieID,
	schema.SocialComment.AuthorID,
	schema.SocialComment.ParentID,
	schema.SocialComment.Body,
	schema.SocialComment.LikeCount,
	schema.SocialComment.DislikeCount,
	schema.SocialComment.CreatedAt,
}

// PostgresStore implements [Store] on social.comment.
//
// Every query runs on the transaction bound to the context when there is one,
// so the reaction aggregator can patch counters inside its own transaction.
type PostgresStore struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewPostgresStore(db trmpgx.Tr, getter *trmpgx.CtxGetter) *PostgresStore {
	return &PostgresStore{db: db, getter: getter}
}

func (store *PostgresStore) executor(context context.Context) trmpgx.Tr {
	return store.getter.DefaultTrOrDB(context, store.db)
}

func (store *PostgresStore) Create(context context.Context, comment *Comment) error {
	query, args, err := psql.
		Insert(schema.SocialComment.Table).
		Columns(commentColumns...).
		Values(
			comment.ID, comment.MovieID, comment.AuthorID, comment.ParentID,
			comment.Body, comment.LikeCount, comment.DislikeCount, comment.CreatedAt,
		).
		ToSql()
	if err != nil {
		return apperr.Internal(err)
	}

	if _, err := store.executor(context).Exec(context, query, args...); err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return ErrMovieNotFound
		}
		return dberr.Wrap(err, "create_comment")
	}

	return nil
}

func (store *PostgresStore) Get(context context.Context, id string) (*Comment, error) {
	query, args, err := psql.
		Select(commentColumns...).
		From(schema.SocialComment.Table).
		Where(sq.Eq{schema.SocialComment.ID: id}).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	comment, err := scanComment(store.executor(context).QueryRow(context, query, args...))
	if err != nil {
		return nil, wrap(err, "get_comment")
	}

	return comment, nil
}

func (store *PostgresStore) ListByMovie(context context.Context, movieID string) iter.Seq2[*Comment, error] {
	return func(yield func(*Comment, error) bool) {
		query, args, err := psql.
			Select(commentColumns...).
			From(schema.SocialComment.Table).
			Where(sq.Eq{schema.SocialComment.MovieID: movieID}).
			OrderBy(schema.SocialComment.CreatedAt, schema.SocialComment.ID).
			ToSql()
		if err != nil {
			yield(nil, apperr.Internal(err))
			return
		}

		rows, err := store.executor(context).Query(context, query, args...)
		if err != nil {
			yield(nil, dberr.Wrap(err, "list_comments"))
			return
		}
		defer rows.Close()

		for rows.Next() {
			comment, err := scanComment(rows)
			if err != nil {
				yield(nil, dberr.Wrap(err, "scan_comment"))
				return
			}
			if !yield(comment, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(nil, dberr.Wrap(err, "list_comments"))
		}
	}
}

// Delete removes the row. Its reactions go with it through the foreign key cascade.
func (store *PostgresStore) Delete(context context.Context, id string) error {
	query, args, err := psql.
		Delete(schema.SocialComment.Table).
		Where(sq.Eq{schema.SocialComment.ID: id}).
		ToSql()
	if err != nil {
		return apperr.Internal(err)
	}

	tag, err := store.executor(context).Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (store *PostgresStore) PatchCounts(context context.Context, id string, likeCount, dislikeCount int) error {
	query, args, err := psql.
		Update(schema.SocialComment.Table).
		Set(schema.SocialComment.LikeCount, likeCount).
		Set(schema.SocialComment.DislikeCount, dislikeCount).
		Where(sq.Eq{schema.SocialComment.ID: id}).
		ToSql()
	if err != nil {
		return apperr.Internal(err)
	}

	tag, err := store.executor(context).Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "patch_comment_counts")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanComment(row pgx.Row) (*Comment, error) {
	comment := &Comment{}
	err := row.Scan(
		&comment.ID, &comment.MovieID, &comment.AuthorID, &comment.ParentID,
		&comment.Body, &comment.LikeCount, &comment.DislikeCount, &comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func wrap(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return dberr.Wrap(err, action)
}
