package moviereaction

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/marquee/internal/catalog/movie"
	"github.com/taibuivan/marquee/internal/platform/apperr"
	"github.com/taibuivan/marquee/internal/platform/database/schema"
	"github.com/taibuivan/marquee/internal/platform/dberr"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	schema.SocialMovieReaction.MovieID,
	schema.SocialMovieReaction.UserID,
	schema.SocialMovieReaction.Liked,
	schema.SocialMovieReaction.CreatedAt,
	schema.SocialMovieReaction.UpdatedAt,
}

// Querier is the subset of [pgxpool.Pool] the store uses.
type Querier interface {
	QueryRow(context context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implements [Store] on social.moviereaction. Upsert is a single
// INSERT .. ON CONFLICT statement, so it needs no surrounding transaction.
type PostgresStore struct {
	db Querier
}

func NewPostgresStore(db Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (store *PostgresStore) Upsert(context context.Context, movieID, userID string, liked bool) (*Reaction, error) {
	query, args, err := psql.
		Insert(schema.SocialMovieReaction.Table).
		Columns(columns...).
		Values(movieID, userID, liked, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix(fmt.Sprintf("ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW() RETURNING %s, %s, %s, %s, %s",
			schema.SocialMovieReaction.MovieID, schema.SocialMovieReaction.UserID,
			schema.SocialMovieReaction.Liked, schema.SocialMovieReaction.Liked,
			schema.SocialMovieReaction.UpdatedAt,
			columns[0], columns[1], columns[2], columns[3], columns[4],
		)).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	reaction, err := scan(store.db.QueryRow(context, query, args...))
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return nil, movie.ErrNotFound
		}
		return nil, dberr.Wrap(err, "upsert_movie_reaction")
	}

	return reaction, nil
}

func (store *PostgresStore) Get(context context.Context, movieID, userID string) (*Reaction, error) {
	query, args, err := psql.
		Select(columns...).
		From(schema.SocialMovieReaction.Table).
		Where(sq.Eq{
			schema.SocialMovieReaction.MovieID: movieID,
			schema.SocialMovieReaction.UserID:  userID,
		}).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	reaction, err := scan(store.db.QueryRow(context, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_movie_reaction")
	}

	return reaction, nil
}

func scan(row pgx.Row) (*Reaction, error) {
	reaction := &Reaction{}
	err := row.Scan(&reaction.MovieID, &reaction.UserID, &reaction.Liked, &reaction.CreatedAt, &reaction.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return reaction, nil
}
