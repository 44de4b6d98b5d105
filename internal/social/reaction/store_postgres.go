package reaction

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/marquee/internal/platform/apperr"
	"github.com/taibuivan/marquee/internal/platform/database/schema"
	"github.com/taibuivan/marquee/internal/platform/dberr"
	"github.com/taibuivan/marquee/internal/social/comment"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresLedger implements [Ledger] on social.commentreaction.
//
// Apply is a read-then-write; it is only race free inside the serializable
// transaction opened by the aggregator, which joins it through the context.
type PostgresLedger struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewPostgresLedger(db trmpgx.Tr, getter *trmpgx.CtxGetter) *PostgresLedger {
	return &PostgresLedger{db: db, getter: getter}
}

func (ledger *PostgresLedger) executor(context context.Context) trmpgx.Tr {
	return ledger.getter.DefaultTrOrDB(context, ledger.db)
}

func pairKey(commentID, userID string) sq.Eq {
	return sq.Eq{
		schema.SocialCommentReaction.CommentID: commentID,
		schema.SocialCommentReaction.UserID:    userID,
	}
}

func (ledger *PostgresLedger) Apply(context context.Context, commentID, userID string, kind Kind) (Outcome, error) {
	executor := ledger.executor(context)

	// 1. Current state of the pair
	query, args, err := psql.
		Select(schema.SocialCommentReaction.Reaction).
		From(schema.SocialCommentReaction.Table).
		Where(pairKey(commentID, userID)).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return "", apperr.Internal(err)
	}

	var existing string
	err = executor.QueryRow(context, query, args...).Scan(&existing)

	switch {
	// 2. absent -> kind
	case errors.Is(err, pgx.ErrNoRows):
		query, args, err = psql.
			Insert(schema.SocialCommentReaction.Table).
			Columns(
				schema.SocialCommentReaction.CommentID,
				schema.SocialCommentReaction.UserID,
				schema.SocialCommentReaction.Reaction,
				schema.SocialCommentReaction.CreatedAt,
				schema.SocialCommentReaction.UpdatedAt,
			).
			Values(commentID, userID, string(kind), sq.Expr("NOW()"), sq.Expr("NOW()")).
			ToSql()
		if err != nil {
			return "", apperr.Internal(err)
		}
		if _, err := executor.Exec(context, query, args...); err != nil {
			// the comment was deleted after the caller looked it up
			if dberr.IsForeignKeyViolation(err) {
				return "", comment.ErrNotFound
			}
			return "", dberr.Wrap(err, "insert_reaction")
		}
		return Applied, nil

	case err != nil:
		return "", dberr.Wrap(err, "get_reaction")

	// 3. kind -> absent
	case Kind(existing) == kind:
		query, args, err = psql.
			Delete(schema.SocialCommentReaction.Table).
			Where(pairKey(commentID, userID)).
			ToSql()
		if err != nil {
			return "", apperr.Internal(err)
		}
		if _, err := executor.Exec(context, query, args...); err != nil {
			return "", dberr.Wrap(err, "delete_reaction")
		}
		return ToggledOff, nil

	// 4. other -> kind
	default:
		query, args, err = psql.
			Update(schema.SocialCommentReaction.Table).
			Set(schema.SocialCommentReaction.Reaction, string(kind)).
			Set(schema.SocialCommentReaction.UpdatedAt, sq.Expr("NOW()")).
			Where(pairKey(commentID, userID)).
			ToSql()
		if err != nil {
			return "", apperr.Internal(err)
		}
		if _, err := executor.Exec(context, query, args...); err != nil {
			return "", dberr.Wrap(err, "switch_reaction")
		}
		return Switched, nil
	}
}

func (ledger *PostgresLedger) CountFor(context context.Context, commentID string) (Counts, error) {
	countOf := func(kind Kind) string {
		return fmt.Sprintf("COUNT(*) FILTER (WHERE %s = '%s')", schema.SocialCommentReaction.Reaction, kind)
	}

	query, args, err := psql.
		Select(countOf(Like), countOf(Dislike)).
		From(schema.SocialCommentReaction.Table).
		Where(sq.Eq{schema.SocialCommentReaction.CommentID: commentID}).
		ToSql()
	if err != nil {
		return Counts{}, apperr.Internal(err)
	}

	var counts Counts
	if err := ledger.executor(context).QueryRow(context, query, args...).Scan(&counts.Like, &counts.Dislike); err != nil {
		return Counts{}, dberr.Wrap(err, "count_reactions")
	}

	return counts, nil
}

func (ledger *PostgresLedger) ByUserOnMovie(context context.Context, userID, movieID string) (map[string]Kind, error) {
	query, args, err := psql.
		Select("r."+schema.SocialCommentReaction.CommentID, "r."+schema.SocialCommentReaction.Reaction).
		From(schema.SocialCommentReaction.Table + " r").
		Join(fmt.Sprintf("%s c ON c.%s = r.%s",
			schema.SocialComment.Table, schema.SocialComment.ID, schema.SocialCommentReaction.CommentID,
		)).
		Where(sq.Eq{
			"r." + schema.SocialCommentReaction.UserID: userID,
			"c." + schema.SocialComment.MovieID:        movieID,
		}).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	rows, err := ledger.executor(context).Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_user_reactions")
	}
	defer rows.Close()

	reactions := make(map[string]Kind)
	for rows.Next() {
		var commentID, kind string
		if err := rows.Scan(&commentID, &kind); err != nil {
			return nil, dberr.Wrap(err, "scan_user_reaction")
		}
		reactions[commentID] = Kind(kind)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_user_reactions")
	}

	return reactions, nil
}
