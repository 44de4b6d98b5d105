package reaction

import (
	"context"

	"github.com/taibuivan/marquee/internal/social/comment"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Ledger is the source of truth for reactions: at most one record per
// (comment, user).
type Ledger interface {
	// Apply performs one state machine transition for the pair.
	Apply(context context.Context, commentID, userID string, kind Kind) (Outcome, error)

	// CountFor tallies the comment's records. It must read storage every time.
	CountFor(context context.Context, commentID string) (Counts, error)

	// ByUserOnMovie returns the user's reactions on the movie's comments, keyed by comment id.
	ByUserOnMovie(context context.Context, userID, movieID string) (map[string]Kind, error)
}

// Comments is the slice of the comment store the aggregator needs.
type Comments interface {
	Get(context context.Context, id string) (*comment.Comment, error)
	PatchCounts(context context.Context, id string, likeCount, dislikeCount int) error
}

// Transactor runs fn as one atomic unit. Implementations bind the
// transaction to the context passed to fn.
type Transactor interface {
	Do(context context.Context, fn func(context context.Context) error) error
}
