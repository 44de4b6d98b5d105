package comment

import (
	"context"
	"iter"
)

// Store persists comment records.
//
// ListByMovie returns a lazy sequence: nothing is read until it is ranged
// over, and every range starts a fresh read.
type Store interface {
	Create(context context.Context, comment *Comment) error
	Get(context context.Context, id string) (*Comment, error)
	ListByMovie(context context.Context, movieID string) iter.Seq2[*Comment, error]
	Delete(context context.Context, id string) error

	// PatchCounts overwrites the cached counters. Reserved for the reaction aggregator.
	PatchCounts(context context.Context, id string, likeCount, dislikeCount int) error
}
