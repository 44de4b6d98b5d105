// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package memstore keeps comments and reactions in process memory.

It backs STORAGE_DRIVER=memory and the aggregator tests. One [Store]
implements the comment store, the reaction ledger and the transactor, so a
[Store.Do] block sees and rolls back both together.

Isolation:

A single mutex serializes every transaction, which is stricter than
SERIALIZABLE and never produces conflicts. Records are stored by value and
replaced on write, so rolling back is restoring two shallow map copies.
*/
package memstore

import (
	"cmp"
	"context"
	"iter"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/marquee/internal/social/comment"
	"github.com/taibuivan/marquee/internal/social/reaction"
	"github.com/taibuivan/marquee/pkg/pointer"
)

type pair struct {
	commentID string
	userID    string
}

// Store is an in-memory comment store, reaction ledger and transactor.
type Store struct {
	mu        sync.Mutex
	comments  map[string]comment.Comment
	reactions map[pair]reaction.Record
	now       func() time.Time
}

// New returns an empty [Store].
func New() *Store {
	return &Store{
		comments:  make(map[string]comment.Comment),
		reactions: make(map[pair]reaction.Record),
		now:       time.Now,
	}
}

type txKey struct{}

// Do runs fn while holding the store lock. Nested calls join the outer
// transaction. If fn fails every write it made is undone.
func (store *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	comments := maps.Clone(store.comments)
	reactions := maps.Clone(store.reactions)

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		store.comments = comments
		store.reactions = reactions
		return err
	}

	return nil
}

func inTx(ctx context.Context) bool {
	held, _ := ctx.Value(txKey{}).(bool)
	return held
}

// lock takes the store lock unless ctx already runs inside [Store.Do].
func (store *Store) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	store.mu.Lock()
	return store.mu.Unlock
}

// # Comment Store

func (store *Store) Create(ctx context.Context, record *comment.Comment) error {
	defer store.lock(ctx)()

	stored := *record
	if stored.ParentID != nil {
		stored.ParentID = pointer.To(*stored.ParentID)
	}
	store.comments[stored.ID] = stored

	return nil
}

func (store *Store) Get(ctx context.Context, id string) (*comment.Comment, error) {
	defer store.lock(ctx)()

	stored, ok := store.comments[id]
	if !ok {
		return nil, comment.ErrNotFound
	}
	return &stored, nil
}

// ListByMovie snapshots the movie's comments when ranging starts, oldest first.
func (store *Store) ListByMovie(ctx context.Context, movieID string) iter.Seq2[*comment.Comment, error] {
	return func(yield func(*comment.Comment, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return
		}

		unlock := store.lock(ctx)
		var snapshot []comment.Comment
		for _, stored := range store.comments {
			if stored.MovieID == movieID {
				snapshot = append(snapshot, stored)
			}
		}
		unlock()

		slices.SortFunc(snapshot, func(a, b comment.Comment) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})

		for i := range snapshot {
			if !yield(&snapshot[i], nil) {
				return
			}
		}
	}
}

// Delete removes the comment and purges its reactions.
func (store *Store) Delete(ctx context.Context, id string) error {
	defer store.lock(ctx)()

	if _, ok := store.comments[id]; !ok {
		return comment.ErrNotFound
	}
	delete(store.comments, id)

	for key := range store.reactions {
		if key.commentID == id {
			delete(store.reactions, key)
		}
	}

	return nil
}

func (store *Store) PatchCounts(ctx context.Context, id string, likeCount, dislikeCount int) error {
	defer store.lock(ctx)()

	stored, ok := store.comments[id]
	if !ok {
		return comment.ErrNotFound
	}
	stored.LikeCount = likeCount
	stored.DislikeCount = dislikeCount
	store.comments[id] = stored

	return nil
}

// # Reaction Ledger

func (store *Store) Apply(ctx context.Context, commentID, userID string, kind reaction.Kind) (reaction.Outcome, error) {
	defer store.lock(ctx)()

	key := pair{commentID: commentID, userID: userID}
	now := store.now().UTC()

	existing, found := store.reactions[key]
	switch {
	case !found:
		store.reactions[key] = reaction.Record{
			CommentID: commentID,
			UserID:    userID,
			Reaction:  kind,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return reaction.Applied, nil

	case existing.Reaction == kind:
		delete(store.reactions, key)
		return reaction.ToggledOff, nil

	default:
		existing.Reaction = kind
		existing.UpdatedAt = now
		store.reactions[key] = existing
		return reaction.Switched, nil
	}
}

func (store *Store) CountFor(ctx context.Context, commentID string) (reaction.Counts, error) {
	defer store.lock(ctx)()

	var counts reaction.Counts
	for key, record := range store.reactions {
		if key.commentID != commentID {
			continue
		}
		switch record.Reaction {
		case reaction.Like:
			counts.Like++
		case reaction.Dislike:
			counts.Dislike++
		}
	}

	return counts, nil
}

func (store *Store) ByUserOnMovie(ctx context.Context, userID, movieID string) (map[string]reaction.Kind, error) {
	defer store.lock(ctx)()

	result := make(map[string]reaction.Kind)
	for key, record := range store.reactions {
		if key.userID != userID {
			continue
		}
		if stored, ok := store.comments[key.commentID]; ok && stored.MovieID == movieID {
			result[key.commentID] = record.Reaction
		}
	}

	return result, nil
}

// Records returns a copy of the comment's ledger entries. Intended for tests.
func (store *Store) Records(commentID string) []reaction.Record {
	store.mu.Lock()
	defer store.mu.Unlock()

	var records []reaction.Record
	for key, record := range store.reactions {
		if key.commentID == commentID {
			records = append(records, record)
		}
	}
	return records
}
