// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comment owns threaded movie comments.

A comment belongs to one movie and optionally to one parent comment. Reading a
movie's comments returns a forest: top-level comments sorted by the requested
key, each carrying its replies sorted by net score.

Counters:

LikeCount and DislikeCount are a cache of the reaction ledger. Only the
reaction aggregator writes them, through [Store.PatchCounts], and always with
values recomputed from the ledger.
*/
package comment

import (
	"time"

	"github.com/taibuivan/marquee/internal/platform/apperr"
)

// Comment is a single record in the social.comment table.
type Comment struct {
	ID           string    `json:"id"`
	MovieID      string    `json:"movie_id"`
	AuthorID     string    `json:"author_id"`
	ParentID     *string   `json:"parent_comment_id"`
	Body         string    `json:"body"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// NetScore is likes minus dislikes.
func (comment *Comment) NetScore() int {
	return comment.LikeCount - comment.DislikeCount
}

// Node is a comment placed in a thread.
type Node struct {
	*Comment

	// AuthorName is filled in for API responses only.
	AuthorName string  `json:"author_name,omitempty"`
	Children   []*Node `json:"children"`
}

// CreateInput carries the caller-supplied fields of a new comment.
type CreateInput struct {
	MovieID  string
	AuthorID string
	Body     string
	ParentID *string
}

// Field names used in validation errors.
const (
	FieldBody     = "body"
	FieldParentID = "parent_comment_id"
	FieldSort     = "sort"
)

// CodeInvalidParent identifies [ErrInvalidParent] in API responses.
const CodeInvalidParent = "INVALID_PARENT"

var (
	// ErrNotFound is returned when a comment id does not resolve.
	ErrNotFound = apperr.NotFound("Comment")

	// ErrInvalidParent is returned when a reply names a parent that does not
	// exist or belongs to another movie.
	ErrInvalidParent = apperr.Unprocessable(CodeInvalidParent, "Parent comment does not exist on this movie")

	// ErrMovieNotFound is returned when the target movie is not in the catalog.
	ErrMovieNotFound = apperr.NotFound("Movie")
)
