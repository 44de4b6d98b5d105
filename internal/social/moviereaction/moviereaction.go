// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package moviereaction records whether a user liked or disliked a movie.
//
// Each user holds at most one reaction per movie. Setting it again overwrites
// the previous value and bumps updated_at; there is no toggle-off and no
// aggregate counter, unlike comment reactions.
package moviereaction

import (
	"context"
	"time"

	"github.com/taibuivan/marquee/internal/platform/apperr"
)

// FieldLiked is the request field carrying the reaction.
const FieldLiked = "liked"

// Reaction is one user's verdict on one movie.
type Reaction struct {
	MovieID   string    `json:"movie_id"`
	UserID    string    `json:"user_id"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrNotFound is returned when the user has not reacted to the movie.
var ErrNotFound = apperr.NotFound("Movie reaction")

// Store persists movie reactions keyed by (movie, user).
type Store interface {
	// Upsert sets the pair's reaction and returns the stored record.
	Upsert(context context.Context, movieID, userID string, liked bool) (*Reaction, error)

	// Get returns the pair's reaction or [ErrNotFound].
	Get(context context.Context, movieID, userID string) (*Reaction, error)
}

// MovieCatalog answers whether a movie exists.
type MovieCatalog interface {
	Exists(context context.Context, movieID string) (bool, error)
}
