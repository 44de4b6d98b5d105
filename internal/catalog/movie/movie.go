// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package movie is the read side of the movie catalog.
//
// Movies are ingested elsewhere from an external metadata provider. This
// package only answers two questions for the comment subsystem: does an
// internal movie id exist, and which internal id belongs to an external one.
package movie

import (
	"context"
	"time"

	"github.com/taibuivan/marquee/internal/platform/apperr"
)

// Movie represents a catalog entry.
type Movie struct {
	ID          string    `json:"id"`
	ExternalID  string    `json:"external_id"`
	Genre       string    `json:"genre"`
	ReleaseYear int       `json:"release_year"`
	Rating      *float64  `json:"rating"`
	Overview    *string   `json:"overview"`
	PosterURL   string    `json:"poster_url"`
	BackdropURL string    `json:"backdrop_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrNotFound is returned when a movie does not resolve.
var ErrNotFound = apperr.NotFound("Movie")

type Repository interface {
	Exists(context context.Context, id string) (bool, error)
	FindByExternalID(context context.Context, externalID string) (*Movie, error)
}
