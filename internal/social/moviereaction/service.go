package moviereaction

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/marquee/internal/catalog/movie"
	"github.com/taibuivan/marquee/internal/platform/apperr"
)

type Service struct {
	store  Store
	movies MovieCatalog
	logger *slog.Logger
}

func NewService(store Store, movies MovieCatalog, logger *slog.Logger) *Service {
	return &Service{store: store, movies: movies, logger: logger}
}

/*
Set records the caller's like or dislike of a movie, replacing any earlier one.

Returns:
  - *Reaction: the stored reaction
  - error: UNAUTHORIZED for anonymous callers, NOT_FOUND for an unknown movie
*/
func (service *Service) Set(context context.Context, movieID, userID string, liked bool) (*Reaction, error) {
	if userID == "" {
		return nil, apperr.Unauthorized("Authentication required")
	}

	exists, err := service.movies.Exists(context, movieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, movie.ErrNotFound
	}

	reaction, err := service.store.Upsert(context, movieID, userID, liked)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "movie_reaction_set",
		slog.String("movie_id", movieID),
		slog.Bool("liked", liked),
	)

	return reaction, nil
}

// Mine returns the caller's reaction on a movie. Anonymous callers and users
// who have not reacted get nil without an error.
func (service *Service) Mine(context context.Context, movieID, userID string) (*Reaction, error) {
	if userID == "" {
		return nil, nil
	}

	reaction, err := service.store.Get(context, movieID, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return reaction, nil
}
