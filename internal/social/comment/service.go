package comment

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/marquee/internal/platform/apperr"
	"github.com/taibuivan/marquee/internal/platform/constants"
	"github.com/taibuivan/marquee/internal/platform/validate"
	"github.com/taibuivan/marquee/pkg/pagination"
	"github.com/taibuivan/marquee/pkg/textnorm"
	"github.com/taibuivan/marquee/pkg/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// MovieCatalog confirms that a movie id is known to the catalog.
type MovieCatalog interface {
	Exists(context context.Context, movieID string) (bool, error)
}

// ProfileDirectory resolves user ids to display names. Unknown ids are
// simply absent from the result.
type ProfileDirectory interface {
	DisplayNames(context context.Context, userIDs []string) (map[string]string, error)
}

// Service implements the comment operations.
type Service struct {
	store         Store
	movies        MovieCatalog
	profiles      ProfileDirectory
	maxBodyLength int
	logger        *slog.Logger
	now           func() time.Time
}

// NewService wires a comment [Service].
func NewService(store Store, movies MovieCatalog, profiles ProfileDirectory, maxBodyLength int, logger *slog.Logger) *Service {
	if maxBodyLength < 1 {
		maxBodyLength = constants.DefaultCommentMaxLength
	}
	return &Service{
		store:         store,
		movies:        movies,
		profiles:      profiles,
		maxBodyLength: maxBodyLength,
		logger:        logger,
		now:           time.Now,
	}
}

/*
Create stores a new comment or reply.

Parameters:
  - context: request context
  - input: movie, author, body and optional parent

Returns:
  - *Comment: the stored record with zeroed counters
  - error: UNAUTHORIZED without an author, VALIDATION_ERROR for an empty or
    oversized body, NOT_FOUND for an unknown movie, [ErrInvalidParent] for a
    parent that is missing or on another movie
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Comment, error) {
	if input.AuthorID == "" {
		return nil, apperr.Unauthorized("Authentication required")
	}

	body := textnorm.Body(input.Body)

	validator := &validate.Validator{}
	validator.Required(FieldBody, body).MaxLen(FieldBody, body, service.maxBodyLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.requireMovie(context, input.MovieID); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := service.store.Get(context, *input.ParentID)
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, ErrInvalidParent
		}
		if err != nil {
			return nil, err
		}
		if parent.MovieID != input.MovieID {
			return nil, ErrInvalidParent
		}
	}

	comment := &Comment{
		ID:        uuid.New(),
		MovieID:   input.MovieID,
		AuthorID:  input.AuthorID,
		ParentID:  input.ParentID,
		Body:      body,
		CreatedAt: service.now().UTC(),
	}

	if err := service.store.Create(context, comment); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "comment_created",
		slog.String("comment_id", comment.ID),
		slog.String("movie_id", comment.MovieID),
		slog.Bool("is_reply", comment.ParentID != nil),
	)

	return comment, nil
}

// Get returns a single comment with its current counters.
func (service *Service) Get(context context.Context, id string) (*Comment, error) {
	return service.store.Get(context, id)
}

/*
List reads a movie's comments and returns one page of sorted threads.

Pagination applies to top-level threads only; a thread is never split.
Author names are best effort: a failing profile lookup is logged and the
page is returned with the anonymous fallback name.

Returns:
  - []*Node: the threads on the requested page
  - int: total number of threads
  - error: NOT_FOUND for an unknown movie
*/
func (service *Service) List(context context.Context, movieID string, key SortKey, page pagination.Params) ([]*Node, int, error) {
	if err := service.requireMovie(context, movieID); err != nil {
		return nil, 0, err
	}

	var comments []*Comment
	for comment, err := range service.store.ListByMovie(context, movieID) {
		if err != nil {
			return nil, 0, err
		}
		comments = append(comments, comment)
	}

	forest := Assemble(comments)
	SortForest(forest, key)

	total := len(forest)
	start, end := page.Window(total)
	threads := forest[start:end]

	service.decorateAuthors(context, threads)

	return threads, total, nil
}

/*
Delete removes a comment. Only its author may do so.

Replies are left in place and are listed as top-level threads afterwards.

Returns:
  - error: UNAUTHORIZED without a requester, NOT_FOUND, FORBIDDEN for non-authors
*/
func (service *Service) Delete(context context.Context, id, requesterID string) error {
	if requesterID == "" {
		return apperr.Unauthorized("Authentication required")
	}

	comment, err := service.store.Get(context, id)
	if err != nil {
		return err
	}

	if comment.AuthorID != requesterID {
		return apperr.Forbidden("Only the author can delete this comment")
	}

	if err := service.store.Delete(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "comment_deleted",
		slog.String("comment_id", id),
		slog.String("movie_id", comment.MovieID),
	)

	return nil
}

func (service *Service) requireMovie(context context.Context, movieID string) error {
	exists, err := service.movies.Exists(context, movieID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMovieNotFound
	}
	return nil
}

func (service *Service) decorateAuthors(context context.Context, threads []*Node) {
	seen := make(map[string]struct{})
	var authorIDs []string

	Walk(threads, func(node *Node) {
		if _, ok := seen[node.AuthorID]; !ok {
			seen[node.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, node.AuthorID)
		}
	})

	if len(authorIDs) == 0 {
		return
	}

	names, err := service.profiles.DisplayNames(context, authorIDs)
	if err != nil {
		service.logger.WarnContext(context, "author_names_unavailable",
			slog.Int("authors", len(authorIDs)),
			slog.Any("error", err),
		)
	}

	Walk(threads, func(node *Node) {
		if name, ok := names[node.AuthorID]; ok && name != "" {
			node.AuthorName = name
			return
		}
		node.AuthorName = constants.AnonymousDisplayName
	})
}
