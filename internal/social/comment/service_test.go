package comment_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/marquee/internal/platform/apperr"
	"github.com/taibuivan/marquee/internal/platform/constants"
	"github.com/taibuivan/marquee/internal/social/comment"
	"github.com/taibuivan/marquee/internal/social/comment/mocks"
	"github.com/taibuivan/marquee/internal/social/memstore"
	"github.com/taibuivan/marquee/pkg/pagination"
	"github.com/taibuivan/marquee/pkg/pointer"
)

const (
	movieID      = "0190a5c4-0000-7000-8000-000000000001"
	otherMovieID = "0190a5c4-0000-7000-8000-000000000002"
)

type fixture struct {
	store    *memstore.Store
	movies   *mocks.MockMovieCatalog
	profiles *mocks.MockProfileDirectory
	service  *comment.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		store:    memstore.New(),
		movies:   mocks.NewMockMovieCatalog(ctrl),
		profiles: mocks.NewMockProfileDirectory(ctrl),
	}
	f.service = comment.NewService(f.store, f.movies, f.profiles, 20, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func (f *fixture) knownMovies(ids ...string) {
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	f.movies.EXPECT().Exists(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (bool, error) { return known[id], nil }).
		AnyTimes()
}

func (f *fixture) noProfiles() {
	f.profiles.EXPECT().DisplayNames(gomock.Any(), gomock.Any()).Return(map[string]string{}, nil).AnyTimes()
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    comment.CreateInput
		wantCode string
	}{
		{
			name:     "unauthenticated",
			input:    comment.CreateInput{MovieID: movieID, Body: "hello"},
			wantCode: apperr.CodeUnauthorized,
		},
		{
			name:     "blank_body",
			input:    comment.CreateInput{MovieID: movieID, AuthorID: "u1", Body: " \r\n\t "},
			wantCode: apperr.CodeValidation,
		},
		{
			name:     "body_too_long",
			input:    comment.CreateInput{MovieID: movieID, AuthorID: "u1", Body: strings.Repeat("x", 21)},
			wantCode: apperr.CodeValidation,
		},
		{
			name:     "unknown_movie",
			input:    comment.CreateInput{MovieID: otherMovieID, AuthorID: "u1", Body: "hello"},
			wantCode: apperr.CodeNotFound,
		},
		{
			name:     "missing_parent",
			input:    comment.CreateInput{MovieID: movieID, AuthorID: "u1", Body: "hello", ParentID: pointer.To("nope")},
			wantCode: comment.CodeInvalidParent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			f.knownMovies(movieID)

			_, err := f.service.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestService_Create_RootAndReply(t *testing.T) {
	f := newFixture(t)
	f.knownMovies(movieID)
	ctx := context.Background()

	root, err := f.service.Create(ctx, comment.CreateInput{MovieID: movieID, AuthorID: "u1", Body: "  first\r\npost  "})
	require.NoError(t, err)
	assert.NotEmpty(t, root.ID)
	assert.Nil(t, root.ParentID)
	assert.Equal(t, "first\npost", root.Body)
	assert.Zero(t, root.LikeCount)
	assert.Zero(t, root.DislikeCount)

	reply, err := f.service.Create(ctx, comment.CreateInput{MovieID: movieID, AuthorID: "u2", Body: "reply", ParentID: &root.ID})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, root.ID, *reply.ParentID)

	stored, err := f.service.Get(ctx, reply.ID)
	require.NoError(t, err)
	assert.Equal(t, reply.Body, stored.Body)
}

func TestService_Create_ParentOnOtherMovie(t *testing.T) {
	f := newFixture(t)
	f.knownMovies(movieID, otherMovieID)
	ctx := context.Background()

	parent, err := f.service.Create(ctx, comment.CreateInput{MovieID: otherMovieID, AuthorID: "u1", Body: "elsewhere"})
	require.NoError(t, err)

	_, err = f.service.Create(ctx, comment.CreateInput{MovieID: movieID, AuthorID: "u1", Body: "reply", ParentID: &parent.ID})

	assert.ErrorIs(t, err, comment.ErrInvalidParent)
}

func TestService_Create_CatalogFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("catalog down")
	f.movies.EXPECT().Exists(gomock.Any(), movieID).Return(false, boom)

	_, err := f.service.Create(context.Background(), comment.CreateInput{MovieID: movieID, AuthorID: "u1", Body: "hi"})

	assert.ErrorIs(t, err, boom)
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	f.knownMovies(movieID)
	f.noProfiles()
	ctx := context.Background()

	parent, err := f.service.Create(ctx, comment.CreateInput{MovieID: movieID, AuthorID: "author", Body: "parent"})
	require.NoError(t, err)
	reply, err := f.service.Create(ctx, comment.CreateInput{MovieID: movieID, AuthorID: "other", Body: "reply", ParentID: &parent.ID})
	require.NoError(t, err)

	err = f.service.Delete(ctx, parent.ID, "")
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))

	err = f.service.Delete(ctx, parent.ID, "other")
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))

	err = f.service.Delete(ctx, "missing", "author")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	require.NoError(t, f.service.Delete(ctx, parent.ID, "author"))

	threads, total, err := f.service.List(ctx, movieID, comment.SortNewest, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, threads, 1)
	assert.Equal(t, reply.ID, threads[0].ID, "orphaned reply is listed as a thread")
}

func TestService_List(t *testing.T) {
	f := newFixture(t)
	f.knownMovies(movieID)
	ctx := context.Background()

	for _, c := range []*comment.Comment{
		newComment("r1", "", 0),
		newComment("r2", "", 1),
		newComment("r3", "", 2),
		newComment("r1-a", "r1", 3),
		newComment("r1-b", "r1", 4),
	} {
		c.MovieID = movieID
		require.NoError(t, f.store.Create(ctx, c))
	}
	other := newComment("x", "", 0)
	other.MovieID = otherMovieID
	require.NoError(t, f.store.Create(ctx, other))

	f.profiles.EXPECT().
		DisplayNames(gomock.Any(), gomock.InAnyOrder([]string{"author-r1", "author-r1-a", "author-r1-b", "author-r2"})).
		Return(map[string]string{"author-r1": "alice"}, nil)

	threads, total, err := f.service.List(ctx, movieID, comment.SortOldest, pagination.Params{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"r1", "r2"}, ids(threads))
	assert.Len(t, threads[0].Children, 2)
	assert.Equal(t, "alice", threads[0].AuthorName)
	assert.Equal(t, constants.AnonymousDisplayName, threads[1].AuthorName)
	assert.Equal(t, constants.AnonymousDisplayName, threads[0].Children[0].AuthorName)
}

func TestService_List_ProfileFailureFallsBack(t *testing.T) {
	f := newFixture(t)
	f.knownMovies(movieID)
	ctx := context.Background()

	c := newComment("r1", "", 0)
	c.MovieID = movieID
	require.NoError(t, f.store.Create(ctx, c))

	f.profiles.EXPECT().DisplayNames(gomock.Any(), gomock.Any()).Return(nil, errors.New("profiles down"))

	threads, _, err := f.service.List(ctx, movieID, comment.SortNewest, pagination.Params{Page: 1, Limit: 20})

	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, constants.AnonymousDisplayName, threads[0].AuthorName)
}

func TestService_List_PastLastPage(t *testing.T) {
	f := newFixture(t)
	f.knownMovies(movieID)

	threads, total, err := f.service.List(context.Background(), movieID, comment.SortNewest, pagination.Params{Page: 4, Limit: 20})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, threads)
}

func TestService_List_UnknownMovie(t *testing.T) {
	f := newFixture(t)
	f.knownMovies()

	_, _, err := f.service.List(context.Background(), movieID, comment.SortNewest, pagination.Params{Page: 1, Limit: 20})

	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
