package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/marquee/internal/api"
	"github.com/taibuivan/marquee/internal/catalog/movie"
	"github.com/taibuivan/marquee/internal/platform/config"
	"github.com/taibuivan/marquee/internal/platform/constants"
	"github.com/taibuivan/marquee/internal/platform/sec"
	"github.com/taibuivan/marquee/internal/platform/sec/sectest"
	"github.com/taibuivan/marquee/internal/social/comment"
	"github.com/taibuivan/marquee/internal/social/memstore"
	"github.com/taibuivan/marquee/internal/social/moviereaction"
	"github.com/taibuivan/marquee/internal/social/reaction"
	"github.com/taibuivan/marquee/internal/users/profile"
	"github.com/taibuivan/marquee/pkg/uuid"
)

type harness struct {
	handler http.Handler
	tokens  *sec.TokenService
	movieID string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	movieID := uuid.New()

	movies := movie.NewService(movie.NewMemoryRepository(movie.Movie{ID: movieID, ExternalID: "tt0133093", Genre: "Sci-Fi", ReleaseYear: 1999}))
	profiles := profile.NewDirectory(profile.NewMemorySource(map[string]string{"alice-id": "alice"}), nil, logger)
	store := memstore.New()

	liveness, readiness := api.NewHealthHandlers(logger)
	cfg := &config.Config{ServerPort: "0", Environment: "test", AllowedOriginSuffix: "marquee.app"}
	tokens := sectest.NewTokenService(t)

	server := api.NewServer(ctx, cfg, logger, tokens, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Movie:     movie.NewHandler(movies),
		Comment:   comment.NewHandler(comment.NewService(store, movies, profiles, constants.DefaultCommentMaxLength, logger)),
		Reaction:  reaction.NewHandler(reaction.NewService(store, store, store, constants.DefaultReactionMaxAttempts, logger)),

		MovieReaction: moviereaction.NewHandler(moviereaction.NewService(moviereaction.NewMemoryStore(), movies, logger)),
	})

	return &harness{handler: server.Handler(), tokens: tokens, movieID: movieID}
}

func (h *harness) do(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, payload)
	request.Header.Set("Content-Type", "application/json")
	if userID != "" {
		token, err := h.tokens.GenerateAccessToken(userID, userID, time.Minute)
		require.NoError(t, err)
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	h.handler.ServeHTTP(recorder, request)
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope), recorder.Body.String())
	return envelope.Data
}

func TestCommentLifecycle(t *testing.T) {
	h := newHarness(t)
	commentsPath := "/api/v1/movies/" + h.movieID + "/comments"

	// Anonymous callers cannot post.
	anonymous := h.do(t, http.MethodPost, commentsPath, "", map[string]string{"body": "hi"})
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	created := h.do(t, http.MethodPost, commentsPath, "alice-id", map[string]string{"body": "Red pill"})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	root := decode[comment.Comment](t, created)

	reply := h.do(t, http.MethodPost, commentsPath, "bob-id", map[string]any{"body": "Blue pill", "parent_comment_id": root.ID})
	require.Equal(t, http.StatusCreated, reply.Code, reply.Body.String())

	reactionPath := "/api/v1/comments/" + root.ID + "/reaction"

	liked := h.do(t, http.MethodPut, reactionPath, "bob-id", map[string]string{"reaction": "like"})
	require.Equal(t, http.StatusOK, liked.Code, liked.Body.String())
	result := decode[reaction.Result](t, liked)
	assert.Equal(t, reaction.Applied, result.Outcome)
	assert.Equal(t, 1, result.LikeCount)

	own := h.do(t, http.MethodPut, reactionPath, "alice-id", map[string]string{"reaction": "like"})
	assert.Equal(t, http.StatusForbidden, own.Code)

	invalid := h.do(t, http.MethodPut, reactionPath, "bob-id", map[string]string{"reaction": "love"})
	assert.Equal(t, http.StatusBadRequest, invalid.Code)

	mine := h.do(t, http.MethodGet, "/api/v1/movies/"+h.movieID+"/reactions/me", "bob-id", nil)
	require.Equal(t, http.StatusOK, mine.Code)
	assert.Equal(t, map[string]reaction.Kind{root.ID: reaction.Like}, decode[map[string]reaction.Kind](t, mine))

	listed := h.do(t, http.MethodGet, commentsPath+"?sort=most_liked", "", nil)
	require.Equal(t, http.StatusOK, listed.Code)
	threads := decode[[]comment.Node](t, listed)
	require.Len(t, threads, 1)
	assert.Equal(t, "alice", threads[0].AuthorName)
	assert.Equal(t, 1, threads[0].LikeCount)
	require.Len(t, threads[0].Children, 1)
	assert.Equal(t, constants.AnonymousDisplayName, threads[0].Children[0].AuthorName)

	forbidden := h.do(t, http.MethodDelete, "/api/v1/comments/"+root.ID, "bob-id", nil)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)

	deleted := h.do(t, http.MethodDelete, "/api/v1/comments/"+root.ID, "alice-id", nil)
	assert.Equal(t, http.StatusNoContent, deleted.Code)

	gone := h.do(t, http.MethodGet, "/api/v1/comments/"+root.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestRouting_Validation(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
	}{
		{"bad_movie_id", http.MethodGet, "/api/v1/movies/not-a-uuid/comments", nil, http.StatusBadRequest},
		{"unknown_movie", http.MethodGet, "/api/v1/movies/" + uuid.New() + "/comments", nil, http.StatusNotFound},
		{"bad_sort", http.MethodGet, "/api/v1/movies/" + h.movieID + "/comments?sort=hot", nil, http.StatusBadRequest},
		{"empty_body", http.MethodPost, "/api/v1/movies/" + h.movieID + "/comments", map[string]string{"body": "   "}, http.StatusBadRequest},
		{"unknown_field", http.MethodPost, "/api/v1/movies/" + h.movieID + "/comments", map[string]string{"body": "x", "extra": "y"}, http.StatusBadRequest},
		{"missing_parent", http.MethodPost, "/api/v1/movies/" + h.movieID + "/comments", map[string]string{"body": "x", "parent_comment_id": uuid.New()}, http.StatusUnprocessableEntity},
		{"resolve_external", http.MethodGet, "/api/v1/movies/external/tt0133093", nil, http.StatusOK},
		{"page_far_past_end", http.MethodGet, "/api/v1/movies/" + h.movieID + "/comments?page=100000000000000000&limit=100", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := h.do(t, tt.method, tt.path, "carol-id", tt.body)
			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())
		})
	}
}

func TestMovieReaction(t *testing.T) {
	h := newHarness(t)
	base := "/api/v1/movies/" + h.movieID + "/reaction"

	recorder := h.do(t, http.MethodGet, base+"/me", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, decode[*moviereaction.Reaction](t, recorder))

	recorder = h.do(t, http.MethodPut, base, "", map[string]bool{"liked": true})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = h.do(t, http.MethodPut, base, "bob-id", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = h.do(t, http.MethodPut, "/api/v1/movies/"+uuid.New()+"/reaction", "bob-id", map[string]bool{"liked": true})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = h.do(t, http.MethodPut, base, "bob-id", map[string]bool{"liked": true})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.True(t, decode[moviereaction.Reaction](t, recorder).Liked)

	recorder = h.do(t, http.MethodPut, base, "bob-id", map[string]bool{"liked": false})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = h.do(t, http.MethodGet, base+"/me", "bob-id", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	mine := decode[*moviereaction.Reaction](t, recorder)
	require.NotNil(t, mine)
	assert.False(t, mine.Liked)
	assert.Equal(t, "bob-id", mine.UserID)

	recorder = h.do(t, http.MethodGet, base+"/me", "carol-id", nil)
	assert.Nil(t, decode[*moviereaction.Reaction](t, recorder))
}

func TestHealth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("ready", func(t *testing.T) {
		_, readiness := api.NewHealthHandlers(logger, api.Probe{Name: "postgres", Check: func(context.Context) error { return nil }})
		recorder := httptest.NewRecorder()
		readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("degraded", func(t *testing.T) {
		_, readiness := api.NewHealthHandlers(logger,
			api.Probe{Name: "postgres", Check: func(context.Context) error { return nil }},
			api.Probe{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }},
		)
		recorder := httptest.NewRecorder()
		readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		body := decode[map[string]any](t, recorder)
		assert.Equal(t, "degraded", body[constants.FieldStatus])
	})

	t.Run("liveness", func(t *testing.T) {
		liveness, _ := api.NewHealthHandlers(logger)
		recorder := httptest.NewRecorder()
		liveness(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
