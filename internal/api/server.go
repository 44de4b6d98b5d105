// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Routes:

	GET    /health
	GET    /ready
	GET    /api/v1/movies/external/{externalID}
	GET    /api/v1/movies/{movieID}/comments
	POST   /api/v1/movies/{movieID}/comments
	GET    /api/v1/movies/{movieID}/reactions/me
	PUT    /api/v1/movies/{movieID}/reaction
	GET    /api/v1/movies/{movieID}/reaction/me
	GET    /api/v1/comments/{commentID}
	DELETE /api/v1/comments/{commentID}
	PUT    /api/v1/comments/{commentID}/reaction
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/marquee/internal/catalog/movie"
	"github.com/taibuivan/marquee/internal/platform/config"
	"github.com/taibuivan/marquee/internal/platform/constants"
	"github.com/taibuivan/marquee/internal/platform/middleware"
	"github.com/taibuivan/marquee/internal/social/comment"
	"github.com/taibuivan/marquee/internal/social/moviereaction"
	"github.com/taibuivan/marquee/internal/social/reaction"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	// Movie resolves external catalog ids.
	Movie *movie.Handler

	// Comment serves threads and comment lifecycle.
	Comment *comment.Handler

	// Reaction serves likes and dislikes on comments.
	Reaction *reaction.Handler

	// MovieReaction serves a user's like or dislike of a movie.
	MovieReaction *moviereaction.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. ctx bounds background work such as the rate
// limiter's eviction loop.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Authenticate(verifier))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/movies", func(movies chi.Router) {
			h.Movie.RegisterRoutes(movies)

			movies.Route("/{"+comment.ParamMovieID+"}", func(scoped chi.Router) {
				h.Comment.RegisterMovieRoutes(scoped)
				h.Reaction.RegisterMovieRoutes(scoped)
				h.MovieReaction.RegisterMovieRoutes(scoped)
			})
		})

		api.Route("/comments/{"+comment.ParamCommentID+"}", func(scoped chi.Router) {
			h.Comment.RegisterRoutes(scoped)
			h.Reaction.RegisterRoutes(scoped)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the routed middleware chain.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server. It blocks until the server is closed.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
