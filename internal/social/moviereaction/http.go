package moviereaction

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/marquee/internal/platform/ctxutil"
	"github.com/taibuivan/marquee/internal/platform/middleware"
	requestutil "github.com/taibuivan/marquee/internal/platform/request"
	"github.com/taibuivan/marquee/internal/platform/respond"
	"github.com/taibuivan/marquee/internal/platform/validate"
	"github.com/taibuivan/marquee/internal/social/comment"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterMovieRoutes mounts the routes nested under /movies/{movieID}.
func (handler *Handler) RegisterMovieRoutes(router chi.Router) {
	router.With(middleware.RequireAuth).Put("/reaction", handler.setReaction)
	router.Get("/reaction/me", handler.myReaction)
}

type setReactionRequest struct {
	Liked *bool `json:"liked" validate:"required"`
}

func (handler *Handler) setReaction(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.UUIDParam(request, comment.ParamMovieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setReactionRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := validate.Struct(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reaction, err := handler.service.Set(request.Context(), movieID, userID, *input.Liked)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reaction)
}

// myReaction answers with null data for anonymous callers.
func (handler *Handler) myReaction(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.UUIDParam(request, comment.ParamMovieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, _ := ctxutil.CurrentUserID(request.Context())

	reaction, err := handler.service.Mine(request.Context(), movieID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reaction)
}
