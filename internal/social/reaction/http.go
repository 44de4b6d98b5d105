package reaction

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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

// RegisterRoutes mounts the routes nested under /comments/{commentID}.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.With(middleware.RequireAuth).Put("/reaction", handler.react)
}

// RegisterMovieRoutes mounts the routes nested under /movies/{movieID}.
func (handler *Handler) RegisterMovieRoutes(router chi.Router) {
	router.With(middleware.RequireAuth).Get("/reactions/me", handler.myReactions)
}

type reactRequest struct {
	Reaction string `json:"reaction" validate:"required,oneof=like dislike"`
}

func (handler *Handler) react(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.UUIDParam(request, comment.ParamCommentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input reactRequest
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

	result, err := handler.service.React(request.Context(), commentID, userID, Kind(input.Reaction))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

func (handler *Handler) myReactions(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.UUIDParam(request, comment.ParamMovieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reactions, err := handler.service.MyReactions(request.Context(), movieID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reactions)
}
