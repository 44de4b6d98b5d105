package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/marquee/internal/platform/middleware"
	requestutil "github.com/taibuivan/marquee/internal/platform/request"
	"github.com/taibuivan/marquee/internal/platform/respond"
	"github.com/taibuivan/marquee/internal/platform/validate"
	"github.com/taibuivan/marquee/pkg/pagination"
	"github.com/taibuivan/marquee/pkg/pointer"
	"github.com/taibuivan/marquee/pkg/uuid"
)

// URL parameter names shared with the router.
const (
	ParamMovieID   = "movieID"
	ParamCommentID = "commentID"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterMovieRoutes mounts the routes nested under /movies/{movieID}.
func (handler *Handler) RegisterMovieRoutes(router chi.Router) {
	router.Get("/comments", handler.listComments)
	router.With(middleware.RequireAuth).Post("/comments", handler.createComment)
}

// RegisterRoutes mounts the routes nested under /comments/{commentID}.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getComment)
	router.With(middleware.RequireAuth).Delete("/", handler.deleteComment)
}

type createCommentRequest struct {
	Body     string  `json:"body" validate:"required"`
	ParentID *string `json:"parent_comment_id,omitempty" validate:"omitempty,uuid"`
}

func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.UUIDParam(request, ParamMovieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createCommentRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := validate.Struct(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.ParentID != nil {
		parentID, _ := uuid.Canonical(*input.ParentID)
		input.ParentID = pointer.To(parentID)
	}

	authorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.Create(request.Context(), CreateInput{
		MovieID:  movieID,
		AuthorID: authorID,
		Body:     input.Body,
		ParentID: input.ParentID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment)
}

func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.UUIDParam(request, ParamMovieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	key, err := ParseSortKey(request.URL.Query().Get("sort"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	threads, total, err := handler.service.List(request.Context(), movieID, key, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, threads, pagination.NewMeta(paginationParams, total))
}

func (handler *Handler) getComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.UUIDParam(request, ParamCommentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.Get(request.Context(), commentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment)
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.UUIDParam(request, ParamCommentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	requesterID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), commentID, requesterID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
