package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/marquee/internal/platform/request"
	"github.com/taibuivan/marquee/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the routes nested under /movies.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/external/{externalID}", handler.resolveMovie)
}

func (handler *Handler) resolveMovie(writer http.ResponseWriter, request *http.Request) {
	movie, err := handler.service.Resolve(request.Context(), requestutil.Param(request, "externalID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, movie)
}
