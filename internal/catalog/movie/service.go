package movie

import (
	"context"
	"strings"

	"github.com/taibuivan/marquee/internal/platform/validate"
)

const FieldExternalID = "external_id"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Exists reports whether the internal movie id is in the catalog.
func (service *Service) Exists(context context.Context, movieID string) (bool, error) {
	if movieID == "" {
		return false, nil
	}
	return service.repo.Exists(context, movieID)
}

// Resolve maps an external catalog identifier to the stored movie.
func (service *Service) Resolve(context context.Context, externalID string) (*Movie, error) {
	externalID = strings.TrimSpace(externalID)

	validator := &validate.Validator{}
	if err := validator.Required(FieldExternalID, externalID).MaxLen(FieldExternalID, externalID, 64).Err(); err != nil {
		return nil, err
	}

	return service.repo.FindByExternalID(context, externalID)
}
