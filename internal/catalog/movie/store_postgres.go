package movie

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/marquee/internal/platform/database/schema"
	"github.com/taibuivan/marquee/internal/platform/dberr"
)

// Querier is the subset of [pgxpool.Pool] the repository uses.
type Querier interface {
	QueryRow(context context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db Querier
}

func NewPostgresRepository(db Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CatalogMovie.Table, schema.CatalogMovie.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "movie_exists")
	}

	return exists, nil
}

func (repository *PostgresRepository) FindByExternalID(context context.Context, externalID string) (*Movie, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogMovie.ID, schema.CatalogMovie.ExternalID, schema.CatalogMovie.Genre,
		schema.CatalogMovie.ReleaseYear, schema.CatalogMovie.Rating, schema.CatalogMovie.Overview,
		schema.CatalogMovie.PosterURL, schema.CatalogMovie.BackdropURL, schema.CatalogMovie.CreatedAt,
		schema.CatalogMovie.Table, schema.CatalogMovie.ExternalID,
	)

	m := &Movie{}
	err := repository.db.QueryRow(context, query, externalID).Scan(
		&m.ID, &m.ExternalID, &m.Genre, &m.ReleaseYear, &m.Rating,
		&m.Overview, &m.PosterURL, &m.BackdropURL, &m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_movie_by_external_id")
	}

	return m, nil
}
