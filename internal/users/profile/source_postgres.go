package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/marquee/internal/platform/database/schema"
	"github.com/taibuivan/marquee/internal/platform/dberr"
)

// Querier is the subset of [pgxpool.Pool] the source uses.
type Querier interface {
	Query(context context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads users.profile.
type PostgresSource struct {
	db Querier
}

func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

func (source *PostgresSource) DisplayNames(context context.Context, userIDs []string) (map[string]string, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1)`,
		schema.UsersProfile.UserID, schema.UsersProfile.Username,
		schema.UsersProfile.Table, schema.UsersProfile.UserID,
	)

	rows, err := source.db.Query(context, query, userIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "list_profile_names")
	}
	defer rows.Close()

	names := make(map[string]string, len(userIDs))
	for rows.Next() {
		var userID, username string
		if err := rows.Scan(&userID, &username); err != nil {
			return nil, dberr.Wrap(err, "scan_profile_name")
		}
		names[userID] = username
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_profile_names")
	}

	return names, nil
}
