package database

import (
	"context"
	"database/sql"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/jasimarif/psychology-app/config"
	"github.com/jasimarif/psychology-app/internal/repo"
)

// NewEntClient opens the application database and wraps it in an ent client.
func NewEntClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	db, err := OpenFromCentral(cfg)
	if err != nil {
		return nil, err
	}
	return NewEntClientFromDB(db), nil
}

// NewEntClientFromDB builds a client over an existing pool. Closing the client
// closes db.
func NewEntClientFromDB(db *sql.DB) *repo.Client {
	drv := entsql.OpenDB(dialect.Postgres, db)
	return repo.NewClient(repo.Driver(drv))
}

func MigrateEnt(ctx context.Context, client *repo.Client) error {
	return client.Schema.Create(ctx)
}
