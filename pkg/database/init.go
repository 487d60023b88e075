package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/jasimarif/psychology-app/config"
)

// DatabaseNames lists the databases `system init` provisions: the
// server.databases list when set, else the application database alone.
// Blank and repeated names are dropped.
func DatabaseNames(cfg *config.Config) []string {
	src := cfg.Server.Databases
	if len(src) == 0 {
		src = []string{cfg.Database.DBName}
	}

	seen := make(map[string]struct{}, len(src))
	names := make([]string, 0, len(src))
	for _, n := range src {
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	return names
}

// InitializeDatabases connects to the maintenance "postgres" database and
// creates every missing database from DatabaseNames. It returns the names it
// created; existing databases are left alone.
func InitializeDatabases(ctx context.Context, cfg *config.Config) ([]string, error) {
	admin := FromCentralConfig(cfg.Database)
	admin.DBName = "postgres"

	conn, err := Open(admin)
	if err != nil {
		return nil, fmt.Errorf("connect to maintenance database: %w", err)
	}
	defer conn.Close()

	var created []string
	for _, name := range DatabaseNames(cfg) {
		ok, err := createIfMissing(ctx, conn, name)
		if err != nil {
			return created, fmt.Errorf("database %q: %w", name, err)
		}
		if ok {
			created = append(created, name)
		}
	}
	return created, nil
}

func createIfMissing(ctx context.Context, conn *sql.DB, name string) (bool, error) {
	var exists bool
	err := conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return false, nil
	}

	// CREATE DATABASE takes no bind parameters.
	if _, err := conn.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		return false, fmt.Errorf("create: %w", err)
	}
	return true, nil
}
