package repository

import (
	"context"
	"database/sql"

	"film-recommendations/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the read-only catalog stores.
type Repository struct {
	Film  FilmRepository
	Genre GenreRepository

	ping func(ctx context.Context) error
}

// NewRepository builds the catalog on top of a Postgres pool.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Film:  NewFilmRepository(db, log),
		Genre: NewGenreRepository(db, log),
		ping:  db.Ping,
	}
}

// NewSQLiteRepository builds the catalog on top of a SQLite database.
func NewSQLiteRepository(db *sql.DB, log *zap.Logger) *Repository {
	return &Repository{
		Film:  NewSQLiteFilmRepository(db, log),
		Genre: NewSQLiteGenreRepository(db, log),
		ping:  db.PingContext,
	}
}

// Ping checks that the backing database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}
