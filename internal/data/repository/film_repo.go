package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"film-recommendations/internal/data/entity"
	"film-recommendations/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FilmRepository interface {
	// FindByID returns nil, nil when the film does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Film, error)
	// FindByGenreAndReleaseRange returns films of genreID released within
	// [start, end] inclusive, ordered by id.
	FindByGenreAndReleaseRange(ctx context.Context, genreID int64, start, end time.Time) ([]*entity.FilmSummary, error)
}

type filmRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmRepository(db database.PgxIface, log *zap.Logger) FilmRepository {
	return &filmRepository{
		db:  db,
		log: log.With(zap.String("repository", "film")),
	}
}

func (r *filmRepository) FindByID(ctx context.Context, id int64) (*entity.Film, error) {
	query := `
		SELECT id, title, release_date, genre_id
		FROM films
		WHERE id = $1
	`

	var film entity.Film
	err := r.db.QueryRow(ctx, query, id).Scan(
		&film.ID,
		&film.Title,
		&film.ReleaseDate,
		&film.GenreID,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find film by ID",
			zap.Error(err),
			zap.Int64("film_id", id),
		)
		return nil, fmt.Errorf("find film by id %d: %w", id, err)
	}

	return &film, nil
}

func (r *filmRepository) FindByGenreAndReleaseRange(ctx context.Context, genreID int64, start, end time.Time) ([]*entity.FilmSummary, error) {
	query := `
		SELECT id, title, release_date
		FROM films
		WHERE genre_id = $1 AND release_date BETWEEN $2 AND $3
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, genreID, start, end)
	if err != nil {
		r.log.Error("Failed to find films by genre and release range",
			zap.Error(err),
			zap.Int64("genre_id", genreID),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return nil, fmt.Errorf("find films by genre %d: %w", genreID, err)
	}
	defer rows.Close()

	var films []*entity.FilmSummary
	for rows.Next() {
		var film entity.FilmSummary
		if err := rows.Scan(&film.ID, &film.Title, &film.ReleaseDate); err != nil {
			r.log.Error("Failed to scan film row", zap.Error(err))
			return nil, fmt.Errorf("scan film row: %w", err)
		}
		films = append(films, &film)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate film rows: %w", err)
	}

	r.log.Debug("Candidate films found",
		zap.Int("count", len(films)),
		zap.Int64("genre_id", genreID),
	)

	return films, nil
}
