package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"film-recommendations/internal/data/entity"

	"go.uber.org/zap"
)

// SQLite stores release_date as TEXT; comparisons rely on the ISO layout
// sorting lexically.
const sqliteDateLayout = "2006-01-02"

type sqliteFilmRepository struct {
	db  *sql.DB
	log *zap.Logger
}

func NewSQLiteFilmRepository(db *sql.DB, log *zap.Logger) FilmRepository {
	return &sqliteFilmRepository{
		db:  db,
		log: log.With(zap.String("repository", "film"), zap.String("driver", "sqlite")),
	}
}

func (r *sqliteFilmRepository) FindByID(ctx context.Context, id int64) (*entity.Film, error) {
	query := `
		SELECT id, title, release_date, genre_id
		FROM films
		WHERE id = ?
	`

	var (
		film        entity.Film
		releaseDate string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&film.ID,
		&film.Title,
		&releaseDate,
		&film.GenreID,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find film by ID",
			zap.Error(err),
			zap.Int64("film_id", id),
		)
		return nil, fmt.Errorf("find film by id %d: %w", id, err)
	}

	film.ReleaseDate, err = parseSQLiteDate(releaseDate)
	if err != nil {
		return nil, fmt.Errorf("parse release date of film %d: %w", id, err)
	}

	return &film, nil
}

func (r *sqliteFilmRepository) FindByGenreAndReleaseRange(ctx context.Context, genreID int64, start, end time.Time) ([]*entity.FilmSummary, error) {
	// date() normalises values stored with a time part
	query := `
		SELECT id, title, release_date
		FROM films
		WHERE genre_id = ? AND date(release_date) BETWEEN ? AND ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query,
		genreID,
		start.Format(sqliteDateLayout),
		end.Format(sqliteDateLayout),
	)
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
		var (
			film        entity.FilmSummary
			releaseDate string
		)
		if err := rows.Scan(&film.ID, &film.Title, &releaseDate); err != nil {
			r.log.Error("Failed to scan film row", zap.Error(err))
			return nil, fmt.Errorf("scan film row: %w", err)
		}
		if film.ReleaseDate, err = parseSQLiteDate(releaseDate); err != nil {
			return nil, fmt.Errorf("parse release date of film %d: %w", film.ID, err)
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

type sqliteGenreRepository struct {
	db  *sql.DB
	log *zap.Logger
}

func NewSQLiteGenreRepository(db *sql.DB, log *zap.Logger) GenreRepository {
	return &sqliteGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre"), zap.String("driver", "sqlite")),
	}
}

func (r *sqliteGenreRepository) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	query := `SELECT id, name FROM genres WHERE id = ?`

	var genre entity.Genre
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&genre.ID,
		&genre.Name,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return nil, fmt.Errorf("find genre by id %d: %w", id, err)
	}

	return &genre, nil
}

// parseSQLiteDate accepts "2006-01-02" and anything that starts with it,
// e.g. RFC3339 values written by other tools.
func parseSQLiteDate(value string) (time.Time, error) {
	if len(value) > len(sqliteDateLayout) {
		value = value[:len(sqliteDateLayout)]
	}
	return time.Parse(sqliteDateLayout, value)
}
