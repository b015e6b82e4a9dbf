package entity

import (
	"time"
)

type Film struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	ReleaseDate time.Time `db:"release_date"`
	GenreID     int64     `db:"genre_id"`
}

// FilmSummary is the projection returned by candidate range queries.
type FilmSummary struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	ReleaseDate time.Time `db:"release_date"`
}
