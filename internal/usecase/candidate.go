package usecase

import (
	"context"
	"fmt"
	"time"

	"film-recommendations/internal/data/entity"
	"film-recommendations/pkg/apperror"

	"go.uber.org/zap"
)

// WindowYears is the half width, in calendar years, of the release window.
const WindowYears = 15

// CandidateSet is every film sharing the source film's genre and release
// window, before review filtering.
type CandidateSet struct {
	Genre string
	IDs   []int64
	Films map[int64]*entity.FilmSummary
}

// ReleaseWindow returns the inclusive [start, end] window around releaseDate.
func ReleaseWindow(releaseDate time.Time) (time.Time, time.Time) {
	return releaseDate.AddDate(-WindowYears, 0, 0), releaseDate.AddDate(WindowYears, 0, 0)
}

func (s *recommendationService) selectCandidates(ctx context.Context, filmID int64) (*CandidateSet, error) {
	film, err := s.repo.Film.FindByID(ctx, filmID)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindCatalogUnavailable, "catalog unavailable", err)
	}
	if film == nil {
		return nil, apperror.New(apperror.KindFilmNotFound, fmt.Sprintf("film %d not found", filmID))
	}

	genre, err := s.repo.Genre.FindByID(ctx, film.GenreID)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindCatalogUnavailable, "catalog unavailable", err)
	}
	if genre == nil {
		s.log.Warn("Film references missing genre",
			zap.Int64("film_id", film.ID),
			zap.Int64("genre_id", film.GenreID),
		)
		return nil, apperror.New(apperror.KindGenreLookup,
			fmt.Sprintf("genre %d of film %d not found", film.GenreID, film.ID))
	}

	start, end := ReleaseWindow(film.ReleaseDate)

	films, err := s.repo.Film.FindByGenreAndReleaseRange(ctx, genre.ID, start, end)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindCatalogUnavailable, "catalog unavailable", err)
	}

	candidates := &CandidateSet{
		Genre: genre.Name,
		IDs:   make([]int64, 0, len(films)),
		Films: make(map[int64]*entity.FilmSummary, len(films)),
	}
	for _, f := range films {
		if _, seen := candidates.Films[f.ID]; seen {
			continue
		}
		candidates.IDs = append(candidates.IDs, f.ID)
		candidates.Films[f.ID] = f
	}

	s.log.Debug("Candidates selected",
		zap.Int64("film_id", film.ID),
		zap.String("genre", genre.Name),
		zap.Time("window_start", start),
		zap.Time("window_end", end),
		zap.Int("count", len(candidates.IDs)),
	)

	return candidates, nil
}
