package usecase

import (
	"context"
	"sort"
	"time"

	"film-recommendations/internal/data/entity"
	"film-recommendations/internal/data/repository"
)

type fakeFilmRepo struct {
	films    map[int64]*entity.Film
	err      error
	rangeErr error
}

func (f *fakeFilmRepo) FindByID(ctx context.Context, id int64) (*entity.Film, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.films[id], nil
}

func (f *fakeFilmRepo) FindByGenreAndReleaseRange(ctx context.Context, genreID int64, start, end time.Time) ([]*entity.FilmSummary, error) {
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}

	var out []*entity.FilmSummary
	for _, film := range f.films {
		if film.GenreID != genreID || film.ReleaseDate.Before(start) || film.ReleaseDate.After(end) {
			continue
		}
		out = append(out, &entity.FilmSummary{ID: film.ID, Title: film.Title, ReleaseDate: film.ReleaseDate})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeGenreRepo struct {
	genres map[int64]*entity.Genre
	err    error
}

func (f *fakeGenreRepo) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.genres[id], nil
}

type fakeReviewClient struct {
	aggregates map[int64]*entity.ReviewAggregate
	err        error
	calls      int
	gotIDs     []int64
}

func (f *fakeReviewClient) FetchReviews(ctx context.Context, filmIDs []int64) (map[int64]*entity.ReviewAggregate, error) {
	f.calls++
	f.gotIDs = append([]int64(nil), filmIDs...)
	if f.err != nil {
		return nil, f.err
	}

	out := make(map[int64]*entity.ReviewAggregate)
	for _, id := range filmIDs {
		if agg, ok := f.aggregates[id]; ok {
			out[id] = agg
		}
	}
	return out, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// aggregate builds a review aggregate with one review per rating.
func aggregate(filmID int64, ratings ...float64) *entity.ReviewAggregate {
	agg := &entity.ReviewAggregate{FilmID: filmID}
	for i, r := range ratings {
		agg.Reviews = append(agg.Reviews, entity.Review{ID: int64(i + 1), AuthorID: int64(100 + i), Rating: r})
	}
	return agg
}

func newFakeRepository(films *fakeFilmRepo, genres *fakeGenreRepo) *repository.Repository {
	return &repository.Repository{Film: films, Genre: genres}
}
