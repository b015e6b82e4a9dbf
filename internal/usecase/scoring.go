package usecase

import (
	"math"

	"film-recommendations/internal/data/entity"
)

const (
	MinReviewCount = 5
	// MinAverageRating is exclusive: a film averaging exactly 4.0 does not qualify.
	MinAverageRating = 4.0
)

type FilmScore struct {
	FilmID        int64
	AverageRating float64
	ReviewCount   int
}

// ScoreReviews keeps films with at least MinReviewCount reviews whose
// rounded average is strictly above MinAverageRating. Order is unspecified.
func ScoreReviews(aggregates map[int64]*entity.ReviewAggregate) []FilmScore {
	scores := make([]FilmScore, 0, len(aggregates))
	for filmID, agg := range aggregates {
		if agg == nil || len(agg.Reviews) < MinReviewCount {
			continue
		}

		var sum float64
		for _, r := range agg.Reviews {
			sum += r.Rating
		}

		avg := roundHalfUp(sum, len(agg.Reviews))
		if avg <= MinAverageRating {
			continue
		}

		scores = append(scores, FilmScore{
			FilmID:        filmID,
			AverageRating: avg,
			ReviewCount:   len(agg.Reviews),
		})
	}
	return scores
}

// roundHalfUp returns sum/count rounded to two decimals, halves going up.
// Scaling before dividing keeps integer rating sums exact.
func roundHalfUp(sum float64, count int) float64 {
	return math.Floor(sum*100/float64(count)+0.5) / 100
}
