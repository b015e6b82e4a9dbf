package response

import (
	"film-recommendations/internal/data/entity"
)

const DateLayout = "2006-01-02"

type RecommendationItem struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	ReleaseDate   string  `json:"releaseDate"`
	Genre         string  `json:"genre"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

type RecommendationMeta struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type RecommendationResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	Meta            RecommendationMeta   `json:"meta"`
}

// Helper converter
func FilmToRecommendationItem(film *entity.FilmSummary, genre string, averageRating float64, reviewCount int) RecommendationItem {
	return RecommendationItem{
		ID:            film.ID,
		Title:         film.Title,
		ReleaseDate:   film.ReleaseDate.Format(DateLayout),
		Genre:         genre,
		AverageRating: averageRating,
		ReviewCount:   reviewCount,
	}
}
