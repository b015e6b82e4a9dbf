package usecase

import (
	"fmt"
	"sort"

	"film-recommendations/internal/dto/response"
)

// AssembleRecommendations joins scores with candidate metadata, sorts by
// film id and returns the [offset, offset+limit) page. Scores for films
// missing from candidates are dropped.
func AssembleRecommendations(scores []FilmScore, candidates *CandidateSet, limit, offset int) *response.RecommendationResponse {
	if limit < 0 || offset < 0 {
		panic(fmt.Sprintf("usecase: negative pagination limit=%d offset=%d", limit, offset))
	}

	items := make([]response.RecommendationItem, 0, len(scores))
	for _, score := range scores {
		film, ok := candidates.Films[score.FilmID]
		if !ok {
			continue
		}
		items = append(items, response.FilmToRecommendationItem(film, candidates.Genre, score.AverageRating, score.ReviewCount))
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})

	return &response.RecommendationResponse{
		Recommendations: paginate(items, limit, offset),
		Meta: response.RecommendationMeta{
			Limit:  limit,
			Offset: offset,
		},
	}
}

func paginate(items []response.RecommendationItem, limit, offset int) []response.RecommendationItem {
	if offset >= len(items) {
		return []response.RecommendationItem{}
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
