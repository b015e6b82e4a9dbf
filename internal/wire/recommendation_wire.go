package wire

import (
	"film-recommendations/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRecommendation(r chi.Router, recommendationHandler *adaptor.RecommendationHandler) {
	// GET /films/{id}/recommendations?limit=&offset= (public)
	r.Get("/films/{id}/recommendations", recommendationHandler.GetRecommendations)
}
