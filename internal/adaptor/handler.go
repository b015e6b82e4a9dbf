package adaptor

import (
	"film-recommendations/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Recommendation *RecommendationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Recommendation: NewRecommendationHandler(service.Recommendation, log),
	}
}
