package usecase

import (
	"film-recommendations/internal/data/client"
	"film-recommendations/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Recommendation RecommendationService
}

func NewService(repo *repository.Repository, reviews client.ReviewClient, log *zap.Logger) *Service {
	return &Service{
		Recommendation: NewRecommendationService(repo, reviews, log),
	}
}
