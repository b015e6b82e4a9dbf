package usecase

import (
	"context"

	"film-recommendations/internal/data/client"
	"film-recommendations/internal/data/repository"
	"film-recommendations/internal/dto/request"
	"film-recommendations/internal/dto/response"
	"film-recommendations/pkg/apperror"
	"film-recommendations/pkg/metrics"

	"go.uber.org/zap"
)

type RecommendationService interface {
	// GetRecommendations runs select -> fetch reviews -> score -> assemble.
	// Errors carry an apperror.Kind; no partial result is returned.
	GetRecommendations(ctx context.Context, req *request.RecommendationRequest) (*response.RecommendationResponse, error)
}

type recommendationService struct {
	repo    *repository.Repository
	reviews client.ReviewClient
	log     *zap.Logger
}

func NewRecommendationService(
	repo *repository.Repository,
	reviews client.ReviewClient,
	log *zap.Logger,
) RecommendationService {
	return &recommendationService{
		repo:    repo,
		reviews: reviews,
		log:     log.With(zap.String("service", "recommendation")),
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, req *request.RecommendationRequest) (*response.RecommendationResponse, error) {
	candidates, err := s.selectCandidates(ctx, req.FilmID)
	if err != nil {
		return nil, err
	}
	metrics.RecommendationCandidates.Observe(float64(len(candidates.IDs)))

	aggregates, err := s.reviews.FetchReviews(ctx, candidates.IDs)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindReviewProvider, "review provider unavailable", err)
	}

	scores := ScoreReviews(aggregates)
	metrics.RecommendationsQualified.Observe(float64(len(scores)))

	resp := AssembleRecommendations(scores, candidates, req.Limit, req.Offset)

	s.log.Info("Recommendations computed",
		zap.Int64("film_id", req.FilmID),
		zap.String("genre", candidates.Genre),
		zap.Int("candidates", len(candidates.IDs)),
		zap.Int("qualified", len(scores)),
		zap.Int("returned", len(resp.Recommendations)),
		zap.Int("limit", req.Limit),
		zap.Int("offset", req.Offset),
	)

	return resp, nil
}
