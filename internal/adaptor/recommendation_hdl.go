package adaptor

import (
	"net/http"

	"film-recommendations/internal/dto/request"
	"film-recommendations/internal/usecase"
	"film-recommendations/pkg/apperror"
	"film-recommendations/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	service usecase.RecommendationService
	log     *zap.Logger
}

func NewRecommendationHandler(service usecase.RecommendationService, log *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		log:     log.With(zap.String("handler", "recommendation")),
	}
}

// GetRecommendations handles GET /films/{id}/recommendations
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req, err := request.ParseRecommendationRequest(
		chi.URLParam(r, "id"),
		query.Get("limit"),
		query.Get("offset"),
	)
	if err != nil {
		h.handleServiceError(w, err, "parse recommendation request")
		return
	}

	recommendations, err := h.service.GetRecommendations(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get recommendations")
		return
	}

	utils.WriteJSON(w, http.StatusOK, recommendations)
}

// handleServiceError maps the error kind to its status and logs by severity.
func (h *RecommendationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	kind := apperror.KindOf(err)
	status := kind.Status()

	if status >= http.StatusInternalServerError {
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("kind", string(kind)),
		)
	} else {
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("kind", string(kind)),
		)
	}

	utils.ResponseError(w, status, apperror.MessageOf(err), string(kind))
}
