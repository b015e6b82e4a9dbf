package request

import (
	"fmt"
	"strconv"

	"film-recommendations/pkg/apperror"
	"film-recommendations/pkg/utils"
)

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// RecommendationRequest is the validated input of GET /films/{id}/recommendations.
type RecommendationRequest struct {
	FilmID int64
	Limit  int `validate:"gte=0"`
	Offset int `validate:"gte=0"`
}

// ParseRecommendationRequest validates the raw path and query values. An
// empty limit or offset counts as absent. Negative values are ignored and
// the default is kept.
func ParseRecommendationRequest(rawID, rawLimit, rawOffset string) (*RecommendationRequest, error) {
	filmID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalidMovieID, fmt.Sprintf("invalid movie id %q", rawID), err)
	}

	limit, err := parseNonNegative(rawLimit, DefaultLimit)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalidLimit, fmt.Sprintf("invalid limit %q", rawLimit), err)
	}

	offset, err := parseNonNegative(rawOffset, DefaultOffset)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalidOffset, fmt.Sprintf("invalid offset %q", rawOffset), err)
	}

	req := &RecommendationRequest{
		FilmID: filmID,
		Limit:  limit,
		Offset: offset,
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	return req, nil
}

// parseNonNegative returns defaultValue for empty or negative input and an
// error for anything that is not an integer.
func parseNonNegative(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	if result < 0 {
		return defaultValue, nil
	}

	return result, nil
}
