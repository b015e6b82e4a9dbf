package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInvalidMovieID, http.StatusUnprocessableEntity},
		{KindInvalidLimit, http.StatusUnprocessableEntity},
		{KindInvalidOffset, http.StatusUnprocessableEntity},
		{KindFilmNotFound, http.StatusUnprocessableEntity},
		{KindGenreLookup, http.StatusUnprocessableEntity},
		{KindCatalogUnavailable, http.StatusInternalServerError},
		{KindReviewProvider, http.StatusInternalServerError},
		{KindUnknownRoute, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Status(); got != tt.want {
				t.Errorf("Status() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorMatchesByKind(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("fetch reviews: %w", Wrap(KindReviewProvider, "review provider unavailable", cause))

	if !errors.Is(err, New(KindReviewProvider, "")) {
		t.Error("expected errors.Is to match on kind")
	}
	if errors.Is(err, New(KindCatalogUnavailable, "")) {
		t.Error("expected errors.Is not to match a different kind")
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable")
	}
	if got := KindOf(err); got != KindReviewProvider {
		t.Errorf("KindOf() = %s, want %s", got, KindReviewProvider)
	}
	if got := MessageOf(err); got != "review provider unavailable" {
		t.Errorf("MessageOf() = %q", got)
	}
}

func TestPlainErrorIsInternal(t *testing.T) {
	err := errors.New("boom")

	if got := KindOf(err); got != KindInternal {
		t.Errorf("KindOf() = %s, want %s", got, KindInternal)
	}
	if got := MessageOf(err); got != "Internal server error" {
		t.Errorf("MessageOf() = %q", got)
	}
}
