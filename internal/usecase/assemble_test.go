package usecase

import (
	"testing"

	"film-recommendations/internal/data/entity"
)

func testCandidates(ids ...int64) *CandidateSet {
	set := &CandidateSet{Genre: "Drama", Films: make(map[int64]*entity.FilmSummary)}
	for _, id := range ids {
		set.IDs = append(set.IDs, id)
		set.Films[id] = &entity.FilmSummary{ID: id, Title: "Film", ReleaseDate: date(2000, 1, 2)}
	}
	return set
}

func itemIDs(t *testing.T, scores []FilmScore, candidates *CandidateSet, limit, offset int) []int64 {
	t.Helper()

	resp := AssembleRecommendations(scores, candidates, limit, offset)
	if resp.Recommendations == nil {
		t.Fatal("recommendations must never be nil")
	}
	if resp.Meta.Limit != limit || resp.Meta.Offset != offset {
		t.Errorf("meta = %+v, want limit=%d offset=%d", resp.Meta, limit, offset)
	}

	ids := make([]int64, len(resp.Recommendations))
	for i, item := range resp.Recommendations {
		ids[i] = item.ID
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAssembleRecommendations_SortsAndMerges(t *testing.T) {
	candidates := testCandidates(3, 8, 10)
	scores := []FilmScore{
		{FilmID: 10, AverageRating: 4.5, ReviewCount: 5},
		{FilmID: 3, AverageRating: 4.2, ReviewCount: 7},
		{FilmID: 99, AverageRating: 4.9, ReviewCount: 9}, // not a candidate
	}

	resp := AssembleRecommendations(scores, candidates, 10, 0)

	if len(resp.Recommendations) != 2 {
		t.Fatalf("got %d items, want 2", len(resp.Recommendations))
	}

	first := resp.Recommendations[0]
	if first.ID != 3 || first.Genre != "Drama" || first.AverageRating != 4.2 || first.ReviewCount != 7 {
		t.Errorf("unexpected first item: %+v", first)
	}
	if first.ReleaseDate != "2000-01-02" || first.Title != "Film" {
		t.Errorf("unexpected metadata: %+v", first)
	}
	if resp.Recommendations[1].ID != 10 {
		t.Errorf("second item id = %d, want 10", resp.Recommendations[1].ID)
	}
}

func TestAssembleRecommendations_PaginationLaw(t *testing.T) {
	candidates := testCandidates(1, 2, 3, 4, 5, 6, 7)
	var scores []FilmScore
	for _, id := range []int64{7, 2, 5, 1, 4} {
		scores = append(scores, FilmScore{FilmID: id, AverageRating: 4.5, ReviewCount: 5})
	}

	all := itemIDs(t, scores, candidates, len(scores)+100, 0)
	if !equalIDs(all, []int64{1, 2, 4, 5, 7}) {
		t.Fatalf("full list = %v", all)
	}

	for offset := 0; offset <= len(all)+1; offset++ {
		for limit := 0; limit <= len(all)+1; limit++ {
			start := offset
			if start > len(all) {
				start = len(all)
			}
			end := start + limit
			if end > len(all) {
				end = len(all)
			}

			got := itemIDs(t, scores, candidates, limit, offset)
			if !equalIDs(got, all[start:end]) {
				t.Errorf("limit=%d offset=%d: got %v, want %v", limit, offset, got, all[start:end])
			}
		}
	}
}

func TestAssembleRecommendations_Empty(t *testing.T) {
	if ids := itemIDs(t, nil, testCandidates(), 10, 0); len(ids) != 0 {
		t.Errorf("expected no items, got %v", ids)
	}
}

func TestAssembleRecommendations_NegativePaginationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative offset")
		}
	}()
	AssembleRecommendations(nil, testCandidates(), 1, -1)
}
