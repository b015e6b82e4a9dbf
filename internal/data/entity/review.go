package entity

type Review struct {
	ID       int64
	AuthorID int64
	Rating   float64
}

// ReviewAggregate holds every review the provider reported for one film.
type ReviewAggregate struct {
	FilmID  int64
	Reviews []Review
}
