package domain

import "time"

// Movie is the canonical movie entity. Title is the only required attribute;
// every other field is optional and stays nil when the metadata provider did
// not supply a usable value.
type Movie struct {
	ID         int64
	Title      string
	Year       *string
	Rated      *string
	Released   *time.Time
	Runtime    *string
	Genre      *string
	Director   *string
	Writer     *string
	Actors     *string
	Plot       *string
	Language   *string
	Country    *string
	Awards     *string
	Poster     *string
	Metascore  *int
	IMDBRating *float64
	IMDBVotes  *int
	IMDBID     *string
	ItemType   *string
	DVD        *time.Time
	BoxOffice  *int64
	Production *string
	Website    *string

	// Ratings holds the provider ratings when they were loaded alongside
	// the movie. Not populated by every query.
	Ratings []Rating
}
