package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/moviesdb/moviesdb/internal/dates"
	"github.com/moviesdb/moviesdb/internal/domain"
	"github.com/moviesdb/moviesdb/internal/omdb"
)

// movieFromRecord maps a provider record onto an unsaved Movie. String
// fields copy through as-is (nil stays nil, never becomes ""); date and
// numeric fields go through the coercion helpers below. Title presence is
// the ingestion workflow's concern, not enforced here.
func movieFromRecord(rec *omdb.Record) domain.Movie {
	var movie domain.Movie
	if rec.Title != nil {
		movie.Title = *rec.Title
	}
	movie.Year = rec.Year
	movie.Rated = rec.Rated
	movie.Released = dateField(rec.Released)
	movie.Runtime = rec.Runtime
	movie.Genre = rec.Genre
	movie.Director = rec.Director
	movie.Writer = rec.Writer
	movie.Actors = rec.Actors
	movie.Plot = rec.Plot
	movie.Language = rec.Language
	movie.Country = rec.Country
	movie.Awards = rec.Awards
	movie.Poster = rec.Poster
	movie.Metascore = intField(rec.Metascore)
	movie.IMDBRating = floatField(rec.IMDBRating)
	movie.IMDBVotes = intField(stripSeparators(rec.IMDBVotes))
	movie.IMDBID = rec.IMDBID
	movie.ItemType = rec.Type
	movie.DVD = dateField(rec.DVD)
	movie.BoxOffice = int64Field(stripCurrency(rec.BoxOffice))
	movie.Production = rec.Production
	movie.Website = rec.Website
	return movie
}

// ratingFromEntry maps one provider ratings entry onto an unsaved Rating.
// Source and Value pass through verbatim.
func ratingFromEntry(movieID int64, entry omdb.RatingEntry) domain.Rating {
	return domain.Rating{
		MovieID: movieID,
		Source:  entry.Source,
		Value:   entry.Value,
	}
}

// dateField coerces a localized provider date. Absence and unparsable text
// both yield nil; a bad date never fails the record.
func dateField(s *string) *time.Time {
	if s == nil {
		return nil
	}
	parsed, err := dates.ParseEnglishDate(*s)
	if err != nil {
		return nil
	}
	return &parsed
}

// intField coerces a numeric provider field. Absence yields nil. The
// provider marks unavailable numerics with its sentinel, so a present but
// non-numeric value indicates a contract change upstream; it is dropped
// rather than failing the record.
func intField(s *string) *int {
	if s == nil {
		return nil
	}
	parsed, err := strconv.Atoi(*s)
	if err != nil {
		return nil
	}
	return &parsed
}

func int64Field(s *string) *int64 {
	if s == nil {
		return nil
	}
	parsed, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func floatField(s *string) *float64 {
	if s == nil {
		return nil
	}
	parsed, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// stripSeparators removes thousands-separator commas ("36,246" -> "36246").
func stripSeparators(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := strings.ReplaceAll(*s, ",", "")
	return &cleaned
}

// stripCurrency removes thousands separators and a leading currency symbol
// ("$2,113,869" -> "2113869").
func stripCurrency(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := strings.TrimPrefix(strings.ReplaceAll(*s, ",", ""), "$")
	return &cleaned
}
