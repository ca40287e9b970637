package catalog

import (
	"testing"
	"time"

	"github.com/moviesdb/moviesdb/internal/omdb"
)

func str(s string) *string { return &s }

func fullRecord() *omdb.Record {
	return &omdb.Record{
		Title:      str("Plan 9 from Outer Space"),
		Year:       str("1957"),
		Rated:      str("Approved"),
		Released:   str("22 Jul 1959"),
		Runtime:    str("79 min"),
		Genre:      str("Horror, Sci-Fi"),
		Director:   str("Edward D. Wood Jr."),
		Writer:     str("Edward D. Wood Jr."),
		Actors:     str("Gregory Walcott, Tom Keene"),
		Plot:       str("Aliens resurrect dead humans."),
		Language:   str("English"),
		Country:    str("USA"),
		Awards:     str("1 win."),
		Poster:     str("https://example.com/plan9.jpg"),
		Metascore:  str("54"),
		IMDBRating: str("3.9"),
		IMDBVotes:  str("36,246"),
		IMDBID:     str("tt0052077"),
		Type:       str("movie"),
		DVD:        str("05 Oct 2000"),
		BoxOffice:  str("$2,113,869"),
		Production: str("DCA"),
		Website:    str("https://example.com"),
		Ratings: []omdb.RatingEntry{
			{Source: "Internet Movie Database", Value: "3.9/10"},
		},
	}
}

func TestMovieFromRecordFullRecord(t *testing.T) {
	movie := movieFromRecord(fullRecord())

	if movie.Title != "Plan 9 from Outer Space" {
		t.Fatalf("Title = %q", movie.Title)
	}
	if movie.Year == nil || *movie.Year != "1957" {
		t.Fatalf("Year = %v", movie.Year)
	}
	wantReleased := time.Date(1959, time.July, 22, 0, 0, 0, 0, time.UTC)
	if movie.Released == nil || !movie.Released.Equal(wantReleased) {
		t.Fatalf("Released = %v, want %v", movie.Released, wantReleased)
	}
	if movie.Metascore == nil || *movie.Metascore != 54 {
		t.Fatalf("Metascore = %v", movie.Metascore)
	}
	if movie.IMDBRating == nil || *movie.IMDBRating != 3.9 {
		t.Fatalf("IMDBRating = %v", movie.IMDBRating)
	}
	if movie.IMDBVotes == nil || *movie.IMDBVotes != 36246 {
		t.Fatalf("IMDBVotes = %v", movie.IMDBVotes)
	}
	if movie.BoxOffice == nil || *movie.BoxOffice != 2113869 {
		t.Fatalf("BoxOffice = %v", movie.BoxOffice)
	}
	wantDVD := time.Date(2000, time.October, 5, 0, 0, 0, 0, time.UTC)
	if movie.DVD == nil || !movie.DVD.Equal(wantDVD) {
		t.Fatalf("DVD = %v, want %v", movie.DVD, wantDVD)
	}
	if movie.ItemType == nil || *movie.ItemType != "movie" {
		t.Fatalf("ItemType = %v", movie.ItemType)
	}
}

func TestMovieFromRecordAbsentFieldsStayNil(t *testing.T) {
	movie := movieFromRecord(&omdb.Record{Title: str("Nukie")})

	if movie.Year != nil || movie.Rated != nil || movie.Plot != nil {
		t.Fatal("absent string fields must stay nil, not become empty strings")
	}
	if movie.Released != nil || movie.DVD != nil {
		t.Fatal("absent date fields must stay nil")
	}
	if movie.Metascore != nil || movie.IMDBRating != nil || movie.IMDBVotes != nil || movie.BoxOffice != nil {
		t.Fatal("absent numeric fields must stay nil")
	}
}

func TestMovieFromRecordBadDateSwallowed(t *testing.T) {
	rec := fullRecord()
	rec.Released = str("sometime in 1959")
	rec.DVD = str("01 Foo 2000")

	movie := movieFromRecord(rec)
	if movie.Released != nil {
		t.Fatalf("Released = %v, want nil for unparsable date", movie.Released)
	}
	if movie.DVD != nil {
		t.Fatalf("DVD = %v, want nil for unparsable date", movie.DVD)
	}
	// The rest of the record is unaffected.
	if movie.Metascore == nil {
		t.Fatal("Metascore should survive a bad date elsewhere")
	}
}

func TestMovieFromRecordNumericCoercion(t *testing.T) {
	rec := fullRecord()
	rec.Metascore = str("fresh")
	rec.IMDBRating = str("great")

	movie := movieFromRecord(rec)
	if movie.Metascore != nil {
		t.Fatalf("Metascore = %v, want nil for non-numeric value", movie.Metascore)
	}
	if movie.IMDBRating != nil {
		t.Fatalf("IMDBRating = %v, want nil for non-numeric value", movie.IMDBRating)
	}
}

func TestRatingFromEntryVerbatim(t *testing.T) {
	rating := ratingFromEntry(7, omdb.RatingEntry{Source: "Rotten Tomatoes", Value: "66%"})
	if rating.MovieID != 7 || rating.Source != "Rotten Tomatoes" || rating.Value != "66%" {
		t.Fatalf("rating = %+v", rating)
	}
}
