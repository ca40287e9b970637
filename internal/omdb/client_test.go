package omdb

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleBody = `{
	"Title": "Plan 9 from Outer Space",
	"Year": "1957",
	"Rated": "N/A",
	"Released": "22 Jul 1959",
	"Runtime": "79 min",
	"Genre": "Horror, Sci-Fi",
	"Director": "Edward D. Wood Jr.",
	"Metascore": "N/A",
	"imdbRating": "3.9",
	"imdbVotes": "36,246",
	"imdbID": "tt0052077",
	"Type": "movie",
	"DVD": "N/A",
	"BoxOffice": "N/A",
	"Ratings": [
		{"Source": "Internet Movie Database", "Value": "3.9/10"},
		{"Source": "Rotten Tomatoes", "Value": "66%"}
	],
	"Response": "True"
}`

func testClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewHTTPClient(srv.URL, "testkey", 2*time.Second, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	return client
}

func TestLookupStripsSentinel(t *testing.T) {
	var gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	})

	rec, err := client.Lookup(context.Background(), "Plan 9 from Outer Space")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if rec.Title == nil || *rec.Title != "Plan 9 from Outer Space" {
		t.Fatalf("Title = %v", rec.Title)
	}
	if rec.Rated != nil {
		t.Fatalf("Rated should be nil for sentinel, got %q", *rec.Rated)
	}
	if rec.Metascore != nil || rec.DVD != nil || rec.BoxOffice != nil {
		t.Fatal("sentinel fields should be nil")
	}
	if rec.Plot != nil {
		t.Fatalf("absent key should be nil, got %q", *rec.Plot)
	}
	if rec.IMDBVotes == nil || *rec.IMDBVotes != "36,246" {
		t.Fatalf("IMDBVotes = %v", rec.IMDBVotes)
	}
	if len(rec.Ratings) != 2 || rec.Ratings[1].Source != "Rotten Tomatoes" {
		t.Fatalf("Ratings = %+v", rec.Ratings)
	}

	req, _ := http.NewRequest(http.MethodGet, "/?"+gotQuery, nil)
	q := req.URL.Query()
	if q.Get("t") != "Plan 9 from Outer Space" || q.Get("apikey") != "testkey" || q.Get("r") != "json" {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
}

func TestLookupNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	})

	_, err := client.Lookup(context.Background(), "Horsenado")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLookupUpstreamFailure(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := client.Lookup(context.Background(), "Matango"); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestLookupConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := NewHTTPClient(srv.URL, "testkey", time.Second, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	if _, err := client.Lookup(context.Background(), "Nukie"); err == nil {
		t.Fatal("expected transport error")
	}
}
