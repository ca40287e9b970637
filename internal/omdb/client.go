// Package omdb talks to the external movie-metadata provider. The provider's
// "N/A" sentinel for unavailable fields is converted to nil pointers at the
// decode boundary so the rest of the service never sees the magic string.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the provider does not know the title.
var ErrNotFound = errors.New("omdb: title not found")

// notAvailable marks fields the provider has no data for.
const notAvailable = "N/A"

// RatingEntry is one entry of the provider's ratings list, passed through
// verbatim.
type RatingEntry struct {
	Source string
	Value  string
}

// Record is a provider response with the sentinel already stripped: a nil
// field means the provider had no value, whether the key was absent or
// carried the sentinel.
type Record struct {
	Title      *string
	Year       *string
	Rated      *string
	Released   *string
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
	Metascore  *string
	IMDBRating *string
	IMDBVotes  *string
	IMDBID     *string
	Type       *string
	DVD        *string
	BoxOffice  *string
	Production *string
	Website    *string
	Ratings    []RatingEntry
}

// Client defines the contract for title-keyed metadata lookups.
type Client interface {
	Lookup(ctx context.Context, title string) (*Record, error)
}

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	baseURL *url.URL
	apiKey  string
	client  *http.Client
	logger  *log.Logger
}

// NewHTTPClient constructs an HTTP-backed provider client. The API key is an
// explicit dependency here rather than ambient process state.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger *log.Logger) (*HTTPClient, error) {
	if logger == nil {
		logger = log.Default()
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse omdb url: %w", err)
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger: logger,
	}, nil
}

// Lookup fetches the provider record for a title.
func (c *HTTPClient) Lookup(ctx context.Context, title string) (*Record, error) {
	rel := &url.URL{Path: "/"}
	q := rel.Query()
	q.Set("t", title)
	q.Set("r", "json")
	q.Set("apikey", c.apiKey)
	rel.RawQuery = q.Encode()
	endpoint := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Printf("omdb: unexpected status %d for title %q", resp.StatusCode, title)
		return nil, fmt.Errorf("omdb: upstream returned %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode omdb response: %w", err)
	}
	if payload.Response != "True" {
		return nil, ErrNotFound
	}
	return convertToRecord(payload), nil
}

// apiResponse mirrors the provider wire format. Absent keys decode to "".
type apiResponse struct {
	Response   string          `json:"Response"`
	Error      string          `json:"Error"`
	Title      string          `json:"Title"`
	Year       string          `json:"Year"`
	Rated      string          `json:"Rated"`
	Released   string          `json:"Released"`
	Runtime    string          `json:"Runtime"`
	Genre      string          `json:"Genre"`
	Director   string          `json:"Director"`
	Writer     string          `json:"Writer"`
	Actors     string          `json:"Actors"`
	Plot       string          `json:"Plot"`
	Language   string          `json:"Language"`
	Country    string          `json:"Country"`
	Awards     string          `json:"Awards"`
	Poster     string          `json:"Poster"`
	Metascore  string          `json:"Metascore"`
	IMDBRating string          `json:"imdbRating"`
	IMDBVotes  string          `json:"imdbVotes"`
	IMDBID     string          `json:"imdbID"`
	Type       string          `json:"Type"`
	DVD        string          `json:"DVD"`
	BoxOffice  string          `json:"BoxOffice"`
	Production string          `json:"Production"`
	Website    string          `json:"Website"`
	Ratings    []ratingPayload `json:"Ratings"`
}

type ratingPayload struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

func convertToRecord(payload apiResponse) *Record {
	rec := &Record{
		Title:      available(payload.Title),
		Year:       available(payload.Year),
		Rated:      available(payload.Rated),
		Released:   available(payload.Released),
		Runtime:    available(payload.Runtime),
		Genre:      available(payload.Genre),
		Director:   available(payload.Director),
		Writer:     available(payload.Writer),
		Actors:     available(payload.Actors),
		Plot:       available(payload.Plot),
		Language:   available(payload.Language),
		Country:    available(payload.Country),
		Awards:     available(payload.Awards),
		Poster:     available(payload.Poster),
		Metascore:  available(payload.Metascore),
		IMDBRating: available(payload.IMDBRating),
		IMDBVotes:  available(payload.IMDBVotes),
		IMDBID:     available(payload.IMDBID),
		Type:       available(payload.Type),
		DVD:        available(payload.DVD),
		BoxOffice:  available(payload.BoxOffice),
		Production: available(payload.Production),
		Website:    available(payload.Website),
	}
	for _, r := range payload.Ratings {
		rec.Ratings = append(rec.Ratings, RatingEntry{Source: r.Source, Value: r.Value})
	}
	return rec
}

// available maps the provider sentinel and the absent-key zero value to nil.
func available(s string) *string {
	if s == "" || s == notAvailable {
		return nil
	}
	return &s
}
