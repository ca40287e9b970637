package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/moviesdb/moviesdb/internal/domain"
	"github.com/moviesdb/moviesdb/internal/omdb"
	"github.com/moviesdb/moviesdb/internal/repository"
)

// Ingestor creates movie records from the metadata provider: fetch by title,
// deduplicate against the store, normalize, persist the movie and its
// ratings.
type Ingestor struct {
	provider omdb.Client
	movies   MovieStore
	ratings  RatingStore
	logger   *log.Logger
}

// NewIngestor wires an ingestion workflow.
func NewIngestor(provider omdb.Client, movies MovieStore, ratings RatingStore, logger *log.Logger) *Ingestor {
	if logger == nil {
		logger = log.Default()
	}
	return &Ingestor{provider: provider, movies: movies, ratings: ratings, logger: logger}
}

// Ingest fetches, normalizes, and persists a movie together with the
// provider's ratings list. Duplicate detection runs against the provider's
// canonical title, not the caller's spelling.
//
// The movie and rating inserts are not transactional: a failure partway
// through the ratings list leaves the movie and the ratings inserted so far
// in place. The duplicate check and the insert are likewise not atomic, so
// two concurrent ingestions of the same new title can both get through.
func (i *Ingestor) Ingest(ctx context.Context, title string) (domain.Movie, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Movie{}, ErrMissingTitle
	}

	rec, err := i.provider.Lookup(ctx, title)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return domain.Movie{}, ErrTitleNotFound
		}
		return domain.Movie{}, fmt.Errorf("%w: %s", ErrProviderUnreachable, err)
	}

	canonical := ""
	if rec.Title != nil {
		canonical = *rec.Title
	}
	_, err = i.movies.GetByTitle(ctx, canonical)
	switch {
	case err == nil:
		return domain.Movie{}, ErrAlreadyExists
	case !errors.Is(err, repository.ErrNotFound):
		return domain.Movie{}, fmt.Errorf("check existing title: %w", err)
	}

	movie, err := i.movies.Create(ctx, movieFromRecord(rec))
	if err != nil {
		return domain.Movie{}, fmt.Errorf("insert movie: %w", err)
	}

	for _, entry := range rec.Ratings {
		rating, err := i.ratings.Insert(ctx, ratingFromEntry(movie.ID, entry))
		if err != nil {
			return domain.Movie{}, fmt.Errorf("insert rating %q: %w", entry.Source, err)
		}
		movie.Ratings = append(movie.Ratings, rating)
	}

	i.logger.Printf("catalog: ingested %q (id=%d, ratings=%d)", movie.Title, movie.ID, len(movie.Ratings))
	return movie, nil
}
