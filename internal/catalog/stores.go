package catalog

import (
	"context"
	"time"

	"github.com/moviesdb/moviesdb/internal/domain"
	"github.com/moviesdb/moviesdb/internal/repository"
)

// The catalog services consume narrow store interfaces so the workflows can
// be exercised without a database. The repository types satisfy them.

// MovieStore is the movie persistence surface the catalog needs.
type MovieStore interface {
	Create(ctx context.Context, movie domain.Movie) (domain.Movie, error)
	GetByID(ctx context.Context, id int64) (domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (domain.Movie, error)
}

// RatingStore is the rating persistence surface the catalog needs.
type RatingStore interface {
	Insert(ctx context.Context, rating domain.Rating) (domain.Rating, error)
}

// CommentStore is the comment persistence surface the catalog needs.
type CommentStore interface {
	Insert(ctx context.Context, movieID int64, body string) (domain.Comment, error)
	List(ctx context.Context) ([]domain.Comment, error)
	ListByMovie(ctx context.Context, movieID int64) ([]domain.Comment, error)
	CountByMovieBetween(ctx context.Context, start, end time.Time) ([]repository.MovieCommentCount, error)
}
