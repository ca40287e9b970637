package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/moviesdb/moviesdb/internal/domain"
	"github.com/moviesdb/moviesdb/internal/repository"
)

// Comments creates and lists movie comments.
type Comments struct {
	movies   MovieStore
	comments CommentStore
}

// NewComments wires the comment service.
func NewComments(movies MovieStore, comments CommentStore) *Comments {
	return &Comments{movies: movies, comments: comments}
}

// Create persists a comment for a movie, stamped with the current time.
func (s *Comments) Create(ctx context.Context, movieID int64, body string) (domain.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return domain.Comment{}, ErrInvalidComment
	}
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Comment{}, ErrMovieNotFound
		}
		return domain.Comment{}, fmt.Errorf("resolve movie: %w", err)
	}
	return s.comments.Insert(ctx, movieID, body)
}

// List returns comments, optionally filtered by movie. An unfiltered
// listing of an empty store yields an empty slice; a filtered listing with
// no matches yields ErrNoComments.
func (s *Comments) List(ctx context.Context, movieID *int64) ([]domain.Comment, error) {
	if movieID == nil {
		return s.comments.List(ctx)
	}
	comments, err := s.comments.ListByMovie(ctx, *movieID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrNoComments
	}
	return comments, nil
}
