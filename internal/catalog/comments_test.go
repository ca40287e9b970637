package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/moviesdb/moviesdb/internal/domain"
)

func TestCommentsCreate(t *testing.T) {
	movies := newFakeMovieStore()
	movie, _ := movies.Create(context.Background(), domain.Movie{Title: "Matango"})
	svc := NewComments(movies, &fakeCommentStore{})

	comment, err := svc.Create(context.Background(), movie.ID, "The best movie I've ever seen")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if comment.ID == 0 || comment.MovieID != movie.ID {
		t.Fatalf("comment = %+v", comment)
	}
	if comment.Added.IsZero() {
		t.Fatal("comment should carry a creation timestamp")
	}
}

func TestCommentsCreateUnknownMovie(t *testing.T) {
	svc := NewComments(newFakeMovieStore(), &fakeCommentStore{})

	_, err := svc.Create(context.Background(), 999, "x")
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("err = %v, want ErrMovieNotFound", err)
	}
}

func TestCommentsCreateEmptyBody(t *testing.T) {
	movies := newFakeMovieStore()
	movie, _ := movies.Create(context.Background(), domain.Movie{Title: "Matango"})
	svc := NewComments(movies, &fakeCommentStore{})

	_, err := svc.Create(context.Background(), movie.ID, "  ")
	if !errors.Is(err, ErrInvalidComment) {
		t.Fatalf("err = %v, want ErrInvalidComment", err)
	}
}

func TestCommentsListAsymmetry(t *testing.T) {
	movies := newFakeMovieStore()
	movie, _ := movies.Create(context.Background(), domain.Movie{Title: "Matango"})
	store := &fakeCommentStore{}
	svc := NewComments(movies, store)

	// Unfiltered listing of an empty store is an empty slice, not an error.
	all, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("unfiltered List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("len = %d, want 0", len(all))
	}

	// Filtered listing with no matches is a distinct not-found condition,
	// even though the movie exists.
	if _, err := svc.List(context.Background(), &movie.ID); !errors.Is(err, ErrNoComments) {
		t.Fatalf("filtered List err = %v, want ErrNoComments", err)
	}

	if _, err := svc.Create(context.Background(), movie.ID, "great"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	filtered, err := svc.List(context.Background(), &movie.ID)
	if err != nil {
		t.Fatalf("filtered List after create: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("len = %d, want 1", len(filtered))
	}
}
