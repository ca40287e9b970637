package catalog

import (
	"context"
	"time"

	"github.com/moviesdb/moviesdb/internal/domain"
	"github.com/moviesdb/moviesdb/internal/omdb"
	"github.com/moviesdb/moviesdb/internal/repository"
)

// In-memory fakes for the store interfaces, shared by the workflow tests.

type fakeMovieStore struct {
	nextID int64
	movies map[int64]domain.Movie
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{nextID: 1, movies: map[int64]domain.Movie{}}
}

func (f *fakeMovieStore) Create(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	movie.ID = f.nextID
	f.nextID++
	f.movies[movie.ID] = movie
	return movie, nil
}

func (f *fakeMovieStore) GetByID(ctx context.Context, id int64) (domain.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return domain.Movie{}, repository.ErrNotFound
	}
	return movie, nil
}

func (f *fakeMovieStore) GetByTitle(ctx context.Context, title string) (domain.Movie, error) {
	for _, movie := range f.movies {
		if movie.Title == title {
			return movie, nil
		}
	}
	return domain.Movie{}, repository.ErrNotFound
}

type fakeRatingStore struct {
	nextID  int64
	ratings []domain.Rating
	failOn  string // source name that triggers an insert failure
}

func (f *fakeRatingStore) Insert(ctx context.Context, rating domain.Rating) (domain.Rating, error) {
	if f.failOn != "" && rating.Source == f.failOn {
		return domain.Rating{}, context.DeadlineExceeded
	}
	f.nextID++
	rating.ID = f.nextID
	f.ratings = append(f.ratings, rating)
	return rating, nil
}

type fakeCommentStore struct {
	nextID   int64
	comments []domain.Comment
	counts   []repository.MovieCommentCount
	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeCommentStore) Insert(ctx context.Context, movieID int64, body string) (domain.Comment, error) {
	f.nextID++
	comment := domain.Comment{ID: f.nextID, MovieID: movieID, Body: body, Added: time.Now().UTC()}
	f.comments = append(f.comments, comment)
	return comment, nil
}

func (f *fakeCommentStore) List(ctx context.Context) ([]domain.Comment, error) {
	out := make([]domain.Comment, len(f.comments))
	copy(out, f.comments)
	return out, nil
}

func (f *fakeCommentStore) ListByMovie(ctx context.Context, movieID int64) ([]domain.Comment, error) {
	out := make([]domain.Comment, 0)
	for _, c := range f.comments {
		if c.MovieID == movieID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) CountByMovieBetween(ctx context.Context, start, end time.Time) ([]repository.MovieCommentCount, error) {
	f.gotStart = start
	f.gotEnd = end
	return f.counts, nil
}

type fakeProvider struct {
	record *omdb.Record
	err    error
}

func (f fakeProvider) Lookup(ctx context.Context, title string) (*omdb.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}
