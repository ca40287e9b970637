package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moviesdb/moviesdb/internal/domain"
)

// CommentsRepository provides persistence helpers for comments.
type CommentsRepository struct {
	pool *pgxpool.Pool
}

const commentColumns = `id, movie_id, comment_body, added`

// Insert stores a comment stamped with the database clock.
func (r *CommentsRepository) Insert(ctx context.Context, movieID int64, body string) (domain.Comment, error) {
	const query = `
        INSERT INTO comments (movie_id, comment_body)
        VALUES ($1,$2)
        RETURNING ` + commentColumns
	return scanComment(r.pool.QueryRow(ctx, query, movieID, body))
}

// List returns every comment ordered by id.
func (r *CommentsRepository) List(ctx context.Context) ([]domain.Comment, error) {
	const query = `SELECT ` + commentColumns + ` FROM comments ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComments(rows)
}

// ListByMovie returns all comments for one movie ordered by id.
func (r *CommentsRepository) ListByMovie(ctx context.Context, movieID int64) ([]domain.Comment, error) {
	const query = `SELECT ` + commentColumns + ` FROM comments WHERE movie_id = $1 ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComments(rows)
}

// MovieCommentCount pairs a movie with its comment count inside a window.
type MovieCommentCount struct {
	MovieID       int64
	TotalComments int64
}

// CountByMovieBetween counts comments per movie with added in [start, end).
// Every movie appears in the result, including those with zero matching
// comments. Ordering is count descending, then movie id ascending, which is
// the deterministic tie-break the ranking engine relies on.
func (r *CommentsRepository) CountByMovieBetween(ctx context.Context, start, end time.Time) ([]MovieCommentCount, error) {
	const query = `
        SELECT m.id, COUNT(c.id) AS total_comments
        FROM movies m
        LEFT JOIN comments c
            ON c.movie_id = m.id AND c.added >= $1 AND c.added < $2
        GROUP BY m.id
        ORDER BY total_comments DESC, m.id ASC
    `
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]MovieCommentCount, 0)
	for rows.Next() {
		var c MovieCommentCount
		if err := rows.Scan(&c.MovieID, &c.TotalComments); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	var comment domain.Comment
	err := row.Scan(&comment.ID, &comment.MovieID, &comment.Body, &comment.Added)
	if err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func collectComments(rows pgx.Rows) ([]domain.Comment, error) {
	comments := make([]domain.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}
