package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moviesdb/moviesdb/internal/domain"
)

// RatingsRepository provides persistence helpers for provider ratings.
type RatingsRepository struct {
	pool *pgxpool.Pool
}

// Insert stores one rating row for a movie.
func (r *RatingsRepository) Insert(ctx context.Context, rating domain.Rating) (domain.Rating, error) {
	const query = `
        INSERT INTO ratings (movie_id, source, value)
        VALUES ($1,$2,$3)
        RETURNING id, movie_id, source, value
    `
	var stored domain.Rating
	err := r.pool.QueryRow(ctx, query, rating.MovieID, rating.Source, rating.Value).Scan(
		&stored.ID,
		&stored.MovieID,
		&stored.Source,
		&stored.Value,
	)
	if err != nil {
		return domain.Rating{}, err
	}
	return stored, nil
}

// ListByMovie returns a movie's ratings in insertion order.
func (r *RatingsRepository) ListByMovie(ctx context.Context, movieID int64) ([]domain.Rating, error) {
	const query = `
        SELECT id, movie_id, source, value
        FROM ratings
        WHERE movie_id = $1
        ORDER BY id ASC
    `
	rows, err := r.pool.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]domain.Rating, 0)
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(&rating.ID, &rating.MovieID, &rating.Source, &rating.Value); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}
