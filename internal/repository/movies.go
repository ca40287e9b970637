package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moviesdb/moviesdb/internal/domain"
)

// MoviesRepository provides persistence helpers for movie entities.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

const movieColumns = `
    id,
    title,
    year,
    rated,
    released,
    runtime,
    genre,
    director,
    writer,
    actors,
    plot,
    language,
    country,
    awards,
    poster,
    metascore,
    imdb_rating,
    imdb_votes,
    imdb_id,
    item_type,
    dvd,
    box_office,
    production,
    website
`

// Create inserts a new movie row and returns the stored entity with its
// assigned id. Ratings on the input are ignored; they are inserted
// separately against the returned id.
func (r *MoviesRepository) Create(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	query := fmt.Sprintf(`
        INSERT INTO movies (
            title, year, rated, released, runtime, genre, director, writer,
            actors, plot, language, country, awards, poster, metascore,
            imdb_rating, imdb_votes, imdb_id, item_type, dvd, box_office,
            production, website
        )
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
        RETURNING %s
    `, movieColumns)

	row := r.pool.QueryRow(ctx, query,
		movie.Title, movie.Year, movie.Rated, movie.Released, movie.Runtime,
		movie.Genre, movie.Director, movie.Writer, movie.Actors, movie.Plot,
		movie.Language, movie.Country, movie.Awards, movie.Poster,
		movie.Metascore, movie.IMDBRating, movie.IMDBVotes, movie.IMDBID,
		movie.ItemType, movie.DVD, movie.BoxOffice, movie.Production,
		movie.Website,
	)
	return scanMovie(row)
}

// GetByID fetches a movie by its identifier.
func (r *MoviesRepository) GetByID(ctx context.Context, id int64) (domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE id = $1`, movieColumns)
	movie, err := scanMovie(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Movie{}, ErrNotFound
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

// GetByTitle fetches a movie by exact title match. With duplicate titles the
// oldest row wins; the ingestion workflow only cares about existence.
func (r *MoviesRepository) GetByTitle(ctx context.Context, title string) (domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE title = $1 ORDER BY id ASC LIMIT 1`, movieColumns)
	movie, err := scanMovie(r.pool.QueryRow(ctx, query, title))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Movie{}, ErrNotFound
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

// List returns all movies ordered by id.
func (r *MoviesRepository) List(ctx context.Context) ([]domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies ORDER BY id ASC`, movieColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

// Delete removes a movie; dependent ratings and comments cascade.
func (r *MoviesRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.Rated,
		&movie.Released,
		&movie.Runtime,
		&movie.Genre,
		&movie.Director,
		&movie.Writer,
		&movie.Actors,
		&movie.Plot,
		&movie.Language,
		&movie.Country,
		&movie.Awards,
		&movie.Poster,
		&movie.Metascore,
		&movie.IMDBRating,
		&movie.IMDBVotes,
		&movie.IMDBID,
		&movie.ItemType,
		&movie.DVD,
		&movie.BoxOffice,
		&movie.Production,
		&movie.Website,
	)
	if err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}
