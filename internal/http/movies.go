package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/moviesdb/moviesdb/internal/catalog"
	"github.com/moviesdb/moviesdb/internal/domain"
)

type movieResponse struct {
	Title      string           `json:"title"`
	Year       *string          `json:"year,omitempty"`
	Rated      *string          `json:"rated,omitempty"`
	Released   *string          `json:"released,omitempty"`
	Runtime    *string          `json:"runtime,omitempty"`
	Genre      *string          `json:"genre,omitempty"`
	Director   *string          `json:"director,omitempty"`
	Writer     *string          `json:"writer,omitempty"`
	Actors     *string          `json:"actors,omitempty"`
	Plot       *string          `json:"plot,omitempty"`
	Language   *string          `json:"language,omitempty"`
	Country    *string          `json:"country,omitempty"`
	Awards     *string          `json:"awards,omitempty"`
	Poster     *string          `json:"poster,omitempty"`
	Metascore  *int             `json:"metascore,omitempty"`
	IMDBRating *float64         `json:"imdb_rating,omitempty"`
	IMDBVotes  *int             `json:"imdb_votes,omitempty"`
	IMDBID     *string          `json:"imdb_id,omitempty"`
	ItemType   *string          `json:"item_type,omitempty"`
	DVD        *string          `json:"dvd,omitempty"`
	BoxOffice  *int64           `json:"box_office,omitempty"`
	Production *string          `json:"production,omitempty"`
	Website    *string          `json:"website,omitempty"`
	MovieID    int64            `json:"movie_id"`
	Ratings    []ratingResponse `json:"ratings,omitempty"`
}

type ratingResponse struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := s.repo.Movies.List(r.Context())
	if err != nil {
		s.logger.Printf("list movies error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to list movies.")
		return
	}

	items := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		ratings, err := s.repo.Ratings.ListByMovie(r.Context(), movie.ID)
		if err != nil {
			s.logger.Printf("list ratings error: %v", err)
			s.respondError(w, http.StatusInternalServerError, "Failed to list movies.")
			return
		}
		movie.Ratings = ratings
		items = append(items, toMovieResponse(movie))
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleIngestMovie(w http.ResponseWriter, r *http.Request) {
	title := r.PostFormValue("title")

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(s.cfg.OMDBTimeoutSecs)*time.Second)
	defer cancel()

	movie, err := s.ingestor.Ingest(ctx, title)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingTitle):
			s.respondError(w, http.StatusBadRequest, "The title of the movie was not provided.")
		case errors.Is(err, catalog.ErrProviderUnreachable):
			s.respondError(w, http.StatusBadRequest, "Could not connect to OMDB API.")
		case errors.Is(err, catalog.ErrTitleNotFound):
			s.respondError(w, http.StatusNotFound, "The movie with this title was not found.")
		case errors.Is(err, catalog.ErrAlreadyExists):
			s.respondError(w, http.StatusConflict, "The movie with this title is in the database.")
		default:
			s.logger.Printf("ingest movie error: %v", err)
			s.respondError(w, http.StatusInternalServerError, "Failed to create movie.")
		}
		return
	}

	s.respondJSON(w, http.StatusCreated, toMovieResponse(movie))
}

func toMovieResponse(movie domain.Movie) movieResponse {
	resp := movieResponse{
		Title:      movie.Title,
		Year:       movie.Year,
		Rated:      movie.Rated,
		Released:   formatDate(movie.Released),
		Runtime:    movie.Runtime,
		Genre:      movie.Genre,
		Director:   movie.Director,
		Writer:     movie.Writer,
		Actors:     movie.Actors,
		Plot:       movie.Plot,
		Language:   movie.Language,
		Country:    movie.Country,
		Awards:     movie.Awards,
		Poster:     movie.Poster,
		Metascore:  movie.Metascore,
		IMDBRating: movie.IMDBRating,
		IMDBVotes:  movie.IMDBVotes,
		IMDBID:     movie.IMDBID,
		ItemType:   movie.ItemType,
		DVD:        formatDate(movie.DVD),
		BoxOffice:  movie.BoxOffice,
		Production: movie.Production,
		Website:    movie.Website,
		MovieID:    movie.ID,
	}
	for _, rating := range movie.Ratings {
		resp.Ratings = append(resp.Ratings, ratingResponse{Source: rating.Source, Value: rating.Value})
	}
	return resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}
