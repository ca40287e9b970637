package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/moviesdb/moviesdb/internal/catalog"
	"github.com/moviesdb/moviesdb/internal/domain"
)

type commentResponse struct {
	Movie       int64     `json:"movie"`
	CommentBody string    `json:"comment_body"`
	Added       time.Time `json:"added"`
	CommentID   int64     `json:"comment_id"`
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	var movieID *int64
	if raw := r.URL.Query().Get("movie_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "The movie_id parameter must be an integer.")
			return
		}
		movieID = &parsed
	}

	comments, err := s.comments.List(r.Context(), movieID)
	if err != nil {
		if errors.Is(err, catalog.ErrNoComments) {
			s.respondError(w, http.StatusNotFound, "No comments for movie with this id were found.")
			return
		}
		s.logger.Printf("list comments error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to list comments.")
		return
	}

	items := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		items = append(items, toCommentResponse(c))
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	rawMovieID := r.PostFormValue("movie_id")
	body := r.PostFormValue("comment_body")
	if rawMovieID == "" || body == "" {
		s.respondError(w, http.StatusBadRequest, "The request should contain the movie_id and comment_body.")
		return
	}
	movieID, err := strconv.ParseInt(rawMovieID, 10, 64)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "The request should contain the movie_id and comment_body.")
		return
	}

	comment, err := s.comments.Create(r.Context(), movieID, body)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidComment):
			s.respondError(w, http.StatusBadRequest, "The request should contain the movie_id and comment_body.")
		case errors.Is(err, catalog.ErrMovieNotFound):
			s.respondError(w, http.StatusBadRequest, "The movie with this movie_id was not found.")
		default:
			s.logger.Printf("create comment error: %v", err)
			s.respondError(w, http.StatusInternalServerError, "Failed to create comment.")
		}
		return
	}

	s.respondJSON(w, http.StatusCreated, toCommentResponse(comment))
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		Movie:       c.MovieID,
		CommentBody: c.Body,
		Added:       c.Added,
		CommentID:   c.ID,
	}
}
