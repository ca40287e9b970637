package httpserver

import (
	"net/http"

	"github.com/moviesdb/moviesdb/internal/dates"
)

type movieRankResponse struct {
	MovieID       int64 `json:"movie_id"`
	TotalComments int64 `json:"total_comments"`
	Rank          int   `json:"rank"`
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	rawStart := query.Get("date_start")
	rawEnd := query.Get("date_end")
	if rawStart == "" || rawEnd == "" {
		s.respondError(w, http.StatusBadRequest, "The date_start and date_end parameters must be provided.")
		return
	}

	const formatMsg = "The date_start and date_end parameters should be in ISO format (yyyy-mm-dd, ie. 2019-12-31)."
	start, err := dates.ParseISODate(rawStart)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, formatMsg)
		return
	}
	end, err := dates.ParseISODate(rawEnd)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, formatMsg)
		return
	}

	ranked, err := s.ranker.Rank(r.Context(), start, end)
	if err != nil {
		s.logger.Printf("rank movies error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to rank movies.")
		return
	}

	items := make([]movieRankResponse, 0, len(ranked))
	for _, row := range ranked {
		items = append(items, movieRankResponse{
			MovieID:       row.MovieID,
			TotalComments: row.TotalComments,
			Rank:          row.Rank,
		})
	}
	s.respondJSON(w, http.StatusOK, items)
}
