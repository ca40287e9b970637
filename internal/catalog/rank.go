package catalog

import (
	"context"
	"time"

	"github.com/moviesdb/moviesdb/internal/repository"
)

// MovieRank is one row of the ranking: a movie, its comment count inside
// the window, and its dense competition rank.
type MovieRank struct {
	MovieID       int64
	TotalComments int64
	Rank          int
}

// Ranker orders movies by comment volume inside a date window.
type Ranker struct {
	comments CommentStore
}

// NewRanker wires the ranking engine.
func NewRanker(comments CommentStore) *Ranker {
	return &Ranker{comments: comments}
}

// Rank counts comments per movie with timestamps in [start, end + 1 day),
// making end inclusive at day granularity, and assigns dense competition
// ranks: tied counts share a rank and the next distinct count increments it
// by one. Every movie appears, including those with zero comments. Ties are
// broken by ascending movie id.
func (r *Ranker) Rank(ctx context.Context, start, end time.Time) ([]MovieRank, error) {
	counts, err := r.comments.CountByMovieBetween(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return assignRanks(counts), nil
}

// assignRanks expects counts sorted by TotalComments descending.
func assignRanks(counts []repository.MovieCommentCount) []MovieRank {
	ranked := make([]MovieRank, 0, len(counts))
	rank := 0
	var prev int64
	for _, c := range counts {
		if rank == 0 || c.TotalComments < prev {
			rank++
			prev = c.TotalComments
		}
		ranked = append(ranked, MovieRank{
			MovieID:       c.MovieID,
			TotalComments: c.TotalComments,
			Rank:          rank,
		})
	}
	return ranked
}
