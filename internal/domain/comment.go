package domain

import "time"

// Comment is a free-text user comment on a movie, immutable once created.
type Comment struct {
	ID      int64
	MovieID int64
	Body    string
	Added   time.Time
}
