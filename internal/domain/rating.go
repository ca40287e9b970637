package domain

// Rating is a single provider rating attached to a movie. Source and Value
// are opaque provider strings ("Rotten Tomatoes" / "91%") and are never
// numerically interpreted.
type Rating struct {
	ID      int64
	MovieID int64
	Source  string
	Value   string
}
