package catalog

import "errors"

// Typed failures of the catalog operations. Handlers map these onto HTTP
// statuses and keep the messages user-facing.
var (
	// ErrMissingTitle rejects an ingestion request without a title.
	ErrMissingTitle = errors.New("catalog: title not provided")

	// ErrProviderUnreachable wraps any transport-level failure talking to
	// the metadata provider.
	ErrProviderUnreachable = errors.New("catalog: metadata provider unreachable")

	// ErrTitleNotFound means the provider does not know the title.
	ErrTitleNotFound = errors.New("catalog: title not found at provider")

	// ErrAlreadyExists means a movie with this title is already stored.
	// The existing record is neither returned nor modified.
	ErrAlreadyExists = errors.New("catalog: movie already exists")

	// ErrInvalidComment rejects comment creation with missing fields.
	ErrInvalidComment = errors.New("catalog: movie_id and comment_body are required")

	// ErrMovieNotFound means a comment referenced a movie id that does not
	// resolve to a stored movie.
	ErrMovieNotFound = errors.New("catalog: movie not found")

	// ErrNoComments means a movie-filtered comment listing matched nothing.
	// An unfiltered listing of an empty store is not an error.
	ErrNoComments = errors.New("catalog: no comments for movie")
)
