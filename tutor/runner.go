package tutor

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyQuery reports an empty or whitespace-only submission. It is a
// warning condition rather than an execution failure: nothing was run.
var ErrEmptyQuery = errors.New("empty query")

// QueryError wraps the engine's diagnostic for a query that failed against
// the session store.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Run executes a free-text query against the store and returns the result
// as a snapshot with de-duplicated column names.
//
// The error is either ErrEmptyQuery or a *QueryError; both are recoverable
// conditions that callers turn into banners, never panics.
func Run(ctx context.Context, store *Store, query string) (*Snapshot, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	rows, err := store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	defer rows.Close()

	snap, err := ReadSnapshot(rows)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	return snap, nil
}
