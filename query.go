package rampaged

import (
	"context"
	"fmt"
)

// Query is the data source collaborator. Count and Window must observe the
// same filters; rampaged never mutates the source between the two calls.
type Query[T any] interface {
	// Count returns the number of elements in the whole source.
	Count(ctx context.Context) (int64, error)
	// Window returns the elements in [skip, skip+take).
	Window(ctx context.Context, skip, take int) ([]T, error)
	// OrderBy returns a query ordered by the given orderings. It fails with
	// *UnknownFieldError (or another error) when a field path cannot be
	// resolved against the real entity shape.
	OrderBy(orderings Orderings) (Query[T], error)
}

// Paged returns the window selected by pageable.
func Paged[T any](ctx context.Context, query Query[T], pageable Pageable) ([]T, error) {
	return Window(ctx, query, pageable.SkipCount(), pageable.GetPageSize())
}

// Window returns the [skipCount, skipCount+pageSize) elements of the query.
// A nil query yields an empty window.
func Window[T any](ctx context.Context, query Query[T], skipCount, pageSize int) ([]T, error) {
	if query == nil {
		return []T{}, nil
	}

	items, err := query.Window(ctx, max(skipCount, 0), pageSize)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch page window: %w", err)
	}

	return items, nil
}
