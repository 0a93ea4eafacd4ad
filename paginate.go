package rampaged

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// PageResult carries the outcome of an asynchronous paging call.
type PageResult[T any] struct {
	Page *Page[T]
	Err  error
}

// ToPage counts the query, then fetches the window selected by pageable.
// A nil query yields an empty page with TotalCount 0.
func ToPage[T any](ctx context.Context, query Query[T], pageable Pageable) (*Page[T], error) {
	return CreatePage(ctx, query, pageable.GetPageNumber(), pageable.GetPageSize())
}

// CreatePage is ToPage with an explicit page number and size. Both are
// normalized the same way PageRequest normalizes them.
func CreatePage[T any](ctx context.Context, query Query[T], pageNumber, pageSize int) (*Page[T], error) {
	req := NewPageRequest(pageNumber, pageSize, "")
	if query == nil {
		return NewPageFor[T](nil, 0, req), nil
	}

	count, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot count page source: %w", err)
	}

	items, err := Paged(ctx, query, req)
	if err != nil {
		return nil, err
	}

	return NewPageFor(items, count, req), nil
}

// ToPageAsync is the non-blocking variant of ToPage. Count and window are
// fetched concurrently; the returned channel yields exactly one result and
// is then closed. The query must tolerate concurrent reads.
func ToPageAsync[T any](ctx context.Context, query Query[T], pageable Pageable) <-chan PageResult[T] {
	return CreatePageAsync(ctx, query, pageable.GetPageNumber(), pageable.GetPageSize())
}

// CreatePageAsync is the non-blocking variant of CreatePage.
func CreatePageAsync[T any](ctx context.Context, query Query[T], pageNumber, pageSize int) <-chan PageResult[T] {
	out := make(chan PageResult[T], 1)

	go func() {
		defer close(out)

		req := NewPageRequest(pageNumber, pageSize, "")
		if query == nil {
			out <- PageResult[T]{Page: NewPageFor[T](nil, 0, req)}
			return
		}

		var (
			count int64
			items []T
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			count, err = query.Count(gctx)
			if err != nil {
				return fmt.Errorf("cannot count page source: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			items, err = Paged(gctx, query, req)
			return err
		})

		if err := g.Wait(); err != nil {
			out <- PageResult[T]{Err: err}
			return
		}

		out <- PageResult[T]{Page: NewPageFor(items, count, req)}
	}()

	return out
}

// MapPage projects the items of a page, keeping its metadata.
func MapPage[S, D any](page *Page[S], mapper Mapper[S, D], opts ...MappingOption) (*Page[D], error) {
	if page == nil {
		return nil, nil
	}

	mOpts := newMappingOptions(opts...)
	items := make([]D, 0, len(page.Items))
	for i, item := range page.Items {
		mapped, err := mapper.Map(item, mOpts)
		if err != nil {
			return nil, fmt.Errorf("cannot map page item %d: %w", i, err)
		}
		items = append(items, mapped)
	}

	return &Page[D]{
		Items:    items,
		PageInfo: page.PageInfo,
	}, nil
}

// ToMappedPage is ToPage followed by MapPage.
func ToMappedPage[S, D any](
	ctx context.Context,
	query Query[S],
	pageable Pageable,
	mapper Mapper[S, D],
	opts ...MappingOption,
) (*Page[D], error) {
	page, err := ToPage(ctx, query, pageable)
	if err != nil {
		return nil, err
	}

	return MapPage(page, mapper, opts...)
}

// ToMappedPageAsync is the non-blocking variant of ToMappedPage.
func ToMappedPageAsync[S, D any](
	ctx context.Context,
	query Query[S],
	pageable Pageable,
	mapper Mapper[S, D],
	opts ...MappingOption,
) <-chan PageResult[D] {
	out := make(chan PageResult[D], 1)

	go func() {
		defer close(out)

		res := <-ToPageAsync(ctx, query, pageable)
		if res.Err != nil {
			out <- PageResult[D]{Err: res.Err}
			return
		}

		mapped, err := MapPage(res.Page, mapper, opts...)
		out <- PageResult[D]{Page: mapped, Err: err}
	}()

	return out
}

// Items returns the page items, or an empty slice for a nil page.
func Items[T any](page *Page[T]) []T {
	return lo.TernaryF(page == nil, func() []T { return []T{} }, func() []T { return page.Items })
}
