// Package rampaged provides page-number pagination and sort-string ordering
// helpers for query-backed web APIs.
//
// # Overview
//
// rampaged slices a query source into numbered pages and shapes the ordering
// clause from a user supplied sort string:
//   - PageRequest: page number, page size (clamped to MaxPageSize) and sort
//     string, usually embedded into the API request struct.
//   - Resolver: turns "-name,customer" into Orderings, substituting aliased
//     fields declared on a Descriptor.
//   - Query: the source collaborator. GORMQuery wraps *gorm.DB, SliceQuery
//     wraps an in-memory slice.
//   - Page: the resulting items plus PageInfo (totals and current page).
//   - Linker: renders previous/next links and the X-Pagination header.
//
// Framework adapters live in the ginpaged and fiberpaged subpackages.
package rampaged
