package rampaged

import (
	"errors"

	"github.com/rs/zerolog"
)

// Resolver translates sort strings into Orderings, substituting aliased
// fields declared on a Descriptor. It holds no state besides its logger and
// is safe for concurrent use.
type Resolver struct {
	log zerolog.Logger
}

var _defaultResolver = NewResolver(zerolog.Nop())

func NewResolver(logger zerolog.Logger) *Resolver {
	return &Resolver{
		log: logger.With().Str("component", "resolver").Logger(),
	}
}

// Resolve parses sortString and maps every term onto a (field path,
// direction) pair:
//   - without a descriptor, field names are used verbatim;
//   - a declared field with an alias is replaced by the alias address;
//   - a declared field aliased to an empty address is dropped;
//   - anything else passes through unchanged.
//
// Resolve never fails. Unknown fields surface when the result is applied to
// a query (see ApplyOrdering).
func (r *Resolver) Resolve(sortString string, descriptor *Descriptor) Orderings {
	terms := ParseSortTerms(sortString)
	ret := make(Orderings, 0, len(terms))

	for _, term := range terms {
		column := term.FieldName

		if field, ok := descriptor.Lookup(term.FieldName); ok {
			if address, aliased := field.Alias(); aliased {
				if address == "" {
					r.logger().Debug().
						Str("entity", descriptor.Name()).
						Str("field", term.FieldName).
						Msg("sort term dropped: empty property address")
					continue
				}
				column = address
			}
		}

		ret = append(ret, OrderBy{
			Column:    column,
			Direction: term.Direction(),
		})
	}

	return ret
}

func (r *Resolver) logger() *zerolog.Logger {
	if r == nil {
		return &_defaultResolver.log
	}

	return &r.log
}

// ResolveOrdering is Resolve on the default (silent) resolver.
func ResolveOrdering(sortString string, descriptor *Descriptor) Orderings {
	return _defaultResolver.Resolve(sortString, descriptor)
}

// ApplyOrdering resolves sortString and orders the query by the result.
//
// Blank sort strings, nil queries and orderings whose terms were all dropped
// return the query unchanged. If the query cannot resolve any of the field
// paths the call fails with *ValidationError carrying the raw sortString.
func ApplyOrdering[T any](r *Resolver, query Query[T], sortString string, descriptor *Descriptor) (Query[T], error) {
	if query == nil || isBlank(sortString) {
		return query, nil
	}

	if r == nil {
		r = _defaultResolver
	}

	orderings := r.Resolve(sortString, descriptor)
	if len(orderings) == 0 {
		return query, nil
	}

	ordered, err := query.OrderBy(orderings)
	if err != nil {
		vErr := &ValidationError{SortBy: sortString, Err: err}

		var unknown *UnknownFieldError
		if errors.As(err, &unknown) {
			vErr.Suggestion = closestAlias(unknown.Field, unknown.Known)
		}

		r.logger().Debug().
			Err(err).
			Str("sort_by", sortString).
			Str("suggestion", vErr.Suggestion).
			Msg("ordering rejected")

		return nil, vErr
	}

	return ordered, nil
}

// OrderByIf applies the ordering only when condition holds, e.g.
//
//	q, err := rampaged.OrderByIf(q, req.ShouldSort(), req.SortBy, ordersDescriptor)
func OrderByIf[T any](query Query[T], condition bool, sortString string, descriptor *Descriptor) (Query[T], error) {
	if !condition {
		return query, nil
	}

	return ApplyOrdering(_defaultResolver, query, sortString, descriptor)
}
