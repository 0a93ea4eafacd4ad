package rampaged

// MappingOptions are per-call settings handed to a Mapper, e.g. the current
// tenant or locale a projection depends on.
type MappingOptions struct {
	Items map[string]any
}

// Get returns a per-call item set with WithMappingItem.
func (o MappingOptions) Get(key string) (any, bool) {
	v, ok := o.Items[key]
	return v, ok
}

type MappingOption func(*MappingOptions)

// WithMappingItem passes a keyed value to the mapper for a single call.
func WithMappingItem(key string, value any) MappingOption {
	return func(o *MappingOptions) {
		o.Items[key] = value
	}
}

func newMappingOptions(opts ...MappingOption) MappingOptions {
	o := MappingOptions{Items: make(map[string]any, len(opts))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Mapper projects a source item into a destination item.
type Mapper[S, D any] interface {
	Map(src S, opts MappingOptions) (D, error)
}

// MapperFunc adapts a function to Mapper.
type MapperFunc[S, D any] func(src S, opts MappingOptions) (D, error)

func (f MapperFunc[S, D]) Map(src S, opts MappingOptions) (D, error) {
	return f(src, opts)
}

// MapWith adapts an infallible projection to Mapper.
func MapWith[S, D any](fn func(S) D) Mapper[S, D] {
	return MapperFunc[S, D](func(src S, _ MappingOptions) (D, error) {
		return fn(src), nil
	})
}
