package rampaged

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// SliceQuery is an in-memory Query over a slice of structs (or pointers to
// structs). Field paths are resolved case-insensitively against exported
// struct fields; dotted paths descend into nested structs.
type SliceQuery[T any] struct {
	items []T
}

// FromSlice wraps items. The slice is not copied until the query is ordered.
func FromSlice[T any](items []T) *SliceQuery[T] {
	return &SliceQuery[T]{items: items}
}

// WhereIf keeps only the items matching predicate when condition holds.
func (q *SliceQuery[T]) WhereIf(condition bool, predicate func(T) bool) *SliceQuery[T] {
	if q == nil || !condition {
		return q
	}

	return &SliceQuery[T]{items: lo.Filter(q.items, func(item T, _ int) bool {
		return predicate(item)
	})}
}

// Count - implements Query.
func (q *SliceQuery[T]) Count(_ context.Context) (int64, error) {
	if q == nil {
		return 0, nil
	}

	return int64(len(q.items)), nil
}

// Window - implements Query.
func (q *SliceQuery[T]) Window(_ context.Context, skip, take int) ([]T, error) {
	if q == nil || skip >= len(q.items) || take <= 0 {
		return []T{}, nil
	}

	end := min(skip+take, len(q.items))

	return slices.Clone(q.items[skip:end]), nil
}

// OrderBy - implements Query. Sorting is stable, so equal keys keep their
// source order.
func (q *SliceQuery[T]) OrderBy(orderings Orderings) (Query[T], error) {
	if q == nil {
		return q, nil
	}

	if err := orderings.validate(); err != nil {
		return nil, err
	}

	keys := make([]sliceSortKey, 0, len(orderings))
	elemType := reflect.TypeFor[T]()
	for _, o := range orderings {
		index, err := resolveFieldIndex(elemType, o.Path())
		if err != nil {
			return nil, err
		}
		keys = append(keys, sliceSortKey{index: index, desc: o.Direction.IsDescending()})
	}

	sorted := slices.Clone(q.items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		va, vb := reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem()
		for _, key := range keys {
			c := compareValues(fieldByIndex(va, key.index), fieldByIndex(vb, key.index))
			if c != 0 {
				return lo.Ternary(key.desc, -c, c)
			}
		}
		return 0
	})

	return &SliceQuery[T]{items: sorted}, nil
}

type sliceSortKey struct {
	index [][]int
	desc  bool
}

// resolveFieldIndex walks a dotted path through (pointers to) structs and
// returns the field index for every segment.
func resolveFieldIndex(t reflect.Type, path []string) ([][]int, error) {
	ret := make([][]int, 0, len(path))

	for i, segment := range path {
		t = indirectType(t)
		if t.Kind() != reflect.Struct {
			return nil, &UnknownFieldError{Field: strings.Join(path, ".")}
		}

		field, ok := t.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, segment)
		})
		if !ok || !field.IsExported() {
			return nil, &UnknownFieldError{Field: segment, Known: exportedFieldNames(t)}
		}

		if !isComparableKind(indirectType(field.Type)) && i == len(path)-1 {
			return nil, fmt.Errorf("field '%s' of type %s is not orderable", segment, field.Type)
		}

		ret = append(ret, field.Index)
		t = field.Type
	}

	return ret, nil
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

func exportedFieldNames(t reflect.Type) []string {
	ret := make([]string, 0, t.NumField())
	for _, f := range reflect.VisibleFields(t) {
		if f.IsExported() && !f.Anonymous {
			ret = append(ret, f.Name)
		}
	}

	return ret
}

var _timeType = reflect.TypeFor[time.Time]()

func isComparableKind(t reflect.Type) bool {
	if t == _timeType {
		return true
	}

	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// fieldByIndex follows the resolved path. A nil pointer anywhere on the way
// yields the invalid Value, which sorts first.
func fieldByIndex(v reflect.Value, index [][]int) reflect.Value {
	for _, idx := range index {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		}

		var err error
		v, err = v.FieldByIndexErr(idx)
		if err != nil {
			return reflect.Value{}
		}
	}

	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

func compareValues(a, b reflect.Value) int {
	switch {
	case !a.IsValid() && !b.IsValid():
		return 0
	case !a.IsValid():
		return -1
	case !b.IsValid():
		return 1
	}

	if a.Type() == _timeType && a.CanInterface() && b.CanInterface() {
		return a.Interface().(time.Time).Compare(b.Interface().(time.Time))
	}

	switch a.Kind() {
	case reflect.Bool:
		return cmp.Compare(lo.Ternary(a.Bool(), 1, 0), lo.Ternary(b.Bool(), 1, 0))
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	default:
		return 0
	}
}

var _ Query[struct{}] = (*SliceQuery[struct{}])(nil)
