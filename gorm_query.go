package rampaged

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

var _schemaCache sync.Map

// GORMQuery adapts a *gorm.DB chain to Query. Every method works on its own
// session, so the wrapped chain can be shared between Count and Window.
type GORMQuery[T any] struct {
	db *gorm.DB
}

// FromGORM wraps db. If neither a model nor a table was set on the chain,
// the model defaults to T.
func FromGORM[T any](db *gorm.DB) *GORMQuery[T] {
	if db == nil {
		return nil
	}

	if db.Statement.Model == nil && db.Statement.Table == "" {
		db = db.Model(new(T))
	}

	return &GORMQuery[T]{
		db: db.Session(&gorm.Session{}),
	}
}

// DB returns the wrapped chain, ordering included.
func (q *GORMQuery[T]) DB() *gorm.DB {
	if q == nil {
		return nil
	}

	return q.db
}

// Count - implements Query. GORM drops ORDER BY from count queries.
func (q *GORMQuery[T]) Count(ctx context.Context) (int64, error) {
	if q == nil {
		return 0, nil
	}

	var count int64
	if err := q.db.WithContext(ctx).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Window - implements Query. Renders as LIMIT take OFFSET skip.
func (q *GORMQuery[T]) Window(ctx context.Context, skip, take int) ([]T, error) {
	if q == nil {
		return []T{}, nil
	}

	items := make([]T, 0, max(take, 0))
	if err := q.db.WithContext(ctx).Offset(skip).Limit(take).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// OrderBy - implements Query. Field paths are resolved against the GORM
// schema of the model:
//   - "lastName" or "last_name" -> "<current table>"."last_name";
//   - "customer.lastName" -> "Customer"."last_name". The relation must be a
//     belongs to / has one association joined with Joins("Customer");
//   - deeper paths use GORM's nested join alias, "Customer__Address", and
//     need Joins("Customer.Address").
//
// Queries over non-struct models (e.g. Table("users") with map rows) cannot
// be checked and get the column names as written.
func (q *GORMQuery[T]) OrderBy(orderings Orderings) (Query[T], error) {
	if q == nil {
		return q, nil
	}

	if err := orderings.validate(); err != nil {
		return nil, err
	}

	sch, err := q.schema()
	if err != nil {
		return nil, fmt.Errorf("cannot parse model schema: %w", err)
	}

	columns := make([]clause.OrderByColumn, 0, len(orderings))
	for _, o := range orderings {
		column := clause.Column{Name: o.Column, Raw: true}
		if sch != nil {
			column, err = resolveColumn(sch, q.joined(), o.Path())
			if err != nil {
				return nil, err
			}
		}

		columns = append(columns, clause.OrderByColumn{
			Column: column,
			Desc:   o.Direction.IsDescending(),
		})
	}

	return &GORMQuery[T]{
		db: q.db.Clauses(clause.OrderBy{Columns: columns}).Session(&gorm.Session{}),
	}, nil
}

func (q *GORMQuery[T]) schema() (*schema.Schema, error) {
	model := q.db.Statement.Model
	if model == nil {
		model = new(T)
	}

	modelType := reflect.TypeOf(model)
	for modelType.Kind() == reflect.Pointer || modelType.Kind() == reflect.Slice {
		modelType = modelType.Elem()
	}
	if modelType.Kind() != reflect.Struct {
		return nil, nil
	}

	return schema.Parse(model, &_schemaCache, q.db.NamingStrategy)
}

// joined returns the lowercased names of the associations joined on the
// chain, e.g. "customer" or "customer.address".
func (q *GORMQuery[T]) joined() map[string]struct{} {
	ret := make(map[string]struct{}, len(q.db.Statement.Joins))
	for _, j := range q.db.Statement.Joins {
		ret[strings.ToLower(j.Name)] = struct{}{}
	}

	return ret
}

// resolveColumn maps a field path onto a column. Every relation on the way
// must be a single-row association (belongs to / has one) joined on the
// chain, otherwise the column would not exist in the query.
func resolveColumn(sch *schema.Schema, joined map[string]struct{}, path []string) (clause.Column, error) {
	relations := make([]string, 0, len(path)-1)

	for _, segment := range path[:len(path)-1] {
		prefix := strings.Join(relations, ".")
		orderable := lo.Filter(lo.Values(sch.Relationships.Relations), func(r *schema.Relationship, _ int) bool {
			if r.Type != schema.BelongsTo && r.Type != schema.HasOne {
				return false
			}
			_, ok := joined[strings.ToLower(strings.TrimPrefix(prefix+"."+r.Name, "."))]
			return ok
		})

		rel, ok := lo.Find(orderable, func(r *schema.Relationship) bool {
			return strings.EqualFold(r.Name, segment)
		})
		if !ok {
			return clause.Column{}, &UnknownFieldError{
				Field: segment,
				Known: lo.Map(orderable, func(r *schema.Relationship, _ int) string { return r.Name }),
			}
		}

		relations = append(relations, rel.Name)
		sch = rel.FieldSchema
	}

	last := path[len(path)-1]
	field, ok := lo.Find(sch.Fields, func(f *schema.Field) bool {
		return f.DBName != "" && (strings.EqualFold(f.Name, last) || strings.EqualFold(f.DBName, last))
	})
	if !ok {
		return clause.Column{}, &UnknownFieldError{
			Field: last,
			Known: lo.FilterMap(sch.Fields, func(f *schema.Field, _ int) (string, bool) {
				return f.Name, f.DBName != ""
			}),
		}
	}

	return clause.Column{
		Table: lo.Ternary(len(relations) == 0, clause.CurrentTable, strings.Join(relations, "__")),
		Name:  field.DBName,
	}, nil
}

// WhereIf adds the condition only when condition holds.
func WhereIf(db *gorm.DB, condition bool, query any, args ...any) *gorm.DB {
	if !condition {
		return db
	}

	return db.Where(query, args...)
}

// PreloadIf preloads the association only when condition holds.
func PreloadIf(db *gorm.DB, condition bool, query string, args ...any) *gorm.DB {
	if !condition {
		return db
	}

	return db.Preload(query, args...)
}

// JoinsIf joins the association only when condition holds. Join a relation
// before ordering by one of its fields.
func JoinsIf(db *gorm.DB, condition bool, query string, args ...any) *gorm.DB {
	if !condition {
		return db
	}

	return db.Joins(query, args...)
}

var _ Query[struct{}] = (*GORMQuery[struct{}])(nil)
