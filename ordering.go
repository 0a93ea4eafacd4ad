package rampaged

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
)

// Direction defines the sort direction for the requested dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

// IsDescending reports whether the direction is DirectionDESC.
func (o Direction) IsDescending() bool {
	return o == DirectionDESC
}

func directionOf(descending bool) Direction {
	return lo.Ternary(descending, DirectionDESC, DirectionASC)
}

type (
	// Orderings is a multi-key ordering. The first element is the primary
	// key, every next one breaks ties of the previous:
	//
	//	OrderBy(o1).ThenBy(o2).ThenBy(o3)...
	Orderings []OrderBy

	// OrderBy is a single resolved (field path, direction) pair. Column is a
	// field name or a dotted property address such as "customer.lastName".
	OrderBy struct {
		Column    string
		Direction Direction
	}
)

var _availableColumnNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	if o.Column == "" {
		return fmt.Errorf("empty ordering column")
	}

	// Guard against SQL injection by restricting allowed characters in column names.
	if !lo.Every(_availableColumnNameSymbols, []rune(o.Column)) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// Path splits the column into its dotted property address segments.
func (o OrderBy) Path() []string {
	return strings.Split(o.Column, ".")
}

// String - implements fmt.Stringer. Renders the orderings back into sort
// string form, e.g. "-name,age".
func (o Orderings) String() string {
	return strings.Join(lo.Map(o, func(item OrderBy, _ int) string {
		return lo.Ternary(item.Direction.IsDescending(), "-"+item.Column, item.Column)
	}), ",")
}

func (o Orderings) validate() error {
	for _, ordering := range o {
		err := ordering.validate()
		if err != nil {
			return err
		}
	}

	return nil
}

func closestAlias(input string, dataSet []string) string {
	minDist := math.MaxInt
	closest := ""

	for _, dataSetAlias := range dataSet {
		dist := levenshtein([]rune(strings.ToLower(dataSetAlias)), []rune(strings.ToLower(input)))
		if dist < minDist {
			minDist = dist
			closest = dataSetAlias
		}
	}

	return closest
}
