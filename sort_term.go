package rampaged

import (
	"strings"
)

// SortTerm is one comma separated unit of a sort string. A leading "-"
// marks descending order.
type SortTerm struct {
	FieldName  string
	Descending bool
}

// Direction returns the ordering direction of the term.
func (t SortTerm) Direction() Direction {
	return directionOf(t.Descending)
}

// ParseSortTerms splits a sort string such as "-name,age" into terms,
// preserving left-to-right precedence. Blank input yields no terms.
//
// Unknown or malformed field names are kept as-is: they fail later, when the
// ordering is applied to a query.
func ParseSortTerms(sortString string) []SortTerm {
	if isBlank(sortString) {
		return nil
	}

	rawTerms := strings.Split(sortString, ",")
	ret := make([]SortTerm, 0, len(rawTerms))
	for _, rawTerm := range rawTerms {
		term := strings.TrimSpace(rawTerm)
		fieldName, descending := strings.CutPrefix(term, "-")

		ret = append(ret, SortTerm{
			FieldName:  fieldName,
			Descending: descending,
		})
	}

	return ret
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
