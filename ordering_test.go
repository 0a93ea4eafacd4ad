package rampaged

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Direction_Valid(t *testing.T) {
	tests := []struct {
		name       string
		in         Direction
		valid      bool
		descending bool
	}{
		{"ASC valid", DirectionASC, true, false},
		{"DESC valid", DirectionDESC, true, true},
		{"lowercase invalid", Direction("asc"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Valid(); got != tt.valid {
				t.Errorf("%s: Valid=%v want %v", tt.name, got, tt.valid)
			}
			if got := tt.in.IsDescending(); got != tt.descending {
				t.Errorf("%s: IsDescending=%v want %v", tt.name, got, tt.descending)
			}
		})
	}
}

func Test_Orderings_validate(t *testing.T) {
	tests := []struct {
		name string
		ord  Orderings
		ok   bool
	}{
		{"empty is fine", Orderings{}, true},
		{"invalid direction", Orderings{{Column: "id", Direction: "bad"}}, false},
		{"empty column", Orderings{{Column: "", Direction: DirectionASC}}, false},
		{"forbidden symbols", Orderings{{Column: "id; DROP TABLE users", Direction: DirectionASC}}, false},
		{"dotted path", Orderings{{Column: "customer.lastName", Direction: DirectionDESC}}, true},
		{"valid list", Orderings{{Column: "id", Direction: DirectionASC}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ord.validate(); (err == nil) != tt.ok {
				t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
			}
		})
	}
}

func Test_Orderings_String_And_Path(t *testing.T) {
	ord := Orderings{
		{Column: "name", Direction: DirectionDESC},
		{Column: "age", Direction: DirectionASC},
	}

	require.Equal(t, "-name,age", ord.String())
	require.Equal(t, []string{"customer", "lastName"}, OrderBy{Column: "customer.lastName"}.Path())
}

func Test_closestAlias(t *testing.T) {
	aliases := []string{"id", "name", "created_at"}
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"closest to id", "idx", "id"},
		{"closest to name", "nme", "name"},
		{"closest to created_at", "createdat", "created_at"},
		{"case is ignored", "NAME", "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := closestAlias(tt.in, aliases); got != tt.out {
				t.Errorf("%s: got %s want %s", tt.name, got, tt.out)
			}
		})
	}
}
