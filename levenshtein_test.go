package rampaged

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_levenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"number", "number", 0},
		{"numbr", "number", 1},
		{"", "total", 5},
		{"placed", "", 6},
		{"lastName", "lastname", 1},
		{"cutsomer", "customer", 2},
		{"straße", "strasse", 2},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			require.Equal(t, tt.want, levenshtein([]rune(tt.a), []rune(tt.b)))
			require.Equal(t, tt.want, levenshtein([]rune(tt.b), []rune(tt.a)))
		})
	}
}
