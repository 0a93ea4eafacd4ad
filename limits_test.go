package rampaged

import "testing"

func Test_IsNormalizedPageSizeMax(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		max      int
		want     int
		isStrict bool
	}{
		{"zero uses default", 0, 50, DefaultPageSize, false},
		{"negative uses default", -10, 50, DefaultPageSize, false},
		{"within max unchanged", 7, 50, 7, true},
		{"equal max unchanged", 50, 50, 50, true},
		{"above max clamped", 51, 50, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, strict := IsNormalizedPageSizeMax(tt.size, tt.max)
			if got != tt.want || strict != tt.isStrict {
				t.Errorf("%s: got=(%d,%v) want=(%d,%v)", tt.name, got, strict, tt.want, tt.isStrict)
			}
		})
	}
}

func Test_NormalizePageSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"zero -> default", 0, DefaultPageSize},
		{"negative -> default", -1, DefaultPageSize},
		{"500 clamps to MaxPageSize", 500, MaxPageSize},
		{"MaxPageSize + 1 clamps", MaxPageSize + 1, MaxPageSize},
		{"keep when ok", 17, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePageSize(tt.size); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_NormalizePageNumber(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero -> first page", 0, 1},
		{"negative -> first page", -4, 1},
		{"first page kept", 1, 1},
		{"later page kept", 9, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePageNumber(tt.in); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}
