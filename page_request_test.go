package rampaged

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_PageRequest_SkipCount(t *testing.T) {
	tests := []struct {
		name       string
		pageNumber int
		pageSize   int
		want       int
	}{
		{"first page skips nothing", 1, 10, 0},
		{"second page skips one page", 2, 10, 10},
		{"page 7 of 25", 7, 25, 150},
		{"unset page number is first page", 0, 10, 0},
		{"negative page number is first page", -3, 10, 0},
		{"clamped size is used", 2, 500, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PageRequest{PageNumber: tt.pageNumber, PageSize: tt.pageSize}
			require.Equal(t, tt.want, p.SkipCount())
			require.GreaterOrEqual(t, p.SkipCount(), 0)
		})
	}
}

func Test_PageRequest_SkipCount_Property(t *testing.T) {
	for pageNumber := 1; pageNumber <= 20; pageNumber++ {
		for pageSize := 1; pageSize <= MaxPageSize; pageSize += 13 {
			p := NewPageRequest(pageNumber, pageSize, "")
			require.Equal(t, pageSize*(pageNumber-1), p.SkipCount())
			require.GreaterOrEqual(t, p.SkipCount(), 0)
		}
	}
}

func Test_PageRequest_Defaults(t *testing.T) {
	var p *PageRequest

	require.Equal(t, DefaultPageNumber, p.GetPageNumber())
	require.Equal(t, DefaultPageSize, p.GetPageSize())
	require.Equal(t, "", p.GetSortBy())
	require.False(t, p.ShouldSort())

	p = p.WithPageSize(500).WithSortBy("-name")
	require.Equal(t, MaxPageSize, p.PageSize)
	require.Equal(t, DefaultPageNumber, p.GetPageNumber())
	require.True(t, p.ShouldSort())
}

func Test_NewPageRequest(t *testing.T) {
	p := NewPageRequest(0, 0, " ")

	require.Equal(t, &PageRequest{PageNumber: 1, PageSize: DefaultPageSize, SortBy: " "}, p)
	require.False(t, p.ShouldSort())
}
