package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		totalCount int
		want       Info
	}{
		{
			name: "first page of 25", page: 1, pageSize: 10, totalCount: 25,
			want: Info{Page: 1, PageSize: 10, TotalCount: 25, TotalPages: 3, HasNext: true, HasPrevious: false},
		},
		{
			name: "second page of 25", page: 2, pageSize: 10, totalCount: 25,
			want: Info{Page: 2, PageSize: 10, TotalCount: 25, TotalPages: 3, HasNext: true, HasPrevious: true},
		},
		{
			name: "last page of 25", page: 3, pageSize: 10, totalCount: 25,
			want: Info{Page: 3, PageSize: 10, TotalCount: 25, TotalPages: 3, HasNext: false, HasPrevious: true},
		},
		{
			name: "page beyond end clamps to last", page: 9, pageSize: 10, totalCount: 25,
			want: Info{Page: 3, PageSize: 10, TotalCount: 25, TotalPages: 3, HasNext: false, HasPrevious: true},
		},
		{
			name: "zero page clamps to one", page: 0, pageSize: 10, totalCount: 25,
			want: Info{Page: 1, PageSize: 10, TotalCount: 25, TotalPages: 3, HasNext: true, HasPrevious: false},
		},
		{
			name: "zero page size clamps to one", page: 1, pageSize: 0, totalCount: 3,
			want: Info{Page: 1, PageSize: 1, TotalCount: 3, TotalPages: 3, HasNext: true, HasPrevious: false},
		},
		{
			name: "empty collection", page: 1, pageSize: 10, totalCount: 0,
			want: Info{Page: 1, PageSize: 10, TotalCount: 0, TotalPages: 0, HasNext: false, HasPrevious: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.page, tt.pageSize, tt.totalCount))
		})
	}
}

func TestOffsetLimit(t *testing.T) {
	info := New(3, 10, 100)
	assert.Equal(t, 20, info.Offset())
	assert.Equal(t, 10, info.Limit())
}
