package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 20, 0, 20},
		{"third page", 3, 20, 40, 20},
		{"zero page defaults to first", 0, 20, 0, 20},
		{"negative page defaults to first", -5, 20, 0, 20},
		{"zero size gets default", 2, 0, 10, 10},
		{"oversized page size capped to default", 1, 500, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)

	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(45), info.TotalItems)
}

func TestNewPaginationInfoEmptyResult(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)

	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, int64(0), info.TotalItems)
}

func TestNewPaginationInfoClampsPastLastPage(t *testing.T) {
	info := NewPaginationInfo(15, 9, 10)

	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 2, info.TotalPages)
}
