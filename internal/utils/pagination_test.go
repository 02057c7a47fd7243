// internal/utils/pagination_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, result := Paginate(items, PaginationParams{Page: 1, Limit: 2})
	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, 3, result.TotalPages)

	page, _ = Paginate(items, PaginationParams{Page: 3, Limit: 2})
	assert.Equal(t, []int{5}, page)
}

func TestPaginatePastTheEnd(t *testing.T) {
	items := []int{1, 2, 3}

	page, result := Paginate(items, PaginationParams{Page: 5, Limit: 10})
	assert.Empty(t, page)
	assert.Equal(t, int64(3), result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestPaginateEmpty(t *testing.T) {
	page, result := Paginate([]string{}, PaginationParams{Page: 1, Limit: 20})
	assert.Empty(t, page)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, 0, result.TotalPages)
}
