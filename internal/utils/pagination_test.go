// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFromQuery(t *testing.T, query string) PaginationParams {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/properties?"+query, nil)

	return GetPaginationParams(c)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsFromQuery(t, "")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.Limit)
	assert.Equal(t, "newest", params.Sort)
	assert.Equal(t, "desc", params.Order)
}

func TestGetPaginationParamsClampsBadInput(t *testing.T) {
	params := paramsFromQuery(t, "page=-3&limit=5000&order=sideways")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.Limit)
	assert.Equal(t, "desc", params.Order)
}

func TestCreatePaginationResultSplitsAcrossPages(t *testing.T) {
	// 13 rows with a page size of 12 must yield two pages
	params := PaginationParams{Page: 1, Limit: 12}
	result := CreatePaginationResult([]string{}, 13, params)

	assert.Equal(t, int64(13), result.Total)
	assert.Equal(t, 2, result.TotalPages)
	assert.True(t, result.HasNext)
	assert.False(t, result.HasPrev)

	params.Page = 2
	result = CreatePaginationResult([]string{}, 13, params)

	assert.Equal(t, 2, result.TotalPages)
	assert.False(t, result.HasNext)
	assert.True(t, result.HasPrev)
}

func TestCreatePaginationResultExactFit(t *testing.T) {
	result := CreatePaginationResult([]string{}, 24, PaginationParams{Page: 2, Limit: 12})

	assert.Equal(t, 2, result.TotalPages)
	assert.False(t, result.HasNext)
	assert.True(t, result.HasPrev)
}

func TestCreatePaginationResultEmpty(t *testing.T) {
	result := CreatePaginationResult([]string{}, 0, PaginationParams{Page: 1, Limit: 12})

	assert.Equal(t, 0, result.TotalPages)
	assert.False(t, result.HasNext)
	assert.False(t, result.HasPrev)
}
