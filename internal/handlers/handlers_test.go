// internal/handlers/handlers_test.go
package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(query string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/test?"+query, nil)
	return c, recorder
}

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Equal(t, []string{"a"}, splitCSV("a"))
	assert.Equal(t, []string{"a", "b", "c"}, splitCSV("a,b,c"))
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a , , b ,"))
}

func TestQueryFloat(t *testing.T) {
	c, _ := testContext("min_price=1500000&bad=abc")

	value, err := queryFloat(c, "min_price")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 1500000.0, *value)

	value, err = queryFloat(c, "missing")
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = queryFloat(c, "bad")
	assert.Error(t, err)
}

func TestOptionalUserIDParsesContextValue(t *testing.T) {
	userID := uuid.New()

	c, _ := testContext("")
	c.Set("user_id", userID.String())

	parsed := optionalUserID(c)
	require.NotNil(t, parsed)
	assert.Equal(t, userID, *parsed)
}

func TestOptionalUserIDNilForAnonymousOrGarbage(t *testing.T) {
	c, _ := testContext("")
	assert.Nil(t, optionalUserID(c))

	c, _ = testContext("")
	c.Set("user_id", "not-a-uuid")
	assert.Nil(t, optionalUserID(c))
}

func TestDateRangeDefaultsToLastThirtyDays(t *testing.T) {
	c, _ := testContext("")

	start, end, ok := dateRange(c)
	require.True(t, ok)
	assert.True(t, start.Before(end))
	assert.InDelta(t, 30*24, end.Sub(start).Hours(), 1)
}

func TestDateRangeParsesBounds(t *testing.T) {
	c, _ := testContext("start=2025-06-01&end=2025-06-30")

	start, end, ok := dateRange(c)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	// The end bound is exclusive, one day past the requested date
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDateRangeRejectsBadInput(t *testing.T) {
	c, recorder := testContext("start=June-1")
	_, _, ok := dateRange(c)
	assert.False(t, ok)
	assert.Equal(t, 400, recorder.Code)

	c, recorder = testContext("start=2025-07-01&end=2025-06-01")
	_, _, ok = dateRange(c)
	assert.False(t, ok)
	assert.Equal(t, 400, recorder.Code)
}
