package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dogspot/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/api/feed/requests?"+rawQuery, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestParseFilterOptionsDefaults(t *testing.T) {
	f, err := parseFilterOptions(filterContext(t, ""))
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0, models.MaxFeedPrice}, f.PriceRange)
	assert.Equal(t, "all", f.TimeOfDay)
	assert.Equal(t, "date_asc", f.SortBy)
	assert.Empty(t, f.Neighborhoods)
}

func TestParseFilterOptionsMultiSelect(t *testing.T) {
	c := filterContext(t, "neighborhoods=a,b&service_types=walk_30,%20home_visit&days=,")
	f, err := parseFilterOptions(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, f.Neighborhoods)
	assert.Equal(t, []string{"walk_30", "home_visit"}, f.ServiceTypes)
	assert.Empty(t, f.AvailableDays, "empty segments are dropped")
}

func TestParseFilterOptionsPriceRange(t *testing.T) {
	c := filterContext(t, "price_min=50&price_max=200")
	f, err := parseFilterOptions(c)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{50, 200}, f.PriceRange)

	_, err = parseFilterOptions(filterContext(t, "price_min=300&price_max=200"))
	assert.Error(t, err)

	_, err = parseFilterOptions(filterContext(t, "price_min=abc"))
	assert.Error(t, err)
}

func TestParseFilterOptionsScalars(t *testing.T) {
	c := filterContext(t, "rating=4.5&time_of_day=morning&date_from=2025-06-01&sort=price_low&availability=today")
	f, err := parseFilterOptions(c)
	require.NoError(t, err)
	assert.Equal(t, 4.5, f.Rating)
	assert.Equal(t, "morning", f.TimeOfDay)
	assert.Equal(t, "2025-06-01", f.DateFrom)
	assert.Equal(t, "price_low", f.SortBy)
	assert.Equal(t, "today", f.Availability)
}
