package catalog

import (
	"testing"

	"dogspot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	snap := s.Snapshot()

	assert.Equal(t, "", snap.Query)
	assert.Equal(t, "", snap.SelectedCategory)
	assert.Equal(t, "distance", snap.BusinessSort)
	assert.Equal(t, models.DefaultFilterOptions(), snap.Filters)
	assert.False(t, s.HasActiveFilters())
}

func TestStateNotifiesSubscribersOnEveryMutation(t *testing.T) {
	s := NewState()
	var got []Snapshot
	s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	s.SetQuery("מקס")
	s.SetSelectedCategory("pension")
	s.SetBusinessSort("rating")

	require.Len(t, got, 3)
	assert.Equal(t, "מקס", got[0].Query)
	assert.Equal(t, "pension", got[1].SelectedCategory)
	assert.Equal(t, "rating", got[2].BusinessSort)
}

func TestStateRemoveFilterChips(t *testing.T) {
	s := NewState()
	f := models.DefaultFilterOptions()
	f.Neighborhoods = []string{"פלורנטין", "נווה צדק"}
	f.ServiceTypes = []string{"walk_30"}
	f.PriceRange = [2]float64{50, 200}
	f.DateFrom = "2025-06-01"
	f.TimeOfDay = TimeOfDayMorning
	f.Rating = 4
	f.Availability = "week"
	s.SetFilters(f)

	s.RemoveFilter("neighborhood", "פלורנטין")
	assert.Equal(t, []string{"נווה צדק"}, s.Snapshot().Filters.Neighborhoods)

	s.RemoveFilter("serviceType", "walk_30")
	assert.Empty(t, s.Snapshot().Filters.ServiceTypes)

	s.RemoveFilter("priceRange", "")
	assert.Equal(t, [2]float64{0, models.MaxFeedPrice}, s.Snapshot().Filters.PriceRange)

	s.RemoveFilter("dateFrom", "")
	assert.Equal(t, "", s.Snapshot().Filters.DateFrom)

	s.RemoveFilter("timeOfDay", "")
	assert.Equal(t, TimeOfDayAll, s.Snapshot().Filters.TimeOfDay)

	s.RemoveFilter("rating", "")
	assert.Zero(t, s.Snapshot().Filters.Rating)

	s.RemoveFilter("status", "")
	assert.Equal(t, "all", s.Snapshot().Filters.Availability)

	assert.Equal(t, []string{"נווה צדק"}, s.Snapshot().Filters.Neighborhoods, "other chips stay put")
}

func TestStateClearAll(t *testing.T) {
	s := NewState()
	s.SetQuery("  מקס  ")
	s.SetSelectedCategory("pension")
	f := models.DefaultFilterOptions()
	f.Rating = 4.5
	s.SetFilters(f)
	require.True(t, s.HasActiveFilters())

	s.ClearAll()
	snap := s.Snapshot()
	assert.Equal(t, "", snap.Query)
	assert.Equal(t, "", snap.SelectedCategory)
	assert.Equal(t, models.DefaultFilterOptions(), snap.Filters)
	assert.False(t, s.HasActiveFilters())
}

func TestHasActiveFiltersOnWhitespaceQuery(t *testing.T) {
	s := NewState()
	s.SetQuery("   ")
	assert.False(t, s.HasActiveFilters(), "whitespace-only query is not a constraint")

	s.SetQuery(" מקס ")
	assert.True(t, s.HasActiveFilters())
}

func TestHasActiveFiltersOnEachField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.FilterOptions)
	}{
		{"neighborhoods", func(f *models.FilterOptions) { f.Neighborhoods = []string{"פלורנטין"} }},
		{"price floor", func(f *models.FilterOptions) { f.PriceRange[0] = 10 }},
		{"price ceiling", func(f *models.FilterOptions) { f.PriceRange[1] = 400 }},
		{"rating", func(f *models.FilterOptions) { f.Rating = 3 }},
		{"availability", func(f *models.FilterOptions) { f.Availability = "today" }},
		{"date from", func(f *models.FilterOptions) { f.DateFrom = "2025-06-01" }},
		{"time of day", func(f *models.FilterOptions) { f.TimeOfDay = TimeOfDayEvening }},
		{"experience", func(f *models.FilterOptions) { f.Experience = []string{"מתחיל"} }},
		{"days", func(f *models.FilterOptions) { f.AvailableDays = []string{"שבת"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			f := models.DefaultFilterOptions()
			tc.mutate(&f)
			s.SetFilters(f)
			assert.True(t, s.HasActiveFilters())
		})
	}
}
