package catalog

import (
	"testing"

	"dogspot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkSitter(id string, rating float64, prices ...float64) models.Sitter {
	services := make([]models.SitterService, len(prices))
	for i, p := range prices {
		services[i] = models.SitterService{ID: id, Type: "walk_30", Price: p}
	}
	return models.Sitter{
		ID:            id,
		Name:          "מיכל אברהם",
		UserType:      "sitter",
		Neighborhood:  "פלורנטין",
		Neighborhoods: []string{"פלורנטין", "נווה צדק"},
		Experience:    "5+ שנים",
		Services:      services,
		Rating:        rating,
	}
}

func sitterIDs(sitters []models.Sitter) []string {
	out := make([]string, len(sitters))
	for i, s := range sitters {
		out[i] = s.ID
	}
	return out
}

func TestSitterPriceCeilingOnly(t *testing.T) {
	cheap := mkSitter("cheap", 4, 30, 50)
	pricey := mkSitter("pricey", 4, 80, 120)
	noServices := mkSitter("bare", 4)

	f := models.DefaultFilterOptions()
	f.PriceRange = [2]float64{60, 100}

	out := FilterAndSortSitters([]models.Sitter{cheap, pricey, noServices}, "", f, nil)
	// The floor never excludes anyone: a sitter priced entirely below it
	// passes, and so does one with no priced services. Only a price above
	// the ceiling excludes.
	assert.ElementsMatch(t, []string{"cheap", "bare"}, sitterIDs(out))
}

func TestSitterPriceCeilingBoundaryIsInclusive(t *testing.T) {
	s := mkSitter("1", 4, 100)

	f := models.DefaultFilterOptions()
	f.PriceRange = [2]float64{0, 100}
	assert.Len(t, FilterAndSortSitters([]models.Sitter{s}, "", f, nil), 1)

	f.PriceRange = [2]float64{0, 99}
	assert.Empty(t, FilterAndSortSitters([]models.Sitter{s}, "", f, nil))
}

func TestSitterNeighborhoodsOverlap(t *testing.T) {
	s := mkSitter("1", 4, 40)

	f := models.DefaultFilterOptions()
	f.Neighborhoods = []string{"נווה צדק", "רוטשילד"}
	assert.Len(t, FilterAndSortSitters([]models.Sitter{s}, "", f, nil), 1)

	f.Neighborhoods = []string{"רמת אביב"}
	assert.Empty(t, FilterAndSortSitters([]models.Sitter{s}, "", f, nil))
}

func TestSitterExperienceFilter(t *testing.T) {
	s := mkSitter("1", 4, 40)

	f := models.DefaultFilterOptions()
	f.Experience = []string{"5+ שנים", "10+ שנים"}
	assert.Len(t, FilterAndSortSitters([]models.Sitter{s}, "", f, nil), 1)

	f.Experience = []string{"מתחיל"}
	assert.Empty(t, FilterAndSortSitters([]models.Sitter{s}, "", f, nil))
}

func TestSitterTimeOfDayOverlapIsInclusive(t *testing.T) {
	s := mkSitter("1", 4, 40)
	s.Availability = []models.Availability{{Day: "שני", StartTime: "08:00", EndTime: "12:00"}}

	f := models.DefaultFilterOptions()

	// A slot ending exactly at the bucket boundary still overlaps it.
	f.TimeOfDay = TimeOfDayAfternoon
	assert.Len(t, FilterAndSortSitters([]models.Sitter{s}, "", f, nil), 1)

	f.TimeOfDay = TimeOfDayMorning
	assert.Len(t, FilterAndSortSitters([]models.Sitter{s}, "", f, nil), 1)

	f.TimeOfDay = TimeOfDayEvening
	assert.Empty(t, FilterAndSortSitters([]models.Sitter{s}, "", f, nil))
}

func TestSitterWithoutAvailabilityListPassesTimeOfDay(t *testing.T) {
	noList := mkSitter("nil", 4, 40)
	noList.Availability = nil
	emptyList := mkSitter("empty", 4, 40)
	emptyList.Availability = []models.Availability{}

	f := models.DefaultFilterOptions()
	f.TimeOfDay = TimeOfDayMorning

	out := FilterAndSortSitters([]models.Sitter{noList, emptyList}, "", f, nil)
	// A sitter with no availability list at all is not filtered; one with
	// an empty list has no overlapping slot and drops out.
	assert.Equal(t, []string{"nil"}, sitterIDs(out))
}

func TestSitterAvailableDaysFilter(t *testing.T) {
	s := mkSitter("1", 4, 40)
	s.Availability = []models.Availability{
		{Day: "שני", StartTime: "09:00", EndTime: "17:00"},
		{Day: "רביעי", StartTime: "09:00", EndTime: "17:00"},
	}

	f := models.DefaultFilterOptions()
	f.AvailableDays = []string{"רביעי"}
	assert.Len(t, FilterAndSortSitters([]models.Sitter{s}, "", f, nil), 1)

	f.AvailableDays = []string{"שבת"}
	assert.Empty(t, FilterAndSortSitters([]models.Sitter{s}, "", f, nil))
}

func TestSittersDefaultSortIsRatingDescending(t *testing.T) {
	in := []models.Sitter{
		mkSitter("1", 4.7, 40),
		mkSitter("2", 4.9, 40),
		mkSitter("3", 4.8, 40),
	}

	f := models.DefaultFilterOptions()
	f.SortBy = ""
	out := FilterAndSortSitters(in, "", f, nil)
	assert.Equal(t, []string{"2", "3", "1"}, sitterIDs(out))
}

func TestSittersSortByMinPriceTreatsBareSittersAsLast(t *testing.T) {
	in := []models.Sitter{
		mkSitter("bare", 4),
		mkSitter("cheap", 4, 35, 80),
		mkSitter("mid", 4, 50, 60),
	}

	f := models.DefaultFilterOptions()
	f.SortBy = "price_low"
	out := FilterAndSortSitters(in, "", f, nil)
	assert.Equal(t, []string{"cheap", "mid", "bare"}, sitterIDs(out))
}

func TestSittersSortByExperience(t *testing.T) {
	junior := mkSitter("junior", 4, 40)
	junior.Experience = "מתחיל"
	senior := mkSitter("senior", 4, 40)
	senior.Experience = "10+ שנים"

	f := models.DefaultFilterOptions()
	f.SortBy = "experience_desc"
	out := FilterAndSortSitters([]models.Sitter{junior, senior}, "", f, nil)
	require.Equal(t, []string{"senior", "junior"}, sitterIDs(out))

	f.SortBy = "experience_asc"
	out = FilterAndSortSitters([]models.Sitter{senior, junior}, "", f, nil)
	assert.Equal(t, []string{"junior", "senior"}, sitterIDs(out))
}

func TestSitterViewerPinnedOnEqualRating(t *testing.T) {
	in := []models.Sitter{
		mkSitter("1", 4.8, 40),
		mkSitter("2", 4.8, 40),
		mkSitter("3", 4.8, 40),
	}

	me := &models.CurrentUser{ID: "3", UserType: "sitter"}
	out := FilterAndSortSitters(in, "", models.DefaultFilterOptions(), me)
	// All ratings tie, so the stable sort keeps the viewer's profile in
	// front after the pin pass.
	assert.Equal(t, []string{"3", "1", "2"}, sitterIDs(out))
}

func TestSitterPinYieldsToStrictSortOrder(t *testing.T) {
	in := []models.Sitter{
		mkSitter("1", 4.9, 40),
		mkSitter("2", 4.5, 40),
	}

	me := &models.CurrentUser{ID: "2", UserType: "sitter"}
	out := FilterAndSortSitters(in, "", models.DefaultFilterOptions(), me)
	// The pin runs before the rating sort, so a strictly higher-rated
	// sitter still ends up first.
	assert.Equal(t, []string{"1", "2"}, sitterIDs(out))
}

func TestClientViewerIsNotPinned(t *testing.T) {
	in := []models.Sitter{
		mkSitter("1", 4.8, 40),
		mkSitter("2", 4.8, 40),
	}

	me := &models.CurrentUser{ID: "2", UserType: "client"}
	out := FilterAndSortSitters(in, "", models.DefaultFilterOptions(), me)
	assert.Equal(t, []string{"1", "2"}, sitterIDs(out))
}

func TestSitterSearchCoversDescriptionAndServiceLabels(t *testing.T) {
	s := mkSitter("1", 4, 40)
	s.Description = "מאמן כלבים מקצועי"

	out := FilterAndSortSitters([]models.Sitter{s}, "מאמן", models.DefaultFilterOptions(), nil)
	assert.Len(t, out, 1)

	out = FilterAndSortSitters([]models.Sitter{s}, "הליכה", models.DefaultFilterOptions(), nil)
	assert.Len(t, out, 1, "service type label should match")

	out = FilterAndSortSitters([]models.Sitter{s}, "וטרינר", models.DefaultFilterOptions(), nil)
	assert.Empty(t, out)
}

func TestFilterAndSortSittersDoesNotMutateInput(t *testing.T) {
	in := []models.Sitter{
		mkSitter("1", 4.5, 40),
		mkSitter("2", 4.9, 40),
	}
	snapshot := make([]models.Sitter, len(in))
	copy(snapshot, in)

	FilterAndSortSitters(in, "", models.DefaultFilterOptions(), &models.CurrentUser{ID: "1", UserType: "sitter"})
	assert.Equal(t, snapshot, in)
}
