package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceTypeLabelFallsBackToCode(t *testing.T) {
	assert.Equal(t, "הליכה 30 דק׳", ServiceTypeLabel("walk_30"))
	assert.Equal(t, "טיפול מיוחד", ServiceTypeLabel("טיפול מיוחד"), "free-text services keep their own name")
}

func TestBusinessCategoryLabelFallsBackToCode(t *testing.T) {
	assert.Equal(t, "וטרינר", BusinessCategoryLabel("veterinary"))
	assert.Equal(t, "other", BusinessCategoryLabel("other"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "פתוח", StatusLabel(RequestStatusOpen))
	assert.Equal(t, "הושלם", StatusLabel(RequestStatusCompleted))
	assert.Equal(t, "weird", StatusLabel("weird"))
}

func TestHebrewWeekdaysIndexByGoWeekday(t *testing.T) {
	// time.Weekday starts at Sunday, matching the Israeli week.
	sunday := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "ראשון", HebrewWeekdays[sunday.Weekday()])
	saturday := sunday.AddDate(0, 0, 6)
	assert.Equal(t, "שבת", HebrewWeekdays[saturday.Weekday()])
}

func TestExperienceRankIsAscending(t *testing.T) {
	for i := 1; i < len(ExperienceLevels); i++ {
		assert.Less(t, ExperienceRank[ExperienceLevels[i-1]], ExperienceRank[ExperienceLevels[i]])
	}
	assert.Zero(t, ExperienceRank["לא ידוע"], "labels outside the closed set rank last")
}

func TestDefaultFilterOptions(t *testing.T) {
	f := DefaultFilterOptions()
	assert.Equal(t, [2]float64{0, MaxFeedPrice}, f.PriceRange)
	assert.Equal(t, "all", f.Availability)
	assert.Equal(t, "all", f.TimeOfDay)
	assert.Equal(t, "date_asc", f.SortBy)
	assert.Empty(t, f.Neighborhoods)
}
