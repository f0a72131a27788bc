package catalog

import (
	"testing"
	"time"

	"dogspot/models"

	"github.com/stretchr/testify/assert"
)

func hoursBusiness(hours ...models.OpeningHours) models.Business {
	return models.Business{ID: "1", Name: "פנסיון", Category: "pension", OpeningHours: hours}
}

// 2025-06-02 is a Monday, שני.
func monday(hour, minute int) time.Time {
	return time.Date(2025, time.June, 2, hour, minute, 0, 0, time.UTC)
}

func TestOpenNowWithinHours(t *testing.T) {
	b := hoursBusiness(models.OpeningHours{Day: "שני", IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"})

	assert.True(t, OpenNow(b, monday(12, 0)))
	assert.True(t, OpenNow(b, monday(9, 0)), "opening minute counts as open")
	assert.True(t, OpenNow(b, monday(17, 0)), "closing minute counts as open")
	assert.False(t, OpenNow(b, monday(8, 59)))
	assert.False(t, OpenNow(b, monday(17, 1)))
}

func TestOpenNowClosedDay(t *testing.T) {
	b := hoursBusiness(models.OpeningHours{Day: "שני", IsOpen: false})
	assert.False(t, OpenNow(b, monday(12, 0)))
}

func TestOpenNowMissingDayEntry(t *testing.T) {
	b := hoursBusiness(models.OpeningHours{Day: "שלישי", IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"})
	assert.False(t, OpenNow(b, monday(12, 0)))
}

func TestOpenNowUsesFirstMatchingDayEntry(t *testing.T) {
	b := hoursBusiness(
		models.OpeningHours{Day: "שני", IsOpen: true, OpenTime: "09:00", CloseTime: "12:00"},
		models.OpeningHours{Day: "שני", IsOpen: true, OpenTime: "14:00", CloseTime: "18:00"},
	)
	assert.True(t, OpenNow(b, monday(10, 0)))
	assert.False(t, OpenNow(b, monday(15, 0)), "only the first entry per day is consulted")
}

func TestOpenNowUnparseableTimesReadAsMidnight(t *testing.T) {
	b := hoursBusiness(models.OpeningHours{Day: "שני", IsOpen: true, OpenTime: "bogus", CloseTime: "17:00"})
	assert.True(t, OpenNow(b, monday(8, 0)))

	b = hoursBusiness(models.OpeningHours{Day: "שני", IsOpen: true, OpenTime: "09:00", CloseTime: "bogus"})
	assert.False(t, OpenNow(b, monday(10, 0)))
}

func TestHourOf(t *testing.T) {
	assert.Equal(t, 9, hourOf("09:30"))
	assert.Equal(t, 18, hourOf("18:00"))
	assert.Equal(t, 0, hourOf("bogus"))
	assert.Equal(t, 0, hourOf(""))
}

func TestHHMM(t *testing.T) {
	assert.Equal(t, 930, hhmm("09:30"))
	assert.Equal(t, 1745, hhmm("17:45"))
	assert.Equal(t, 0, hhmm("bogus"))
}
