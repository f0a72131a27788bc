package catalog

import (
	"strconv"
	"strings"
	"time"

	"dogspot/models"
)

// OpenNow reports whether the business is open at the given wall-clock
// time. It is a pure function of now and must be re-evaluated per render,
// never cached. A missing weekday entry or a closed day reads as closed.
func OpenNow(b models.Business, now time.Time) bool {
	today := models.HebrewWeekdays[now.Weekday()]
	current := now.Hour()*100 + now.Minute()

	for _, h := range b.OpeningHours {
		if h.Day != today {
			continue
		}
		if !h.IsOpen {
			return false
		}
		open := hhmm(h.OpenTime)
		close := hhmm(h.CloseTime)
		return current >= open && current <= close
	}
	return false
}

// hhmm turns "HH:MM" into a zero-padded 24-hour integer ("09:30" -> 930).
// Unparseable input reads as 0.
func hhmm(t string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(t, ":", ""))
	if err != nil {
		return 0
	}
	return n
}
