// Package catalog implements the feed pipelines: pure, synchronous
// filter/search/sort passes over the request, sitter and business
// collections. The functions never mutate their inputs and never return
// errors; a malformed field on a single entity simply fails (or skips) the
// predicate that reads it.
package catalog

import (
	"strconv"
	"strings"
)

// Time-of-day buckets, by hour: morning [6,12), afternoon [12,18),
// evening [18,22).
const (
	TimeOfDayAll       = "all"
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
)

// normalizeQuery trims and lowercases a search query. Matching is plain
// substring containment on lowercased fields.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func fieldContains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// hourOf parses the hour out of an "HH:MM" string. Unparseable input
// yields 0, which falls outside every bucket.
func hourOf(t string) int {
	h, err := strconv.Atoi(strings.SplitN(t, ":", 2)[0])
	if err != nil {
		return 0
	}
	return h
}
