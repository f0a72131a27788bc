package catalog

import (
	"sort"
	"time"

	"dogspot/models"
)

// FilterAndSortRequests returns the requests matching the query and filter
// configuration, sorted by the configured key, with the caller's own
// requests moved to the front. The input slice is left untouched.
func FilterAndSortRequests(requests []models.Request, query string, filters models.FilterOptions, currentUserID string) []models.Request {
	q := normalizeQuery(query)

	filtered := make([]models.Request, 0, len(requests))
	for _, r := range requests {
		if requestMatches(r, q, filters) {
			filtered = append(filtered, r)
		}
	}

	sortRequests(filtered, filters.SortBy)

	// Stable partition: the caller's requests first, both groups keeping
	// their sorted order.
	mine := make([]models.Request, 0, len(filtered))
	others := make([]models.Request, 0, len(filtered))
	for _, r := range filtered {
		if currentUserID != "" && r.ClientID == currentUserID {
			mine = append(mine, r)
		} else {
			others = append(others, r)
		}
	}
	return append(mine, others...)
}

func requestMatches(r models.Request, q string, f models.FilterOptions) bool {
	if q != "" && !requestSearchMatch(r, q) {
		return false
	}

	// Date bounds compare calendar dates; the request's time of day is not
	// part of the comparison. An unparseable bound is ignored.
	if f.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", f.DateFrom); err == nil {
			if calendarDate(r.Date).Before(from) {
				return false
			}
		}
	}
	if f.DateTo != "" {
		if to, err := time.Parse("2006-01-02", f.DateTo); err == nil {
			if calendarDate(r.Date).After(to) {
				return false
			}
		}
	}

	if len(f.Neighborhoods) > 0 && !containsString(f.Neighborhoods, r.Neighborhood) {
		return false
	}

	if r.OfferedPrice < f.PriceRange[0] || r.OfferedPrice > f.PriceRange[1] {
		return false
	}

	if len(f.AvailableDays) > 0 {
		day := models.HebrewWeekdays[r.Date.Weekday()]
		if !containsString(f.AvailableDays, day) {
			return false
		}
	}

	// Single-point test on the request's hour. Distinct from the sitter
	// pipeline's range-overlap test; the two are specified separately.
	if f.TimeOfDay != "" && f.TimeOfDay != TimeOfDayAll {
		hour := hourOf(r.Time)
		switch f.TimeOfDay {
		case TimeOfDayMorning:
			if hour < 6 || hour >= 12 {
				return false
			}
		case TimeOfDayAfternoon:
			if hour < 12 || hour >= 18 {
				return false
			}
		case TimeOfDayEvening:
			if hour < 18 || hour >= 22 {
				return false
			}
		}
	}

	return true
}

func requestSearchMatch(r models.Request, q string) bool {
	if fieldContains(r.Client.Name, q) ||
		fieldContains(r.Neighborhood, q) ||
		fieldContains(r.Dog.Name, q) ||
		fieldContains(r.ServiceType, q) ||
		fieldContains(r.Dog.Breed, q) {
		return true
	}
	if r.SpecialInstructions != "" && fieldContains(r.SpecialInstructions, q) {
		return true
	}
	if fieldContains(models.StatusLabel(r.Status), q) {
		return true
	}
	if label, ok := models.ServiceTypes[r.ServiceType]; ok && fieldContains(label, q) {
		return true
	}
	return false
}

func sortRequests(requests []models.Request, sortBy string) {
	switch sortBy {
	case "date_desc":
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].Date.After(requests[j].Date)
		})
	case "price_low":
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].OfferedPrice < requests[j].OfferedPrice
		})
	case "price_high":
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].OfferedPrice > requests[j].OfferedPrice
		})
	case "created_desc":
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		})
	case "created_asc":
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].CreatedAt.Before(requests[j].CreatedAt)
		})
	default: // date_asc
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].Date.Before(requests[j].Date)
		})
	}
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
