package catalog

import (
	"math"
	"sort"

	"dogspot/models"
)

// FilterAndSortSitters returns the sitters matching the query and filter
// configuration, sorted by the configured key. When the caller is a sitter,
// their own profile is moved to the front before the comparator sort runs;
// sort stability preserves that relocation on ties only.
func FilterAndSortSitters(sitters []models.Sitter, query string, filters models.FilterOptions, currentUser *models.CurrentUser) []models.Sitter {
	q := normalizeQuery(query)

	filtered := make([]models.Sitter, 0, len(sitters))
	for _, s := range sitters {
		if sitterMatches(s, q, filters) {
			filtered = append(filtered, s)
		}
	}

	if currentUser != nil && currentUser.UserType == "sitter" {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ID == currentUser.ID && filtered[j].ID != currentUser.ID
		})
	}

	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = "rating_desc"
	}
	sortSitters(filtered, sortBy)

	return filtered
}

func sitterMatches(s models.Sitter, q string, f models.FilterOptions) bool {
	if q != "" && !sitterSearchMatch(s, q) {
		return false
	}

	if len(f.Neighborhoods) > 0 {
		served := false
		for _, n := range f.Neighborhoods {
			if containsString(s.Neighborhoods, n) {
				served = true
				break
			}
		}
		if !served {
			return false
		}
	}

	if len(f.ServiceTypes) > 0 {
		offered := false
		for _, t := range f.ServiceTypes {
			for _, svc := range s.Services {
				if svc.Type == t {
					offered = true
					break
				}
			}
		}
		if !offered {
			return false
		}
	}

	// Ceiling only: a sitter with no priced service below the floor still
	// passes. A sitter with no services at all passes too.
	if maxSitterPrice(s.Services) > f.PriceRange[1] {
		return false
	}

	if f.Rating > 0 && s.Rating < f.Rating {
		return false
	}

	if len(f.Experience) > 0 && !containsString(f.Experience, s.Experience) {
		return false
	}

	if len(f.AvailableDays) > 0 {
		days := make([]string, 0, len(s.Availability))
		for _, slot := range s.Availability {
			days = append(days, slot.Day)
		}
		match := false
		for _, d := range f.AvailableDays {
			if containsString(days, d) {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}

	// Range-overlap test with inclusive bounds on both ends. A sitter with
	// no availability list at all is not filtered; one with an empty list
	// is. Kept separate from the request pipeline's single-point test.
	if f.TimeOfDay != "" && f.TimeOfDay != TimeOfDayAll && s.Availability != nil {
		match := false
		for _, slot := range s.Availability {
			start := hourOf(slot.StartTime)
			end := hourOf(slot.EndTime)
			switch f.TimeOfDay {
			case TimeOfDayMorning:
				if start <= 12 && end >= 6 {
					match = true
				}
			case TimeOfDayAfternoon:
				if start <= 18 && end >= 12 {
					match = true
				}
			case TimeOfDayEvening:
				if start <= 22 && end >= 18 {
					match = true
				}
			default:
				match = true
			}
			if match {
				break
			}
		}
		if !match {
			return false
		}
	}

	return true
}

func sitterSearchMatch(s models.Sitter, q string) bool {
	if fieldContains(s.Name, q) || fieldContains(s.Description, q) {
		return true
	}
	for _, n := range s.Neighborhoods {
		if fieldContains(n, q) {
			return true
		}
	}
	for _, svc := range s.Services {
		if label, ok := models.ServiceTypes[svc.Type]; ok && fieldContains(label, q) {
			return true
		}
	}
	return false
}

func sortSitters(sitters []models.Sitter, sortBy string) {
	switch sortBy {
	case "rating_asc":
		sort.SliceStable(sitters, func(i, j int) bool {
			return sitters[i].Rating < sitters[j].Rating
		})
	case "price_low":
		sort.SliceStable(sitters, func(i, j int) bool {
			return minSitterPrice(sitters[i].Services) < minSitterPrice(sitters[j].Services)
		})
	case "price_high":
		sort.SliceStable(sitters, func(i, j int) bool {
			return maxSitterPrice(sitters[i].Services) > maxSitterPrice(sitters[j].Services)
		})
	case "experience_desc":
		sort.SliceStable(sitters, func(i, j int) bool {
			return models.ExperienceRank[sitters[i].Experience] > models.ExperienceRank[sitters[j].Experience]
		})
	case "experience_asc":
		sort.SliceStable(sitters, func(i, j int) bool {
			return models.ExperienceRank[sitters[i].Experience] < models.ExperienceRank[sitters[j].Experience]
		})
	case "reviews_desc":
		sort.SliceStable(sitters, func(i, j int) bool {
			return sitters[i].ReviewCount > sitters[j].ReviewCount
		})
	case "newest":
		sort.SliceStable(sitters, func(i, j int) bool {
			return sitters[i].CreatedAt.After(sitters[j].CreatedAt)
		})
	default: // rating_desc
		sort.SliceStable(sitters, func(i, j int) bool {
			return sitters[i].Rating > sitters[j].Rating
		})
	}
}

// maxSitterPrice is -Inf for an empty service list, so the price ceiling
// never excludes sitters with no priced services.
func maxSitterPrice(services []models.SitterService) float64 {
	max := math.Inf(-1)
	for _, s := range services {
		if s.Price > max {
			max = s.Price
		}
	}
	return max
}

// minSitterPrice is +Inf for an empty service list, sorting such sitters
// last under price_low.
func minSitterPrice(services []models.SitterService) float64 {
	min := math.Inf(1)
	for _, s := range services {
		if s.Price < min {
			min = s.Price
		}
	}
	return min
}
