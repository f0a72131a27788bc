package catalog

import (
	"math"
	"sort"

	"dogspot/models"
)

// FilterAndSortBusinesses returns the businesses matching the query, filter
// configuration and the free-standing category selector. selectedCategory
// and the multi-select filters.BusinessCategories are independent filters
// and both must pass. sortBy is the businesses tab's own sort selector.
func FilterAndSortBusinesses(businesses []models.Business, query string, filters models.FilterOptions, selectedCategory, sortBy string) []models.Business {
	q := normalizeQuery(query)

	filtered := make([]models.Business, 0, len(businesses))
	for _, b := range businesses {
		if businessMatches(b, q, filters, selectedCategory) {
			filtered = append(filtered, b)
		}
	}

	sortBusinesses(filtered, sortBy)

	return filtered
}

func businessMatches(b models.Business, q string, f models.FilterOptions, selectedCategory string) bool {
	if q != "" && !businessSearchMatch(b, q) {
		return false
	}

	if len(f.Neighborhoods) > 0 && !containsString(f.Neighborhoods, b.Neighborhood) {
		return false
	}

	if len(f.BusinessCategories) > 0 && !containsString(f.BusinessCategories, b.Category) {
		return false
	}

	if selectedCategory != "" && b.Category != selectedCategory {
		return false
	}

	// Ceiling only, same asymmetry as the sitter pipeline.
	if maxBusinessPrice(b.Services) > f.PriceRange[1] {
		return false
	}

	if f.Rating > 0 && b.Rating < f.Rating {
		return false
	}

	return true
}

func businessSearchMatch(b models.Business, q string) bool {
	if fieldContains(b.Name, q) ||
		fieldContains(b.Neighborhood, q) ||
		fieldContains(b.Description, q) ||
		fieldContains(models.BusinessCategoryLabel(b.Category), q) {
		return true
	}
	for _, svc := range b.Services {
		if fieldContains(svc.Name, q) {
			return true
		}
	}
	return false
}

func sortBusinesses(businesses []models.Business, sortBy string) {
	switch sortBy {
	case "rating":
		sort.SliceStable(businesses, func(i, j int) bool {
			return businesses[i].Rating > businesses[j].Rating
		})
	case "price_low":
		sort.SliceStable(businesses, func(i, j int) bool {
			return minBusinessPrice(businesses[i].Services) < minBusinessPrice(businesses[j].Services)
		})
	case "price_high":
		sort.SliceStable(businesses, func(i, j int) bool {
			return maxBusinessPrice(businesses[i].Services) > maxBusinessPrice(businesses[j].Services)
		})
	case "newest":
		sort.SliceStable(businesses, func(i, j int) bool {
			return businesses[i].CreatedAt.After(businesses[j].CreatedAt)
		})
	default:
		// "distance" and anything else: keep the incoming order. No
		// geolocation is computed server-side.
	}
}

func maxBusinessPrice(services []models.BusinessService) float64 {
	max := math.Inf(-1)
	for _, s := range services {
		if s.Price > max {
			max = s.Price
		}
	}
	return max
}

func minBusinessPrice(services []models.BusinessService) float64 {
	min := math.Inf(1)
	for _, s := range services {
		if s.Price < min {
			min = s.Price
		}
	}
	return min
}
