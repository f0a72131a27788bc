package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"dogspot/models"

	"github.com/gin-gonic/gin"
)

// parseFilterOptions builds a FilterOptions from feed query parameters.
// Multi-select fields are comma-separated. Unset parameters keep their
// defaults; a price range with min above max is rejected here so the
// pipelines never see one.
func parseFilterOptions(c *gin.Context) (models.FilterOptions, error) {
	f := models.DefaultFilterOptions()

	f.Neighborhoods = splitParam(c.Query("neighborhoods"))
	f.ServiceTypes = splitParam(c.Query("service_types"))
	f.DogSizes = splitParam(c.Query("dog_sizes"))
	f.BusinessCategories = splitParam(c.Query("business_categories"))
	f.Experience = splitParam(c.Query("experience"))
	f.AvailableDays = splitParam(c.Query("days"))

	if v := c.Query("price_min"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("invalid price_min %q", v)
		}
		f.PriceRange[0] = n
	}
	if v := c.Query("price_max"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("invalid price_max %q", v)
		}
		f.PriceRange[1] = n
	}
	if f.PriceRange[0] > f.PriceRange[1] {
		return f, fmt.Errorf("price_min must not exceed price_max")
	}

	if v := c.Query("rating"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("invalid rating %q", v)
		}
		f.Rating = n
	}

	if v := c.Query("availability"); v != "" {
		f.Availability = v
	}
	if v := c.Query("date_from"); v != "" {
		f.DateFrom = v
	}
	if v := c.Query("date_to"); v != "" {
		f.DateTo = v
	}
	if v := c.Query("time_of_day"); v != "" {
		f.TimeOfDay = v
	}
	if v := c.Query("sort"); v != "" {
		f.SortBy = v
	}

	return f, nil
}

func splitParam(v string) []string {
	if v == "" {
		return []string{}
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
