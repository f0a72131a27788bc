package models

// Feed price slider bounds. A range equal to [0, MaxFeedPrice] means the
// price filter is untouched.
const MaxFeedPrice = 500

// FilterOptions is the structured filter configuration shared by all three
// feeds. Multi-select fields are OR within the field and AND across fields;
// an empty selection means "no constraint".
type FilterOptions struct {
	Neighborhoods      []string   `json:"neighborhoods"`
	ServiceTypes       []string   `json:"serviceTypes"`
	PriceRange         [2]float64 `json:"priceRange"` // inclusive [min, max]
	Rating             float64    `json:"rating"`     // minimum rating, 0 = unconstrained
	Availability       string     `json:"availability"`
	DogSizes           []string   `json:"dogSize"`
	BusinessCategories []string   `json:"businessCategories"`
	DateFrom           string     `json:"dateFrom,omitempty"`  // "2006-01-02", inclusive
	DateTo             string     `json:"dateTo,omitempty"`    // "2006-01-02", inclusive
	TimeOfDay          string     `json:"timeOfDay,omitempty"` // "all", "morning", "afternoon" or "evening"
	SortBy             string     `json:"sortBy,omitempty"`
	Experience         []string   `json:"experience,omitempty"`
	AvailableDays      []string   `json:"availableDays,omitempty"`
}

// DefaultFilterOptions returns the unconstrained configuration every feed
// starts from.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Neighborhoods:      []string{},
		ServiceTypes:       []string{},
		PriceRange:         [2]float64{0, MaxFeedPrice},
		Rating:             0,
		Availability:       "all",
		DogSizes:           []string{},
		BusinessCategories: []string{},
		DateFrom:           "",
		DateTo:             "",
		TimeOfDay:          "all",
		SortBy:             "date_asc",
		Experience:         []string{},
		AvailableDays:      []string{},
	}
}
