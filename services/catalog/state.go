package catalog

import (
	"strings"
	"sync"

	"dogspot/models"
)

// Snapshot is an immutable copy of the filter state at one point in time.
type Snapshot struct {
	Query            string               `json:"query"`
	Filters          models.FilterOptions `json:"filters"`
	SelectedCategory string               `json:"selectedCategory"`
	BusinessSort     string               `json:"businessSort"`
}

// State holds the current search string and filter configuration and
// notifies subscribers on every change. It replaces ad-hoc cross-component
// signaling with an explicit observer: mutators publish, feeds recompute.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
	subs []func(Snapshot)
}

// NewState returns a State with the unconstrained default configuration.
func NewState() *State {
	return &State{
		snap: Snapshot{
			Filters:      models.DefaultFilterOptions(),
			BusinessSort: "distance",
		},
	}
}

// Subscribe registers a callback invoked with a snapshot after every
// mutation. Callbacks run synchronously on the mutating goroutine.
func (s *State) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *State) SetQuery(query string) {
	s.mu.Lock()
	s.snap.Query = query
	s.mu.Unlock()
	s.publish()
}

func (s *State) SetFilters(filters models.FilterOptions) {
	s.mu.Lock()
	s.snap.Filters = filters
	s.mu.Unlock()
	s.publish()
}

func (s *State) SetSelectedCategory(category string) {
	s.mu.Lock()
	s.snap.SelectedCategory = category
	s.mu.Unlock()
	s.publish()
}

func (s *State) SetBusinessSort(sortBy string) {
	s.mu.Lock()
	s.snap.BusinessSort = sortBy
	s.mu.Unlock()
	s.publish()
}

// RemoveFilter clears a single filter chip. kind names the field; value
// selects the entry to drop from a multi-select field.
func (s *State) RemoveFilter(kind, value string) {
	s.mu.Lock()
	f := &s.snap.Filters
	switch kind {
	case "status":
		f.Availability = "all"
	case "neighborhood":
		f.Neighborhoods = removeValue(f.Neighborhoods, value)
	case "serviceType":
		f.ServiceTypes = removeValue(f.ServiceTypes, value)
	case "priceRange":
		f.PriceRange = [2]float64{0, models.MaxFeedPrice}
	case "dateFrom":
		f.DateFrom = ""
	case "dateTo":
		f.DateTo = ""
	case "timeOfDay":
		f.TimeOfDay = "all"
	case "rating":
		f.Rating = 0
	case "businessCategory":
		f.BusinessCategories = removeValue(f.BusinessCategories, value)
	case "dogSize":
		f.DogSizes = removeValue(f.DogSizes, value)
	}
	s.mu.Unlock()
	s.publish()
}

// ClearAll resets the query, the filters, and the category selector.
func (s *State) ClearAll() {
	s.mu.Lock()
	s.snap.Query = ""
	s.snap.Filters = models.DefaultFilterOptions()
	s.snap.SelectedCategory = ""
	s.mu.Unlock()
	s.publish()
}

// HasActiveFilters reports whether any filter or search constraint differs
// from the defaults.
func (s *State) HasActiveFilters() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f := s.snap.Filters
	return len(f.Neighborhoods) > 0 ||
		len(f.ServiceTypes) > 0 ||
		f.PriceRange[0] > 0 ||
		f.PriceRange[1] < models.MaxFeedPrice ||
		f.Rating > 0 ||
		f.Availability != "all" ||
		len(f.DogSizes) > 0 ||
		len(f.BusinessCategories) > 0 ||
		f.DateFrom != "" ||
		f.DateTo != "" ||
		f.TimeOfDay != "all" ||
		len(f.Experience) > 0 ||
		len(f.AvailableDays) > 0 ||
		strings.TrimSpace(s.snap.Query) != ""
}

func (s *State) publish() {
	s.mu.RLock()
	snap := s.snap
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(snap)
	}
}

func removeValue(values []string, v string) []string {
	out := make([]string, 0, len(values))
	for _, s := range values {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
