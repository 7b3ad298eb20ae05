// internal/screens/search/filter.go
package search

import (
	"strconv"

	"helper-directory/internal/models"
)

// Matches reports whether the profile satisfies every set criterion. An
// unset criterion always contributes true, so empty criteria accept every
// profile. All comparisons are exact: enum and string fields by equality,
// age by comparing the entered text against the profile age verbatim.
func Matches(profile models.HelperProfile, criteria models.SearchCriteria) bool {
	if criteria.Country != "" && profile.Country != criteria.Country {
		return false
	}
	if criteria.State != "" && profile.State != criteria.State {
		return false
	}
	if criteria.City != "" && profile.City != criteria.City {
		return false
	}
	if criteria.FarmingType != "" && profile.FarmingType != criteria.FarmingType {
		return false
	}
	if criteria.Wages != "" && profile.Wages != criteria.Wages {
		return false
	}
	if criteria.Age != "" && strconv.Itoa(profile.Age) != criteria.Age {
		return false
	}
	return true
}

// Filter applies Matches to every candidate, preserving fetch order.
func Filter(candidates []models.HelperProfile, criteria models.SearchCriteria) []models.HelperProfile {
	matched := make([]models.HelperProfile, 0, len(candidates))
	for _, p := range candidates {
		if Matches(p, criteria) {
			matched = append(matched, p)
		}
	}
	return matched
}
