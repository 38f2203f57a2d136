package models

import (
	apperrors "country-catalog/core/errors"
)

// Filter narrows a catalog listing. Empty fields match everything.
type Filter struct {
	Region   string `json:"region,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// Sort selects the ordering of a catalog listing.
type Sort string

const (
	SortNone     Sort = ""
	SortGDPDesc  Sort = "gdp_desc"
	SortGDPAsc   Sort = "gdp_asc"
	SortNameAsc  Sort = "name_asc"
	SortNameDesc Sort = "name_desc"
)

// ParseSort validates a sort key coming from a query string or flag.
func ParseSort(value string) (Sort, error) {
	switch s := Sort(value); s {
	case SortNone, SortGDPDesc, SortGDPAsc, SortNameAsc, SortNameDesc:
		return s, nil
	default:
		return SortNone, apperrors.NewValidationError("sort", value, "must be one of gdp_desc, gdp_asc, name_asc, name_desc")
	}
}

// OrderClause returns the SQL ORDER BY expression, or "" for SortNone.
func (s Sort) OrderClause() string {
	switch s {
	case SortGDPDesc:
		return "estimated_gdp DESC"
	case SortGDPAsc:
		return "estimated_gdp ASC"
	case SortNameAsc:
		return "name ASC"
	case SortNameDesc:
		return "name DESC"
	default:
		return ""
	}
}
