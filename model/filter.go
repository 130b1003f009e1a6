package model

import (
	"strings"

	"gorm.io/gorm"
)

// ChiropractorFilter narrows a listing query. Zero-valued fields impose no constraint.
type ChiropractorFilter struct {
	City         string `json:"city"`
	Sport        string `json:"sport"`
	StudentOnly  bool   `json:"student_only"`
	EveningsOnly bool   `json:"evenings_only"`
}

// NewChiropractorFilter normalizes raw filter input: city is trimmed, sport is trimmed and lowercased.
func NewChiropractorFilter(city, sport string, studentOnly, eveningsOnly bool) ChiropractorFilter {
	return ChiropractorFilter{
		City:         strings.TrimSpace(city),
		Sport:        strings.ToLower(strings.TrimSpace(sport)),
		StudentOnly:  studentOnly,
		EveningsOnly: eveningsOnly,
	}
}

// IsEmpty reports whether the filter matches every record.
func (f ChiropractorFilter) IsEmpty() bool {
	return f.City == "" && f.Sport == "" && !f.StudentOnly && !f.EveningsOnly
}

// Apply adds the active constraints to query, ANDed together.
// Text matches are case-insensitive substring matches folded by the store on
// both sides; sport is matched against the raw comma-joined sports_focus
// column, not per token.
func (f ChiropractorFilter) Apply(query *gorm.DB) *gorm.DB {
	if city := strings.TrimSpace(f.City); city != "" {
		query = query.Where("LOWER(city) LIKE LOWER(?)", likePattern(city))
	}
	if sport := strings.TrimSpace(f.Sport); sport != "" {
		query = query.Where("LOWER(sports_focus) LIKE LOWER(?)", likePattern(sport))
	}
	if f.StudentOnly {
		query = query.Where("student_friendly = ?", true)
	}
	if f.EveningsOnly {
		query = query.Where("evening_hours = ?", true)
	}
	return query
}

func likePattern(s string) string {
	return "%" + s + "%"
}
