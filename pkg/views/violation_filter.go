package views

import (
	"sort"
	"strings"
	"time"

	"github.com/capsule-admin/campaign-governance-service/pkg/constants"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
)

// ViolationFilter is the filter input of the violation dashboard. All
// predicates compose with logical AND; empty inputs pass everything.
type ViolationFilter struct {
	Platform string // exact match, or the "All" sentinel
	User     string // case-insensitive substring of the record's user id
	Search   string // case-insensitive substring across every field
}

// Apply derives the filtered, reverse-chronological view over violations.
// It is a pure function of its inputs and is recomputed wholesale on every
// change; ties on timestamp retain their relative order.
func (f ViolationFilter) Apply(violations []models.Violation) []models.Violation {

	filtered := make([]models.Violation, 0, len(violations))
	for _, violation := range violations {
		if f.matches(violation) {
			filtered = append(filtered, violation)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return parseTimestamp(filtered[i].Timestamp).After(parseTimestamp(filtered[j].Timestamp))
	})

	return filtered
}

func (f ViolationFilter) matches(violation models.Violation) bool {
	return f.matchesPlatform(violation) && f.matchesUser(violation) && f.matchesSearch(violation)
}

func (f ViolationFilter) matchesPlatform(violation models.Violation) bool {
	if f.Platform == "" || f.Platform == constants.PlatformAll {
		return true
	}
	return violation.Platform == f.Platform
}

// A record without a user id never matches a non-empty user filter.
func (f ViolationFilter) matchesUser(violation models.Violation) bool {
	if f.User == "" {
		return true
	}
	if violation.UserId == "" {
		return false
	}
	return strings.Contains(strings.ToLower(violation.UserId), strings.ToLower(f.User))
}

func (f ViolationFilter) matchesSearch(violation models.Violation) bool {
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	for _, value := range violation.FieldValues() {
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}

// parseTimestamp tolerates unparseable timestamps by sorting them last.
func parseTimestamp(timestamp string) time.Time {
	parsed, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
