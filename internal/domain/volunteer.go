package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VolunteerRegistration carries one volunteer sign-up submission.
type VolunteerRegistration struct {
	Name   string
	Email  string
	Phone  string
	Skills []string
}

// NormalizedSkills returns the submission's skills titlecased, trimmed and
// deduplicated, preserving first-seen order.
func (r VolunteerRegistration) NormalizedSkills() []string {
	seen := make(map[string]struct{}, len(r.Skills))
	out := make([]string, 0, len(r.Skills))
	for _, raw := range r.Skills {
		skill := NormalizeSkill(raw)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}

// NormalizeSkill canonicalizes a skill label so "gardening" and "Gardening"
// land on the same association row.
func NormalizeSkill(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

// VolunteerSummary is one roster row: contact and skill collections are
// comma-delimited, deduplicated and order-insensitive; hour totals cover all
// event participations. Volunteers with equal total hours come back in
// whatever order the store returns them.
type VolunteerSummary struct {
	ID          int64
	Name        string
	Skills      string
	Emails      string
	Phones      string
	EventsCount int64
	TotalHours  float64
}
