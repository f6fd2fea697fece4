// Package degree maps free-text education signals onto the degree ladder.
package degree

import (
	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

// Parse returns the highest degree mentioned in text, or DegreeNone.
func Parse(tables vocabulary.Tables, text string) string {
	best := vocabulary.DegreeNone
	for _, dk := range tables.DegreeKeywords {
		if vocabulary.DegreeRank(dk.Degree) <= vocabulary.DegreeRank(best) {
			continue
		}
		if tables.ContainsAny(text, dk.Keywords) {
			best = dk.Degree
		}
	}
	return best
}

// Highest returns the best degree across all education entries.
func Highest(tables vocabulary.Tables, entries []profile.EducationEntry) string {
	best := vocabulary.DegreeNone
	for _, entry := range entries {
		d := Parse(tables, entry.Degree)
		if vocabulary.DegreeRank(d) > vocabulary.DegreeRank(best) {
			best = d
		}
	}
	return best
}

// Required infers the minimum degree a posting asks for: the lowest degree
// it mentions, none when it states no degree is needed, and the table
// default otherwise.
func Required(tables vocabulary.Tables, job profile.JobPosting) string {
	text := job.Text()
	if tables.ContainsAny(text, tables.NoDegreePhrases) {
		return vocabulary.DegreeNone
	}

	required := ""
	for _, dk := range tables.DegreeKeywords {
		if !tables.ContainsAny(text, dk.Keywords) {
			continue
		}
		if required == "" || vocabulary.DegreeRank(dk.Degree) < vocabulary.DegreeRank(required) {
			required = dk.Degree
		}
	}

	if required == "" {
		return tables.DefaultDegree
	}
	return required
}
