package matching

import (
	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

// RequirementSet maps a skill category to the vocabulary tokens a posting
// mentions. Tokens keep vocabulary order.
type RequirementSet map[string][]string

func (r RequirementSet) IsEmpty() bool {
	for _, tokens := range r {
		if len(tokens) > 0 {
			return false
		}
	}
	return true
}

// Len returns the number of required tokens over all categories.
func (r RequirementSet) Len() int {
	n := 0
	for _, tokens := range r {
		n += len(tokens)
	}
	return n
}

// Requirements extracts the skill requirements of a posting from its title
// and description.
func (e *Engine) Requirements(job profile.JobPosting) RequirementSet {
	return e.extract(e.tables, job)
}

func extractRequirements(tables vocabulary.Tables, job profile.JobPosting) RequirementSet {
	text := vocabulary.Normalize(job.Text())
	set := make(RequirementSet)
	for _, category := range tables.SkillCategories {
		var found []string
		for _, token := range category.Tokens {
			if tables.Contains(text, token) {
				found = append(found, token)
			}
		}
		if len(found) > 0 {
			set[category.Name] = found
		}
	}
	return set
}
