// Package profile defines the candidate and job posting documents consumed by
// the matching and salary engines, and decodes them from raw JSON documents.
package profile

import (
	"sort"
	"strings"
)

type SalaryRange struct {
	Min float64 `json:"min" mapstructure:"min"`
	Max float64 `json:"max" mapstructure:"max"`
}

// Mid returns the midpoint of the range.
func (r SalaryRange) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Valid reports whether the range is usable: positive and ordered.
func (r *SalaryRange) Valid() bool {
	return r != nil && r.Max > 0 && r.Min >= 0 && r.Min <= r.Max
}

type PersonalInfo struct {
	Name     string `json:"name,omitempty" mapstructure:"name"`
	Email    string `json:"email,omitempty" mapstructure:"email"`
	Location string `json:"location,omitempty" mapstructure:"location"`
}

type WorkEntry struct {
	Company  string `json:"company,omitempty" mapstructure:"company"`
	Position string `json:"position,omitempty" mapstructure:"position"`
	Start    string `json:"start,omitempty" mapstructure:"start"`
	End      string `json:"end,omitempty" mapstructure:"end"`
	Duration string `json:"duration,omitempty" mapstructure:"duration"`
}

type EducationEntry struct {
	Degree      string `json:"degree,omitempty" mapstructure:"degree"`
	Field       string `json:"field,omitempty" mapstructure:"field"`
	Institution string `json:"institution,omitempty" mapstructure:"institution"`
	Year        string `json:"year,omitempty" mapstructure:"year"`
}

// ResumeProfile is a parsed CV. Skills maps a category name to its tokens.
type ResumeProfile struct {
	PersonalInfo   PersonalInfo        `json:"personal_info" mapstructure:"personal_info"`
	Skills         map[string][]string `json:"skills,omitempty" mapstructure:"skills"`
	Experience     []WorkEntry         `json:"experience,omitempty" mapstructure:"experience"`
	Education      []EducationEntry    `json:"education,omitempty" mapstructure:"education"`
	Languages      []string            `json:"languages,omitempty" mapstructure:"languages"`
	Summary        string              `json:"summary,omitempty" mapstructure:"summary"`
	ExpectedSalary *SalaryRange        `json:"expected_salary,omitempty" mapstructure:"expected_salary"`
}

// SkillSet returns every skill token of the resume, lowercased and trimmed.
func (r ResumeProfile) SkillSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, tokens := range r.Skills {
		for _, token := range tokens {
			token = strings.ToLower(strings.TrimSpace(token))
			if token != "" {
				set[token] = struct{}{}
			}
		}
	}
	return set
}

// SkillTokens returns SkillSet as a sorted slice.
func (r ResumeProfile) SkillTokens() []string {
	set := r.SkillSet()
	tokens := make([]string, 0, len(set))
	for token := range set {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

func (r ResumeProfile) Location() string {
	return strings.TrimSpace(r.PersonalInfo.Location)
}

type JobPosting struct {
	ID          string       `json:"id,omitempty" mapstructure:"id"`
	Title       string       `json:"title,omitempty" mapstructure:"title"`
	Company     string       `json:"company,omitempty" mapstructure:"company"`
	Location    string       `json:"location,omitempty" mapstructure:"location"`
	Description string       `json:"description,omitempty" mapstructure:"description"`
	SalaryRange *SalaryRange `json:"salary_range,omitempty" mapstructure:"salary_range"`
}

// Text returns the title and description joined for keyword scanning.
func (j JobPosting) Text() string {
	return j.Title + " " + j.Description
}

// IsEmpty reports whether the posting carries neither a title nor a description.
func (j JobPosting) IsEmpty() bool {
	return strings.TrimSpace(j.Title) == "" && strings.TrimSpace(j.Description) == ""
}

type JobPostings struct {
	Items []JobPosting
}

func (p *JobPostings) Len() int {
	return len(p.Items)
}

func (p *JobPostings) FindByID(id string) (JobPosting, bool) {
	for _, job := range p.Items {
		if job.ID == id {
			return job, true
		}
	}
	return JobPosting{}, false
}

func (p *JobPostings) IDs() []string {
	ids := make([]string, 0, len(p.Items))
	for _, job := range p.Items {
		ids = append(ids, job.ID)
	}
	return ids
}
