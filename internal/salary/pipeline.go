package salary

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/remote-matcher/internal/degree"
	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

// Step names.
const (
	StepLocation     = "location"
	StepSkillPremium = "skill_premium"
	StepIndustry     = "industry"
	StepEducation    = "education"
)

// Step represents a single multiplicative adjustment of the base salary.
type Step interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Apply(in Input) Factor
}

// Input aggregates what every step may look at.
type Input struct {
	Tables vocabulary.Tables
	Resume profile.ResumeProfile
	Job    profile.JobPosting
}

// Factor describes the result of executing a step.
type Factor struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Reason string  `json:"reason,omitempty"`
}

// Status represents runtime information about a step.
type Status struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Reason  string `json:"reason,omitempty"`
}

// DefaultSteps returns fresh instances of the stock pipeline in execution order.
func DefaultSteps() []Step {
	return []Step{
		&locationStep{},
		&skillPremiumStep{},
		&industryStep{},
		&educationStep{},
	}
}

// DisableByName marks a step with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Step, name, reason string) bool {
	found := false
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
			found = true
		}
	}
	return found
}

// Run executes the enabled steps in order and returns the combined multiplier
// along with the factor each step contributed.
func Run(logger *zap.Logger, steps []Step, in Input) (float64, []Factor) {
	multiplier := 1.0
	factors := make([]Factor, 0, len(steps))

	for _, step := range steps {
		if !step.IsEnabled() {
			logger.Debug("salary step disabled", zap.String("name", step.Name()))
			continue
		}

		factor := step.Apply(in)
		multiplier *= factor.Value
		factors = append(factors, factor)

		logger.Debug("salary step",
			zap.String("name", factor.Name),
			zap.Float64("factor", factor.Value),
			zap.String("reason", factor.Reason),
			zap.Float64("multiplier", multiplier),
		)
	}

	return multiplier, factors
}

// Describe returns status entries for the provided steps.
func Describe(steps []Step) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		status := Status{Name: step.Name(), Enabled: step.IsEnabled()}
		if r, ok := step.(interface{ DisabledReason() string }); ok {
			status.Reason = r.DisabledReason()
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// toggle is embedded by every stock step.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

func (t *toggle) DisabledReason() string { return t.reason }

type locationStep struct{ toggle }

func (s *locationStep) Name() string { return StepLocation }

// Apply uses the job location, falling back to the candidate's.
func (s *locationStep) Apply(in Input) Factor {
	location := in.Job.Location
	if vocabulary.Normalize(location) == "" {
		location = in.Resume.Location()
	}

	if keyword, ok := in.Tables.FirstIn(location, in.Tables.RemoteKeywords); ok {
		return Factor{Name: s.Name(), Value: in.Tables.RemoteMultiplier, Reason: keyword}
	}

	for _, m := range in.Tables.LocationMultipliers {
		if in.Tables.Contains(location, m.Key) {
			return Factor{Name: s.Name(), Value: m.Value, Reason: m.Key}
		}
	}

	return Factor{Name: s.Name(), Value: 1}
}

type skillPremiumStep struct{ toggle }

func (s *skillPremiumStep) Name() string { return StepSkillPremium }

// Apply multiplies the premium of every premium skill the candidate lists,
// capped by the table maximum.
func (s *skillPremiumStep) Apply(in Input) Factor {
	tokens := in.Resume.SkillTokens()

	premium := 1.0
	var hits []string
	for _, m := range in.Tables.PremiumSkills {
		for _, token := range tokens {
			if in.Tables.Contains(token, m.Key) {
				premium *= m.Value
				hits = append(hits, m.Key)
				break
			}
		}
	}

	reason := strings.Join(hits, ",")
	if limit := in.Tables.MaxSkillPremium; limit > 0 && premium > limit {
		premium = limit
		reason += " (capped)"
	}

	return Factor{Name: s.Name(), Value: premium, Reason: reason}
}

type industryStep struct{ toggle }

func (s *industryStep) Name() string { return StepIndustry }

func (s *industryStep) Apply(in Input) Factor {
	text := in.Job.Company + " " + in.Job.Title + " " + in.Job.Description
	for _, m := range in.Tables.IndustryMultipliers {
		if in.Tables.Contains(text, m.Key) {
			return Factor{Name: s.Name(), Value: m.Value, Reason: m.Key}
		}
	}
	return Factor{Name: s.Name(), Value: 1}
}

type educationStep struct{ toggle }

func (s *educationStep) Name() string { return StepEducation }

func (s *educationStep) Apply(in Input) Factor {
	d := degree.Highest(in.Tables, in.Resume.Education)
	value, ok := in.Tables.EducationMultipliers[d]
	if !ok {
		value = 1
	}
	return Factor{Name: s.Name(), Value: value, Reason: d}
}
