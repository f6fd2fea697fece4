// Package vocabulary holds the static tables the matching and salary engines
// are configured with: skill vocabularies, level keywords, regions, degree
// keywords, base salaries and multipliers.
package vocabulary

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// MatchMode controls how keywords are located inside free text.
type MatchMode string

const (
	// MatchWord requires the keyword to be delimited by non-alphanumeric runes.
	MatchWord MatchMode = "word"
	// MatchSubstring accepts any occurrence, so "java" matches "javascript".
	MatchSubstring MatchMode = "substring"
)

// Level names. The order of Levels is the seniority ladder.
const (
	LevelEntry   = "entry"
	LevelJunior  = "junior"
	LevelMid     = "mid"
	LevelSenior  = "senior"
	LevelLead    = "lead"
	LevelManager = "manager"
)

// Levels lists the ladder from the least to the most senior level.
var Levels = []string{LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelLead, LevelManager}

// Degree names. The order of Degrees is the rank ladder.
const (
	DegreeNone      = "none"
	DegreeAssociate = "associate"
	DegreeBachelor  = "bachelor"
	DegreeMaster    = "master"
	DegreeDoctorate = "doctorate"
)

// Degrees lists the ladder from no degree to doctorate.
var Degrees = []string{DegreeNone, DegreeAssociate, DegreeBachelor, DegreeMaster, DegreeDoctorate}

type SkillCategory struct {
	Name   string   `mapstructure:"name" json:"name"`
	Weight float64  `mapstructure:"weight" json:"weight"`
	Tokens []string `mapstructure:"tokens" json:"tokens"`
}

type LevelKeywords struct {
	Level    string   `mapstructure:"level" json:"level"`
	Keywords []string `mapstructure:"keywords" json:"keywords"`
}

type Region struct {
	Name      string   `mapstructure:"name" json:"name"`
	Locations []string `mapstructure:"locations" json:"locations"`
}

type DegreeKeywords struct {
	Degree   string   `mapstructure:"degree" json:"degree"`
	Keywords []string `mapstructure:"keywords" json:"keywords"`
}

// Multiplier is a keyword keyed salary adjustment.
type Multiplier struct {
	Key   string  `mapstructure:"key" json:"key"`
	Value float64 `mapstructure:"value" json:"value"`
}

type SalaryBand struct {
	Min float64 `mapstructure:"min" json:"min"`
	Max float64 `mapstructure:"max" json:"max"`
	Avg float64 `mapstructure:"avg" json:"avg"`
}

// ScoreWeights distributes the overall score over the five dimensions.
type ScoreWeights struct {
	Skill      float64 `mapstructure:"skill" json:"skill"`
	Experience float64 `mapstructure:"experience" json:"experience"`
	Location   float64 `mapstructure:"location" json:"location"`
	Education  float64 `mapstructure:"education" json:"education"`
	Salary     float64 `mapstructure:"salary" json:"salary"`
}

func (w ScoreWeights) Sum() float64 {
	return w.Skill + w.Experience + w.Location + w.Education + w.Salary
}

type ConfidenceWeights struct {
	Base       float64 `mapstructure:"base" json:"base"`
	Experience float64 `mapstructure:"experience" json:"experience"`
	Skills     float64 `mapstructure:"skills" json:"skills"`
	Education  float64 `mapstructure:"education" json:"education"`
	Location   float64 `mapstructure:"location" json:"location"`
}

// LevelDistance holds experience scores indexed by level distance.
// Index 0 is an exact match; the last entry applies to any larger distance.
type LevelDistance struct {
	Over  []float64 `mapstructure:"over" json:"over"`
	Under []float64 `mapstructure:"under" json:"under"`
}

type LocationScores struct {
	Missing  float64 `mapstructure:"missing" json:"missing"`
	Remote   float64 `mapstructure:"remote" json:"remote"`
	Exact    float64 `mapstructure:"exact" json:"exact"`
	Region   float64 `mapstructure:"region" json:"region"`
	Mismatch float64 `mapstructure:"mismatch" json:"mismatch"`
}

// Tables is the full engine configuration. Treat it as an immutable value:
// engines keep a Clone of what they were constructed with.
type Tables struct {
	MatchMode MatchMode `mapstructure:"match-mode" json:"match_mode"`

	SkillCategories []SkillCategory  `mapstructure:"skill-categories" json:"skill_categories"`
	LevelKeywords   []LevelKeywords  `mapstructure:"level-keywords" json:"level_keywords"`
	RemoteKeywords  []string         `mapstructure:"remote-keywords" json:"remote_keywords"`
	Regions         []Region         `mapstructure:"regions" json:"regions"`
	DegreeKeywords  []DegreeKeywords `mapstructure:"degree-keywords" json:"degree_keywords"`
	NoDegreePhrases []string         `mapstructure:"no-degree-phrases" json:"no_degree_phrases"`
	DefaultDegree   string           `mapstructure:"default-degree" json:"default_degree"`
	DefaultLevel    string           `mapstructure:"default-level" json:"default_level"`

	Weights         ScoreWeights      `mapstructure:"weights" json:"weights"`
	Confidence      ConfidenceWeights `mapstructure:"confidence" json:"confidence"`
	LevelDistance   LevelDistance     `mapstructure:"level-distance" json:"level_distance"`
	LocationScores  LocationScores    `mapstructure:"location-scores" json:"location_scores"`
	NeutralScore    float64           `mapstructure:"neutral-score" json:"neutral_score"`
	ExperienceFloor float64           `mapstructure:"experience-floor" json:"experience_floor"`

	BaseSalaries         map[string]SalaryBand `mapstructure:"base-salaries" json:"base_salaries"`
	LocationMultipliers  []Multiplier          `mapstructure:"location-multipliers" json:"location_multipliers"`
	RemoteMultiplier     float64               `mapstructure:"remote-multiplier" json:"remote_multiplier"`
	PremiumSkills        []Multiplier          `mapstructure:"premium-skills" json:"premium_skills"`
	MaxSkillPremium      float64               `mapstructure:"max-skill-premium" json:"max_skill_premium"`
	IndustryMultipliers  []Multiplier          `mapstructure:"industry-multipliers" json:"industry_multipliers"`
	EducationMultipliers map[string]float64    `mapstructure:"education-multipliers" json:"education_multipliers"`

	TopCompanies int `mapstructure:"top-companies" json:"top_companies"`
}

var (
	ErrInvalidWeights = errors.New("score weights must sum to 1")
	ErrUnknownLevel   = errors.New("unknown level")
	ErrUnknownDegree  = errors.New("unknown degree")

	ErrInvalidMultiplier = errors.New("multiplier must be positive")
)

const weightTolerance = 1e-6

// Validate reports the first inconsistency found in the tables.
func (t Tables) Validate() error {
	switch t.MatchMode {
	case MatchWord, MatchSubstring:
	default:
		return fmt.Errorf("match mode %q: must be %q or %q", t.MatchMode, MatchWord, MatchSubstring)
	}

	if sum := t.Weights.Sum(); math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("%w: got %.4f", ErrInvalidWeights, sum)
	}

	for _, c := range t.SkillCategories {
		if strings.TrimSpace(c.Name) == "" {
			return errors.New("skill category without a name")
		}
		if c.Weight < 0 {
			return fmt.Errorf("skill category %s: negative weight", c.Name)
		}
	}

	for _, lk := range t.LevelKeywords {
		if !IsLevel(lk.Level) {
			return fmt.Errorf("level keywords: %w: %s", ErrUnknownLevel, lk.Level)
		}
	}
	if !IsLevel(t.DefaultLevel) {
		return fmt.Errorf("default level: %w: %s", ErrUnknownLevel, t.DefaultLevel)
	}

	for _, level := range Levels {
		band, ok := t.BaseSalaries[level]
		if !ok {
			return fmt.Errorf("base salaries: missing level %s", level)
		}
		if band.Min < 0 || band.Min > band.Max {
			return fmt.Errorf("base salaries: level %s has min %.0f above max %.0f", level, band.Min, band.Max)
		}
	}

	for _, dk := range t.DegreeKeywords {
		if DegreeRank(dk.Degree) < 0 {
			return fmt.Errorf("degree keywords: %w: %s", ErrUnknownDegree, dk.Degree)
		}
	}
	if DegreeRank(t.DefaultDegree) < 0 {
		return fmt.Errorf("default degree: %w: %s", ErrUnknownDegree, t.DefaultDegree)
	}

	if len(t.LevelDistance.Over) == 0 || len(t.LevelDistance.Under) == 0 {
		return errors.New("level distance tables must not be empty")
	}

	if t.MaxSkillPremium < 1 {
		return fmt.Errorf("max skill premium %.2f must be at least 1", t.MaxSkillPremium)
	}

	return t.validateMultipliers()
}

func (t Tables) validateMultipliers() error {
	if t.RemoteMultiplier <= 0 {
		return fmt.Errorf("remote multiplier: %w: got %.2f", ErrInvalidMultiplier, t.RemoteMultiplier)
	}

	lists := []struct {
		name  string
		items []Multiplier
	}{
		{"location multipliers", t.LocationMultipliers},
		{"premium skills", t.PremiumSkills},
		{"industry multipliers", t.IndustryMultipliers},
	}
	for _, list := range lists {
		for _, m := range list.items {
			if m.Value <= 0 {
				return fmt.Errorf("%s: %s: %w: got %.2f", list.name, m.Key, ErrInvalidMultiplier, m.Value)
			}
		}
	}

	for degree, value := range t.EducationMultipliers {
		if value <= 0 {
			return fmt.Errorf("education multipliers: %s: %w: got %.2f", degree, ErrInvalidMultiplier, value)
		}
	}

	return nil
}

// IsLevel reports whether name is one of Levels.
func IsLevel(name string) bool {
	return LevelIndex(name) >= 0
}

// LevelIndex returns the position of name on the seniority ladder or -1.
func LevelIndex(name string) int {
	for i, l := range Levels {
		if l == name {
			return i
		}
	}
	return -1
}

// DegreeRank returns the position of name on the degree ladder or -1.
func DegreeRank(name string) int {
	for i, d := range Degrees {
		if d == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can never alias the engine's tables.
func (t Tables) Clone() Tables {
	out := t

	out.SkillCategories = make([]SkillCategory, len(t.SkillCategories))
	for i, c := range t.SkillCategories {
		c.Tokens = append([]string(nil), c.Tokens...)
		out.SkillCategories[i] = c
	}

	out.LevelKeywords = make([]LevelKeywords, len(t.LevelKeywords))
	for i, lk := range t.LevelKeywords {
		lk.Keywords = append([]string(nil), lk.Keywords...)
		out.LevelKeywords[i] = lk
	}

	out.Regions = make([]Region, len(t.Regions))
	for i, r := range t.Regions {
		r.Locations = append([]string(nil), r.Locations...)
		out.Regions[i] = r
	}

	out.DegreeKeywords = make([]DegreeKeywords, len(t.DegreeKeywords))
	for i, dk := range t.DegreeKeywords {
		dk.Keywords = append([]string(nil), dk.Keywords...)
		out.DegreeKeywords[i] = dk
	}

	out.RemoteKeywords = append([]string(nil), t.RemoteKeywords...)
	out.NoDegreePhrases = append([]string(nil), t.NoDegreePhrases...)
	out.LevelDistance.Over = append([]float64(nil), t.LevelDistance.Over...)
	out.LevelDistance.Under = append([]float64(nil), t.LevelDistance.Under...)
	out.LocationMultipliers = append([]Multiplier(nil), t.LocationMultipliers...)
	out.PremiumSkills = append([]Multiplier(nil), t.PremiumSkills...)
	out.IndustryMultipliers = append([]Multiplier(nil), t.IndustryMultipliers...)

	out.BaseSalaries = make(map[string]SalaryBand, len(t.BaseSalaries))
	for k, v := range t.BaseSalaries {
		out.BaseSalaries[k] = v
	}

	out.EducationMultipliers = make(map[string]float64, len(t.EducationMultipliers))
	for k, v := range t.EducationMultipliers {
		out.EducationMultipliers[k] = v
	}

	return out
}
