// Package seniority infers a discrete seniority level from work history or
// from posting text. Matching and salary prediction share it so that both
// always agree on a level.
package seniority

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

// Year breakpoints: a value below the breakpoint maps to the level at the
// same index, anything at or above the last maps to manager.
var yearBreakpoints = []float64{1, 3, 5, 8, 12}

var (
	yearPattern          = regexp.MustCompile(`\b(19[5-9]\d|20\d\d|2100)\b`)
	durationYearsPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:years?|yrs?)\b`)
	durationMonthPattern = regexp.MustCompile(`(\d+)\s*(?:months?|mos?)\b`)
	requiredYearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*(?:years?|yrs?)`)
)

var ongoingMarkers = []string{"present", "current", "now", "ongoing"}

// FromYears maps years of experience onto the level ladder.
func FromYears(years float64) string {
	for i, bp := range yearBreakpoints {
		if years < bp {
			return vocabulary.Levels[i]
		}
	}
	return vocabulary.LevelManager
}

// TotalYears sums the duration of every work entry. Ongoing entries end at
// refYear. Entries without a parsable start fall back to their duration text.
func TotalYears(entries []profile.WorkEntry, refYear int) float64 {
	total := 0.0
	for _, entry := range entries {
		total += entryYears(entry, refYear)
	}
	return total
}

func entryYears(entry profile.WorkEntry, refYear int) float64 {
	start, ok := parseYear(entry.Start)
	if !ok {
		return parseDuration(entry.Duration)
	}

	end, ok := parseYear(entry.End)
	if !ok {
		end = refYear
	}

	if end < start {
		return 0
	}
	return float64(end - start)
}

// parseYear extracts a four digit year from a marker. Ongoing markers and
// empty markers are reported as not parsable so the caller can resolve them.
func parseYear(marker string) (int, bool) {
	marker = strings.ToLower(strings.TrimSpace(marker))
	if marker == "" {
		return 0, false
	}
	for _, m := range ongoingMarkers {
		if strings.Contains(marker, m) {
			return 0, false
		}
	}

	match := yearPattern.FindString(marker)
	if match == "" {
		return 0, false
	}

	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}

func parseDuration(text string) float64 {
	text = strings.ToLower(text)
	years := 0.0

	if m := durationYearsPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			years += v
		}
	}
	if m := durationMonthPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			years += float64(v) / 12
		}
	}

	if math.IsNaN(years) || years < 0 {
		return 0
	}
	return years
}

// FromText looks for explicit seniority keywords in the title first and the
// description second. Without keywords, an "N+ years" phrase is mapped through
// the year breakpoints. The second return value is false when the table
// default was used.
func FromText(tables vocabulary.Tables, title, description string) (string, bool) {
	for _, text := range []string{title, description} {
		for _, lk := range tables.LevelKeywords {
			if tables.ContainsAny(text, lk.Keywords) {
				return lk.Level, true
			}
		}
	}

	if years, ok := requiredYears(title + " " + description); ok {
		return FromYears(years), true
	}

	return tables.DefaultLevel, false
}

func requiredYears(text string) (float64, bool) {
	m := requiredYearsPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil || v > 50 {
		return 0, false
	}
	return float64(v), true
}

// ForPosting infers the level a job posting asks for.
func ForPosting(tables vocabulary.Tables, job profile.JobPosting) string {
	level, _ := FromText(tables, job.Title, job.Description)
	return level
}

// ForCandidate returns the candidate's level and total years. The boolean is
// false when the resume has no work entries.
func ForCandidate(resume profile.ResumeProfile, refYear int) (string, float64, bool) {
	if len(resume.Experience) == 0 {
		return "", 0, false
	}
	years := TotalYears(resume.Experience, refYear)
	return FromYears(years), years, true
}

// Distance returns the signed distance candidate - required on the ladder.
func Distance(candidate, required string) int {
	return vocabulary.LevelIndex(candidate) - vocabulary.LevelIndex(required)
}
