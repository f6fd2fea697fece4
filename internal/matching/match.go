package matching

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/remote-matcher/internal/logger"
	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/utils"
)

type Scores struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Location   float64 `json:"location"`
	Education  float64 `json:"education"`
	Salary     float64 `json:"salary"`
}

type Details struct {
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	SkillCoverage float64  `json:"skill_coverage"`
}

// MatchResult is the outcome of evaluating one resume against one posting.
// When Kind is not computed every score is zero and Error explains why.
type MatchResult struct {
	JobID           string       `json:"job_id,omitempty"`
	OverallScore    float64      `json:"overall_score"`
	Scores          Scores       `json:"scores"`
	MatchingDetails Details      `json:"matching_details"`
	CalculatedAt    time.Time    `json:"calculated_at"`
	Kind            profile.Kind `json:"kind"`
	Error           string       `json:"error,omitempty"`
}

// Computed reports whether the result carries real scores.
func (r MatchResult) Computed() bool {
	return r.Kind == profile.KindComputed
}

// Match scores resume against job. It never panics: bad input and internal
// failures are reported through the result kind.
func (e *Engine) Match(resume profile.ResumeProfile, job profile.JobPosting) MatchResult {
	return e.match(resume, job, e.now())
}

// MatchRaw decodes raw JSON documents and scores them like Match.
func (e *Engine) MatchRaw(rawResume, rawJob map[string]any) MatchResult {
	calculatedAt := e.now()

	jobID, _ := rawJob["id"].(string)

	resume, err := profile.DecodeResume(rawResume)
	if err != nil {
		return e.failed(jobID, calculatedAt, err)
	}

	job, err := profile.DecodeJob(rawJob)
	if err != nil {
		return e.failed(jobID, calculatedAt, err)
	}

	return e.match(resume, job, calculatedAt)
}

func (e *Engine) match(resume profile.ResumeProfile, job profile.JobPosting, calculatedAt time.Time) (result MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			result = e.failed(job.ID, calculatedAt, fmt.Errorf("scoring panicked: %v", r))
		}
	}()

	if job.IsEmpty() {
		return e.failed(job.ID, calculatedAt, profile.ErrEmptyPosting)
	}

	tables := e.tables
	refYear := calculatedAt.Year()

	req := e.extract(tables, job)
	candidate := resume.SkillSet()

	scores := Scores{
		Skill:      skillScore(tables, req, candidate),
		Experience: experienceScore(tables, resume, job, refYear),
		Location:   locationScore(tables, resume, job),
		Education:  educationScore(tables, resume, job),
		Salary:     salaryScore(tables, resume, job, refYear),
	}

	w := tables.Weights
	overall := w.Skill*scores.Skill +
		w.Experience*scores.Experience +
		w.Location*scores.Location +
		w.Education*scores.Education +
		w.Salary*scores.Salary

	result = MatchResult{
		JobID:           job.ID,
		OverallScore:    utils.Clamp01(overall),
		Scores:          scores,
		MatchingDetails: skillDetails(req, candidate),
		CalculatedAt:    calculatedAt,
		Kind:            profile.KindComputed,
	}

	e.logger.Debug("match computed",
		append(logger.MatchFields(job.ID, string(result.Kind)),
			zap.String("title", utils.TruncateForLog(job.Title, 60)),
			zap.Float64("overall_score", result.OverallScore),
			zap.Float64("skill", scores.Skill),
			zap.Float64("experience", scores.Experience),
			zap.Float64("location", scores.Location),
			zap.Float64("education", scores.Education),
			zap.Float64("salary", scores.Salary),
		)...,
	)

	return result
}

func skillDetails(req RequirementSet, candidate map[string]struct{}) Details {
	details := Details{MatchedSkills: []string{}, MissingSkills: []string{}}

	seen := make(map[string]struct{})
	for _, tokens := range req {
		for _, token := range tokens {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			if _, ok := candidate[token]; ok {
				details.MatchedSkills = append(details.MatchedSkills, token)
			} else {
				details.MissingSkills = append(details.MissingSkills, token)
			}
		}
	}
	sort.Strings(details.MatchedSkills)
	sort.Strings(details.MissingSkills)

	if total := len(seen); total > 0 {
		details.SkillCoverage = float64(len(details.MatchedSkills)) / float64(total)
	}
	return details
}

func (e *Engine) failed(jobID string, calculatedAt time.Time, err error) MatchResult {
	kind := profile.KindOf(err)

	fields := append(logger.MatchFields(jobID, string(kind)), zap.Error(err))
	if kind == profile.KindInternalError {
		e.logger.Error("match failed", fields...)
	} else {
		e.logger.Warn("match skipped", fields...)
	}

	return MatchResult{
		JobID:           strings.TrimSpace(jobID),
		MatchingDetails: Details{MatchedSkills: []string{}, MissingSkills: []string{}},
		CalculatedAt:    calculatedAt,
		Kind:            kind,
		Error:           err.Error(),
	}
}
