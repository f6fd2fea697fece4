package matching

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/remote-matcher/internal/logger"
	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

var fixedNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewEngine(vocabulary.Default(), nil, opts...)
}

func strongResume() profile.ResumeProfile {
	return profile.ResumeProfile{
		PersonalInfo: profile.PersonalInfo{Name: "Ada", Location: "San Francisco, CA"},
		Skills: map[string][]string{
			"programming": {"Python", "Go"},
			"frameworks":  {"Django"},
			"databases":   {"PostgreSQL"},
			"cloud":       {"AWS", "Docker", "Kubernetes"},
		},
		Experience: []profile.WorkEntry{
			{Company: "Acme", Position: "Backend Engineer", Start: "2018", End: "present"},
		},
		Education:      []profile.EducationEntry{{Degree: "Master of Science"}},
		ExpectedSalary: &profile.SalaryRange{Min: 120000, Max: 150000},
	}
}

func strongJob() profile.JobPosting {
	return profile.JobPosting{
		ID:          "job-42",
		Title:       "Senior Backend Engineer",
		Company:     "Acme",
		Location:    "San Francisco, CA",
		Description: "We use Python, Django, PostgreSQL and AWS. Bachelor's degree required.",
		SalaryRange: &profile.SalaryRange{Min: 140000, Max: 180000},
	}
}

func TestMatchPerfectFit(t *testing.T) {
	t.Parallel()

	result := newTestEngine().Match(strongResume(), strongJob())

	require.Equal(t, profile.KindComputed, result.Kind)
	assert.Equal(t, "job-42", result.JobID)
	assert.InDelta(t, 1.0, result.OverallScore, 1e-9)
	assert.Equal(t, Scores{Skill: 1, Experience: 1, Location: 1, Education: 1, Salary: 1}, result.Scores)
	assert.Equal(t, []string{"aws", "django", "postgresql", "python"}, result.MatchingDetails.MatchedSkills)
	assert.Empty(t, result.MatchingDetails.MissingSkills)
	assert.Equal(t, 1.0, result.MatchingDetails.SkillCoverage)
	assert.Equal(t, fixedNow, result.CalculatedAt)
	assert.Empty(t, result.Error)
}

func TestMatchEmptyResume(t *testing.T) {
	t.Parallel()

	result := newTestEngine().Match(profile.ResumeProfile{}, strongJob())

	require.True(t, result.Computed())
	// Offer above the senior base average saturates salary:
	// 0.35*0 + 0.25*0.1 + 0.15*0.5 + 0.15*(1/3) + 0.10*1
	assert.InDelta(t, 0.25, result.OverallScore, 1e-9)
	assert.Equal(t, 1.0, result.Scores.Salary)
	assert.Equal(t, []string{"aws", "django", "postgresql", "python"}, result.MatchingDetails.MissingSkills)
	assert.Equal(t, 0.0, result.MatchingDetails.SkillCoverage)
}

func TestMatchScoresStayInBounds(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	resumes := []profile.ResumeProfile{{}, strongResume(), {ExpectedSalary: &profile.SalaryRange{Min: 1, Max: 2}}}
	jobs := []profile.JobPosting{
		strongJob(),
		{Title: "Intern"},
		{Title: "VP of Engineering", Location: "Remote", SalaryRange: &profile.SalaryRange{Min: 1, Max: 1}},
		{Description: "PhD in machine learning, 20+ years"},
	}

	for _, resume := range resumes {
		for _, job := range jobs {
			r := engine.Match(resume, job)
			require.True(t, r.Computed())
			for _, v := range []float64{r.OverallScore, r.Scores.Skill, r.Scores.Experience, r.Scores.Location, r.Scores.Education, r.Scores.Salary, r.MatchingDetails.SkillCoverage} {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

func TestMatchIsIdempotent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	first := engine.Match(strongResume(), strongJob())
	second := engine.Match(strongResume(), strongJob())

	assert.Equal(t, first, second)
}

func TestMatchRawInputErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		resume map[string]any
		job    map[string]any
	}{
		{name: "both empty", resume: map[string]any{}, job: map[string]any{}},
		{name: "nil job", resume: map[string]any{}, job: nil},
		{name: "skills as string", resume: map[string]any{"skills": "python"}, job: map[string]any{"title": "Engineer"}},
		{name: "title as number", resume: nil, job: map[string]any{"id": "x", "title": 42.0}},
		{name: "salary as string", resume: nil, job: map[string]any{"title": "Engineer", "salary_range": "lots"}},
	}

	engine := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := engine.MatchRaw(tt.resume, tt.job)
			assert.Equal(t, profile.KindInputError, r.Kind)
			assert.Equal(t, 0.0, r.OverallScore)
			assert.Equal(t, Scores{}, r.Scores)
			assert.Empty(t, r.MatchingDetails.MatchedSkills)
			assert.NotEmpty(t, r.Error)
		})
	}
}

func TestMatchRawComputes(t *testing.T) {
	t.Parallel()

	r := newTestEngine().MatchRaw(
		map[string]any{"skills": map[string]any{"programming": []any{"python"}}},
		map[string]any{"id": "raw-1", "title": "Python developer"},
	)

	require.True(t, r.Computed())
	assert.Equal(t, "raw-1", r.JobID)
	assert.Equal(t, 1.0, r.Scores.Skill)
}

func TestMatchLogsSkippedPosting(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.WarnLevel)
	engine := NewEngine(vocabulary.Default(), zap.New(core), WithClock(func() time.Time { return fixedNow }))

	r := engine.Match(strongResume(), profile.JobPosting{ID: "empty-1", Company: "Acme"})
	require.Equal(t, profile.KindInputError, r.Kind)

	entries := observed.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "empty-1", ctx[logger.FieldJobID])
	assert.Equal(t, string(profile.KindInputError), ctx[logger.FieldResultKind])
	assert.Equal(t, "matching", ctx[logger.FieldComponent])
}

func TestFailedInternalError(t *testing.T) {
	t.Parallel()

	r := newTestEngine().failed("job-1", fixedNow, errors.New("boom"))

	assert.Equal(t, profile.KindInternalError, r.Kind)
	assert.Equal(t, "boom", r.Error)
	assert.Equal(t, 0.0, r.OverallScore)
}

func TestMatchRecoversFromPanic(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.ErrorLevel)
	engine := NewEngine(vocabulary.Default(), zap.New(core), WithClock(func() time.Time { return fixedNow }))
	engine.extract = func(vocabulary.Tables, profile.JobPosting) RequirementSet {
		panic("requirement table corrupted")
	}

	r := engine.Match(strongResume(), profile.JobPosting{ID: "job-1", Title: "Go Engineer"})

	assert.Equal(t, profile.KindInternalError, r.Kind)
	assert.Contains(t, r.Error, "requirement table corrupted")
	assert.Equal(t, "job-1", r.JobID)
	assert.Equal(t, 0.0, r.OverallScore)
	assert.Equal(t, Scores{}, r.Scores)
	assert.Equal(t, fixedNow, r.CalculatedAt)
	assert.Len(t, observed.FilterMessage("match failed").All(), 1)
}

func TestEngineClonesTables(t *testing.T) {
	t.Parallel()

	tables := vocabulary.Default()
	engine := NewEngine(tables, nil)

	tables.SkillCategories[0].Tokens[0] = "cobol"
	tables.Weights.Skill = 0

	assert.Equal(t, "python", engine.Tables().SkillCategories[0].Tokens[0])
	assert.Equal(t, 0.35, engine.Tables().Weights.Skill)
}
