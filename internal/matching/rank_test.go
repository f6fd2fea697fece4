package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/remote-matcher/internal/profile"
)

func rankedIDs(results []MatchResult) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.JobID)
	}
	return ids
}

func pythonResume() profile.ResumeProfile {
	return profile.ResumeProfile{Skills: map[string][]string{"programming": {"python"}}}
}

func rankingJobs() []profile.JobPosting {
	return []profile.JobPosting{
		{ID: "py-1", Title: "Python developer"},
		{ID: "java", Title: "Java developer"},
		{ID: "empty", Company: "Nobody"},
		{ID: "py-2", Title: "Python engineer"},
	}
}

func TestTopMatches(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(WithWorkers(2))

	tests := []struct {
		name     string
		limit    int
		minScore float64
		want     []string
	}{
		{name: "all sorted with stable ties", limit: 10, want: []string{"py-1", "py-2", "java"}},
		{name: "limit truncates", limit: 1, want: []string{"py-1"}},
		{name: "min score filters", limit: 10, minScore: 0.3, want: []string{"py-1", "py-2"}},
		{name: "zero limit", limit: 0, want: []string{}},
		{name: "negative limit", limit: -3, want: []string{}},
		{name: "min score above everything", limit: 10, minScore: 0.99, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := engine.TopMatches(pythonResume(), rankingJobs(), tt.limit, tt.minScore)
			assert.Equal(t, tt.want, rankedIDs(got))
			for i := 1; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i-1].OverallScore, got[i].OverallScore)
			}
			for _, r := range got {
				assert.GreaterOrEqual(t, r.OverallScore, tt.minScore)
			}
		})
	}
}

func TestTopMatchesScores(t *testing.T) {
	t.Parallel()

	got := newTestEngine().TopMatches(pythonResume(), rankingJobs(), 10, 0)
	require.Len(t, got, 3)

	// Only the skill dimension differs: 0.35*skill + 0.025 + 0.075 + 0.05 + 0.05.
	assert.InDelta(t, 0.55, got[0].OverallScore, 1e-9)
	assert.InDelta(t, 0.55, got[1].OverallScore, 1e-9)
	assert.InDelta(t, 0.20, got[2].OverallScore, 1e-9)
}

func TestTopMatchesAssignsIDs(t *testing.T) {
	t.Parallel()

	jobs := []profile.JobPosting{{Title: "Python developer"}, {Title: "Go developer"}}
	got := newTestEngine().TopMatches(pythonResume(), jobs, 5, 0)

	assert.ElementsMatch(t, []string{"job-1", "job-2"}, rankedIDs(got))
}

func TestTopMatchesEmptyBatch(t *testing.T) {
	t.Parallel()

	got := newTestEngine().TopMatches(pythonResume(), nil, 5, 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTopMatchesMatchesSequential(t *testing.T) {
	t.Parallel()

	jobs := append(rankingJobs(), strongJob(), profile.JobPosting{ID: "remote", Title: "Senior Go engineer", Location: "Remote"})
	sequential := newTestEngine(WithWorkers(1)).TopMatches(strongResume(), jobs, 10, 0)
	parallel := newTestEngine(WithWorkers(8)).TopMatches(strongResume(), jobs, 10, 0)

	assert.Equal(t, sequential, parallel)
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	jobs := []profile.JobPosting{
		{
			ID: "a", Title: "Python developer with Kubernetes", Company: "Acme", Location: "Remote",
			SalaryRange: &profile.SalaryRange{Min: 100000, Max: 140000},
		},
		{ID: "b", Title: "Go engineer, Kubernetes and AWS", Company: "Acme", Location: "Berlin"},
		{
			ID: "c", Title: "Java developer using Kubernetes", Company: "Globex", Location: "Remote, EU",
			SalaryRange: &profile.SalaryRange{Min: 60000, Max: 80000},
		},
	}

	rec := newTestEngine().Recommend(pythonResume(), jobs, 2)

	assert.Len(t, rec.TopMatches, 2)
	assert.Equal(t, "a", rec.TopMatches[0].JobID)

	assert.Equal(t, []SkillGap{
		{Skill: "kubernetes", Category: "cloud", Demand: 3},
		{Skill: "go", Category: "programming", Demand: 1},
		{Skill: "aws", Category: "cloud", Demand: 1},
		{Skill: "java", Category: "programming", Demand: 1},
	}, rec.SkillGaps)

	insights := rec.Insights
	assert.Equal(t, 3, insights.TotalJobs)
	assert.InDelta(t, 200.0/3, insights.RemotePercentage, 1e-9)
	require.NotNil(t, insights.Salary)
	assert.Equal(t, SalaryStats{Min: 60000, Avg: 95000, Max: 140000, Count: 2}, *insights.Salary)
	assert.Equal(t, []CompanyCount{{Company: "Acme", Count: 2}, {Company: "Globex", Count: 1}}, insights.TopCompanies)
}

func TestRecommendEmpty(t *testing.T) {
	t.Parallel()

	rec := newTestEngine().Recommend(pythonResume(), nil, 5)

	assert.Empty(t, rec.TopMatches)
	assert.Empty(t, rec.SkillGaps)
	assert.Equal(t, 0, rec.Insights.TotalJobs)
	assert.Equal(t, 0.0, rec.Insights.RemotePercentage)
	assert.Nil(t, rec.Insights.Salary)
}

func TestRecommendCapsCompanies(t *testing.T) {
	t.Parallel()

	tables := newTestEngine().Tables()
	tables.TopCompanies = 1
	engine := NewEngine(tables, nil)

	jobs := []profile.JobPosting{
		{Title: "Go developer", Company: "Initech"},
		{Title: "Go developer", Company: "Hooli"},
		{Title: "Go developer", Company: "Hooli"},
	}
	rec := engine.Recommend(profile.ResumeProfile{}, jobs, 5)

	assert.Equal(t, []CompanyCount{{Company: "Hooli", Count: 2}}, rec.Insights.TopCompanies)
}
