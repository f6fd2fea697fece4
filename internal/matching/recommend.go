package matching

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/remote-matcher/internal/profile"
)

type SkillGap struct {
	Skill    string `json:"skill"`
	Category string `json:"category"`
	Demand   int    `json:"demand"`
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// SalaryStats summarizes the stated salary ranges of a batch of postings.
type SalaryStats struct {
	Min   float64 `json:"min"`
	Avg   float64 `json:"avg"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

type Insights struct {
	TotalJobs        int            `json:"total_jobs"`
	RemotePercentage float64        `json:"remote_percentage"`
	Salary           *SalaryStats   `json:"salary,omitempty"`
	TopCompanies     []CompanyCount `json:"top_companies"`
}

type Recommendation struct {
	TopMatches []MatchResult `json:"top_matches"`
	SkillGaps  []SkillGap    `json:"skill_gaps"`
	Insights   Insights      `json:"insights"`
}

// Recommend ranks jobs for the candidate and summarizes which skills the
// batch asks for that the candidate lacks.
func (e *Engine) Recommend(resume profile.ResumeProfile, jobs []profile.JobPosting, limit int) Recommendation {
	rec := Recommendation{
		TopMatches: e.TopMatches(resume, jobs, limit, 0),
		SkillGaps:  e.skillGaps(resume, jobs),
		Insights:   e.insights(jobs),
	}

	e.logger.Debug("recommendation built",
		zap.Int("total_jobs", rec.Insights.TotalJobs),
		zap.Int("top_matches", len(rec.TopMatches)),
		zap.Int("skill_gaps", len(rec.SkillGaps)),
	)

	return rec
}

func (e *Engine) skillGaps(resume profile.ResumeProfile, jobs []profile.JobPosting) []SkillGap {
	candidate := resume.SkillSet()

	gaps := []SkillGap{}
	index := make(map[string]int)
	for _, job := range jobs {
		if job.IsEmpty() {
			continue
		}
		// A token listed in two categories still counts once per posting.
		counted := make(map[string]struct{})
		req := e.Requirements(job)
		for _, category := range e.tables.SkillCategories {
			for _, token := range req[category.Name] {
				if _, ok := candidate[token]; ok {
					continue
				}
				if _, ok := counted[token]; ok {
					continue
				}
				counted[token] = struct{}{}

				if i, ok := index[token]; ok {
					gaps[i].Demand++
					continue
				}
				index[token] = len(gaps)
				gaps = append(gaps, SkillGap{Skill: token, Category: category.Name, Demand: 1})
			}
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Demand > gaps[j].Demand
	})
	return gaps
}

func (e *Engine) insights(jobs []profile.JobPosting) Insights {
	out := Insights{TotalJobs: len(jobs), TopCompanies: []CompanyCount{}}
	if len(jobs) == 0 {
		return out
	}

	remote := 0
	var stats SalaryStats
	var midSum float64
	companies := make(map[string]int)

	for _, job := range jobs {
		if e.tables.ContainsAny(job.Location, e.tables.RemoteKeywords) ||
			e.tables.ContainsAny(job.Title, e.tables.RemoteKeywords) {
			remote++
		}

		if r := job.SalaryRange; r.Valid() {
			if stats.Count == 0 || r.Min < stats.Min {
				stats.Min = r.Min
			}
			if r.Max > stats.Max {
				stats.Max = r.Max
			}
			midSum += r.Mid()
			stats.Count++
		}

		if company := strings.TrimSpace(job.Company); company != "" {
			if i, ok := companies[company]; ok {
				out.TopCompanies[i].Count++
			} else {
				companies[company] = len(out.TopCompanies)
				out.TopCompanies = append(out.TopCompanies, CompanyCount{Company: company, Count: 1})
			}
		}
	}

	out.RemotePercentage = float64(remote) / float64(len(jobs)) * 100

	if stats.Count > 0 {
		stats.Avg = midSum / float64(stats.Count)
		out.Salary = &stats
	}

	sort.SliceStable(out.TopCompanies, func(i, j int) bool {
		return out.TopCompanies[i].Count > out.TopCompanies[j].Count
	})
	if n := e.tables.TopCompanies; n >= 0 && len(out.TopCompanies) > n {
		out.TopCompanies = out.TopCompanies[:n]
	}

	return out
}
