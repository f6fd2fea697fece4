package matching

import (
	"strings"

	"github.com/spigell/remote-matcher/internal/degree"
	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/seniority"
	"github.com/spigell/remote-matcher/internal/utils"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

// skillScore is the category-weighted coverage of the requirements by the
// candidate's skills. Categories without requirements do not count.
func skillScore(tables vocabulary.Tables, req RequirementSet, candidate map[string]struct{}) float64 {
	if req.IsEmpty() {
		return tables.NeutralScore
	}

	var weighted, total float64
	for _, category := range tables.SkillCategories {
		tokens := req[category.Name]
		if len(tokens) == 0 {
			continue
		}
		matched := 0
		for _, token := range tokens {
			if _, ok := candidate[token]; ok {
				matched++
			}
		}
		weighted += category.Weight * float64(matched) / float64(len(tokens))
		total += category.Weight
	}

	if total <= 0 {
		return tables.NeutralScore
	}
	return utils.Clamp01(weighted / total)
}

// experienceScore compares the candidate's level with the posting's level.
func experienceScore(tables vocabulary.Tables, resume profile.ResumeProfile, job profile.JobPosting, refYear int) float64 {
	candidate, _, ok := seniority.ForCandidate(resume, refYear)
	if !ok {
		return utils.Clamp01(tables.ExperienceFloor)
	}

	required := seniority.ForPosting(tables, job)
	distance := seniority.Distance(candidate, required)

	ladder := tables.LevelDistance.Over
	if distance < 0 {
		ladder = tables.LevelDistance.Under
		distance = -distance
	}
	if len(ladder) == 0 {
		return tables.NeutralScore
	}
	if distance >= len(ladder) {
		distance = len(ladder) - 1
	}
	return utils.Clamp01(ladder[distance])
}

func locationScore(tables vocabulary.Tables, resume profile.ResumeProfile, job profile.JobPosting) float64 {
	scores := tables.LocationScores

	candidate := vocabulary.Normalize(resume.Location())
	posting := vocabulary.Normalize(job.Location)
	if candidate == "" || posting == "" {
		return utils.Clamp01(scores.Missing)
	}

	if tables.ContainsAny(posting, tables.RemoteKeywords) || tables.ContainsAny(candidate, tables.RemoteKeywords) {
		return utils.Clamp01(scores.Remote)
	}

	candidateCity, candidateArea := splitLocation(candidate)
	postingCity, postingArea := splitLocation(posting)
	if candidate == posting || candidateCity == postingCity {
		return utils.Clamp01(scores.Exact)
	}

	if candidateArea != "" && candidateArea == postingArea {
		return utils.Clamp01(scores.Region)
	}
	for _, region := range tables.Regions {
		if tables.ContainsAny(candidate, region.Locations) && tables.ContainsAny(posting, region.Locations) {
			return utils.Clamp01(scores.Region)
		}
	}

	return utils.Clamp01(scores.Mismatch)
}

// splitLocation splits "City, Region" at the first comma.
func splitLocation(location string) (string, string) {
	city, area, _ := strings.Cut(location, ",")
	return strings.TrimSpace(city), strings.TrimSpace(area)
}

func educationScore(tables vocabulary.Tables, resume profile.ResumeProfile, job profile.JobPosting) float64 {
	candidate := vocabulary.DegreeRank(degree.Highest(tables, resume.Education))
	required := vocabulary.DegreeRank(degree.Required(tables, job))
	if candidate < 0 {
		candidate = 0
	}
	if required < 0 {
		required = 0
	}

	if candidate >= required {
		return 1
	}
	return utils.Clamp01(float64(candidate+1) / float64(required+1))
}

// salaryScore compares the posting's range with the candidate's expectation.
// When only one side is known it is compared with the base salary table.
func salaryScore(tables vocabulary.Tables, resume profile.ResumeProfile, job profile.JobPosting, refYear int) float64 {
	offered := job.SalaryRange
	expected := resume.ExpectedSalary
	hasOffer := offered.Valid()
	hasExpectation := expected.Valid()

	switch {
	case hasOffer && hasExpectation:
		switch {
		case offered.Max < expected.Min:
			return utils.Clamp01(offered.Max / expected.Min)
		case offered.Min >= expected.Min:
			return 1
		case offered.Max == offered.Min:
			return 1
		default:
			return utils.Clamp01(0.8 + 0.2*(offered.Max-expected.Min)/(offered.Max-offered.Min))
		}

	case hasOffer:
		level, _, ok := seniority.ForCandidate(resume, refYear)
		if !ok {
			level = seniority.ForPosting(tables, job)
		}
		band, ok := tables.BaseSalaries[level]
		if !ok || band.Avg <= 0 {
			return tables.NeutralScore
		}
		return utils.Clamp01(offered.Max / band.Avg)

	case hasExpectation:
		band, ok := tables.BaseSalaries[seniority.ForPosting(tables, job)]
		if !ok {
			return tables.NeutralScore
		}
		if expected.Min <= 0 {
			return 1
		}
		return utils.Clamp01(band.Max / expected.Min)

	default:
		return tables.NeutralScore
	}
}
