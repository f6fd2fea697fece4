package salary

import (
	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/utils"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

// Confidence rates how much input backed a prediction. Each available signal
// adds its weight to the base, so adding data never lowers the score.
func Confidence(resume profile.ResumeProfile, job profile.JobPosting, tables vocabulary.Tables) float64 {
	w := tables.Confidence

	score := w.Base
	if len(resume.Experience) > 0 {
		score += w.Experience
	}
	if len(resume.SkillSet()) > 0 {
		score += w.Skills
	}
	if len(resume.Education) > 0 {
		score += w.Education
	}
	if resume.Location() != "" || vocabulary.Normalize(job.Location) != "" {
		score += w.Location
	}

	return utils.Clamp01(score)
}
