package matching

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/remote-matcher/internal/profile"
)

// TopMatches evaluates every posting, drops failed results and results below
// minScore, and returns at most limit results ordered by score. Ties keep the
// input order.
func (e *Engine) TopMatches(resume profile.ResumeProfile, jobs []profile.JobPosting, limit int, minScore float64) []MatchResult {
	if limit <= 0 || len(jobs) == 0 {
		return []MatchResult{}
	}

	results := e.evaluate(resume, jobs)

	kept := make([]MatchResult, 0, len(results))
	for _, r := range results {
		if !r.Computed() || r.OverallScore < minScore {
			continue
		}
		kept = append(kept, r)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].OverallScore > kept[j].OverallScore
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}

	e.logger.Debug("ranking finished",
		zap.Int("evaluated", len(results)),
		zap.Int("kept", len(kept)),
		zap.Int("limit", limit),
		zap.Float64("min_score", minScore),
	)

	return kept
}

// evaluate scores every posting on a bounded worker group. Results are
// written by index so their order matches jobs.
func (e *Engine) evaluate(resume profile.ResumeProfile, jobs []profile.JobPosting) []MatchResult {
	calculatedAt := e.now()
	results := make([]MatchResult, len(jobs))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, job := range jobs {
		if strings.TrimSpace(job.ID) == "" {
			job.ID = fmt.Sprintf("job-%d", i+1)
		}
		g.Go(func() error {
			results[i] = e.match(resume, job, calculatedAt)
			return nil
		})
	}
	// match recovers its own panics, so no goroutine returns an error.
	_ = g.Wait()

	return results
}
