// Package matching scores how well a candidate profile fits a job posting,
// ranks postings for a candidate and aggregates recommendations.
package matching

import (
	"time"

	"go.uber.org/zap"

	"github.com/spigell/remote-matcher/internal/logger"
	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

const defaultWorkers = 4

// Engine evaluates resume/posting pairs against a fixed set of tables.
// It is safe for concurrent use.
type Engine struct {
	tables  vocabulary.Tables
	logger  *zap.Logger
	now     func() time.Time
	workers int

	extract func(vocabulary.Tables, profile.JobPosting) RequirementSet
}

type Option func(*Engine)

// WithClock replaces the calculation clock. The clock stamps results and
// resolves "present" in work history.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithWorkers bounds how many postings TopMatches evaluates at once.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

func NewEngine(tables vocabulary.Tables, log *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		tables:  tables.Clone(),
		logger:  logger.WithComponent(log, "matching"),
		now:     time.Now,
		workers: defaultWorkers,
		extract: extractRequirements,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tables returns a copy of the tables the engine was built with.
func (e *Engine) Tables() vocabulary.Tables {
	return e.tables.Clone()
}
