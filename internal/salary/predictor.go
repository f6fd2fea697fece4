// Package salary estimates a salary range for a candidate/posting pair from a
// level keyed base table and a pipeline of multipliers.
package salary

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/remote-matcher/internal/logger"
	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/seniority"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

// Range is the predicted salary band.
type Range struct {
	Min        float64            `json:"min"`
	Max        float64            `json:"max"`
	Avg        float64            `json:"avg"`
	Multiplier float64            `json:"multiplier"`
	Factors    map[string]float64 `json:"factors"`
	Level      string             `json:"level"`
}

type Prediction struct {
	PredictedSalary  Range             `json:"predicted_salary"`
	ConfidenceScore  float64           `json:"confidence_score"`
	MarketComparison *MarketComparison `json:"market_comparison,omitempty"`
	Factors          []Factor          `json:"factors"`
	CalculatedAt     time.Time         `json:"calculated_at"`
	Kind             profile.Kind      `json:"kind"`
	Error            string            `json:"error,omitempty"`
}

func (p Prediction) Computed() bool {
	return p.Kind == profile.KindComputed
}

// Predictor is safe for concurrent use once constructed.
type Predictor struct {
	tables vocabulary.Tables
	logger *zap.Logger
	now    func() time.Time
	steps  []Step
}

type Option func(*Predictor)

func WithClock(now func() time.Time) Option {
	return func(p *Predictor) {
		if now != nil {
			p.now = now
		}
	}
}

// WithDisabledSteps keeps the named steps in the pipeline but skips them.
func WithDisabledSteps(names ...string) Option {
	return func(p *Predictor) {
		for _, name := range names {
			name = strings.TrimSpace(name)
			if !DisableByName(p.steps, name, "disabled by configuration") {
				p.logger.Warn("unknown salary step", zap.String("name", name))
			}
		}
	}
}

func NewPredictor(tables vocabulary.Tables, log *zap.Logger, opts ...Option) *Predictor {
	p := &Predictor{
		tables: tables.Clone(),
		logger: logger.WithComponent(log, "salary"),
		now:    time.Now,
		steps:  DefaultSteps(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Steps lists the pipeline steps in execution order.
func (p *Predictor) Steps() []Status {
	return Describe(p.steps)
}

// Predict estimates the salary for resume applying to job. Samples, when
// given, are used for the market comparison against the predicted average.
func (p *Predictor) Predict(resume profile.ResumeProfile, job profile.JobPosting, samples []float64) Prediction {
	return p.predict(resume, job, samples, p.now())
}

// PredictRaw decodes raw JSON documents and predicts like Predict.
func (p *Predictor) PredictRaw(rawResume, rawJob map[string]any, samples []float64) Prediction {
	calculatedAt := p.now()
	jobID, _ := rawJob["id"].(string)

	resume, err := profile.DecodeResume(rawResume)
	if err != nil {
		return p.failed(jobID, calculatedAt, err)
	}

	job, err := profile.DecodeJob(rawJob)
	if err != nil {
		return p.failed(jobID, calculatedAt, err)
	}

	return p.predict(resume, job, samples, calculatedAt)
}

func (p *Predictor) predict(resume profile.ResumeProfile, job profile.JobPosting, samples []float64, calculatedAt time.Time) (prediction Prediction) {
	defer func() {
		if r := recover(); r != nil {
			prediction = p.failed(job.ID, calculatedAt, fmt.Errorf("prediction panicked: %v", r))
		}
	}()

	if job.IsEmpty() {
		return p.failed(job.ID, calculatedAt, profile.ErrEmptyPosting)
	}

	level := p.level(resume, job, calculatedAt.Year())
	band, ok := p.tables.BaseSalaries[level]
	if !ok {
		return p.failed(job.ID, calculatedAt, fmt.Errorf("no base salary for level %q", level))
	}

	log := logger.WithFields(p.logger, logger.MatchFields(job.ID, "")...)
	multiplier, factors := Run(log, p.steps, Input{Tables: p.tables, Resume: resume, Job: job})

	minimum := math.Round(band.Min * multiplier)
	maximum := math.Round(band.Max * multiplier)
	if minimum > maximum {
		minimum, maximum = maximum, minimum
	}
	predicted := Range{
		Min:        minimum,
		Max:        maximum,
		Avg:        math.Round((minimum + maximum) / 2),
		Multiplier: multiplier,
		Factors:    make(map[string]float64, len(factors)),
		Level:      level,
	}
	for _, f := range factors {
		predicted.Factors[f.Name] = f.Value
	}

	prediction = Prediction{
		PredictedSalary: predicted,
		ConfidenceScore: Confidence(resume, job, p.tables),
		Factors:         factors,
		CalculatedAt:    calculatedAt,
		Kind:            profile.KindComputed,
	}
	if samples != nil {
		market := Compare(predicted.Avg, samples)
		prediction.MarketComparison = &market
	}

	log.Debug("salary predicted",
		zap.String("level", level),
		zap.Float64("min", predicted.Min),
		zap.Float64("max", predicted.Max),
		zap.Float64("multiplier", multiplier),
		zap.Float64("confidence", prediction.ConfidenceScore),
	)

	return prediction
}

// level prefers the candidate's experience and falls back to the posting.
func (p *Predictor) level(resume profile.ResumeProfile, job profile.JobPosting, refYear int) string {
	if level, _, ok := seniority.ForCandidate(resume, refYear); ok {
		return level
	}
	return seniority.ForPosting(p.tables, job)
}

func (p *Predictor) failed(jobID string, calculatedAt time.Time, err error) Prediction {
	kind := profile.KindOf(err)

	fields := append(logger.MatchFields(jobID, string(kind)), zap.Error(err))
	if kind == profile.KindInternalError {
		p.logger.Error("salary prediction failed", fields...)
	} else {
		p.logger.Warn("salary prediction skipped", fields...)
	}

	return Prediction{
		PredictedSalary: Range{Factors: map[string]float64{}},
		Factors:         []Factor{},
		CalculatedAt:    calculatedAt,
		Kind:            kind,
		Error:           err.Error(),
	}
}
