package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

func TestRunMultipliesFactorsInOrder(t *testing.T) {
	t.Parallel()

	in := Input{
		Tables: vocabulary.Default(),
		Resume: profile.ResumeProfile{
			Skills:    map[string][]string{"cloud": {"aws"}},
			Education: []profile.EducationEntry{{Degree: "Master of Science"}},
		},
		Job: profile.JobPosting{Title: "Engineer", Company: "Acme Bank", Location: "Fully remote, worldwide"},
	}

	multiplier, factors := Run(zap.NewNop(), DefaultSteps(), in)

	require.Len(t, factors, 4)
	assert.Equal(t, Factor{Name: StepLocation, Value: 0.9, Reason: "remote"}, factors[0])
	assert.Equal(t, Factor{Name: StepSkillPremium, Value: 1.05, Reason: "aws"}, factors[1])
	assert.Equal(t, Factor{Name: StepIndustry, Value: 1.10, Reason: "bank"}, factors[2])
	assert.Equal(t, Factor{Name: StepEducation, Value: 1.10, Reason: vocabulary.DegreeMaster}, factors[3])
	assert.InDelta(t, 0.9*1.05*1.10*1.10, multiplier, 1e-9)
}

func TestRunSkipsDisabledSteps(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.DebugLevel)
	steps := DefaultSteps()
	require.True(t, DisableByName(steps, StepIndustry, "testing"))
	assert.False(t, DisableByName(steps, "unknown", "testing"))

	in := Input{Tables: vocabulary.Default(), Job: profile.JobPosting{Title: "Engineer", Company: "Fintech"}}
	_, factors := Run(zap.New(core), steps, in)

	for _, f := range factors {
		assert.NotEqual(t, StepIndustry, f.Name)
	}
	assert.Len(t, observed.FilterMessage("salary step disabled").All(), 1)
	assert.Len(t, observed.FilterMessage("salary step").All(), 3)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	steps := DefaultSteps()
	DisableByName(steps, StepEducation, "not relevant")

	assert.Equal(t, []Status{
		{Name: StepLocation, Enabled: true},
		{Name: StepSkillPremium, Enabled: true},
		{Name: StepIndustry, Enabled: true},
		{Name: StepEducation, Enabled: false, Reason: "not relevant"},
	}, Describe(steps))
}
