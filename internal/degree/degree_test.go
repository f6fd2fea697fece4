package degree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tables := vocabulary.Default()

	tests := []struct {
		text string
		want string
	}{
		{text: "PhD in Physics", want: vocabulary.DegreeDoctorate},
		{text: "Ph.D. candidate", want: vocabulary.DegreeDoctorate},
		{text: "Master of Science", want: vocabulary.DegreeMaster},
		{text: "MBA", want: vocabulary.DegreeMaster},
		{text: "Bachelor's in CS", want: vocabulary.DegreeBachelor},
		{text: "BSc Mathematics", want: vocabulary.DegreeBachelor},
		{text: "Associate degree in IT", want: vocabulary.DegreeAssociate},
		{text: "High school", want: vocabulary.DegreeNone},
		{text: "", want: vocabulary.DegreeNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tables, tt.text), "text=%q", tt.text)
	}
}

func TestHighest(t *testing.T) {
	tables := vocabulary.Default()

	entries := []profile.EducationEntry{
		{Degree: "Bachelor of Arts"},
		{Degree: "PhD, Computer Science"},
		{Degree: "MSc Data Science"},
	}

	assert.Equal(t, vocabulary.DegreeDoctorate, Highest(tables, entries))
	assert.Equal(t, vocabulary.DegreeNone, Highest(tables, nil))
}

func TestRequired(t *testing.T) {
	t.Parallel()

	tables := vocabulary.Default()

	tests := []struct {
		name        string
		description string
		want        string
	}{
		{name: "default bachelor", description: "Build APIs in Go", want: vocabulary.DegreeBachelor},
		{name: "lowest mentioned", description: "Bachelor's or Master's degree in CS", want: vocabulary.DegreeBachelor},
		{name: "phd only", description: "PhD in machine learning required", want: vocabulary.DegreeDoctorate},
		{name: "master", description: "MSc preferred", want: vocabulary.DegreeMaster},
		{name: "no degree", description: "No degree required, show us your work", want: vocabulary.DegreeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Required(tables, profile.JobPosting{Title: "Engineer", Description: tt.description})
			assert.Equal(t, tt.want, got)
		})
	}
}
