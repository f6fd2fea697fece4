package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var (
	ErrMalformedResume  = errors.New("malformed resume")
	ErrMalformedPosting = errors.New("malformed job posting")
	ErrEmptyPosting     = errors.New("job posting has neither title nor description")
)

var postingTextFields = []string{"title", "company", "location", "description"}

// DecodeResume builds a ResumeProfile from a raw JSON document.
// A nil document decodes to an empty profile.
func DecodeResume(raw map[string]any) (ResumeProfile, error) {
	var resume ResumeProfile
	if raw == nil {
		return resume, nil
	}

	if skills, ok := raw["skills"]; ok && skills != nil {
		if _, isMap := skills.(map[string]any); !isMap {
			return ResumeProfile{}, fmt.Errorf("%w: skills must be a mapping of category to tokens, got %T", ErrMalformedResume, skills)
		}
	}

	for _, key := range []string{"experience", "education"} {
		if v, ok := raw[key]; ok && v != nil {
			if _, isList := v.([]any); !isList {
				return ResumeProfile{}, fmt.Errorf("%w: %s must be a list, got %T", ErrMalformedResume, key, v)
			}
		}
	}

	if err := decode(raw, &resume); err != nil {
		return ResumeProfile{}, fmt.Errorf("%w: %w", ErrMalformedResume, err)
	}

	return resume, nil
}

// DecodeJob builds a JobPosting from a raw JSON document. Text fields that are
// present must be strings; an explicit null counts as malformed.
func DecodeJob(raw map[string]any) (JobPosting, error) {
	var job JobPosting
	if raw == nil {
		return job, ErrEmptyPosting
	}

	for _, key := range postingTextFields {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if _, isString := v.(string); !isString {
			return JobPosting{}, fmt.Errorf("%w: %s must be a string, got %T", ErrMalformedPosting, key, v)
		}
	}

	if v, ok := raw["salary_range"]; ok && v != nil {
		if _, isMap := v.(map[string]any); !isMap {
			return JobPosting{}, fmt.Errorf("%w: salary_range must be an object, got %T", ErrMalformedPosting, v)
		}
	}

	if err := decode(raw, &job); err != nil {
		return JobPosting{}, fmt.Errorf("%w: %w", ErrMalformedPosting, err)
	}

	if job.IsEmpty() {
		return JobPosting{}, ErrEmptyPosting
	}

	return job, nil
}

// DecodeJobs decodes every item of a raw list. Items that fail are skipped and
// reported in the joined error; the postings that decoded are still returned.
func DecodeJobs(items []any) (*JobPostings, error) {
	postings := &JobPostings{Items: make([]JobPosting, 0, len(items))}

	var errs []error
	for idx, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Errorf("posting %d: %w: expected an object, got %T", idx, ErrMalformedPosting, item))
			continue
		}

		job, err := DecodeJob(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("posting %d: %w", idx, err))
			continue
		}

		if strings.TrimSpace(job.ID) == "" {
			job.ID = fmt.Sprintf("job-%d", idx+1)
		}

		postings.Items = append(postings.Items, job)
	}

	return postings, errors.Join(errs...)
}

func decode(input any, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           result,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
