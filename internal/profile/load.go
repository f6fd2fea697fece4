package profile

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadResumeFile reads a JSON resume document from path.
func LoadResumeFile(path string) (ResumeProfile, error) {
	var raw map[string]any
	if err := readJSON(path, &raw); err != nil {
		return ResumeProfile{}, err
	}

	return DecodeResume(raw)
}

// LoadJobFile reads a single JSON job posting from path.
func LoadJobFile(path string) (JobPosting, error) {
	var raw map[string]any
	if err := readJSON(path, &raw); err != nil {
		return JobPosting{}, err
	}

	return DecodeJob(raw)
}

// LoadJobsFile reads a JSON list of postings, or a single posting object, from
// path. Postings that fail to decode are reported in the returned error while
// the rest are still returned.
func LoadJobsFile(path string) (*JobPostings, error) {
	var raw any
	if err := readJSON(path, &raw); err != nil {
		return nil, err
	}

	switch v := raw.(type) {
	case nil:
		return &JobPostings{}, nil
	case []any:
		return DecodeJobs(v)
	case map[string]any:
		return DecodeJobs([]any{v})
	default:
		return nil, fmt.Errorf("%s: expected a list of postings, got %T", path, raw)
	}
}

// LoadDocument reads a JSON object from path without decoding it, for callers
// that hand raw documents to the engines.
func LoadDocument(path string) (map[string]any, error) {
	var raw map[string]any
	if err := readJSON(path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// LoadSamplesFile reads a JSON list of observed salaries from path.
func LoadSamplesFile(path string) ([]float64, error) {
	var samples []float64
	if err := readJSON(path, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}

func readJSON(path string, target any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return err
	}

	if stat.Size() == 0 {
		return nil
	}

	if err := json.NewDecoder(file).Decode(target); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
