package profile

import "errors"

// Kind tags the outcome of an engine calculation.
type Kind string

const (
	KindComputed      Kind = "computed"
	KindInputError    Kind = "input_error"
	KindInternalError Kind = "internal_error"
)

// KindOf classifies err. Decode sentinels are input errors, nil is computed
// and anything else is internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindComputed
	case errors.Is(err, ErrMalformedResume),
		errors.Is(err, ErrMalformedPosting),
		errors.Is(err, ErrEmptyPosting):
		return KindInputError
	default:
		return KindInternalError
	}
}
