package output

import "errors"

// SilentError marks a provisioning failure that a sink has already rendered.
// The CLI entry point checks IsSilent before printing, so the user sees the
// failure once, in the sink's formatting, not twice.
type SilentError struct {
	Err error
}

func (e *SilentError) Error() string {
	return e.Err.Error()
}

func (e *SilentError) Unwrap() error {
	return e.Err
}

func NewSilentError(err error) *SilentError {
	return &SilentError{Err: err}
}

// IsSilent reports whether err, or anything it wraps, is a SilentError.
func IsSilent(err error) bool {
	var silent *SilentError
	return errors.As(err, &silent)
}
