package convert

import "errors"

// Structural errors abort a conversion run before or during the dataset
// loop. They are distinct from per-dataset failures, which travel as
// model.ConversionResult values and never stop the run.
var (
	// ErrUnsupportedFormat is returned when the requested target format is
	// not in the registry.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMissingInput is returned when an explicit input path was given but
	// does not exist.
	ErrMissingInput = errors.New("input directory does not exist")
)

// RunError wraps any structural failure that aborted a conversion run.
//
// Callers can distinguish a structural abort from per-dataset failures
// (which only affect Summary counts) by checking for this type, and reach
// the original cause with errors.Is/errors.As through Unwrap.
type RunError struct {
	Err error
}

func (e *RunError) Error() string {
	return "conversion failed: " + e.Err.Error()
}

func (e *RunError) Unwrap() error {
	return e.Err
}
