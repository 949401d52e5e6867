package model

// Conversion result statuses. These are the only values a converter may
// return; anything else is treated as a failure by the orchestrator rather
// than silently passing as success.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ConversionResult is the outcome of converting a single dataset.
//
// A result with StatusError reports a per-dataset failure: the orchestrator
// surfaces the message and moves on to the next dataset. Only structural
// problems (unreadable paths, malformed documents, dispatch failures) are
// returned as Go errors and abort the run.
type ConversionResult struct {
	// Status is StatusOK or StatusError.
	Status string `json:"status"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`

	// EpisodesConverted is the number of episodes written, when known.
	// Zero with Status == StatusOK means the converter did not count.
	EpisodesConverted int `json:"episodes_converted,omitempty"`
}

// OK reports whether the result carries the accepted success status.
func (r *ConversionResult) OK() bool {
	return r.Status == StatusOK
}
