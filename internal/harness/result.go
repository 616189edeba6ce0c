package harness

import "time"

// Status is the outcome of a single case.
type Status string

// Case outcomes.
const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP"
)

// Kind separates functional checks from timed load runs.
type Kind string

// Case kinds.
const (
	KindFunctional Kind = "functional"
	KindLoad       Kind = "load"
)

// Result holds the outcome of one case.
type Result struct {
	Suite    string        `json:"suite"`
	Case     string        `json:"case"`
	Kind     Kind          `json:"kind"`
	Status   Status        `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration_ns,omitempty"`
	Size     int           `json:"size,omitempty"`
}

// Failed reports whether any result in results failed.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
