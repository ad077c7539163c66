package domain

import "fmt"

// Failure is one finding of a content scan.
type Failure struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Path, f.Message)
}

// ReportFailures returns nil when there is nothing to report, otherwise a
// FailuresError holding every failure in order.
func ReportFailures(failures []Failure) error {
	if len(failures) == 0 {
		return nil
	}
	return &FailuresError{Failures: failures}
}
