package domain

// OutcomeStatus classifies the result of processing a single source file.
type OutcomeStatus string

const (
	// StatusConverted indicates the codec produced a fresh output file.
	StatusConverted OutcomeStatus = "converted"
	// StatusSkipped indicates the file was unchanged since the last
	// successful conversion and the codec was not invoked.
	StatusSkipped OutcomeStatus = "skipped"
	// StatusFailed indicates a per-file failure. Failures never abort the
	// run or sibling files.
	StatusFailed OutcomeStatus = "failed"
)

// Outcome is the per-file result collected by the runner.
type Outcome struct {
	// Source is the normalized absolute source path.
	Source string
	// Output is the written output path. Empty for skips and failures.
	Output string
	// Status classifies the result.
	Status OutcomeStatus
	// Err carries the failure reason when Status is StatusFailed.
	Err error
}

// Summary aggregates the outcomes of a whole run.
type Summary struct {
	Outcomes []Outcome
}

// Count returns the number of outcomes with the given status.
func (s *Summary) Count(status OutcomeStatus) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Failures returns the failed outcomes.
func (s *Summary) Failures() []Outcome {
	var failed []Outcome
	for _, o := range s.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}
