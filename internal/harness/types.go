package harness

import "github.com/roach88/gildedrose/internal/engine"

// Result is the outcome of a scenario.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool `json:"pass"`

	// Days holds one snapshot per simulated day, day 0 first.
	Days []engine.Snapshot `json:"days"`

	// Errors contains one message per failed assertion.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result with no days recorded.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Days:   []engine.Snapshot{},
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Record appends a day snapshot. It satisfies engine.Observer.
func (r *Result) Record(s engine.Snapshot) error {
	r.Days = append(r.Days, s)
	return nil
}

// Final returns the last recorded day, or false if nothing ran.
func (r *Result) Final() (engine.Snapshot, bool) {
	if len(r.Days) == 0 {
		return engine.Snapshot{}, false
	}
	return r.Days[len(r.Days)-1], true
}
