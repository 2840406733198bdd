package testutil

// FixedRunID returns the same run ID on every call.
//
// Unlike engine.FixedGenerator, which hands out a list of IDs in order and
// panics when it runs out, FixedRunID can back any number of runs. Scenarios
// rely on this so the same file always produces byte-identical reports.
type FixedRunID struct {
	id string
}

// DefaultRunID is used when a scenario does not name its run.
const DefaultRunID = "test-run-default"

// NewFixedRunID creates a generator for id, or DefaultRunID if id is empty.
func NewFixedRunID(id string) *FixedRunID {
	if id == "" {
		id = DefaultRunID
	}
	return &FixedRunID{id: id}
}

// Generate returns the fixed run ID.
// Implements engine.RunIDGenerator.
func (g *FixedRunID) Generate() string {
	return g.id
}
