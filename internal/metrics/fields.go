package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod  = "method"
	AttrPath    = "path"
	AttrStatus  = "status"
	AttrFeed    = "feed"
	AttrOutcome = "outcome"
)

// Upstream call outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)
