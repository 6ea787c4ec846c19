package metrics

// Metric attribute keys shared across instruments.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrSource   = "source"
	AttrEndpoint = "endpoint"
	AttrOutcome  = "outcome"
)

// Outcome values attached to chart renders.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
