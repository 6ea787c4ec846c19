package nhl

const (
	defaultLegacyBaseURL = "https://statsapi.web.nhl.com/api/v1"
	defaultEdgeBaseURL   = "https://api-web.nhle.com/v1"

	// errorBodyLimit caps how much of a failed response body ends up in a StatusError.
	errorBodyLimit = 512
)

// Endpoint labels used for upstream metrics.
const (
	endpointLegacyFeed     = "legacy.feed"
	endpointLegacySchedule = "legacy.schedule"
	endpointEdgeLanding    = "edge.landing"
	endpointEdgeBoxscore   = "edge.boxscore"
	endpointEdgePlayByPlay = "edge.play-by-play"
	endpointAdhoc          = "adhoc"
)
