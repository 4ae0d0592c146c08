package hermes

const (
	SubjectMatchComputed = "optiwork.match.computed"
	SubjectRosterChanged = "optiwork.roster.changed"
	SubjectRosterRefresh = "optiwork.roster.refreshed"

	StreamName   = "OPTIWORK_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectTaskAssigned(taskID string) string { return "optiwork.task." + taskID + ".assigned" }
