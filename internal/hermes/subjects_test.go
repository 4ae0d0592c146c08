package hermes

import (
	"strings"
	"testing"
)

func TestSubjectsCoveredByStream(t *testing.T) {
	prefixes := []string{"optiwork.task.", "optiwork.match.", "optiwork.roster."}
	subjects := []string{
		SubjectTaskAssigned("1700000000000"),
		SubjectMatchComputed,
		SubjectRosterChanged,
		SubjectRosterRefresh,
	}
	for _, s := range subjects {
		covered := false
		for _, p := range prefixes {
			if strings.HasPrefix(s, p) {
				covered = true
				break
			}
		}
		if !covered {
			t.Errorf("subject %s is not captured by stream %s", s, StreamName)
		}
	}
}

func TestSubjectTaskAssigned(t *testing.T) {
	if got := SubjectTaskAssigned("42"); got != "optiwork.task.42.assigned" {
		t.Errorf("got %s", got)
	}
}
