package matching

import (
	"strconv"
	"strings"
)

// RequirementKey identifies a requirement by the fields that feed the matcher:
// the required skills (in order) and the start time. Callers use it to skip
// recomputation when only pass-through task fields change.
func RequirementKey(task TaskRequirement) string {
	var b strings.Builder
	b.WriteString("start=")
	b.WriteString(strings.TrimSpace(task.StartTime))
	b.WriteString(";skills=")
	for i, id := range uniqueSkills(task.RequiredSkills) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(id))
	}
	return b.String()
}
