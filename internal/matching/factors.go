package matching

import (
	"strconv"
	"strings"
)

// Factor captures one sub-score's contribution to the match score.
type Factor struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// SkillMatch returns the percentage of required skills the employee holds, plus one
// reason per required skill: matched ones first, then missing ones.
func SkillMatch(req []string, e *Employee, catalog Catalog) (float64, []Reason) {
	if len(req) == 0 {
		return 100, nil
	}

	var matched, missing []Reason
	for _, id := range req {
		rec, ok := e.skill(id)
		if !ok {
			missing = append(missing, Reason{
				Category:  CategorySkill,
				Impact:    ImpactNegative,
				Code:      ReasonSkillMissing,
				SkillID:   id,
				SkillName: skillName(id, catalog, ""),
			})
			continue
		}
		matched = append(matched, Reason{
			Category:  CategorySkill,
			Impact:    ImpactPositive,
			Code:      ReasonSkillMatched,
			SkillID:   id,
			SkillName: skillName(id, catalog, rec.SkillName),
			Level:     rec.Level,
			Certified: rec.Certified(),
		})
	}

	score := float64(len(matched)) / float64(len(req)) * 100
	return score, append(matched, missing...)
}

func skillName(id string, catalog Catalog, own string) string {
	if s, ok := catalog[id]; ok && s.Name != "" {
		return s.Name
	}
	if own != "" {
		return own
	}
	return id
}

// WorkloadScore is the employee's spare capacity: 100 minus current workload.
func WorkloadScore(e *Employee) (float64, []Reason) {
	w := e.CurrentWorkload
	switch {
	case w < 40:
		return 100 - w, []Reason{{Category: CategoryWorkload, Impact: ImpactPositive, Code: ReasonLowWorkload, Workload: w}}
	case w > 75:
		return 100 - w, []Reason{{Category: CategoryWorkload, Impact: ImpactNegative, Code: ReasonHighWorkload, Workload: w}}
	}
	return 100 - w, nil
}

// PerformanceScore passes the employee's rating through unchanged.
func PerformanceScore(e *Employee) (float64, []Reason) {
	p := e.PerformanceScore
	switch {
	case p >= 90:
		return p, []Reason{{Category: CategoryPerformance, Impact: ImpactPositive, Code: ReasonExcellentPerformance, Performance: p}}
	case p < 75:
		return p, []Reason{{Category: CategoryPerformance, Impact: ImpactNeutral, Code: ReasonBelowAverage, Performance: p}}
	}
	return p, nil
}

const (
	ShiftMorning   = "Morning"
	ShiftAfternoon = "Afternoon"
)

// Available reports whether the employee's shift covers the task start hour.
// Morning covers hours before 16, Afternoon covers 14 onwards; the 14-16 overlap is
// intentional and any other shift is never available.
func Available(e *Employee, startTime string) (bool, []Reason) {
	hour, ok := StartHour(startTime)
	avail := ok && ((e.Shift == ShiftMorning && hour < 16) || (e.Shift == ShiftAfternoon && hour >= 14))
	if avail {
		return true, []Reason{{Category: CategoryAvailability, Impact: ImpactPositive, Code: ReasonOnShift, Shift: e.Shift}}
	}
	return false, []Reason{{Category: CategoryAvailability, Impact: ImpactNegative, Code: ReasonOffShift, Shift: e.Shift}}
}

// StartHour reads the leading, optionally signed integer of an "HH:MM" string.
// ok is false when no digits precede the first colon. Negative hours are
// returned as-is and fall inside the Morning window.
func StartHour(startTime string) (int, bool) {
	s := strings.TrimSpace(startTime)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}
	start := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		start = 1
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	h, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return h, true
}
