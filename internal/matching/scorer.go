package matching

import (
	"math"
	"sort"
)

// Score computes the match result for one employee. It never fails: missing values
// count as zero and a nil skill list counts as no skills.
func Score(task TaskRequirement, e Employee, catalog Catalog) MatchResult {
	req := uniqueSkills(task.RequiredSkills)

	skill, reasons := SkillMatch(req, &e, catalog)
	workload, r := WorkloadScore(&e)
	reasons = append(reasons, r...)
	perf, r := PerformanceScore(&e)
	reasons = append(reasons, r...)
	avail, r := Available(&e, task.StartTime)
	reasons = append(reasons, r...)

	availScore := 0.0
	if avail {
		availScore = 1
	}
	factors := []Factor{
		{Name: FactorSkill, Score: skill, Weight: SkillWeight, Weighted: skill * SkillWeight},
		{Name: FactorWorkload, Score: workload, Weight: WorkloadWeight, Weighted: workload * WorkloadWeight},
		{Name: FactorPerformance, Score: perf, Weight: PerformanceWeight, Weighted: perf * PerformanceWeight},
		{Name: FactorAvailability, Score: availScore, Weight: AvailabilityBonus, Weighted: availScore * AvailabilityBonus},
	}

	var total float64
	for _, f := range factors {
		total += f.Weighted
	}

	return MatchResult{
		Employee:         e,
		MatchScore:       roundHalfUp(total),
		Reasons:          reasons,
		SkillMatch:       skill,
		WorkloadScore:    workload,
		PerformanceScore: perf,
		Availability:     avail,
		Factors:          factors,
	}
}

// ComputeMatches scores every employee and ranks them by descending match score.
// Nobody is filtered out; ties keep roster order.
func ComputeMatches(task TaskRequirement, employees []Employee, catalog Catalog) []MatchResult {
	results := make([]MatchResult, 0, len(employees))
	for _, e := range employees {
		results = append(results, Score(task, e, catalog))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

// BestMatch returns the top-ranked result, or nil for an empty ranking.
func BestMatch(results []MatchResult) *MatchResult {
	if len(results) == 0 {
		return nil
	}
	best := results[0]
	return &best
}

// roundHalfUp rounds .5 towards positive infinity, also for negative totals.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func uniqueSkills(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
