package matching

// Fixed match weights. The availability bonus is a flat addition, not a share of
// a 100-point budget, so the composition is deliberately not normalised.
const (
	SkillWeight       = 0.4
	WorkloadWeight    = 0.3
	PerformanceWeight = 0.2
	AvailabilityBonus = 10.0
)

// Factor names used in MatchResult.Factors.
const (
	FactorSkill        = "skill_match"
	FactorWorkload     = "workload"
	FactorPerformance  = "performance"
	FactorAvailability = "availability"
)
