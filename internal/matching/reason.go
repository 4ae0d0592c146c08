package matching

// Category groups a reason by the sub-score that produced it.
type Category string

const (
	CategorySkill        Category = "skill"
	CategoryWorkload     Category = "workload"
	CategoryPerformance  Category = "performance"
	CategoryAvailability Category = "availability"
)

// Impact is the valence of a reason.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// ReasonCode identifies which rule emitted a reason.
type ReasonCode string

const (
	ReasonSkillMatched         ReasonCode = "skill_matched"
	ReasonSkillMissing         ReasonCode = "skill_missing"
	ReasonLowWorkload          ReasonCode = "low_workload"
	ReasonHighWorkload         ReasonCode = "high_workload"
	ReasonExcellentPerformance ReasonCode = "excellent_performance"
	ReasonBelowAverage         ReasonCode = "below_average_performance"
	ReasonOnShift              ReasonCode = "on_shift"
	ReasonOffShift             ReasonCode = "off_shift"
)

// Reason is a structured justification. Only the parameters relevant to Code are set.
type Reason struct {
	Category Category   `json:"category"`
	Impact   Impact     `json:"impact"`
	Code     ReasonCode `json:"code"`

	SkillID     string      `json:"skillId,omitempty"`
	SkillName   string      `json:"skillName,omitempty"`
	Level       Proficiency `json:"level,omitempty"`
	Certified   bool        `json:"certified,omitempty"`
	Workload    float64     `json:"workload,omitempty"`
	Performance float64     `json:"performance,omitempty"`
	Shift       string      `json:"shift,omitempty"`
}
