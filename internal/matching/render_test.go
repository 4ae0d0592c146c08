package matching

import "testing"

func TestTextRenderer(t *testing.T) {
	tests := []struct {
		name   string
		reason Reason
		want   string
	}{
		{"certified skill", Reason{Code: ReasonSkillMatched, SkillName: "CNC Machining", Level: LevelExpert, Certified: true}, "CNC Machining - expert level (Certified)"},
		{"uncertified skill", Reason{Code: ReasonSkillMatched, SkillName: "MIG Welding", Level: LevelIntermediate}, "MIG Welding - intermediate level"},
		{"missing skill", Reason{Code: ReasonSkillMissing, SkillName: "Forklift"}, "Missing: Forklift"},
		{"low workload", Reason{Code: ReasonLowWorkload, Workload: 35}, "Low current workload (35%)"},
		{"high workload fractional", Reason{Code: ReasonHighWorkload, Workload: 82.5}, "High current workload (82.5%)"},
		{"excellent", Reason{Code: ReasonExcellentPerformance, Performance: 92}, "Excellent performance rating (92/100)"},
		{"below average", Reason{Code: ReasonBelowAverage, Performance: 68}, "Below average performance (68/100)"},
		{"on shift", Reason{Code: ReasonOnShift, Shift: "Afternoon"}, "Available (Afternoon shift)"},
		{"off shift", Reason{Code: ReasonOffShift, Shift: "Night"}, "Not on shift during task time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (TextRenderer{}).Render(tt.reason); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderAll(t *testing.T) {
	e := Employee{Shift: "Morning", CurrentWorkload: 20, PerformanceScore: 95, Skills: []SkillRecord{{SkillID: "skill-1", Level: LevelExpert}}}
	r := Score(TaskRequirement{RequiredSkills: []string{"skill-1"}, StartTime: "10:00"}, e, testCatalog())

	labels := RenderAll(TextRenderer{}, r.Reasons)
	want := []string{
		"CNC Machining - expert level",
		"Low current workload (20%)",
		"Excellent performance rating (95/100)",
		"Available (Morning shift)",
	}
	if len(labels) != len(want) {
		t.Fatalf("got %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label %d: got %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestRequirementKey(t *testing.T) {
	a := RequirementKey(TaskRequirement{RequiredSkills: []string{"A", "B"}, StartTime: "09:00", EndTime: "10:00"})
	b := RequirementKey(TaskRequirement{RequiredSkills: []string{"A", "B"}, StartTime: "09:00", EndTime: "17:00"})
	if a != b {
		t.Errorf("end time must not change the key: %q vs %q", a, b)
	}
	if a == RequirementKey(TaskRequirement{RequiredSkills: []string{"A"}, StartTime: "09:00"}) {
		t.Error("skill set change must change the key")
	}
	if a == RequirementKey(TaskRequirement{RequiredSkills: []string{"A", "B"}, StartTime: "15:00"}) {
		t.Error("start time change must change the key")
	}
	if a == RequirementKey(TaskRequirement{RequiredSkills: []string{"B", "A"}, StartTime: "09:00"}) {
		t.Error("skill order drives reason order and must change the key")
	}
}

func TestTier(t *testing.T) {
	tests := map[float64]string{100: "excellent", 80: "excellent", 79: "good", 60: "good", 45: "fair", 39: "poor"}
	for score, want := range tests {
		if got := Tier(score); got != want {
			t.Errorf("Tier(%v) = %q, want %q", score, got, want)
		}
	}
}

func TestProficiencyRank(t *testing.T) {
	levels := []Proficiency{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}
	for i := 1; i < len(levels); i++ {
		if levels[i].Rank() <= levels[i-1].Rank() {
			t.Errorf("%s should outrank %s", levels[i], levels[i-1])
		}
	}
	if Proficiency("guru").Rank() != 0 {
		t.Error("unknown level should rank 0")
	}
}
