package matching

import (
	"math"
	"testing"
)

func testCatalog() Catalog {
	return NewCatalog([]Skill{
		{ID: "A", Name: "A"},
		{ID: "B", Name: "B"},
		{ID: "skill-1", Name: "CNC Machining", Category: "Machining"},
	})
}

func TestScoreCertifiedPartialMatch(t *testing.T) {
	e := Employee{
		ID:    "E1",
		Name:  "Kumar R",
		Shift: "Morning",
		Skills: []SkillRecord{{
			SkillID:        "A",
			Level:          LevelAdvanced,
			Certifications: []Certification{{ID: "c1", Status: CertActive}},
		}},
		CurrentWorkload:  20,
		PerformanceScore: 95,
	}
	task := TaskRequirement{RequiredSkills: []string{"A", "B"}, StartTime: "09:00"}

	r := Score(task, e, testCatalog())

	if r.SkillMatch != 50 {
		t.Errorf("skill match: got %f, want 50", r.SkillMatch)
	}
	if r.WorkloadScore != 80 {
		t.Errorf("workload score: got %f, want 80", r.WorkloadScore)
	}
	if r.PerformanceScore != 95 {
		t.Errorf("performance score: got %f, want 95", r.PerformanceScore)
	}
	if !r.Availability {
		t.Error("expected available")
	}
	if r.MatchScore != 73 {
		t.Errorf("match score: got %d, want 73", r.MatchScore)
	}

	want := []Reason{
		{Category: CategorySkill, Impact: ImpactPositive, Code: ReasonSkillMatched, SkillID: "A", SkillName: "A", Level: LevelAdvanced, Certified: true},
		{Category: CategorySkill, Impact: ImpactNegative, Code: ReasonSkillMissing, SkillID: "B", SkillName: "B"},
		{Category: CategoryWorkload, Impact: ImpactPositive, Code: ReasonLowWorkload, Workload: 20},
		{Category: CategoryPerformance, Impact: ImpactPositive, Code: ReasonExcellentPerformance, Performance: 95},
		{Category: CategoryAvailability, Impact: ImpactPositive, Code: ReasonOnShift, Shift: "Morning"},
	}
	if len(r.Reasons) != len(want) {
		t.Fatalf("expected %d reasons, got %d: %+v", len(want), len(r.Reasons), r.Reasons)
	}
	for i := range want {
		if r.Reasons[i] != want[i] {
			t.Errorf("reason %d: got %+v, want %+v", i, r.Reasons[i], want[i])
		}
	}
}

func TestScoreNoSkillsRequiredOffShift(t *testing.T) {
	e := Employee{ID: "E2", Shift: "Afternoon", CurrentWorkload: 0, PerformanceScore: 100}
	r := Score(TaskRequirement{StartTime: "09:00"}, e, nil)

	if r.SkillMatch != 100 {
		t.Errorf("skill match: got %f, want 100", r.SkillMatch)
	}
	if r.Availability {
		t.Error("afternoon shift should not cover 09:00")
	}
	if r.MatchScore != 90 {
		t.Errorf("match score: got %d, want 90", r.MatchScore)
	}
	last := r.Reasons[len(r.Reasons)-1]
	if last.Code != ReasonOffShift || last.Impact != ImpactNegative {
		t.Errorf("expected off-shift reason last, got %+v", last)
	}
}

func TestScoreNilSkills(t *testing.T) {
	e := Employee{ID: "E3", Skills: nil}
	r := Score(TaskRequirement{RequiredSkills: []string{"A"}, StartTime: "09:00"}, e, testCatalog())

	if r.SkillMatch != 0 {
		t.Errorf("skill match: got %f, want 0", r.SkillMatch)
	}
	if len(r.Reasons) == 0 || r.Reasons[0].Code != ReasonSkillMissing {
		t.Fatalf("expected missing-skill reason first, got %+v", r.Reasons)
	}
	if got := (TextRenderer{}).Render(r.Reasons[0]); got != "Missing: A" {
		t.Errorf("got %q, want %q", got, "Missing: A")
	}
}

func TestSkillMatchEmptyRequirement(t *testing.T) {
	employees := []Employee{
		{ID: "1"},
		{ID: "2", Skills: []SkillRecord{{SkillID: "A"}}},
	}
	for _, e := range employees {
		score, reasons := SkillMatch(nil, &e, nil)
		if score != 100 {
			t.Errorf("employee %s: got %f, want 100", e.ID, score)
		}
		if len(reasons) != 0 {
			t.Errorf("employee %s: expected no skill reasons, got %d", e.ID, len(reasons))
		}
	}
}

func TestSkillMatchNameFallback(t *testing.T) {
	e := Employee{Skills: []SkillRecord{{SkillID: "s-9", SkillName: "Forklift", Level: LevelBeginner}}}
	_, reasons := SkillMatch([]string{"s-9", "s-10"}, &e, nil)
	if reasons[0].SkillName != "Forklift" {
		t.Errorf("expected employee's own skill name, got %q", reasons[0].SkillName)
	}
	if reasons[1].SkillName != "s-10" {
		t.Errorf("expected raw id for unknown skill, got %q", reasons[1].SkillName)
	}
}

func TestSkillMatchDuplicateRequirement(t *testing.T) {
	e := Employee{Skills: []SkillRecord{{SkillID: "A"}}}
	r := Score(TaskRequirement{RequiredSkills: []string{"A", "A", "B"}, StartTime: "09:00"}, e, nil)
	if r.SkillMatch != 50 {
		t.Errorf("duplicates should collapse: got %f, want 50", r.SkillMatch)
	}
}

func TestWorkloadScore(t *testing.T) {
	tests := []struct {
		name     string
		workload float64
		want     float64
		code     ReasonCode
	}{
		{"idle", 0, 100, ReasonLowWorkload},
		{"saturated", 100, 0, ReasonHighWorkload},
		{"just under low", 39, 61, ReasonLowWorkload},
		{"low boundary", 40, 60, ""},
		{"high boundary", 75, 25, ""},
		{"just over high", 76, 24, ReasonHighWorkload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reasons := WorkloadScore(&Employee{CurrentWorkload: tt.workload})
			if score != tt.want {
				t.Errorf("got %f, want %f", score, tt.want)
			}
			if tt.code == "" {
				if len(reasons) != 0 {
					t.Errorf("expected no reason, got %+v", reasons)
				}
				return
			}
			if len(reasons) != 1 || reasons[0].Code != tt.code {
				t.Errorf("expected %s, got %+v", tt.code, reasons)
			}
		})
	}
}

func TestPerformanceScore(t *testing.T) {
	tests := []struct {
		perf   float64
		code   ReasonCode
		impact Impact
	}{
		{95, ReasonExcellentPerformance, ImpactPositive},
		{90, ReasonExcellentPerformance, ImpactPositive},
		{89, "", ""},
		{75, "", ""},
		{74, ReasonBelowAverage, ImpactNeutral},
		{0, ReasonBelowAverage, ImpactNeutral},
	}
	for _, tt := range tests {
		score, reasons := PerformanceScore(&Employee{PerformanceScore: tt.perf})
		if score != tt.perf {
			t.Errorf("perf %v: passthrough broken, got %f", tt.perf, score)
		}
		if tt.code == "" {
			if len(reasons) != 0 {
				t.Errorf("perf %v: expected no reason, got %+v", tt.perf, reasons)
			}
			continue
		}
		if len(reasons) != 1 || reasons[0].Code != tt.code || reasons[0].Impact != tt.impact {
			t.Errorf("perf %v: expected %s/%s, got %+v", tt.perf, tt.code, tt.impact, reasons)
		}
	}
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		shift string
		start string
		want  bool
	}{
		{"Morning", "09:00", true},
		{"Morning", "15:59", true},
		{"Morning", "16:00", false},
		{"Afternoon", "13:59", false},
		{"Afternoon", "14:00", true},
		{"Afternoon", "22:30", true},
		// Both day shifts cover the 14:00-16:00 overlap.
		{"Morning", "14:30", true},
		{"Afternoon", "15:00", true},
		// No rule exists for a night shift; it is never available.
		{"Night", "23:00", false},
		{"Night", "02:00", false},
		{"morning", "09:00", false},
		{"", "09:00", false},
		{"Morning", "", false},
		{"Morning", "abc", false},
		{"Morning", "9", true},
	}
	for _, tt := range tests {
		t.Run(tt.shift+"@"+tt.start, func(t *testing.T) {
			got, reasons := Available(&Employee{Shift: tt.shift}, tt.start)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if len(reasons) != 1 {
				t.Fatalf("expected exactly one availability reason, got %d", len(reasons))
			}
		})
	}
}

func TestStartHour(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"09:00", 9, true},
		{"14:15", 14, true},
		{" 7:05 ", 7, true},
		{"23", 23, true},
		{":30", 0, false},
		{"", 0, false},
		{"+9:00", 9, true},
		{"-1:00", -1, true},
		{"+:00", 0, false},
		{"-x:00", 0, false},
	}
	for _, tt := range tests {
		h, ok := StartHour(tt.in)
		if h != tt.want || ok != tt.ok {
			t.Errorf("StartHour(%q) = %d, %v; want %d, %v", tt.in, h, ok, tt.want, tt.ok)
		}
	}
}

func TestAvailableSignedStartHour(t *testing.T) {
	morning := &Employee{Shift: ShiftMorning}
	afternoon := &Employee{Shift: ShiftAfternoon}

	if ok, _ := Available(morning, "+9:00"); !ok {
		t.Error("+9:00 should be read as hour 9 and fall in the Morning shift")
	}
	if ok, _ := Available(morning, "-1:00"); !ok {
		t.Error("-1:00 should be read as hour -1 and fall in the Morning shift")
	}
	if ok, _ := Available(afternoon, "-1:00"); ok {
		t.Error("-1:00 should not fall in the Afternoon shift")
	}
	if ok, _ := Available(afternoon, "+15:00"); !ok {
		t.Error("+15:00 should fall in the Afternoon shift")
	}
}

func TestMatchScoreMonotonic(t *testing.T) {
	base := Employee{
		Shift:            "Morning",
		Skills:           []SkillRecord{{SkillID: "A"}},
		CurrentWorkload:  50,
		PerformanceScore: 50,
	}
	task := TaskRequirement{RequiredSkills: []string{"A", "B"}, StartTime: "10:00"}
	ref := Score(task, base, nil).MatchScore

	more := base
	more.Skills = []SkillRecord{{SkillID: "A"}, {SkillID: "B"}}
	if s := Score(task, more, nil).MatchScore; s < ref {
		t.Errorf("more skills lowered score: %d < %d", s, ref)
	}

	prev := -1
	for w := 100.0; w >= 0; w -= 5 {
		e := base
		e.CurrentWorkload = w
		s := Score(task, e, nil).MatchScore
		if s < prev {
			t.Errorf("score decreased as workload dropped to %v: %d < %d", w, s, prev)
		}
		prev = s
	}

	prev = -1
	for p := 0.0; p <= 100; p += 5 {
		e := base
		e.PerformanceScore = p
		s := Score(task, e, nil).MatchScore
		if s < prev {
			t.Errorf("score decreased as performance rose to %v: %d < %d", p, s, prev)
		}
		prev = s
	}
}

func TestFactorsSumToScore(t *testing.T) {
	e := Employee{Shift: "Afternoon", CurrentWorkload: 33, PerformanceScore: 81, Skills: []SkillRecord{{SkillID: "A"}}}
	r := Score(TaskRequirement{RequiredSkills: []string{"A", "B", "C"}, StartTime: "15:00"}, e, nil)

	var total float64
	for _, f := range r.Factors {
		total += f.Weighted
	}
	if int(math.Floor(total+0.5)) != r.MatchScore {
		t.Errorf("factors sum to %f, score is %d", total, r.MatchScore)
	}
	if len(r.Factors) != 4 {
		t.Errorf("expected 4 factors, got %d", len(r.Factors))
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{72.5, 73},
		{72.49, 72},
		{0, 0},
		{-2.5, -2},
		{100.4, 100},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestComputeMatchesEmptyRoster(t *testing.T) {
	results := ComputeMatches(TaskRequirement{StartTime: "09:00"}, nil, nil)
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", results)
	}
	if BestMatch(results) != nil {
		t.Error("expected nil best match for empty roster")
	}
}

func TestComputeMatchesRanking(t *testing.T) {
	roster := []Employee{
		{ID: "busy", Shift: "Morning", CurrentWorkload: 90, PerformanceScore: 70},
		{ID: "twin-1", Shift: "Morning", CurrentWorkload: 30, PerformanceScore: 85},
		{ID: "night", Shift: "Night", CurrentWorkload: 0, PerformanceScore: 60},
		{ID: "twin-2", Shift: "Morning", CurrentWorkload: 30, PerformanceScore: 85},
	}
	results := ComputeMatches(TaskRequirement{StartTime: "08:00"}, roster, nil)

	if len(results) != len(roster) {
		t.Fatalf("expected every candidate, got %d", len(results))
	}
	order := []string{results[0].Employee.ID, results[1].Employee.ID, results[2].Employee.ID, results[3].Employee.ID}
	want := []string{"twin-1", "twin-2", "night", "busy"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("ranking: got %v, want %v", order, want)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].MatchScore > results[i-1].MatchScore {
			t.Errorf("not sorted descending at %d", i)
		}
	}

	best := BestMatch(results)
	if best == nil || best.Employee.ID != "twin-1" {
		t.Errorf("expected twin-1 as best match, got %+v", best)
	}
}

func TestComputeMatchesDoesNotMutateInput(t *testing.T) {
	roster := []Employee{
		{ID: "a", CurrentWorkload: 90},
		{ID: "b", Shift: "Morning"},
	}
	_ = ComputeMatches(TaskRequirement{StartTime: "09:00"}, roster, nil)
	if roster[0].ID != "a" || roster[1].ID != "b" {
		t.Error("input roster was reordered")
	}
}
