package matching

// Proficiency is an employee's level in a skill.
type Proficiency string

const (
	LevelBeginner     Proficiency = "beginner"
	LevelIntermediate Proficiency = "intermediate"
	LevelAdvanced     Proficiency = "advanced"
	LevelExpert       Proficiency = "expert"
)

// Rank orders proficiency levels; unknown levels rank below beginner.
func (p Proficiency) Rank() int {
	switch p {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	case LevelExpert:
		return 4
	default:
		return 0
	}
}

type CertificationStatus string

const (
	CertActive  CertificationStatus = "active"
	CertExpired CertificationStatus = "expired"
	CertPending CertificationStatus = "pending"
)

type Certification struct {
	ID         string              `json:"id" yaml:"id"`
	Name       string              `json:"name" yaml:"name"`
	IssueDate  string              `json:"issueDate,omitempty" yaml:"issue_date"`
	ExpiryDate string              `json:"expiryDate,omitempty" yaml:"expiry_date"`
	Status     CertificationStatus `json:"status" yaml:"status"`
}

// SkillRecord is one skill held by an employee.
type SkillRecord struct {
	SkillID         string          `json:"skillId" yaml:"skill_id"`
	SkillName       string          `json:"skillName,omitempty" yaml:"skill_name"`
	Level           Proficiency     `json:"level" yaml:"level"`
	YearsExperience float64         `json:"yearsExperience" yaml:"years_experience"`
	Certifications  []Certification `json:"certifications,omitempty" yaml:"certifications"`
	LastUsed        string          `json:"lastUsed,omitempty" yaml:"last_used"`
}

// Certified reports whether the record carries at least one active certification.
func (r SkillRecord) Certified() bool {
	for _, c := range r.Certifications {
		if c.Status == CertActive {
			return true
		}
	}
	return false
}

// Employee is a roster entry. Workload and performance are 0-100; absent values decode as 0.
type Employee struct {
	ID               string        `json:"id" yaml:"id"`
	Name             string        `json:"name" yaml:"name"`
	Role             string        `json:"role,omitempty" yaml:"role"`
	EmployeeID       string        `json:"employeeId,omitempty" yaml:"employee_id"`
	Department       string        `json:"department,omitempty" yaml:"department"`
	Shift            string        `json:"shift,omitempty" yaml:"shift"`
	Skills           []SkillRecord `json:"skills,omitempty" yaml:"skills"`
	CurrentWorkload  float64       `json:"currentWorkload" yaml:"current_workload"`
	PerformanceScore float64       `json:"performanceScore" yaml:"performance_score"`
}

func (e *Employee) skill(id string) (SkillRecord, bool) {
	for _, s := range e.Skills {
		if s.SkillID == id {
			return s, true
		}
	}
	return SkillRecord{}, false
}

// Skill is a skill library entry.
type Skill struct {
	ID                    string `json:"id" yaml:"id"`
	Name                  string `json:"name" yaml:"name"`
	Category              string `json:"category,omitempty" yaml:"category"`
	Description           string `json:"description,omitempty" yaml:"description"`
	RequiresCertification bool   `json:"requiresCertification" yaml:"requires_certification"`
	Department            string `json:"department,omitempty" yaml:"department"`
}

// Catalog resolves skill ids to library entries. A nil Catalog is valid and empty.
type Catalog map[string]Skill

// NewCatalog indexes skills by id. Later duplicates win.
func NewCatalog(skills []Skill) Catalog {
	c := make(Catalog, len(skills))
	for _, s := range skills {
		c[s.ID] = s
	}
	return c
}

// TaskRequirement holds the task fields that feed the matcher.
type TaskRequirement struct {
	RequiredSkills []string `json:"requiredSkills" yaml:"required_skills"`
	StartTime      string   `json:"startTime" yaml:"start_time"`
	EndTime        string   `json:"endTime,omitempty" yaml:"end_time"`
}

// MatchResult is the scored outcome for one employee against one task.
type MatchResult struct {
	Employee         Employee `json:"employee"`
	MatchScore       int      `json:"matchScore"`
	Reasons          []Reason `json:"reasons"`
	SkillMatch       float64  `json:"skillMatch"`
	WorkloadScore    float64  `json:"workloadScore"`
	PerformanceScore float64  `json:"performanceScore"`
	Availability     bool     `json:"availability"`
	Factors          []Factor `json:"factors"`
}
