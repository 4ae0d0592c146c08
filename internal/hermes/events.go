package hermes

import "time"

type TaskAssignedEvent struct {
	AssignmentID  string    `json:"assignment_id,omitempty"`
	TaskID        string    `json:"task_id"`
	Title         string    `json:"title"`
	AssignedTo    string    `json:"assigned_to"`
	AssignedBy    string    `json:"assigned_by,omitempty"`
	MatchScore    int       `json:"match_score"`
	RosterVersion string    `json:"roster_version"`
	Timestamp     time.Time `json:"timestamp"`
}

type MatchComputedEvent struct {
	RequirementKey string    `json:"requirement_key"`
	RosterVersion  string    `json:"roster_version"`
	Candidates     int       `json:"candidates"`
	BestEmployee   string    `json:"best_employee,omitempty"`
	BestScore      int       `json:"best_score"`
	Source         string    `json:"source"`
	Timestamp      time.Time `json:"timestamp"`
}

type RosterRefreshedEvent struct {
	RosterVersion string    `json:"roster_version"`
	Employees     int       `json:"employees"`
	Skills        int       `json:"skills"`
	Timestamp     time.Time `json:"timestamp"`
}
