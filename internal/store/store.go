package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Assignment records one employee being chosen for a task draft, together with
// the score breakdown that was on screen when the choice was made.
type Assignment struct {
	ID     uuid.UUID `json:"id"`
	TaskID string    `json:"task_id"`

	// Draft, passed through unchanged to the data service
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Priority       Priority `json:"priority"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time,omitempty"`
	DueDate        string   `json:"due_date,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	RequiredSkills []string `json:"required_skills"`

	AssignedTo string `json:"assigned_to"`
	AssignedBy string `json:"assigned_by,omitempty"`

	// Scoring snapshot
	MatchScore    int               `json:"match_score"`
	Factors       []matching.Factor `json:"factors,omitempty"`
	Reasons       []string          `json:"reasons,omitempty"`
	RosterVersion string            `json:"roster_version,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// Audited is false when the audit row could not be written; ID is then unset.
	Audited bool `json:"audited"`
}

type AssignmentFilter struct {
	AssignedTo string
	AssignedBy string
	Limit      int
	Offset     int
}

type AssignmentStats struct {
	TotalAssignments int            `json:"total_assignments"`
	AvgMatchScore    float64        `json:"avg_match_score"`
	PerEmployee      map[string]int `json:"per_employee"`
}

type Store interface {
	CreateAssignment(ctx context.Context, a *Assignment) error
	GetAssignment(ctx context.Context, id uuid.UUID) (*Assignment, error)
	ListAssignments(ctx context.Context, filter AssignmentFilter) ([]*Assignment, error)
	GetStats(ctx context.Context) (*AssignmentStats, error)
	Close() error
}
