package assign

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
	"github.com/MikeSquared-Agency/Optiwork/internal/store"
)

var (
	ErrNoRoster        = errors.New("roster not loaded")
	ErrUnknownEmployee = errors.New("employee not in roster")
	ErrInvalidDraft    = errors.New("invalid task draft")
)

const (
	DefaultStartTime = "09:00"
	DefaultEndTime   = "10:00"
)

// Draft is a task being composed on the assignment screen. Only RequiredSkills and
// StartTime affect matching; everything else is passed through to the data service.
type Draft struct {
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	Priority       store.Priority `json:"priority,omitempty"`
	StartTime      string         `json:"start_time,omitempty"`
	EndTime        string         `json:"end_time,omitempty"`
	DueDate        string         `json:"due_date,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	RequiredSkills []string       `json:"required_skills"`
}

// Requirement extracts the matcher inputs.
func (d Draft) Requirement() matching.TaskRequirement {
	return matching.TaskRequirement{
		RequiredSkills: d.RequiredSkills,
		StartTime:      d.StartTime,
		EndTime:        d.EndTime,
	}
}

// WithDefaults fills the values a fresh assignment form starts with.
func (d Draft) WithDefaults(now time.Time) Draft {
	if d.Priority == "" {
		d.Priority = store.PriorityMedium
	}
	if d.StartTime == "" {
		d.StartTime = DefaultStartTime
	}
	if d.EndTime == "" {
		d.EndTime = DefaultEndTime
	}
	if d.DueDate == "" {
		d.DueDate = now.Format("2006-01-02")
	}
	return d
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidDraft)
	}
	switch d.Priority {
	case store.PriorityLow, store.PriorityMedium, store.PriorityHigh:
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidDraft, d.Priority)
	}
	if _, err := time.Parse("15:04", d.StartTime); err != nil {
		return fmt.Errorf("%w: start time %q is not HH:MM", ErrInvalidDraft, d.StartTime)
	}
	if d.EndTime != "" {
		if _, err := time.Parse("15:04", d.EndTime); err != nil {
			return fmt.Errorf("%w: end time %q is not HH:MM", ErrInvalidDraft, d.EndTime)
		}
	}
	if d.DueDate != "" {
		if _, err := time.Parse("2006-01-02", d.DueDate); err != nil {
			return fmt.Errorf("%w: due date %q is not YYYY-MM-DD", ErrInvalidDraft, d.DueDate)
		}
	}
	return nil
}
