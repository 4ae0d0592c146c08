//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
)

func setupTestDB(t *testing.T) *PostgresStore {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := NewPostgresStore(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	t.Cleanup(func() {
		_, _ = s.pool.Exec(ctx, "TRUNCATE optiwork_assignments")
		s.Close()
	})

	return s
}

func TestCreateAndGetAssignment(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	a := &Assignment{
		TaskID:         "1700000000000",
		Title:          "Machine Setup - Line A",
		Description:    "Set up CNC for batch 42",
		Priority:       PriorityHigh,
		StartTime:      "09:00",
		EndTime:        "10:00",
		DueDate:        "2025-10-20",
		RequiredSkills: []string{"skill-1", "skill-2"},
		AssignedTo:     "1",
		AssignedBy:     "admin",
		MatchScore:     73,
		Factors: []matching.Factor{
			{Name: matching.FactorSkill, Score: 50, Weight: 0.4, Weighted: 20},
		},
		Reasons:       []string{"CNC Machining - expert level (Certified)", "Missing: MIG Welding"},
		RosterVersion: "abc123",
	}

	if err := s.CreateAssignment(ctx, a); err != nil {
		t.Fatalf("CreateAssignment failed: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Fatal("expected non-nil ID after create")
	}

	got, err := s.GetAssignment(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetAssignment failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected assignment, got nil")
	}
	if got.Title != a.Title || got.Priority != PriorityHigh || got.MatchScore != 73 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if len(got.RequiredSkills) != 2 || len(got.Reasons) != 2 {
		t.Errorf("arrays not preserved: %+v", got)
	}
	if len(got.Factors) != 1 || got.Factors[0].Name != matching.FactorSkill {
		t.Errorf("factors not preserved: %+v", got.Factors)
	}
}

func TestGetAssignmentNotFound(t *testing.T) {
	s := setupTestDB(t)
	got, err := s.GetAssignment(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestListAssignmentsAndStats(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	for _, who := range []string{"1", "2", "1"} {
		if err := s.CreateAssignment(ctx, &Assignment{TaskID: "t", Title: "x", AssignedTo: who, MatchScore: 80}); err != nil {
			t.Fatalf("CreateAssignment failed: %v", err)
		}
	}

	list, err := s.ListAssignments(ctx, AssignmentFilter{AssignedTo: "1"})
	if err != nil {
		t.Fatalf("ListAssignments failed: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2, got %d", len(list))
	}

	stats, err := s.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalAssignments != 3 || stats.PerEmployee["1"] != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
