package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS optiwork_assignments (
	id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	task_id         TEXT NOT NULL,
	title           TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	priority        TEXT NOT NULL DEFAULT 'medium',
	start_time      TEXT NOT NULL DEFAULT '',
	end_time        TEXT NOT NULL DEFAULT '',
	due_date        TEXT NOT NULL DEFAULT '',
	notes           TEXT NOT NULL DEFAULT '',
	required_skills TEXT[] NOT NULL DEFAULT '{}',
	assigned_to     TEXT NOT NULL,
	assigned_by     TEXT NOT NULL DEFAULT '',
	match_score     INTEGER NOT NULL,
	factors         JSONB,
	reasons         TEXT[] NOT NULL DEFAULT '{}',
	roster_version  TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS optiwork_assignments_assigned_to_idx ON optiwork_assignments (assigned_to);
`

// EnsureSchema creates the audit table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const assignmentColumns = `id, task_id, title, description, priority,
	start_time, end_time, due_date, notes, required_skills,
	assigned_to, assigned_by,
	match_score, factors, reasons, roster_version,
	created_at`

func (s *PostgresStore) CreateAssignment(ctx context.Context, a *Assignment) error {
	factorsJSON, err := json.Marshal(a.Factors)
	if err != nil {
		return fmt.Errorf("encode factors: %w", err)
	}
	if a.RequiredSkills == nil {
		a.RequiredSkills = []string{}
	}
	if a.Reasons == nil {
		a.Reasons = []string{}
	}

	err = s.pool.QueryRow(ctx, `
		INSERT INTO optiwork_assignments (task_id, title, description, priority,
			start_time, end_time, due_date, notes, required_skills,
			assigned_to, assigned_by,
			match_score, factors, reasons, roster_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at`,
		a.TaskID, a.Title, a.Description, string(a.Priority),
		a.StartTime, a.EndTime, a.DueDate, a.Notes, a.RequiredSkills,
		a.AssignedTo, a.AssignedBy,
		a.MatchScore, factorsJSON, a.Reasons, a.RosterVersion,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return err
	}
	a.Audited = true
	return nil
}

func (s *PostgresStore) GetAssignment(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+assignmentColumns+`
		FROM optiwork_assignments WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list, err := scanAssignments(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *PostgresStore) ListAssignments(ctx context.Context, filter AssignmentFilter) ([]*Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM optiwork_assignments WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.AssignedTo != "" {
		n++
		query += fmt.Sprintf(" AND assigned_to = $%d", n)
		args = append(args, filter.AssignedTo)
	}
	if filter.AssignedBy != "" {
		n++
		query += fmt.Sprintf(" AND assigned_by = $%d", n)
		args = append(args, filter.AssignedBy)
	}

	query += " ORDER BY created_at DESC"

	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, filter.limit())

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

func (s *PostgresStore) GetStats(ctx context.Context) (*AssignmentStats, error) {
	stats := &AssignmentStats{PerEmployee: make(map[string]int)}
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(match_score), 0)
		FROM optiwork_assignments`,
	).Scan(&stats.TotalAssignments, &stats.AvgMatchScore)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT assigned_to, COUNT(*)
		FROM optiwork_assignments GROUP BY assigned_to`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var employee string
		var count int
		if err := rows.Scan(&employee, &count); err != nil {
			return nil, err
		}
		stats.PerEmployee[employee] = count
	}
	return stats, rows.Err()
}

func scanAssignments(rows pgx.Rows) ([]*Assignment, error) {
	var out []*Assignment
	for rows.Next() {
		a := &Assignment{}
		var priority string
		var factorsJSON []byte
		if err := rows.Scan(
			&a.ID, &a.TaskID, &a.Title, &a.Description, &priority,
			&a.StartTime, &a.EndTime, &a.DueDate, &a.Notes, &a.RequiredSkills,
			&a.AssignedTo, &a.AssignedBy,
			&a.MatchScore, &factorsJSON, &a.Reasons, &a.RosterVersion,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.Priority = Priority(priority)
		if factorsJSON != nil {
			if err := json.Unmarshal(factorsJSON, &a.Factors); err != nil {
				return nil, fmt.Errorf("decode factors for assignment %s: %w", a.ID, err)
			}
		}
		a.Audited = true
		out = append(out, a)
	}
	return out, rows.Err()
}
