package assign

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MikeSquared-Agency/Optiwork/internal/hermes"
	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
	"github.com/MikeSquared-Agency/Optiwork/internal/metrics"
	"github.com/MikeSquared-Agency/Optiwork/internal/roster"
	"github.com/MikeSquared-Agency/Optiwork/internal/store"
)

const defaultRefreshInterval = 30 * time.Second

// MatchCache is a shared cache for ranked match sets. Implementations may be
// unavailable; a failed Get is treated as a miss.
type MatchCache interface {
	Get(ctx context.Context, key string, out interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// MatchSet is a ranked list of candidates for one requirement against one roster
// version. Results are shared with the memo and must not be modified.
type MatchSet struct {
	RequirementKey string                 `json:"requirement_key"`
	RosterVersion  string                 `json:"roster_version"`
	Source         string                 `json:"source"`
	Results        []matching.MatchResult `json:"results"`
	ComputedAt     time.Time              `json:"computed_at"`
}

// Best returns the top candidate or nil when the roster is empty.
func (m *MatchSet) Best() *matching.MatchResult {
	return matching.BestMatch(m.Results)
}

type Service struct {
	roster   roster.Client
	store    store.Store
	hermes   hermes.Client
	cache    MatchCache
	metrics  *metrics.Metrics
	renderer matching.Renderer
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	snapMu sync.RWMutex
	snap   *Snapshot

	memoMu  sync.Mutex
	memoKey string
	memo    *MatchSet

	refreshCh chan struct{}
	stopOnce  sync.Once
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// New builds the service. h and c may be nil.
func New(rc roster.Client, s store.Store, h hermes.Client, c MatchCache, m *metrics.Metrics, interval time.Duration, logger *slog.Logger) *Service {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if m == nil {
		m = metrics.Noop()
	}
	return &Service{
		roster:    rc,
		store:     s,
		hermes:    h,
		cache:     c,
		metrics:   m,
		renderer:  matching.TextRenderer{},
		interval:  interval,
		logger:    logger,
		now:       time.Now,
		refreshCh: make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
}

func (s *Service) Renderer() matching.Renderer {
	return s.renderer
}

// Snapshot returns the current roster, or nil before the first successful refresh.
func (s *Service) Snapshot() *Snapshot {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.snap
}

// Refresh fetches employees and skills concurrently and swaps the snapshot. On
// failure the previous snapshot stays in place.
func (s *Service) Refresh(ctx context.Context) error {
	var (
		employees []matching.Employee
		skills    []matching.Skill
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.roster.ListEmployees(gctx)
		if err != nil {
			return fmt.Errorf("list employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		skills, err = s.roster.ListSkills(gctx)
		if err != nil {
			return fmt.Errorf("list skills: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.metrics.RosterRefreshes.WithLabelValues("error").Inc()
		return fmt.Errorf("refresh roster: %w", err)
	}

	next := NewSnapshot(employees, skills, s.now().UTC())

	s.snapMu.Lock()
	prev := s.snap
	s.snap = next
	s.snapMu.Unlock()

	s.metrics.RosterEmployees.Set(float64(len(employees)))
	if prev != nil && prev.Version == next.Version {
		s.metrics.RosterRefreshes.WithLabelValues("unchanged").Inc()
		return nil
	}
	s.metrics.RosterRefreshes.WithLabelValues("changed").Inc()

	s.memoMu.Lock()
	s.memoKey, s.memo = "", nil
	s.memoMu.Unlock()

	s.logger.Info("roster refreshed", "version", next.Version, "employees", len(employees), "skills", len(skills))
	if s.hermes != nil {
		_ = s.hermes.Publish(hermes.SubjectRosterRefresh, hermes.RosterRefreshedEvent{
			RosterVersion: next.Version,
			Employees:     len(employees),
			Skills:        len(skills),
			Timestamp:     next.FetchedAt,
		})
	}
	return nil
}

// Start loads the roster once and keeps it fresh until Stop or ctx is done.
func (s *Service) Start(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("initial roster load failed", "error", err)
	}
	s.wg.Add(1)
	go s.refreshLoop(ctx)
}

func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// SetupSubscriptions refreshes the roster whenever the data service announces a change.
func (s *Service) SetupSubscriptions() {
	if s.hermes == nil {
		return
	}
	_ = s.hermes.Subscribe(hermes.SubjectRosterChanged, func(_ string, _ []byte) {
		s.RequestRefresh()
	})
}

// RequestRefresh schedules a refresh on the loop without blocking. Requests made
// while one is pending collapse into it.
func (s *Service) RequestRefresh() {
	select {
	case s.refreshCh <- struct{}{}:
	default:
	}
}

func (s *Service) refreshLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-s.refreshCh:
		}
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("roster refresh failed", "error", err)
		}
	}
}

// Matches ranks the current roster for req. Repeated calls for the same matcher
// inputs and roster version are served from the memo or the shared cache.
func (s *Service) Matches(ctx context.Context, req matching.TaskRequirement) (*MatchSet, error) {
	snap := s.Snapshot()
	if snap == nil {
		return nil, ErrNoRoster
	}
	reqKey := matching.RequirementKey(req)
	memoKey := snap.Version + "|" + reqKey

	s.memoMu.Lock()
	if s.memoKey == memoKey && s.memo != nil {
		set := *s.memo
		s.memoMu.Unlock()
		set.Source = metrics.SourceMemo
		s.metrics.MatchComputations.WithLabelValues(metrics.SourceMemo).Inc()
		return &set, nil
	}
	s.memoMu.Unlock()

	cacheKey := fmt.Sprintf("%s:%016x", snap.Version, xxhash.Sum64String(reqKey))
	if s.cache != nil {
		var cached MatchSet
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			s.logger.Debug("match cache get failed", "error", err)
		}
		if found && cached.RequirementKey == reqKey {
			if cached.Results == nil {
				cached.Results = []matching.MatchResult{}
			}
			s.remember(memoKey, &cached)
			cached.Source = metrics.SourceCache
			s.metrics.MatchComputations.WithLabelValues(metrics.SourceCache).Inc()
			return &cached, nil
		}
	}

	start := time.Now()
	results := matching.ComputeMatches(req, snap.Employees, snap.Catalog)
	s.metrics.MatchDuration.Observe(time.Since(start).Seconds())
	s.metrics.MatchCandidates.Observe(float64(len(results)))
	s.metrics.MatchComputations.WithLabelValues(metrics.SourceComputed).Inc()

	set := &MatchSet{
		RequirementKey: reqKey,
		RosterVersion:  snap.Version,
		Source:         metrics.SourceComputed,
		Results:        results,
		ComputedAt:     s.now().UTC(),
	}
	s.remember(memoKey, set)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, set); err != nil {
			s.logger.Debug("match cache set failed", "error", err)
		}
	}

	if s.hermes != nil {
		evt := hermes.MatchComputedEvent{
			RequirementKey: reqKey,
			RosterVersion:  snap.Version,
			Candidates:     len(results),
			Source:         set.Source,
			Timestamp:      set.ComputedAt,
		}
		if best := set.Best(); best != nil {
			evt.BestEmployee = best.Employee.ID
			evt.BestScore = best.MatchScore
		}
		_ = s.hermes.Publish(hermes.SubjectMatchComputed, evt)
	}

	out := *set
	return &out, nil
}

func (s *Service) remember(key string, set *MatchSet) {
	cp := *set
	s.memoMu.Lock()
	s.memoKey, s.memo = key, &cp
	s.memoMu.Unlock()
}

// Assign hands the draft to the data service with employeeID as assignee and
// records the score breakdown that justified the choice.
func (s *Service) Assign(ctx context.Context, draft Draft, employeeID, assignedBy string) (*store.Assignment, error) {
	draft = draft.WithDefaults(s.now())
	if err := draft.Validate(); err != nil {
		s.metrics.Assignments.WithLabelValues("invalid").Inc()
		return nil, err
	}
	if strings.TrimSpace(employeeID) == "" {
		s.metrics.Assignments.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: an employee must be selected", ErrInvalidDraft)
	}

	snap := s.Snapshot()
	if snap == nil {
		s.metrics.Assignments.WithLabelValues("error").Inc()
		return nil, ErrNoRoster
	}
	emp, ok := snap.Employee(employeeID)
	if !ok {
		s.metrics.Assignments.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: %s", ErrUnknownEmployee, employeeID)
	}

	result := matching.Score(draft.Requirement(), emp, snap.Catalog)

	created, err := s.roster.CreateTask(ctx, &roster.TaskRecord{
		Title:          draft.Title,
		Description:    draft.Description,
		AssignedTo:     emp.ID,
		AssignedBy:     assignedBy,
		Priority:       string(draft.Priority),
		StartTime:      draft.StartTime,
		EndTime:        draft.EndTime,
		DueDate:        draft.DueDate,
		Notes:          draft.Notes,
		RequiredSkills: draft.RequiredSkills,
	})
	if err != nil {
		s.metrics.Assignments.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("create task: %w", err)
	}

	a := &store.Assignment{
		TaskID:         created.ID,
		Title:          draft.Title,
		Description:    draft.Description,
		Priority:       draft.Priority,
		StartTime:      draft.StartTime,
		EndTime:        draft.EndTime,
		DueDate:        draft.DueDate,
		Notes:          draft.Notes,
		RequiredSkills: draft.RequiredSkills,
		AssignedTo:     emp.ID,
		AssignedBy:     assignedBy,
		MatchScore:     result.MatchScore,
		Factors:        result.Factors,
		Reasons:        matching.RenderAll(s.renderer, result.Reasons),
		RosterVersion:  snap.Version,
	}
	if err := s.store.CreateAssignment(ctx, a); err != nil {
		// The task already exists upstream; losing the audit row is logged, not fatal.
		s.logger.Error("failed to record assignment", "task_id", created.ID, "error", err)
		a.ID = uuid.Nil
		a.Audited = false
	}
	s.metrics.Assignments.WithLabelValues("assigned").Inc()

	var assignmentID string
	if a.Audited {
		assignmentID = a.ID.String()
	}
	if s.hermes != nil {
		_ = s.hermes.Publish(hermes.SubjectTaskAssigned(created.ID), hermes.TaskAssignedEvent{
			AssignmentID:  assignmentID,
			TaskID:        created.ID,
			Title:         a.Title,
			AssignedTo:    a.AssignedTo,
			AssignedBy:    a.AssignedBy,
			MatchScore:    a.MatchScore,
			RosterVersion: a.RosterVersion,
			Timestamp:     s.now().UTC(),
		})
	}

	s.logger.Info("task assigned", "task_id", created.ID, "employee", emp.ID, "score", result.MatchScore)
	return a, nil
}
