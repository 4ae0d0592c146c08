package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/Optiwork/internal/assign"
	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
)

type MatchesHandler struct {
	svc *assign.Service
}

func NewMatchesHandler(svc *assign.Service) *MatchesHandler {
	return &MatchesHandler{svc: svc}
}

// CandidateView is one ranked employee as the assignment screen shows it.
type CandidateView struct {
	EmployeeID       string            `json:"employee_id"`
	Name             string            `json:"name"`
	Department       string            `json:"department,omitempty"`
	Shift            string            `json:"shift,omitempty"`
	MatchScore       int               `json:"match_score"`
	Tier             string            `json:"tier"`
	SkillMatch       float64           `json:"skill_match"`
	WorkloadScore    float64           `json:"workload_score"`
	PerformanceScore float64           `json:"performance_score"`
	Availability     bool              `json:"availability"`
	Reasons          []string          `json:"reasons"`
	ReasonDetails    []matching.Reason `json:"reason_details"`
	Factors          []matching.Factor `json:"factors"`
}

type MatchesResponse struct {
	RequirementKey string          `json:"requirement_key"`
	RosterVersion  string          `json:"roster_version"`
	Source         string          `json:"source"`
	ComputedAt     time.Time       `json:"computed_at"`
	BestMatch      *CandidateView  `json:"best_match"`
	Candidates     []CandidateView `json:"candidates"`
}

func newCandidateView(rd matching.Renderer, r matching.MatchResult) CandidateView {
	reasons := r.Reasons
	if reasons == nil {
		reasons = []matching.Reason{}
	}
	return CandidateView{
		EmployeeID:       r.Employee.ID,
		Name:             r.Employee.Name,
		Department:       r.Employee.Department,
		Shift:            r.Employee.Shift,
		MatchScore:       r.MatchScore,
		Tier:             matching.Tier(float64(r.MatchScore)),
		SkillMatch:       r.SkillMatch,
		WorkloadScore:    r.WorkloadScore,
		PerformanceScore: r.PerformanceScore,
		Availability:     r.Availability,
		Reasons:          matching.RenderAll(rd, reasons),
		ReasonDetails:    reasons,
		Factors:          r.Factors,
	}
}

// Compute ranks the roster for a task draft. Only required_skills and
// start_time influence the ranking.
// POST /api/v1/matches
func (h *MatchesHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var draft assign.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	draft = draft.WithDefaults(time.Now())

	set, err := h.svc.Matches(r.Context(), draft.Requirement())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	rd := h.svc.Renderer()
	resp := MatchesResponse{
		RequirementKey: set.RequirementKey,
		RosterVersion:  set.RosterVersion,
		Source:         set.Source,
		ComputedAt:     set.ComputedAt,
		Candidates:     make([]CandidateView, 0, len(set.Results)),
	}
	for _, res := range set.Results {
		resp.Candidates = append(resp.Candidates, newCandidateView(rd, res))
	}
	if len(resp.Candidates) > 0 {
		best := resp.Candidates[0]
		resp.BestMatch = &best
	}
	writeJSON(w, http.StatusOK, resp)
}
