package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Optiwork/internal/assign"
	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
	"github.com/MikeSquared-Agency/Optiwork/internal/store"
)

type AssignmentsHandler struct {
	svc   *assign.Service
	store store.Store
}

func NewAssignmentsHandler(svc *assign.Service, s store.Store) *AssignmentsHandler {
	return &AssignmentsHandler{svc: svc, store: s}
}

type CreateAssignmentRequest struct {
	Task       assign.Draft `json:"task"`
	EmployeeID string       `json:"employee_id"`
}

// POST /api/v1/assignments
func (h *AssignmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.svc.Assign(r.Context(), req.Task, req.EmployeeID, r.Header.Get("X-User-ID"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *AssignmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.AssignmentFilter{
		AssignedTo: q.Get("assigned_to"),
		AssignedBy: q.Get("assigned_by"),
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		filter.Offset = n
	}

	list, err := h.store.ListAssignments(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []*store.Assignment{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get returns an assignment with the score breakdown recorded when it was made.
// GET /api/v1/assignments/{id}
func (h *AssignmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	a, err := h.store.GetAssignment(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "assignment not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"assignment":     a,
		"tier":           matching.Tier(float64(a.MatchScore)),
		"factors":        a.Factors,
		"reasons":        a.Reasons,
		"roster_version": a.RosterVersion,
	})
}
