package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Optiwork/internal/assign"
	"github.com/MikeSquared-Agency/Optiwork/internal/store"
)

type RosterHandler struct {
	svc   *assign.Service
	store store.Store
}

func NewRosterHandler(svc *assign.Service, s store.Store) *RosterHandler {
	return &RosterHandler{svc: svc, store: s}
}

// GET /api/v1/roster
func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.Snapshot()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, assign.ErrNoRoster.Error())
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// POST /api/v1/roster/refresh
func (h *RosterHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Refresh(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	snap := h.svc.Snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":    snap.Version,
		"employees":  len(snap.Employees),
		"skills":     len(snap.Skills),
		"fetched_at": snap.FetchedAt,
	})
}

func (h *RosterHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := map[string]interface{}{
		"assignments":    stats,
		"roster_version": "",
		"employees":      0,
	}
	if snap := h.svc.Snapshot(); snap != nil {
		resp["roster_version"] = snap.Version
		resp["employees"] = len(snap.Employees)
	}
	writeJSON(w, http.StatusOK, resp)
}
