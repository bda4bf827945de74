package api

import (
	"encoding/json"
	"net/http"
	"sync"

	riskservice "smartrisk/internal/services/risk"
)

// SnapshotHandler serves the most recent pipeline snapshot as JSON. The
// engine itself is synchronous; this handler is the only concurrency
// boundary, holding whatever snapshot the refresh loop published last.
type SnapshotHandler struct {
	mu   sync.RWMutex
	snap *riskservice.Snapshot
}

// NewSnapshotHandler creates a handler with no snapshot published yet
func NewSnapshotHandler() *SnapshotHandler {
	return &SnapshotHandler{}
}

// Publish replaces the served snapshot
func (h *SnapshotHandler) Publish(snap *riskservice.Snapshot) {
	h.mu.Lock()
	h.snap = snap
	h.mu.Unlock()
}

// Latest returns the last published snapshot, or nil
func (h *SnapshotHandler) Latest() *riskservice.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

func (h *SnapshotHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := h.Latest()
	if snap == nil {
		http.Error(w, `{"error":"no snapshot computed yet"}`, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
