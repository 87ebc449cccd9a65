// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package api

import (
	"net/http"
	"time"
)

// HealthLive reports that the process is serving requests.
//
// @Summary Liveness check
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady reports whether records are loaded. An open AI circuit does not
// make the service unready; submissions then fail with the usual notice.
//
// @Summary Readiness check
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Record count, AI circuit state and websocket clients"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.svc == nil {
		rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Records are not loaded")
		return
	}

	data := map[string]interface{}{
		"ready":        true,
		"record_count": h.svc.View().Summary.RecordCount,
		"uptime":       time.Since(h.startTime).Seconds(),
	}
	if h.aiState != nil {
		data["ai_circuit"] = h.aiState()
	}
	if h.wsHub != nil {
		data["websocket_clients"] = h.wsHub.GetClientCount()
	}
	rw.Success(data)
}
