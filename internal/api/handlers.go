// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

// Package api exposes the tracker over HTTP with a chi router.
package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/watchlog/internal/logging"
	"github.com/tomtom215/watchlog/internal/tracker"
	ws "github.com/tomtom215/watchlog/internal/websocket"
)

// maxBodyBytes bounds request bodies; impressions are at most 5000 runes.
const maxBodyBytes = 64 << 10

// Handler holds the dependencies of every endpoint.
type Handler struct {
	svc         *tracker.Service
	wsHub       *ws.Hub
	corsOrigins []string
	aiState     func() string
	startTime   time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHub enables the websocket endpoint.
func WithHub(hub *ws.Hub) HandlerOption {
	return func(h *Handler) { h.wsHub = hub }
}

// WithAllowedOrigins lists origins allowed to open websockets. "*" allows any.
func WithAllowedOrigins(origins []string) HandlerOption {
	return func(h *Handler) { h.corsOrigins = origins }
}

// WithAIState reports the AI circuit breaker state in readiness checks.
func WithAIState(state func() string) HandlerOption {
	return func(h *Handler) { h.aiState = state }
}

// NewHandler creates a Handler over svc.
func NewHandler(svc *tracker.Service, opts ...HandlerOption) *Handler {
	h := &Handler{svc: svc, startTime: time.Now()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// decodeJSON reads a bounded JSON body into v, writing 400 on failure.
func decodeJSON(rw *ResponseWriter, w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Invalid request body")
		rw.BadRequest("Invalid JSON request body")
		return false
	}
	return true
}

// checkWebSocketOrigin accepts requests without an Origin header from
// non-browser clients only when any origin is allowed.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	for _, allowed := range h.corsOrigins {
		if allowed == "*" || (origin != "" && allowed == origin) {
			return true
		}
	}
	if origin == "" {
		return false
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}

// WebSocket upgrades the connection and subscribes it to change notifications.
//
// @Summary Change notifications
// @Description Upgrades to a WebSocket that receives a records_changed message after every persisted change.
// @Tags Core
// @Success 101 "Switching protocols"
// @Failure 503 {object} APIResponse "WebSocket hub not running"
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		NewResponseWriter(w, r).Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "WebSocket service unavailable")
		return
	}
	ws.Serve(h.wsHub, w, r, h.checkWebSocketOrigin)
}
