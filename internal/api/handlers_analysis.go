// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package api

import (
	"context"
	"net/http"
)

type analysisResponse struct {
	Text string `json:"text"`
}

// AnalyzePreferences returns the model's description of the user's taste.
//
// @Summary Analyze viewing preferences
// @Description Free text from the model. A model failure still answers 200 with a fixed failure text.
// @Tags Analysis
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse{data=analysisResponse} "Analysis text"
// @Failure 409 {object} APIResponse "No records yet"
// @Failure 415 {object} APIResponse "Content-Type is not application/json"
// @Router /analysis/preferences [post]
func (h *Handler) AnalyzePreferences(w http.ResponseWriter, r *http.Request) {
	h.analysis(w, r, h.svc.AnalyzePreferences)
}

// Recommendations returns three titles the user has not watched.
//
// @Summary Recommend unseen titles
// @Description Three recommendations excluding every watched title. A model failure still answers 200 with a fixed failure text.
// @Tags Analysis
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse{data=analysisResponse} "Recommendation text"
// @Failure 409 {object} APIResponse "No records yet"
// @Failure 415 {object} APIResponse "Content-Type is not application/json"
// @Router /analysis/recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	h.analysis(w, r, h.svc.Recommend)
}

// analysis answers 200 even when the model failed; the text then says so.
func (h *Handler) analysis(w http.ResponseWriter, r *http.Request, run func(context.Context) (string, error)) {
	rw := NewResponseWriter(w, r)
	text, err := run(r.Context())
	if err != nil {
		respondServiceError(rw, err)
		return
	}
	rw.Success(analysisResponse{Text: text})
}
