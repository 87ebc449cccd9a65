// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/watchlog/internal/models"
	"github.com/tomtom215/watchlog/internal/tracker"
)

// summaryResponse adds the display label to the aggregate.
type summaryResponse struct {
	models.Summary
	HoursLabel string `json:"hours_label"`
}

func newSummaryResponse(s models.Summary) summaryResponse {
	return summaryResponse{Summary: s, HoursLabel: s.HoursLabel()}
}

// ListRecords returns records newest first with their summary.
//
// @Summary List records
// @Description Returns every record newest first, the viewing-time summary and whether a bulk delete awaits confirmation.
// @Tags Records
// @Produce json
// @Success 200 {object} APIResponse{data=tracker.View} "Records and summary"
// @Router /records [get]
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	v := h.svc.View()
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"records":       v.Records,
		"summary":       newSummaryResponse(v.Summary),
		"clear_pending": v.ClearPending,
	})
}

// GetRecord returns one record.
//
// @Summary Get a record
// @Tags Records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} APIResponse{data=models.Record} "Record"
// @Failure 404 {object} APIResponse "Unknown record"
// @Router /records/{id} [get]
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rec, err := h.svc.Record(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(rw, err)
		return
	}
	rw.Success(rec)
}

// CreateRecord registers a title. 201 when a record was added; 422 with the
// notice when the model could not describe the title.
//
// @Summary Register a watched title
// @Description Asks the model for viewing time and reputation, then stores the record. Nothing is stored when the model cannot describe the title.
// @Tags Records
// @Accept json
// @Produce json
// @Param record body tracker.SubmitInput true "Title, category, rating and impression"
// @Success 201 {object} APIResponse{data=tracker.SubmitResult} "Record registered"
// @Failure 400 {object} APIResponse "Invalid input"
// @Failure 415 {object} APIResponse "Content-Type is not application/json"
// @Failure 422 {object} APIResponse "Metadata unavailable"
// @Failure 500 {object} APIResponse "Records file could not be saved"
// @Router /records [post]
func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var in tracker.SubmitInput
	if !decodeJSON(rw, w, r, &in) {
		return
	}

	res, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		respondServiceError(rw, err)
		return
	}
	if !res.Registered {
		rw.ErrorWithDetails(http.StatusUnprocessableEntity, ErrCodeMetadataUnavailable, res.Notice, map[string]interface{}{
			"notice":   res.Notice,
			"metadata": res.Metadata,
		})
		return
	}
	rw.Created(res)
}

// DeleteRecord removes one record by ID.
//
// @Summary Delete a record
// @Tags Records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} APIResponse{data=tracker.DeleteResult} "Record deleted"
// @Failure 404 {object} APIResponse "Unknown record"
// @Failure 500 {object} APIResponse "Records file could not be saved"
// @Router /records/{id} [delete]
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	res, err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(rw, err)
		return
	}
	rw.Success(res)
}

// Summary returns total viewing time and per-title bars.
//
// @Summary Viewing-time summary
// @Tags Records
// @Produce json
// @Success 200 {object} APIResponse{data=summaryResponse} "Total hours and per-title bars"
// @Router /summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(newSummaryResponse(h.svc.View().Summary))
}

// Categories lists the selectable categories.
//
// @Summary List categories
// @Tags Records
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.CategoryInfo} "Categories"
// @Router /categories [get]
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(models.Categories())
}

// ClearStatus reports whether a bulk delete awaits confirmation.
//
// @Summary Bulk delete state
// @Tags Clear
// @Produce json
// @Success 200 {object} APIResponse "pending flag"
// @Router /records/clear [get]
func (h *Handler) ClearStatus(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]bool{"pending": h.svc.ClearPending()})
}

// RequestClear arms the bulk delete.
//
// @Summary Request bulk delete
// @Tags Clear
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse "pending flag"
// @Failure 415 {object} APIResponse "Content-Type is not application/json"
// @Router /records/clear [post]
func (h *Handler) RequestClear(w http.ResponseWriter, r *http.Request) {
	h.svc.RequestClearAll()
	NewResponseWriter(w, r).Success(map[string]bool{"pending": true})
}

// ConfirmClear deletes every record after a prior RequestClear.
//
// @Summary Confirm bulk delete
// @Tags Clear
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse "All records deleted"
// @Failure 409 {object} APIResponse "No bulk delete was requested"
// @Failure 415 {object} APIResponse "Content-Type is not application/json"
// @Failure 500 {object} APIResponse "Records file could not be saved"
// @Router /records/clear/confirm [post]
func (h *Handler) ConfirmClear(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	notice, err := h.svc.ConfirmClearAll(r.Context())
	if err != nil {
		respondServiceError(rw, err)
		return
	}
	rw.Success(map[string]interface{}{"pending": false, "notice": notice})
}

// CancelClear disarms the bulk delete.
//
// @Summary Cancel bulk delete
// @Tags Clear
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse "pending flag"
// @Failure 415 {object} APIResponse "Content-Type is not application/json"
// @Router /records/clear/cancel [post]
func (h *Handler) CancelClear(w http.ResponseWriter, r *http.Request) {
	h.svc.CancelClearAll()
	NewResponseWriter(w, r).Success(map[string]bool{"pending": false})
}
