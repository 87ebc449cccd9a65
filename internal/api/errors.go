// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/watchlog/internal/store"
	"github.com/tomtom215/watchlog/internal/tracker"
	"github.com/tomtom215/watchlog/internal/validation"
)

// respondServiceError maps tracker and store errors to HTTP responses.
// Anything unrecognised is treated as a persistence failure, the only other
// error the service layer returns.
func respondServiceError(rw *ResponseWriter, err error) {
	var verr *validation.RequestValidationError

	switch {
	case errors.As(err, &verr):
		apiErr := verr.ToAPIError()
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidation, apiErr.Message, apiErr.Details)
	case errors.Is(err, store.ErrNotFound):
		rw.NotFound("Record not found")
	case errors.Is(err, tracker.ErrNoRecords):
		rw.Conflict(ErrCodeNoRecords, "There are no records to analyze")
	case errors.Is(err, tracker.ErrClearNotRequested):
		rw.Conflict(ErrCodeClearNotRequested, "Request deletion of all records before confirming it")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		rw.Error(http.StatusServiceUnavailable, ErrCodeRequestCanceled, "The request was canceled")
	default:
		rw.StorageError(err)
	}
}
