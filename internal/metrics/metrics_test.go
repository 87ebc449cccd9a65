// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/records", "200"))

	RecordAPIRequest("GET", "/api/v1/records", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/records", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordAIRequest(t *testing.T) {
	counter := AIRequestsTotal.WithLabelValues("fetch_metadata", "parsed_ok")
	before := testutil.ToFloat64(counter)

	RecordAIRequest("fetch_metadata", "parsed_ok", 2*time.Second)

	if delta := testutil.ToFloat64(counter) - before; delta != 1 {
		t.Errorf("ai_requests_total delta = %v, want 1", delta)
	}
}

func TestRecordStoreMutation(t *testing.T) {
	ok := StoreMutations.WithLabelValues("append", "ok")
	failed := StoreMutations.WithLabelValues("append", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordStoreMutation("append", nil, 7)
	if got := testutil.ToFloat64(StoreRecords); got != 7 {
		t.Errorf("store_records = %v, want 7", got)
	}

	RecordStoreMutation("append", errors.New("disk full"), 99)
	if got := testutil.ToFloat64(StoreRecords); got != 7 {
		t.Errorf("store_records changed on failure: %v", got)
	}

	if testutil.ToFloat64(ok)-okBefore != 1 || testutil.ToFloat64(failed)-failedBefore != 1 {
		t.Error("expected one ok and one error mutation")
	}
}

func TestRecordStorageSave(t *testing.T) {
	before := testutil.ToFloat64(StorageSaveErrors)

	RecordStorageSave(time.Millisecond, nil)
	RecordStorageSave(time.Millisecond, errors.New("read-only file system"))

	if delta := testutil.ToFloat64(StorageSaveErrors) - before; delta != 1 {
		t.Errorf("save errors delta = %v, want 1", delta)
	}
}
