// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type entryStruct struct {
	Title    string `json:"title" validate:"notblank,max=10"`
	Category string `json:"category" validate:"oneof=アニメ 映画 その他"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	Note     string `json:"note,omitempty" validate:"max=5"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      entryStruct
		wantFields []string
	}{
		{
			name:  "valid",
			input: entryStruct{Title: "作品", Category: "アニメ", Rating: 3},
		},
		{
			name:  "multibyte length counted in runes",
			input: entryStruct{Title: "あいうえおかきくけこ", Category: "映画", Rating: 5, Note: "すばらしい"},
		},
		{
			name:       "blank title",
			input:      entryStruct{Title: "   ", Category: "アニメ", Rating: 3},
			wantFields: []string{"title"},
		},
		{
			name:       "unknown category",
			input:      entryStruct{Title: "x", Category: "ゲーム", Rating: 3},
			wantFields: []string{"category"},
		},
		{
			name:       "rating out of range and note too long",
			input:      entryStruct{Title: "x", Category: "その他", Rating: 6, Note: "abcdef"},
			wantFields: []string{"rating", "note"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.input)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(err.Errors()) != len(tt.wantFields) {
				t.Errorf("got %d errors, want %d: %v", len(err.Errors()), len(tt.wantFields), err)
			}
			for _, f := range tt.wantFields {
				if !err.HasField(f) {
					t.Errorf("expected failure on field %q, got %v", f, err)
				}
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	single := ValidateStruct(&entryStruct{Title: "", Category: "アニメ", Rating: 3})
	apiErr := single.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "title is required" {
		t.Errorf("Message = %q, want 'title is required'", apiErr.Message)
	}
	if apiErr.Details["field"] != "title" {
		t.Errorf("Details[field] = %v, want title", apiErr.Details["field"])
	}

	multi := ValidateStruct(&entryStruct{Title: "", Category: "x", Rating: 0})
	apiErr = multi.ToAPIError()
	if !strings.Contains(apiErr.Message, "rating: rating must be at least 1") {
		t.Errorf("Message = %q, want rating failure listed", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Errorf("Details[fields] = %v, want 3 entries", apiErr.Details["fields"])
	}
}

func TestRequestValidationError_EmptyMessage(t *testing.T) {
	t.Parallel()

	var ve RequestValidationError
	if ve.Error() != "validation failed" {
		t.Errorf("Error() = %q", ve.Error())
	}
	if ve.ToAPIError().Message != "Validation failed" {
		t.Errorf("ToAPIError().Message = %q", ve.ToAPIError().Message)
	}
}

func TestNewFieldError(t *testing.T) {
	t.Parallel()

	verr := NewFieldError("category", "category", "music", "category must be one of the known categories")
	if !verr.HasField("category") {
		t.Error("HasField(category) = false")
	}
	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" || apiErr.Details["value"] != "music" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
}
