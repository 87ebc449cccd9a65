// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

// Package models defines the watched-title record and the values derived from it.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/watchlog/internal/validation"
)

// Rating bounds for the user's own score.
const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 3
)

// Record is one watched title.
//
// TotalMinutes is always positive for a stored record; zero is the
// metadata-fetch failure sentinel and never reaches the store.
type Record struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title" validate:"notblank,max=200"`
	Category           Category   `json:"category" validate:"required,oneof=アニメ 映画 ドラマ 特撮 その他"`
	Impression         string     `json:"impression" validate:"max=5000"`
	UserRating         int        `json:"user_rating" validate:"min=1,max=5"`
	UserRatingDisplay  string     `json:"user_rating_display"`
	ViewingTimeSummary string     `json:"viewing_time_summary"`
	TotalMinutes       int        `json:"total_minutes" validate:"gt=0"`
	ReputationSummary  string     `json:"reputation_summary"`
	CreatedAt          *time.Time `json:"created_at,omitempty"` // nil for records saved before timestamps existed
}

// RatingStars returns the rating rendered as repeated stars.
func (r *Record) RatingStars() string {
	return RatingStars(r.UserRating)
}

// RatingStars renders n as "★" repeated n times. Negative n yields "".
func RatingStars(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("★", n)
}

// Entry is what the user types in before metadata is known.
type Entry struct {
	Title      string
	Category   Category
	Rating     int
	Impression string
}

// FetchOutcome is the terminal state of one metadata fetch.
type FetchOutcome string

const (
	OutcomeParsedOK        FetchOutcome = "parsed_ok"
	OutcomeParsedMalformed FetchOutcome = "parsed_malformed"
	OutcomeCallFailed      FetchOutcome = "call_failed"
)

// Metadata is what the AI gateway knows about a title.
type Metadata struct {
	ViewingTimeSummary string       `json:"viewing_time_summary"`
	TotalMinutes       int          `json:"total_minutes"`
	ReputationSummary  string       `json:"reputation_summary"`
	Outcome            FetchOutcome `json:"outcome"`
}

// Usable reports whether the metadata may back a new record.
func (m Metadata) Usable() bool {
	return m.TotalMinutes > 0
}

// NewRecord builds a validated record with a fresh ID. It returns a
// *validation.RequestValidationError when any field is out of range,
// including a non-positive TotalMinutes.
func NewRecord(e Entry, m Metadata, now time.Time) (Record, error) {
	created := now.UTC()
	rec := Record{
		ID:                 uuid.NewString(),
		Title:              strings.TrimSpace(e.Title),
		Category:           e.Category,
		Impression:         e.Impression,
		UserRating:         e.Rating,
		UserRatingDisplay:  RatingStars(e.Rating),
		ViewingTimeSummary: m.ViewingTimeSummary,
		TotalMinutes:       m.TotalMinutes,
		ReputationSummary:  m.ReputationSummary,
		CreatedAt:          &created,
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Validate checks the fixed field set.
func (r *Record) Validate() error {
	if verr := validation.ValidateStruct(r); verr != nil {
		return verr
	}
	return nil
}
