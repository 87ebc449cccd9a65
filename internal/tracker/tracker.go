// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

// Package tracker implements the user-facing operations: registering a
// watched title, listing and deleting records, asking the model about the
// user's taste, and the two-step bulk delete.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/watchlog/internal/logging"
	"github.com/tomtom215/watchlog/internal/models"
	"github.com/tomtom215/watchlog/internal/store"
	"github.com/tomtom215/watchlog/internal/validation"
)

var (
	// ErrNoRecords is returned by the analysis operations on an empty history.
	ErrNoRecords = errors.New("no records to analyze")

	// ErrClearNotRequested is returned by ConfirmClearAll without a prior request.
	ErrClearNotRequested = errors.New("bulk delete was not requested")
)

// AI is the part of the gateway the tracker needs.
type AI interface {
	FetchMetadata(ctx context.Context, title string) models.Metadata
	Analyze(ctx context.Context, prompt string) string
}

// SubmitInput is a registration request. Category accepts a slug or a label;
// a nil Rating means the default.
type SubmitInput struct {
	Title      string `json:"title" validate:"notblank,max=200"`
	Category   string `json:"category" validate:"required"`
	Rating     *int   `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Impression string `json:"impression" validate:"max=5000"`
}

// SubmitResult reports what Submit did. Record is set only when Registered.
type SubmitResult struct {
	Registered bool            `json:"registered"`
	Record     *models.Record  `json:"record,omitempty"`
	Notice     string          `json:"notice"`
	Metadata   models.Metadata `json:"metadata"`
}

// DeleteResult reports a removed record.
type DeleteResult struct {
	Record models.Record `json:"record"`
	Notice string        `json:"notice"`
}

// View is everything needed to render the main screen.
type View struct {
	Records      []models.Record `json:"records"`
	Summary      models.Summary  `json:"summary"`
	ClearPending bool            `json:"clear_pending"`
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service is safe for concurrent use.
type Service struct {
	store *store.Store
	ai    AI
	now   func() time.Time

	mu           sync.Mutex
	clearPending bool
}

// New creates a Service.
func New(st *store.Store, ai AI, opts ...Option) *Service {
	s := &Service{store: st, ai: ai, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View returns the records newest first with their summary.
func (s *Service) View() View {
	return View{
		Records:      s.store.Recent(),
		Summary:      s.store.Summary(),
		ClearPending: s.ClearPending(),
	}
}

// Record returns one stored record.
func (s *Service) Record(id string) (models.Record, error) {
	return s.store.Get(id)
}

// Submit validates in, asks the model about the title and appends a record
// when it reports a positive total. A fetch that yields no usable total is
// not an error: Registered is false and Notice says why.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	entry, err := in.entry()
	if err != nil {
		return SubmitResult{}, err
	}

	meta := s.ai.FetchMetadata(ctx, entry.Title)
	if !meta.Usable() {
		logging.Ctx(ctx).Info().
			Str("title", entry.Title).
			Str("outcome", string(meta.Outcome)).
			Msg("Title not registered, metadata unavailable")
		return SubmitResult{
			Metadata: meta,
			Notice:   fmt.Sprintf("「%s」の情報を取得できませんでした。作品名が正しいか確認してください。", entry.Title),
		}, nil
	}

	rec, err := models.NewRecord(entry, meta, s.now())
	if err != nil {
		return SubmitResult{}, err
	}
	if err := s.store.Append(ctx, rec); err != nil {
		return SubmitResult{}, err
	}

	logging.Ctx(ctx).Info().
		Str("record_id", rec.ID).
		Str("title", rec.Title).
		Int("total_minutes", rec.TotalMinutes).
		Msg("Record registered")

	return SubmitResult{
		Registered: true,
		Record:     &rec,
		Metadata:   meta,
		Notice:     fmt.Sprintf("「%s」の記録を登録しました！", rec.Title),
	}, nil
}

func (in *SubmitInput) entry() (models.Entry, error) {
	if verr := validation.ValidateStruct(in); verr != nil {
		return models.Entry{}, verr
	}

	category, err := models.ParseCategory(in.Category)
	if err != nil {
		return models.Entry{}, validation.NewFieldError("category", "category", in.Category, err.Error())
	}

	rating := models.DefaultRating
	if in.Rating != nil {
		rating = *in.Rating
	}

	return models.Entry{
		Title:      strings.TrimSpace(in.Title),
		Category:   category,
		Rating:     rating,
		Impression: in.Impression,
	}, nil
}

// Delete removes the record with id.
func (s *Service) Delete(ctx context.Context, id string) (DeleteResult, error) {
	rec, err := s.store.Delete(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}
	logging.Ctx(ctx).Info().Str("record_id", rec.ID).Str("title", rec.Title).Msg("Record deleted")
	return DeleteResult{
		Record: rec,
		Notice: fmt.Sprintf("「%s」の記録を削除しました。", rec.Title),
	}, nil
}

// AnalyzePreferences asks the model to describe the user's taste.
// Model failures come back as gateway.AnalysisFailed, not as an error.
func (s *Service) AnalyzePreferences(ctx context.Context) (string, error) {
	records := s.store.List()
	if len(records) == 0 {
		return "", ErrNoRecords
	}
	return s.ai.Analyze(ctx, PreferencePrompt(records)), nil
}

// Recommend asks the model for three unseen titles.
func (s *Service) Recommend(ctx context.Context) (string, error) {
	records := s.store.List()
	if len(records) == 0 {
		return "", ErrNoRecords
	}
	return s.ai.Analyze(ctx, RecommendationPrompt(records)), nil
}

// RequestClearAll arms the bulk delete.
func (s *Service) RequestClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearPending = true
}

// CancelClearAll disarms the bulk delete without touching any record.
func (s *Service) CancelClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearPending = false
}

// ClearPending reports whether a bulk delete awaits confirmation.
func (s *Service) ClearPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearPending
}

// ConfirmClearAll deletes every record. The request is consumed even when
// the save fails, so a retry needs a fresh RequestClearAll.
func (s *Service) ConfirmClearAll(ctx context.Context) (string, error) {
	s.mu.Lock()
	pending := s.clearPending
	s.clearPending = false
	s.mu.Unlock()

	if !pending {
		return "", ErrClearNotRequested
	}
	if err := s.store.Clear(ctx); err != nil {
		return "", err
	}
	logging.Ctx(ctx).Info().Msg("All records deleted")
	return "全ての履歴を削除しました。", nil
}
