// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

// Package store holds the ordered record collection and keeps it in step
// with its persistent copy. Every mutation is followed by a full save before
// the method returns; a failed save rolls the mutation back.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/tomtom215/watchlog/internal/logging"
	"github.com/tomtom215/watchlog/internal/metrics"
	"github.com/tomtom215/watchlog/internal/models"
)

var (
	// ErrNotFound is returned when no record has the requested ID.
	ErrNotFound = errors.New("record not found")

	// ErrIndexOutOfRange is returned by DeleteAt for an invalid position.
	ErrIndexOutOfRange = errors.New("record index out of range")
)

// Persister loads and saves the whole collection.
type Persister interface {
	Load(ctx context.Context) ([]models.Record, error)
	Save(ctx context.Context, records []models.Record) error
}

// ChangeKind names the mutation that produced a Change.
type ChangeKind string

const (
	ChangeAppend ChangeKind = "append"
	ChangeDelete ChangeKind = "delete"
	ChangeClear  ChangeKind = "clear"
)

// Change describes a persisted mutation.
type Change struct {
	Kind  ChangeKind `json:"reason"`
	Count int        `json:"count"`
}

// Option configures a Store.
type Option func(*Store)

// WithOnChange registers fn to run after each persisted mutation.
// fn runs without the store lock held.
func WithOnChange(fn func(Change)) Option {
	return func(s *Store) { s.onChange = fn }
}

// Store is safe for concurrent use.
type Store struct {
	p        Persister
	onChange func(Change)

	mu      sync.RWMutex
	records []models.Record
}

// Open loads the collection from p. Records stored without an ID are given
// one and the collection is saved straight away so the IDs survive restarts.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	records, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	s := &Store{p: p, records: records}
	for _, opt := range opts {
		opt(s)
	}

	assigned := 0
	for i := range s.records {
		if s.records[i].ID == "" {
			s.records[i].ID = uuid.NewString()
			assigned++
		}
	}
	if assigned > 0 {
		if err := p.Save(ctx, s.records); err != nil {
			return nil, fmt.Errorf("save assigned record IDs: %w", err)
		}
		logging.Ctx(ctx).Info().Int("assigned", assigned).Msg("Assigned IDs to stored records")
	}

	metrics.StoreRecords.Set(float64(len(s.records)))
	return s, nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// List returns the records in insertion order.
func (s *Store) List() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Recent returns the records newest first.
func (s *Store) Recent() []models.Record {
	out := s.List()
	slices.Reverse(out)
	return out
}

// Get returns the record with id.
func (s *Store) Get(id string) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Record{}, ErrNotFound
	}
	return s.records[i], nil
}

// Titles returns every title in insertion order.
func (s *Store) Titles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	titles := make([]string, len(s.records))
	for i := range s.records {
		titles[i] = s.records[i].Title
	}
	return titles
}

// Summary aggregates viewing time over the collection.
func (s *Store) Summary() models.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Summarize(s.records)
}

// Append adds rec at the end of the collection.
func (s *Store) Append(ctx context.Context, rec models.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.indexOf(rec.ID) >= 0 {
		s.mu.Unlock()
		return fmt.Errorf("record %s already stored", rec.ID)
	}
	next := append(slices.Clone(s.records), rec)
	n, err := s.commit(ctx, ChangeAppend, next)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(Change{Kind: ChangeAppend, Count: n})
	return nil
}

// Delete removes the record with id and returns it.
func (s *Store) Delete(ctx context.Context, id string) (models.Record, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Record{}, ErrNotFound
	}
	return s.removeLocked(ctx, i)
}

// DeleteAt removes the record at position index in insertion order.
func (s *Store) DeleteAt(ctx context.Context, index int) (models.Record, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.records) {
		s.mu.Unlock()
		return models.Record{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return s.removeLocked(ctx, index)
}

// removeLocked is entered with s.mu held and releases it.
func (s *Store) removeLocked(ctx context.Context, i int) (models.Record, error) {
	removed := s.records[i]
	next := slices.Delete(slices.Clone(s.records), i, i+1)
	n, err := s.commit(ctx, ChangeDelete, next)
	s.mu.Unlock()

	if err != nil {
		return models.Record{}, err
	}
	s.notify(Change{Kind: ChangeDelete, Count: n})
	return removed, nil
}

// Clear removes every record.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	n, err := s.commit(ctx, ChangeClear, []models.Record{})
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(Change{Kind: ChangeClear, Count: n})
	return nil
}

// commit saves next and, only if that succeeds, makes it the live
// collection. Must be called with s.mu held.
func (s *Store) commit(ctx context.Context, kind ChangeKind, next []models.Record) (int, error) {
	if err := s.p.Save(ctx, next); err != nil {
		metrics.RecordStoreMutation(string(kind), err, len(s.records))
		logging.Ctx(ctx).Error().
			Err(err).
			Str("mutation", string(kind)).
			Msg("Failed to persist records, change discarded")
		return len(s.records), fmt.Errorf("persist %s: %w", kind, err)
	}
	s.records = next
	metrics.RecordStoreMutation(string(kind), nil, len(next))
	return len(next), nil
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.records, func(r models.Record) bool { return r.ID == id })
}

func (s *Store) notify(c Change) {
	if s.onChange != nil {
		s.onChange(c)
	}
}
