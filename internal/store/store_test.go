// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/watchlog/internal/models"
	"github.com/tomtom215/watchlog/internal/storage"
)

// memPersister keeps the last saved collection and can be told to fail.
type memPersister struct {
	mu      sync.Mutex
	saved   []models.Record
	saves   int
	failing error
}

func (m *memPersister) Load(context.Context) ([]models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Record(nil), m.saved...), nil
}

func (m *memPersister) Save(_ context.Context, records []models.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing != nil {
		return m.failing
	}
	m.saves++
	m.saved = append([]models.Record(nil), records...)
	return nil
}

func newRecord(t *testing.T, title string, minutes int) models.Record {
	t.Helper()
	rec, err := models.NewRecord(
		models.Entry{Title: title, Category: models.CategoryDrama, Rating: 4},
		models.Metadata{ViewingTimeSummary: "全10話", TotalMinutes: minutes, ReputationSummary: "好評"},
		time.Now(),
	)
	if err != nil {
		t.Fatalf("NewRecord(%q) error = %v", title, err)
	}
	return rec
}

func openWith(t *testing.T, titles ...string) (*Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	s, err := Open(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	for i, title := range titles {
		if err := s.Append(context.Background(), newRecord(t, title, (i+1)*10)); err != nil {
			t.Fatal(err)
		}
	}
	return s, p
}

func titlesOf(records []models.Record) []string {
	out := make([]string, len(records))
	for i := range records {
		out[i] = records[i].Title
	}
	return out
}

func TestAppendPersistsAndOrders(t *testing.T) {
	t.Parallel()

	s, p := openWith(t, "A", "B", "C")

	if got, want := s.Titles(), []string{"A", "B", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Titles() = %v, want %v", got, want)
	}
	if got, want := titlesOf(s.Recent()), []string{"C", "B", "A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Recent() = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(p.saved, s.List()) {
		t.Error("persisted collection differs from memory")
	}
	if p.saves != 3 {
		t.Errorf("saves = %d, want 3", p.saves)
	}
}

func TestAppendRejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	s, p := openWith(t)
	bad := newRecord(t, "X", 10)
	bad.TotalMinutes = 0

	if err := s.Append(context.Background(), bad); err == nil {
		t.Fatal("expected validation error")
	}
	if s.Len() != 0 || p.saves != 0 {
		t.Errorf("store mutated: len=%d saves=%d", s.Len(), p.saves)
	}
}

func TestDeleteAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		index   int
		want    []string
		removed string
	}{
		{0, []string{"B", "C", "D"}, "A"},
		{2, []string{"A", "B", "D"}, "C"},
		{3, []string{"A", "B", "C"}, "D"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index %d", tt.index), func(t *testing.T) {
			t.Parallel()

			s, p := openWith(t, "A", "B", "C", "D")
			removed, err := s.DeleteAt(context.Background(), tt.index)
			if err != nil {
				t.Fatalf("DeleteAt() error = %v", err)
			}
			if removed.Title != tt.removed {
				t.Errorf("removed %q, want %q", removed.Title, tt.removed)
			}
			if got := s.Titles(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Titles() = %v, want %v", got, tt.want)
			}
			if got := titlesOf(p.saved); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("persisted = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeleteAtOutOfRange(t *testing.T) {
	t.Parallel()

	s, _ := openWith(t, "A")
	for _, i := range []int{-1, 1, 5} {
		if _, err := s.DeleteAt(context.Background(), i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("DeleteAt(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestDeleteByID(t *testing.T) {
	t.Parallel()

	s, _ := openWith(t, "A", "B", "C")
	target := s.List()[1]

	removed, err := s.Delete(context.Background(), target.ID)
	if err != nil {
		t.Fatal(err)
	}
	if removed.ID != target.ID {
		t.Errorf("removed %s, want %s", removed.ID, target.ID)
	}
	if _, err := s.Get(target.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if _, err := s.Delete(context.Background(), target.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestClearThenReloadIsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "works_data.json")
	ctx := context.Background()

	s, err := Open(ctx, storage.NewJSONFile(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"A", "B"} {
		if err := s.Append(ctx, newRecord(t, title, 30)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(ctx, storage.NewJSONFile(path))
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Len() != 0 {
		t.Errorf("Len() after reload = %d, want 0", reopened.Len())
	}
}

func TestAppendDeleteReloadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "works_data.json")
	ctx := context.Background()

	s, err := Open(ctx, storage.NewJSONFile(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"鬼滅の刃", "千と千尋の神隠し", "半沢直樹"} {
		if err := s.Append(ctx, newRecord(t, title, 120)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.DeleteAt(ctx, 1); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(ctx, storage.NewJSONFile(path))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(reopened.List(), s.List()) {
		t.Errorf("reloaded = %+v\nwant %+v", reopened.List(), s.List())
	}
}

func TestOpenAssignsMissingIDs(t *testing.T) {
	t.Parallel()

	p := &memPersister{saved: []models.Record{
		{Title: "Old", Category: models.CategoryFilm, UserRating: 3, TotalMinutes: 100},
		{ID: "keep-me", Title: "New", Category: models.CategoryFilm, UserRating: 3, TotalMinutes: 50},
	}}

	s, err := Open(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	list := s.List()
	if list[0].ID == "" {
		t.Error("legacy record still has no ID")
	}
	if list[1].ID != "keep-me" {
		t.Errorf("existing ID changed to %q", list[1].ID)
	}
	if p.saves != 1 || p.saved[0].ID != list[0].ID {
		t.Error("assigned IDs were not persisted")
	}
}

func TestFailedSaveRollsBack(t *testing.T) {
	t.Parallel()

	s, p := openWith(t, "A", "B")
	before := s.List()
	p.failing = errors.New("disk full")
	ctx := context.Background()

	if err := s.Append(ctx, newRecord(t, "C", 10)); err == nil {
		t.Error("Append() expected error")
	}
	if _, err := s.DeleteAt(ctx, 0); err == nil {
		t.Error("DeleteAt() expected error")
	}
	if _, err := s.Delete(ctx, before[1].ID); err == nil {
		t.Error("Delete() expected error")
	}
	if err := s.Clear(ctx); err == nil {
		t.Error("Clear() expected error")
	}

	if !reflect.DeepEqual(s.List(), before) {
		t.Errorf("memory changed after failed saves: %v", titlesOf(s.List()))
	}
}

func TestOnChange(t *testing.T) {
	t.Parallel()

	var got []Change
	s, err := Open(context.Background(), &memPersister{}, WithOnChange(func(c Change) {
		got = append(got, c)
	}))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	rec := newRecord(t, "A", 10)
	_ = s.Append(ctx, rec)
	_ = s.Append(ctx, newRecord(t, "B", 10))
	_, _ = s.Delete(ctx, rec.ID)
	_ = s.Clear(ctx)

	want := []Change{
		{Kind: ChangeAppend, Count: 1},
		{Kind: ChangeAppend, Count: 2},
		{Kind: ChangeDelete, Count: 1},
		{Kind: ChangeClear, Count: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("changes = %+v, want %+v", got, want)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	s, _ := openWith(t)
	ctx := context.Background()
	for i, m := range []int{60, 120, 30} {
		if err := s.Append(ctx, newRecord(t, fmt.Sprintf("T%d", i), m)); err != nil {
			t.Fatal(err)
		}
	}

	sum := s.Summary()
	if sum.TotalMinutes != 210 || sum.TotalHours != 3.5 {
		t.Errorf("Summary() = %d min / %.1f h, want 210 / 3.5", sum.TotalMinutes, sum.TotalHours)
	}
	if len(sum.Bars) != 3 || sum.Bars[1].Minutes != 120 {
		t.Errorf("Bars = %+v", sum.Bars)
	}
}
