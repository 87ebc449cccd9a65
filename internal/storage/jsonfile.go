// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

// Package storage persists the record collection as a single JSON array on
// local disk. The whole file is rewritten on every save.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/watchlog/internal/logging"
	"github.com/tomtom215/watchlog/internal/metrics"
	"github.com/tomtom215/watchlog/internal/models"
)

const indent = "    "

// JSONFile reads and writes the records file. It assumes it is the file's
// only writer.
type JSONFile struct {
	path string
	mu   sync.Mutex
}

// NewJSONFile returns an adapter for path. Nothing is touched on disk until
// Load or Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the backing file location.
func (f *JSONFile) Path() string {
	return f.path
}

// Load returns the stored records in file order.
//
// A missing file yields an empty collection. So does a file that is present
// but cannot be decoded as a record array; that case is logged at WARN and
// counted, but is not an error. Any other read failure is returned.
func (f *JSONFile) Load(ctx context.Context) ([]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			metrics.StorageLoadRecoveries.WithLabelValues("missing").Inc()
			logging.Ctx(ctx).Info().Str("path", f.path).Msg("Data file not found, starting with no records")
			return []models.Record{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	var stored []fileRecord
	if err := json.Unmarshal(data, &stored); err != nil {
		metrics.StorageLoadRecoveries.WithLabelValues("corrupt").Inc()
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("path", f.path).
			Int("bytes", len(data)).
			Msg("Data file is not a valid record array, starting with no records")
		return []models.Record{}, nil
	}

	records := make([]models.Record, 0, len(stored))
	for i := range stored {
		records = append(records, stored[i].toRecord())
	}
	return records, nil
}

// Save replaces the file with records. The write goes to a temporary file in
// the same directory which is synced and renamed over the target, so a
// crash leaves either the old or the new contents.
func (f *JSONFile) Save(ctx context.Context, records []models.Record) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	defer func() { metrics.RecordStorageSave(time.Since(start), err) }()

	data, err := encode(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := writeFileAtomic(f.path, data); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

// encode renders records as a 4-space indented array with non-ASCII text
// left as-is.
func encode(records []models.Record) ([]byte, error) {
	out := make([]fileRecord, 0, len(records))
	for i := range records {
		out = append(out, toFileRecord(&records[i]))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	syncDir(dir)
	return nil
}

// syncDir flushes the rename. Best effort: not all platforms support it.
func syncDir(dir string) {
	if runtime.GOOS == "windows" {
		return
	}
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	defer d.Close()
	_ = d.Sync()
}
