// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned by ParseCategory for values outside the closed set.
var ErrUnknownCategory = errors.New("unknown category")

// Category is the kind of work watched. The value is the label written to
// the data file, so existing files stay readable.
type Category string

const (
	CategoryAnimation Category = "アニメ"
	CategoryFilm      Category = "映画"
	CategoryDrama     Category = "ドラマ"
	CategoryTokusatsu Category = "特撮"
	CategoryOther     Category = "その他"
)

// CategoryInfo describes one category for clients building a picker.
type CategoryInfo struct {
	Slug  string   `json:"slug"`
	Label Category `json:"label"`
}

// categories is ordered the way the picker presents them.
var categories = []CategoryInfo{
	{Slug: "animation", Label: CategoryAnimation},
	{Slug: "film", Label: CategoryFilm},
	{Slug: "drama", Label: CategoryDrama},
	{Slug: "tokusatsu", Label: CategoryTokusatsu},
	{Slug: "other", Label: CategoryOther},
}

// Categories returns the closed category set in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory accepts either the ASCII slug (case-insensitive) or the label.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(s, c.Slug) || s == string(c.Label) {
			return c.Label, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c is one of the known labels.
func (c Category) Valid() bool {
	for _, info := range categories {
		if info.Label == c {
			return true
		}
	}
	return false
}

// Slug returns the ASCII identifier for c, or "" if c is unknown.
func (c Category) Slug() string {
	for _, info := range categories {
		if info.Label == c {
			return info.Slug
		}
	}
	return ""
}
