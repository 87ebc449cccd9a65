// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package tracker

import (
	"strings"
	"testing"

	"github.com/tomtom215/watchlog/internal/models"
)

func TestPreferencePromptFocusesOnHighRatings(t *testing.T) {
	t.Parallel()

	p := PreferencePrompt([]models.Record{
		{Title: "A", Category: models.CategoryDrama, UserRating: 4, Impression: "よかった"},
	})
	for _, want := range []string{"評価4以上", "- 作品名: A, 分類: ドラマ, あなたの評価: 4/5, 感想: よかった"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRecommendationPromptDoesNotReorderInput(t *testing.T) {
	t.Parallel()

	records := []models.Record{
		{Title: "Low", UserRating: 1},
		{Title: "High", UserRating: 5},
	}
	_ = RecommendationPrompt(records)
	if records[0].Title != "Low" {
		t.Error("input slice was reordered")
	}
}
