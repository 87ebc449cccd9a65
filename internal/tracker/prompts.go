// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package tracker

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/tomtom215/watchlog/internal/models"
)

const preferencePromptTemplate = `あなたはプロの映像作品アナリストです。
以下の視聴履歴を持つユーザーの好みの傾向を分析し、簡潔にまとめてください。
特に、評価が高い作品（評価4以上）に注目してください。
どのようなジャンル、テーマ、作風、キャラクター像を好むかを具体的に分析してください。

【ユーザーの視聴履歴】
%s

【分析結果】
`

const recommendationPromptTemplate = `あなたは優れた映像作品コンシェルジュです。
以下の視聴履歴を持つユーザーの好みを踏まえて、次に見るべきおすすめの映像作品を3つ厳選して提案してください。
提案する作品は、ユーザーがまだ見ていないものにしてください。
それぞれの作品について、なぜおすすめなのか理由も50字程度で簡潔に付け加えてください。

【ユーザーの視聴履歴】
%s

【ユーザーが視聴済みの作品リスト（これらは提案しないでください）】
%s

【出力形式の例】
- **【作品名1】**: ユーザーの「〇〇」という好みに合っており、特に△△な点が楽しめるはずです。
- **【作品名2】**: □□と似た雰囲気で、より深く××というテーマを掘り下げています。
- **【作品名3】**: 高評価をつけた△△の監督の別作品で、きっと気に入ると思います。
`

// PreferencePrompt lists every record with its impression, in storage order.
func PreferencePrompt(records []models.Record) string {
	lines := make([]string, len(records))
	for i := range records {
		r := &records[i]
		lines[i] = fmt.Sprintf("- 作品名: %s, 分類: %s, あなたの評価: %d/5, 感想: %s",
			r.Title, r.Category, r.UserRating, r.Impression)
	}
	return fmt.Sprintf(preferencePromptTemplate, strings.Join(lines, "\n"))
}

// RecommendationPrompt lists records highest rated first and names every
// watched title as off limits.
func RecommendationPrompt(records []models.Record) string {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.Record) int {
		return cmp.Compare(b.UserRating, a.UserRating)
	})

	lines := make([]string, len(sorted))
	for i := range sorted {
		r := &sorted[i]
		lines[i] = fmt.Sprintf("- 作品名: %s, 分類: %s, あなたの評価: %d/5", r.Title, r.Category, r.UserRating)
	}

	titles := make([]string, len(records))
	for i := range records {
		titles[i] = records[i].Title
	}

	return fmt.Sprintf(recommendationPromptTemplate, strings.Join(lines, "\n"), strings.Join(titles, ", "))
}
