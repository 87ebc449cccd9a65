// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

// Package gateway is the only place Watchlog talks to the generative model.
// Failures never cross this boundary as errors: metadata fetches return a
// sentinel with zero minutes and analyses return a fixed failure text.
package gateway

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/tomtom215/watchlog/internal/cache"
	"github.com/tomtom215/watchlog/internal/logging"
	"github.com/tomtom215/watchlog/internal/metrics"
	"github.com/tomtom215/watchlog/internal/models"
)

// User-facing failure texts.
const (
	FailureSummary       = "情報取得失敗"
	MalformedReputation  = "AIからの応答形式が正しくありませんでした。"
	CallFailedReputation = "APIエラーが発生しました。"
	AnalysisFailed       = "分析・提案の生成に失敗しました。"
)

const (
	opFetchMetadata = "fetch_metadata"
	opAnalyze       = "analyze"

	// DefaultTimeout bounds a single model call when no option overrides it.
	DefaultTimeout = 60 * time.Second
)

// digitRun matches the first run of decimal digits, including full-width ones.
var digitRun = regexp.MustCompile(`\p{Nd}+`)

// Gateway fetches title metadata and free-text analyses.
type Gateway struct {
	gen     Generator
	timeout time.Duration
	cache   *cache.Cache[models.Metadata]
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout bounds each model call.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithMetadataCache reuses successful metadata per title.
func WithMetadataCache(c *cache.Cache[models.Metadata]) Option {
	return func(g *Gateway) { g.cache = c }
}

// New creates a Gateway over gen.
func New(gen Generator, opts ...Option) *Gateway {
	g := &Gateway{gen: gen, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FetchMetadata asks the model about title. The result's Outcome tells how the
// call ended; TotalMinutes is zero unless a usable answer came back.
func (g *Gateway) FetchMetadata(ctx context.Context, title string) models.Metadata {
	key := metadataKey(title)
	if g.cache != nil {
		if m, ok := g.cache.Get(key); ok {
			metrics.RecordAIRequest(opFetchMetadata, "cache_hit", 0)
			return m
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	text, err := g.gen.GenerateText(callCtx, MetadataPrompt(title))
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordAIRequest(opFetchMetadata, string(models.OutcomeCallFailed), elapsed)
		logging.Ctx(ctx).Error().
			Err(err).
			Str("title", title).
			Dur("duration", elapsed).
			Msg("AI metadata fetch failed")
		return models.Metadata{
			ViewingTimeSummary: FailureSummary,
			TotalMinutes:       0,
			ReputationSummary:  CallFailedReputation,
			Outcome:            models.OutcomeCallFailed,
		}
	}

	m := ParseMetadata(text)
	metrics.RecordAIRequest(opFetchMetadata, string(m.Outcome), elapsed)

	switch {
	case m.Outcome == models.OutcomeParsedMalformed:
		logging.Ctx(ctx).Warn().
			Str("title", title).
			Int("fields", strings.Count(text, FieldDelimiter)+1).
			Msg("AI metadata response was not three fields")
	case m.Usable() && g.cache != nil:
		g.cache.Set(key, m)
	}
	return m
}

// Analyze returns the model's answer to prompt, or AnalysisFailed.
func (g *Gateway) Analyze(ctx context.Context, prompt string) string {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	text, err := g.gen.GenerateText(callCtx, prompt)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordAIRequest(opAnalyze, "call_failed", elapsed)
		logging.Ctx(ctx).Error().Err(err).Dur("duration", elapsed).Msg("AI analysis failed")
		return AnalysisFailed
	}
	metrics.RecordAIRequest(opAnalyze, "ok", elapsed)
	return text
}

// ParseMetadata interprets a "summary|||minutes|||reputation" answer.
//
// Exactly three fields are required. Minutes are the first digit run found in
// the second field, or zero if it has none.
func ParseMetadata(text string) models.Metadata {
	parts := strings.Split(text, FieldDelimiter)
	if len(parts) != 3 {
		return models.Metadata{
			ViewingTimeSummary: FailureSummary,
			TotalMinutes:       0,
			ReputationSummary:  MalformedReputation,
			Outcome:            models.OutcomeParsedMalformed,
		}
	}

	return models.Metadata{
		ViewingTimeSummary: strings.TrimSpace(parts[0]),
		TotalMinutes:       firstInt(parts[1]),
		ReputationSummary:  strings.TrimSpace(parts[2]),
		Outcome:            models.OutcomeParsedOK,
	}
}

// firstInt returns the value of the first digit run in s. Runs that do not
// fit in an int count as no digits.
func firstInt(s string) int {
	run := digitRun.FindString(s)
	if run == "" {
		return 0
	}

	var b strings.Builder
	for _, r := range run {
		b.WriteByte(byte('0' + digitValue(r)))
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// digitValue maps any Unicode decimal digit to 0-9. Decimal digits are
// encoded as contiguous runs starting at zero, so the offset from the start
// of the run gives the value.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}

func metadataKey(title string) string {
	return cache.GenerateKey(opFetchMetadata, strings.ToLower(strings.TrimSpace(title)))
}
