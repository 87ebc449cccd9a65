// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package storage

import (
	"time"

	"github.com/tomtom215/watchlog/internal/models"
)

// fileRecord is the on-disk shape. The keys match the files written by
// earlier versions of the tracker so existing data loads unchanged; "id" and
// the creation time are additive and optional.
type fileRecord struct {
	ID                 string     `json:"id,omitempty"`
	Title              string     `json:"タイトル"`
	Category           string     `json:"分類"`
	Impression         string     `json:"感想"`
	UserRatingDisplay  string     `json:"あなたの評価"`
	UserRating         int        `json:"評価(数値)"`
	ViewingTimeSummary string     `json:"視聴時間(概要)"`
	TotalMinutes       int        `json:"総視聴時間(分)"`
	ReputationSummary  string     `json:"一般的な評価"`
	CreatedAt          *time.Time `json:"登録日時,omitempty"`
}

func toFileRecord(r *models.Record) fileRecord {
	fr := fileRecord{
		ID:                 r.ID,
		Title:              r.Title,
		Category:           string(r.Category),
		Impression:         r.Impression,
		UserRatingDisplay:  r.UserRatingDisplay,
		UserRating:         r.UserRating,
		ViewingTimeSummary: r.ViewingTimeSummary,
		TotalMinutes:       r.TotalMinutes,
		ReputationSummary:  r.ReputationSummary,
	}
	if fr.UserRatingDisplay == "" {
		fr.UserRatingDisplay = models.RatingStars(r.UserRating)
	}
	if r.CreatedAt != nil {
		t := r.CreatedAt.UTC()
		fr.CreatedAt = &t
	}
	return fr
}

func (fr *fileRecord) toRecord() models.Record {
	r := models.Record{
		ID:                 fr.ID,
		Title:              fr.Title,
		Category:           models.Category(fr.Category),
		Impression:         fr.Impression,
		UserRating:         fr.UserRating,
		UserRatingDisplay:  fr.UserRatingDisplay,
		ViewingTimeSummary: fr.ViewingTimeSummary,
		TotalMinutes:       fr.TotalMinutes,
		ReputationSummary:  fr.ReputationSummary,
	}
	if fr.CreatedAt != nil {
		t := *fr.CreatedAt
		r.CreatedAt = &t
	}
	return r
}
