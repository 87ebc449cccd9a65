// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package models

import "strconv"

// Bar is one entry of the per-title viewing-time chart.
type Bar struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Minutes int    `json:"minutes"`
}

// Summary aggregates viewing time across all records.
type Summary struct {
	RecordCount  int     `json:"record_count"`
	TotalMinutes int     `json:"total_minutes"`
	TotalHours   float64 `json:"total_hours"`
	Bars         []Bar   `json:"bars"`
}

// Summarize totals records in the order given. Hours are rounded to one decimal.
func Summarize(records []Record) Summary {
	s := Summary{
		RecordCount: len(records),
		Bars:        make([]Bar, 0, len(records)),
	}
	for i := range records {
		s.TotalMinutes += records[i].TotalMinutes
		s.Bars = append(s.Bars, Bar{
			ID:      records[i].ID,
			Title:   records[i].Title,
			Minutes: records[i].TotalMinutes,
		})
	}
	s.TotalHours, _ = strconv.ParseFloat(formatHours(s.TotalMinutes), 64)
	return s
}

// HoursLabel renders TotalHours the way the dashboard shows it.
func (s Summary) HoursLabel() string {
	return formatHours(s.TotalMinutes) + " 時間"
}

// formatHours renders minutes as hours with one decimal, rounding the exact
// binary quotient (9 minutes is 0.1, not 0.2).
func formatHours(minutes int) string {
	return strconv.FormatFloat(float64(minutes)/60, 'f', 1, 64)
}
