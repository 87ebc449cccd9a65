// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package main

// General API information for swag.
//
// @title Watchlog API
// @version 1.0
// @description Personal media-watching tracker: records watched titles, asks Gemini for viewing time and reputation, and produces preference analyses and recommendations.
// @description
// @description Every response uses the envelope `{success, data, error, meta}`.
// @description Mutating POST routes require `Content-Type: application/json`.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/watchlog/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks and change notifications
//
// @tag.name Records
// @tag.description Watched titles and the viewing-time summary
//
// @tag.name Clear
// @tag.description Two-step bulk delete
//
// @tag.name Analysis
// @tag.description Model-written preference analysis and recommendations
