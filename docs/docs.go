// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

// Package docs registers the OpenAPI document served under /swagger/.
// It mirrors the @ annotations on cmd/server/docs.go and the handlers in
// internal/api; `swag init -g cmd/server/docs.go` rewrites it from them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/watchlog/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/analysis/preferences": {
            "post": {
                "description": "Free text from the model. A model failure still answers 200 with a fixed failure text.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Analyze viewing preferences",
                "responses": {
                    "200": {"description": "Analysis text", "schema": {"allOf": [{"$ref": "#/definitions/api.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.analysisResponse"}}}]}},
                    "409": {"description": "No records yet", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "415": {"description": "Content-Type is not application/json", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/analysis/recommendations": {
            "post": {
                "description": "Three recommendations excluding every watched title. A model failure still answers 200 with a fixed failure text.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Recommend unseen titles",
                "responses": {
                    "200": {"description": "Recommendation text", "schema": {"allOf": [{"$ref": "#/definitions/api.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.analysisResponse"}}}]}},
                    "409": {"description": "No records yet", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "415": {"description": "Content-Type is not application/json", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "Categories", "schema": {"allOf": [{"$ref": "#/definitions/api.APIResponse"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryInfo"}}}}]}}
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "Process is alive", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Record count, AI circuit state and websocket clients", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/records": {
            "get": {
                "description": "Returns every record newest first, the viewing-time summary and whether a bulk delete awaits confirmation.",
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "List records",
                "responses": {
                    "200": {"description": "Records and summary", "schema": {"allOf": [{"$ref": "#/definitions/api.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/tracker.View"}}}]}}
                }
            },
            "post": {
                "description": "Asks the model for viewing time and reputation, then stores the record. Nothing is stored when the model cannot describe the title.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "Register a watched title",
                "parameters": [
                    {"description": "Title, category, rating and impression", "name": "record", "in": "body", "required": true, "schema": {"$ref": "#/definitions/tracker.SubmitInput"}}
                ],
                "responses": {
                    "201": {"description": "Record registered", "schema": {"allOf": [{"$ref": "#/definitions/api.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/tracker.SubmitResult"}}}]}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "415": {"description": "Content-Type is not application/json", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "422": {"description": "Metadata unavailable", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "500": {"description": "Records file could not be saved", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/records/clear": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Clear"],
                "summary": "Bulk delete state",
                "responses": {
                    "200": {"description": "pending flag", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Clear"],
                "summary": "Request bulk delete",
                "responses": {
                    "200": {"description": "pending flag", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "415": {"description": "Content-Type is not application/json", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/records/clear/cancel": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Clear"],
                "summary": "Cancel bulk delete",
                "responses": {
                    "200": {"description": "pending flag", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "415": {"description": "Content-Type is not application/json", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/records/clear/confirm": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Clear"],
                "summary": "Confirm bulk delete",
                "responses": {
                    "200": {"description": "All records deleted", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "409": {"description": "No bulk delete was requested", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "415": {"description": "Content-Type is not application/json", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "500": {"description": "Records file could not be saved", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/records/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "Get a record",
                "parameters": [
                    {"type": "string", "description": "Record ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Record", "schema": {"allOf": [{"$ref": "#/definitions/api.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.Record"}}}]}},
                    "404": {"description": "Unknown record", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "Delete a record",
                "parameters": [
                    {"type": "string", "description": "Record ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Record deleted", "schema": {"allOf": [{"$ref": "#/definitions/api.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/tracker.DeleteResult"}}}]}},
                    "404": {"description": "Unknown record", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "500": {"description": "Records file could not be saved", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "Viewing-time summary",
                "responses": {
                    "200": {"description": "Total hours and per-title bars", "schema": {"allOf": [{"$ref": "#/definitions/api.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.summaryResponse"}}}]}}
                }
            }
        },
        "/ws": {
            "get": {
                "description": "Upgrades to a WebSocket that receives a records_changed message after every persisted change.",
                "tags": ["Core"],
                "summary": "Change notifications",
                "responses": {
                    "101": {"description": "Switching protocols"},
                    "503": {"description": "WebSocket hub not running", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "api.APIMeta": {
            "type": "object",
            "properties": {
                "duration_ms": {"type": "integer"},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/api.APIError"},
                "meta": {"$ref": "#/definitions/api.APIMeta"},
                "success": {"type": "boolean"}
            }
        },
        "api.analysisResponse": {
            "type": "object",
            "properties": {
                "text": {"type": "string"}
            }
        },
        "api.summaryResponse": {
            "type": "object",
            "properties": {
                "bars": {"type": "array", "items": {"$ref": "#/definitions/models.Bar"}},
                "hours_label": {"type": "string"},
                "record_count": {"type": "integer"},
                "total_hours": {"type": "number"},
                "total_minutes": {"type": "integer"}
            }
        },
        "models.Bar": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "minutes": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "models.CategoryInfo": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "outcome": {"type": "string", "enum": ["parsed_ok", "parsed_malformed", "call_failed"]},
                "reputation_summary": {"type": "string"},
                "total_minutes": {"type": "integer"},
                "viewing_time_summary": {"type": "string"}
            }
        },
        "models.Record": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "enum": ["アニメ", "映画", "ドラマ", "特撮", "その他"]},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "impression": {"type": "string", "maxLength": 5000},
                "reputation_summary": {"type": "string"},
                "title": {"type": "string", "maxLength": 200},
                "total_minutes": {"type": "integer"},
                "user_rating": {"type": "integer", "maximum": 5, "minimum": 1},
                "user_rating_display": {"type": "string"},
                "viewing_time_summary": {"type": "string"}
            }
        },
        "models.Summary": {
            "type": "object",
            "properties": {
                "bars": {"type": "array", "items": {"$ref": "#/definitions/models.Bar"}},
                "record_count": {"type": "integer"},
                "total_hours": {"type": "number"},
                "total_minutes": {"type": "integer"}
            }
        },
        "tracker.DeleteResult": {
            "type": "object",
            "properties": {
                "notice": {"type": "string"},
                "record": {"$ref": "#/definitions/models.Record"}
            }
        },
        "tracker.SubmitInput": {
            "type": "object",
            "required": ["category", "title"],
            "properties": {
                "category": {"type": "string", "example": "animation"},
                "impression": {"type": "string", "maxLength": 5000},
                "rating": {"type": "integer", "maximum": 5, "minimum": 1},
                "title": {"type": "string", "maxLength": 200}
            }
        },
        "tracker.SubmitResult": {
            "type": "object",
            "properties": {
                "metadata": {"$ref": "#/definitions/models.Metadata"},
                "notice": {"type": "string"},
                "record": {"$ref": "#/definitions/models.Record"},
                "registered": {"type": "boolean"}
            }
        },
        "tracker.View": {
            "type": "object",
            "properties": {
                "clear_pending": {"type": "boolean"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/models.Record"}},
                "summary": {"$ref": "#/definitions/models.Summary"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8501",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Watchlog API",
	Description:      "Personal media-watching tracker: records watched titles, asks Gemini for viewing time and reputation, and produces preference analyses and recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
