// Package docs registers the swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Application is healthy", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "A component is down", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        },
        "/sessions": {
            "post": {
                "description": "Open a session and mount the location view with the reported geolocation result",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Open a widget session",
                "parameters": [
                    {"description": "Geolocation report", "name": "mount", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.MountRequest"}}
                ],
                "responses": {
                    "201": {"description": "Session opened", "schema": {"$ref": "#/definitions/model.CreateSessionResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Session opened but the weather fetch failed", "schema": {"$ref": "#/definitions/model.CreateSessionResponse"}}
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Get the rendered widget",
                "parameters": [{"type": "string", "description": "Session id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Rendered widget", "schema": {"$ref": "#/definitions/model.WidgetView"}},
                    "404": {"description": "Session not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["sessions"],
                "summary": "Close a widget session",
                "parameters": [{"type": "string", "description": "Session id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Session deleted"},
                    "404": {"description": "Session not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/{id}/query": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Update the search input",
                "parameters": [
                    {"type": "string", "description": "Session id", "name": "id", "in": "path", "required": true},
                    {"description": "Search input text", "name": "query", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.QueryRequest"}}
                ],
                "responses": {
                    "200": {"description": "Rendered widget", "schema": {"$ref": "#/definitions/model.WidgetView"}},
                    "404": {"description": "Session not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/{id}/search": {
            "post": {
                "description": "Search by city name, or by the current input when city is empty. Empty and unknown cities are reported inline in search.searchError.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Search weather by city",
                "parameters": [
                    {"type": "string", "description": "Session id", "name": "id", "in": "path", "required": true},
                    {"description": "City to search", "name": "search", "in": "body", "schema": {"$ref": "#/definitions/model.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "Rendered widget", "schema": {"$ref": "#/definitions/model.WidgetView"}},
                    "409": {"description": "Superseded by a newer request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Weather provider failure", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/{id}/forecast/select": {
            "post": {
                "description": "Override the displayed temperature with a forecast entry, by index (body or ?index=) or by temperature",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Show a forecast temperature",
                "parameters": [
                    {"type": "string", "description": "Session id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Forecast entry index", "name": "index", "in": "query"},
                    {"description": "Forecast selection", "name": "selection", "in": "body", "schema": {"$ref": "#/definitions/model.SelectForecastRequest"}}
                ],
                "responses": {
                    "200": {"description": "Rendered widget", "schema": {"$ref": "#/definitions/model.WidgetView"}},
                    "400": {"description": "Invalid selection", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/{id}/refresh": {
            "post": {
                "description": "User initiated retry after a failed fetch",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Re-run the last weather fetch",
                "parameters": [{"type": "string", "description": "Session id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Rendered widget", "schema": {"$ref": "#/definitions/model.WidgetView"}},
                    "409": {"description": "Nothing to refresh or superseded", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Weather provider failure", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "model.MountRequest": {
            "type": "object",
            "properties": {
                "geolocation": {"type": "string", "enum": ["granted", "denied", "unsupported"]},
                "position": {"type": "object", "properties": {"latitude": {"type": "number"}, "longitude": {"type": "number"}}}
            }
        },
        "model.QueryRequest": {"type": "object", "properties": {"query": {"type": "string"}}},
        "model.SearchRequest": {"type": "object", "properties": {"city": {"type": "string"}}},
        "model.SelectForecastRequest": {
            "type": "object",
            "properties": {"index": {"type": "integer"}, "temperature": {"type": "number"}}
        },
        "model.CreateSessionResponse": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "notice": {"type": "object", "properties": {"kind": {"type": "string"}, "message": {"type": "string"}}},
                "view": {"$ref": "#/definitions/model.WidgetView"}
            }
        },
        "model.WidgetView": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "phase": {"type": "string", "enum": ["Detecting", "LocationResolved", "SearchActive"]},
                "loading": {"type": "object"},
                "location": {"type": "object"},
                "search": {"type": "object"},
                "fetchError": {"type": "object"},
                "forecast": {"type": "array", "items": {"type": "object"}}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "events": {"type": "object"},
                "sessions": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/weather-widget",
	Schemes:          []string{},
	Title:            "Weather Widget API",
	Description:      "Widget sessions showing local weather, with manual city search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
