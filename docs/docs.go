// Package docs registers the OpenAPI document served under /swagger.
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
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/estimate": {
            "post": {
                "description": "Same request and response shape as the remote estimate endpoint. Always computed locally.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lights"],
                "summary": "Remote-compatible estimate",
                "parameters": [
                    {"description": "Estimate request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/seasonal_calc.EstimateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/seasonal_calc.EstimateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/lights/estimate": {
            "post": {
                "description": "Uses the remote estimate source when configured and falls back to the local formula. Saves the inputs as the last-used settings.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lights"],
                "summary": "Estimate holiday light cost",
                "parameters": [
                    {"description": "Light parameters", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LightEstimateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LightEstimate"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/regions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["regions"],
                "summary": "List region presets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.RegionPreset"}}}
                }
            }
        },
        "/api/v1/regions/{code}": {
            "get": {
                "description": "Unknown codes resolve to the \"other\" preset.",
                "produces": ["application/json"],
                "tags": ["regions"],
                "summary": "Resolve a region preset",
                "parameters": [
                    {"type": "string", "description": "Region code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RegionPreset"}}
                }
            }
        },
        "/api/v1/region-default": {
            "get": {
                "description": "Uses ?locale= when given, otherwise the Accept-Language header.",
                "produces": ["application/json"],
                "tags": ["regions"],
                "summary": "Detect the default region",
                "parameters": [
                    {"type": "string", "description": "Locale tag, e.g. en-GB", "name": "locale", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.RegionDefaultResponse"}}
                }
            }
        },
        "/api/v1/settings": {
            "get": {
                "description": "Falls back to defaults for the caller's locale when nothing is saved or storage is unavailable.",
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Load last-used settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SettingsResponse"}}
                }
            },
            "put": {
                "description": "Overwrites the single settings slot. Storage failures are reported with saved=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Save settings",
                "parameters": [
                    {"description": "Settings", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Settings"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SettingsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/thaw/plan": {
            "post": {
                "description": "Cancels the running countdown, computes the thaw and, with a target time, arms a new countdown.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["thaw"],
                "summary": "Plan turkey thawing",
                "parameters": [
                    {"description": "Thaw payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ThawPlanRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ThawPlan"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/thaw/countdown": {
            "get": {
                "produces": ["application/json"],
                "tags": ["thaw"],
                "summary": "Current countdown state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CountdownState"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["thaw"],
                "summary": "Cancel the countdown",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CountdownState"}}
                }
            }
        },
        "/ws/countdown": {
            "get": {
                "description": "WebSocket. Sends {\"type\":\"countdown\",\"data\":CountdownState} every interval and closes after the completed state.",
                "tags": ["thaw"],
                "summary": "Countdown stream",
                "parameters": [
                    {"type": "string", "description": "Go duration, e.g. 500ms (max 10s)", "name": "interval", "in": "query"},
                    {"type": "integer", "description": "Interval in milliseconds (max 10000)", "name": "interval_ms", "in": "query"}
                ],
                "responses": {}
            }
        }
    },
    "definitions": {
        "seasonal_calc.EstimateRequest": {
            "type": "object",
            "properties": {
                "lightType": {"type": "string", "example": "incandescent"},
                "powerWatt": {"type": "number", "example": 40},
                "hoursPerDay": {"type": "number", "example": 8},
                "days": {"type": "integer", "example": 30},
                "pricePerKWh": {"type": "number", "example": 0.18}
            }
        },
        "seasonal_calc.EstimateResponse": {
            "type": "object",
            "properties": {
                "totalCost": {"type": "number"},
                "ledCostEstimate": {"type": "number"},
                "savings": {"type": "number"}
            }
        },
        "handlers.LightEstimateRequest": {
            "type": "object",
            "properties": {
                "lightType": {"type": "string", "example": "incandescent"},
                "powerWatt": {"type": "number", "example": 40},
                "hoursPerDay": {"type": "number", "example": 8},
                "days": {"type": "integer", "example": 30},
                "ratePerKWh": {"type": "number", "example": 0.18},
                "region": {"type": "string", "example": "us"}
            }
        },
        "handlers.RegionDefaultResponse": {
            "type": "object",
            "properties": {
                "region": {"type": "string"},
                "preset": {"$ref": "#/definitions/models.RegionPreset"}
            }
        },
        "handlers.SettingsResponse": {
            "type": "object",
            "properties": {
                "settings": {"$ref": "#/definitions/models.Settings"},
                "saved": {"type": "boolean"}
            }
        },
        "handlers.ThawPlanRequest": {
            "type": "object",
            "properties": {
                "weight": {"type": "number", "example": 12},
                "unit": {"type": "string", "example": "lb"},
                "method": {"type": "string", "example": "fridge"},
                "targetTime": {"type": "string", "example": "2025-11-27T16:00"}
            }
        },
        "models.RegionPreset": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "label": {"type": "string"},
                "ratePerKWh": {"type": "number"},
                "currencySymbol": {"type": "string"},
                "currencyCode": {"type": "string"}
            }
        },
        "models.LightParams": {
            "type": "object",
            "properties": {
                "lightType": {"type": "string"},
                "powerWatt": {"type": "number"},
                "hoursPerDay": {"type": "number"},
                "days": {"type": "integer"},
                "ratePerKWh": {"type": "number"}
            }
        },
        "models.LightCostResult": {
            "type": "object",
            "properties": {
                "totalCost": {"type": "number"},
                "ledCostEstimate": {"type": "number"},
                "savings": {"type": "number"}
            }
        },
        "models.LightEstimate": {
            "type": "object",
            "properties": {
                "params": {"$ref": "#/definitions/models.LightParams"},
                "result": {"$ref": "#/definitions/models.LightCostResult"},
                "perDayCost": {"type": "number"},
                "source": {"type": "string", "enum": ["remote", "local"]},
                "region": {"$ref": "#/definitions/models.RegionPreset"},
                "savingsText": {"type": "string"},
                "summary": {"type": "string"}
            }
        },
        "models.Settings": {
            "type": "object",
            "properties": {
                "lightType": {"type": "string"},
                "powerWatt": {"type": "number"},
                "hoursPerDay": {"type": "number"},
                "days": {"type": "integer"},
                "rate": {"type": "number"},
                "region": {"type": "string"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "models.CountdownState": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "phase": {"type": "string", "enum": ["idle", "notStarted", "inProgress", "completed"]},
                "fractionElapsed": {"type": "number"},
                "remainingSeconds": {"type": "integer"},
                "remainingText": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.ThawResult": {
            "type": "object",
            "properties": {
                "totalHours": {"type": "number"},
                "thawStart": {"type": "string", "format": "date-time"},
                "thawEnd": {"type": "string", "format": "date-time"},
                "isBehindSchedule": {"type": "boolean"}
            }
        },
        "models.ThawPlan": {
            "type": "object",
            "properties": {
                "result": {"$ref": "#/definitions/models.ThawResult"},
                "totalText": {"type": "string"},
                "startText": {"type": "string"},
                "bufferHours": {"type": "number"},
                "methodHint": {"type": "string"},
                "safetyNote": {"type": "string"},
                "scheduleNote": {"type": "string"},
                "lateWarning": {"type": "string"},
                "countdown": {"$ref": "#/definitions/models.CountdownState"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Seasonal Calculator API",
	Description:      "Holiday light cost estimates, turkey thaw planning and the thaw countdown.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
