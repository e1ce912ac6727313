// Package docs registers the patternd OpenAPI document with swag so that
// http-swagger can serve it at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/notify": {
            "post": {
                "summary": "Broadcast a message to every subscriber",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/types.NotifyRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.NotifyResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/events": {
            "get": {
                "summary": "Recent broadcast values",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.EventsResponse"}}}
            }
        },
        "/agent": {
            "get": {
                "summary": "Current agent mood and thought",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.AgentResponse"}}}
            }
        },
        "/agent/state": {
            "put": {
                "summary": "Change the agent mood",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/types.ChangeStateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.AgentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/house": {
            "get": {
                "summary": "House subsystem status",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HouseResponse"}}}
            }
        },
        "/range": {
            "get": {
                "summary": "Stepped integer range",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "start", "type": "integer"},
                    {"in": "query", "name": "end", "type": "integer"},
                    {"in": "query", "name": "step", "type": "integer"},
                    {"in": "query", "name": "limit", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.RangeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.NotifyRequest": {"type": "object", "properties": {"message": {"type": "string", "example": "Hello"}}},
        "types.DeliveryFailure": {"type": "object", "properties": {"index": {"type": "integer"}, "subscription_id": {"type": "string"}, "error": {"type": "string"}}},
        "types.NotifyResponse": {"type": "object", "properties": {"subscribers": {"type": "integer"}, "failures": {"type": "array", "items": {"$ref": "#/definitions/types.DeliveryFailure"}}}},
        "types.EventsResponse": {"type": "object", "properties": {"events": {"type": "array", "items": {"type": "string"}}}},
        "types.AgentResponse": {"type": "object", "properties": {"state": {"type": "string", "example": "happy"}, "thought": {"type": "string"}}},
        "types.ChangeStateRequest": {"type": "object", "properties": {"state": {"type": "string", "example": "sad"}}},
        "types.HouseResponse": {"type": "object", "properties": {
            "electric": {"type": "object", "properties": {"on": {"type": "boolean"}, "power_w": {"type": "integer"}}},
            "plumbing": {"type": "object", "properties": {"on": {"type": "boolean"}, "pressure_psi": {"type": "integer"}}}
        }},
        "types.RangeResponse": {"type": "object", "properties": {"values": {"type": "array", "items": {"type": "integer"}}}},
        "types.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "code": {"type": "integer"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "patternd API",
	Description:      "Notifier, mood agent and house facade over HTTP.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
