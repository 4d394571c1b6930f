// Package docs registers the OpenAPI document served by swaggerkit
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "paths": {
        "/auth/platforms": {
            "get": {
                "tags": ["Verify"],
                "summary": "List supported platforms",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/PlatformsResponse"}}
                }
            }
        },
        "/auth/{platform}": {
            "post": {
                "tags": ["Verify"],
                "summary": "Verify account ownership with a short code",
                "description": "Succeeds when the code appears as a whitespace separated token in the account's public display name or page title.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "platform", "in": "path", "required": true, "type": "string", "enum": ["codechef", "leetcode", "codeforces"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VerifyRequest"}}
                ],
                "responses": {
                    "200": {"description": "Authentication successful", "schema": {"$ref": "#/definitions/VerifyResponse"}},
                    "400": {"description": "Invalid body. A username with characters other than letters, digits, '_', '.' or '-' is rejected before any platform call", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Authentication failed", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Unsupported platform", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/meta/health": {
            "get": {"tags": ["Meta"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}
        },
        "/meta/ready": {
            "get": {"tags": ["Meta"], "summary": "Readiness with registered verifiers", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}
        },
        "/meta/version": {
            "get": {"tags": ["Meta"], "summary": "Build and version info", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}
        },
        "/meta/service": {
            "get": {"tags": ["Meta"], "summary": "Service info and uptime", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}
        }
    },
    "definitions": {
        "VerifyRequest": {
            "type": "object",
            "required": ["username", "code"],
            "properties": {
                "username": {"type": "string", "maxLength": 64, "example": "tourist"},
                "code": {"type": "string", "maxLength": 64, "example": "XYZ123"}
            }
        },
        "VerifyResponse": {
            "type": "object",
            "properties": {
                "status_code": {"type": "integer", "example": 200},
                "status": {"type": "string", "example": "OK"},
                "request_id": {"type": "string"},
                "data": {
                    "type": "object",
                    "properties": {
                        "verified": {"type": "boolean", "example": true},
                        "platform": {"type": "string", "example": "codeforces"},
                        "username": {"type": "string", "example": "tourist"},
                        "attempt_id": {"type": "string", "format": "uuid"},
                        "message": {"type": "string", "example": "Authentication successful"}
                    }
                }
            }
        },
        "PlatformsResponse": {
            "type": "object",
            "properties": {
                "status_code": {"type": "integer", "example": 200},
                "status": {"type": "string", "example": "OK"},
                "data": {
                    "type": "object",
                    "properties": {
                        "platforms": {"type": "array", "items": {"type": "string"}, "example": ["codechef", "leetcode", "codeforces"]}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "cpauth API",
	Description:      "Competitive programming account verification",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
