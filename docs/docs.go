// Package docs holds the OpenAPI document served under /swagger.
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
        "/mentions/extract": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Extract @-mention candidates from the selected text in the host context",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mentions"],
                "summary": "Extract mentions",
                "parameters": [
                    {
                        "description": "Host context",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/mentions.PanelRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/mentions.ExtractResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/mentions/resolve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Extract mentions from the selection and look each one up in the user directory",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mentions"],
                "summary": "Resolve mentions",
                "parameters": [
                    {
                        "description": "Host context",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/mentions.PanelRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/mentions.ResolveResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/mentions/export": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Resolve the selection and return emails, names, account ids or mentions one per line",
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["mentions"],
                "summary": "Export resolved users",
                "parameters": [
                    {
                        "enum": ["emails", "names", "accounts", "mentions"],
                        "type": "string",
                        "description": "List to export",
                        "name": "kind",
                        "in": "query",
                        "required": true
                    },
                    {
                        "description": "Host context",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/mentions.PanelRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "directory.Resolution": {
            "type": "object",
            "properties": {
                "mention": {"type": "string"},
                "user": {"$ref": "#/definitions/directory.UserRecord"}
            }
        },
        "directory.UserRecord": {
            "type": "object",
            "properties": {
                "accountId": {"type": "string"},
                "displayName": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "mentions.ExtensionContext": {
            "type": "object",
            "properties": {
                "selectedText": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "mentions.ExtractResponse": {
            "type": "object",
            "properties": {
                "mentions": {"type": "array", "items": {"type": "string"}},
                "selectedText": {"type": "string"},
                "unique": {"type": "array", "items": {"type": "string"}}
            }
        },
        "mentions.HostContext": {
            "type": "object",
            "properties": {
                "extension": {"$ref": "#/definitions/mentions.ExtensionContext"},
                "localId": {"type": "string"},
                "moduleKey": {"type": "string"}
            }
        },
        "mentions.PanelRequest": {
            "type": "object",
            "properties": {
                "context": {"$ref": "#/definitions/mentions.HostContext"},
                "format": {"type": "string", "example": "text"}
            }
        },
        "mentions.ResolveResponse": {
            "type": "object",
            "properties": {
                "exports": {"type": "object", "additionalProperties": {"type": "string"}},
                "mentions": {"type": "array", "items": {"type": "string"}},
                "passId": {"type": "string"},
                "resolutions": {"type": "array", "items": {"$ref": "#/definitions/directory.Resolution"}},
                "selectedText": {"type": "string"},
                "unresolved": {"type": "array", "items": {"type": "string"}},
                "users": {"type": "array", "items": {"$ref": "#/definitions/directory.UserRecord"}}
            }
        },
        "response.APIResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "CONTEXT_UNAVAILABLE"},
                "data": {},
                "message": {"type": "string", "example": "ok"},
                "statusCode": {"type": "integer", "example": 200},
                "success": {"type": "boolean", "example": true}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer <host token>\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Mention Lookup API",
	Description:      "Resolves @-mentions in a Jira selection to directory users",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
