// Package api holds the OpenAPI document of the backend, served by gin-swagger.
package api

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
        "/": {
            "get": {"tags": ["General"], "summary": "API root", "responses": {"200": {"description": "OK"}}},
            "options": {"tags": ["General"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/healthz": {
            "get": {"tags": ["General"], "summary": "Get health", "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error"}}}
        },
        "/version": {
            "get": {"tags": ["General"], "summary": "API version", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/goals": {
            "get": {"tags": ["Goals"], "summary": "Get goals", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "post": {"tags": ["Goals"], "summary": "Create goal", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/v1/goals/{id}": {
            "get": {"tags": ["Goals"], "summary": "Get goal", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Goals"], "summary": "Update goal", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Goals"], "summary": "Delete goal", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/v1/settings": {
            "get": {"tags": ["Settings"], "summary": "Get settings", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Settings"], "summary": "Update settings", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/v1/budgets/preview": {
            "post": {"tags": ["Budgets"], "summary": "Preview budget", "parameters": [{"type": "boolean", "name": "active", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
