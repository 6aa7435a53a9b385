// Package docs registers the OpenAPI description served at /swagger. The
// template is maintained by hand alongside the route table in internal/router.
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
        "/": {
            "get": {"tags": ["dashboard"], "summary": "Dashboard", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "303": {"description": "Not logged in"}}}
        },
        "/reports": {
            "get": {"tags": ["dashboard"], "summary": "Reports", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/login": {
            "get": {"tags": ["auth"], "summary": "Login page", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["auth"], "summary": "Log in", "consumes": ["application/x-www-form-urlencoded"], "parameters": [
                {"type": "string", "name": "email", "in": "formData", "required": true},
                {"type": "string", "name": "password", "in": "formData", "required": true}
            ], "responses": {"303": {"description": "See Other"}}}
        },
        "/register": {
            "get": {"tags": ["auth"], "summary": "Registration page", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["auth"], "summary": "Register", "consumes": ["application/x-www-form-urlencoded"], "parameters": [
                {"type": "string", "name": "email", "in": "formData", "required": true},
                {"type": "string", "name": "password", "in": "formData", "required": true}
            ], "responses": {"303": {"description": "See Other"}}}
        },
        "/logout": {
            "get": {"tags": ["auth"], "summary": "Log out", "responses": {"303": {"description": "See Other"}}}
        },
        "/accounts": {
            "get": {"tags": ["accounts"], "summary": "List accounts", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["accounts"], "summary": "Create an account", "parameters": [
                {"type": "string", "name": "name", "in": "formData", "required": true},
                {"type": "string", "name": "description", "in": "formData"},
                {"type": "string", "name": "currency", "in": "formData"}
            ], "responses": {"303": {"description": "See Other"}}}
        },
        "/accounts/{id}/update": {
            "post": {"tags": ["accounts"], "summary": "Update an account", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"303": {"description": "See Other"}, "404": {"description": "Not Found"}}}
        },
        "/accounts/{id}/delete": {
            "post": {"tags": ["accounts"], "summary": "Delete an account", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"303": {"description": "See Other"}, "404": {"description": "Not Found"}}}
        },
        "/categories": {
            "get": {"tags": ["categories"], "summary": "List categories", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["categories"], "summary": "Create a category", "parameters": [
                {"type": "string", "name": "name", "in": "formData", "required": true},
                {"type": "string", "name": "color", "in": "formData"},
                {"type": "string", "name": "monthly_limit", "in": "formData"}
            ], "responses": {"303": {"description": "See Other"}}}
        },
        "/categories/{id}/update": {
            "post": {"tags": ["categories"], "summary": "Update a category", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"303": {"description": "See Other"}, "404": {"description": "Not Found"}}}
        },
        "/categories/{id}/delete": {
            "post": {"tags": ["categories"], "summary": "Delete a category", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"303": {"description": "See Other"}, "404": {"description": "Not Found"}}}
        },
        "/transactions": {
            "get": {"tags": ["transactions"], "summary": "List transactions", "parameters": [
                {"type": "string", "name": "start_date", "in": "query"},
                {"type": "string", "name": "end_date", "in": "query"},
                {"type": "integer", "name": "category_id", "in": "query"},
                {"type": "string", "name": "type", "in": "query"},
                {"type": "integer", "name": "page", "in": "query"},
                {"type": "integer", "name": "page_size", "in": "query"}
            ], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["transactions"], "summary": "Create a transaction", "parameters": [
                {"type": "string", "name": "date", "in": "formData"},
                {"type": "integer", "name": "category_id", "in": "formData", "required": true},
                {"type": "integer", "name": "account_id", "in": "formData", "required": true},
                {"type": "string", "name": "type", "in": "formData", "required": true},
                {"type": "string", "name": "amount", "in": "formData", "required": true},
                {"type": "string", "name": "description", "in": "formData"},
                {"type": "string", "name": "emotion", "in": "formData"}
            ], "responses": {"303": {"description": "See Other"}}}
        },
        "/transactions/{id}/update": {
            "post": {"tags": ["transactions"], "summary": "Update a transaction", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"303": {"description": "See Other"}, "404": {"description": "Not Found"}}}
        },
        "/transactions/{id}/delete": {
            "post": {"tags": ["transactions"], "summary": "Delete a transaction", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"303": {"description": "See Other"}, "404": {"description": "Not Found"}}}
        },
        "/savings-goals": {
            "post": {"tags": ["savings"], "summary": "Create a savings goal", "parameters": [
                {"type": "string", "name": "name", "in": "formData", "required": true},
                {"type": "string", "name": "target_amount", "in": "formData", "required": true},
                {"type": "string", "name": "start_date", "in": "formData"},
                {"type": "string", "name": "target_date", "in": "formData", "required": true}
            ], "responses": {"303": {"description": "See Other"}}}
        },
        "/savings-goals/{id}/delete": {
            "post": {"tags": ["savings"], "summary": "Delete a savings goal", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"303": {"description": "See Other"}, "404": {"description": "Not Found"}}}
        },
        "/api/health": {
            "get": {"tags": ["health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Butce API",
	Description:      "Butce is a personal budget tracker: accounts, categories with monthly limits, transactions, reports and savings goals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
