// Package swagger holds the OpenAPI document served at /docs.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Test Center Admin API",
        "description": "Administration API for a language-test training center: class batches, test slots, speaking batches, registrations, attendance and results.",
        "version": "1.0.0",
        "contact": {}
    },
    "basePath": "/api/v1",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and a JWT."
        }
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate a user and issue a JWT",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {
                    "200": {"description": "Token and user profile", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current authenticated user",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/teachers": {
            "get": {"tags": ["Catalog"], "summary": "List teachers", "security": [{"BearerAuth": []}], "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Catalog"], "summary": "Create a teacher", "security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/teachers/{id}": {
            "put": {"tags": ["Catalog"], "summary": "Update a teacher", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Catalog"], "summary": "Delete a teacher", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/courses": {
            "get": {"tags": ["Catalog"], "summary": "List courses", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Catalog"], "summary": "Create a course", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/courses/{id}": {
            "put": {"tags": ["Catalog"], "summary": "Update a course", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Catalog"], "summary": "Delete a course", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/timeframes": {
            "get": {"tags": ["Catalog"], "summary": "List timeframes", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Catalog"], "summary": "Create a timeframe", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/timeframes/{id}": {
            "delete": {"tags": ["Catalog"], "summary": "Delete a timeframe", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/rooms": {
            "get": {"tags": ["Catalog"], "summary": "List rooms", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Catalog"], "summary": "Create a room", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/rooms/{id}": {
            "delete": {"tags": ["Catalog"], "summary": "Delete a room", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/batches": {
            "get": {"tags": ["Batches"], "summary": "List class batches", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Batches"], "summary": "Create a class batch", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "409": {"description": "Room or teacher conflict", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/batches/{id}": {
            "get": {"tags": ["Batches"], "summary": "Get a class batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Batches"], "summary": "Update a class batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "409": {"description": "Room or teacher conflict", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Batches"], "summary": "Delete a class batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/batches/check-conflicts": {
            "post": {"tags": ["Batches"], "summary": "Dry-run conflict check for a proposed schedule", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "Conflict report", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/batches/{id}/attendance": {
            "get": {"tags": ["Attendance"], "summary": "Attendance sheet for a batch and date", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "date", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/attendance": {
            "post": {"tags": ["Attendance"], "summary": "Mark a student present or absent", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/test-slots": {
            "get": {"tags": ["TestSlots"], "summary": "List test slots", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/test-slots/{id}": {
            "get": {"tags": ["TestSlots"], "summary": "Get a test slot", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["TestSlots"], "summary": "Update a test slot", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "409": {"description": "Seats below registered count", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["TestSlots"], "summary": "Delete a test slot", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/test-slots/overview": {
            "get": {"tags": ["TestSlots"], "summary": "Test slots grouped into mock tests, speaking batches and partial slots", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/test-slots/partial": {
            "post": {"tags": ["TestSlots"], "summary": "Create a partial (single-module) test slot", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/test-slots/speaking-batches": {
            "post": {"tags": ["TestSlots"], "summary": "Create a full-day speaking batch of 20-minute slots", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/test-slots/mock": {
            "post": {"tags": ["TestSlots"], "summary": "Create a mock test linked to a reserved speaking batch", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/test-slots/speaking-times": {
            "get": {"tags": ["TestSlots"], "summary": "Selectable start times for partial speaking slots", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/speaking-batches": {
            "get": {"tags": ["Speaking"], "summary": "List speaking batches grouped by day", "security": [{"BearerAuth": []}], "parameters": [{"name": "purpose", "in": "query", "required": false, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/speaking-batches/{id}": {
            "delete": {"tags": ["Speaking"], "summary": "Delete every slot of a speaking batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "Removed slot count", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/speaking-batches/{id}/slots": {
            "get": {"tags": ["Speaking"], "summary": "Available slots of a speaking batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/speaking-slots": {
            "get": {"tags": ["Speaking"], "summary": "List every open speaking slot across all batches", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/speaking-batches/{id}/purpose": {
            "put": {"tags": ["Speaking"], "summary": "Reserve a speaking batch for mock tests or release it", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/registrations": {
            "get": {"tags": ["Registrations"], "summary": "Registration ledger with resolved slot details", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Registrations"], "summary": "Register a student into a test slot", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "409": {"description": "Slot full or duplicate registration", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/registrations/{id}": {
            "delete": {"tags": ["Registrations"], "summary": "Cancel a registration and release the seat", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/results": {
            "get": {"tags": ["Results"], "summary": "List performance records", "security": [{"BearerAuth": []}], "parameters": [{"name": "student_id", "in": "query", "required": false, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Results"], "summary": "Record a test score for a student", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/results/{id}": {
            "delete": {"tags": ["Results"], "summary": "Delete a performance record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/students": {
            "get": {"tags": ["Students"], "summary": "List students", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/students/{id}": {
            "get": {"tags": ["Students"], "summary": "Student detail with registrations and scores", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Students"], "summary": "Update student profile", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/dashboard/schedule": {
            "get": {"tags": ["Dashboard"], "summary": "Batches scheduled on a weekday", "security": [{"BearerAuth": []}], "parameters": [{"name": "day", "in": "query", "required": false, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/exports/registrations.csv": {
            "get": {"tags": ["Exports"], "summary": "Download the registration ledger as CSV", "security": [{"BearerAuth": []}], "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/exports/schedule.pdf": {
            "get": {"tags": ["Exports"], "summary": "Download a weekday schedule as PDF", "security": [{"BearerAuth": []}], "produces": ["application/pdf"], "parameters": [{"name": "day", "in": "query", "required": false, "type": "string"}], "responses": {"200": {"description": "PDF file"}}}
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password", "role"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "teacher", "student"]}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
