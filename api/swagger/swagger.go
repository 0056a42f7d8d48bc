package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Class Scheduler API",
        "description": "Scheduling backend managing teachers, classrooms and class bookings",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Teachers", "description": "Teacher roster management"},
        {"name": "Classrooms", "description": "Classroom inventory"},
        {"name": "Schedules", "description": "Class bookings and conflict detection"}
    ],
    "paths": {
        "/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}
                }
            },
            "post": {
                "tags": ["Teachers"],
                "summary": "Create teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTeacherRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Teacher"}},
                    "400": {"description": "Validation failed"},
                    "409": {"description": "Email already registered"}
                }
            },
            "delete": {
                "tags": ["Teachers"],
                "summary": "Delete teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteTeacherRequest"}}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/teachers/{id}": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Get teacher by id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/classrooms": {
            "get": {
                "tags": ["Classrooms"],
                "summary": "List classrooms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}
                }
            },
            "post": {
                "tags": ["Classrooms"],
                "summary": "Create classroom",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassroomRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Classroom"}},
                    "400": {"description": "Validation failed (including duplicate classroom number)"}
                }
            },
            "patch": {
                "tags": ["Classrooms"],
                "summary": "Partially update classroom",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateClassroomRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Classroom"}},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Classrooms"],
                "summary": "Delete classroom",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteClassroomRequest"}}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/classrooms/{id}": {
            "get": {
                "tags": ["Classrooms"],
                "summary": "Get classroom by id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Classroom"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/schedules": {
            "get": {
                "tags": ["Schedules"],
                "summary": "List schedules",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}
                }
            },
            "post": {
                "tags": ["Schedules"],
                "summary": "Create schedule",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Schedule"}},
                    "400": {"description": "Validation failed"},
                    "404": {"description": "Teacher or classroom not found"},
                    "409": {"description": "Schedule conflict"},
                    "422": {"description": "Business rule violation"}
                }
            }
        },
        "/schedules/export": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Export schedules as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported format"}
                }
            }
        }
    },
    "definitions": {
        "Teacher": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "subjects": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "Classroom": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "classroom_number": {"type": "integer"},
                "capacity": {"type": "integer"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "Schedule": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "teacher_id": {"type": "string"},
                "classroom_id": {"type": "string"},
                "scheduled_date": {"type": "string", "format": "date-time"},
                "day_of_week": {"type": "string"},
                "period": {"type": "string"},
                "subject": {"type": "string"},
                "description": {"type": "string"},
                "max_students": {"type": "integer"},
                "status": {"type": "string"},
                "is_recurring": {"type": "boolean"},
                "recurrence_end_date": {"type": "string", "format": "date-time"},
                "teacher": {"$ref": "#/definitions/Teacher"},
                "classroom": {"$ref": "#/definitions/Classroom"}
            }
        },
        "CreateTeacherRequest": {
            "type": "object",
            "required": ["name", "email", "subjects"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "subjects": {"type": "array", "items": {"type": "string"}}
            }
        },
        "DeleteTeacherRequest": {
            "type": "object",
            "required": ["teacherId"],
            "properties": {
                "teacherId": {"type": "string"}
            }
        },
        "CreateClassroomRequest": {
            "type": "object",
            "required": ["classroomNumber", "capacity"],
            "properties": {
                "classroomNumber": {"type": "integer"},
                "capacity": {"type": "integer"}
            }
        },
        "UpdateClassroomRequest": {
            "type": "object",
            "required": ["classroomId"],
            "properties": {
                "classroomId": {"type": "string"},
                "classroomNumber": {"type": "integer"},
                "capacity": {"type": "integer"}
            }
        },
        "DeleteClassroomRequest": {
            "type": "object",
            "required": ["classroomId"],
            "properties": {
                "classroomId": {"type": "string"}
            }
        },
        "CreateScheduleRequest": {
            "type": "object",
            "required": ["teacherId", "classroomId", "scheduledDate", "period", "subject"],
            "properties": {
                "teacherId": {"type": "string"},
                "classroomId": {"type": "string"},
                "scheduledDate": {"type": "string", "format": "date-time"},
                "period": {"type": "string"},
                "subject": {"type": "string"},
                "description": {"type": "string"},
                "maxStudents": {"type": "integer"},
                "isRecurring": {"type": "boolean"},
                "recurrenceEndDate": {"type": "string", "format": "date-time"}
            }
        },
        "ListEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "array", "items": {"type": "object"}},
                "count": {"type": "integer"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
