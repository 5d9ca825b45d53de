package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Curricula API",
        "description": "Study plan availability, elective progress and curriculum creation",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Plans", "description": "Resolved study plans"},
        {"name": "Electives", "description": "Elective rule progress"},
        {"name": "Curricula", "description": "Curriculum creation"},
        {"name": "Drafts", "description": "Draft curriculum sessions"},
        {"name": "Exports", "description": "CSV / PDF exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/programs/{id}/plan": {
            "get": {
                "tags": ["Plans"],
                "summary": "Get a program's resolved study plan",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/plan/resolve": {
            "post": {
                "tags": ["Plans"],
                "summary": "Resolve availability for a client-side subject snapshot",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResolveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/programs/{id}/electives/progress": {
            "get": {
                "tags": ["Electives"],
                "summary": "Score a program's elective rules",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "includeFinalPending", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/curricula": {
            "post": {
                "tags": ["Curricula"],
                "summary": "Create a program and its subjects as a unit",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCurriculumRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Dangling reference", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Creation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/drafts": {
            "post": {
                "tags": ["Drafts"],
                "summary": "Open a new draft curriculum session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveDraftRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/drafts/{id}": {
            "get": {
                "tags": ["Drafts"],
                "summary": "Load a draft curriculum session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Drafts"],
                "summary": "Replace a draft curriculum session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveDraftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Drafts"],
                "summary": "Discard a draft curriculum session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/programs/{id}/plan/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export a program's resolved study plan",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/programs/{id}/electives/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export a program's elective progress",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "includeFinalPending", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "Subject": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "subjectYear": {"type": "integer"},
                "term": {"type": "string"},
                "is_elective": {"type": "boolean"},
                "hours": {"type": "integer"},
                "credits": {"type": "integer"},
                "status": {"type": "string", "enum": ["not_available", "available", "in_progress", "final_pending", "passed", "passed_with_distinction"]},
                "requirements": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Requirement"}
                }
            }
        },
        "Requirement": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "minStatus": {"type": "string", "enum": ["passed", "final_pending"]}
            }
        },
        "ResolveRequest": {
            "type": "object",
            "properties": {
                "subjects": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Subject"}
                }
            },
            "required": ["subjects"]
        },
        "CreateCurriculumRequest": {
            "type": "object",
            "properties": {
                "programName": {"type": "string"},
                "universityId": {"type": "string"},
                "subjects": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DraftSubject"}
                },
                "electivePools": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DraftElectivePool"}
                },
                "electiveRules": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DraftElectiveRule"}
                }
            },
            "required": ["programName", "universityId", "subjects"]
        },
        "DraftSubject": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "year": {"type": "integer"},
                "term": {"type": "string", "enum": ["annual", "semester", "quarterly", "bimonthly"]},
                "isElective": {"type": "boolean"},
                "prerequisites": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DraftPrerequisite"}
                }
            },
            "required": ["id", "name"]
        },
        "DraftPrerequisite": {
            "type": "object",
            "properties": {
                "subjectId": {"type": "string"},
                "minStatus": {"type": "string", "enum": ["passed", "final_pending"]}
            },
            "required": ["subjectId"]
        },
        "DraftElectivePool": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "subjectIds": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            },
            "required": ["id", "name"]
        },
        "DraftElectiveRule": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "poolId": {"type": "string"},
                "appliesFromYear": {"type": "integer"},
                "appliesToYear": {"type": "integer"},
                "requirementType": {"type": "string", "enum": ["hours", "credits", "subject_count"]},
                "minimumValue": {"type": "number"}
            },
            "required": ["id", "poolId", "requirementType"]
        },
        "SaveDraftRequest": {
            "type": "object",
            "properties": {
                "programName": {"type": "string"},
                "universityId": {"type": "string"},
                "subjects": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DraftSubject"}
                },
                "electivePools": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DraftElectivePool"}
                },
                "electiveRules": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DraftElectiveRule"}
                }
            },
            "required": ["programName"]
        },
        "ElectiveProgress": {
            "type": "object",
            "properties": {
                "rule_id": {"type": "string"},
                "pool_id": {"type": "string"},
                "pool_name": {"type": "string"},
                "requirement_type": {"type": "string"},
                "achieved": {"type": "number"},
                "target": {"type": "number"},
                "percent": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"type": "object"},
                "meta": {"type": "object"}
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
