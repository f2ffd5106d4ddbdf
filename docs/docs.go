// Package docs holds the OpenAPI description served at /swagger.
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
        "/register": {
            "post": {
                "tags": ["Users"],
                "summary": "Create an account",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Users"],
                "summary": "Sign in",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "Sign out",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "Current account",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/boards": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Boards"],
                "summary": "List boards with their todos in display order",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SnapshotResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Boards"],
                "summary": "Add a board at the end of the list",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.CreateBoardRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.BoardResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/boards/reload": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Boards"],
                "summary": "Discard the in-memory order and reload from the database",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SnapshotResponse"}}}
            }
        },
        "/boards/{id}/select": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Boards"],
                "summary": "Choose the board new todos go to",
                "parameters": [{"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SnapshotResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/todos": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Todos"],
                "summary": "Append a todo to a board",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.CreateTodoRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.TodoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/todos/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Todos"],
                "summary": "Delete a todo",
                "parameters": [{"type": "string", "description": "Todo ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/todos/{id}/edit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Todos"],
                "summary": "Open the edit session on a todo",
                "parameters": [{"type": "string", "description": "Todo ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.EditResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/edit": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Todos"],
                "summary": "Show the open edit session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.EditResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Todos"],
                "summary": "Save the edited text and close the session",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.SaveEditRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TodoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Todos"],
                "summary": "Close the edit session without saving",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/drag": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Drag"],
                "summary": "Show the drag in progress",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DragResponse"}}}
            }
        },
        "/drag/start": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Drag"],
                "summary": "Begin dragging a board or todo",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.DragStartRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DragResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/drag/end": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Drag"],
                "summary": "Drop the dragged item and apply the resulting order",
                "parameters": [{"in": "body", "name": "request", "schema": {"$ref": "#/definitions/handler.DragEndRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DragEndResponse"}}}
            }
        }
    },
    "definitions": {
        "handler.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {"email": {"type": "string"}, "name": {"type": "string", "minLength": 2}, "password": {"type": "string", "minLength": 6}}
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}}
        },
        "handler.AuthResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.UserResponse"}}
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.CreateBoardRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "handler.CreateTodoRequest": {
            "type": "object",
            "properties": {"board_id": {"type": "string"}, "content": {"type": "string"}}
        },
        "handler.SaveEditRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "handler.TodoResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "board_id": {"type": "string"}, "content": {"type": "string"}, "position": {"type": "integer"}}
        },
        "handler.BoardResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "position": {"type": "integer"},
                "selected": {"type": "boolean"},
                "todos": {"type": "array", "items": {"$ref": "#/definitions/handler.TodoResponse"}}
            }
        },
        "handler.EditResponse": {
            "type": "object",
            "properties": {"todo_id": {"type": "string"}, "text": {"type": "string"}}
        },
        "handler.SnapshotResponse": {
            "type": "object",
            "properties": {
                "boards": {"type": "array", "items": {"$ref": "#/definitions/handler.BoardResponse"}},
                "selected_board_id": {"type": "string"},
                "editing": {"$ref": "#/definitions/handler.EditResponse"}
            }
        },
        "handler.DragStartRequest": {
            "type": "object",
            "required": ["id"],
            "properties": {"id": {"type": "string"}, "kind": {"type": "string", "enum": ["board", "todo"]}}
        },
        "handler.DragEndRequest": {
            "type": "object",
            "properties": {"target_id": {"type": "string"}, "target_kind": {"type": "string", "enum": ["board", "todo"]}}
        },
        "handler.DragResponse": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean"},
                "kind": {"type": "string"},
                "id": {"type": "string"},
                "board": {"$ref": "#/definitions/handler.BoardResponse"},
                "todos": {"type": "array", "items": {"$ref": "#/definitions/handler.TodoResponse"}},
                "todo": {"$ref": "#/definitions/handler.TodoResponse"}
            }
        },
        "handler.DragEndResponse": {
            "type": "object",
            "properties": {
                "intent": {"type": "string", "enum": ["none", "reorder_boards", "reorder_todos", "move_todo_across_boards"]},
                "boards": {"type": "array", "items": {"$ref": "#/definitions/handler.BoardResponse"}},
                "selected_board_id": {"type": "string"},
                "editing": {"$ref": "#/definitions/handler.EditResponse"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Taskboard API",
	Description:      "Boards of todos, reordered by drag and drop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
