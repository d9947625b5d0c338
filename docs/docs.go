// Package docs registra la especificación OpenAPI servida en /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registra un usuario (rol worker)",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/RegisterRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "usuario creado", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "input inválido o email repetido"}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Valida credenciales y emite un token JWT",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "token emitido", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "401": {"description": "credenciales inválidas"}
                }
            }
        },
        "/api/Dono/Donos": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["donos"],
                "summary": "Registra un dono",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/Dono"}
                    }
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/Success"}},
                    "400": {"description": "error"}
                }
            },
            "get": {
                "produces": ["application/json"],
                "tags": ["donos"],
                "summary": "Lista todos los donos",
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Dono"}}
                    }
                }
            }
        },
        "/api/Dono/Donos/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["donos"],
                "summary": "Actualiza campos de un dono (PATCH parcial)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Dono"}}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/Dono"}},
                    "404": {"description": "dono no encontrado"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["donos"],
                "summary": "Borra un dono y todos sus pets (cascada)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/Success"}},
                    "404": {"description": "dono no encontrado"}
                }
            }
        },
        "/api/Pet/Pets": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Registra un pet",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/Pet"}
                    }
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/Success"}},
                    "400": {"description": "dono_id faltante o inexistente"}
                }
            },
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Lista todos los pets",
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Pet"}}
                    }
                }
            }
        },
        "/api/Pet/Pets/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Actualiza campos de un pet (PATCH parcial)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Pet"}}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/Pet"}},
                    "404": {"description": "pet no encontrado"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Borra un pet",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/Success"}},
                    "404": {"description": "pet no encontrado"}
                }
            }
        },
        "/api/admin/users": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Crea un usuario con rol explícito (solo admin)",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/AdminCreateRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "usuario creado", "schema": {"$ref": "#/definitions/User"}},
                    "401": {"description": "sin token válido"},
                    "403": {"description": "token válido sin rol admin"}
                }
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Lista usuarios (solo admin)",
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}
                    },
                    "401": {"description": "sin token válido"},
                    "403": {"description": "token válido sin rol admin"}
                }
            }
        }
    },
    "definitions": {
        "Dono": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "cpf": {"type": "string"},
                "telefone": {"type": "string"}
            }
        },
        "Pet": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "tipo": {"type": "string"},
                "raca": {"type": "string"},
                "dono_id": {"type": "integer"}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "worker"]}
            }
        },
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "senha": {"type": "string", "minLength": 6}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "senha": {"type": "string"}
            }
        },
        "AdminCreateRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "senha": {"type": "string", "minLength": 6},
                "role": {"type": "string", "enum": ["admin", "worker"]}
            }
        },
        "TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "Success": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "petshop-api",
	Description:      "API REST del petshop: donos, pets, usuarios y auth.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
