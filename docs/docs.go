// Package docs registra la especificación OpenAPI de la API en swag.
// Regenerar con: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}",
        "contact": {}
    },
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Estado del servicio",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Iniciar sesión",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TokenResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Usuario autenticado",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Cerrar sesión",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "401": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/inventory/receive": {
            "post": {
                "tags": [
                    "inventory"
                ],
                "summary": "Registrar recepción de proveedor",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReceivePartsRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReceivePartsResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/inventory/transfer": {
            "post": {
                "tags": [
                    "inventory"
                ],
                "summary": "Trasladar repuestos entre ubicaciones",
                "produces": [
                    "application/json"
                ],
                "description": "Todo o nada: si un ítem no tiene stock suficiente en origen no persiste ningún cambio.",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.TransferRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TransferCreatedResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/inventory/issue": {
            "post": {
                "tags": [
                    "inventory"
                ],
                "summary": "Registrar consumo de repuestos",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.IssuePartsRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.IssuePartsResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/inventory/balances/{location_id}": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "Saldos de una ubicación",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "path",
                        "name": "location_id",
                        "required": true,
                        "description": "ID de la ubicación"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.LocationBalanceResponse"
                            }
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/inventory/balances/{location_id}/export": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "Exportar saldos de una ubicación (xlsx)",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "path",
                        "name": "location_id",
                        "required": true,
                        "description": "ID de la ubicación"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/inventory/parts/{part_id}/balance/{location_id}": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "Saldo de un repuesto en una ubicación",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "path",
                        "name": "part_id",
                        "required": true,
                        "description": "ID del repuesto"
                    },
                    {
                        "type": "integer",
                        "in": "path",
                        "name": "location_id",
                        "required": true,
                        "description": "ID de la ubicación"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BalanceResponse"
                        }
                    }
                }
            }
        },
        "/api/inventory/parts/{id}/details": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "Detalle de un repuesto",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "ID del repuesto"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PartDetailsResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/inventory/transfers": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "Historial de traslados",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "limit",
                        "required": false,
                        "description": "Límite"
                    },
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "offset",
                        "required": false,
                        "description": "Offset"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.TransferResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/inventory/transfers/{id}": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "Obtener traslado por ID",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "ID del traslado"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TransferResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/inventory/transfers/{id}/slip": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "Comprobante de traslado (PDF)",
                "produces": [
                    "application/pdf"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "ID del traslado"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/inventory/receipts": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "Historial de recepciones",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "limit",
                        "required": false,
                        "description": "Límite"
                    },
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "offset",
                        "required": false,
                        "description": "Offset"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.ReceiptResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/inventory/filters": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "Valores para filtros de inventario",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InventoryFiltersResponse"
                        }
                    }
                }
            }
        },
        "/api/inventory/low-stock": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "Repuestos bajo mínimo",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "location_id",
                        "required": false,
                        "description": "Filtrar por ubicación. 0 = todas."
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/parts": {
            "get": {
                "tags": [
                    "parts"
                ],
                "summary": "Listar repuestos",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "query",
                        "name": "category",
                        "required": false,
                        "description": "Categoría"
                    },
                    {
                        "type": "string",
                        "in": "query",
                        "name": "criticality",
                        "required": false,
                        "description": "Criticidad"
                    },
                    {
                        "type": "string",
                        "in": "query",
                        "name": "search",
                        "required": false,
                        "description": "Código o nombre"
                    },
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "limit",
                        "required": false,
                        "description": "Límite"
                    },
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "offset",
                        "required": false,
                        "description": "Offset"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PartListResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "parts"
                ],
                "summary": "Crear repuesto",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreatePartRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PartResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/parts/{id}": {
            "get": {
                "tags": [
                    "parts"
                ],
                "summary": "Obtener repuesto por ID",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "ID del repuesto"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PartResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "parts"
                ],
                "summary": "Actualizar repuesto (parcial)",
                "description": "Solo se modifican los campos presentes en el cuerpo. part_code no se puede cambiar.",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdatePartRequest"
                        }
                    },
                    {
                        "type": "integer",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "ID del repuesto"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PartResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/locations": {
            "get": {
                "tags": [
                    "locations"
                ],
                "summary": "Listar ubicaciones",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "limit",
                        "required": false,
                        "description": "Límite"
                    },
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "offset",
                        "required": false,
                        "description": "Offset"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LocationListResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "locations"
                ],
                "summary": "Crear ubicación",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateLocationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LocationResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/locations/{id}": {
            "get": {
                "tags": [
                    "locations"
                ],
                "summary": "Obtener ubicación por ID",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "ID de la ubicación"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LocationResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "locations"
                ],
                "summary": "Actualizar ubicación (parcial)",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateLocationRequest"
                        }
                    },
                    {
                        "type": "integer",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "ID de la ubicación"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LocationResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "dto.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                },
                "expires_in": {
                    "type": "integer"
                }
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "is_superuser": {
                    "type": "boolean"
                }
            }
        },
        "dto.ReceivePartsRequest": {
            "type": "object",
            "properties": {
                "spare_part_id": {
                    "type": "integer"
                },
                "location_id": {
                    "type": "integer"
                },
                "quantity": {
                    "type": "integer"
                },
                "received_by": {
                    "type": "integer"
                },
                "received_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "supplier": {
                    "type": "string"
                },
                "reference_number": {
                    "type": "string"
                },
                "unit_cost": {
                    "type": "string",
                    "example": "12.50"
                }
            }
        },
        "dto.ReceivePartsResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "inflow_id": {
                    "type": "integer"
                }
            }
        },
        "dto.TransferItemRequest": {
            "type": "object",
            "properties": {
                "spare_part_id": {
                    "type": "integer"
                },
                "quantity": {
                    "type": "integer"
                },
                "unit_cost": {
                    "type": "string",
                    "example": "12.50"
                }
            }
        },
        "dto.TransferRequest": {
            "type": "object",
            "properties": {
                "from_location_id": {
                    "type": "integer"
                },
                "to_location_id": {
                    "type": "integer"
                },
                "transferred_by": {
                    "type": "integer"
                },
                "transfer_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "notes": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TransferItemRequest"
                    }
                }
            }
        },
        "dto.TransferCreatedResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "transfer_id": {
                    "type": "integer"
                }
            }
        },
        "dto.IssuePartsRequest": {
            "type": "object",
            "properties": {
                "spare_part_id": {
                    "type": "integer"
                },
                "location_id": {
                    "type": "integer"
                },
                "quantity": {
                    "type": "integer"
                },
                "issued_by": {
                    "type": "integer"
                },
                "reference": {
                    "type": "string"
                }
            }
        },
        "dto.IssuePartsResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "issue_id": {
                    "type": "integer"
                },
                "in_stock": {
                    "type": "integer"
                }
            }
        },
        "dto.LocationBalanceResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "part_code": {
                    "type": "string"
                },
                "part_name": {
                    "type": "string"
                },
                "in_stock": {
                    "type": "integer"
                },
                "total_received": {
                    "type": "integer"
                },
                "total_consumption": {
                    "type": "integer"
                }
            }
        },
        "dto.BalanceResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "spare_part_id": {
                    "type": "integer"
                },
                "location_id": {
                    "type": "integer"
                },
                "in_stock": {
                    "type": "integer"
                },
                "total_received": {
                    "type": "integer"
                },
                "total_consumption": {
                    "type": "integer"
                }
            }
        },
        "dto.PartBalanceResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "spare_part_id": {
                    "type": "integer"
                },
                "location_id": {
                    "type": "integer"
                },
                "location_name": {
                    "type": "string"
                },
                "in_stock": {
                    "type": "integer"
                },
                "total_received": {
                    "type": "integer"
                },
                "total_consumption": {
                    "type": "integer"
                }
            }
        },
        "dto.InflowDetailResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "quantity": {
                    "type": "integer"
                },
                "location_name": {
                    "type": "string"
                },
                "received_by": {
                    "type": "string"
                },
                "received_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "supplier": {
                    "type": "string"
                },
                "reference_number": {
                    "type": "string"
                },
                "unit_cost": {
                    "type": "string",
                    "example": "12.50"
                },
                "total_cost": {
                    "type": "string",
                    "example": "12.50"
                }
            }
        },
        "dto.PartDetailsResponse": {
            "type": "object",
            "properties": {
                "inventory_item": {
                    "$ref": "#/definitions/dto.PartResponse"
                },
                "balances": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.PartBalanceResponse"
                    }
                },
                "inflows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.InflowDetailResponse"
                    }
                }
            }
        },
        "dto.TransferLineResponse": {
            "type": "object",
            "properties": {
                "spare_part_id": {
                    "type": "integer"
                },
                "part_code": {
                    "type": "string"
                },
                "part_name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "unit_cost": {
                    "type": "string",
                    "example": "12.50"
                }
            }
        },
        "dto.TransferResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "transfer_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "from_location_id": {
                    "type": "integer"
                },
                "from_location_name": {
                    "type": "string"
                },
                "to_location_id": {
                    "type": "integer"
                },
                "to_location_name": {
                    "type": "string"
                },
                "transferred_by": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TransferLineResponse"
                    }
                }
            }
        },
        "dto.ReceiptLineResponse": {
            "type": "object",
            "properties": {
                "part_code": {
                    "type": "string"
                },
                "part_name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "unit_cost": {
                    "type": "string",
                    "example": "12.50"
                }
            }
        },
        "dto.ReceiptResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "received_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "received_from": {
                    "type": "string"
                },
                "received_to_name": {
                    "type": "string"
                },
                "received_by": {
                    "type": "string"
                },
                "supplier": {
                    "type": "string"
                },
                "reference_number": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ReceiptLineResponse"
                    }
                }
            }
        },
        "dto.LocationOption": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "dto.InventoryFiltersResponse": {
            "type": "object",
            "properties": {
                "locations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LocationOption"
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "criticalities": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.LowStockSuggestionDTO": {
            "type": "object",
            "properties": {
                "spare_part_id": {
                    "type": "integer"
                },
                "part_code": {
                    "type": "string"
                },
                "part_name": {
                    "type": "string"
                },
                "location_id": {
                    "type": "integer"
                },
                "location_name": {
                    "type": "string"
                },
                "criticality": {
                    "type": "string"
                },
                "in_stock": {
                    "type": "integer"
                },
                "minimum_quantity": {
                    "type": "integer"
                },
                "suggested_qty": {
                    "type": "integer"
                },
                "unit_price": {
                    "type": "string",
                    "example": "12.50"
                },
                "estimated_cost": {
                    "type": "string",
                    "example": "12.50"
                },
                "priority": {
                    "type": "integer"
                }
            }
        },
        "dto.CreatePartRequest": {
            "type": "object",
            "properties": {
                "part_code": {
                    "type": "string"
                },
                "part_name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "unit_of_issue": {
                    "type": "string"
                },
                "unit_price": {
                    "type": "string",
                    "example": "12.50"
                },
                "minimum_quantity": {
                    "type": "integer"
                },
                "category": {
                    "type": "string"
                },
                "criticality": {
                    "type": "string"
                }
            }
        },
        "dto.UpdatePartRequest": {
            "type": "object",
            "properties": {
                "part_code": {
                    "type": "string"
                },
                "part_name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "unit_of_issue": {
                    "type": "string"
                },
                "unit_price": {
                    "type": "string",
                    "example": "12.50"
                },
                "minimum_quantity": {
                    "type": "integer"
                },
                "category": {
                    "type": "string"
                },
                "criticality": {
                    "type": "string"
                }
            }
        },
        "dto.PartResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "part_code": {
                    "type": "string"
                },
                "part_name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "unit_of_issue": {
                    "type": "string"
                },
                "unit_price": {
                    "type": "string",
                    "example": "12.50"
                },
                "minimum_quantity": {
                    "type": "integer"
                },
                "category": {
                    "type": "string"
                },
                "criticality": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.PageResponse": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.PartListResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.PartResponse"
                    }
                },
                "page": {
                    "$ref": "#/definitions/dto.PageResponse"
                }
            }
        },
        "dto.CreateLocationRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateLocationRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                }
            }
        },
        "dto.LocationResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.LocationListResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LocationResponse"
                    }
                },
                "page": {
                    "$ref": "#/definitions/dto.PageResponse"
                }
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo contiene la información exportada de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CMMS Inventario API",
	Description:      "Inventario de repuestos de mantenimiento: recepciones, traslados entre ubicaciones, consumos y saldos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
