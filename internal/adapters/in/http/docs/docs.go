// Package docs registers the order wizard API document with swag.
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
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Liveness probe",
                "operationId": "health",
                "responses": {
                    "200": {"description": "Healthy"}
                }
            }
        },
        "/api/regions": {
            "get": {
                "summary": "Region selector options",
                "operationId": "listRegions",
                "responses": {
                    "200": {
                        "description": "Placeholder followed by the five regions",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/RegionOption"}}
                    }
                }
            }
        },
        "/api/wizards": {
            "post": {
                "summary": "Start a wizard session",
                "operationId": "startWizard",
                "parameters": [{"$ref": "#/parameters/lang"}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Wizard"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/wizards/{id}": {
            "get": {
                "summary": "Read a wizard session",
                "operationId": "getWizard",
                "parameters": [{"$ref": "#/parameters/wizardId"}, {"$ref": "#/parameters/lang"}],
                "responses": {
                    "200": {"description": "Current state", "schema": {"$ref": "#/definitions/Wizard"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/wizards/{id}/fields/{field}": {
            "put": {
                "summary": "Replace one form value",
                "operationId": "setField",
                "parameters": [
                    {"$ref": "#/parameters/wizardId"},
                    {"name": "field", "in": "path", "required": true, "type": "string"},
                    {"$ref": "#/parameters/lang"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FieldValue"}}
                ],
                "responses": {
                    "200": {"description": "Updated state", "schema": {"$ref": "#/definitions/Wizard"}},
                    "400": {"description": "Malformed id, field or body", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/wizards/{id}/advance": {
            "post": {
                "summary": "Validate the active step and move forward",
                "operationId": "advanceStep",
                "parameters": [{"$ref": "#/parameters/wizardId"}, {"$ref": "#/parameters/lang"}],
                "responses": {
                    "200": {"description": "State after the attempt", "schema": {"$ref": "#/definitions/Wizard"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Active step is pickup; use submit", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/wizards/{id}/retreat": {
            "post": {
                "summary": "Move one step back",
                "operationId": "retreatStep",
                "parameters": [{"$ref": "#/parameters/wizardId"}, {"$ref": "#/parameters/lang"}],
                "responses": {
                    "200": {"description": "State after the move", "schema": {"$ref": "#/definitions/Wizard"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/wizards/{id}/submit": {
            "post": {
                "summary": "Submit the order from the pickup step",
                "operationId": "submitWizard",
                "parameters": [{"$ref": "#/parameters/wizardId"}, {"$ref": "#/parameters/lang"}],
                "responses": {
                    "200": {"description": "State after the attempt", "schema": {"$ref": "#/definitions/Wizard"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Active step is not pickup", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/wizards/{id}/export": {
            "get": {
                "produces": ["text/csv"],
                "summary": "Download the form as pedido.csv",
                "operationId": "exportWizard",
                "parameters": [{"$ref": "#/parameters/wizardId"}],
                "responses": {
                    "200": {"description": "CSV document", "schema": {"type": "string"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/create-order": {
            "post": {
                "summary": "Receive a submitted order",
                "operationId": "createOrder",
                "parameters": [
                    {"name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OrderForm"}}
                ],
                "responses": {
                    "201": {"description": "Stored", "schema": {"$ref": "#/definitions/CreatedOrder"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/orders": {
            "get": {
                "summary": "List received orders, newest first",
                "operationId": "listOrders",
                "responses": {
                    "200": {"description": "Orders", "schema": {"type": "array", "items": {"$ref": "#/definitions/ReceivedOrder"}}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/orders/{id}": {
            "get": {
                "summary": "Read one received order",
                "operationId": "getOrder",
                "parameters": [{"$ref": "#/parameters/orderId"}],
                "responses": {
                    "200": {"description": "Order", "schema": {"$ref": "#/definitions/ReceivedOrder"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Unknown order", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "parameters": {
        "wizardId": {"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"},
        "orderId": {"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"},
        "lang": {"name": "lang", "in": "query", "required": false, "type": "string"}
    },
    "definitions": {
        "Error": {
            "type": "object",
            "required": ["code", "message"],
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "RegionOption": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "FieldValue": {
            "type": "object",
            "required": ["value"],
            "properties": {
                "value": {"type": "string"}
            }
        },
        "OrderForm": {
            "type": "object",
            "additionalProperties": {"type": "string"}
        },
        "CreatedOrder": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"}
            }
        },
        "ReceivedOrder": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "receivedAt": {"type": "string", "format": "date-time"},
                "form": {"$ref": "#/definitions/OrderForm"}
            }
        },
        "Wizard": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "step": {"type": "integer"},
                "stepName": {"type": "string"},
                "progress": {"type": "integer"},
                "form": {"$ref": "#/definitions/OrderForm"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "showNotice": {"type": "boolean"},
                "notice": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Order wizard API",
	Description:      "Step wizard for collecting delivery orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
