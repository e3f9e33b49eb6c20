// Package swagger SmartProperty Service API.
//
// Климатические оценки точек, оценка стоимости объектов недвижимости,
// аналитика по объектам и прокси подложки карты.
//
// Спецификация регистрируется в swag и отдается fiber-swagger по /swagger/*.
package swagger

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
        "/api/v1/health": {
            "get": {"tags": ["System"], "summary": "Состояние сервиса", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/climate/scores": {
            "get": {
                "tags": ["Climate"],
                "summary": "Климатические оценки точки",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "number", "description": "Широта", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Долгота", "name": "lng", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/climate/scores/batch": {
            "post": {
                "tags": ["Climate"],
                "summary": "Климатические оценки для нескольких точек",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"description": "Точки", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/climate/risk-layers": {
            "get": {"tags": ["Climate"], "summary": "Легенды слоев риска", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}}
        },
        "/api/v1/layers/{indicator}": {
            "get": {
                "tags": ["Climate"],
                "summary": "Страница исходного слоя зон",
                "parameters": [
                    {"type": "string", "description": "lst, ndvi, utfvi, uhi", "name": "indicator", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 100, "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/price/predict": {
            "post": {
                "tags": ["Pricing"],
                "summary": "Оценка стоимости объекта",
                "consumes": ["application/json"],
                "parameters": [
                    {"description": "Параметры объекта", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/properties": {
            "get": {
                "tags": ["Properties"],
                "summary": "Список объектов",
                "parameters": [
                    {"type": "integer", "name": "min_price", "in": "query"},
                    {"type": "integer", "name": "max_price", "in": "query"},
                    {"type": "integer", "name": "min_score", "in": "query"},
                    {"type": "integer", "name": "bedrooms", "in": "query"},
                    {"type": "integer", "name": "bathrooms", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/properties/compare": {
            "get": {
                "tags": ["Properties"],
                "summary": "Сравнение объектов",
                "parameters": [{"type": "string", "description": "ID через запятую", "name": "ids", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/properties/recommend": {
            "get": {
                "tags": ["Properties"],
                "summary": "Рекомендации объектов",
                "parameters": [
                    {"type": "integer", "name": "min_price", "in": "query"},
                    {"type": "integer", "name": "max_price", "in": "query"},
                    {"type": "integer", "name": "bedrooms", "in": "query"},
                    {"type": "string", "default": "overall", "name": "priority", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/properties/{id}": {
            "get": {
                "tags": ["Properties"],
                "summary": "Объект по id",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/analytics/price-by-district": {
            "get": {"tags": ["Analytics"], "summary": "Средняя цена по районам", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}}
        },
        "/api/v1/analytics/climate-by-district": {
            "get": {"tags": ["Analytics"], "summary": "Средние климатические оценки по районам", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}}
        },
        "/api/v1/analytics/dashboard-summary": {
            "get": {"tags": ["Analytics"], "summary": "Сводка для аналитической панели", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}}
        },
        "/api/v1/map/style": {
            "get": {
                "tags": ["Map"],
                "summary": "Стиль подложки карты",
                "parameters": [{"type": "string", "default": "basic", "name": "style", "in": "query"}],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/map/resources/{path}": {
            "get": {
                "tags": ["Map"],
                "summary": "Ресурс подложки (тайлы, шрифты, спрайты)",
                "parameters": [{"type": "string", "name": "path", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/errors.AppError"}}
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "time_ms": {"type": "number"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "SmartProperty Service API",
	Description:      "Climate scores, property pricing and analytics for real-estate listings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
