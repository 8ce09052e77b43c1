package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the vitals gateway.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>vitalwatch-gateway Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// OpenAPI document describing the gateway surface.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "vitalwatch-gateway", "version": "v0.1.0" },
  "components": {
    "securitySchemes": { "bearerAuth": { "type": "http", "scheme": "bearer", "bearerFormat": "JWT" } },
    "schemas": {
      "VitalReading": {
        "type": "object",
        "properties": {
          "id": {"type":"string"},
          "userId": {"type":"string"},
          "heartRate": {"type":"number"},
          "spo2": {"type":"number"},
          "bloodPressure": {"type":"string"},
          "temperature": {"type":"number"},
          "timestamp": {"type":"integer","description":"epoch milliseconds"}
        }
      }
    }
  },
  "paths": {
    "/health": {
      "get": { "summary": "Liveness check (unauthenticated)", "responses": { "200": { "description": "ok" } } }
    },
    "/vitals": {
      "get": {
        "summary": "Latest 50 readings across all users, newest last",
        "security": [{"bearerAuth": []}],
        "responses": {
          "200": { "description": "readings", "content": { "application/json": { "schema": { "type":"array", "items": {"$ref":"#/components/schemas/VitalReading"} } } } },
          "401": { "description": "missing or invalid token" },
          "500": { "description": "backing store unavailable" }
        }
      }
    },
    "/vitals/{userId}": {
      "get": {
        "summary": "All readings for one user (callers may only read their own)",
        "security": [{"bearerAuth": []}],
        "parameters": [{ "name": "userId", "in": "path", "required": true, "schema": {"type":"string"} }],
        "responses": {
          "200": { "description": "readings", "content": { "application/json": { "schema": { "type":"array", "items": {"$ref":"#/components/schemas/VitalReading"} } } } },
          "401": { "description": "missing or invalid token" },
          "403": { "description": "principal does not match userId" },
          "500": { "description": "backing store unavailable" }
        }
      }
    },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics exposition" } } } }
  }
}`
