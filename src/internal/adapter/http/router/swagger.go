package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func registerSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	r.Get("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	r.Get("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>StableNet Ledger API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "StableNet Ledger API",
    "version": "1.0.0",
    "description": "Simulated stablecoin payments, liquidity forecasting and compliance analytics. All data is synthetic."
  },
  "paths": {
    "/v1/sessions": {
      "post": {
        "summary": "Start a session with freshly generated liquidity history",
        "responses": {
          "201": {"description": "Session started"},
          "500": {"description": "Server error"}
        }
      },
      "delete": {
        "summary": "End a session and discard its state",
        "parameters": [{"$ref": "#/components/parameters/SessionID"}],
        "responses": {
          "200": {"description": "Session ended"},
          "400": {"description": "Missing session header"},
          "404": {"description": "Session not found"}
        }
      }
    },
    "/v1/reference": {
      "get": {
        "summary": "List institutions, stablecoins, corridors and priorities",
        "responses": {
          "200": {"description": "Reference data"}
        }
      }
    },
    "/v1/rates": {
      "get": {
        "summary": "List FX rates between stablecoins",
        "responses": {
          "200": {"description": "Rates"}
        }
      }
    },
    "/v1/rate": {
      "get": {
        "summary": "Get the FX rate for a stablecoin pair",
        "parameters": [
          {"name": "fromCoin", "in": "query", "required": true, "schema": {"type": "string", "enum": ["USDC", "EURC"]}},
          {"name": "toCoin", "in": "query", "required": true, "schema": {"type": "string", "enum": ["USDC", "EURC"]}}
        ],
        "responses": {
          "200": {"description": "Rate, defaulted when the pair is not configured"},
          "400": {"description": "Validation error"}
        }
      }
    },
    "/v1/charges": {
      "get": {
        "summary": "Quote the StableNet fee for an amount",
        "parameters": [
          {"name": "amount", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "priority", "in": "query", "required": false, "schema": {"type": "string", "enum": ["Standard", "High Priority"]}}
        ],
        "responses": {
          "200": {"description": "Fee summary"},
          "400": {"description": "Validation error"}
        }
      }
    },
    "/v1/payments": {
      "post": {
        "summary": "Submit a simulated cross-border payment",
        "parameters": [{"$ref": "#/components/parameters/SessionID"}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["sendingInstitution", "receivingInstitution", "corridor", "amount", "sendingStablecoin"],
                "properties": {
                  "sendingInstitution": {"type": "string"},
                  "receivingInstitution": {"type": "string"},
                  "corridor": {"type": "string", "enum": ["USD-MXN", "EUR-NGN"]},
                  "amount": {"type": "string"},
                  "sendingStablecoin": {"type": "string", "enum": ["USDC", "EURC"]},
                  "receivingStablecoin": {"type": "string", "enum": ["USDC", "EURC"]},
                  "priority": {"type": "string", "enum": ["Standard", "High Priority"]}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Payment settled and recorded in the ledger"},
          "400": {"description": "Validation error"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/v1/ledger": {
      "get": {
        "summary": "View the session ledger with optional filters",
        "parameters": [
          {"$ref": "#/components/parameters/SessionID"},
          {"$ref": "#/components/parameters/Institution"},
          {"$ref": "#/components/parameters/Corridor"}
        ],
        "responses": {
          "200": {"description": "Ledger entries and fee totals"},
          "400": {"description": "Validation error"}
        }
      }
    },
    "/v1/ledger/export": {
      "get": {
        "summary": "Export the filtered ledger as CSV",
        "parameters": [
          {"$ref": "#/components/parameters/SessionID"},
          {"$ref": "#/components/parameters/Institution"},
          {"$ref": "#/components/parameters/Corridor"}
        ],
        "responses": {
          "200": {"description": "CSV file", "content": {"text/csv": {}}},
          "400": {"description": "Validation error"}
        }
      }
    },
    "/v1/liquidity": {
      "get": {
        "summary": "Get the liquidity history of one series",
        "parameters": [
          {"$ref": "#/components/parameters/SessionID"},
          {"name": "institution", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "stablecoin", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "corridor", "in": "query", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Series points"},
          "400": {"description": "Validation error"}
        }
      }
    },
    "/v1/liquidity/refresh": {
      "post": {
        "summary": "Append one simulated real-time point to a series",
        "parameters": [{"$ref": "#/components/parameters/SessionID"}],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SeriesRequest"}}}
        },
        "responses": {
          "200": {"description": "Point appended"},
          "400": {"description": "Validation error"},
          "404": {"description": "No historical data for the series"}
        }
      }
    },
    "/v1/liquidity/forecast": {
      "post": {
        "summary": "Forecast a series and recommend actions",
        "parameters": [{"$ref": "#/components/parameters/SessionID"}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "allOf": [
                  {"$ref": "#/components/schemas/SeriesRequest"},
                  {
                    "type": "object",
                    "properties": {
                      "horizon": {"type": "integer", "minimum": 3, "maximum": 14, "default": 7},
                      "stress": {"type": "boolean"},
                      "paths": {"type": "integer", "minimum": 1}
                    }
                  }
                ]
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Forecast paths, average and recommendations"},
          "400": {"description": "Validation error"},
          "404": {"description": "No historical data for the series"}
        }
      }
    },
    "/v1/compliance": {
      "get": {
        "summary": "Run a simulated compliance analysis for a corridor",
        "parameters": [
          {"$ref": "#/components/parameters/SessionID"},
          {"name": "corridor", "in": "query", "required": true, "schema": {"type": "string", "enum": ["USD-MXN", "EUR-NGN"]}},
          {"name": "analysisType", "in": "query", "required": true, "schema": {"type": "string", "enum": ["Transaction Volume", "Compliance Alerts", "Institution Activity"]}}
        ],
        "responses": {
          "200": {"description": "Analysis result"},
          "400": {"description": "Validation error"}
        }
      }
    }
  },
  "components": {
    "parameters": {
      "SessionID": {
        "name": "X-Session-Id",
        "in": "header",
        "required": false,
        "description": "Session to act on. A new session is started when omitted.",
        "schema": {"type": "string"}
      },
      "Institution": {
        "name": "institution",
        "in": "query",
        "required": false,
        "schema": {"type": "array", "items": {"type": "string"}},
        "style": "form",
        "explode": true
      },
      "Corridor": {
        "name": "corridor",
        "in": "query",
        "required": false,
        "schema": {"type": "array", "items": {"type": "string", "enum": ["USD-MXN", "EUR-NGN"]}},
        "style": "form",
        "explode": true
      }
    },
    "schemas": {
      "SeriesRequest": {
        "type": "object",
        "required": ["institution", "stablecoin", "corridor"],
        "properties": {
          "institution": {"type": "string"},
          "stablecoin": {"type": "string", "enum": ["USDC", "EURC"]},
          "corridor": {"type": "string", "enum": ["USD-MXN", "EUR-NGN"]}
        }
      }
    }
  }
}`
