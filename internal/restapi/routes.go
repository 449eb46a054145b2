package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the JSON API on router
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/api/datasets.json", api.datasetsHandler)
	router.HandlerFunc(http.MethodGet, "/api/summaries.json", api.summariesHandler)
	router.HandlerFunc(http.MethodGet, "/api/summaries.xlsx", api.summariesWorkbookHandler)
	router.HandlerFunc(http.MethodGet, "/api/summary/:id", api.summaryHandler)
	router.HandlerFunc(http.MethodGet, "/api/traffic/:id", api.trafficHandler)
	router.HandlerFunc(http.MethodGet, "/api/warnings.json", api.warningsHandler)
	router.HandlerFunc(http.MethodGet, "/api/status.json", api.statusHandler)

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
}
