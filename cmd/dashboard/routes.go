package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"carrierdash/internal/app"
	"carrierdash/internal/restapi"
	"carrierdash/internal/webui"
)

// routes builds the dashboard handler. The returned RestAPI must be closed
// once the server stops.
func routes(application *app.Application) (http.Handler, *restapi.RestAPI) {
	router := httprouter.New()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)
	webui.New(application).SetWebUIRoutes(router)

	return api.WithMiddleware(router), api
}
