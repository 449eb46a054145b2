package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"carrierdash/internal/models"
)

type debugData struct {
	Title string
	Pre   string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, r *http.Request, title string, data interface{}) {
	webUI.render(w, r, http.StatusOK, "debug_index.html", debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	manager := webUI.Manager

	switch dataType {
	case "datasets":
		records := make(map[string][][]string)
		collection := manager.GetDatasets()
		for _, name := range collection.Names() {
			d, _ := collection.Get(name)
			records[name] = d.Frame.Records()
		}
		data = records
		title = "Carrier Data - Datasets"
	case "summaries":
		data = manager.GetSummaries()
		title = "Carrier Data - Summaries"
	case "warnings":
		data = manager.GetWarnings()
		title = "Carrier Data - Warnings"
	case "status":
		data = models.NewStatusModel(manager)
		title = "Carrier Data - Status"
	default:
		data = map[string]string{
			"error": "Please use one of the following: datasets, summaries, warnings, status.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, r, title, data)
}
