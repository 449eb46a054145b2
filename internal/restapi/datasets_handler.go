package restapi

import (
	"net/http"

	"carrierdash/internal/models"
)

func (api *RestAPI) datasetsHandler(w http.ResponseWriter, r *http.Request) {
	collection := api.Manager.GetDatasets()
	defaultName := api.Manager.DefaultDatasetName()

	datasets := make([]models.DatasetModel, 0, collection.Len())
	for _, name := range collection.Names() {
		d, _ := collection.Get(name)
		datasets = append(datasets, models.NewDatasetModel(d, name == defaultName))
	}

	api.sendResponse(w, r, models.NewListResponse(datasets))
}

func (api *RestAPI) warningsHandler(w http.ResponseWriter, r *http.Request) {
	warnings := api.Manager.GetWarnings()

	list := make([]models.WarningModel, 0, len(warnings))
	for _, warning := range warnings {
		list = append(list, models.NewWarningModel(warning))
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}

func (api *RestAPI) statusHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(models.NewStatusModel(api.Manager)))
}
