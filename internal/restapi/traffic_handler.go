package restapi

import (
	"errors"
	"net/http"

	"carrierdash/internal/models"
	"carrierdash/internal/traffic"
	"carrierdash/internal/utils"
)

func (api *RestAPI) trafficHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")

	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	query, fieldErrors := utils.ParseTrafficQuery(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	dataset, ok := api.FindDataset(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	analysis, err := traffic.Analyze(dataset, query)
	if err != nil {
		if errors.Is(err, traffic.ErrMissingColumn) {
			api.validationErrorResponse(w, r, map[string][]string{
				"id": {err.Error()},
			})
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewTrafficModel(analysis, query)))
}
