package restapi

import (
	"bytes"
	"net/http"
	"strconv"

	"carrierdash/internal/logging"
	"carrierdash/internal/models"
	"carrierdash/internal/report"
	"carrierdash/internal/utils"
)

func (api *RestAPI) summariesHandler(w http.ResponseWriter, r *http.Request) {
	summaries := api.Manager.GetSummaries()

	list := make([]models.SummaryModel, 0, len(summaries))
	for _, name := range report.SortedNames(summaries) {
		list = append(list, models.NewSummaryModel(summaries[name]))
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")

	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	summary, ok := api.Manager.FindSummary(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewSummaryModel(summary)))
}

func (api *RestAPI) summariesWorkbookHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	logger := logging.FromContext(r.Context())
	if err := report.WriteWorkbook(&buf, api.Manager.GetSummaries(), logger); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", report.WorkbookContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="summaries.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("failed to send summary workbook", "error", err)
	}
}
