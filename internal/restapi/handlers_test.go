package restapi

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"carrierdash/internal/report"
)

func TestDatasetsHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/datasets.json")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 200, model.Code)
	assert.Equal(t, "OK", model.Text)

	list := listOf(t, model)
	require.Len(t, list, 4)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "AllCarriers.csv", first["name"])
	assert.Equal(t, "All Carriers", first["label"])
	assert.Equal(t, 72.0, first["rows"])
	assert.Equal(t, true, first["default"])
	assert.Len(t, first["years"], 6)

	second, ok := list[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "AmericanAirlines.csv", second["name"])
	assert.Equal(t, false, second["default"])
}

func TestSummariesHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/summaries.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listOf(t, model)
	require.Len(t, list, 4)

	summary, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "AllCarriers.csv", summary["dataset"])
	assert.Equal(t, 72.0, summary["rows"])
	assert.Len(t, summary["statistics"], 8)
}

func TestSummaryHandler(t *testing.T) {
	t.Run("known dataset", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/summary/AllCarriers.csv.json")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		entry := entryOf(t, model)
		assert.Equal(t, "AllCarriers.csv", entry["dataset"])

		columns, ok := entry["columns"].([]interface{})
		require.True(t, ok)
		var names []string
		for _, c := range columns {
			names = append(names, c.(map[string]interface{})["column"].(string))
		}
		assert.Equal(t, []string{"YEAR", "DOMESTIC", "INTERNATIONAL", "TOTAL"}, names)

		total := columns[3].(map[string]interface{})
		assert.Equal(t, 72.0, total["count"])
		assert.Equal(t, 2797.0, total["min"])
		assert.Equal(t, 83385.0, total["max"])
	})

	t.Run("unknown dataset", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/summary/Unknown.csv.json")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, http.StatusNotFound, model.Code)
		assert.Equal(t, "resource not found", model.Text)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, fieldErrors := getFieldErrors(t, "/api/summary/bad%3Cname%3E")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.NotEmpty(t, fieldErrors["id"])
	})
}

func TestSummariesWorkbookHandler(t *testing.T) {
	server := newTestServer(t, createTestApi(t))

	resp, err := http.Get(server.URL + "/api/summaries.xlsx")
	require.NoError(t, err)
	defer resp.Body.Close() // nolint

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, report.WorkbookContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "summaries.xlsx")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close() // nolint
	assert.Equal(t, []string{"AllCarriers", "AmericanAirlines", "DeltaAirlines", "UnitedAirlines"}, f.GetSheetList())
}

func TestWarningsHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/warnings.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, listOf(t, model))
}

func TestStatusHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/status.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, 4.0, entry["datasets"])
	assert.Equal(t, 0.0, entry["warnings"])
	assert.Equal(t, false, entry["singleFile"])
	assert.Equal(t, "AllCarriers.csv", entry["defaultDataset"])
	assert.NotEmpty(t, entry["readableTime"])
}

func TestUnknownRoute(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/unknown.json")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}
