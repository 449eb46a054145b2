package webui

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"carrierdash/internal/carriers"
	"carrierdash/internal/logging"
	"carrierdash/internal/traffic"
	"carrierdash/internal/utils"
)

type option struct {
	Value    string
	Label    string
	Selected bool
}

type insightList struct {
	Title string
	Items []string
}

type dashboardData struct {
	Title      string
	Datasets   []option
	Columns    []option
	ChartTypes []option
	Years      []option
	AllYears   bool
	Months     []option
	FromMonth  int
	ToMonth    int
	FromLabel  string
	ToLabel    string
	Chart      Chart
	Highest    insightList
	Least      insightList
	Errors     []string
	Warnings   int
}

// fieldErrorMessages flattens validation errors into sorted display lines
func fieldErrorMessages(fieldErrors map[string][]string) []string {
	keys := make([]string, 0, len(fieldErrors))
	for k := range fieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var messages []string
	for _, k := range keys {
		for _, msg := range fieldErrors[k] {
			messages = append(messages, fmt.Sprintf("%s: %s", k, msg))
		}
	}
	return messages
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	name, fieldErrors := utils.DatasetParam(params)
	query, queryErrors := utils.ParseTrafficQuery(params)
	chartType, chartErrors := utils.ParseChartType(params)
	for _, errs := range []map[string][]string{queryErrors, chartErrors} {
		for k, v := range errs {
			fieldErrors[k] = append(fieldErrors[k], v...)
		}
	}

	status := http.StatusOK
	if len(fieldErrors) > 0 {
		status = http.StatusBadRequest
		query = traffic.DefaultQuery()
		chartType = utils.ChartLine
	}

	dataset, ok := webUI.FindDataset(name)
	if !ok {
		if name != "" {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "no carrier data loaded", http.StatusServiceUnavailable)
		return
	}

	analysis, err := traffic.Analyze(dataset, query)
	if err != nil && !errors.Is(err, traffic.ErrMissingColumn) {
		logging.FromContext(r.Context()).Error("failed to analyze dataset",
			"dataset", dataset.Name,
			"error", err,
			"component", "webui")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	data := dashboardData{
		Title:      "Airline Traffic Dashboard",
		Datasets:   webUI.datasetOptions(dataset.Name),
		Columns:    columnOptions(query.Column),
		ChartTypes: chartTypeOptions(chartType),
		Years:      yearOptions(dataset, query.Years),
		AllYears:   len(query.Years) == 0,
		Months:     monthOptions(),
		FromMonth:  query.FromMonth,
		ToMonth:    query.ToMonth,
		FromLabel:  traffic.MonthLabel(query.FromMonth),
		ToLabel:    traffic.MonthLabel(query.ToMonth),
		Errors:     fieldErrorMessages(fieldErrors),
		Warnings:   len(webUI.Manager.GetWarnings()),
	}
	if err != nil {
		data.Errors = append(data.Errors, err.Error())
	} else {
		data.Chart = NewChart(analysis, query, chartType)
		data.Highest = newInsightList(analysis.HighestTitle, analysis.Highest)
		data.Least = newInsightList(analysis.LeastTitle, analysis.Least)
	}

	webUI.render(w, r, status, "dashboard.html", data)
}

func newInsightList(title string, extremes []traffic.Extreme) insightList {
	list := insightList{Title: title}
	for _, e := range extremes {
		list.Items = append(list.Items, e.String())
	}
	return list
}

func (webUI *WebUI) datasetOptions(selected string) []option {
	collection := webUI.Manager.GetDatasets()
	options := make([]option, 0, collection.Len())
	for _, name := range collection.Names() {
		options = append(options, option{Value: name, Label: traffic.AirlineLabel(name), Selected: name == selected})
	}
	return options
}

func columnOptions(selected string) []option {
	options := make([]option, 0, len(carriers.DesignatedColumns))
	for _, c := range carriers.DesignatedColumns {
		options = append(options, option{Value: c, Label: c, Selected: c == selected})
	}
	return options
}

func chartTypeOptions(selected string) []option {
	return []option{
		{Value: utils.ChartLine, Label: "Line Chart", Selected: selected == utils.ChartLine},
		{Value: utils.ChartBar, Label: "Bar Chart", Selected: selected == utils.ChartBar},
	}
}

func yearOptions(d *carriers.Dataset, selected []int) []option {
	chosen := make(map[int]bool, len(selected))
	for _, y := range selected {
		chosen[y] = true
	}

	years := traffic.AvailableYears(d)
	options := make([]option, 0, len(years))
	for _, y := range years {
		value := strconv.Itoa(y)
		options = append(options, option{Value: value, Label: value, Selected: chosen[y]})
	}
	return options
}

func monthOptions() []option {
	options := make([]option, 0, len(traffic.Months))
	for i, m := range traffic.Months {
		options = append(options, option{Value: strconv.Itoa(i), Label: m})
	}
	return options
}
