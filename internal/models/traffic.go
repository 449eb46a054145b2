package models

import "carrierdash/internal/traffic"

// TrafficQueryModel echoes the filters an analysis was computed with
type TrafficQueryModel struct {
	Column    string `json:"column"`
	Years     []int  `json:"years"`
	FromMonth string `json:"fromMonth"`
	ToMonth   string `json:"toMonth"`
}

// InsightModel is one line of the highest or least traffic lists
type InsightModel struct {
	Year  int    `json:"year"`
	Month string `json:"month"`
	Value int    `json:"value"`
	Text  string `json:"text"`
}

// InsightListModel is a titled list of insights
type InsightListModel struct {
	Title string         `json:"title"`
	Items []InsightModel `json:"items"`
}

type TrafficModel struct {
	Dataset  string               `json:"dataset"`
	Airline  string               `json:"airline"`
	Title    string               `json:"title"`
	Query    TrafficQueryModel    `json:"query"`
	Series   []traffic.YearSeries `json:"series"`
	MaxValue int                  `json:"maxValue"`
	Highest  InsightListModel     `json:"highest"`
	Least    InsightListModel     `json:"least"`
}

func newInsights(title string, extremes []traffic.Extreme) InsightListModel {
	items := make([]InsightModel, 0, len(extremes))
	for _, e := range extremes {
		items = append(items, InsightModel{Year: e.Year, Month: e.Month, Value: e.Value, Text: e.String()})
	}
	return InsightListModel{Title: title, Items: items}
}

func NewTrafficModel(a traffic.Analysis, q traffic.Query) TrafficModel {
	series := a.Series
	if series == nil {
		series = []traffic.YearSeries{}
	}
	years := q.Years
	if years == nil {
		years = []int{}
	}

	return TrafficModel{
		Dataset: a.Dataset,
		Airline: a.Airline,
		Title:   a.Title,
		Query: TrafficQueryModel{
			Column:    q.Column,
			Years:     years,
			FromMonth: traffic.MonthLabel(q.FromMonth),
			ToMonth:   traffic.MonthLabel(q.ToMonth),
		},
		Series:   series,
		MaxValue: a.MaxValue(),
		Highest:  newInsights(a.HighestTitle, a.Highest),
		Least:    newInsights(a.LeastTitle, a.Least),
	}
}
